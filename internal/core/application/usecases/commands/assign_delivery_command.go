package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to assign a specific driver to a
// pending delivery.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign driverID to deliveryID.
func NewAssignDeliveryCommand(deliveryID, driverID kernel.UUID) (AssignDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), driverID.Validate()); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		deliveryID: deliveryID,
		driverID:   driverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to assign.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identifier of the driver to assign.
func (c AssignDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}
