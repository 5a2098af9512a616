package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents a request to move an assigned delivery
// into the in-progress status.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start the given delivery.
func NewStartDeliveryCommand(deliveryID kernel.UUID) (StartDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return StartDeliveryCommand{}, err
	}

	return StartDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to start.
func (c StartDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
