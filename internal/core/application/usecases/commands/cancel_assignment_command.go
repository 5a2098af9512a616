package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelAssignmentCommandIsNotConstructed = errors.New(
	"CancelAssignmentCommand must be created via NewCancelAssignmentCommand constructor",
)

// CancelAssignmentCommand represents a request to release the driver from an
// assigned delivery and return it to the pending pool.
type CancelAssignmentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAssignmentCommand creates a command to cancel the given delivery's assignment.
func NewCancelAssignmentCommand(deliveryID kernel.UUID) (CancelAssignmentCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelAssignmentCommand{}, err
	}

	return CancelAssignmentCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAssignmentCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose assignment is cancelled.
func (c CancelAssignmentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
