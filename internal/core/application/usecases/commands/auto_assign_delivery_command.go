package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrAutoAssignDeliveryCommandIsNotConstructed = errors.New(
	"AutoAssignDeliveryCommand must be created via NewAutoAssignDeliveryCommand constructor",
)

// AutoAssignDeliveryCommand triggers one round of automatic assignment:
// pick the first pending delivery and hand it to the recommended driver.
// The command carries no payload.
type AutoAssignDeliveryCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignDeliveryCommand creates a command to run one assignment round.
func NewAutoAssignDeliveryCommand() AutoAssignDeliveryCommand {
	return AutoAssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignDeliveryCommandIsNotConstructed)
}
