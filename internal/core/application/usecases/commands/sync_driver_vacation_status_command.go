package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrSyncDriverVacationStatusCommandIsNotConstructed = errors.New(
	"SyncDriverVacationStatusCommand must be created via NewSyncDriverVacationStatusCommand constructor",
)

// SyncDriverVacationStatusCommand triggers an audit of driver statuses
// against the approved vacations covering today.
type SyncDriverVacationStatusCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncDriverVacationStatusCommand creates a command to run one audit round.
func NewSyncDriverVacationStatusCommand() SyncDriverVacationStatusCommand {
	return SyncDriverVacationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SyncDriverVacationStatusCommand) Validate() error {
	return c.guard.Validate(ErrSyncDriverVacationStatusCommandIsNotConstructed)
}
