package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrApproveVacationCommandIsNotConstructed = errors.New(
		"ApproveVacationCommand must be created via NewApproveVacationCommand constructor",
	)
	ErrRejectVacationCommandIsNotConstructed = errors.New(
		"RejectVacationCommand must be created via NewRejectVacationCommand constructor",
	)
	ErrDeleteVacationCommandIsNotConstructed = errors.New(
		"DeleteVacationCommand must be created via NewDeleteVacationCommand constructor",
	)
)

// ApproveVacationCommand represents a request to approve a pending vacation.
type ApproveVacationCommand struct { //nolint:recvcheck //using for validation
	vacationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveVacationCommand creates a command to approve the given vacation request.
func NewApproveVacationCommand(vacationID kernel.UUID) (ApproveVacationCommand, error) {
	if err := vacationID.Validate(); err != nil {
		return ApproveVacationCommand{}, err
	}

	return ApproveVacationCommand{
		vacationID: vacationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveVacationCommand) Validate() error {
	return c.guard.Validate(ErrApproveVacationCommandIsNotConstructed)
}

// VacationID returns the identifier of the vacation request to approve.
func (c ApproveVacationCommand) VacationID() kernel.UUID {
	return c.vacationID
}

// RejectVacationCommand represents a request to reject a pending vacation.
type RejectVacationCommand struct { //nolint:recvcheck //using for validation
	vacationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectVacationCommand creates a command to reject the given vacation request.
func NewRejectVacationCommand(vacationID kernel.UUID) (RejectVacationCommand, error) {
	if err := vacationID.Validate(); err != nil {
		return RejectVacationCommand{}, err
	}

	return RejectVacationCommand{
		vacationID: vacationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectVacationCommand) Validate() error {
	return c.guard.Validate(ErrRejectVacationCommandIsNotConstructed)
}

// VacationID returns the identifier of the vacation request to reject.
func (c RejectVacationCommand) VacationID() kernel.UUID {
	return c.vacationID
}

// DeleteVacationCommand represents a request to remove a vacation request.
type DeleteVacationCommand struct { //nolint:recvcheck //using for validation
	vacationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVacationCommand creates a command to delete the given vacation request.
func NewDeleteVacationCommand(vacationID kernel.UUID) (DeleteVacationCommand, error) {
	if err := vacationID.Validate(); err != nil {
		return DeleteVacationCommand{}, err
	}

	return DeleteVacationCommand{
		vacationID: vacationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVacationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVacationCommandIsNotConstructed)
}

// VacationID returns the identifier of the vacation request to delete.
func (c DeleteVacationCommand) VacationID() kernel.UUID {
	return c.vacationID
}
