package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"
)

// ApproveVacationCommandHandler approves pending vacation requests.
// Only approved vacations affect driver availability.
type ApproveVacationCommandHandler struct {
	uowFactory VacationUoWFactory
}

// NewApproveVacationCommandHandler creates a handler for vacation approval.
func NewApproveVacationCommandHandler(uowFactory VacationUoWFactory) ApproveVacationCommandHandler {
	return ApproveVacationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command and returns the approved request.
func (h ApproveVacationCommandHandler) Handle(
	ctx context.Context, cmd ApproveVacationCommand,
) (*vacation.Vacation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return reviewVacation(ctx, h.uowFactory, cmd.VacationID(), (*vacation.Vacation).Approve)
}

// RejectVacationCommandHandler rejects pending vacation requests.
type RejectVacationCommandHandler struct {
	uowFactory VacationUoWFactory
}

// NewRejectVacationCommandHandler creates a handler for vacation rejection.
func NewRejectVacationCommandHandler(uowFactory VacationUoWFactory) RejectVacationCommandHandler {
	return RejectVacationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command and returns the rejected request.
func (h RejectVacationCommandHandler) Handle(
	ctx context.Context, cmd RejectVacationCommand,
) (*vacation.Vacation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return reviewVacation(ctx, h.uowFactory, cmd.VacationID(), (*vacation.Vacation).Reject)
}

// reviewVacation loads a vacation request, applies the review transition and
// persists the result in a single transaction.
func reviewVacation(
	ctx context.Context,
	uowFactory VacationUoWFactory,
	vacationID kernel.UUID,
	review func(*vacation.Vacation) error,
) (*vacation.Vacation, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vacationRepo := uow.VacationRepository()

	aggregate, err := vacationRepo.Get(ctx, vacationID)
	if err != nil {
		return nil, err
	}

	if err = review(aggregate); err != nil {
		return nil, err
	}

	if err = vacationRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// DeleteVacationCommandHandler removes vacation requests.
type DeleteVacationCommandHandler struct {
	uowFactory VacationUoWFactory
}

// NewDeleteVacationCommandHandler creates a handler for vacation deletion.
func NewDeleteVacationCommandHandler(uowFactory VacationUoWFactory) DeleteVacationCommandHandler {
	return DeleteVacationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vacation deletion command.
func (h DeleteVacationCommandHandler) Handle(ctx context.Context, cmd DeleteVacationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vacationRepo := uow.VacationRepository()

	aggregate, err := vacationRepo.Get(ctx, cmd.VacationID())
	if err != nil {
		return err
	}

	if err = vacationRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
