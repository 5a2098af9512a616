package commands

import (
	"context"

	"logistics/internal/core/domain/model/vacation"
)

// RequestVacationCommandHandler files vacation requests.
// The requesting driver must exist; the request starts in pending status
// and has no effect on availability until approved.
type RequestVacationCommandHandler struct {
	uowFactory VacationUoWFactory
}

// NewRequestVacationCommandHandler creates a handler for vacation requests.
func NewRequestVacationCommandHandler(uowFactory VacationUoWFactory) RequestVacationCommandHandler {
	return RequestVacationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vacation request command and returns the new request.
func (h RequestVacationCommandHandler) Handle(
	ctx context.Context, cmd RequestVacationCommand,
) (*vacation.Vacation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Driver existence check keeps orphan requests out of the review queue.
	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return nil, err
	}

	aggregate, err := vacation.NewVacation(
		cmd.VacationID(),
		cmd.DriverID(),
		cmd.StartDate(),
		cmd.EndDate(),
		cmd.Reason(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.VacationRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
