package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"
)

// DeleteDriverCommandHandler handles driver removal. A driver still tied to
// assigned or in-progress deliveries is protected from deletion so the
// active delivery flow keeps a valid driver reference.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver deletion.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver deletion command.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	active, err := deliveryRepo.CountByDriverInStatuses(
		ctx, aggregate.ID(), delivery.Assigned, delivery.InProgress)
	if err != nil {
		return err
	}
	if active > 0 {
		return errs.NewBusinessRuleViolationError("driver has active deliveries")
	}

	if err = driverRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
