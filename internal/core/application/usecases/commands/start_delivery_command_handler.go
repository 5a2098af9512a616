package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// StartDeliveryCommandHandler moves an assigned delivery into progress.
// The write is conditional on the delivery still being assigned, so a
// delivery processed concurrently is reported as already processed.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for delivery start operations.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command and returns the delivery in progress.
func (h StartDeliveryCommandHandler) Handle(
	ctx context.Context, cmd StartDeliveryCommand,
) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Start(); err != nil {
		return nil, err
	}

	if err = deliveryRepo.UpdateInStatus(ctx, aggregate, delivery.Assigned); err != nil {
		if errors.Is(err, ports.ErrStaleDelivery) {
			return nil, errs.NewBusinessRuleViolationErrorWithCause(
				"delivery already processed", err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
