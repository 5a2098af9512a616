package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler marks assigned or in-progress deliveries as
// completed, recording the completion timestamp.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command and returns the completed delivery.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CompleteDeliveryCommand,
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

	expected := aggregate.Status()
	if err = aggregate.Complete(); err != nil {
		return nil, err
	}

	if err = deliveryRepo.UpdateInStatus(ctx, aggregate, expected); err != nil {
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
