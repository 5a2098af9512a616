package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CancelAssignmentCommandHandler returns an assigned or in-progress delivery
// to the pending pool, clearing the driver reference and the assignment and
// start timestamps.
type CancelAssignmentCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelAssignmentCommandHandler creates a handler for assignment cancellation.
func NewCancelAssignmentCommandHandler(uowFactory DeliveryUoWFactory) CancelAssignmentCommandHandler {
	return CancelAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command and returns the pending delivery.
func (h CancelAssignmentCommandHandler) Handle(
	ctx context.Context, cmd CancelAssignmentCommand,
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
	if err = aggregate.CancelAssignment(); err != nil {
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
