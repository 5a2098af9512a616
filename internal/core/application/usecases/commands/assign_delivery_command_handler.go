package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// AssignDeliveryCommandHandler orchestrates manual driver assignment.
// Business rules are checked by the AssignmentValidator; the final write is a
// conditional update so two operators racing for the same delivery cannot
// both win. The loser receives an assignment error.
//
// Example:
//
//	handler := NewAssignDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewAssignDeliveryCommand(deliveryID, driverID)
//	assigned, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAssignmentFailed) {
//	    // another operator assigned this delivery first
//	}
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	validator  services.AssignmentValidator
}

// NewAssignDeliveryCommandHandler creates a handler for manual assignment operations.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewAssignmentValidator(),
	}
}

// Handle processes the assignment command and returns the assigned delivery.
func (h AssignDeliveryCommandHandler) Handle(
	ctx context.Context, cmd AssignDeliveryCommand,
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
	driverRepo := uow.DriverRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	available, err := driverRepo.GetAllAvailableOnDate(ctx, aggregate.DeliveryDate())
	if err != nil {
		return nil, err
	}

	availableIDs := make([]kernel.UUID, 0, len(available))
	for _, candidate := range available {
		availableIDs = append(availableIDs, candidate.ID())
	}

	if err = h.validator.ValidateAssignment(aggregate, drv, availableIDs); err != nil {
		return nil, err
	}

	if err = aggregate.Assign(drv.ID()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.UpdateInStatus(ctx, aggregate, delivery.Pending); err != nil {
		if errors.Is(err, ports.ErrStaleDelivery) {
			return nil, errs.NewAssignmentFailedErrorWithCause(
				"delivery was assigned by another operation", err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
