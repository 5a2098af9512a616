package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	// ErrNoPendingDelivery is returned when no delivery awaits assignment.
	ErrNoPendingDelivery = errors.New("no pending delivery found")
	// ErrNoCandidateDriver is returned when no eligible driver exists for
	// the pending delivery.
	ErrNoCandidateDriver = errors.New("no candidate driver found")
)

// recentWorkloadDays is the window used to balance assignments across drivers.
const recentWorkloadDays = 30

// AutoAssignDeliveryCommandHandler orchestrates the automatic assignment round.
// It picks the oldest pending delivery, scores the drivers available on the
// delivery date by their recent workload, and assigns the least loaded one.
//
// Example:
//
//	handler := NewAutoAssignDeliveryCommandHandler(uowFactory)
//	_, err := handler.Handle(ctx, NewAutoAssignDeliveryCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingDelivery):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, ErrNoCandidateDriver):
//	    log.Println("No eligible driver")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AutoAssignDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	recommender services.DriverRecommender
}

// NewAutoAssignDeliveryCommandHandler creates a handler for automatic assignment.
func NewAutoAssignDeliveryCommandHandler(uowFactory UoWFactory) AutoAssignDeliveryCommandHandler {
	return AutoAssignDeliveryCommandHandler{
		uowFactory:  uowFactory,
		recommender: services.NewDriverRecommender(),
	}
}

// Handle processes one automatic assignment round and returns the assigned delivery.
func (h AutoAssignDeliveryCommandHandler) Handle(
	ctx context.Context, cmd AutoAssignDeliveryCommand,
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

	aggregate, err := deliveryRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoPendingDelivery
	}
	if err != nil {
		return nil, err
	}

	available, err := driverRepo.GetAllAvailableOnDate(ctx, aggregate.DeliveryDate())
	if err != nil {
		return nil, err
	}

	candidates, err := h.scoreCandidates(ctx, deliveryRepo, available)
	if err != nil {
		return nil, err
	}

	recommended, err := h.recommender.Recommend(aggregate, candidates)
	if err != nil {
		return nil, err
	}
	if recommended == nil {
		return nil, ErrNoCandidateDriver
	}

	if err = aggregate.Assign(recommended.ID()); err != nil {
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

// scoreCandidates resolves each available driver's workload over the recent
// window so the recommender can balance assignments.
func (h AutoAssignDeliveryCommandHandler) scoreCandidates(
	ctx context.Context,
	deliveryRepo ports.DeliveryRepository,
	available []*driver.Driver,
) ([]services.Candidate, error) {
	today := kernel.Today()
	from := today.AddDays(-recentWorkloadDays)

	candidates := make([]services.Candidate, 0, len(available))
	for _, drv := range available {
		count, err := deliveryRepo.CountByDriverAndDateRange(ctx, drv.ID(), from, today)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, services.Candidate{
			Driver:           drv,
			RecentDeliveries: count,
		})
	}

	return candidates, nil
}
