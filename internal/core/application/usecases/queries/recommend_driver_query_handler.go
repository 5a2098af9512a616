package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"

	"github.com/shopspring/decimal"
)

// recommendationWindowDays matches the workload window used by automatic
// assignment so the preview agrees with what the assigner would do.
const recommendationWindowDays = 30

// RecommendedDriver is the recommendation read model. Found is false when no
// eligible driver exists for the delivery.
type RecommendedDriver struct {
	Found            bool
	DriverID         kernel.UUID
	DriverName       string
	Tonnage          decimal.Decimal
	RecentDeliveries int
}

// RecommendDriverQueryHandler previews the driver the automatic assigner
// would pick for a delivery. Unlike the list queries this one goes through
// the repositories: the recommendation needs full aggregates for the domain
// service, not flat rows.
type RecommendDriverQueryHandler struct {
	deliveryRepo ports.DeliveryRepository
	driverRepo   ports.DriverRepository
	recommender  services.DriverRecommender
}

// NewRecommendDriverQueryHandler creates a handler for recommendation queries.
func NewRecommendDriverQueryHandler(
	deliveryRepo ports.DeliveryRepository,
	driverRepo ports.DriverRepository,
) RecommendDriverQueryHandler {
	return RecommendDriverQueryHandler{
		deliveryRepo: deliveryRepo,
		driverRepo:   driverRepo,
		recommender:  services.NewDriverRecommender(),
	}
}

// Handle resolves the recommendation for the delivery.
func (h RecommendDriverQueryHandler) Handle(
	ctx context.Context,
	query RecommendDriverQuery,
) (RecommendedDriver, error) {
	if err := query.Validate(); err != nil {
		return RecommendedDriver{}, err
	}

	aggregate, err := h.deliveryRepo.Get(ctx, query.DeliveryID())
	if err != nil {
		return RecommendedDriver{}, err
	}

	available, err := h.driverRepo.GetAllAvailableOnDate(ctx, aggregate.DeliveryDate())
	if err != nil {
		return RecommendedDriver{}, err
	}

	today := kernel.Today()
	from := today.AddDays(-recommendationWindowDays)

	candidates := make([]services.Candidate, 0, len(available))
	workloads := make(map[string]int, len(available))
	for _, drv := range available {
		count, countErr := h.deliveryRepo.CountByDriverAndDateRange(ctx, drv.ID(), from, today)
		if countErr != nil {
			return RecommendedDriver{}, countErr
		}

		workloads[drv.ID().String()] = count
		candidates = append(candidates, services.Candidate{
			Driver:           drv,
			RecentDeliveries: count,
		})
	}

	recommended, err := h.recommender.Recommend(aggregate, candidates)
	if err != nil {
		return RecommendedDriver{}, err
	}
	if recommended == nil {
		return RecommendedDriver{}, nil
	}

	return RecommendedDriver{
		Found:            true,
		DriverID:         recommended.ID(),
		DriverName:       recommended.Name(),
		Tonnage:          recommended.Tonnage(),
		RecentDeliveries: workloads[recommended.ID().String()],
	}, nil
}
