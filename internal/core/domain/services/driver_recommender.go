package services

import (
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"
)

// Candidate pairs a driver with the number of deliveries assigned to them over
// the recent workload window. The count is resolved by the caller so the
// recommender stays free of repository access.
type Candidate struct {
	Driver           *driver.Driver
	RecentDeliveries int
}

// DriverRecommender is a domain service that picks the best driver for a
// pending delivery. Out of the candidates that are active, available on the
// delivery date and able to carry the feed tonnage, it recommends the one
// with the fewest recent deliveries. Ties are broken by ascending driver ID
// so the recommendation is deterministic.
type DriverRecommender struct{}

// NewDriverRecommender creates a new DriverRecommender instance.
func NewDriverRecommender() DriverRecommender {
	return DriverRecommender{}
}

// Recommend selects the least loaded eligible driver for the given delivery.
// The candidates must already be restricted to drivers available on the
// delivery date. Returns (nil, nil) when no candidate is eligible.
func (r DriverRecommender) Recommend(dlv *delivery.Delivery, candidates []Candidate) (*driver.Driver, error) {
	if dlv == nil {
		return nil, errs.NewValueIsRequiredError("delivery")
	}

	if err := dlv.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	var best *Candidate
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Driver == nil {
			return nil, errs.NewValueIsRequiredError("candidate driver")
		}
		if err := candidate.Driver.Validate(); err != nil {
			return nil, err
		}

		if !candidate.Driver.IsActive() {
			continue
		}
		if !candidate.Driver.CanCarry(dlv.FeedTonnage()) {
			continue
		}

		if best == nil || r.isBetter(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, nil
	}
	return best.Driver, nil
}

func (r DriverRecommender) isBetter(candidate, best *Candidate) bool {
	if candidate.RecentDeliveries != best.RecentDeliveries {
		return candidate.RecentDeliveries < best.RecentDeliveries
	}
	return candidate.Driver.ID().String() < best.Driver.ID().String()
}
