package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRecommendDriverQueryIsNotConstructed = errors.New(
	"RecommendDriverQuery must be created via NewRecommendDriverQuery constructor",
)

// RecommendDriverQuery asks which driver should take a pending delivery.
// The recommendation has no side effects; assignment stays a separate command.
type RecommendDriverQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecommendDriverQuery creates a query recommending a driver for deliveryID.
func NewRecommendDriverQuery(deliveryID kernel.UUID) (RecommendDriverQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return RecommendDriverQuery{}, err
	}

	return RecommendDriverQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RecommendDriverQuery) Validate() error {
	return q.guard.Validate(ErrRecommendDriverQueryIsNotConstructed)
}

// DeliveryID returns the delivery to recommend a driver for.
func (q RecommendDriverQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
