package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves deliveries awaiting driver assignment.
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query for the pending delivery list.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}
