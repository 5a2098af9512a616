package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrGetActiveDriversQueryIsNotConstructed = errors.New(
	"GetActiveDriversQuery must be created via NewGetActiveDriversQuery constructor",
)

// GetActiveDriversQuery retrieves the drivers currently marked active.
type GetActiveDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDriversQuery creates a query for the active driver roster.
func NewGetActiveDriversQuery() GetActiveDriversQuery {
	return GetActiveDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDriversQueryIsNotConstructed)
}
