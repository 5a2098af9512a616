package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves the drivers available for work on a
// given date. A driver is unavailable on every day of an approved vacation,
// boundary days included. Pending and rejected requests have no effect.
//
// Example:
//
//	date, _ := kernel.ParseDate("2024-06-12")
//	query, _ := NewGetAvailableDriversQuery(date)
//	available, err := handler.Handle(ctx, query)
type GetAvailableDriversQuery struct { //nolint:recvcheck //using for validation
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for driver availability on date.
func NewGetAvailableDriversQuery(date kernel.Date) (GetAvailableDriversQuery, error) {
	if err := date.Validate(); err != nil {
		return GetAvailableDriversQuery{}, err
	}

	return GetAvailableDriversQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// Date returns the date to resolve availability for.
func (q GetAvailableDriversQuery) Date() kernel.Date {
	return q.date
}
