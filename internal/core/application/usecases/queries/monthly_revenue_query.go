package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrMonthlyRevenueQueryIsNotConstructed = errors.New(
	"MonthlyRevenueQuery must be created via NewMonthlyRevenueQuery constructor",
)

// MonthlyRevenueQuery aggregates completed deliveries into per-driver revenue
// summaries for one calendar month. Optionally restricted to a single driver.
//
// Example:
//
//	month, _ := kernel.ParseYearMonth("2024-06")
//	query, _ := NewMonthlyRevenueQuery(month)
//	summaries, err := handler.Handle(ctx, query)
type MonthlyRevenueQuery struct { //nolint:recvcheck //using for validation
	month    kernel.YearMonth
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMonthlyRevenueQuery creates a query for all drivers' revenue in month.
func NewMonthlyRevenueQuery(month kernel.YearMonth) (MonthlyRevenueQuery, error) {
	if err := month.Validate(); err != nil {
		return MonthlyRevenueQuery{}, err
	}

	return MonthlyRevenueQuery{
		month: month,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewMonthlyRevenueByDriverQuery creates a query for one driver's revenue in month.
func NewMonthlyRevenueByDriverQuery(
	month kernel.YearMonth, driverID kernel.UUID,
) (MonthlyRevenueQuery, error) {
	query, err := NewMonthlyRevenueQuery(month)
	if err != nil {
		return MonthlyRevenueQuery{}, err
	}

	if err = driverID.Validate(); err != nil {
		return MonthlyRevenueQuery{}, err
	}

	query.driverID = &driverID
	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q MonthlyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrMonthlyRevenueQueryIsNotConstructed)
}

// Month returns the calendar month to aggregate.
func (q MonthlyRevenueQuery) Month() kernel.YearMonth {
	return q.month
}

// DriverID returns the driver filter, nil when aggregating all drivers.
func (q MonthlyRevenueQuery) DriverID() *kernel.UUID {
	return q.driverID
}
