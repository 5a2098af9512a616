package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// averageScale is the number of decimal places kept when averaging revenue.
const averageScale = 2

// MonthlyRevenueSummary is one driver's aggregated result for a month.
// Drivers without completed deliveries in the month carry zero totals.
type MonthlyRevenueSummary struct {
	DriverID           kernel.UUID
	DriverName         string
	Month              kernel.YearMonth
	DeliveryCount      int
	TotalRevenue       decimal.Decimal
	TotalTonnage       decimal.Decimal
	AveragePerDelivery decimal.Decimal
}

// MonthlyRevenueQueryHandler aggregates completed deliveries per driver over
// one calendar month. Only deliveries in the completed status count; the
// month is resolved from the delivery date. Averages are rounded half up.
type MonthlyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewMonthlyRevenueQueryHandler creates a handler for revenue aggregation queries.
func NewMonthlyRevenueQueryHandler(db *gorm.DB) MonthlyRevenueQueryHandler {
	return MonthlyRevenueQueryHandler{db: db}
}

// Handle executes the aggregation and returns one summary per driver in
// ascending name order (or the single requested driver).
func (h MonthlyRevenueQueryHandler) Handle(
	ctx context.Context,
	query MonthlyRevenueQuery,
) ([]MonthlyRevenueSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	month := query.Month()
	firstDay := month.FirstDay().Time()
	lastDay := month.LastDay().Time()

	const baseQuery = `
		SELECT
			dr.id,
			dr.name,
			COUNT(d.id),
			COALESCE(SUM(d.price), 0),
			COALESCE(SUM(d.feed_tonnage), 0)
		FROM drivers dr
		LEFT JOIN deliveries d
			ON d.driver_id = dr.id
			AND d.status = ?
			AND d.delivery_date BETWEEN ? AND ?
	`

	var rows *sql.Rows
	var err error
	if driverID := query.DriverID(); driverID != nil {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE dr.id = ? GROUP BY dr.id, dr.name ORDER BY dr.name`,
			int(delivery.Completed), firstDay, lastDay, driverID.Bytes(),
		).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`GROUP BY dr.id, dr.name ORDER BY dr.name`,
			int(delivery.Completed), firstDay, lastDay,
		).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]MonthlyRevenueSummary, 0)
	for rows.Next() {
		var (
			summary MonthlyRevenueSummary
			id      uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&summary.DriverName,
			&summary.DeliveryCount,
			&summary.TotalRevenue,
			&summary.TotalTonnage,
		); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.DriverID = driverID
		summary.Month = month
		summary.AveragePerDelivery = averageRevenue(summary.TotalRevenue, summary.DeliveryCount)

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// The aggregation starts from the drivers table, so an existing driver
	// always produces a row even with zero deliveries. No row means the
	// requested driver does not exist.
	if driverID := query.DriverID(); driverID != nil && len(summaries) == 0 {
		return nil, errs.NewObjectNotFoundError("driver", driverID.String())
	}

	return summaries, nil
}

// averageRevenue divides total by count rounding half up. A driver without
// deliveries averages zero rather than dividing by zero.
func averageRevenue(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), averageScale)
}
