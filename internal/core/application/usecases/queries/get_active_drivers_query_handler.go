package queries

import (
	"context"

	"logistics/internal/core/domain/model/driver"

	"gorm.io/gorm"
)

// GetActiveDriversQueryHandler retrieves the drivers in active status.
// Unlike the availability query this ignores the vacation calendar: a
// driver can be active today and still be unavailable on a future date.
type GetActiveDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDriversQueryHandler creates a handler for active roster queries.
func NewGetActiveDriversQueryHandler(db *gorm.DB) GetActiveDriversQueryHandler {
	return GetActiveDriversQueryHandler{db: db}
}

// Handle executes the query and returns active drivers sorted by name.
func (h GetActiveDriversQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE status = ?
		ORDER BY name
	`, int(driver.Active)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDriverRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
