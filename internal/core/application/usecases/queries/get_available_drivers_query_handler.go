package queries

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/vacation"

	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler resolves driver availability for a date
// from the employment status and the vacation calendar. Only active drivers
// qualify and only approved vacations block them; the result is always
// computed fresh, never cached.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for availability queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query and returns the active drivers with no approved
// vacation covering the date, sorted by name.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)

	date := query.Date().Time()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE status = ?
		  AND id NOT IN (
			SELECT driver_id
			FROM vacations
			WHERE status = ?
			  AND start_date <= ?
			  AND end_date >= ?
		)
		ORDER BY name
	`, int(driver.Active), int(vacation.Approved), date, date).Rows()
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
