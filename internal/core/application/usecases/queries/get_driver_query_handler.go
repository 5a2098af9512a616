package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverQueryHandler retrieves a single driver from the database.
type GetDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverQueryHandler creates a handler for single-driver lookups.
func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound when no driver with the
// given ID exists.
func (h GetDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDriverQuery,
) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE id = ?
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return DriverResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DriverResponse{}, err
		}
		return DriverResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	return scanDriverRow(rows)
}
