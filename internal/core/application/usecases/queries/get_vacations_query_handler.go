package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VacationResponse represents a vacation request in the read model.
type VacationResponse struct {
	ID          kernel.UUID
	DriverID    kernel.UUID
	StartDate   kernel.Date
	EndDate     kernel.Date
	Reason      string
	Status      string
	RequestDate kernel.Date
}

// GetVacationsQueryHandler retrieves vacation requests, newest first.
type GetVacationsQueryHandler struct {
	db *gorm.DB
}

// NewGetVacationsQueryHandler creates a handler for vacation list queries.
func NewGetVacationsQueryHandler(db *gorm.DB) GetVacationsQueryHandler {
	return GetVacationsQueryHandler{db: db}
}

// Handle executes the query and returns the matching vacation requests.
func (h GetVacationsQueryHandler) Handle(
	ctx context.Context,
	query GetVacationsQuery,
) ([]VacationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			driver_id,
			start_date,
			end_date,
			reason,
			status,
			request_date
		FROM vacations
	`

	var rows *sql.Rows
	var err error
	if driverID := query.DriverID(); driverID != nil {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+`WHERE driver_id = ? ORDER BY request_date DESC`,
			driverID.Bytes(),
		).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery + `ORDER BY request_date DESC`,
		).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vacations := make([]VacationResponse, 0)
	for rows.Next() {
		var (
			resp        VacationResponse
			id          uuid.UUID
			driverID    uuid.UUID
			startDate   time.Time
			endDate     time.Time
			status      int
			requestDate time.Time
		)

		if err = rows.Scan(
			&id,
			&driverID,
			&startDate,
			&endDate,
			&resp.Reason,
			&status,
			&requestDate,
		); err != nil {
			return nil, err
		}

		vacationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		drvID, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = vacationID
		resp.DriverID = drvID
		resp.StartDate = kernel.DateFromTime(startDate)
		resp.EndDate = kernel.DateFromTime(endDate)
		resp.Status = vacation.Status(status).String()
		resp.RequestDate = kernel.DateFromTime(requestDate)

		vacations = append(vacations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vacations, nil
}
