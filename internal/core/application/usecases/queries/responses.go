// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryResponse represents a delivery in the read model.
type DeliveryResponse struct {
	ID           kernel.UUID
	Destination  string
	Address      string
	Price        decimal.Decimal
	FeedTonnage  decimal.Decimal
	DeliveryDate kernel.Date
	DriverID     *kernel.UUID
	Status       string
	CreatedAt    time.Time
	AssignedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	Notes        string
}

// DriverResponse represents a driver in the read model.
type DriverResponse struct {
	ID            kernel.UUID
	Name          string
	PhoneNumber   string
	VehicleNumber string
	VehicleType   string
	Tonnage       decimal.Decimal
	Status        string
	JoinDate      kernel.Date
}

// deliveryColumns is the select list scanDeliveryRow expects, in order.
const deliveryColumns = `
	id,
	destination,
	address,
	price,
	feed_tonnage,
	delivery_date,
	driver_id,
	status,
	created_at,
	assigned_at,
	started_at,
	completed_at,
	notes
`

func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		resp         DeliveryResponse
		id           uuid.UUID
		driverID     uuid.NullUUID
		deliveryDate time.Time
		status       int
		assignedAt   sql.NullTime
		startedAt    sql.NullTime
		completedAt  sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&resp.Destination,
		&resp.Address,
		&resp.Price,
		&resp.FeedTonnage,
		&deliveryDate,
		&driverID,
		&status,
		&resp.CreatedAt,
		&assignedAt,
		&startedAt,
		&completedAt,
		&resp.Notes,
	); err != nil {
		return DeliveryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryResponse{}, err
	}
	resp.ID = deliveryID

	if driverID.Valid {
		drvID, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		resp.DriverID = &drvID
	}

	resp.DeliveryDate = kernel.DateFromTime(deliveryDate)
	resp.Status = delivery.Status(status).String()
	resp.AssignedAt = nullableTime(assignedAt)
	resp.StartedAt = nullableTime(startedAt)
	resp.CompletedAt = nullableTime(completedAt)

	return resp, nil
}

const driverColumns = `
	id,
	name,
	phone_number,
	vehicle_number,
	vehicle_type,
	tonnage,
	status,
	join_date
`

func scanDriverRow(rows *sql.Rows) (DriverResponse, error) {
	var (
		resp     DriverResponse
		id       uuid.UUID
		status   int
		joinDate time.Time
	)

	if err := rows.Scan(
		&id,
		&resp.Name,
		&resp.PhoneNumber,
		&resp.VehicleNumber,
		&resp.VehicleType,
		&resp.Tonnage,
		&status,
		&joinDate,
	); err != nil {
		return DriverResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DriverResponse{}, err
	}
	resp.ID = driverID
	resp.Status = driver.Status(status).String()
	resp.JoinDate = kernel.DateFromTime(joinDate)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
