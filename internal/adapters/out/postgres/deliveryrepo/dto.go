// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, handling conversion between domain entities and
// database rows.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Status and driver assignment carry indexes because the
// assignment flow queries on them constantly.
type DeliveryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Destination  string
	Address      string
	Price        decimal.Decimal `gorm:"type:numeric(14,2)"`
	FeedTonnage  decimal.Decimal `gorm:"type:numeric(8,2)"`
	DeliveryDate time.Time       `gorm:"type:date;index"`
	DriverID     *uuid.UUID      `gorm:"type:uuid;index"`
	Status       int             `gorm:"index"`
	CreatedAt    time.Time
	AssignedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	Notes        string
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		Destination:  aggregate.Destination(),
		Address:      aggregate.Address(),
		Price:        aggregate.Price(),
		FeedTonnage:  aggregate.FeedTonnage(),
		DeliveryDate: aggregate.DeliveryDate().Time(),
		DriverID:     driverID,
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		AssignedAt:   aggregate.AssignedAt(),
		StartedAt:    aggregate.StartedAt(),
		CompletedAt:  aggregate.CompletedAt(),
		Notes:        aggregate.Notes(),
	}
}

// toDomain converts a database DTO back to a delivery aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		drvID, idErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if idErr != nil {
			return nil, idErr
		}

		driverID = &drvID
	}

	return delivery.RestoreDelivery(
		id,
		dto.Destination,
		dto.Address,
		dto.Price,
		dto.FeedTonnage,
		kernel.DateFromTime(dto.DeliveryDate),
		driverID,
		delivery.Status(dto.Status),
		dto.CreatedAt,
		dto.AssignedAt,
		dto.StartedAt,
		dto.CompletedAt,
		dto.Notes,
	)
}
