// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The phone number is unique because it doubles as the
// driver's business identity.
type DriverDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string
	PhoneNumber   string          `gorm:"uniqueIndex"`
	VehicleNumber string
	VehicleType   string
	Tonnage       decimal.Decimal `gorm:"type:numeric(8,2)"`
	Status        int             `gorm:"index"`
	JoinDate      time.Time       `gorm:"type:date"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		PhoneNumber:   aggregate.PhoneNumber(),
		VehicleNumber: aggregate.VehicleNumber(),
		VehicleType:   aggregate.VehicleType(),
		Tonnage:       aggregate.Tonnage(),
		Status:        int(aggregate.Status()),
		JoinDate:      aggregate.JoinDate().Time(),
	}
}

// toDomain converts a database DTO back to a driver aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.PhoneNumber,
		dto.VehicleNumber,
		dto.VehicleType,
		dto.Tonnage,
		driver.Status(dto.Status),
		kernel.DateFromTime(dto.JoinDate),
	)
}
