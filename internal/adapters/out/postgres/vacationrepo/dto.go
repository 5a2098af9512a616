// Package vacationrepo provides data transfer objects and mapping functions
// for vacation request persistence.
package vacationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"

	"github.com/google/uuid"
)

// VacationDTO represents the database structure for persisting vacation
// request aggregates.
type VacationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID    uuid.UUID `gorm:"type:uuid;index"`
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	Reason      string
	Status      int       `gorm:"index"`
	RequestDate time.Time `gorm:"type:date"`
}

// TableName specifies the database table name for vacation entities.
func (VacationDTO) TableName() string {
	return "vacations"
}

// fromDomain converts a vacation domain aggregate to its database representation.
func fromDomain(aggregate *vacation.Vacation) VacationDTO {
	return VacationDTO{
		ID:          aggregate.ID().Bytes(),
		DriverID:    aggregate.Driver().Bytes(),
		StartDate:   aggregate.StartDate().Time(),
		EndDate:     aggregate.EndDate().Time(),
		Reason:      aggregate.Reason(),
		Status:      int(aggregate.Status()),
		RequestDate: aggregate.RequestDate().Time(),
	}
}

// toDomain converts a database DTO back to a vacation aggregate using RestoreVacation.
func toDomain(dto VacationDTO) (*vacation.Vacation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return vacation.RestoreVacation(
		id,
		driverID,
		kernel.DateFromTime(dto.StartDate),
		kernel.DateFromTime(dto.EndDate),
		dto.Reason,
		vacation.Status(dto.Status),
		kernel.DateFromTime(dto.RequestDate),
	)
}
