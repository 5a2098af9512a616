package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"
)

// VacationRepository defines the persistence contract for vacation request aggregates.
type VacationRepository interface {
	// Add persists a new vacation request to storage.
	Add(ctx context.Context, aggregate *vacation.Vacation) error

	// Update persists changes to an existing vacation request.
	Update(ctx context.Context, aggregate *vacation.Vacation) error

	// Get retrieves a vacation request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vacation.Vacation, error)

	// GetAll retrieves every vacation request, newest request first.
	GetAll(ctx context.Context) ([]*vacation.Vacation, error)

	// GetByDriver retrieves all vacation requests filed by the driver,
	// newest request first.
	GetByDriver(ctx context.Context, driverID kernel.UUID) ([]*vacation.Vacation, error)

	// GetApprovedCoveringDate retrieves all approved vacations whose
	// interval covers the given date. Used by the availability resolver
	// and the vacation status sync.
	GetApprovedCoveringDate(ctx context.Context, date kernel.Date) ([]*vacation.Vacation, error)

	// Delete removes a vacation request from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
