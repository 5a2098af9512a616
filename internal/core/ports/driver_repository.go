package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every driver, ordered by name ascending.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllAvailableOnDate retrieves the active drivers that have no
	// approved vacation covering the given date, ordered by name ascending.
	GetAllAvailableOnDate(ctx context.Context, date kernel.Date) ([]*driver.Driver, error)

	// GetByPhoneNumber retrieves the driver registered with the given
	// phone number. Used to enforce phone number uniqueness.
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*driver.Driver, error)

	// Delete removes a driver aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
