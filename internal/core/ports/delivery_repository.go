// Package ports defines repository interfaces for the feed delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// ErrStaleDelivery is returned by conditional updates when the delivery's
// status row no longer matches the status the caller observed. It signals
// that another transaction processed the delivery first.
var ErrStaleDelivery = errors.New("delivery was modified concurrently")

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying delivery entities
// based on their lifecycle status and driver assignment.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// All mutable columns are written, including cleared driver
	// references and timestamps.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateInStatus persists changes to a delivery only if its stored
	// status still equals expected. Returns ErrStaleDelivery when the
	// row was already moved out of the expected status.
	UpdateInStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetFirstInPendingStatus retrieves the oldest delivery awaiting
	// assignment. Used by the auto-assignment workflow.
	GetFirstInPendingStatus(ctx context.Context) (*delivery.Delivery, error)

	// GetAllInStatuses retrieves all deliveries in any of the given
	// statuses, ordered by delivery date then creation time.
	GetAllInStatuses(ctx context.Context, statuses ...delivery.Status) ([]*delivery.Delivery, error)

	// CountByDriverAndDateRange counts deliveries assigned to the driver
	// whose delivery date falls within [from, to] inclusive. Cancelled
	// deliveries are not counted.
	CountByDriverAndDateRange(ctx context.Context, driverID kernel.UUID, from, to kernel.Date) (int, error)

	// CountByDriverInStatuses counts deliveries referencing the driver in
	// any of the given statuses. Used to guard driver deletion.
	CountByDriverInStatuses(ctx context.Context, driverID kernel.UUID, statuses ...delivery.Status) (int, error)

	// GetCompletedInMonth retrieves all completed deliveries whose
	// delivery date falls within the given month.
	GetCompletedInMonth(ctx context.Context, month kernel.YearMonth) ([]*delivery.Delivery, error)

	// Delete removes a delivery aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
