package deliveryrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// deliveryColumns lists every persisted column explicitly so that Updates
// writes NULL values too. GORM skips zero-valued struct fields otherwise,
// which would leave a stale driver_id behind after a cancelled assignment.
var deliveryColumns = []string{
	"destination", "address", "price", "feed_tonnage", "delivery_date",
	"driver_id", "status", "assigned_at", "started_at", "completed_at", "notes",
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDataIntegrityError("delivery create", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select(deliveryColumns).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewDataIntegrityError("delivery update", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateInStatus saves an existing delivery only if the stored row is still
// in the expected status. The status predicate makes the update a
// compare-and-swap, so two concurrent assignment attempts cannot both
// succeed. Losing the race returns ports.ErrStaleDelivery.
func (r *GormDeliveryRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expected delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Select(deliveryColumns).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewDataIntegrityError("delivery conditional update", result.Error)
	}

	if result.RowsAffected == 0 {
		return ports.ErrStaleDelivery
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInPendingStatus retrieves the oldest delivery still waiting for
// a driver.
func (r *GormDeliveryRepository) GetFirstInPendingStatus(ctx context.Context) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(delivery.Pending)).
		Order("created_at").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", "first in pending status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatuses retrieves all deliveries whose status matches any of the
// given values.
func (r *GormDeliveryRepository) GetAllInStatuses(
	ctx context.Context,
	statuses ...delivery.Status,
) ([]*delivery.Delivery, error) {
	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status IN ?", values).
		Order("delivery_date, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountByDriverAndDateRange counts the deliveries assigned to a driver with
// a delivery date inside the inclusive range. Cancelled deliveries do not
// count toward a driver's workload.
func (r *GormDeliveryRepository) CountByDriverAndDateRange(
	ctx context.Context,
	driverID kernel.UUID,
	from, to kernel.Date,
) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("driver_id = ? AND delivery_date BETWEEN ? AND ? AND status <> ?",
			driverID.Bytes(), from.Time(), to.Time(), int(delivery.Cancelled)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountByDriverInStatuses counts the deliveries assigned to a driver whose
// status matches any of the given values.
func (r *GormDeliveryRepository) CountByDriverInStatuses(
	ctx context.Context,
	driverID kernel.UUID,
	statuses ...delivery.Status,
) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	values := make([]int, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, int(s))
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), values).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetCompletedInMonth retrieves all completed deliveries whose delivery date
// falls inside the given month.
func (r *GormDeliveryRepository) GetCompletedInMonth(
	ctx context.Context,
	month kernel.YearMonth,
) ([]*delivery.Delivery, error) {
	if err := month.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND delivery_date BETWEEN ? AND ?",
			int(delivery.Completed), month.FirstDay().Time(), month.LastDay().Time()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a delivery from the database.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewDataIntegrityError("delivery delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}

	return nil
}

func toDomainSlice(dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
