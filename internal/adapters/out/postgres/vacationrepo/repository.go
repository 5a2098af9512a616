package vacationrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVacationRepository implements VacationRepository using GORM.
type GormVacationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVacationRepository creates a new GORM vacation repository.
func NewGormVacationRepository(db *gorm.DB, tracker aggregateTracker) *GormVacationRepository {
	return &GormVacationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vacation request to the database.
func (r *GormVacationRepository) Add(ctx context.Context, aggregate *vacation.Vacation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDataIntegrityError("vacation create", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vacation request to the database.
func (r *GormVacationRepository) Update(ctx context.Context, aggregate *vacation.Vacation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VacationDTO{}).
		Where("id = ?", dto.ID).
		Select("driver_id", "start_date", "end_date", "reason", "status", "request_date").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewDataIntegrityError("vacation update", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vacation request by ID.
func (r *GormVacationRepository) Get(ctx context.Context, id kernel.UUID) (*vacation.Vacation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VacationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vacation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all vacation requests, newest first.
func (r *GormVacationRepository) GetAll(ctx context.Context) ([]*vacation.Vacation, error) {
	var dtos []VacationDTO
	if err := r.db.WithContext(ctx).Order("request_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByDriver retrieves all vacation requests of a single driver, newest first.
func (r *GormVacationRepository) GetByDriver(ctx context.Context, driverID kernel.UUID) ([]*vacation.Vacation, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VacationDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Order("request_date DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetApprovedCoveringDate retrieves all approved vacations whose interval
// contains the given date.
func (r *GormVacationRepository) GetApprovedCoveringDate(
	ctx context.Context,
	date kernel.Date,
) ([]*vacation.Vacation, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dtos []VacationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND start_date <= ? AND end_date >= ?",
			int(vacation.Approved), date.Time(), date.Time()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes a vacation request from the database.
func (r *GormVacationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VacationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewDataIntegrityError("vacation delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vacation", id.String())
	}

	return nil
}

func toDomainSlice(dtos []VacationDTO) ([]*vacation.Vacation, error) {
	vacations := make([]*vacation.Vacation, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}

	return vacations, nil
}
