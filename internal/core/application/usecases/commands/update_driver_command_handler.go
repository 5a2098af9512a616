package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"
)

// UpdateDriverCommandHandler handles driver profile updates.
// The phone number uniqueness check excludes the driver being updated.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver update operations.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver update command and returns the updated driver.
func (h UpdateDriverCommandHandler) Handle(
	ctx context.Context, cmd UpdateDriverCommand,
) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	existing, err := driverRepo.GetByPhoneNumber(ctx, cmd.PhoneNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil && !existing.ID().IsEqual(aggregate.ID()) {
		return nil, errs.NewBusinessRuleViolationError("phone number is already registered")
	}

	if err = aggregate.UpdateProfile(
		cmd.Name(),
		cmd.PhoneNumber(),
		cmd.VehicleNumber(),
		cmd.VehicleType(),
		cmd.Tonnage(),
	); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
