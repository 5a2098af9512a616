package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/errs"
)

// CreateDriverCommandHandler handles driver registration.
// Phone numbers are unique across drivers; a duplicate registration is
// rejected as a business rule violation.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command and returns the new driver.
func (h CreateDriverCommandHandler) Handle(
	ctx context.Context, cmd CreateDriverCommand,
) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.Name(),
		cmd.PhoneNumber(),
		cmd.VehicleNumber(),
		cmd.VehicleType(),
		cmd.Tonnage(),
		cmd.JoinDate(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	existing, err := driverRepo.GetByPhoneNumber(ctx, cmd.PhoneNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewBusinessRuleViolationError("phone number is already registered")
	}

	if err = driverRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
