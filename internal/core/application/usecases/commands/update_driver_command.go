package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents a request to change a driver's profile and
// vehicle details. Join date and status are not touched by this command.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	phoneNumber   string
	vehicleNumber string
	vehicleType   string
	tonnage       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver's profile.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name string,
	phoneNumber string,
	vehicleNumber string,
	vehicleType string,
	tonnage decimal.Decimal,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setVehicleNumber(vehicleNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setTonnage(tonnage),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver to update.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the new driver name.
func (c UpdateDriverCommand) Name() string {
	return c.name
}

// PhoneNumber returns the new phone number.
func (c UpdateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// VehicleNumber returns the new vehicle registration number.
func (c UpdateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the new vehicle type description.
func (c UpdateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// Tonnage returns the new vehicle capacity in tons.
func (c UpdateDriverCommand) Tonnage() decimal.Decimal {
	return c.tonnage
}

func (c *UpdateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *UpdateDriverCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}

	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *UpdateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *UpdateDriverCommand) setTonnage(tonnage decimal.Decimal) error {
	if !tonnage.IsPositive() {
		return ErrTonnageIsInvalid
	}

	c.tonnage = tonnage
	return nil
}
