package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired          = errors.New("name is required")
	ErrPhoneNumberIsRequired   = errors.New("phone number is required")
	ErrVehicleNumberIsRequired = errors.New("vehicle number is required")
	ErrVehicleTypeIsRequired   = errors.New("vehicle type is required")
	ErrTonnageIsInvalid        = errors.New("tonnage must be greater than 0")
)

// CreateDriverCommand represents a request to register a new driver with
// their vehicle. Phone format and join date rules are enforced by the
// driver aggregate; the command only rejects obviously empty input.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	phoneNumber   string
	vehicleNumber string
	vehicleType   string
	tonnage       decimal.Decimal
	joinDate      kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	phoneNumber string,
	vehicleNumber string,
	vehicleType string,
	tonnage decimal.Decimal,
	joinDate kernel.Date,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setVehicleNumber(vehicleNumber),
		cmd.setVehicleType(vehicleType),
		cmd.setTonnage(tonnage),
		cmd.setJoinDate(joinDate),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// PhoneNumber returns the driver's phone number.
func (c CreateDriverCommand) PhoneNumber() string {
	return c.phoneNumber
}

// VehicleNumber returns the vehicle registration number.
func (c CreateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the vehicle type description.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// Tonnage returns the vehicle capacity in tons.
func (c CreateDriverCommand) Tonnage() decimal.Decimal {
	return c.tonnage
}

// JoinDate returns the date the driver joined.
func (c CreateDriverCommand) JoinDate() kernel.Date {
	return c.joinDate
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return ErrPhoneNumberIsRequired
	}

	c.phoneNumber = phoneNumber
	return nil
}

func (c *CreateDriverCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}

	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateDriverCommand) setTonnage(tonnage decimal.Decimal) error {
	if !tonnage.IsPositive() {
		return ErrTonnageIsInvalid
	}

	c.tonnage = tonnage
	return nil
}

func (c *CreateDriverCommand) setJoinDate(joinDate kernel.Date) error {
	if err := joinDate.Validate(); err != nil {
		return err
	}

	c.joinDate = joinDate
	return nil
}
