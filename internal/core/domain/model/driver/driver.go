// Package driver contains the Driver aggregate: a vehicle operator with a
// tonnage capacity, a unique phone number, and a working status that feeds
// the availability computation.
package driver

import (
	"errors"
	"fmt"
	"regexp"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// phoneNumberPattern is the required phone format: 0XX-XXXX-XXXX.
var phoneNumberPattern = regexp.MustCompile(`^0\d{2}-\d{4}-\d{4}$`)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver represents a trucking driver. It is an aggregate root carrying the
// driver's identity, vehicle data, and working status.
//
// Invariants:
//   - Name, phone number, vehicle number, and vehicle type are non-blank
//   - Phone number matches 0XX-XXXX-XXXX (uniqueness across drivers is
//     enforced by the registration flow against the store)
//   - Tonnage capacity is a positive decimal
//   - Join date is not in the future
//
// The driver does not own its deliveries or vacations; both reference the
// driver by ID and are joined through store queries.
type Driver struct {
	id            kernel.UUID
	name          string
	phoneNumber   string
	vehicleNumber string
	vehicleType   string
	tonnage       decimal.Decimal
	status        Status
	joinDate      kernel.Date
	guard         guard.ConstructorGuard
}

// NewDriver creates a new Driver in Active status.
// All field rules are validated and violations aggregated into one error.
func NewDriver(
	id kernel.UUID,
	name string,
	phoneNumber string,
	vehicleNumber string,
	vehicleType string,
	tonnage decimal.Decimal,
	joinDate kernel.Date,
) (*Driver, error) {
	d := &Driver{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhoneNumber(phoneNumber),
		d.setVehicleNumber(vehicleNumber),
		d.setVehicleType(vehicleType),
		d.setTonnage(tonnage),
		d.setJoinDate(joinDate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its stored status.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phoneNumber string,
	vehicleNumber string,
	vehicleType string,
	tonnage decimal.Decimal,
	status Status,
	joinDate kernel.Date,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhoneNumber(phoneNumber),
		d.setVehicleNumber(vehicleNumber),
		d.setVehicleType(vehicleType),
		d.setTonnage(tonnage),
		d.setStatus(status),
		d.setJoinDate(joinDate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// PhoneNumber returns the driver's phone number.
func (d *Driver) PhoneNumber() string {
	return d.phoneNumber
}

// VehicleNumber returns the registration number of the driver's vehicle.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// VehicleType returns the type of the driver's vehicle.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// Tonnage returns the vehicle's feed tonnage capacity.
func (d *Driver) Tonnage() decimal.Decimal {
	return d.tonnage
}

// Status returns the driver's working status.
func (d *Driver) Status() Status {
	return d.status
}

// JoinDate returns the date the driver joined.
func (d *Driver) JoinDate() kernel.Date {
	return d.joinDate
}

// IsActive reports whether the driver is in Active status.
func (d *Driver) IsActive() bool {
	return d.status == Active
}

// CanCarry reports whether the driver's tonnage capacity covers the given
// feed tonnage.
func (d *Driver) CanCarry(feedTonnage decimal.Decimal) bool {
	return d.tonnage.GreaterThanOrEqual(feedTonnage)
}

// SetStatus changes the driver's working status.
func (d *Driver) SetStatus(status Status) error {
	return d.setStatus(status)
}

// UpdateProfile replaces the driver's editable fields. Status and join date
// are not touched; phone uniqueness is re-checked by the calling flow.
func (d *Driver) UpdateProfile(
	name string,
	phoneNumber string,
	vehicleNumber string,
	vehicleType string,
	tonnage decimal.Decimal,
) error {
	return errors.Join(
		d.setName(name),
		d.setPhoneNumber(phoneNumber),
		d.setVehicleNumber(vehicleNumber),
		d.setVehicleType(vehicleType),
		d.setTonnage(tonnage),
	)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if isBlank(name) {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhoneNumber(phoneNumber string) error {
	if isBlank(phoneNumber) {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	if !phoneNumberPattern.MatchString(phoneNumber) {
		return errs.NewValueIsInvalidErrorWithCause("phoneNumber",
			fmt.Errorf("%q does not match 0XX-XXXX-XXXX", phoneNumber))
	}
	d.phoneNumber = phoneNumber
	return nil
}

func (d *Driver) setVehicleNumber(vehicleNumber string) error {
	if isBlank(vehicleNumber) {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}
	d.vehicleNumber = vehicleNumber
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if isBlank(vehicleType) {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setTonnage(tonnage decimal.Decimal) error {
	if !tonnage.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("tonnage",
			fmt.Errorf("%s is not greater than 0", tonnage))
	}
	d.tonnage = tonnage
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setJoinDate(joinDate kernel.Date) error {
	if err := joinDate.Validate(); err != nil {
		return err
	}
	if joinDate.After(kernel.Today()) {
		return errs.NewValueIsInvalidErrorWithCause("joinDate",
			fmt.Errorf("%s is in the future", joinDate))
	}
	d.joinDate = joinDate
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
