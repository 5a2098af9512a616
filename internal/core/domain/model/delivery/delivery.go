package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through one of the constructor functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery, NewHistoricalDelivery, or RestoreDelivery")

// Delivery represents a single feed shipment. It is the aggregate root that
// owns the delivery lifecycle from creation through driver assignment to
// completion.
//
// Invariants:
//   - Destination and address are non-blank
//   - Price and feed tonnage are positive decimals
//   - A driver reference is present exactly when the status is Assigned,
//     InProgress, or Completed
//   - assignedAt / startedAt / completedAt are set only by the corresponding
//     transition; cancellation clears the driver and the assigned/started
//     timestamps
//
// The struct uses private fields; all mutation goes through the transition
// methods, which fail without side effects when a precondition does not hold.
type Delivery struct {
	id           kernel.UUID
	destination  string
	address      string
	price        decimal.Decimal
	feedTonnage  decimal.Decimal
	deliveryDate kernel.Date
	driverID     *kernel.UUID
	status       Status
	createdAt    time.Time
	assignedAt   *time.Time
	startedAt    *time.Time
	completedAt  *time.Time
	notes        string
	guard        guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in Pending status.
//
// Validation rules:
//   - id must be a valid UUID
//   - destination and address must be non-blank
//   - price and feedTonnage must be greater than zero
//   - deliveryDate must not be in the past
//
// All violations are aggregated into a single error.
func NewDelivery(
	id kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		status:    Pending,
		createdAt: time.Now(),
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDestination(destination),
		d.setAddress(address),
		d.setPrice(price),
		d.setFeedTonnage(feedTonnage),
		d.setDeliveryDate(deliveryDate, false),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// NewHistoricalDelivery creates a back-filled Delivery directly in Completed
// status. Historical records skip the past-date validation; all other field
// rules still apply. The driver reference, if any, is attached by the caller
// through RestoreDelivery semantics and the completion timestamp stays unset,
// matching how imported records arrive.
func NewHistoricalDelivery(
	id kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	driverID *kernel.UUID,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		status:    Completed,
		createdAt: time.Now(),
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDestination(destination),
		d.setAddress(address),
		d.setPrice(price),
		d.setFeedTonnage(feedTonnage),
		d.setDeliveryDate(deliveryDate, true),
		d.setDriver(driverID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery it accepts any stored status and timestamps, but it still
// verifies field rules and the status/driver consistency invariant, so corrupt
// rows cannot re-enter the domain.
func RestoreDelivery(
	id kernel.UUID,
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	driverID *kernel.UUID,
	status Status,
	createdAt time.Time,
	assignedAt *time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		createdAt:   createdAt,
		assignedAt:  assignedAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDestination(destination),
		d.setAddress(address),
		d.setPrice(price),
		d.setFeedTonnage(feedTonnage),
		d.setDeliveryDate(deliveryDate, true),
		d.setStatus(status),
		d.setDriver(driverID),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Destination returns the delivery destination name.
func (d *Delivery) Destination() string {
	return d.destination
}

// Address returns the delivery address.
func (d *Delivery) Address() string {
	return d.address
}

// Price returns the delivery price in currency units.
func (d *Delivery) Price() decimal.Decimal {
	return d.price
}

// FeedTonnage returns the feed weight to be carried.
func (d *Delivery) FeedTonnage() decimal.Decimal {
	return d.feedTonnage
}

// DeliveryDate returns the scheduled calendar date.
func (d *Delivery) DeliveryDate() kernel.Date {
	return d.deliveryDate
}

// Driver returns the assigned driver's ID, or nil when unassigned.
func (d *Delivery) Driver() *kernel.UUID {
	return d.driverID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// AssignedAt returns the assignment timestamp, or nil if never assigned.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// StartedAt returns the start timestamp, or nil if never started.
func (d *Delivery) StartedAt() *time.Time {
	return d.startedAt
}

// CompletedAt returns the completion timestamp, or nil if not completed.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// Notes returns the free-text notes attached to the delivery.
func (d *Delivery) Notes() string {
	return d.notes
}

// Assign assigns the delivery to a driver and moves it to Assigned status.
// The delivery must be Pending; otherwise a business-rule violation is
// returned and nothing changes. Sets the assignedAt timestamp.
//
// Assign only records the transition on the aggregate; the eligibility checks
// (driver active, capacity, availability) belong to the assignment validator
// and must pass before calling this method.
func (d *Delivery) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.driverID = &driverID
	d.assignedAt = &now
	return nil
}

// Start moves an Assigned delivery to InProgress and sets startedAt.
func (d *Delivery) Start() error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.startedAt = &now
	return nil
}

// Complete moves an Assigned or InProgress delivery to Completed and sets
// completedAt. Completed is terminal.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now()
	d.status = newStatus
	d.completedAt = &now
	return nil
}

// CancelAssignment reverts an Assigned or InProgress delivery to Pending,
// clearing the driver reference and the assigned/started timestamps. It is
// the inverse of Assign (+Start).
func (d *Delivery) CancelAssignment() error {
	newStatus, err := d.status.CancelAssignment()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = nil
	d.assignedAt = nil
	d.startedAt = nil
	return nil
}

// UpdateDetails replaces the editable fields of a Pending delivery.
// Deliveries that have entered the assignment flow can no longer be edited.
func (d *Delivery) UpdateDetails(
	destination string,
	address string,
	price decimal.Decimal,
	feedTonnage decimal.Decimal,
	deliveryDate kernel.Date,
	notes string,
) error {
	if d.status != Pending {
		return errs.NewBusinessRuleViolationError("delivery already processed")
	}

	if err := errors.Join(
		d.setDestination(destination),
		d.setAddress(address),
		d.setPrice(price),
		d.setFeedTonnage(feedTonnage),
		d.setDeliveryDate(deliveryDate, false),
	); err != nil {
		return err
	}

	d.notes = notes
	return nil
}

// ValidateDelete reports whether the delivery may be removed.
func (d *Delivery) ValidateDelete() error {
	return d.status.ValidateDelete()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setDestination(destination string) error {
	if isBlank(destination) {
		return errs.NewValueIsRequiredError("destination")
	}
	d.destination = destination
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if isBlank(address) {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Delivery) setFeedTonnage(feedTonnage decimal.Decimal) error {
	if !feedTonnage.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("feedTonnage",
			fmt.Errorf("%s is not greater than 0", feedTonnage))
	}
	d.feedTonnage = feedTonnage
	return nil
}

// setDeliveryDate validates the scheduled date. Historical records bypass the
// past-date check so completed shipments can be back-filled.
func (d *Delivery) setDeliveryDate(date kernel.Date, historical bool) error {
	if err := date.Validate(); err != nil {
		return err
	}
	if !historical && date.Before(kernel.Today()) {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate",
			fmt.Errorf("%s is in the past", date))
	}
	d.deliveryDate = date
	return nil
}

func (d *Delivery) setDriver(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
