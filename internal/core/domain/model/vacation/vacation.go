// Package vacation contains the Vacation aggregate: a driver's time-off
// request with an inclusive date interval and a review status. Approved
// vacations covering a date remove the driver from that date's availability
// set.
package vacation

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrVacationIsNotConstructed is returned when a Vacation instance was not
// created through NewVacation or RestoreVacation.
var ErrVacationIsNotConstructed = errors.New("Vacation must be created via NewVacation or RestoreVacation")

// Vacation represents a driver's time-off interval. The interval is
// inclusive on both ends: a vacation 2024-06-10..2024-06-15 covers both the
// 10th and the 15th.
type Vacation struct {
	id          kernel.UUID
	driverID    kernel.UUID
	startDate   kernel.Date
	endDate     kernel.Date
	reason      string
	status      Status
	requestDate kernel.Date
	guard       guard.ConstructorGuard
}

// NewVacation creates a new vacation request in Pending status with today's
// request date. The start date must not be after the end date.
func NewVacation(
	id kernel.UUID,
	driverID kernel.UUID,
	startDate kernel.Date,
	endDate kernel.Date,
	reason string,
) (*Vacation, error) {
	v := &Vacation{
		reason:      reason,
		status:      Pending,
		requestDate: kernel.Today(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setDriver(driverID),
		v.setInterval(startDate, endDate),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVacation reconstructs a Vacation aggregate from persistent storage.
func RestoreVacation(
	id kernel.UUID,
	driverID kernel.UUID,
	startDate kernel.Date,
	endDate kernel.Date,
	reason string,
	status Status,
	requestDate kernel.Date,
) (*Vacation, error) {
	v := &Vacation{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setDriver(driverID),
		v.setInterval(startDate, endDate),
		v.setStatus(status),
		v.setRequestDate(requestDate),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vacation instance was properly constructed.
func (v *Vacation) Validate() error {
	if v == nil {
		return ErrVacationIsNotConstructed
	}
	return v.guard.Validate(ErrVacationIsNotConstructed)
}

// ID returns the vacation's unique identifier.
func (v *Vacation) ID() kernel.UUID {
	return v.id
}

// Driver returns the owning driver's identifier.
func (v *Vacation) Driver() kernel.UUID {
	return v.driverID
}

// StartDate returns the first day of the vacation.
func (v *Vacation) StartDate() kernel.Date {
	return v.startDate
}

// EndDate returns the last day of the vacation.
func (v *Vacation) EndDate() kernel.Date {
	return v.endDate
}

// Reason returns the optional free-text reason.
func (v *Vacation) Reason() string {
	return v.reason
}

// Status returns the review status.
func (v *Vacation) Status() Status {
	return v.status
}

// RequestDate returns the date the request was filed.
func (v *Vacation) RequestDate() kernel.Date {
	return v.requestDate
}

// Covers reports whether the given date falls inside the vacation interval,
// inclusive on both ends.
func (v *Vacation) Covers(date kernel.Date) bool {
	return !date.Before(v.startDate) && !date.After(v.endDate)
}

// Approve marks a pending request as approved.
func (v *Vacation) Approve() error {
	newStatus, err := v.status.Approve()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

// Reject marks a pending request as rejected.
func (v *Vacation) Reject() error {
	newStatus, err := v.status.Reject()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

func (v *Vacation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vacation) setDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	v.driverID = driverID
	return nil
}

func (v *Vacation) setInterval(startDate, endDate kernel.Date) error {
	if err := startDate.Validate(); err != nil {
		return err
	}
	if err := endDate.Validate(); err != nil {
		return err
	}
	if startDate.After(endDate) {
		return errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("%s is after end date %s", startDate, endDate))
	}
	v.startDate = startDate
	v.endDate = endDate
	return nil
}

func (v *Vacation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vacation) setRequestDate(requestDate kernel.Date) error {
	if err := requestDate.Validate(); err != nil {
		return err
	}
	v.requestDate = requestDate
	return nil
}
