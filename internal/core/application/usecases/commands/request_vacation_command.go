package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRequestVacationCommandIsNotConstructed = errors.New(
	"RequestVacationCommand must be created via NewRequestVacationCommand constructor",
)

// RequestVacationCommand represents a driver's request for a vacation
// interval. The interval ordering rule lives in the vacation aggregate.
type RequestVacationCommand struct { //nolint:recvcheck //using for validation
	vacationID kernel.UUID
	driverID   kernel.UUID
	startDate  kernel.Date
	endDate    kernel.Date
	reason     string

	guard guard.ConstructorGuard
}

// NewRequestVacationCommand creates a command to file a vacation request.
func NewRequestVacationCommand(
	vacationID kernel.UUID,
	driverID kernel.UUID,
	startDate kernel.Date,
	endDate kernel.Date,
	reason string,
) (RequestVacationCommand, error) {
	cmd := RequestVacationCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVacationID(vacationID),
		cmd.setDriverID(driverID),
		cmd.setInterval(startDate, endDate),
	); err != nil {
		return RequestVacationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestVacationCommand) Validate() error {
	return c.guard.Validate(ErrRequestVacationCommandIsNotConstructed)
}

// VacationID returns the unique identifier for the vacation request.
func (c RequestVacationCommand) VacationID() kernel.UUID {
	return c.vacationID
}

// DriverID returns the identifier of the requesting driver.
func (c RequestVacationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// StartDate returns the first day of the requested interval.
func (c RequestVacationCommand) StartDate() kernel.Date {
	return c.startDate
}

// EndDate returns the last day of the requested interval.
func (c RequestVacationCommand) EndDate() kernel.Date {
	return c.endDate
}

// Reason returns the free-form request reason.
func (c RequestVacationCommand) Reason() string {
	return c.reason
}

func (c *RequestVacationCommand) setVacationID(vacationID kernel.UUID) error {
	if err := vacationID.Validate(); err != nil {
		return err
	}

	c.vacationID = vacationID
	return nil
}

func (c *RequestVacationCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RequestVacationCommand) setInterval(startDate, endDate kernel.Date) error {
	if err := errors.Join(startDate.Validate(), endDate.Validate()); err != nil {
		return err
	}

	c.startDate = startDate
	c.endDate = endDate
	return nil
}
