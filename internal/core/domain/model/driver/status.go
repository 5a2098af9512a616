package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents a driver's working state.
//
// Active drivers take part in availability and assignment. Inactive drivers
// are excluded until reactivated by an operator. OnVacation mirrors an
// approved vacation covering the current date; it is maintained by the daily
// vacation sync and is informational; availability itself is always derived
// from the vacation records, never from this flag.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active drivers are eligible for assignment.
	Active

	// Inactive drivers are excluded from all availability computations.
	Inactive

	// OnVacation marks a driver whose approved vacation covers today.
	OnVacation
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Active:     "Active",
		Inactive:   "Inactive",
		OnVacation: "OnVacation",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Active && s != Inactive && s != OnVacation {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
