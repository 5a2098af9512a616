package vacation

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the review state of a vacation request.
//
// Requests start Pending and are resolved exactly once, to Approved or
// Rejected. Only Approved vacations remove a driver from availability.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending requests await review and do not affect availability.
	Pending

	// Approved vacations remove the driver from availability for the
	// covered dates.
	Approved

	// Rejected requests never affect availability.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
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

// Approve transitions the status to Approved. Only Pending requests can be
// reviewed.
func (s Status) Approve() (Status, error) {
	if s != Pending {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"vacation request already reviewed",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Approved, nil
}

// Reject transitions the status to Rejected. Only Pending requests can be
// reviewed.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"vacation request already reviewed",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return Rejected, nil
}
