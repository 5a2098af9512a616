package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──┐
//	   ^            │             │       │
//	   │            ├─────────────┼──> Completed
//	   └────────────┴─────────────┘
//	      (assignment cancellation)
//
// Completed is the only terminal state. Cancelled exists as a stored status
// value for compatibility with historical records, but no engine transition
// produces it: cancelling an assignment returns the delivery to Pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the delivery is waiting for a driver.
	Pending

	// Assigned indicates a driver has been assigned but has not started.
	Assigned

	// InProgress indicates the driver has started the delivery.
	InProgress

	// Completed indicates the delivery has been delivered.
	// This is a terminal state with no further transitions.
	Completed

	// Cancelled is declared for parity with stored records; the engine never
	// transitions into it. Assignment cancellation returns to Pending instead.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid for storage.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if the status allows driver assignment without
// performing the transition. Only Pending deliveries may be assigned; any
// other status means the delivery was already processed.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"delivery already processed",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateDelete checks if a delivery in this status may be deleted.
// Deliveries that are in progress cannot be removed.
func (s Status) ValidateDelete() error {
	if s == InProgress {
		return errs.NewBusinessRuleViolationError("delivery in progress cannot be deleted")
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between delivery status and
// driver assignment: a driver must be present exactly when the status is
// Assigned, InProgress, or Completed.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	assignedState := s == Assigned || s == InProgress || s == Completed

	if driver && !assignedState {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !driver && assignedState {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns (0, error) with a business-rule violation for any other status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"delivery is not assigned",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed
//   - InProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"delivery is not assigned",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// CancelAssignment transitions the status back to Pending.
//
// Valid transitions:
//   - Assigned -> Pending
//   - InProgress -> Pending
func (s Status) CancelAssignment() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewBusinessRuleViolationErrorWithCause(
			"assignment can only be cancelled for assigned or in-progress deliveries",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Pending, nil
}
