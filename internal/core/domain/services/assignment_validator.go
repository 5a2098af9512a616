package services

import (
	"fmt"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// AssignmentValidator is a domain service that enforces the business rules of
// assigning a driver to a delivery. Checks are applied in a fixed order and the
// first violation wins:
//
//  1. the delivery must still be pending
//  2. the driver must be active
//  3. the driver's vehicle must carry the delivery's feed tonnage
//  4. the driver must be available on the delivery date
//
// The availability check is expressed as membership in a pre-resolved set of
// available driver IDs, so the validator stays free of repository access.
type AssignmentValidator struct{}

// NewAssignmentValidator creates a new AssignmentValidator instance.
func NewAssignmentValidator() AssignmentValidator {
	return AssignmentValidator{}
}

// ValidateAssignment checks whether drv may be assigned to dlv.
// availableOnDate holds the IDs of all drivers available on the delivery date.
// A nil error means the assignment is allowed.
func (v AssignmentValidator) ValidateAssignment(
	dlv *delivery.Delivery, drv *driver.Driver, availableOnDate []kernel.UUID,
) error {
	if dlv == nil {
		return errs.NewValueIsRequiredError("delivery")
	}
	if drv == nil {
		return errs.NewValueIsRequiredError("driver")
	}

	if err := dlv.Status().ValidateAssign(); err != nil {
		return err
	}

	if !drv.IsActive() {
		return errs.NewBusinessRuleViolationError("driver is not active")
	}

	if !drv.CanCarry(dlv.FeedTonnage()) {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"driver vehicle tonnage %s is insufficient for feed tonnage %s",
			drv.Tonnage().String(), dlv.FeedTonnage().String()))
	}

	if !containsDriver(availableOnDate, drv.ID()) {
		return errs.NewBusinessRuleViolationError(fmt.Sprintf(
			"driver is not available on %s", dlv.DeliveryDate()))
	}

	return nil
}

func containsDriver(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
