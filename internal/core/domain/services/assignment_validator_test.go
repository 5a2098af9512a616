package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingDelivery(t *testing.T, feedTonnage string) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		"Gimpo Farm",
		"77 Airport-ro, Gimpo",
		decimal.NewFromInt(450000),
		decimal.RequireFromString(feedTonnage),
		kernel.Today().AddDays(1),
		"",
	)
	require.NoError(t, err)
	return d
}

func activeDriver(t *testing.T, tonnage string) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(
		kernel.NewUUID(),
		"Kim Cheol-su",
		"010-1234-5678",
		"12가3456",
		"Truck",
		decimal.RequireFromString(tonnage),
		kernel.NewDate(2023, 1, 2),
	)
	require.NoError(t, err)
	return d
}

func TestAssignmentValidator_ValidateAssignment(t *testing.T) {
	validator := services.NewAssignmentValidator()

	t.Run("allows_valid_assignment", func(t *testing.T) {
		// Given
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "5.0")

		// When
		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{drv.ID()})

		// Then
		require.NoError(t, err)
	})

	t.Run("rejects_already_processed_delivery", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "5.0")
		require.NoError(t, dlv.Assign(drv.ID()))

		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{drv.ID()})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "already processed")
	})

	t.Run("rejects_inactive_driver", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "5.0")
		require.NoError(t, drv.SetStatus(driver.Inactive))

		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{drv.ID()})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("rejects_insufficient_tonnage", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "2.0")

		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{drv.ID()})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "2")
		assert.Contains(t, err.Error(), "3.5")
	})

	t.Run("allows_exactly_matching_tonnage", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "3.5")

		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{drv.ID()})

		require.NoError(t, err)
	})

	t.Run("rejects_unavailable_driver", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "5.0")
		other := activeDriver(t, "5.0")

		err := validator.ValidateAssignment(dlv, drv, []kernel.UUID{other.ID()})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("inactive_check_precedes_tonnage_check", func(t *testing.T) {
		dlv := pendingDelivery(t, "3.5")
		drv := activeDriver(t, "2.0")
		require.NoError(t, drv.SetStatus(driver.Inactive))

		err := validator.ValidateAssignment(dlv, drv, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("requires_delivery", func(t *testing.T) {
		err := validator.ValidateAssignment(nil, activeDriver(t, "5.0"), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_driver", func(t *testing.T) {
		err := validator.ValidateAssignment(pendingDelivery(t, "3.5"), nil, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
