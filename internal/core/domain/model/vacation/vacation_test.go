package vacation_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vacation"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingVacation(t *testing.T) *vacation.Vacation {
	t.Helper()

	v, err := vacation.NewVacation(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewDate(2024, time.June, 10),
		kernel.NewDate(2024, time.June, 15),
		"family trip",
	)
	require.NoError(t, err)
	return v
}

func TestNewVacation(t *testing.T) {
	t.Run("creates_pending_request", func(t *testing.T) {
		v := pendingVacation(t)

		assert.Equal(t, vacation.Pending, v.Status())
		assert.True(t, v.RequestDate().IsEqual(kernel.Today()))
		assert.Equal(t, "family trip", v.Reason())
		require.NoError(t, v.Validate())
	})

	t.Run("allows_single_day_interval", func(t *testing.T) {
		day := kernel.NewDate(2024, time.June, 10)

		v, err := vacation.NewVacation(kernel.NewUUID(), kernel.NewUUID(), day, day, "")

		require.NoError(t, err)
		assert.True(t, v.Covers(day))
	})

	t.Run("rejects_start_after_end", func(t *testing.T) {
		_, err := vacation.NewVacation(
			kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewDate(2024, time.June, 16),
			kernel.NewDate(2024, time.June, 15),
			"",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_driver", func(t *testing.T) {
		_, err := vacation.NewVacation(
			kernel.NewUUID(), kernel.UUID{},
			kernel.NewDate(2024, time.June, 10),
			kernel.NewDate(2024, time.June, 15),
			"",
		)

		require.Error(t, err)
	})
}

func TestVacation_Covers(t *testing.T) {
	v := pendingVacation(t) // 2024-06-10 .. 2024-06-15

	assert.True(t, v.Covers(kernel.NewDate(2024, time.June, 10)), "inclusive start")
	assert.True(t, v.Covers(kernel.NewDate(2024, time.June, 12)))
	assert.True(t, v.Covers(kernel.NewDate(2024, time.June, 15)), "inclusive end")
	assert.False(t, v.Covers(kernel.NewDate(2024, time.June, 9)))
	assert.False(t, v.Covers(kernel.NewDate(2024, time.June, 16)))
}

func TestVacation_Approve(t *testing.T) {
	t.Run("approves_pending_request", func(t *testing.T) {
		v := pendingVacation(t)

		require.NoError(t, v.Approve())
		assert.Equal(t, vacation.Approved, v.Status())
	})

	t.Run("cannot_review_twice", func(t *testing.T) {
		v := pendingVacation(t)
		require.NoError(t, v.Approve())

		err := v.Approve()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, vacation.Approved, v.Status())
	})
}

func TestVacation_Reject(t *testing.T) {
	t.Run("rejects_pending_request", func(t *testing.T) {
		v := pendingVacation(t)

		require.NoError(t, v.Reject())
		assert.Equal(t, vacation.Rejected, v.Status())
	})

	t.Run("cannot_approve_after_reject", func(t *testing.T) {
		v := pendingVacation(t)
		require.NoError(t, v.Reject())

		require.Error(t, v.Approve())
		assert.Equal(t, vacation.Rejected, v.Status())
	})
}

func TestRestoreVacation(t *testing.T) {
	t.Run("restores_approved_vacation", func(t *testing.T) {
		v, err := vacation.RestoreVacation(
			kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewDate(2024, time.June, 10),
			kernel.NewDate(2024, time.June, 15),
			"family trip",
			vacation.Approved,
			kernel.NewDate(2024, time.May, 20),
		)

		require.NoError(t, err)
		assert.Equal(t, vacation.Approved, v.Status())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := vacation.RestoreVacation(
			kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewDate(2024, time.June, 10),
			kernel.NewDate(2024, time.June, 15),
			"", vacation.Unknown, kernel.Today(),
		)

		require.Error(t, err)
	})
}
