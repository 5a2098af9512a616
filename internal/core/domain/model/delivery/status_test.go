package delivery_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   delivery.Status
		expected string
	}{
		{delivery.Unknown, "Unknown"},
		{delivery.Pending, "Pending"},
		{delivery.Assigned, "Assigned"},
		{delivery.InProgress, "InProgress"},
		{delivery.Completed, "Completed"},
		{delivery.Cancelled, "Cancelled"},
		{delivery.Status(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.InProgress,
			delivery.Completed,
			delivery.Cancelled,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, delivery.Unknown.Validate())
		require.Error(t, delivery.Status(42).Validate())
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending_can_be_assigned", func(t *testing.T) {
		newStatus, err := delivery.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, delivery.Assigned, newStatus)
	})

	t.Run("non_pending_fails_as_already_processed", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Assigned,
			delivery.InProgress,
			delivery.Completed,
			delivery.Cancelled,
		} {
			_, err := s.Assign()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			assert.Contains(t, err.Error(), "already processed")
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("assigned_can_start", func(t *testing.T) {
		newStatus, err := delivery.Assigned.Start()

		require.NoError(t, err)
		assert.Equal(t, delivery.InProgress, newStatus)
	})

	t.Run("other_statuses_cannot_start", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending,
			delivery.InProgress,
			delivery.Completed,
		} {
			_, err := s.Start()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("assigned_and_in_progress_can_complete", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Assigned, delivery.InProgress} {
			newStatus, err := s.Complete()

			require.NoError(t, err, s.String())
			assert.Equal(t, delivery.Completed, newStatus)
		}
	})

	t.Run("other_statuses_cannot_complete", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Pending, delivery.Completed} {
			_, err := s.Complete()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		}
	})
}

func TestStatus_CancelAssignment(t *testing.T) {
	t.Run("assigned_and_in_progress_return_to_pending", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Assigned, delivery.InProgress} {
			newStatus, err := s.CancelAssignment()

			require.NoError(t, err, s.String())
			assert.Equal(t, delivery.Pending, newStatus)
		}
	})

	t.Run("other_statuses_cannot_cancel", func(t *testing.T) {
		for _, s := range []delivery.Status{delivery.Pending, delivery.Completed} {
			_, err := s.CancelAssignment()

			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_ValidateDelete(t *testing.T) {
	t.Run("in_progress_cannot_be_deleted", func(t *testing.T) {
		err := delivery.InProgress.ValidateDelete()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("all_other_statuses_can_be_deleted", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.Completed,
			delivery.Cancelled,
		} {
			require.NoError(t, s.ValidateDelete(), s.String())
		}
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("assigned_states_require_driver", func(t *testing.T) {
		for _, s := range []delivery.Status{
			delivery.Assigned,
			delivery.InProgress,
			delivery.Completed,
		} {
			require.NoError(t, s.ValidateCanHaveDriver(true), s.String())
			require.Error(t, s.ValidateCanHaveDriver(false), s.String())
		}
	})

	t.Run("pending_must_not_have_driver", func(t *testing.T) {
		require.NoError(t, delivery.Pending.ValidateCanHaveDriver(false))
		require.Error(t, delivery.Pending.ValidateCanHaveDriver(true))
	})
}
