package driver_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(
		kernel.NewUUID(),
		"Kim Minsoo",
		"010-1234-5678",
		"88B-4521",
		"5t truck",
		decimal.RequireFromString("5.0"),
		kernel.Today().AddDays(-365),
	)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("creates_active_driver", func(t *testing.T) {
		// When
		d := validDriver(t)

		// Then
		assert.Equal(t, driver.Active, d.Status())
		assert.True(t, d.IsActive())
		assert.Equal(t, "Kim Minsoo", d.Name())
		assert.Equal(t, "010-1234-5678", d.PhoneNumber())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "  ", "010-1234-5678", "88B-4521", "5t truck",
			decimal.NewFromInt(5), kernel.Today(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_malformed_phone_numbers", func(t *testing.T) {
		for _, phone := range []string{
			"010-12345-678",
			"10-1234-5678",
			"01012345678",
			"110-1234-5678",
			"010 1234 5678",
		} {
			_, err := driver.NewDriver(
				kernel.NewUUID(), "Kim Minsoo", phone, "88B-4521", "5t truck",
				decimal.NewFromInt(5), kernel.Today(),
			)

			require.Error(t, err, phone)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, phone)
		}
	})

	t.Run("rejects_non_positive_tonnage", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "Kim Minsoo", "010-1234-5678", "88B-4521", "5t truck",
			decimal.Zero, kernel.Today(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_future_join_date", func(t *testing.T) {
		_, err := driver.NewDriver(
			kernel.NewUUID(), "Kim Minsoo", "010-1234-5678", "88B-4521", "5t truck",
			decimal.NewFromInt(5), kernel.Today().AddDays(1),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores_stored_status", func(t *testing.T) {
		d, err := driver.RestoreDriver(
			kernel.NewUUID(), "Kim Minsoo", "010-1234-5678", "88B-4521", "5t truck",
			decimal.NewFromInt(5), driver.Inactive, kernel.Today().AddDays(-10),
		)

		require.NoError(t, err)
		assert.Equal(t, driver.Inactive, d.Status())
		assert.False(t, d.IsActive())
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), "Kim Minsoo", "010-1234-5678", "88B-4521", "5t truck",
			decimal.NewFromInt(5), driver.Unknown, kernel.Today(),
		)

		require.Error(t, err)
	})
}

func TestDriver_CanCarry(t *testing.T) {
	d := validDriver(t) // capacity 5.0

	assert.True(t, d.CanCarry(decimal.RequireFromString("3.5")))
	assert.True(t, d.CanCarry(decimal.RequireFromString("5.0")))
	assert.False(t, d.CanCarry(decimal.RequireFromString("5.01")))
}

func TestDriver_SetStatus(t *testing.T) {
	d := validDriver(t)

	require.NoError(t, d.SetStatus(driver.OnVacation))
	assert.Equal(t, driver.OnVacation, d.Status())

	require.Error(t, d.SetStatus(driver.Unknown))
	assert.Equal(t, driver.OnVacation, d.Status())
}

func TestDriver_UpdateProfile(t *testing.T) {
	t.Run("replaces_editable_fields", func(t *testing.T) {
		d := validDriver(t)

		err := d.UpdateProfile("Lee Jiwon", "010-8765-4321", "77A-1111", "8t truck",
			decimal.NewFromInt(8))

		require.NoError(t, err)
		assert.Equal(t, "Lee Jiwon", d.Name())
		assert.Equal(t, "010-8765-4321", d.PhoneNumber())
		assert.True(t, d.Tonnage().Equal(decimal.NewFromInt(8)))
	})

	t.Run("rejects_invalid_phone", func(t *testing.T) {
		d := validDriver(t)

		err := d.UpdateProfile("Lee Jiwon", "not-a-phone", "77A-1111", "8t truck",
			decimal.NewFromInt(8))

		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var d driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})
}
