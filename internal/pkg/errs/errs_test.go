package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driverId", "123")

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("destination")

		assert.Equal(t, "destination", err.ParamName)
		assert.Equal(t, "value is required: destination", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("destination", cause)

		assert.Equal(t, "value is required: destination (cause: missing required field)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("phoneNumber")

		assert.Equal(t, "phoneNumber", err.ParamName)
		assert.Equal(t, "value is invalid: phoneNumber", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phoneNumber", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phoneNumber (cause: invalid format)", err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("notes", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestBusinessRuleViolationError(t *testing.T) {
	t.Run("NewBusinessRuleViolationError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("delivery already processed")

		assert.Equal(t, "delivery already processed", err.Message)
		assert.Equal(t, "business rule violation: delivery already processed", err.Error())
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("NewBusinessRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("status mismatch")
		err := errs.NewBusinessRuleViolationErrorWithCause("delivery already processed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule violation: delivery already processed (cause: status mismatch)",
			err.Error())
	})
}

func TestAssignmentFailedError(t *testing.T) {
	t.Run("NewAssignmentFailedError", func(t *testing.T) {
		err := errs.NewAssignmentFailedError("could not persist assignment")

		assert.Equal(t, "assignment failed: could not persist assignment", err.Error())
		assert.ErrorIs(t, err, errs.ErrAssignmentFailed)
	})

	t.Run("NewAssignmentFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewAssignmentFailedErrorWithCause("could not persist assignment", cause)

		assert.Equal(t,
			"assignment failed: could not persist assignment (cause: connection reset)",
			err.Error())
	})
}

func TestDataIntegrityError(t *testing.T) {
	cause := errors.New("constraint violated")
	err := errs.NewDataIntegrityError("create delivery", cause)

	assert.Equal(t, "create delivery", err.Operation)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "data integrity violation: create delivery (cause: constraint violated)", err.Error())
	assert.ErrorIs(t, err, errs.ErrDataIntegrity)
}
