package errs_test

import (
	"errors"
	"testing"

	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userName", "mario")

		assert.Equal(t, "userName", err.ParamName)
		assert.Equal(t, "mario", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: mario", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store lookup failed")
		err := errs.NewObjectNotFoundErrorWithCause("userName", "mario", cause)

		assert.Equal(t, "userName", err.ParamName)
		assert.Equal(t, "mario", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userName, ID is: mario (cause: store lookup failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderIndex", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("crust")

		assert.Equal(t, "crust", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: crust", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("crust", cause)

		assert.Equal(t, "crust", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: crust (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("discount percent", 150, 0, 100)

		assert.Equal(t, "discount percent", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 150 is discount percent, min value is 0, max value is 100",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("discount percent", -5, 0, 100, cause)

		assert.Equal(t, "discount percent", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is discount percent, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userName")

		assert.Equal(t, "userName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: userName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("userName", cause)

		assert.Equal(t, "userName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: userName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestErrorsIsClassification(t *testing.T) {
	t.Run("errors.Is matches the sentinel through wrapping", func(t *testing.T) {
		var err error = errs.NewValueIsOutOfRangeError("discount percent", 101, 0, 100)
		assert.True(t, errors.Is(err, errs.ErrValueIsOutOfRange))
		assert.False(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}
