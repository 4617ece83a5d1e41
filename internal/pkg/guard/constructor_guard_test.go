package guard_test

import (
	"errors"
	"testing"

	"pizzeria/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be
// used in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Price struct {
		amount int
		guard  guard.ConstructorGuard
	}

	var errPriceNotConstructed = errors.New("Price must be created via NewPrice")

	newPrice := func(amount int) (Price, error) {
		if amount < 0 {
			return Price{}, errors.New("amount cannot be negative")
		}
		return Price{
			amount: amount,
			guard:  guard.NewConstructorGuard(),
		}, nil
	}

	validatePrice := func(p Price) error {
		return p.guard.Validate(errPriceNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		price, err := newPrice(1500)

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePrice(price))
		assert.Equal(t, 1500, price.amount)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var price Price // zero value

		// When
		err := validatePrice(price)

		// Then
		// Zero value Price has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errPriceNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPrice(-100)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")
	})
}
