package discount_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercent(t *testing.T) {
	t.Run("should accept the full valid range", func(t *testing.T) {
		for _, value := range []int{0, 1, 10, 50, 99, 100} {
			p, err := discount.NewPercent(value)

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, value, p.Value())
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, value := range []int{-1, -100, 101, 1000} {
			_, err := discount.NewPercent(value)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject zero value Percent", func(t *testing.T) {
		var p discount.Percent

		require.Error(t, p.Validate())
	})

	t.Run("Zero should be a valid neutral discount", func(t *testing.T) {
		p := discount.Zero()

		require.NoError(t, p.Validate())
		assert.Equal(t, 0, p.Value())
	})
}

func TestPercent_Apply(t *testing.T) {
	t.Run("should floor the rebate", func(t *testing.T) {
		testCases := []struct {
			price    int
			percent  int
			expected int
		}{
			{2250, 10, 2025},
			{3000, 0, 3000},
			{1500, 100, 0},
			{999, 33, 670},  // rebate floor(999*33/100) = 329
			{1, 50, 1},      // rebate floor(0.5) = 0
			{1999, 1, 1980}, // rebate floor(19.99) = 19
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%d at %d%%", tc.price, tc.percent), func(t *testing.T) {
				p, err := discount.NewPercent(tc.percent)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, p.Apply(tc.price))
			})
		}
	})

	t.Run("should stay within [0, price] across the whole range", func(t *testing.T) {
		for value := 0; value <= 100; value++ {
			p, err := discount.NewPercent(value)
			require.NoError(t, err)

			final := p.Apply(2250)
			assert.GreaterOrEqual(t, final, 0)
			assert.LessOrEqual(t, final, 2250)
			assert.Equal(t, 2250-2250*value/100, final)
		}
	})
}

func TestRegistry(t *testing.T) {
	t.Run("should start with neutral active discount", func(t *testing.T) {
		r := discount.NewRegistry()

		assert.Equal(t, 0, r.Active().Value())
		assert.Empty(t, r.All())
	})

	t.Run("should activate the defined discount", func(t *testing.T) {
		r := discount.NewRegistry()
		ten, _ := discount.NewPercent(10)

		require.NoError(t, r.Define("spring", ten))

		assert.Equal(t, 10, r.Active().Value())
	})

	t.Run("last defined discount wins regardless of name", func(t *testing.T) {
		r := discount.NewRegistry()
		ten, _ := discount.NewPercent(10)
		twenty, _ := discount.NewPercent(20)
		five, _ := discount.NewPercent(5)

		require.NoError(t, r.Define("spring", ten))
		require.NoError(t, r.Define("summer", twenty))
		require.NoError(t, r.Define("spring", five))

		assert.Equal(t, 5, r.Active().Value())

		all := r.All()
		require.Len(t, all, 2)
		assert.Equal(t, "spring", all[0].Name)
		assert.Equal(t, 5, all[0].Percent.Value())
		assert.Equal(t, "summer", all[1].Name)
		assert.Equal(t, 20, all[1].Percent.Value())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		r := discount.NewRegistry()
		ten, _ := discount.NewPercent(10)

		err := r.Define("", ten)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed percent", func(t *testing.T) {
		r := discount.NewRegistry()
		var p discount.Percent

		err := r.Define("spring", p)

		require.Error(t, err)
		assert.Equal(t, 0, r.Active().Value())
	})
}
