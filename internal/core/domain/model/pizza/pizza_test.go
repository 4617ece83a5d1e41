package pizza_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandard(t *testing.T) {
	t.Run("should create valid standard pizza", func(t *testing.T) {
		p, err := pizza.NewStandard("Pepperoni", pizza.Medium, true, 1500)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, pizza.Standard, p.Variant())
		assert.Equal(t, "Pepperoni", p.Name())
		assert.Equal(t, pizza.Medium, p.Size())
		assert.True(t, p.HasCheese())
		assert.Equal(t, 1500, p.BaseCost())
		assert.Empty(t, p.Crust())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := pizza.NewStandard("", pizza.Small, false, 1500)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with invalid size", func(t *testing.T) {
		_, err := pizza.NewStandard("Pepperoni", pizza.SizeUnknown, false, 1500)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "size is invalid")
	})

	t.Run("should fail with non-positive base cost", func(t *testing.T) {
		for _, baseCost := range []int{0, -100} {
			_, err := pizza.NewStandard("Pepperoni", pizza.Small, false, baseCost)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "base cost is invalid")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := pizza.NewStandard("", pizza.SizeUnknown, false, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "size is invalid")
		assert.Contains(t, err.Error(), "base cost is invalid")
	})
}

func TestNewCustomized(t *testing.T) {
	t.Run("should create valid customized pizza", func(t *testing.T) {
		p, err := pizza.NewCustomized("My Pizza", pizza.Small, false,
			"Thin Crust", "Tomato Sauce", "Pepperoni")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, pizza.Customized, p.Variant())
		assert.Equal(t, "My Pizza", p.Name())
		assert.Equal(t, pizza.CustomizedBaseCost, p.BaseCost())
		assert.Equal(t, "Thin Crust", p.Crust())
		assert.Equal(t, "Tomato Sauce", p.Sauce())
		assert.Equal(t, "Pepperoni", p.Topping())
	})

	t.Run("should fail with missing ingredients", func(t *testing.T) {
		_, err := pizza.NewCustomized("My Pizza", pizza.Small, false, "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "crust")
		assert.Contains(t, err.Error(), "sauce")
		assert.Contains(t, err.Error(), "topping")
	})
}

func TestPizza_Validate(t *testing.T) {
	t.Run("should reject zero value pizza", func(t *testing.T) {
		var p pizza.Pizza

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, pizza.ErrPizzaIsNotConstructed, err)
	})
}

func TestPizza_Price_Standard(t *testing.T) {
	t.Run("should apply exact surcharge table", func(t *testing.T) {
		surcharges := map[pizza.Size]int{
			pizza.Small:  0,
			pizza.Medium: 500,
			pizza.Large:  1000,
		}

		for size, surcharge := range surcharges {
			t.Run(fmt.Sprintf("size %s", size), func(t *testing.T) {
				plain, err := pizza.NewStandard("Veggie Supreme", size, false, 1200)
				require.NoError(t, err)
				assert.Equal(t, 1200+surcharge, plain.Price())

				withCheese, err := pizza.NewStandard("Veggie Supreme", size, true, 1200)
				require.NoError(t, err)
				assert.Equal(t, 1200+surcharge+pizza.CheeseCost, withCheese.Price())
			})
		}
	})

	t.Run("should price medium pepperoni with cheese at 2250", func(t *testing.T) {
		p, err := pizza.NewStandard("Pepperoni", pizza.Medium, true, 1500)

		require.NoError(t, err)
		assert.Equal(t, 2250, p.Price())
	})
}

func TestPizza_Price_Customized(t *testing.T) {
	t.Run("should ignore size surcharge regardless of size", func(t *testing.T) {
		for _, size := range []pizza.Size{pizza.Small, pizza.Medium, pizza.Large} {
			p, err := pizza.NewCustomized("My Pizza", size, false,
				"Thick Crust", "BBQ Sauce", "Chili Chicken")

			require.NoError(t, err)
			assert.Equal(t, 3000, p.Price(), "size %s must not add a surcharge", size)
		}
	})

	t.Run("should add cheese cost only", func(t *testing.T) {
		p, err := pizza.NewCustomized("My Pizza", pizza.Small, true,
			"Thick Crust", "BBQ Sauce", "Chili Chicken")

		require.NoError(t, err)
		assert.Equal(t, 3250, p.Price())
	})
}

func TestSize(t *testing.T) {
	t.Run("should validate valid sizes", func(t *testing.T) {
		for _, size := range []pizza.Size{pizza.Small, pizza.Medium, pizza.Large} {
			require.NoError(t, size.Validate())
		}
	})

	t.Run("should reject unknown size", func(t *testing.T) {
		require.Error(t, pizza.SizeUnknown.Validate())
		require.Error(t, pizza.Size(42).Validate())
	})

	t.Run("should have string representations", func(t *testing.T) {
		assert.Equal(t, "Small", pizza.Small.String())
		assert.Equal(t, "Medium", pizza.Medium.String())
		assert.Equal(t, "Large", pizza.Large.String())
		assert.Equal(t, "Unknown", pizza.SizeUnknown.String())
		assert.Equal(t, "Unknown", pizza.Size(42).String())
	})
}

func TestBuilder(t *testing.T) {
	t.Run("should build standard pizza", func(t *testing.T) {
		p, err := pizza.NewBuilder().
			Name("Sausage Delight").
			Size(pizza.Large).
			Cheese(true).
			BuildStandard(1600)

		require.NoError(t, err)
		assert.Equal(t, pizza.Standard, p.Variant())
		assert.Equal(t, 1600+1000+pizza.CheeseCost, p.Price())
	})

	t.Run("should build customized pizza", func(t *testing.T) {
		p, err := pizza.NewBuilder().
			Name("Margherita Mia").
			Size(pizza.Small).
			Cheese(false).
			Crust("Thin Crust").
			Sauce("Pesto Sauce").
			Topping("Veggie Supreme").
			BuildCustomized()

		require.NoError(t, err)
		assert.Equal(t, pizza.Customized, p.Variant())
		assert.Equal(t, 3000, p.Price())
	})

	t.Run("should propagate validation errors", func(t *testing.T) {
		_, err := pizza.NewBuilder().Size(pizza.Small).BuildCustomized()

		require.Error(t, err)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("should expose the fixed menu", func(t *testing.T) {
		menu := pizza.Menu()

		require.Len(t, menu, 5)
		assert.Equal(t, pizza.MenuItem{Name: "Pepperoni", BaseCost: 1500}, menu[0])
		assert.Equal(t, pizza.MenuItem{Name: "Veggie Supreme", BaseCost: 1200}, menu[4])
	})

	t.Run("should resolve one-based menu choices", func(t *testing.T) {
		item, err := pizza.MenuItemAt(3)

		require.NoError(t, err)
		assert.Equal(t, "Sausage Delight", item.Name)
		assert.Equal(t, 1600, item.BaseCost)
	})

	t.Run("should reject out of range menu choices", func(t *testing.T) {
		for _, choice := range []int{0, -1, 6} {
			_, err := pizza.MenuItemAt(choice)
			require.Error(t, err)
		}
	})
}
