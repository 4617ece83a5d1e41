package pizza

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	// CheeseCost is the flat surcharge for extra cheese, in minor currency
	// units. It applies to both pizza variants.
	CheeseCost = 250

	// CustomizedBaseCost is the fixed base cost of every customized pizza.
	CustomizedBaseCost = 3000
)

// ErrPizzaIsNotConstructed is returned when a Pizza instance was not created
// through NewStandard, NewCustomized, or the Builder. This ensures all
// pizzas are properly validated.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewStandard or NewCustomized")

// Variant is the closed tag of the pizza sum type. Pizzas are either picked
// from the standard menu or customized ingredient by ingredient; no other
// variants exist.
type Variant int

const (
	// VariantUnknown represents an invalid or undefined variant.
	VariantUnknown Variant = iota

	// Standard is a pizza picked from the fixed menu. Its base cost comes
	// from the catalog and its size adds a surcharge.
	Standard

	// Customized is a pizza assembled from a crust, a sauce and a topping.
	// Its base cost is fixed and its size never adds a surcharge.
	Customized
)

// String returns the human-readable name of the variant.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "Standard"
	case Customized:
		return "Customized"
	default:
		return "Unknown"
	}
}

// Pizza is an immutable value object describing what was ordered. It is a
// tagged variant: the Variant tag decides which fields are meaningful and
// how the price is computed.
//
// Pizza follows these invariants:
//   - The base cost is set once at construction and never mutated
//   - Standard pizzas pay the size surcharge, customized pizzas do not,
//     even though both carry a size
//   - Customized pizzas always have a crust, a sauce and a topping
//   - Can only be created through the constructors or the Builder
//
// The surcharge asymmetry between the variants mirrors the pricing rule of
// the shop and is intentional.
type Pizza struct { //nolint:recvcheck //using for validation
	variant  Variant
	name     string
	size     Size
	cheese   bool
	crust    string
	sauce    string
	topping  string
	baseCost int

	guard guard.ConstructorGuard
}

// NewStandard creates a standard menu pizza.
//
// Parameters:
//   - name: The menu name of the pizza (must not be empty)
//   - size: The pizza size (must be a valid Size)
//   - cheese: Whether extra cheese is added
//   - baseCost: The catalog base cost (must be positive)
//
// Returns:
//   - Pizza: The created pizza if all validations pass
//   - error: Validation error if any parameter is invalid
func NewStandard(name string, size Size, cheese bool, baseCost int) (Pizza, error) {
	p := Pizza{
		variant: Standard,
		cheese:  cheese,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setSize(size),
		p.setBaseCost(baseCost),
	); err != nil {
		return Pizza{}, err
	}

	return p, nil
}

// NewCustomized creates a customized pizza from a crust, a sauce and a
// topping. The base cost is fixed at CustomizedBaseCost regardless of the
// chosen ingredients.
//
// Parameters:
//   - name: The custom name given by the user (must not be empty)
//   - size: The pizza size (must be a valid Size; the interactive flow
//     always passes Small)
//   - cheese: Whether extra cheese is added
//   - crust, sauce, topping: The chosen ingredients (must not be empty)
//
// Returns:
//   - Pizza: The created pizza if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCustomized(name string, size Size, cheese bool, crust, sauce, topping string) (Pizza, error) {
	p := Pizza{
		variant:  Customized,
		cheese:   cheese,
		baseCost: CustomizedBaseCost,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setName(name),
		p.setSize(size),
		p.setIngredient("crust", crust, &p.crust),
		p.setIngredient("sauce", sauce, &p.sauce),
		p.setIngredient("topping", topping, &p.topping),
	); err != nil {
		return Pizza{}, err
	}

	return p, nil
}

// Validate ensures the Pizza instance was properly constructed.
// Returns ErrPizzaIsNotConstructed for zero-value pizzas.
func (p Pizza) Validate() error {
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

// Variant returns the tag of the pizza variant.
func (p Pizza) Variant() Variant {
	return p.variant
}

// Name returns the pizza's name.
func (p Pizza) Name() string {
	return p.name
}

// Size returns the pizza's size.
func (p Pizza) Size() Size {
	return p.size
}

// HasCheese reports whether extra cheese was added.
func (p Pizza) HasCheese() bool {
	return p.cheese
}

// Crust returns the chosen crust. Empty for standard pizzas.
func (p Pizza) Crust() string {
	return p.crust
}

// Sauce returns the chosen sauce. Empty for standard pizzas.
func (p Pizza) Sauce() string {
	return p.sauce
}

// Topping returns the chosen topping. Empty for standard pizzas.
func (p Pizza) Topping() string {
	return p.topping
}

// BaseCost returns the pizza's base cost before any adjustments.
func (p Pizza) BaseCost() int {
	return p.baseCost
}

// Price computes the pizza's price in minor currency units, dispatching on
// the variant tag:
//
//	Standard:   baseCost + sizeSurcharge + (cheese ? CheeseCost : 0)
//	Customized: baseCost                 + (cheese ? CheeseCost : 0)
//
// The size surcharge is never applied to customized pizzas even though they
// carry a size. Price is a pure function over the pizza's fields and has no
// error conditions.
func (p Pizza) Price() int {
	price := p.baseCost
	if p.variant == Standard {
		price += p.size.Surcharge()
	}
	if p.cheese {
		price += CheeseCost
	}
	return price
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Pizza) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Pizza) setBaseCost(baseCost int) error {
	if baseCost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("base cost is invalid",
			fmt.Errorf("%d is not greater than 0", baseCost))
	}
	p.baseCost = baseCost
	return nil
}

func (p *Pizza) setIngredient(paramName, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = value
	return nil
}
