package discount

import (
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	// MinPercent is the lowest valid discount percentage.
	MinPercent = 0
	// MaxPercent is the highest valid discount percentage.
	MaxPercent = 100
)

// ErrPercentIsNotConstructed is returned when a Percent instance was not
// created through NewPercent. This keeps out-of-range percentages from ever
// entering the pricing path.
var ErrPercentIsNotConstructed = errs.NewValueIsRequiredError("Percent must be created via NewPercent")

// Percent is a value object representing a discount percentage in
// [MinPercent, MaxPercent]. Range validation happens here, at the admin
// input boundary, so Apply itself needs no error path.
//
// Percent is immutable and safe for concurrent use.
type Percent struct {
	value int

	guard guard.ConstructorGuard
}

// NewPercent creates a validated discount percentage.
//
// Returns:
//   - Percent: The created percentage if it lies within [0, 100]
//   - error: ValueIsOutOfRangeError otherwise
func NewPercent(value int) (Percent, error) {
	if value < MinPercent || value > MaxPercent {
		return Percent{}, errs.NewValueIsOutOfRangeError("discount percent", value, MinPercent, MaxPercent)
	}
	return Percent{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Zero returns the neutral discount of 0%.
func Zero() Percent {
	p, _ := NewPercent(0)
	return p
}

// Validate ensures the Percent was created through NewPercent.
func (p Percent) Validate() error {
	return p.guard.Validate(ErrPercentIsNotConstructed)
}

// Value returns the percentage as an integer.
func (p Percent) Value() int {
	return p.value
}

// Apply computes the discounted price:
//
//	price - floor(price * percent / 100)
//
// Integer division floors the rebate, so the result is always within
// [0, price] for any valid percentage. Apply is a pure function with no
// error conditions.
func (p Percent) Apply(price int) int {
	return price - price*p.value/100
}
