package pizza

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Size represents the size of a pizza. Each size maps to a fixed surcharge
// in minor currency units that is added on top of a standard pizza's base
// cost. Customized pizzas carry a size but never pay the surcharge.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// Small carries no surcharge.
	Small

	// Medium carries a surcharge of 500.
	Medium

	// Large carries a surcharge of 1000.
	Large
)

// getSizeStrings returns a map of Size values to their string representations.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "Unknown",
		Small:       "Small",
		Medium:      "Medium",
		Large:       "Large",
	}
}

// getSizeSurcharges returns the surcharge table for valid sizes.
// Only valid sizes are included to support validation.
func getSizeSurcharges() map[Size]int {
	return map[Size]int{
		Small:  0,
		Medium: 500,
		Large:  1000,
	}
}

// Validate checks if the Size value is valid.
//
// Valid sizes are: Small, Medium, Large. SizeUnknown (0) and any other
// values are invalid.
func (s Size) Validate() error {
	if _, ok := getSizeSurcharges()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// Surcharge returns the amount added to a standard pizza's base cost for
// this size. Invalid sizes have no surcharge.
func (s Size) Surcharge() int {
	return getSizeSurcharges()[s]
}

// String returns the human-readable name of the size.
// This method implements the fmt.Stringer interface and is safe to call on
// any Size value, including invalid ones.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
