package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// DeliveryOption selects how the order reaches the customer. It decides
// which branch of the status state machine the order follows.
type DeliveryOption int

const (
	// DeliveryOptionUnknown represents an invalid or undefined option.
	DeliveryOptionUnknown DeliveryOption = iota

	// Pickup orders are collected at the shop; their progression ends at
	// ReadyForPickup.
	Pickup

	// HomeDelivery orders are driven to the customer; their progression
	// ends at Delivered.
	HomeDelivery
)

// Validate checks if the DeliveryOption value is valid.
func (d DeliveryOption) Validate() error {
	if d != Pickup && d != HomeDelivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery option is invalid",
			fmt.Errorf("%d is not a valid delivery option", d))
	}
	return nil
}

// String returns the human-readable name of the delivery option.
func (d DeliveryOption) String() string {
	switch d {
	case Pickup:
		return "Pickup"
	case HomeDelivery:
		return "Home Delivery"
	default:
		return "Unknown"
	}
}
