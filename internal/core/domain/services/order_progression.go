package services

import (
	"fmt"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// OrderProgression is a domain service that advances an order one step
// along its status state machine. It encodes which transition comes next
// for each combination of current status and delivery option, leaving the
// timing of steps to the scheduler.
//
// Business rules:
//   - Paid orders start preparing
//   - Preparing pickup orders become ready for pickup (terminal)
//   - Preparing home-delivery orders go out for delivery
//   - Out-for-delivery orders are delivered (terminal)
//   - Advancing a completed progression is an error
//
// Example usage:
//
//	progression := services.NewOrderProgression()
//	status, more, err := progression.Advance(o)
//	if err != nil {
//	    // Order was invalid or already completed
//	    return
//	}
//	// status is the freshly entered state; more reports whether another
//	// step remains
type OrderProgression struct{}

// NewOrderProgression creates a new OrderProgression instance.
func NewOrderProgression() OrderProgression {
	return OrderProgression{}
}

// Advance applies the next status transition to the order.
//
// Parameters:
//   - o: The order to advance (must be valid)
//
// Returns:
//   - order.Status: The status the order just entered
//   - bool: Whether further transitions remain
//   - error: Validation error, or ValueIsInvalidError when the progression
//     has already completed
//
// Only one goroutine advances a given order at a time (the scheduler chains
// the steps), so the read-then-transition sequence is not racy.
func (p OrderProgression) Advance(o *order.Order) (order.Status, bool, error) {
	if err := o.Validate(); err != nil {
		return 0, false, err
	}

	switch status := o.Status(); status {
	case order.Paid:
		if err := o.Prepare(); err != nil {
			return 0, false, err
		}
		return order.Preparing, true, nil

	case order.Preparing:
		if o.DeliveryOption() == order.Pickup {
			if err := o.Ready(); err != nil {
				return 0, false, err
			}
			return order.ReadyForPickup, false, nil
		}
		if err := o.Dispatch(); err != nil {
			return 0, false, err
		}
		return order.OutForDelivery, true, nil

	case order.OutForDelivery:
		if err := o.Deliver(); err != nil {
			return 0, false, err
		}
		return order.Delivered, false, nil

	default:
		return 0, false, errs.NewValueIsInvalidErrorWithCause("progression is complete",
			fmt.Errorf("no transition exists from status %s", status))
	}
}
