package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions to ensure orders follow the correct
// workflow after payment.
//
// State transitions:
//
//	Paid ──> Preparing ──┬──> ReadyForPickup            (Pickup, terminal)
//	                     └──> OutForDelivery ──> Delivered   (HomeDelivery)
//
// Every transition happens after a fixed delay and is observable exactly
// once. Status is a value object that validates state transitions and
// provides string representations for display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Paid is the initial status of every order. Orders remain Paid until
	// the kitchen picks them up.
	Paid

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// ReadyForPickup indicates a pickup order can be collected.
	// This is a final state for pickup orders.
	ReadyForPickup

	// OutForDelivery indicates a home-delivery order has left the shop.
	OutForDelivery

	// Delivered indicates a home-delivery order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Paid:           "Paid",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Paid:           "Paid",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Paid, Preparing, ReadyForPickup, OutForDelivery,
// Delivered. StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the progression.
// ReadyForPickup ends pickup orders; Delivered ends home-delivery orders.
func (s Status) IsTerminal() bool {
	return s == ReadyForPickup || s == Delivered
}

// Prepare transitions the status to Preparing.
//
// Valid transitions:
//   - Paid -> Preparing
//
// Returns:
//   - (Preparing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Prepare() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s.String()),
		)
	}
	return Preparing, nil
}

// Ready transitions the status to ReadyForPickup.
//
// Valid transitions:
//   - Preparing -> ReadyForPickup (pickup orders only)
//
// Returns:
//   - (ReadyForPickup, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Ready() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to become ready for pickup", s.String()),
		)
	}
	return ReadyForPickup, nil
}

// Dispatch transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Preparing -> OutForDelivery (home-delivery orders only)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Dispatch() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to go out for delivery", s.String()),
		)
	}
	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// Delivered is a final state with no further transitions possible.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to be delivered", s.String()),
		)
	}
	return Delivered, nil
}
