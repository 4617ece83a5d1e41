package order

import (
	"errors"
	"sync"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Breakdown is the read-only price decomposition of an order. For any valid
// order the exact arithmetic identity
//
//	PizzaCostExcludingCheese + CheeseCost - FinalPrice == DiscountAmount
//
// holds, because every component is derived from the same undiscounted
// pizza price and the final price locked in at construction.
type Breakdown struct {
	// PizzaCostExcludingCheese is the pizza price minus the cheese cost.
	PizzaCostExcludingCheese int

	// CheeseCost is the extra-cheese surcharge, 0 without cheese.
	CheeseCost int

	// DiscountAmount is the rebate locked in at order time.
	DiscountAmount int

	// FinalPrice is the amount the customer pays.
	FinalPrice int
}

// Order represents a placed pizza order. It is the aggregate root that
// manages the order lifecycle from payment through preparation to pickup or
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed pizza
//   - The final price is computed exactly once at construction from the
//     pizza price and the discount active at that moment; later discount
//     changes never reprice the order
//   - Status transitions follow the state machine defined on Status and
//     respect the delivery option
//   - Can only be created through the NewOrder constructor
//
// The status and payment method are the only mutable fields. They are
// guarded by a mutex because transitions fire on background timelines while
// the foreground flow reads the order for display. Orders are never
// deleted; they stay in the owning user's history for the process lifetime.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// pizza is the immutable description of what was ordered
	pizza pizza.Pizza

	// deliveryOption selects the pickup or home-delivery branch
	deliveryOption DeliveryOption

	// deliveryLocation is free text, empty for pickup orders
	deliveryLocation string

	// finalPrice is the discounted price locked in at construction
	finalPrice int

	// mu guards status and paymentMethod
	mu sync.Mutex

	// status is the current state in the order lifecycle
	status Status

	// paymentMethod stays empty until the payment step completes
	paymentMethod string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Paid status and locks in its final price.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - pz: The ordered pizza (must be constructed)
//   - deliveryOption: Pickup or HomeDelivery
//   - deliveryLocation: Free-text destination; required for HomeDelivery
//   - activeDiscount: The discount percentage active right now (must be
//     constructed); it is applied once and never re-read
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	pz, _ := pizza.NewStandard("Pepperoni", pizza.Medium, true, 1500)
//	o, err := order.NewOrder(kernel.NewUUID(), pz, order.HomeDelivery,
//	    "12 Galle Road", registry.Active())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	pz pizza.Pizza,
	deliveryOption DeliveryOption,
	deliveryLocation string,
	activeDiscount discount.Percent,
) (*Order, error) {
	o := &Order{
		status:        Paid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPizza(pz),
		o.setDelivery(deliveryOption, deliveryLocation),
		o.setFinalPrice(pz, activeDiscount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Pizza returns the ordered pizza.
func (o *Order) Pizza() pizza.Pizza {
	return o.pizza
}

// DeliveryOption returns how the order reaches the customer.
func (o *Order) DeliveryOption() DeliveryOption {
	return o.deliveryOption
}

// DeliveryLocation returns the free-text destination. Empty for pickup
// orders.
func (o *Order) DeliveryLocation() string {
	return o.deliveryLocation
}

// FinalPrice returns the discounted price locked in at construction.
func (o *Order) FinalPrice() int {
	return o.finalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// PaymentMethod returns the payment method, or the empty string if the
// payment step has not completed yet.
func (o *Order) PaymentMethod() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.paymentMethod
}

// CompletePayment records the payment method chosen after placement.
//
// Returns:
//   - nil on success
//   - ValueIsRequiredError if the method is empty
func (o *Order) CompletePayment(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.paymentMethod = method
	return nil
}

// Prepare moves the order from Paid to Preparing.
func (o *Order) Prepare() error {
	return o.transition(Status.Prepare)
}

// Ready moves a pickup order from Preparing to ReadyForPickup.
// Returns an error for home-delivery orders.
func (o *Order) Ready() error {
	if o.deliveryOption != Pickup {
		return errs.NewValueIsInvalidError("only pickup orders become ready for pickup")
	}
	return o.transition(Status.Ready)
}

// Dispatch moves a home-delivery order from Preparing to OutForDelivery.
// Returns an error for pickup orders.
func (o *Order) Dispatch() error {
	if o.deliveryOption != HomeDelivery {
		return errs.NewValueIsInvalidError("only home-delivery orders go out for delivery")
	}
	return o.transition(Status.Dispatch)
}

// Deliver moves a home-delivery order from OutForDelivery to Delivered.
func (o *Order) Deliver() error {
	if o.deliveryOption != HomeDelivery {
		return errs.NewValueIsInvalidError("only home-delivery orders are delivered")
	}
	return o.transition(Status.Deliver)
}

// PriceBreakdown decomposes the order's price for display. See Breakdown
// for the identity it satisfies.
func (o *Order) PriceBreakdown() Breakdown {
	cheeseCost := 0
	if o.pizza.HasCheese() {
		cheeseCost = pizza.CheeseCost
	}
	fullPrice := o.pizza.Price()

	return Breakdown{
		PizzaCostExcludingCheese: fullPrice - cheeseCost,
		CheeseCost:               cheeseCost,
		DiscountAmount:           fullPrice - o.finalPrice,
		FinalPrice:               o.finalPrice,
	}
}

// transition applies a status transition under the lock so concurrent
// background timelines and foreground reads never observe a torn state.
func (o *Order) transition(step func(Status) (Status, error)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	newStatus, err := step(o.status)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setPizza validates and sets the ordered pizza.
// This is a private method used only during construction.
func (o *Order) setPizza(pz pizza.Pizza) error {
	if err := pz.Validate(); err != nil {
		return err
	}
	o.pizza = pz
	return nil
}

// setDelivery validates the delivery option and location together. A
// home-delivery order needs a destination; a pickup order may carry any
// informational text.
func (o *Order) setDelivery(option DeliveryOption, location string) error {
	if err := option.Validate(); err != nil {
		return err
	}
	if option == HomeDelivery && location == "" {
		return errs.NewValueIsRequiredError("delivery location")
	}

	o.deliveryOption = option
	o.deliveryLocation = location
	return nil
}

// setFinalPrice computes the discounted price exactly once. The discount
// percentage was snapshotted by the caller, so a concurrent admin update
// cannot split the read.
func (o *Order) setFinalPrice(pz pizza.Pizza, activeDiscount discount.Percent) error {
	if err := pz.Validate(); err != nil {
		// setPizza already reported this error
		return nil
	}
	if err := activeDiscount.Validate(); err != nil {
		return err
	}

	o.finalPrice = activeDiscount.Apply(pz.Price())
	return nil
}
