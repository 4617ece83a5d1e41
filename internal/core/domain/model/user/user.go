package user

import (
	"errors"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrNotReorderable is returned when a reorder references an order
	// whose pizza is not a customized one. Only customized pizzas are
	// offered for reorder.
	ErrNotReorderable = errors.New("only orders with customized pizzas can be reordered")
)

// User owns an append-only history of orders keyed by a unique name. The
// history preserves insertion order for the lifetime of the process; orders
// are never removed.
//
// The history is read by background jobs while the foreground flow appends
// to it, so access is guarded by a read-write mutex.
type User struct {
	// name is the unique key identifying the user
	name string

	// mu guards orders
	mu sync.RWMutex

	// orders is the append-only order history in insertion order
	orders []*order.Order

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a new User with an empty order history.
//
// Returns:
//   - *User: The created user if the name is not empty
//   - error: ValueIsRequiredError otherwise
func NewUser(name string) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("user name")
	}

	return &User{
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed through
// NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Name returns the user's unique name.
func (u *User) Name() string {
	return u.name
}

// Orders returns a snapshot of the order history in insertion order.
func (u *User) Orders() []*order.Order {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]*order.Order(nil), u.orders...)
}

// OrderAt returns the order at a one-based history index, as presented to
// the user. Returns an ObjectNotFoundError for an index outside the
// history.
func (u *User) OrderAt(index int) (*order.Order, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if index < 1 || index > len(u.orders) {
		return nil, errs.NewObjectNotFoundError("order index", index)
	}
	return u.orders[index-1], nil
}

// PlaceOrder constructs a new order for the given pizza and appends it to
// the history. The discount percentage must be snapshotted by the caller at
// the moment of placement; it is locked into the order's final price.
//
// Parameters:
//   - pz: The ordered pizza (must be constructed)
//   - option: Pickup or HomeDelivery
//   - location: Free-text destination; required for HomeDelivery
//   - activeDiscount: The discount active right now
//
// Returns:
//   - *order.Order: The placed order for display and payment follow-up
//   - error: Validation error; the history is untouched on failure
func (u *User) PlaceOrder(
	pz pizza.Pizza,
	option order.DeliveryOption,
	location string,
	activeDiscount discount.Percent,
) (*order.Order, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), pz, option, location, activeDiscount)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders = append(u.orders, o)
	return o, nil
}

// Reorder places a fresh order for the pizza of a previous order. Only
// orders with customized pizzas can be reordered; reorders are placed as
// pickup orders. The new order prices the identical pizza at the discount
// active right now, not at the original order's discount.
//
// Parameters:
//   - index: One-based history index of the order to repeat
//   - activeDiscount: The discount active right now
//
// Returns:
//   - *order.Order: The freshly placed order
//   - error: ObjectNotFoundError for a bad index, ErrNotReorderable for a
//     standard pizza; the history is untouched on failure
func (u *User) Reorder(index int, activeDiscount discount.Percent) (*order.Order, error) {
	previous, err := u.OrderAt(index)
	if err != nil {
		return nil, err
	}

	pz := previous.Pizza()
	if pz.Variant() != pizza.Customized {
		return nil, errs.NewValueIsInvalidErrorWithCause("order is not reorderable",
			fmt.Errorf("%w: order %s is a %s pizza", ErrNotReorderable, previous.ID().Short(), pz.Variant()))
	}

	return u.PlaceOrder(pz, order.Pickup, "", activeDiscount)
}

// CustomizedOrders returns the one-based history indexes and orders whose
// pizzas are customized, in history order. Used to present the reorder
// menu.
func (u *User) CustomizedOrders() []IndexedOrder {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var result []IndexedOrder
	for i, o := range u.orders {
		if o.Pizza().Variant() == pizza.Customized {
			result = append(result, IndexedOrder{Index: i + 1, Order: o})
		}
	}
	return result
}

// IndexedOrder pairs an order with its one-based position in the history.
type IndexedOrder struct {
	Index int
	Order *order.Order
}
