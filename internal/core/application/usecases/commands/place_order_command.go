// Package commands contains write operations that mutate system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Each command validates its input in the constructor; each
// handler orchestrates domain objects and outbound ports.
package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place an order for a pizza.
// Encapsulates the ordering user, the configured pizza, and the chosen
// delivery option with its destination.
//
// Example:
//
//	pz, _ := pizza.NewStandard("Pepperoni", pizza.Small, true, 1500)
//	cmd, err := NewPlaceOrderCommand("mario", pz, order.HomeDelivery, "Colombo Fort")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userName string
	pizza    pizza.Pizza
	option   order.DeliveryOption
	location string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the user name is not empty, the pizza was built through
// its constructors, and the delivery option is known. The location is
// validated by the order aggregate itself, which requires it for home
// delivery.
func NewPlaceOrderCommand(
	userName string,
	pz pizza.Pizza,
	option order.DeliveryOption,
	location string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserName(userName),
		cmd.setPizza(pz),
		cmd.setOption(option),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UserName returns the name of the ordering user.
func (c PlaceOrderCommand) UserName() string {
	return c.userName
}

// Pizza returns the configured pizza to order.
func (c PlaceOrderCommand) Pizza() pizza.Pizza {
	return c.pizza
}

// Option returns the chosen delivery option.
func (c PlaceOrderCommand) Option() order.DeliveryOption {
	return c.option
}

// Location returns the free-text delivery destination.
// Empty for pickup orders.
func (c PlaceOrderCommand) Location() string {
	return c.location
}

func (c *PlaceOrderCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("user name")
	}

	c.userName = userName
	return nil
}

func (c *PlaceOrderCommand) setPizza(pz pizza.Pizza) error {
	if err := pz.Validate(); err != nil {
		return err
	}

	c.pizza = pz
	return nil
}

func (c *PlaceOrderCommand) setOption(option order.DeliveryOption) error {
	if err := option.Validate(); err != nil {
		return err
	}

	c.option = option
	return nil
}
