package commands

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents a request to record the payment method
// for a previously placed order and kick off its timed status progression.
// The order is addressed by the one-based index in its owner's history.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	userName      string
	orderIndex    int
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to complete payment for an
// order. Validates that the user name and payment method are not empty and
// the index is positive.
func NewCompletePaymentCommand(
	userName string,
	orderIndex int,
	paymentMethod string,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserName(userName),
		cmd.setOrderIndex(orderIndex),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompletePaymentCommandIsNotConstructed if validation fails.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// UserName returns the name of the paying user.
func (c CompletePaymentCommand) UserName() string {
	return c.userName
}

// OrderIndex returns the one-based index of the order in the user's
// history.
func (c CompletePaymentCommand) OrderIndex() int {
	return c.orderIndex
}

// PaymentMethod returns the chosen payment method label.
func (c CompletePaymentCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CompletePaymentCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("user name")
	}

	c.userName = userName
	return nil
}

func (c *CompletePaymentCommand) setOrderIndex(orderIndex int) error {
	if orderIndex < 1 {
		return errs.NewValueIsInvalidError("order index")
	}

	c.orderIndex = orderIndex
	return nil
}

func (c *CompletePaymentCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	c.paymentMethod = paymentMethod
	return nil
}
