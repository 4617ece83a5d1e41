package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrDefineDiscountCommandIsNotConstructed = errors.New(
	"DefineDiscountCommand must be created via NewDefineDiscountCommand constructor",
)

// DefineDiscountCommand represents an admin request to define a named
// discount and make it the globally active one.
type DefineDiscountCommand struct { //nolint:recvcheck //using for validation
	name    string
	percent discount.Percent

	guard guard.ConstructorGuard
}

// NewDefineDiscountCommand creates a command to define a discount.
// Validates that the name is not empty and the percentage is within
// 0 to 100.
func NewDefineDiscountCommand(name string, percentValue int) (DefineDiscountCommand, error) {
	cmd := DefineDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPercent(percentValue),
	); err != nil {
		return DefineDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDefineDiscountCommandIsNotConstructed if validation fails.
func (c DefineDiscountCommand) Validate() error {
	return c.guard.Validate(ErrDefineDiscountCommandIsNotConstructed)
}

// Name returns the discount name.
func (c DefineDiscountCommand) Name() string {
	return c.name
}

// Percent returns the validated discount percentage.
func (c DefineDiscountCommand) Percent() discount.Percent {
	return c.percent
}

func (c *DefineDiscountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("discount name")
	}

	c.name = name
	return nil
}

func (c *DefineDiscountCommand) setPercent(percentValue int) error {
	percent, err := discount.NewPercent(percentValue)
	if err != nil {
		return err
	}

	c.percent = percent
	return nil
}
