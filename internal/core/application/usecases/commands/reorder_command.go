package commands

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand represents a request to repeat a previous customized
// order as a fresh pickup order. The order to repeat is addressed by the
// one-based index in its owner's history.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	userName   string
	orderIndex int

	guard guard.ConstructorGuard
}

// NewReorderCommand creates a command to repeat a previous order.
// Validates that the user name is not empty and the index is positive.
// Whether the referenced order is actually reorderable is decided by the
// user aggregate when the command is handled.
func NewReorderCommand(userName string, orderIndex int) (ReorderCommand, error) {
	cmd := ReorderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserName(userName),
		cmd.setOrderIndex(orderIndex),
	); err != nil {
		return ReorderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReorderCommandIsNotConstructed if validation fails.
func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

// UserName returns the name of the reordering user.
func (c ReorderCommand) UserName() string {
	return c.userName
}

// OrderIndex returns the one-based index of the order to repeat.
func (c ReorderCommand) OrderIndex() int {
	return c.orderIndex
}

func (c *ReorderCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("user name")
	}

	c.userName = userName
	return nil
}

func (c *ReorderCommand) setOrderIndex(orderIndex int) error {
	if orderIndex < 1 {
		return errs.NewValueIsInvalidError("order index")
	}

	c.orderIndex = orderIndex
	return nil
}
