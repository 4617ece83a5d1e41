package commands

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRecordFeedbackCommandIsNotConstructed = errors.New(
	"RecordFeedbackCommand must be created via NewRecordFeedbackCommand constructor",
)

// RecordFeedbackCommand represents a user request to flag a completed
// order for admin review. The order is addressed by the one-based index in
// its owner's history.
type RecordFeedbackCommand struct { //nolint:recvcheck //using for validation
	userName   string
	orderIndex int

	guard guard.ConstructorGuard
}

// NewRecordFeedbackCommand creates a command to record feedback for an
// order. Validates that the user name is not empty and the index is
// positive.
func NewRecordFeedbackCommand(userName string, orderIndex int) (RecordFeedbackCommand, error) {
	cmd := RecordFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserName(userName),
		cmd.setOrderIndex(orderIndex),
	); err != nil {
		return RecordFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordFeedbackCommandIsNotConstructed if validation fails.
func (c RecordFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeedbackCommandIsNotConstructed)
}

// UserName returns the name of the user giving feedback.
func (c RecordFeedbackCommand) UserName() string {
	return c.userName
}

// OrderIndex returns the one-based index of the order in the user's
// history.
func (c RecordFeedbackCommand) OrderIndex() int {
	return c.orderIndex
}

func (c *RecordFeedbackCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("user name")
	}

	c.userName = userName
	return nil
}

func (c *RecordFeedbackCommand) setOrderIndex(orderIndex int) error {
	if orderIndex < 1 {
		return errs.NewValueIsInvalidError("order index")
	}

	c.orderIndex = orderIndex
	return nil
}
