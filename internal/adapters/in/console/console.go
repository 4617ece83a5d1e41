package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/pkg/errs"
)

// Handlers bundles every use-case handler the console dispatches to.
type Handlers struct {
	PlaceOrder      commands.PlaceOrderCommandHandler
	CompletePayment commands.CompletePaymentCommandHandler
	Reorder         commands.ReorderCommandHandler
	DefineDiscount  commands.DefineDiscountCommandHandler
	RecordFeedback  commands.RecordFeedbackCommandHandler

	OrderHistory   queries.GetOrderHistoryQueryHandler
	PriceBreakdown queries.GetPriceBreakdownQueryHandler
	ListDiscounts  queries.ListDiscountsQueryHandler
	ListFeedback   queries.ListFeedbackQueryHandler
}

// Console runs the interactive text menu. All state lives in the domain;
// the console only reads input, dispatches, and prints.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	handlers Handlers
	logger   *slog.Logger
}

// New creates a console reading line-based input from in and writing to
// out.
func New(in io.Reader, out io.Writer, handlers Handlers, logger *slog.Logger) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		handlers: handlers,
		logger:   logger.With("component", "console"),
	}
}

// Run serves the main menu until the user exits or the input ends.
// Errors from individual actions are printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the Pizza Palace!")

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== Main Menu ===")
		fmt.Fprintln(c.out, "1. Customer")
		fmt.Fprintln(c.out, "2. Admin")
		fmt.Fprintln(c.out, "3. Exit")

		choice, err := c.readInt("Select an option: ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			c.printError(err)
			continue
		}

		switch choice {
		case 1:
			if err := c.userMenu(ctx); err == io.EOF {
				return nil
			}
		case 2:
			if err := c.adminMenu(ctx); err == io.EOF {
				return nil
			}
		case 3:
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			c.printError(errs.NewValueIsInvalidError("menu choice"))
		}
	}
}

// readLine prompts and reads one input line. Returns io.EOF when the input
// is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts and reads one integer.
func (c *Console) readInt(prompt string) (int, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("number", err)
	}
	return value, nil
}

// readYesNo prompts for a y/n answer.
func (c *Console) readYesNo(prompt string) (bool, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errs.NewValueIsInvalidError("answer (expected y or n)")
	}
}

// pickFrom prints a numbered list and reads a one-based choice.
func (c *Console) pickFrom(title string, options []string) (int, error) {
	fmt.Fprintln(c.out, title)
	for i, option := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, option)
	}

	choice, err := c.readInt("Select an option: ")
	if err != nil {
		return 0, err
	}
	if choice < 1 || choice > len(options) {
		return 0, errs.NewValueIsOutOfRangeError("choice", choice, 1, len(options))
	}
	return choice, nil
}

// printError prints the failure and lets the caller continue the loop.
// io.EOF is propagated unchanged so loops can unwind.
func (c *Console) printError(err error) {
	fmt.Fprintf(c.out, "Sorry, that did not work: %v\n", err)
}

// money formats a price for display.
func money(amount int) string {
	return fmt.Sprintf("Rs. %d", amount)
}
