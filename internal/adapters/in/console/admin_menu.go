package console

import (
	"context"
	"fmt"
	"io"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
)

// adminMenu serves the admin area: discount management and feedback
// review. Returns io.EOF when the input ends.
func (c *Console) adminMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== Admin ===")
		fmt.Fprintln(c.out, "1. Define discount")
		fmt.Fprintln(c.out, "2. View discounts")
		fmt.Fprintln(c.out, "3. View feedback")
		fmt.Fprintln(c.out, "4. Back")

		choice, err := c.readInt("Select an option: ")
		if err != nil {
			if err == io.EOF {
				return err
			}
			c.printError(err)
			continue
		}

		var actionErr error
		switch choice {
		case 1:
			actionErr = c.defineDiscount(ctx)
		case 2:
			actionErr = c.listDiscounts(ctx)
		case 3:
			actionErr = c.listFeedback(ctx)
		case 4:
			return nil
		default:
			c.printError(fmt.Errorf("unknown option %d", choice))
			continue
		}

		if actionErr == io.EOF {
			return actionErr
		}
		if actionErr != nil {
			c.printError(actionErr)
		}
	}
}

func (c *Console) defineDiscount(ctx context.Context) error {
	name, err := c.readLine("Discount name: ")
	if err != nil {
		return err
	}

	percent, err := c.readInt("Percentage (0-100): ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDefineDiscountCommand(name, percent)
	if err != nil {
		return err
	}

	if err = c.handlers.DefineDiscount.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Discount %s (%d%%) is now active for new orders.\n", name, percent)
	return nil
}

func (c *Console) listDiscounts(ctx context.Context) error {
	response, err := c.handlers.ListDiscounts.Handle(ctx, queries.NewListDiscountsQuery())
	if err != nil {
		return err
	}

	if len(response.Named) == 0 {
		fmt.Fprintln(c.out, "No discounts defined.")
		return nil
	}

	fmt.Fprintln(c.out, "--- Discounts ---")
	for _, named := range response.Named {
		fmt.Fprintf(c.out, "%s: %d%%\n", named.Name, named.Percent.Value())
	}
	fmt.Fprintf(c.out, "Currently active: %d%%\n", response.Active.Value())
	return nil
}

func (c *Console) listFeedback(ctx context.Context) error {
	responses, err := c.handlers.ListFeedback.Handle(ctx, queries.NewListFeedbackQuery())
	if err != nil {
		return err
	}

	if len(responses) == 0 {
		fmt.Fprintln(c.out, "No feedback yet.")
		return nil
	}

	fmt.Fprintln(c.out, "--- Feedback ---")
	for _, item := range responses {
		fmt.Fprintf(c.out, "#%s %s %s via %s - %s\n",
			item.OrderNumber, item.PizzaName, money(item.FinalPrice),
			item.DeliveryOption, item.Status)
	}
	return nil
}
