package console

import (
	"context"
	"fmt"
	"io"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
)

// paymentMethods are the labels offered at checkout.
var paymentMethods = []string{"Credit card", "Debit card", "Digital Wallet"}

// userMenu serves one customer session. Returns io.EOF when the input
// ends; every other failure is printed and the menu repeats.
func (c *Console) userMenu(ctx context.Context) error {
	userName, err := c.readLine("Enter your name: ")
	if err != nil {
		return err
	}
	if userName == "" {
		c.printError(fmt.Errorf("a name is required"))
		return nil
	}

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintf(c.out, "=== Hello, %s ===\n", userName)
		fmt.Fprintln(c.out, "1. Order a pizza from the menu")
		fmt.Fprintln(c.out, "2. Order a customized pizza")
		fmt.Fprintln(c.out, "3. Reorder a customized pizza")
		fmt.Fprintln(c.out, "4. View order history")
		fmt.Fprintln(c.out, "5. View price breakdown")
		fmt.Fprintln(c.out, "6. Give feedback")
		fmt.Fprintln(c.out, "7. Back")

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
			actionErr = c.orderStandard(ctx, userName)
		case 2:
			actionErr = c.orderCustomized(ctx, userName)
		case 3:
			actionErr = c.reorder(ctx, userName)
		case 4:
			actionErr = c.showHistory(ctx, userName)
		case 5:
			actionErr = c.showBreakdown(ctx, userName)
		case 6:
			actionErr = c.giveFeedback(ctx, userName)
		case 7:
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

// orderStandard walks through the fixed menu flow.
func (c *Console) orderStandard(ctx context.Context, userName string) error {
	menu := pizza.Menu()
	options := make([]string, len(menu))
	for i, item := range menu {
		options[i] = fmt.Sprintf("%s (%s)", item.Name, money(item.BaseCost))
	}

	itemChoice, err := c.pickFrom("--- Our Pizzas ---", options)
	if err != nil {
		return err
	}
	item, err := pizza.MenuItemAt(itemChoice)
	if err != nil {
		return err
	}

	sizeChoice, err := c.pickFrom("--- Size ---", []string{"Small", "Medium (+Rs. 500)", "Large (+Rs. 1000)"})
	if err != nil {
		return err
	}

	cheese, err := c.readYesNo("Extra cheese (+Rs. 250)? (y/n): ")
	if err != nil {
		return err
	}

	pz, err := pizza.NewBuilder().
		Name(item.Name).
		Size(pizza.Size(sizeChoice)).
		Cheese(cheese).
		BuildStandard(item.BaseCost)
	if err != nil {
		return err
	}

	return c.placeAndPay(ctx, userName, pz)
}

// orderCustomized walks through the build-your-own flow. Customized pizzas
// are always placed as Small.
func (c *Console) orderCustomized(ctx context.Context, userName string) error {
	name, err := c.readLine("Name your creation: ")
	if err != nil {
		return err
	}

	crustChoice, err := c.pickFrom("--- Crust ---", pizza.Crusts())
	if err != nil {
		return err
	}
	sauceChoice, err := c.pickFrom("--- Sauce ---", pizza.Sauces())
	if err != nil {
		return err
	}
	toppingChoice, err := c.pickFrom("--- Topping ---", pizza.Toppings())
	if err != nil {
		return err
	}
	cheese, err := c.readYesNo("Extra cheese (+Rs. 250)? (y/n): ")
	if err != nil {
		return err
	}

	pz, err := pizza.NewBuilder().
		Name(name).
		Size(pizza.Small).
		Crust(pizza.Crusts()[crustChoice-1]).
		Sauce(pizza.Sauces()[sauceChoice-1]).
		Topping(pizza.Toppings()[toppingChoice-1]).
		Cheese(cheese).
		BuildCustomized()
	if err != nil {
		return err
	}

	return c.placeAndPay(ctx, userName, pz)
}

// placeAndPay runs the shared tail of both ordering flows: delivery
// option, placement, breakdown display, payment.
func (c *Console) placeAndPay(ctx context.Context, userName string, pz pizza.Pizza) error {
	optionChoice, err := c.pickFrom("--- Delivery ---", []string{"Pickup", "Home Delivery"})
	if err != nil {
		return err
	}

	option := order.Pickup
	location := ""
	if optionChoice == 2 {
		option = order.HomeDelivery
		if location, err = c.readLine("Delivery address: "); err != nil {
			return err
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(userName, pz, option, location)
	if err != nil {
		return err
	}

	result, err := c.handlers.PlaceOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	o := result.Order
	fmt.Fprintf(c.out, "\nOrder #%s placed: %s for %s\n",
		o.ID().Short(), pz.Name(), money(o.FinalPrice()))
	c.printBreakdown(o.ID().Short(), pz.Name(), o.PriceBreakdown())
	if result.HasEstimate {
		fmt.Fprintf(c.out, "Estimated delivery time: about %d minutes\n", result.EstimatedMinutes)
	}

	methodChoice, err := c.pickFrom("--- Payment ---", paymentMethods)
	if err != nil {
		return err
	}

	index := len(c.mustHistory(ctx, userName))
	payCmd, err := commands.NewCompletePaymentCommand(userName, index, paymentMethods[methodChoice-1])
	if err != nil {
		return err
	}

	if _, err = c.handlers.CompletePayment.Handle(ctx, payCmd); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Payment accepted via %s. Your pizza is on its way through the kitchen!\n",
		paymentMethods[methodChoice-1])
	return nil
}

// mustHistory returns the current history length's items; an empty slice
// on error. Used only to resolve the index of the just-placed order.
func (c *Console) mustHistory(ctx context.Context, userName string) []queries.GetOrderHistoryQueryResponse {
	query, err := queries.NewGetOrderHistoryQuery(userName)
	if err != nil {
		return nil
	}
	history, err := c.handlers.OrderHistory.Handle(ctx, query)
	if err != nil {
		return nil
	}
	return history
}

// reorder lists previous customized orders and repeats the chosen one.
func (c *Console) reorder(ctx context.Context, userName string) error {
	history := c.mustHistory(ctx, userName)

	shown := false
	for _, item := range history {
		if item.Variant != pizza.Customized {
			continue
		}
		if !shown {
			fmt.Fprintln(c.out, "--- Your Customized Pizzas ---")
			shown = true
		}
		fmt.Fprintf(c.out, "%d. %s (%s)\n", item.Index, item.PizzaName, money(item.FinalPrice))
	}
	if !shown {
		fmt.Fprintln(c.out, "You have no customized pizzas to reorder yet.")
		return nil
	}

	index, err := c.readInt("Order number to repeat: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewReorderCommand(userName, index)
	if err != nil {
		return err
	}

	o, err := c.handlers.Reorder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Order #%s placed again as pickup for %s, charged to your %s.\n",
		o.ID().Short(), money(o.FinalPrice()), o.PaymentMethod())
	return nil
}

// showHistory prints the full order history.
func (c *Console) showHistory(ctx context.Context, userName string) error {
	query, err := queries.NewGetOrderHistoryQuery(userName)
	if err != nil {
		return err
	}

	history, err := c.handlers.OrderHistory.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(c.out, "No orders yet.")
		return nil
	}

	fmt.Fprintln(c.out, "--- Order History ---")
	for _, item := range history {
		fmt.Fprintf(c.out, "%d. #%s %s [%s] %s via %s - %s\n",
			item.Index, item.OrderNumber, item.PizzaName, item.Variant,
			money(item.FinalPrice), item.DeliveryOption, item.Status)
	}
	return nil
}

// showBreakdown prints the itemized price of one order.
func (c *Console) showBreakdown(ctx context.Context, userName string) error {
	index, err := c.readInt("Order number: ")
	if err != nil {
		return err
	}

	query, err := queries.NewGetPriceBreakdownQuery(userName, index)
	if err != nil {
		return err
	}

	response, err := c.handlers.PriceBreakdown.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printBreakdown(response.OrderNumber, response.PizzaName, response.Breakdown)
	return nil
}

func (c *Console) printBreakdown(orderNumber, pizzaName string, b order.Breakdown) {
	fmt.Fprintf(c.out, "--- Price Breakdown for #%s (%s) ---\n", orderNumber, pizzaName)
	fmt.Fprintf(c.out, "Pizza:    %s\n", money(b.PizzaCostExcludingCheese))
	fmt.Fprintf(c.out, "Cheese:   %s\n", money(b.CheeseCost))
	fmt.Fprintf(c.out, "Discount: -%s\n", money(b.DiscountAmount))
	fmt.Fprintf(c.out, "Total:    %s\n", money(b.FinalPrice))
}

// giveFeedback flags a completed order for admin review.
func (c *Console) giveFeedback(ctx context.Context, userName string) error {
	index, err := c.readInt("Order number: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordFeedbackCommand(userName, index)
	if err != nil {
		return err
	}

	if err = c.handlers.RecordFeedback.Handle(ctx, cmd); err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Thanks! Your feedback was recorded.")
	return nil
}
