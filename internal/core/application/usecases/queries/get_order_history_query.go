// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries return read models shaped for console display and
// never mutate domain state.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves a user's full order history in placement
// order.
//
// Example:
//
//	query, _ := NewGetOrderHistoryQuery("mario")
//	history, err := handler.Handle(ctx, query)
//	for _, item := range history {
//	    fmt.Printf("#%d %s %s - %s\n",
//	        item.Index, item.OrderNumber, item.PizzaName, item.Status)
//	}
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	userName string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a user's order history.
// Validates that the user name is not empty.
func NewGetOrderHistoryQuery(userName string) (GetOrderHistoryQuery, error) {
	if userName == "" {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("user name")
	}

	return GetOrderHistoryQuery{
		userName: userName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// UserName returns the name of the user whose history is requested.
func (q GetOrderHistoryQuery) UserName() string {
	return q.userName
}

// GetOrderHistoryQueryResponse is one order in the history read model.
// Index is the one-based position used to address the order in follow-up
// commands; OrderNumber is the short display form of the order ID.
type GetOrderHistoryQueryResponse struct {
	Index            int
	OrderNumber      string
	PizzaName        string
	Variant          pizza.Variant
	Status           order.Status
	DeliveryOption   order.DeliveryOption
	DeliveryLocation string
	PaymentMethod    string
	FinalPrice       int
}
