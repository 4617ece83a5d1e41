package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetPriceBreakdownQueryIsNotConstructed = errors.New(
	"GetPriceBreakdownQuery must be created via NewGetPriceBreakdownQuery constructor",
)

// GetPriceBreakdownQuery retrieves the itemized price of a single order,
// addressed by the one-based index in its owner's history.
type GetPriceBreakdownQuery struct { //nolint:recvcheck //using for validation
	userName   string
	orderIndex int

	guard guard.ConstructorGuard
}

// NewGetPriceBreakdownQuery creates a query for an order's price
// breakdown. Validates that the user name is not empty and the index is
// positive.
func NewGetPriceBreakdownQuery(userName string, orderIndex int) (GetPriceBreakdownQuery, error) {
	if userName == "" {
		return GetPriceBreakdownQuery{}, errs.NewValueIsRequiredError("user name")
	}
	if orderIndex < 1 {
		return GetPriceBreakdownQuery{}, errs.NewValueIsInvalidError("order index")
	}

	return GetPriceBreakdownQuery{
		userName:   userName,
		orderIndex: orderIndex,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPriceBreakdownQueryIsNotConstructed if validation fails.
func (q GetPriceBreakdownQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceBreakdownQueryIsNotConstructed)
}

// UserName returns the name of the user whose order is requested.
func (q GetPriceBreakdownQuery) UserName() string {
	return q.userName
}

// OrderIndex returns the one-based index of the order in the user's
// history.
func (q GetPriceBreakdownQuery) OrderIndex() int {
	return q.orderIndex
}

// GetPriceBreakdownQueryResponse pairs the order's display number with its
// itemized price.
type GetPriceBreakdownQueryResponse struct {
	OrderNumber string
	PizzaName   string
	Breakdown   order.Breakdown
}
