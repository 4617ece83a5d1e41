package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrListFeedbackQueryIsNotConstructed = errors.New(
	"ListFeedbackQuery must be created via NewListFeedbackQuery constructor",
)

// ListFeedbackQuery retrieves every order flagged for feedback, in the
// order users flagged them. This is a parameterless admin query.
type ListFeedbackQuery struct {
	guard guard.ConstructorGuard
}

// NewListFeedbackQuery creates a query to list flagged orders.
func NewListFeedbackQuery() ListFeedbackQuery {
	return ListFeedbackQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListFeedbackQueryIsNotConstructed if validation fails.
func (q ListFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrListFeedbackQueryIsNotConstructed)
}

// ListFeedbackQueryResponse is one flagged order in the feedback read
// model.
type ListFeedbackQueryResponse struct {
	OrderNumber      string
	PizzaName        string
	DeliveryOption   order.DeliveryOption
	DeliveryLocation string
	FinalPrice       int
	Status           order.Status
}
