package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// GetOrderHistoryQueryHandler builds the order history read model from the
// user aggregate. Statuses are read live, so a history listed while
// background timelines are running reflects each order's current
// progress.
type GetOrderHistoryQueryHandler struct {
	users ports.UserRepository
}

// NewGetOrderHistoryQueryHandler creates a handler for order history
// queries.
func NewGetOrderHistoryQueryHandler(users ports.UserRepository) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{users: users}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the user has never ordered, and an
// empty slice is never returned with an error.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	u, err := h.users.Get(ctx, query.UserName())
	if err != nil {
		return nil, err
	}

	orders := u.Orders()
	history := make([]GetOrderHistoryQueryResponse, 0, len(orders))
	for i, o := range orders {
		history = append(history, GetOrderHistoryQueryResponse{
			Index:            i + 1,
			OrderNumber:      o.ID().Short(),
			PizzaName:        o.Pizza().Name(),
			Variant:          o.Pizza().Variant(),
			Status:           o.Status(),
			DeliveryOption:   o.DeliveryOption(),
			DeliveryLocation: o.DeliveryLocation(),
			PaymentMethod:    o.PaymentMethod(),
			FinalPrice:       o.FinalPrice(),
		})
	}

	return history, nil
}
