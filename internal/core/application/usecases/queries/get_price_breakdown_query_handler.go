package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// GetPriceBreakdownQueryHandler retrieves the itemized price of a placed
// order. The breakdown is derived from the immutable pricing snapshot
// taken at placement, so it never changes afterwards.
type GetPriceBreakdownQueryHandler struct {
	users ports.UserRepository
}

// NewGetPriceBreakdownQueryHandler creates a handler for price breakdown
// queries.
func NewGetPriceBreakdownQueryHandler(users ports.UserRepository) GetPriceBreakdownQueryHandler {
	return GetPriceBreakdownQueryHandler{users: users}
}

// Handle executes the query.
func (h GetPriceBreakdownQueryHandler) Handle(
	ctx context.Context,
	query GetPriceBreakdownQuery,
) (GetPriceBreakdownQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPriceBreakdownQueryResponse{}, err
	}

	u, err := h.users.Get(ctx, query.UserName())
	if err != nil {
		return GetPriceBreakdownQueryResponse{}, err
	}

	o, err := u.OrderAt(query.OrderIndex())
	if err != nil {
		return GetPriceBreakdownQueryResponse{}, err
	}

	return GetPriceBreakdownQueryResponse{
		OrderNumber: o.ID().Short(),
		PizzaName:   o.Pizza().Name(),
		Breakdown:   o.PriceBreakdown(),
	}, nil
}
