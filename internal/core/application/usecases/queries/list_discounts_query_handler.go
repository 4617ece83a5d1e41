package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/discount"
)

// ListDiscountsQueryHandler reads the discount registry for admin display.
type ListDiscountsQueryHandler struct {
	discounts *discount.Registry
}

// NewListDiscountsQueryHandler creates a handler for discount listing.
func NewListDiscountsQueryHandler(discounts *discount.Registry) ListDiscountsQueryHandler {
	return ListDiscountsQueryHandler{discounts: discounts}
}

// Handle executes the query.
func (h ListDiscountsQueryHandler) Handle(
	_ context.Context,
	query ListDiscountsQuery,
) (ListDiscountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDiscountsQueryResponse{}, err
	}

	return ListDiscountsQueryResponse{
		Named:  h.discounts.All(),
		Active: h.discounts.Active(),
	}, nil
}
