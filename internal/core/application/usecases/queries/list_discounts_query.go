package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/pkg/guard"
)

var ErrListDiscountsQueryIsNotConstructed = errors.New(
	"ListDiscountsQuery must be created via NewListDiscountsQuery constructor",
)

// ListDiscountsQuery retrieves every defined discount plus the currently
// active percentage. This is a parameterless admin query.
type ListDiscountsQuery struct {
	guard guard.ConstructorGuard
}

// NewListDiscountsQuery creates a query to list all discounts.
func NewListDiscountsQuery() ListDiscountsQuery {
	return ListDiscountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDiscountsQueryIsNotConstructed if validation fails.
func (q ListDiscountsQuery) Validate() error {
	return q.guard.Validate(ErrListDiscountsQueryIsNotConstructed)
}

// ListDiscountsQueryResponse contains the named discounts sorted by name
// and the percentage currently applied to new orders.
type ListDiscountsQueryResponse struct {
	Named  []discount.Named
	Active discount.Percent
}
