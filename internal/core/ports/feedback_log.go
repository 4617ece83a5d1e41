package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// FeedbackLog records orders their owners marked for feedback so the admin
// can review them. Entries are append-only and kept in insertion order.
type FeedbackLog interface {
	// Record appends an order to the feedback log.
	Record(ctx context.Context, o *order.Order) error

	// List returns every recorded order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)
}
