package memory

import (
	"context"
	"sync"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// FeedbackLog is an in-memory implementation of ports.FeedbackLog. Entries
// are append-only and kept in insertion order for the process lifetime.
// Safe for concurrent use.
type FeedbackLog struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewFeedbackLog creates an empty in-memory feedback log.
func NewFeedbackLog() *FeedbackLog {
	return &FeedbackLog{}
}

// Record appends an order to the log.
func (l *FeedbackLog) Record(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("feedback order", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, o)
	return nil
}

// List returns a snapshot of the recorded orders in insertion order.
func (l *FeedbackLog) List(_ context.Context) ([]*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*order.Order(nil), l.orders...), nil
}
