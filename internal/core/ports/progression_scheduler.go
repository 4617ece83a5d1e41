package ports

import "pizzeria/internal/core/domain/model/order"

// ProgressionScheduler drives the timed status transitions of orders on
// background timelines.
type ProgressionScheduler interface {
	// Start schedules the order's remaining transitions and returns
	// immediately. Transitions for one order run strictly in sequence;
	// independent orders progress concurrently without interfering.
	Start(o *order.Order)
}
