package ports

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// NotificationSink receives every status change of every order for display.
// The core publishes through this observer contract and has no dependency
// on any presentation mechanism.
//
// Notify is invoked synchronously from the timeline driving the transition,
// exactly once per transition, in transition order for any single order.
// Implementations must not block for long.
type NotificationSink interface {
	Notify(orderID kernel.UUID, newStatus order.Status)
}

// NotificationSinkFunc adapts a plain function to the NotificationSink
// interface.
type NotificationSinkFunc func(orderID kernel.UUID, newStatus order.Status)

// Notify calls the wrapped function.
func (f NotificationSinkFunc) Notify(orderID kernel.UUID, newStatus order.Status) {
	f(orderID, newStatus)
}
