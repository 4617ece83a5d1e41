package console

import (
	"fmt"
	"io"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// Notifier prints order status transitions to the console. Transitions
// arrive from concurrent background timelines, so writes are serialized
// with a mutex to keep lines intact.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a console notifier writing to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Notify prints a single status transition.
func (n *Notifier) Notify(orderID kernel.UUID, newStatus order.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "\n*** Order #%s is now %s ***\n", orderID.Short(), newStatus)
}
