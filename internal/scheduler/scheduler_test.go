package scheduler_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTimer records whether the scheduler stopped it during shutdown.
type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

// fakeClock collects armed callbacks and fires them on demand, simulating
// time advancement without wall-clock waits.
type fakeClock struct {
	mu       sync.Mutex
	pending  []func()
	timers   []*fakeTimer
	delaySum time.Duration
}

func (c *fakeClock) After(d time.Duration, f func()) scheduler.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{}
	c.pending = append(c.pending, f)
	c.timers = append(c.timers, t)
	c.delaySum += d
	return t
}

// fireNext runs the oldest pending callback, returning false when nothing
// is armed.
func (c *fakeClock) fireNext() bool {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return false
	}
	f := c.pending[0]
	c.pending = c.pending[1:]
	c.mu.Unlock()
	f()
	return true
}

// fireAll drains the callback queue, including callbacks armed while
// draining.
func (c *fakeClock) fireAll() {
	for c.fireNext() {
	}
}

type notification struct {
	orderID kernel.UUID
	status  order.Status
}

// recordingSink captures every notification in arrival order.
type recordingSink struct {
	mu            sync.Mutex
	notifications []notification
}

func (r *recordingSink) Notify(orderID kernel.UUID, newStatus order.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, notification{orderID: orderID, status: newStatus})
}

func (r *recordingSink) statuses() []order.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	statuses := make([]order.Status, len(r.notifications))
	for i, n := range r.notifications {
		statuses[i] = n.status
	}
	return statuses
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(t *testing.T, option order.DeliveryOption) *order.Order {
	t.Helper()
	pz, err := pizza.NewStandard("Pepperoni", pizza.Small, false, 1500)
	require.NoError(t, err)
	location := ""
	if option == order.HomeDelivery {
		location = "12 Galle Road"
	}
	o, err := order.NewOrder(kernel.NewUUID(), pz, option, location, discount.Zero())
	require.NoError(t, err)
	return o
}

func newScheduler(clock *fakeClock, sink ports.NotificationSink) *scheduler.Scheduler {
	return scheduler.New(10*time.Second, sink, testLogger(),
		scheduler.WithAfterFunc(clock.After))
}

func TestScheduler_Start(t *testing.T) {
	t.Run("should return immediately without firing transitions", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		o := newOrder(t, order.Pickup)

		s.Start(o)

		assert.Equal(t, order.Paid, o.Status())
		assert.Empty(t, sink.statuses())
	})

	t.Run("should arm timers with the configured delay", func(t *testing.T) {
		clock := &fakeClock{}
		s := newScheduler(clock, &recordingSink{})

		s.Start(newOrder(t, order.Pickup))

		assert.Equal(t, 10*time.Second, clock.delaySum)
	})

	t.Run("should ignore unconstructed orders", func(t *testing.T) {
		clock := &fakeClock{}
		s := newScheduler(clock, &recordingSink{})
		var o order.Order

		s.Start(&o)

		assert.Empty(t, clock.pending)
	})

	t.Run("should not double-schedule an order", func(t *testing.T) {
		clock := &fakeClock{}
		s := newScheduler(clock, &recordingSink{})
		o := newOrder(t, order.Pickup)

		s.Start(o)
		s.Start(o)

		assert.Len(t, clock.pending, 1)
	})
}

func TestScheduler_Progression(t *testing.T) {
	t.Run("pickup order fires Preparing then ReadyForPickup and stops", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		o := newOrder(t, order.Pickup)

		s.Start(o)
		clock.fireAll()

		assert.Equal(t, []order.Status{order.Preparing, order.ReadyForPickup}, sink.statuses())
		assert.Equal(t, order.ReadyForPickup, o.Status())
		assert.Empty(t, clock.pending, "no timer may remain after a terminal state")
	})

	t.Run("home delivery order fires the full sequence", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		o := newOrder(t, order.HomeDelivery)

		s.Start(o)
		clock.fireAll()

		assert.Equal(t,
			[]order.Status{order.Preparing, order.OutForDelivery, order.Delivered},
			sink.statuses())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("each step arms exactly one follow-up timer", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		o := newOrder(t, order.HomeDelivery)

		s.Start(o)
		require.True(t, clock.fireNext())
		assert.Equal(t, order.Preparing, o.Status())
		assert.Len(t, clock.pending, 1)

		require.True(t, clock.fireNext())
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Len(t, clock.pending, 1)

		require.True(t, clock.fireNext())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Empty(t, clock.pending)
	})

	t.Run("concurrent orders progress independently", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		pickup := newOrder(t, order.Pickup)
		delivery := newOrder(t, order.HomeDelivery)

		s.Start(pickup)
		s.Start(delivery)
		clock.fireAll()

		assert.Equal(t, order.ReadyForPickup, pickup.Status())
		assert.Equal(t, order.Delivered, delivery.Status())

		var pickupStatuses, deliveryStatuses []order.Status
		for _, n := range sink.notifications {
			switch {
			case n.orderID.IsEqual(pickup.ID()):
				pickupStatuses = append(pickupStatuses, n.status)
			case n.orderID.IsEqual(delivery.ID()):
				deliveryStatuses = append(deliveryStatuses, n.status)
			}
		}
		assert.Equal(t, []order.Status{order.Preparing, order.ReadyForPickup}, pickupStatuses)
		assert.Equal(t,
			[]order.Status{order.Preparing, order.OutForDelivery, order.Delivered},
			deliveryStatuses)
	})
}

func TestScheduler_Stop(t *testing.T) {
	t.Run("should cancel pending timers", func(t *testing.T) {
		clock := &fakeClock{}
		sink := &recordingSink{}
		s := newScheduler(clock, sink)
		o := newOrder(t, order.HomeDelivery)

		s.Start(o)
		require.True(t, clock.fireNext())
		s.Stop()

		// The armed follow-up timer was stopped and firing it is a no-op.
		assert.True(t, clock.timers[1].stopped)
		clock.fireAll()
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, []order.Status{order.Preparing}, sink.statuses())
	})

	t.Run("should refuse new orders after stop", func(t *testing.T) {
		clock := &fakeClock{}
		s := newScheduler(clock, &recordingSink{})

		s.Stop()
		s.Start(newOrder(t, order.Pickup))

		assert.Empty(t, clock.pending)
	})
}

func TestScheduler_RealTimer(t *testing.T) {
	t.Run("should complete a pickup progression on the wall clock", func(t *testing.T) {
		sink := &recordingSink{}
		s := scheduler.New(time.Millisecond, sink, testLogger())
		o := newOrder(t, order.Pickup)

		s.Start(o)

		require.Eventually(t, func() bool {
			return o.Status() == order.ReadyForPickup
		}, time.Second, time.Millisecond)
		assert.Equal(t, []order.Status{order.Preparing, order.ReadyForPickup}, sink.statuses())
		s.Stop()
	})
}
