package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// Timer is the one-shot timer handle the scheduler keeps for pending steps.
// *time.Timer satisfies it; tests substitute fakes.
type Timer interface {
	Stop() bool
}

// AfterFunc arms a one-shot timer that runs f after d. The production
// scheduler uses time.AfterFunc; tests inject a fake to simulate time
// advancement instead of waiting on the wall clock.
type AfterFunc func(d time.Duration, f func()) Timer

// Scheduler drives the timed status progression of orders. Each order gets
// an independent chain of one-shot delayed steps: a step advances the order
// one transition, notifies the sink, and only then arms the timer for the
// next step. Chaining instead of free-running guarantees transitions stay
// strictly sequential and none is skipped if the process pauses.
//
// Start returns immediately; progressions of different orders run
// concurrently without interfering. Stop cancels all pending timers so a
// shutting-down process does not leak them; fired steps are never rolled
// back.
type Scheduler struct {
	delay       time.Duration
	progression services.OrderProgression
	sink        ports.NotificationSink
	logger      *slog.Logger
	after       AfterFunc

	mu      sync.Mutex
	pending map[string]Timer
	stopped bool
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithAfterFunc replaces the timer source. Used by tests to drive the
// progression deterministically.
func WithAfterFunc(after AfterFunc) Option {
	return func(s *Scheduler) {
		s.after = after
	}
}

// New creates a scheduler that advances every order one transition per
// delay interval.
func New(delay time.Duration, sink ports.NotificationSink, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		delay:       delay,
		progression: services.NewOrderProgression(),
		sink:        sink,
		logger:      logger.With("component", "order_scheduler"),
		after: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		pending: make(map[string]Timer),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start schedules the order's remaining transitions and returns
// immediately. Starting an invalid, finished, or already scheduled order is
// a no-op beyond a log line.
func (s *Scheduler) Start(o *order.Order) {
	if err := o.Validate(); err != nil {
		s.logger.Warn("Refusing to schedule invalid order", "error", err)
		return
	}
	if o.Status().IsTerminal() {
		s.logger.Warn("Refusing to schedule finished order", "order_id", o.ID().String())
		return
	}

	s.arm(o)
}

// Stop cancels every pending timer. Steps already executing complete; no
// new steps are armed afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	s.logger.Info("Order scheduler stopped")
}

// arm schedules the next step for the order unless the scheduler is
// stopped or the order already has a step pending.
func (s *Scheduler) arm(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	id := o.ID().String()
	if _, exists := s.pending[id]; exists {
		return
	}
	s.pending[id] = s.after(s.delay, func() {
		s.step(o)
	})
}

// step advances the order exactly one transition and arms the next step if
// the progression has not finished.
func (s *Scheduler) step(o *order.Order) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.pending, o.ID().String())
	s.mu.Unlock()

	newStatus, more, err := s.progression.Advance(o)
	if err != nil {
		s.logger.Error("Order progression step failed", "order_id", o.ID().String(), "error", err)
		return
	}

	s.sink.Notify(o.ID(), newStatus)
	s.logger.Info("Order status advanced",
		"order_id", o.ID().String(), "status", newStatus.String())

	if more {
		s.arm(o)
	}
}
