package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// CompletePaymentCommandHandler records the payment method on an order and
// starts its background status progression. The initial Paid status is
// announced through the notification sink so every later transition
// arrives on the same channel.
type CompletePaymentCommandHandler struct {
	users     ports.UserRepository
	scheduler ports.ProgressionScheduler
	sink      ports.NotificationSink
	logger    *slog.Logger
}

// NewCompletePaymentCommandHandler creates a handler for payment
// completion.
func NewCompletePaymentCommandHandler(
	users ports.UserRepository,
	scheduler ports.ProgressionScheduler,
	sink ports.NotificationSink,
	logger *slog.Logger,
) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		users:     users,
		scheduler: scheduler,
		sink:      sink,
		logger:    logger,
	}
}

// Handle processes the payment completion command.
// Returns the paid order so the caller can display its details.
func (h *CompletePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd CompletePaymentCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := h.users.Get(ctx, cmd.UserName())
	if err != nil {
		return nil, err
	}

	o, err := u.OrderAt(cmd.OrderIndex())
	if err != nil {
		return nil, err
	}

	if err = o.CompletePayment(cmd.PaymentMethod()); err != nil {
		return nil, err
	}

	h.logger.Info("Payment completed",
		"order", o.ID().Short(), "method", cmd.PaymentMethod())

	h.sink.Notify(o.ID(), o.Status())
	h.scheduler.Start(o)

	return o, nil
}
