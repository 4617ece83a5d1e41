package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// reorderPaymentMethod is charged automatically for reorders; the quick
// reorder flow skips the payment method prompt.
const reorderPaymentMethod = "Credit card"

// ReorderCommandHandler repeats a previous customized order in one step:
// it places a fresh pickup order for the identical pizza at the discount
// active right now, completes payment automatically, and starts the
// background status progression.
type ReorderCommandHandler struct {
	users     ports.UserRepository
	discounts *discount.Registry
	scheduler ports.ProgressionScheduler
	sink      ports.NotificationSink
	logger    *slog.Logger
}

// NewReorderCommandHandler creates a handler for quick reorders.
func NewReorderCommandHandler(
	users ports.UserRepository,
	discounts *discount.Registry,
	scheduler ports.ProgressionScheduler,
	sink ports.NotificationSink,
	logger *slog.Logger,
) ReorderCommandHandler {
	return ReorderCommandHandler{
		users:     users,
		discounts: discounts,
		scheduler: scheduler,
		sink:      sink,
		logger:    logger,
	}
}

// Handle processes the reorder command.
// Fails with an ObjectNotFoundError when the user has no history, and with
// a ValueIsInvalidError when the referenced order is not a customized
// pizza. Returns the freshly placed and paid order.
func (h *ReorderCommandHandler) Handle(
	ctx context.Context,
	cmd ReorderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := h.users.Get(ctx, cmd.UserName())
	if err != nil {
		return nil, err
	}

	o, err := u.Reorder(cmd.OrderIndex(), h.discounts.Active())
	if err != nil {
		return nil, err
	}

	if err = o.CompletePayment(reorderPaymentMethod); err != nil {
		return nil, err
	}

	h.logger.Info("Order repeated",
		"order", o.ID().Short(),
		"user", cmd.UserName(),
		"pizza", o.Pizza().Name(),
		"price", o.FinalPrice())

	h.sink.Notify(o.ID(), o.Status())
	h.scheduler.Start(o)

	return o, nil
}
