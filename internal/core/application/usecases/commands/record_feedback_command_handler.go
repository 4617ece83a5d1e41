package commands

import (
	"context"
	"fmt"
	"log/slog"

	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// RecordFeedbackCommandHandler appends completed orders to the feedback
// log for later admin review. Only orders that reached a terminal status
// can be flagged; an order still in flight is rejected.
type RecordFeedbackCommandHandler struct {
	users    ports.UserRepository
	feedback ports.FeedbackLog
	logger   *slog.Logger
}

// NewRecordFeedbackCommandHandler creates a handler for feedback
// recording.
func NewRecordFeedbackCommandHandler(
	users ports.UserRepository,
	feedback ports.FeedbackLog,
	logger *slog.Logger,
) RecordFeedbackCommandHandler {
	return RecordFeedbackCommandHandler{
		users:    users,
		feedback: feedback,
		logger:   logger,
	}
}

// Handle processes the feedback command.
func (h *RecordFeedbackCommandHandler) Handle(ctx context.Context, cmd RecordFeedbackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := h.users.Get(ctx, cmd.UserName())
	if err != nil {
		return err
	}

	o, err := u.OrderAt(cmd.OrderIndex())
	if err != nil {
		return err
	}

	if status := o.Status(); !status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is still %s", o.ID().Short(), status))
	}

	if err = h.feedback.Record(ctx, o); err != nil {
		return err
	}

	h.logger.Info("Feedback recorded",
		"order", o.ID().Short(), "user", cmd.UserName())

	return nil
}
