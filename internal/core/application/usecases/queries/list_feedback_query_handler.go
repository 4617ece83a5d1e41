package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// ListFeedbackQueryHandler builds the feedback read model for the admin
// console from the append-only feedback log.
type ListFeedbackQueryHandler struct {
	feedback ports.FeedbackLog
}

// NewListFeedbackQueryHandler creates a handler for feedback listing.
func NewListFeedbackQueryHandler(feedback ports.FeedbackLog) ListFeedbackQueryHandler {
	return ListFeedbackQueryHandler{feedback: feedback}
}

// Handle executes the query.
func (h ListFeedbackQueryHandler) Handle(
	ctx context.Context,
	query ListFeedbackQuery,
) ([]ListFeedbackQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	flagged, err := h.feedback.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ListFeedbackQueryResponse, 0, len(flagged))
	for _, o := range flagged {
		responses = append(responses, ListFeedbackQueryResponse{
			OrderNumber:      o.ID().Short(),
			PizzaName:        o.Pizza().Name(),
			DeliveryOption:   o.DeliveryOption(),
			DeliveryLocation: o.DeliveryLocation(),
			FinalPrice:       o.FinalPrice(),
			Status:           o.Status(),
		})
	}

	return responses, nil
}
