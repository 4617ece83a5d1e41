package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// PlaceOrderResult is the outcome of placing an order: the new order plus
// an optional delivery time estimate. HasEstimate is false for pickup
// orders and whenever the estimator failed.
type PlaceOrderResult struct {
	Order            *order.Order
	EstimatedMinutes int
	HasEstimate      bool
}

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Creates the user on first order, snapshots the active discount into the
// order's price, and asks the route estimator for a delivery time when the
// order is a home delivery.
//
// Estimator failures never fail the command; the order is placed without
// an estimate and the failure is logged.
type PlaceOrderCommandHandler struct {
	users     ports.UserRepository
	discounts *discount.Registry
	estimator ports.RouteEstimator
	logger    *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	users ports.UserRepository,
	discounts *discount.Registry,
	estimator ports.RouteEstimator,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		users:     users,
		discounts: discounts,
		estimator: estimator,
		logger:    logger,
	}
}

// Handle processes the order placement command.
// The discount active at this moment is locked into the order's final
// price. The placed order stays in Paid status with no payment method
// until a CompletePaymentCommand follows.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	u, err := h.users.GetOrCreate(ctx, cmd.UserName())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	o, err := u.PlaceOrder(cmd.Pizza(), cmd.Option(), cmd.Location(), h.discounts.Active())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	result := PlaceOrderResult{Order: o}
	if cmd.Option() == order.HomeDelivery {
		minutes, estErr := h.estimator.Estimate(ctx, cmd.Location())
		if estErr != nil {
			h.logger.Warn("Delivery time estimation failed",
				"order", o.ID().Short(), "location", cmd.Location(), "error", estErr)
		} else {
			result.EstimatedMinutes = minutes
			result.HasEstimate = true
		}
	}

	h.logger.Info("Order placed",
		"order", o.ID().Short(),
		"user", cmd.UserName(),
		"pizza", cmd.Pizza().Name(),
		"option", cmd.Option().String(),
		"price", o.FinalPrice())

	return result, nil
}
