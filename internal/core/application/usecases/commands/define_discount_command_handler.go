package commands

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/discount"
)

// DefineDiscountCommandHandler stores admin-defined discounts in the
// registry. The most recently defined discount becomes the active one for
// every order placed afterwards; orders already placed keep their price.
type DefineDiscountCommandHandler struct {
	discounts *discount.Registry
	logger    *slog.Logger
}

// NewDefineDiscountCommandHandler creates a handler for discount
// definition.
func NewDefineDiscountCommandHandler(
	discounts *discount.Registry,
	logger *slog.Logger,
) DefineDiscountCommandHandler {
	return DefineDiscountCommandHandler{
		discounts: discounts,
		logger:    logger,
	}
}

// Handle processes the discount definition command.
func (h *DefineDiscountCommandHandler) Handle(_ context.Context, cmd DefineDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.discounts.Define(cmd.Name(), cmd.Percent()); err != nil {
		return err
	}

	h.logger.Info("Discount defined",
		"name", cmd.Name(), "percent", cmd.Percent().Value())

	return nil
}
