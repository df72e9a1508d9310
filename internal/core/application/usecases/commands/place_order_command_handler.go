package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// PlaceOrderCommandHandler stores new orders in Pending status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *zap.Logger
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, logger *zap.Logger) *PlaceOrderCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(zap.String("component", "place_order")),
	}
}

// Handle builds the aggregate (deriving subtotal and total) and persists it.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.ShippingAddress(),
		cmd.LineItems(),
		cmd.ShippingCost(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order placed",
		zap.String("order_id", placed.ID().String()),
		zap.String("total", placed.Amounts().Total().String()),
		zap.Int("lines", len(placed.LineItems())),
	)

	return placed, nil
}
