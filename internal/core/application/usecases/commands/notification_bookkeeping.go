package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

// recordTrackingNotified stores the notification time in its own unit of
// work. The notification has already gone out, so failures are logged and
// not returned.
func recordTrackingNotified(ctx context.Context, factory OrderUoWFactory, logger *zap.Logger, id kernel.UUID, at time.Time) {
	fail := func(err error) {
		logger.Warn("failed to record tracking notification time",
			zap.String("order_id", id.String()), zap.Error(err))
	}

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		fail(err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().MarkTrackingNotified(ctx, id, at); err != nil {
		fail(err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		fail(err)
	}
}
