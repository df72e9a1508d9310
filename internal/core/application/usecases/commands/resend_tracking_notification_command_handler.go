package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"go.uber.org/zap"
)

var (
	// ErrNotificationNotApplicable is returned for orders that have no tracking info yet.
	ErrNotificationNotApplicable = errors.New("tracking notification is not applicable to this order")

	// ErrResendInProgress is returned while another resend for the same order holds the lock.
	ErrResendInProgress = errors.New("tracking notification resend already in progress")

	// ErrDispatchFailed wraps the transport error of a failed resend.
	ErrDispatchFailed = errors.New("tracking notification dispatch failed")
)

// ResendTrackingNotificationCommandHandler re-sends the tracking notification
// of a Shipped or Delivered order. It never changes the order status.
//
// The lock stays held after a successful send until its TTL expires, so
// repeated clicks do not spam the customer. A failed send releases it.
type ResendTrackingNotificationCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   NotificationComposer
	notifier   ports.TrackingNotifier
	lock       ports.NotificationLock
	logger     *zap.Logger
}

func NewResendTrackingNotificationCommandHandler(
	uowFactory OrderUoWFactory,
	composer NotificationComposer,
	notifier ports.TrackingNotifier,
	lock ports.NotificationLock,
	logger *zap.Logger,
) *ResendTrackingNotificationCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResendTrackingNotificationCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
		lock:       lock,
		logger:     logger.With(zap.String("component", "tracking_resend")),
	}
}

func (h *ResendTrackingNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd ResendTrackingNotificationCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	shipped, err := h.load(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if shipped.Tracking() == nil {
		return nil, fmt.Errorf("%w: order %s is %s", ErrNotificationNotApplicable, shipped.ID(), shipped.Status())
	}

	payload, err := h.composer.Compose(shipped)
	if err != nil {
		return nil, err
	}

	acquired, err := h.lock.Acquire(ctx, cmd.OrderID())
	if err != nil {
		return nil, fmt.Errorf("acquire resend lock: %w", err)
	}
	if !acquired {
		return nil, ErrResendInProgress
	}

	logger := h.logger.With(zap.String("order_id", cmd.OrderID().String()), zap.String("actor", cmd.Actor()))

	if err = h.notifier.SendTrackingNotification(ctx, payload); err != nil {
		if releaseErr := h.lock.Release(ctx, cmd.OrderID()); releaseErr != nil {
			logger.Error("failed to release resend lock", zap.Error(releaseErr))
		}
		logger.Warn("tracking notification resend failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	logger.Info("tracking notification resent")
	recordTrackingNotified(ctx, h.uowFactory, logger, shipped.ID(), time.Now().UTC())

	return shipped, nil
}

func (h *ResendTrackingNotificationCommandHandler) load(
	ctx context.Context,
	cmd ResendTrackingNotificationCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	found, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return nil, err
	}

	return found, nil
}
