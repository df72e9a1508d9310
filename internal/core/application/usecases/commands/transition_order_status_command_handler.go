package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// NotificationComposer builds the customer payload for a shipped order.
type NotificationComposer interface {
	Compose(o *order.Order) (notification.TrackingNotification, error)
}

// TransitionOrderStatusCommandHandler runs the order lifecycle workflow:
// load, validate, persist, then notify.
//
// Load, validation and the conditional UPDATE share one transaction. The
// tracking notification is dispatched only after commit and only when the
// applied status is Shipped. A failed dispatch never undoes the status
// change; it turns the result into OutcomePartialSuccess and is not retried.
//
// Example:
//
//	cmd, _ := NewTransitionOrderStatusCommand(id, order.Shipped, "1Z999", "UPS", "alice")
//	result, err := handler.Handle(ctx, cmd)
//	var failed *TransitionError
//	switch {
//	case errors.As(err, &failed):
//	    // nothing changed, failed.Stage says why
//	case result.IsPartial():
//	    // status stored, customer not told
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	composer   NotificationComposer
	notifier   ports.TrackingNotifier
	logger     *zap.Logger
	tracer     trace.Tracer
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	composer NotificationComposer,
	notifier ports.TrackingNotifier,
	logger *zap.Logger,
) *TransitionOrderStatusCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		notifier:   notifier,
		logger:     logger.With(zap.String("component", "order_lifecycle")),
		tracer:     otel.Tracer("storefront/commands"),
	}
}

// Handle returns either a TransitionResult for a committed change or a
// *TransitionError when nothing was changed. A malformed command is
// returned as is.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	ctx, span := h.tracer.Start(ctx, "TransitionOrderStatus", trace.WithAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.target_status", cmd.Target().String()),
		attribute.String("actor", cmd.Actor()),
	))
	defer span.End()

	logger := h.logger.With(
		zap.String("order_id", cmd.OrderID().String()),
		zap.Stringer("target", cmd.Target()),
		zap.String("actor", cmd.Actor()),
	)

	change, updated, err := h.apply(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Info("status transition refused", zap.Error(err))
		return TransitionResult{}, err
	}

	span.SetAttributes(attribute.String("order.previous_status", change.From.String()))
	logger.Info("status transition applied",
		zap.Stringer("from", change.From),
		zap.Int64("version", updated.Version()),
	)

	result := TransitionResult{
		Outcome:        OutcomeSuccess,
		Order:          updated,
		PreviousStatus: change.From,
	}

	if updated.Status() != order.Shipped {
		span.SetAttributes(attribute.String("transition.outcome", string(result.Outcome)))
		return result, nil
	}

	if err = h.dispatch(ctx, updated); err != nil {
		result.Outcome = OutcomePartialSuccess
		result.NotificationErr = err
		span.RecordError(err)
		logger.Warn("order shipped but tracking notification failed; resend manually", zap.Error(err))
	} else {
		result.NotificationSent = true
		recordTrackingNotified(ctx, h.uowFactory, logger, updated.ID(), time.Now().UTC())
	}

	span.SetAttributes(attribute.String("transition.outcome", string(result.Outcome)))
	return result, nil
}

// apply runs lookup, validation and persistence in one transaction and
// returns the order as stored after commit.
func (h *TransitionOrderStatusCommandHandler) apply(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (order.StatusChange, *order.Order, error) {
	id := cmd.OrderID()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusChange{}, nil, newTransitionError(StageLookup, id, ErrPersistence, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return order.StatusChange{}, nil, newTransitionError(StageLookup, id, ErrOrderNotFound, err)
		}
		return order.StatusChange{}, nil, newTransitionError(StageLookup, id, ErrPersistence, err)
	}

	change, err := current.PlanTransition(cmd.Target(), cmd.Tracking(), time.Now().UTC())
	if err != nil {
		return order.StatusChange{}, nil, newTransitionError(StageValidation, id, ErrInvalidTransition, err)
	}

	updated, err := repo.UpdateStatus(ctx, change)
	if err != nil {
		return order.StatusChange{}, nil, newTransitionError(StagePersistence, id, ErrPersistence, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusChange{}, nil, newTransitionError(StagePersistence, id, ErrPersistence, err)
	}

	return change, updated, nil
}

func (h *TransitionOrderStatusCommandHandler) dispatch(ctx context.Context, shipped *order.Order) error {
	payload, err := h.composer.Compose(shipped)
	if err != nil {
		return fmt.Errorf("compose tracking notification: %w", err)
	}
	return h.notifier.SendTrackingNotification(ctx, payload)
}
