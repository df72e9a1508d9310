package http

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

type OrderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
}

type StatusTransitioner interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (commands.TransitionResult, error)
}

type NotificationResender interface {
	Handle(ctx context.Context, cmd commands.ResendTrackingNotificationCommand) (*order.Order, error)
}

type OrderDetailsReader interface {
	Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.GetOrderDetailsQueryResponse, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

type TransitionValidator interface {
	Handle(ctx context.Context, query queries.ValidateTransitionQuery) (queries.ValidationOutcome, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	PlaceOrder         OrderPlacer
	TransitionStatus   StatusTransitioner
	ResendNotification NotificationResender
	GetOrderDetails    OrderDetailsReader
	ListOrders         OrderLister
	ValidateTransition TransitionValidator
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	carriers carrier.Catalog
	logger   *zap.Logger
}

func NewServer(handlers Handlers, carriers carrier.Catalog, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		carriers: carriers,
		logger:   logger.With(zap.String("component", "http")),
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return badRequest(ctx, err)
		}
		status = &parsed
	}

	page, perPage := 1, queries.DefaultPerPage
	if params.Page != nil {
		page = *params.Page
	}
	if params.PerPage != nil {
		perPage = *params.PerPage
	}

	query, err := queries.NewListOrdersQuery(status, page, perPage)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("list orders failed", zap.Error(err))
		return problem(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderPage(result))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return problem(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := placeOrderCommand(body)
	if err != nil {
		return badRequest(ctx, err)
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return badRequest(ctx, err)
		}
		s.logger.Error("place order failed", zap.String("order_id", cmd.OrderID().String()), zap.Error(err))
		return problem(ctx, http.StatusInternalServerError, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, s.orderDetails(placed))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDOf(orderId)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	details, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return problem(ctx, http.StatusNotFound, "Order not found")
		}
		s.logger.Error("get order failed", zap.String("order_id", id.String()), zap.Error(err))
		return problem(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, s.orderDetailsFromQuery(details))
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status.
// A PARTIAL_SUCCESS outcome is still a 200: the status change is committed.
func (s *Server) TransitionOrderStatus(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.TransitionOrderStatusParams,
) error {
	var body servers.TransitionOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return problem(ctx, http.StatusBadRequest, "Invalid request body")
	}

	id, err := kernel.UUIDOf(orderId)
	if err != nil {
		return badRequest(ctx, err)
	}
	target, err := order.ParseStatus(string(body.TargetStatus))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, target, deref(body.TrackingNumber), deref(body.ShippingCarrier), params.XActor)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.transitionFailure(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.transitionResponse(result))
}

// ResendTrackingNotification handles POST /api/v1/orders/{orderId}/tracking-notification.
func (s *Server) ResendTrackingNotification(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.ResendTrackingNotificationParams,
) error {
	id, err := kernel.UUIDOf(orderId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResendTrackingNotificationCommand(id, params.XActor)
	if err != nil {
		return badRequest(ctx, err)
	}

	resent, err := s.handlers.ResendNotification.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.resendFailure(ctx, id, err)
	}

	return ctx.JSON(http.StatusAccepted, s.orderDetails(resent))
}

// ValidateTransition handles POST /api/v1/transitions/validate.
func (s *Server) ValidateTransition(ctx echo.Context) error {
	var body servers.ValidateTransitionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return problem(ctx, http.StatusBadRequest, "Invalid request body")
	}

	current, err := order.ParseStatus(string(body.CurrentStatus))
	if err != nil {
		return badRequest(ctx, err)
	}
	target, err := order.ParseStatus(string(body.TargetStatus))
	if err != nil {
		return badRequest(ctx, err)
	}

	query := queries.NewValidateTransitionQuery(current, target, deref(body.TrackingNumber), deref(body.ShippingCarrier))

	outcome, err := s.handlers.ValidateTransition.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("validate transition failed", zap.Error(err))
		return problem(ctx, http.StatusInternalServerError, "Failed to validate transition")
	}

	return ctx.JSON(http.StatusOK, toValidationOutcome(outcome))
}
