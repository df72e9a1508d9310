package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const partialSuccessWarning = "The status was updated but the tracking notification could not be sent. " +
	"Resend it from the order page."

func problem(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, err error) error {
	return problem(ctx, http.StatusBadRequest, err.Error())
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// transitionFailure maps a transition that changed nothing: rejected rules
// are 422, a missing order 404, a version conflict 409 and any other store
// failure 503.
func (s *Server) transitionFailure(ctx echo.Context, err error) error {
	var transitionErr *commands.TransitionError
	if !errors.As(err, &transitionErr) {
		return badRequest(ctx, err)
	}

	log := s.logger.With(
		zap.String("order_id", transitionErr.OrderID.String()),
		zap.String("stage", string(transitionErr.Stage)),
		zap.Error(err),
	)

	if rejection, ok := transitionErr.Rejection(); ok {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.TransitionRejection{
			Code:           http.StatusUnprocessableEntity,
			Message:        rejection.Message(),
			Reason:         string(rejection.Reason),
			AllowedTargets: toStatuses(rejection.From.Successors()),
		})
	}

	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return problem(ctx, http.StatusNotFound, "Order not found")
	case transitionErr.IsConflict():
		log.Info("transition lost a concurrent update")
		return problem(ctx, http.StatusConflict, "The order was changed by someone else. Reload and try again.")
	default:
		log.Error("transition failed")
		return problem(ctx, http.StatusServiceUnavailable, "The order store is unavailable. Try again shortly.")
	}
}

func (s *Server) resendFailure(ctx echo.Context, id kernel.UUID, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return problem(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, commands.ErrNotificationNotApplicable):
		return problem(ctx, http.StatusUnprocessableEntity, "The order has not shipped yet")
	case errors.Is(err, commands.ErrResendInProgress):
		return problem(ctx, http.StatusConflict, "A notification for this order was just sent")
	case errors.Is(err, commands.ErrDispatchFailed):
		s.logger.Warn("tracking notification resend failed", zap.String("order_id", id.String()), zap.Error(err))
		return problem(ctx, http.StatusBadGateway, "The notification service rejected the message")
	case isValidationError(err):
		return badRequest(ctx, err)
	default:
		s.logger.Error("tracking notification resend failed", zap.String("order_id", id.String()), zap.Error(err))
		return problem(ctx, http.StatusServiceUnavailable, "The order store is unavailable. Try again shortly.")
	}
}

// errorHandler renders echo errors, including parameter binding failures
// from the generated wrapper, as servers.Error.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled request error", zap.Error(err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = problem(ctx, code, message)
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
