package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, newest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order from checkout
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Get one order
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Move an order to its next status
	// (POST /api/v1/orders/{orderId}/status)
	TransitionOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params TransitionOrderStatusParams) error
	// Send the tracking notification again
	// (POST /api/v1/orders/{orderId}/tracking-notification)
	ResendTrackingNotification(ctx echo.Context, orderId openapi_types.UUID, params ResendTrackingNotificationParams) error
	// Check a transition without changing any order
	// (POST /api/v1/transitions/validate)
	ValidateTransition(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "perPage", ctx.QueryParams(), &params.PerPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter perPage: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// TransitionOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionOrderStatus(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params TransitionOrderStatusParams
	if params.XActor, err = bindActor(ctx); err != nil {
		return err
	}

	return w.Handler.TransitionOrderStatus(ctx, orderId, params)
}

// ResendTrackingNotification converts echo context to params.
func (w *ServerInterfaceWrapper) ResendTrackingNotification(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}

	var params ResendTrackingNotificationParams
	if params.XActor, err = bindActor(ctx); err != nil {
		return err
	}

	return w.Handler.ResendTrackingNotification(ctx, orderId, params)
}

// ValidateTransition converts echo context to params.
func (w *ServerInterfaceWrapper) ValidateTransition(ctx echo.Context) error {
	return w.Handler.ValidateTransition(ctx)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var orderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindActor(ctx echo.Context) (string, error) {
	var actor string

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Actor")]
	if !found {
		return actor, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return actor, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor, got %d", n))
	}

	err := runtime.BindStyledParameterWithOptions("simple", "X-Actor", valueList[0], &actor,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return actor, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor: %s", err))
	}
	return actor, nil
}

// EchoRouter is the subset of echo routing used by RegisterHandlers, so
// both *echo.Echo and *echo.Group can be passed.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.TransitionOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/tracking-notification", wrapper.ResendTrackingNotification)
	router.POST(baseURL+"/api/v1/transitions/validate", wrapper.ValidateTransition)
}

//go:embed openapi.yaml
var openapiSpec []byte

// RawSpec returns the OpenAPI document as YAML.
func RawSpec() []byte {
	return openapiSpec
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return swagger, nil
}
