// Package servers holds the HTTP contract of the storefront back office:
// request and response types, the server interface and its echo bindings,
// and the OpenAPI document they follow.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStatus.
const (
	PENDING    OrderStatus = "PENDING"
	PROCESSING OrderStatus = "PROCESSING"
	PACKED     OrderStatus = "PACKED"
	SHIPPED    OrderStatus = "SHIPPED"
	DELIVERED  OrderStatus = "DELIVERED"
	CANCELLED  OrderStatus = "CANCELLED"
)

// Defines values for TransitionResponseOutcome.
const (
	SUCCESS        TransitionResponseOutcome = "SUCCESS"
	PARTIALSUCCESS TransitionResponseOutcome = "PARTIAL_SUCCESS"
)

// Address defines model for Address.
type Address struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	PostalCode string  `json:"postalCode"`
	Region     *string `json:"region,omitempty"`
}

// Customer defines model for Customer.
type Customer struct {
	Email openapi_types.Email `json:"email"`
	Name  string              `json:"name"`
	Phone *string             `json:"phone,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Color       *string `json:"color,omitempty"`
	LineTotal   Money   `json:"lineTotal"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Size        *string `json:"size,omitempty"`
	UnitPrice   Money   `json:"unitPrice"`
}

// Money defines model for Money.
type Money struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// NewLineItem defines model for NewLineItem.
type NewLineItem struct {
	Color       *string `json:"color,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Size        *string `json:"size,omitempty"`
	UnitPrice   string  `json:"unitPrice"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Currency        string              `json:"currency"`
	Customer        Customer            `json:"customer"`
	Id              *openapi_types.UUID `json:"id,omitempty"`
	Lines           []NewLineItem       `json:"lines"`
	ShippingAddress Address             `json:"shippingAddress"`
	ShippingCost    string              `json:"shippingCost"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	AllowedNextStatuses []OrderStatus      `json:"allowedNextStatuses"`
	CreatedAt           time.Time          `json:"createdAt"`
	Customer            Customer           `json:"customer"`
	Id                  openapi_types.UUID `json:"id"`
	Lines               []LineItem         `json:"lines"`
	ShippingAddress     Address            `json:"shippingAddress"`
	ShippingCost        Money              `json:"shippingCost"`
	Status              OrderStatus        `json:"status"`
	Subtotal            Money              `json:"subtotal"`
	Total               Money              `json:"total"`
	Tracking            *Tracking          `json:"tracking,omitempty"`
	TrackingNotifiedAt  *time.Time         `json:"trackingNotifiedAt,omitempty"`
	UpdatedAt           time.Time          `json:"updatedAt"`
	Version             int64              `json:"version"`
}

// OrderPage defines model for OrderPage.
type OrderPage struct {
	Items   []OrderSummary `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"perPage"`
	Total   int64          `json:"total"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerName  string             `json:"customerName"`
	Id            openapi_types.UUID `json:"id"`
	ItemCount     int                `json:"itemCount"`
	Status        OrderStatus        `json:"status"`
	Total         Money              `json:"total"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	ShippingCarrier string  `json:"shippingCarrier"`
	TrackingNumber  string  `json:"trackingNumber"`
	TrackingUrl     *string `json:"trackingUrl,omitempty"`
}

// TransitionRejection defines model for TransitionRejection.
type TransitionRejection struct {
	AllowedTargets []OrderStatus `json:"allowedTargets"`
	Code           int           `json:"code"`
	Message        string        `json:"message"`
	Reason         string        `json:"reason"`
}

// TransitionRequest defines model for TransitionRequest.
type TransitionRequest struct {
	ShippingCarrier *string     `json:"shippingCarrier,omitempty"`
	TargetStatus    OrderStatus `json:"targetStatus"`
	TrackingNumber  *string     `json:"trackingNumber,omitempty"`
}

// TransitionResponse defines model for TransitionResponse.
type TransitionResponse struct {
	NotificationSent bool                      `json:"notificationSent"`
	Order            OrderDetails              `json:"order"`
	Outcome          TransitionResponseOutcome `json:"outcome"`
	PreviousStatus   OrderStatus               `json:"previousStatus"`
	Warning          *string                   `json:"warning,omitempty"`
}

// TransitionResponseOutcome defines model for TransitionResponse.Outcome.
type TransitionResponseOutcome string

// ValidateTransitionRequest defines model for ValidateTransitionRequest.
type ValidateTransitionRequest struct {
	CurrentStatus   OrderStatus `json:"currentStatus"`
	ShippingCarrier *string     `json:"shippingCarrier,omitempty"`
	TargetStatus    OrderStatus `json:"targetStatus"`
	TrackingNumber  *string     `json:"trackingNumber,omitempty"`
}

// ValidationOutcome defines model for ValidationOutcome.
type ValidationOutcome struct {
	Allowed        bool          `json:"allowed"`
	AllowedTargets []OrderStatus `json:"allowedTargets"`
	Message        *string       `json:"message,omitempty"`
	Reason         *string       `json:"reason,omitempty"`
	RequiredFields []string      `json:"requiredFields"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status  *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Page    *int         `form:"page,omitempty" json:"page,omitempty"`
	PerPage *int         `form:"perPage,omitempty" json:"perPage,omitempty"`
}

// TransitionOrderStatusParams defines parameters for TransitionOrderStatus.
type TransitionOrderStatusParams struct {
	XActor string `json:"X-Actor"`
}

// ResendTrackingNotificationParams defines parameters for ResendTrackingNotification.
type ResendTrackingNotificationParams struct {
	XActor string `json:"X-Actor"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// TransitionOrderStatusJSONRequestBody defines body for TransitionOrderStatus for application/json ContentType.
type TransitionOrderStatusJSONRequestBody = TransitionRequest

// ValidateTransitionJSONRequestBody defines body for ValidateTransition for application/json ContentType.
type ValidateTransitionJSONRequestBody = ValidateTransitionRequest
