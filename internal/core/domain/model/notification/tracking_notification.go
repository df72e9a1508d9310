// Package notification holds the payloads sent to customers. Payloads are
// plain data: every amount is already formatted for display so transports
// never need domain types.
package notification

import "time"

// EventTypeOrderShipped identifies tracking notifications on message transports.
const EventTypeOrderShipped = "order.shipped"

// TrackingNotification tells a customer their order has shipped.
type TrackingNotification struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	ShippingAddress []string `json:"shippingAddress"`

	Lines         []Line `json:"lines"`
	LineCount     int    `json:"lineCount"`
	TotalQuantity int    `json:"totalQuantity"`

	Currency     string `json:"currency"`
	Subtotal     string `json:"subtotal"`
	ShippingCost string `json:"shippingCost"`
	Total        string `json:"total"`

	TrackingNumber  string `json:"trackingNumber"`
	ShippingCarrier string `json:"shippingCarrier"`
	TrackingURL     string `json:"trackingUrl,omitempty"`

	ShippedAt time.Time `json:"shippedAt"`
}

// Line is one purchased product as shown in the e-mail.
type Line struct {
	ProductName string `json:"productName"`
	Variant     string `json:"variant,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// Subject is the e-mail subject line for the notification.
func (n TrackingNotification) Subject() string {
	return "Your order " + n.OrderID + " has shipped"
}
