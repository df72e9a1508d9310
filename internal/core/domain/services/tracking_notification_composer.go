package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
)

// ErrOrderHasNoTracking is returned when composing a notification for an
// order that has not shipped.
var ErrOrderHasNoTracking = errors.New("order has no tracking info")

// TrackingNotificationComposer turns a shipped order into a customer-facing payload.
type TrackingNotificationComposer struct {
	carriers carrier.Catalog
}

func NewTrackingNotificationComposer(carriers carrier.Catalog) *TrackingNotificationComposer {
	return &TrackingNotificationComposer{carriers: carriers}
}

// Compose builds the payload from the order as persisted. The order must
// carry tracking info; an unknown carrier simply yields no tracking URL.
func (c *TrackingNotificationComposer) Compose(o *order.Order) (notification.TrackingNotification, error) {
	if err := o.Validate(); err != nil {
		return notification.TrackingNotification{}, err
	}
	tracking := o.Tracking()
	if tracking == nil {
		return notification.TrackingNotification{}, fmt.Errorf("%w: order %s is %s", ErrOrderHasNoTracking, o.ID(), o.Status())
	}

	items := o.LineItems()
	lines := make([]notification.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, notification.Line{
			ProductName: item.ProductName(),
			Variant:     item.Variant().Label(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Format(),
			LineTotal:   item.LineTotal().Format(),
		})
	}

	amounts := o.Amounts()
	customer := o.Customer()
	trackingURL, _ := c.carriers.TrackingURL(tracking.ShippingCarrier(), tracking.TrackingNumber())

	return notification.TrackingNotification{
		OrderID:         o.ID().String(),
		Status:          o.Status().String(),
		CustomerName:    customer.Name(),
		CustomerEmail:   customer.Email(),
		CustomerPhone:   customer.Phone(),
		ShippingAddress: o.ShippingAddress().Lines(),
		Lines:           lines,
		LineCount:       len(lines),
		TotalQuantity:   o.TotalQuantity(),
		Currency:        amounts.Total().Currency(),
		Subtotal:        amounts.Subtotal().Format(),
		ShippingCost:    amounts.Shipping().Format(),
		Total:           amounts.Total().Format(),
		TrackingNumber:  tracking.TrackingNumber(),
		ShippingCarrier: tracking.ShippingCarrier(),
		TrackingURL:     trackingURL,
		ShippedAt:       o.UpdatedAt(),
	}, nil
}
