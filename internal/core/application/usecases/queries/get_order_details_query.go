// Package queries contains read operations for the back office.
// Handlers read straight from the database into read models and never load
// aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery fetches everything the order detail screen shows.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the read model of one order.
type GetOrderDetailsQueryResponse struct {
	ID              kernel.UUID
	Status          order.Status
	Customer        CustomerView
	ShippingAddress AddressView
	Lines           []LineView
	Subtotal        kernel.Money
	ShippingCost    kernel.Money
	Total           kernel.Money
	Tracking        *TrackingView
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// TrackingNotifiedAt is nil until a tracking notification went out.
	TrackingNotifiedAt *time.Time
	Version            int64
}

// AllowedNextStatuses lists the statuses the order may move to.
func (r GetOrderDetailsQueryResponse) AllowedNextStatuses() []order.Status {
	return r.Status.Successors()
}

type CustomerView struct {
	Name  string
	Email string
	Phone string
}

type AddressView struct {
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
}

type LineView struct {
	ProductName string
	Color       string
	Size        string
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}

type TrackingView struct {
	TrackingNumber  string
	ShippingCarrier string
}
