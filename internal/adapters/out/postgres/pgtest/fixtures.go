package pgtest

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderSpec describes a fixture order. Zero fields get sensible defaults.
type OrderSpec struct {
	ID        kernel.UUID
	Status    order.Status
	Email     string
	CreatedAt time.Time
	Notified  *time.Time
	Version   int64
}

// NewOrder builds a valid order in any status. Shipped and Delivered
// orders carry UPS tracking. It panics on invalid specs.
func NewOrder(spec OrderSpec) *order.Order {
	if spec.ID == (kernel.UUID{}) {
		spec.ID = kernel.NewUUID()
	}
	if spec.Status == order.Unknown {
		spec.Status = order.Pending
	}
	if spec.Email == "" {
		spec.Email = "ada@example.com"
	}
	if spec.CreatedAt.IsZero() {
		spec.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	if spec.Version == 0 {
		spec.Version = 1
	}

	customer, err := kernel.NewContact("Ada Lovelace", spec.Email, "+44 20 7946 0000")
	must(err)
	address, err := kernel.NewAddress("12 Analytical St", "Flat 3", "London", "", "N1 9GU", "GB")
	must(err)
	shirt, err := order.NewLineItem("Linen Shirt", order.Variant{Color: "Sand", Size: "M"}, 2, kernel.MustMoney("40.00", "USD"))
	must(err)
	mug, err := order.NewLineItem("Mug", order.Variant{}, 1, kernel.MustMoney("12.50", "USD"))
	must(err)

	placed, err := order.NewOrder(spec.ID, customer, address, []order.LineItem{shirt, mug},
		kernel.MustMoney("5.00", "USD"), spec.CreatedAt)
	must(err)

	snapshot := order.Snapshot{
		ID:                 placed.ID(),
		Status:             spec.Status,
		Customer:           placed.Customer(),
		ShippingAddress:    placed.ShippingAddress(),
		LineItems:          placed.LineItems(),
		Subtotal:           placed.Amounts().Subtotal(),
		ShippingCost:       placed.Amounts().Shipping(),
		Total:              placed.Amounts().Total(),
		CreatedAt:          placed.CreatedAt(),
		UpdatedAt:          placed.UpdatedAt(),
		TrackingNotifiedAt: spec.Notified,
		Version:            spec.Version,
	}
	if spec.Status.CarriesTracking() {
		tracking, trackingErr := order.NewTrackingInfo("1Z999AA10123456784", "UPS")
		must(trackingErr)
		snapshot.Tracking = &tracking
	}

	restored, err := order.RestoreOrder(snapshot)
	must(err)
	return restored
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
