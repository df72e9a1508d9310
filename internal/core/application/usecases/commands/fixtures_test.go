package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testCustomer(t *testing.T) kernel.Contact {
	t.Helper()
	c, err := kernel.NewContact("Ada Lovelace", "ada@example.com", "")
	require.NoError(t, err)
	return c
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("12 Analytical St", "", "London", "", "N1 9GU", "GB")
	require.NoError(t, err)
	return a
}

func testLineItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("Linen Shirt", order.Variant{Color: "Sand", Size: "M"}, 2, kernel.MustMoney("40.00", "USD"))
	require.NoError(t, err)
	return []order.LineItem{item}
}

// orderIn restores an order with the given id, status and version.
// Shipped and Delivered orders get DHL tracking.
func orderIn(t *testing.T, id kernel.UUID, status order.Status, version int64) *order.Order {
	t.Helper()

	placed, err := order.NewOrder(id, testCustomer(t), testAddress(t), testLineItems(t),
		kernel.MustMoney("5.00", "USD"), time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	snapshot := order.Snapshot{
		ID:              id,
		Status:          status,
		Customer:        placed.Customer(),
		ShippingAddress: placed.ShippingAddress(),
		LineItems:       placed.LineItems(),
		Subtotal:        placed.Amounts().Subtotal(),
		ShippingCost:    placed.Amounts().Shipping(),
		Total:           placed.Amounts().Total(),
		CreatedAt:       placed.CreatedAt(),
		UpdatedAt:       placed.UpdatedAt().Add(time.Duration(version) * time.Hour),
		Version:         version,
	}
	if status.CarriesTracking() {
		tracking, err := order.NewTrackingInfo("JD0146", "DHL")
		require.NoError(t, err)
		snapshot.Tracking = &tracking
	}

	o, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	return o
}
