package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const MaxUnnotifiedShipments = 500

var ErrGetUnnotifiedShipmentsQueryIsNotConstructed = errors.New(
	"GetUnnotifiedShipmentsQuery must be created via NewGetUnnotifiedShipmentsQuery constructor",
)

// GetUnnotifiedShipmentsQuery finds Shipped orders whose customer was never
// told, typically after a PARTIAL_SUCCESS transition. Orders shipped after
// shippedBefore are skipped so in-flight dispatches are not reported.
type GetUnnotifiedShipmentsQuery struct {
	shippedBefore time.Time
	limit         int
	guard         guard.ConstructorGuard
}

func NewGetUnnotifiedShipmentsQuery(shippedBefore time.Time, limit int) (GetUnnotifiedShipmentsQuery, error) {
	if limit < 1 || limit > MaxUnnotifiedShipments {
		return GetUnnotifiedShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxUnnotifiedShipments)
	}
	return GetUnnotifiedShipmentsQuery{
		shippedBefore: shippedBefore.UTC(),
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetUnnotifiedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnnotifiedShipmentsQueryIsNotConstructed)
}

type UnnotifiedShipment struct {
	ID              kernel.UUID
	CustomerEmail   string
	TrackingNumber  string
	ShippingCarrier string
	ShippedAt       time.Time
}
