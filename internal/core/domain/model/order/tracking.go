package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	FieldTrackingNumber  = "trackingNumber"
	FieldShippingCarrier = "shippingCarrier"
)

// ErrTrackingInfoIsNotConstructed is returned when a zero-value TrackingInfo is used.
var ErrTrackingInfoIsNotConstructed = errors.New("TrackingInfo must be created via NewTrackingInfo")

// TrackingInfo identifies a shipment with a carrier.
type TrackingInfo struct {
	trackingNumber  string
	shippingCarrier string
	guard           guard.ConstructorGuard
}

// NewTrackingInfo trims both fields and requires them to be non-blank.
func NewTrackingInfo(trackingNumber, shippingCarrier string) (TrackingInfo, error) {
	info := TrackingInfo{
		trackingNumber:  strings.TrimSpace(trackingNumber),
		shippingCarrier: strings.TrimSpace(shippingCarrier),
		guard:           guard.NewConstructorGuard(),
	}

	var problems []error
	if info.trackingNumber == "" {
		problems = append(problems, errs.NewValueIsRequiredError(FieldTrackingNumber))
	}
	if info.shippingCarrier == "" {
		problems = append(problems, errs.NewValueIsRequiredError(FieldShippingCarrier))
	}
	if len(problems) > 0 {
		return TrackingInfo{}, errors.Join(problems...)
	}

	return info, nil
}

func (t TrackingInfo) Validate() error {
	return t.guard.Validate(ErrTrackingInfoIsNotConstructed)
}

func (t TrackingInfo) TrackingNumber() string {
	return t.trackingNumber
}

func (t TrackingInfo) ShippingCarrier() string {
	return t.shippingCarrier
}
