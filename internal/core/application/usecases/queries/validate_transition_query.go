package queries

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrValidateTransitionQueryIsNotConstructed = errors.New(
	"ValidateTransitionQuery must be created via NewValidateTransitionQuery constructor",
)

// ValidateTransitionQuery asks whether current -> target would be accepted,
// without touching any order. The UI uses it to enable or disable controls;
// the transition command validates again on its own.
type ValidateTransitionQuery struct {
	current  order.Status
	target   order.Status
	tracking order.TrackingInput
	guard    guard.ConstructorGuard
}

func NewValidateTransitionQuery(current, target order.Status, trackingNumber, shippingCarrier string) ValidateTransitionQuery {
	return ValidateTransitionQuery{
		current: current,
		target:  target,
		tracking: order.TrackingInput{
			TrackingNumber:  trackingNumber,
			ShippingCarrier: shippingCarrier,
		},
		guard: guard.NewConstructorGuard(),
	}
}

func (q ValidateTransitionQuery) Validate() error {
	return q.guard.Validate(ErrValidateTransitionQueryIsNotConstructed)
}

// ValidationOutcome is the verdict on a proposed transition.
type ValidationOutcome struct {
	Allowed bool

	// Reason and Message are empty when Allowed.
	Reason  order.RejectionReason
	Message string

	// RequiredFields lists fields the target status needs, whether or not they were supplied.
	RequiredFields []string

	// AllowedTargets lists every direct successor of the current status.
	AllowedTargets []order.Status
}
