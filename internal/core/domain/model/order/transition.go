package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTransitionRejected is the sentinel behind every TransitionRejectedError.
var ErrTransitionRejected = errors.New("transition rejected")

// RejectionReason is a stable, machine-readable code for a rejected transition.
type RejectionReason string

const (
	ReasonUnknownStatus           RejectionReason = "UNKNOWN_STATUS"
	ReasonSameStatus              RejectionReason = "SAME_STATUS"
	ReasonTerminalStatus          RejectionReason = "TERMINAL_STATUS"
	ReasonNotAdjacent             RejectionReason = "NOT_ADJACENT"
	ReasonTrackingNumberRequired  RejectionReason = "TRACKING_NUMBER_REQUIRED"
	ReasonShippingCarrierRequired RejectionReason = "SHIPPING_CARRIER_REQUIRED"
)

// TransitionRejectedError explains why a requested transition is illegal.
type TransitionRejectedError struct {
	From   Status
	To     Status
	Reason RejectionReason
	Cause  error
}

func (e *TransitionRejectedError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s: %s", ErrTransitionRejected, e.From, e.To, e.Reason)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *TransitionRejectedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransitionRejected}
	}
	return []error{ErrTransitionRejected, e.Cause}
}

// Message is an operator-facing sentence for the rejection.
func (e *TransitionRejectedError) Message() string {
	switch e.Reason {
	case ReasonUnknownStatus:
		return "The current or requested status is not recognised."
	case ReasonSameStatus:
		return fmt.Sprintf("The order is already %s.", e.To)
	case ReasonTerminalStatus:
		return fmt.Sprintf("A %s order cannot change status.", e.From)
	case ReasonNotAdjacent:
		return fmt.Sprintf("A %s order cannot move to %s; allowed next statuses: %s.",
			e.From, e.To, joinStatuses(e.From.Successors()))
	case ReasonTrackingNumberRequired:
		return "A tracking number is required to mark the order as shipped."
	case ReasonShippingCarrierRequired:
		return "A shipping carrier is required to mark the order as shipped."
	default:
		return e.Error()
	}
}

// TrackingInput carries the optional tracking fields of a transition request.
type TrackingInput struct {
	TrackingNumber  string
	ShippingCarrier string
}

// Transition is an accepted edge with its normalized payload. Tracking is
// set only when To is Shipped.
type Transition struct {
	From     Status
	To       Status
	Tracking *TrackingInfo
}

// EvaluateTransition decides whether current -> target is legal. It performs
// no I/O and is safe to call speculatively.
//
// Checks run in this order: both statuses valid, target differs from
// current, current is not terminal, target is a direct successor, and for a
// Shipped target both tracking fields are non-blank.
func EvaluateTransition(current, target Status, input TrackingInput) (Transition, error) {
	reject := func(reason RejectionReason, cause error) (Transition, error) {
		return Transition{}, &TransitionRejectedError{From: current, To: target, Reason: reason, Cause: cause}
	}

	if err := errors.Join(current.Validate(), target.Validate()); err != nil {
		return reject(ReasonUnknownStatus, err)
	}
	if current == target {
		return reject(ReasonSameStatus, nil)
	}
	if current.IsTerminal() {
		return reject(ReasonTerminalStatus, nil)
	}
	if !current.CanTransitionTo(target) {
		return reject(ReasonNotAdjacent, nil)
	}

	transition := Transition{From: current, To: target}
	if target != Shipped {
		return transition, nil
	}

	tracking, err := NewTrackingInfo(input.TrackingNumber, input.ShippingCarrier)
	if err != nil {
		if strings.TrimSpace(input.TrackingNumber) == "" {
			return reject(ReasonTrackingNumberRequired, err)
		}
		return reject(ReasonShippingCarrierRequired, err)
	}
	transition.Tracking = &tracking

	return transition, nil
}

func joinStatuses(statuses []Status) string {
	if len(statuses) == 0 {
		return "none"
	}
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
