package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
type Status int

const (
	// Unknown (0) catches uninitialized or corrupt values.
	Unknown Status = iota
	Pending
	Processing
	Packed
	Shipped
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	Processing: "PROCESSING",
	Packed:     "PACKED",
	Shipped:    "SHIPPED",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
}

// transitionGraph is the complete set of legal edges. A status missing from
// the map, or mapped to an empty slice, has no outgoing transitions.
var transitionGraph = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Packed, Cancelled},
	Packed:     {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Packed, Shipped, Delivered, Cancelled}
}

// ParseStatus accepts the upper-case wire name in any letter case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitionGraph[s]) == 0
}

// Successors returns the statuses directly reachable from s.
func (s Status) Successors() []Status {
	next := transitionGraph[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether target is a direct successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionGraph[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CarriesTracking reports whether an order in s must hold tracking info.
func (s Status) CarriesTracking() bool {
	return s == Shipped || s == Delivered
}

// RequiredFields names the supplemental request fields mandatory when s is the target.
func (s Status) RequiredFields() []string {
	if s == Shipped {
		return []string{FieldTrackingNumber, FieldShippingCarrier}
	}
	return nil
}
