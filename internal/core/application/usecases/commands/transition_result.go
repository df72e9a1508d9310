package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderNotFound marks a transition or resend against a missing order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition marks a request rejected by the transition rules.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrPersistence marks a failure to read or write the order store.
	ErrPersistence = errors.New("order store failure")
)

// Outcome classifies a transition whose status change was committed.
type Outcome string

const (
	// OutcomeSuccess means the status was stored and any required notification was sent.
	OutcomeSuccess Outcome = "SUCCESS"

	// OutcomePartialSuccess means the status was stored but the tracking
	// notification could not be sent. The change is not rolled back.
	OutcomePartialSuccess Outcome = "PARTIAL_SUCCESS"
)

// TransitionResult reports a committed status change.
type TransitionResult struct {
	Outcome Outcome

	// Order is the aggregate as persisted after the change.
	Order *order.Order

	PreviousStatus order.Status

	// NotificationSent is true only when a tracking notification was dispatched successfully.
	NotificationSent bool

	// NotificationErr is set for OutcomePartialSuccess.
	NotificationErr error
}

func (r TransitionResult) IsPartial() bool {
	return r.Outcome == OutcomePartialSuccess
}

// Stage names the step of the workflow that failed.
type Stage string

const (
	StageLookup      Stage = "LOOKUP"
	StageValidation  Stage = "VALIDATION"
	StagePersistence Stage = "PERSISTENCE"
)

// TransitionError reports a transition that changed nothing.
//
// It unwraps to one of ErrOrderNotFound, ErrInvalidTransition or
// ErrPersistence, and to the underlying cause.
type TransitionError struct {
	Stage   Stage
	OrderID kernel.UUID
	Kind    error
	Err     error
}

func newTransitionError(stage Stage, orderID kernel.UUID, kind, cause error) *TransitionError {
	return &TransitionError{Stage: stage, OrderID: orderID, Kind: kind, Err: cause}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: order %s (%s stage): %v", e.Kind, e.OrderID, e.Stage, e.Err)
}

func (e *TransitionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// StatusChanged is always false: a TransitionError is only returned when
// nothing was committed.
func (e *TransitionError) StatusChanged() bool {
	return false
}

// IsConflict reports an optimistic-concurrency conflict: the order changed
// between load and update.
func (e *TransitionError) IsConflict() bool {
	return errors.Is(e.Err, errs.ErrVersionIsInvalid)
}

// Rejection returns the validator's explanation for StageValidation failures.
func (e *TransitionError) Rejection() (*order.TransitionRejectedError, bool) {
	var rejected *order.TransitionRejectedError
	if errors.As(e.Err, &rejected) {
		return rejected, true
	}
	return nil, false
}
