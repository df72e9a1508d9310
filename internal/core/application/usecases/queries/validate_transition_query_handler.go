package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
)

// ValidateTransitionQueryHandler exposes the pure transition rules. It has
// no dependencies and performs no I/O.
type ValidateTransitionQueryHandler struct{}

func NewValidateTransitionQueryHandler() ValidateTransitionQueryHandler {
	return ValidateTransitionQueryHandler{}
}

func (h ValidateTransitionQueryHandler) Handle(_ context.Context, query ValidateTransitionQuery) (ValidationOutcome, error) {
	if err := query.Validate(); err != nil {
		return ValidationOutcome{}, err
	}

	outcome := ValidationOutcome{
		RequiredFields: query.target.RequiredFields(),
		AllowedTargets: query.current.Successors(),
	}

	_, err := order.EvaluateTransition(query.current, query.target, query.tracking)
	if err == nil {
		outcome.Allowed = true
		return outcome, nil
	}

	var rejected *order.TransitionRejectedError
	if !errors.As(err, &rejected) {
		return ValidationOutcome{}, err
	}

	outcome.Reason = rejected.Reason
	outcome.Message = rejected.Message()
	return outcome, nil
}
