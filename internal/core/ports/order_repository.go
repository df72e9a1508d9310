package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus applies the change in a single statement, only if the
	// stored version still equals change.ExpectedVersion, and returns the
	// order as persisted afterwards.
	//
	// Errors:
	//   - *errs.ObjectNotFoundError when the order does not exist
	//   - *errs.VersionIsInvalidError when another writer got there first
	//   - any other error is a storage failure
	UpdateStatus(ctx context.Context, change order.StatusChange) (*order.Order, error)

	// MarkTrackingNotified records a successful tracking notification. It
	// leaves status, updatedAt and version untouched.
	MarkTrackingNotified(ctx context.Context, id kernel.UUID, at time.Time) error
}
