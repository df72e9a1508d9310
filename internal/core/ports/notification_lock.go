package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// NotificationLock prevents two operators from resending the same order's
// notification at once.
type NotificationLock interface {
	// Acquire returns false, without error, when the lock is already held.
	Acquire(ctx context.Context, orderID kernel.UUID) (bool, error)

	Release(ctx context.Context, orderID kernel.UUID) error
}
