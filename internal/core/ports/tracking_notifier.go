package ports

import (
	"context"

	"storefront/internal/core/domain/model/notification"
)

// TrackingNotifier delivers a tracking notification to the customer.
// A returned error means the customer may not have been told; callers must
// not assume the message was dropped either.
type TrackingNotifier interface {
	SendTrackingNotification(ctx context.Context, payload notification.TrackingNotification) error
}
