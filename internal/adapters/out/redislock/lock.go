// Package redislock guards tracking notification resends with a Redis key
// per order.
package redislock

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 2 * time.Minute
	keyPrefix  = "storefront:resend-lock:"
)

var (
	_ ports.NotificationLock = (*Lock)(nil)
	_ ports.NotificationLock = NoopLock{}
)

type Lock struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// New returns a lock whose keys expire after ttl, or DefaultTTL when ttl is not positive.
func New(rdb redis.Cmdable, ttl time.Duration) *Lock {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Lock{rdb: rdb, ttl: ttl}
}

func (l *Lock) Key(orderID kernel.UUID) string {
	return keyPrefix + orderID.String()
}

func (l *Lock) Acquire(ctx context.Context, orderID kernel.UUID) (bool, error) {
	return l.rdb.SetNX(ctx, l.Key(orderID), "1", l.ttl).Result()
}

func (l *Lock) Release(ctx context.Context, orderID kernel.UUID) error {
	return l.rdb.Del(ctx, l.Key(orderID)).Err()
}

// NoopLock always grants the lock. Used when Redis is not configured.
type NoopLock struct{}

func (NoopLock) Acquire(context.Context, kernel.UUID) (bool, error) { return true, nil }
func (NoopLock) Release(context.Context, kernel.UUID) error         { return nil }
