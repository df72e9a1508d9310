package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates written during a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes status, tracking, updated_at and the next version in
// one conditional UPDATE. Zero affected rows means the order is missing or
// was changed concurrently; a follow-up existence check tells them apart.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, change order.StatusChange) (*order.Order, error) {
	if err := change.OrderID.Validate(); err != nil {
		return nil, err
	}

	trackingNumber, shippingCarrier := trackingColumns(change.Tracking)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ? AND status = ?", change.OrderID.Value(), change.ExpectedVersion, int(change.From)).
		Updates(map[string]any{
			"status":           int(change.To),
			"tracking_number":  trackingNumber,
			"shipping_carrier": shippingCarrier,
			"updated_at":       change.At,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", change.OrderID.Value()).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errs.NewObjectNotFoundError("order", change.OrderID.String())
		}
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("order %s is no longer %s at version %d", change.OrderID, change.From, change.ExpectedVersion),
		)
	}

	updated, err := r.Get(ctx, change.OrderID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(updated.ID(), updated)
	return updated, nil
}

// MarkTrackingNotified sets tracking_notified_at without touching the version.
func (r *GormOrderRepository) MarkTrackingNotified(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Value()).
		UpdateColumn("tracking_notified_at", at.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
