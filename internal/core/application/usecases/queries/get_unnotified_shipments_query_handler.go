package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUnnotifiedShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetUnnotifiedShipmentsQueryHandler(db *gorm.DB) GetUnnotifiedShipmentsQueryHandler {
	return GetUnnotifiedShipmentsQueryHandler{db: db}
}

// Handle returns the oldest unnotified shipments first.
func (h GetUnnotifiedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnnotifiedShipmentsQuery,
) ([]UnnotifiedShipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]UnnotifiedShipment, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			tracking_number,
			shipping_carrier,
			updated_at
		FROM orders
		WHERE status = ?
			AND tracking_notified_at IS NULL
			AND updated_at <= ?
		ORDER BY updated_at, id
		LIMIT ?
	`, int(order.Shipped), query.shippedBefore, query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			shipment UnnotifiedShipment
			rawID    uuid.UUID
		)
		err = rows.Scan(
			&rawID,
			&shipment.CustomerEmail,
			&shipment.TrackingNumber,
			&shipment.ShippingCarrier,
			&shipment.ShippedAt,
		)
		if err != nil {
			return nil, err
		}

		if shipment.ID, err = kernel.UUIDOf(rawID); err != nil {
			return nil, err
		}
		shipment.ShippedAt = shipment.ShippedAt.UTC()
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
