package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	var (
		resp                        GetOrderDetailsQueryResponse
		rawID                       uuid.UUID
		status                      int
		currency                    string
		subtotal, shipping, total   decimal.Decimal
		trackingNumber, carrierName sql.NullString
		notifiedAt                  sql.NullTime
	)

	row := db.Raw(`
		SELECT
			id,
			status,
			customer_name, customer_email, customer_phone,
			address_line1, address_line2, address_city, address_region, address_postal_code, address_country,
			currency, subtotal, shipping_cost, total,
			tracking_number, shipping_carrier,
			created_at, updated_at, tracking_notified_at,
			version
		FROM orders
		WHERE id = ?
	`, id.Value()).Row()

	err := row.Scan(
		&rawID,
		&status,
		&resp.Customer.Name, &resp.Customer.Email, &resp.Customer.Phone,
		&resp.ShippingAddress.Line1, &resp.ShippingAddress.Line2, &resp.ShippingAddress.City,
		&resp.ShippingAddress.Region, &resp.ShippingAddress.PostalCode, &resp.ShippingAddress.Country,
		&currency, &subtotal, &shipping, &total,
		&trackingNumber, &carrierName,
		&resp.CreatedAt, &resp.UpdatedAt, &notifiedAt,
		&resp.Version,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return GetOrderDetailsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDOf(rawID); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	resp.Status = order.Status(status)
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	if resp.Subtotal, err = kernel.NewMoney(subtotal, currency); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.ShippingCost, err = kernel.NewMoney(shipping, currency); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total, currency); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if trackingNumber.Valid && carrierName.Valid {
		resp.Tracking = &TrackingView{TrackingNumber: trackingNumber.String, ShippingCarrier: carrierName.String}
	}
	if notifiedAt.Valid {
		at := notifiedAt.Time.UTC()
		resp.TrackingNotifiedAt = &at
	}

	if resp.Lines, err = h.lines(ctx, id, currency); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) lines(ctx context.Context, id kernel.UUID, currency string) ([]LineView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_name, color, size, quantity, unit_price, line_total
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, id.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]LineView, 0)
	for rows.Next() {
		var (
			line             LineView
			unitPrice, total decimal.Decimal
		)
		if err = rows.Scan(&line.ProductName, &line.Color, &line.Size, &line.Quantity, &unitPrice, &total); err != nil {
			return nil, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice, currency); err != nil {
			return nil, err
		}
		if line.LineTotal, err = kernel.NewMoney(total, currency); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}
