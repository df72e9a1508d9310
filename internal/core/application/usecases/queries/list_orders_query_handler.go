package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the requested page and the total number of matching
// orders. Orders with equal creation time are ordered by id so pages are stable.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	filter := db.Table("orders")
	if status := query.Status(); status != nil {
		filter = filter.Where("status = ?", int(*status))
	}

	resp := ListOrdersQueryResponse{
		Items:   make([]OrderSummary, 0),
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}
	if err := filter.Count(&resp.Total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if resp.Total == 0 {
		return resp, nil
	}

	rows, err := db.Raw(`
		SELECT
			o.id,
			o.status,
			o.customer_name,
			o.customer_email,
			o.currency,
			o.total,
			COALESCE((SELECT SUM(li.quantity) FROM order_line_items li WHERE li.order_id = o.id), 0),
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE (? = 0 OR o.status = ?)
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, statusFilter(query.Status()), statusFilter(query.Status()), query.PerPage(), query.offset()).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary  OrderSummary
			rawID    uuid.UUID
			status   int
			currency string
			total    decimal.Decimal
		)
		err = rows.Scan(
			&rawID,
			&status,
			&summary.CustomerName,
			&summary.CustomerEmail,
			&currency,
			&total,
			&summary.ItemCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDOf(rawID); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if summary.Total, err = kernel.NewMoney(total, currency); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		summary.Status = order.Status(status)
		summary.CreatedAt = summary.CreatedAt.UTC()
		summary.UpdatedAt = summary.UpdatedAt.UTC()

		resp.Items = append(resp.Items, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return resp, nil
}

func statusFilter(status *order.Status) int {
	if status == nil {
		return 0
	}
	return int(*status)
}
