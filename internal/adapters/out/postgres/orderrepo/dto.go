// Package orderrepo maps the order aggregate onto the orders and
// order_line_items tables.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Timestamps are written
// explicitly, so gorm's automatic time tracking is disabled.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Status             int             `gorm:"type:smallint;not null"`
	Customer           CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	Address            AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Currency           string          `gorm:"type:char(3);not null"`
	Subtotal           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ShippingCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TrackingNumber     *string
	ShippingCarrier    *string
	CreatedAt          time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false;not null"`
	TrackingNotifiedAt *time.Time
	Version            int64         `gorm:"not null"`
	LineItems          []LineItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type CustomerDTO struct {
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
	Phone string `gorm:"not null;default:''"`
}

type AddressDTO struct {
	Line1      string `gorm:"not null"`
	Line2      string `gorm:"not null;default:''"`
	City       string `gorm:"not null"`
	Region     string `gorm:"not null;default:''"`
	PostalCode string `gorm:"not null"`
	Country    string `gorm:"not null"`
}

// LineItemDTO is one row of order_line_items; Position keeps checkout order.
type LineItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey"`
	ProductName string          `gorm:"not null"`
	Color       string          `gorm:"not null;default:''"`
	Size        string          `gorm:"not null;default:''"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()
	address := o.ShippingAddress()
	amounts := o.Amounts()

	dto := OrderDTO{
		ID:     o.ID().Value(),
		Status: int(o.Status()),
		Customer: CustomerDTO{
			Name:  customer.Name(),
			Email: customer.Email(),
			Phone: customer.Phone(),
		},
		Address: AddressDTO{
			Line1:      address.Line1(),
			Line2:      address.Line2(),
			City:       address.City(),
			Region:     address.Region(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		Currency:           amounts.Total().Currency(),
		Subtotal:           amounts.Subtotal().Amount(),
		ShippingCost:       amounts.Shipping().Amount(),
		Total:              amounts.Total().Amount(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		TrackingNotifiedAt: o.TrackingNotifiedAt(),
		Version:            o.Version(),
	}
	dto.TrackingNumber, dto.ShippingCarrier = trackingColumns(o.Tracking())

	for i, item := range o.LineItems() {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			OrderID:     dto.ID,
			Position:    i,
			ProductName: item.ProductName(),
			Color:       item.Variant().Color,
			Size:        item.Variant().Size,
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			LineTotal:   item.LineTotal().Amount(),
		})
	}

	return dto
}

func trackingColumns(tracking *order.TrackingInfo) (*string, *string) {
	if tracking == nil {
		return nil, nil
	}
	number, carrierName := tracking.TrackingNumber(), tracking.ShippingCarrier()
	return &number, &carrierName
}

// toDomain rebuilds the aggregate; RestoreOrder re-checks every invariant.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewContact(dto.Customer.Name, dto.Customer.Email, dto.Customer.Phone)
	if err != nil {
		return nil, fmt.Errorf("order %s customer: %w", id, err)
	}

	address, err := kernel.NewAddress(
		dto.Address.Line1, dto.Address.Line2, dto.Address.City,
		dto.Address.Region, dto.Address.PostalCode, dto.Address.Country,
	)
	if err != nil {
		return nil, fmt.Errorf("order %s address: %w", id, err)
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, row := range dto.LineItems {
		price, priceErr := kernel.NewMoney(row.UnitPrice, dto.Currency)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(row.ProductName, order.Variant{Color: row.Color, Size: row.Size}, row.Quantity, price)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s line %d: %w", id, row.Position, itemErr)
		}
		items = append(items, item)
	}

	subtotal, subtotalErr := kernel.NewMoney(dto.Subtotal, dto.Currency)
	shipping, shippingErr := kernel.NewMoney(dto.ShippingCost, dto.Currency)
	total, totalErr := kernel.NewMoney(dto.Total, dto.Currency)
	if err = errors.Join(subtotalErr, shippingErr, totalErr); err != nil {
		return nil, fmt.Errorf("order %s amounts: %w", id, err)
	}

	var tracking *order.TrackingInfo
	if dto.TrackingNumber != nil || dto.ShippingCarrier != nil {
		info, trackingErr := order.NewTrackingInfo(deref(dto.TrackingNumber), deref(dto.ShippingCarrier))
		if trackingErr != nil {
			return nil, fmt.Errorf("order %s tracking: %w", id, trackingErr)
		}
		tracking = &info
	}

	var notifiedAt *time.Time
	if dto.TrackingNotifiedAt != nil {
		at := dto.TrackingNotifiedAt.UTC()
		notifiedAt = &at
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		Status:             order.Status(dto.Status),
		Customer:           customer,
		ShippingAddress:    address,
		LineItems:          items,
		Subtotal:           subtotal,
		ShippingCost:       shipping,
		Total:              total,
		Tracking:           tracking,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
		TrackingNotifiedAt: notifiedAt,
		Version:            dto.Version,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
