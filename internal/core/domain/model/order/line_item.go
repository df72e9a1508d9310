package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	minLineQuantity = 1
	maxLineQuantity = 999
)

// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

// Variant holds the purchasable attributes of a product. Both are optional.
type Variant struct {
	Color string
	Size  string
}

// Label renders the variant as "Color / Size", omitting empty parts.
func (v Variant) Label() string {
	parts := make([]string, 0, 2)
	if v.Color != "" {
		parts = append(parts, v.Color)
	}
	if v.Size != "" {
		parts = append(parts, v.Size)
	}
	return strings.Join(parts, " / ")
}

// LineItem is one purchased product. lineTotal is always unitPrice × quantity.
type LineItem struct {
	productName string
	variant     Variant
	quantity    int
	unitPrice   kernel.Money
	lineTotal   kernel.Money
	guard       guard.ConstructorGuard
}

func NewLineItem(productName string, variant Variant, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		productName: strings.TrimSpace(productName),
		variant: Variant{
			Color: strings.TrimSpace(variant.Color),
			Size:  strings.TrimSpace(variant.Size),
		},
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	var problems []error
	if item.productName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("productName"))
	}
	if quantity < minLineQuantity || quantity > maxLineQuantity {
		problems = append(problems, errs.NewValueIsOutOfRangeError("quantity", quantity, minLineQuantity, maxLineQuantity))
	}
	if err := unitPrice.Validate(); err != nil {
		problems = append(problems, fmt.Errorf("unit price: %w", err))
	}
	if len(problems) > 0 {
		return LineItem{}, errors.Join(problems...)
	}

	lineTotal, err := unitPrice.Multiply(quantity)
	if err != nil {
		return LineItem{}, err
	}
	item.lineTotal = lineTotal

	return item, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ProductName() string     { return l.productName }
func (l LineItem) Variant() Variant        { return l.variant }
func (l LineItem) Quantity() int           { return l.quantity }
func (l LineItem) UnitPrice() kernel.Money { return l.unitPrice }
func (l LineItem) LineTotal() kernel.Money { return l.lineTotal }
