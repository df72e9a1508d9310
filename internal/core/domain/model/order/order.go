package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineItemsAreRequired is returned for an order without any line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")
)

// Amounts are the monetary totals of an order, all in one currency.
type Amounts struct {
	subtotal kernel.Money
	shipping kernel.Money
	total    kernel.Money
}

func (a Amounts) Subtotal() kernel.Money { return a.subtotal }
func (a Amounts) Shipping() kernel.Money { return a.shipping }
func (a Amounts) Total() kernel.Money    { return a.total }

// Order is the aggregate root of the fulfilment workflow.
//
// Invariants:
//   - status is valid and moves only along the transition graph
//   - tracking is non-nil exactly when status is Shipped or Delivered
//   - subtotal is the sum of line totals, total is subtotal plus shipping
//   - version increases by one with every accepted transition
//
// Customer, address, amounts and line items never change after checkout.
type Order struct {
	id              kernel.UUID
	status          Status
	customer        kernel.Contact
	shippingAddress kernel.Address
	amounts         Amounts
	lineItems       []LineItem
	tracking        *TrackingInfo

	createdAt          time.Time
	updatedAt          time.Time
	trackingNotifiedAt *time.Time

	// version is the optimistic-concurrency token checked by UpdateStatus
	version int64

	isConstructed bool
}

// NewOrder places a new order in Pending status. Subtotal and total are
// derived from the line items and shipping cost, which must share a currency.
func NewOrder(
	id kernel.UUID,
	customer kernel.Contact,
	shippingAddress kernel.Address,
	lineItems []LineItem,
	shippingCost kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customer.Validate(),
		shippingAddress.Validate(),
		shippingCost.Validate(),
		validateLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	amounts, err := computeAmounts(lineItems, shippingCost)
	if err != nil {
		return nil, err
	}

	placedAt = placedAt.UTC()
	return &Order{
		id:              id,
		status:          Pending,
		customer:        customer,
		shippingAddress: shippingAddress,
		amounts:         amounts,
		lineItems:       append([]LineItem(nil), lineItems...),
		createdAt:       placedAt,
		updatedAt:       placedAt,
		version:         1,
		isConstructed:   true,
	}, nil
}

// Snapshot is the persisted state of an order, used to rebuild the aggregate.
type Snapshot struct {
	ID                 kernel.UUID
	Status             Status
	Customer           kernel.Contact
	ShippingAddress    kernel.Address
	LineItems          []LineItem
	Subtotal           kernel.Money
	ShippingCost       kernel.Money
	Total              kernel.Money
	Tracking           *TrackingInfo
	CreatedAt          time.Time
	UpdatedAt          time.Time
	TrackingNotifiedAt *time.Time
	Version            int64
}

// RestoreOrder rebuilds an order from storage and re-checks every invariant,
// so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.Status.Validate(),
		s.Customer.Validate(),
		s.ShippingAddress.Validate(),
		s.ShippingCost.Validate(),
		validateLineItems(s.LineItems),
		validateTracking(s.Status, s.Tracking),
	); err != nil {
		return nil, err
	}
	if s.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", s.Version))
	}

	amounts, err := computeAmounts(s.LineItems, s.ShippingCost)
	if err != nil {
		return nil, err
	}
	if !amounts.subtotal.IsEqual(s.Subtotal) || !amounts.total.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amounts",
			fmt.Errorf("stored subtotal %s / total %s do not match line items (%s / %s)",
				s.Subtotal, s.Total, amounts.subtotal, amounts.total),
		)
	}

	return &Order{
		id:                 s.ID,
		status:             s.Status,
		customer:           s.Customer,
		shippingAddress:    s.ShippingAddress,
		amounts:            amounts,
		lineItems:          append([]LineItem(nil), s.LineItems...),
		tracking:           s.Tracking,
		createdAt:          s.CreatedAt.UTC(),
		updatedAt:          s.UpdatedAt.UTC(),
		trackingNotifiedAt: s.TrackingNotifiedAt,
		version:            s.Version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) Customer() kernel.Contact        { return o.customer }
func (o *Order) ShippingAddress() kernel.Address { return o.shippingAddress }
func (o *Order) Amounts() Amounts                { return o.amounts }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }
func (o *Order) Version() int64                  { return o.version }

// LineItems returns a copy of the order lines in checkout order.
func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// Tracking returns the shipment tracking info, nil before the order ships.
func (o *Order) Tracking() *TrackingInfo {
	return o.tracking
}

// TrackingNotifiedAt is the time of the last successful tracking notification, if any.
func (o *Order) TrackingNotifiedAt() *time.Time {
	return o.trackingNotifiedAt
}

// TotalQuantity sums the quantities of all lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.lineItems {
		total += item.Quantity()
	}
	return total
}

// StatusChange is the single atomic update describing an accepted
// transition. Repositories apply it only if the stored version still equals
// ExpectedVersion.
type StatusChange struct {
	OrderID         kernel.UUID
	From            Status
	To              Status
	Tracking        *TrackingInfo
	ExpectedVersion int64
	At              time.Time
}

// PlanTransition validates a move to target and returns the change to
// persist. The order itself is not modified; it only changes once storage
// accepts the update and the aggregate is reloaded.
//
// Tracking for the change is the validated input for Shipped, the existing
// tracking for Delivered, and nil otherwise.
func (o *Order) PlanTransition(target Status, input TrackingInput, at time.Time) (StatusChange, error) {
	if err := o.Validate(); err != nil {
		return StatusChange{}, err
	}

	transition, err := EvaluateTransition(o.status, target, input)
	if err != nil {
		return StatusChange{}, err
	}

	tracking := transition.Tracking
	if transition.To == Delivered {
		tracking = o.tracking
	}

	return StatusChange{
		OrderID:         o.id,
		From:            transition.From,
		To:              transition.To,
		Tracking:        tracking,
		ExpectedVersion: o.version,
		At:              at.UTC(),
	}, nil
}

func validateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	problems := make([]error, 0)
	for i, item := range items {
		if err := item.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("line item %d: %w", i, err))
		}
	}
	return errors.Join(problems...)
}

func validateTracking(status Status, tracking *TrackingInfo) error {
	if status.CarriesTracking() && tracking == nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"tracking",
			fmt.Errorf("%s orders must carry tracking info", status),
		)
	}
	if !status.CarriesTracking() && tracking != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking",
			fmt.Errorf("%s orders must not carry tracking info", status),
		)
	}
	if tracking != nil {
		return tracking.Validate()
	}
	return nil
}

func computeAmounts(items []LineItem, shipping kernel.Money) (Amounts, error) {
	subtotal, err := kernel.ZeroMoney(shipping.Currency())
	if err != nil {
		return Amounts{}, err
	}
	for _, item := range items {
		if subtotal, err = subtotal.Add(item.LineTotal()); err != nil {
			return Amounts{}, err
		}
	}

	total, err := subtotal.Add(shipping)
	if err != nil {
		return Amounts{}, err
	}

	return Amounts{subtotal: subtotal, shipping: shipping, total: total}, nil
}
