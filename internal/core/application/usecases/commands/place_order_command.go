package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand ingests an order completed at checkout.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customer, address, lines, shipping)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout payload: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customer        kernel.Contact
	shippingAddress kernel.Address
	lineItems       []order.LineItem
	shippingCost    kernel.Money

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customer kernel.Contact,
	shippingAddress kernel.Address,
	lineItems []order.LineItem,
	shippingCost kernel.Money,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setShippingAddress(shippingAddress),
		cmd.setLineItems(lineItems),
		cmd.setShippingCost(shippingCost),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c PlaceOrderCommand) Customer() kernel.Contact        { return c.customer }
func (c PlaceOrderCommand) ShippingAddress() kernel.Address { return c.shippingAddress }
func (c PlaceOrderCommand) ShippingCost() kernel.Money      { return c.shippingCost }

func (c PlaceOrderCommand) LineItems() []order.LineItem {
	return append([]order.LineItem(nil), c.lineItems...)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customer kernel.Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.shippingAddress = address
	return nil
}

func (c *PlaceOrderCommand) setLineItems(items []order.LineItem) error {
	if len(items) == 0 {
		return order.ErrLineItemsAreRequired
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	c.lineItems = append([]order.LineItem(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	c.shippingCost = cost
	return nil
}
