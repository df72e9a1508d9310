package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks to move an order to a new status.
//
// The target status is not checked here: an unknown or illegal target is a
// validation outcome of the handler, not a malformed command.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	target   order.Status
	tracking order.TrackingInput
	actor    string

	guard guard.ConstructorGuard
}

func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	trackingNumber, shippingCarrier string,
	actor string,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		target: target,
		tracking: order.TrackingInput{
			TrackingNumber:  trackingNumber,
			ShippingCarrier: shippingCarrier,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID          { return c.orderID }
func (c TransitionOrderStatusCommand) Target() order.Status          { return c.target }
func (c TransitionOrderStatusCommand) Tracking() order.TrackingInput { return c.tracking }

// Actor is the back-office user who requested the change.
func (c TransitionOrderStatusCommand) Actor() string { return c.actor }

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
