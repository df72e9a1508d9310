package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrResendTrackingNotificationCommandIsNotConstructed = errors.New(
	"ResendTrackingNotificationCommand must be created via NewResendTrackingNotificationCommand constructor",
)

// ResendTrackingNotificationCommand is an operator's manual retry of the
// tracking notification for an order that already shipped.
type ResendTrackingNotificationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

func NewResendTrackingNotificationCommand(orderID kernel.UUID, actor string) (ResendTrackingNotificationCommand, error) {
	cmd := ResendTrackingNotificationCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	var problems []error
	if err := orderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if cmd.actor == "" {
		problems = append(problems, errs.NewValueIsRequiredError("actor"))
	}
	if len(problems) > 0 {
		return ResendTrackingNotificationCommand{}, errors.Join(problems...)
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c ResendTrackingNotificationCommand) Validate() error {
	return c.guard.Validate(ErrResendTrackingNotificationCommandIsNotConstructed)
}

func (c ResendTrackingNotificationCommand) OrderID() kernel.UUID { return c.orderID }
func (c ResendTrackingNotificationCommand) Actor() string        { return c.actor }
