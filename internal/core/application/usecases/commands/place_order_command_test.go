package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	items := testLineItems(t)

	cmd, err := commands.NewPlaceOrderCommand(id, testCustomer(t), testAddress(t), items, kernel.MustMoney("5.00", "USD"))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Ada Lovelace", cmd.Customer().Name())
	assert.Len(t, cmd.LineItems(), 1)
	assert.Equal(t, "$5.00", cmd.ShippingCost().Format())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.Contact{}, kernel.Address{}, nil, kernel.Money{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrContactIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	require.ErrorIs(t, err, order.ErrLineItemsAreRequired)
	require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestNewPlaceOrderCommand_RejectsUnconstructedLineItem(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), testCustomer(t), testAddress(t),
		[]order.LineItem{{}}, kernel.MustMoney("5.00", "USD"))

	require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
}
