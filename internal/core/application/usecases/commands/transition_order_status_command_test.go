package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderStatusCommand(id, order.Shipped, " 1Z ", "UPS", " alice ")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, order.Shipped, cmd.Target())
		assert.Equal(t, " 1Z ", cmd.Tracking().TrackingNumber)
		assert.Equal(t, "alice", cmd.Actor())
	})

	t.Run("unknown target is left to the validator", func(t *testing.T) {
		_, err := commands.NewTransitionOrderStatusCommand(id, order.Unknown, "", "", "alice")

		require.NoError(t, err)
	})

	t.Run("invalid id and blank actor", func(t *testing.T) {
		_, err := commands.NewTransitionOrderStatusCommand(kernel.UUID{}, order.Processing, "", "", "  ")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.TransitionOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderStatusCommandIsNotConstructed)
	})
}
