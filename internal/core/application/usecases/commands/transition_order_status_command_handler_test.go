package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transitionFixture struct {
	repo     *MockOrderRepository
	uow      *MockOrderUoW
	factory  *MockOrderUoWFactory
	notifier *MockTrackingNotifier
	handler  *commands.TransitionOrderStatusCommandHandler
}

func newTransitionFixture() *transitionFixture {
	repo := new(MockOrderRepository)
	factory, uow := newUoW(repo)
	notifier := new(MockTrackingNotifier)
	composer := services.NewTrackingNotificationComposer(carrier.DefaultCatalog())

	return &transitionFixture{
		repo:     repo,
		uow:      uow,
		factory:  factory,
		notifier: notifier,
		handler:  commands.NewTransitionOrderStatusCommandHandler(factory, composer, notifier, nil),
	}
}

func transitionCmd(t *testing.T, id kernel.UUID, target order.Status, number, carrierName string) commands.TransitionOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewTransitionOrderStatusCommand(id, target, number, carrierName, "alice")
	require.NoError(t, err)
	return cmd
}

func changeTo(target order.Status, version int64) any {
	return mock.MatchedBy(func(change order.StatusChange) bool {
		return change.To == target && change.ExpectedVersion == version
	})
}

func requireTransitionError(t *testing.T, err error, stage commands.Stage, kind error) *commands.TransitionError {
	t.Helper()

	var failed *commands.TransitionError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, stage, failed.Stage)
	require.ErrorIs(t, err, kind)
	assert.False(t, failed.StatusChanged())
	return failed
}

func TestTransitionOrderStatus_NonShippingTransitionDoesNotNotify(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	f := newTransitionFixture()

	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Pending, 1), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, changeTo(order.Processing, 1)).
		Return(orderIn(t, id, order.Processing, 2), nil).Once()

	result, err := f.handler.Handle(ctx, transitionCmd(t, id, order.Processing, "", ""))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeSuccess, result.Outcome)
	assert.Equal(t, order.Processing, result.Order.Status())
	assert.Equal(t, order.Pending, result.PreviousStatus)
	assert.False(t, result.NotificationSent)
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "MarkTrackingNotified", mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestTransitionOrderStatus_ShippingSendsExactlyOneNotification(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	f := newTransitionFixture()

	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 3), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(change order.StatusChange) bool {
		return change.To == order.Shipped &&
			change.From == order.Packed &&
			change.ExpectedVersion == 3 &&
			change.Tracking != nil &&
			change.Tracking.TrackingNumber() == "JD0146" &&
			change.Tracking.ShippingCarrier() == "DHL"
	})).Return(orderIn(t, id, order.Shipped, 4), nil).Once()
	f.notifier.On("SendTrackingNotification", mock.Anything, mock.MatchedBy(func(p notification.TrackingNotification) bool {
		return p.OrderID == id.String() &&
			p.TrackingNumber == "JD0146" &&
			p.ShippingCarrier == "DHL" &&
			p.TrackingURL != "" &&
			p.Total == "$85.00" &&
			p.TotalQuantity == 2
	})).Return(nil).Once()
	f.repo.On("MarkTrackingNotified", mock.Anything, id, mock.AnythingOfType("time.Time")).Return(nil).Once()

	result, err := f.handler.Handle(ctx, transitionCmd(t, id, order.Shipped, " JD0146 ", "DHL"))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeSuccess, result.Outcome)
	assert.True(t, result.NotificationSent)
	assert.NoError(t, result.NotificationErr)
	assert.Equal(t, order.Shipped, result.Order.Status())
	f.notifier.AssertNumberOfCalls(t, "SendTrackingNotification", 1)
	f.repo.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestTransitionOrderStatus_MissingTrackingIsRejectedWithoutSideEffects(t *testing.T) {
	testCases := []struct {
		name    string
		number  string
		carrier string
		reason  order.RejectionReason
	}{
		{"missing tracking number", "", "UPS", order.ReasonTrackingNumberRequired},
		{"missing carrier", "1Z999", "  ", order.ReasonShippingCarrierRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := kernel.NewUUID()
			f := newTransitionFixture()
			f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 1), nil).Once()

			_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, tc.number, tc.carrier))

			failed := requireTransitionError(t, err, commands.StageValidation, commands.ErrInvalidTransition)
			rejected, ok := failed.Rejection()
			require.True(t, ok)
			assert.Equal(t, tc.reason, rejected.Reason)
			f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestTransitionOrderStatus_ShippedCannotBeCancelled(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 4), nil).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Cancelled, "", ""))

	failed := requireTransitionError(t, err, commands.StageValidation, commands.ErrInvalidTransition)
	require.ErrorIs(t, err, order.ErrTransitionRejected)
	rejected, _ := failed.Rejection()
	assert.Equal(t, order.ReasonNotAdjacent, rejected.Reason)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestTransitionOrderStatus_RepeatedShippingDoesNotNotifyTwice(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 4), nil).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, "JD0146", "DHL"))

	failed := requireTransitionError(t, err, commands.StageValidation, commands.ErrInvalidTransition)
	rejected, _ := failed.Rejection()
	assert.Equal(t, order.ReasonSameStatus, rejected.Reason)
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
}

func TestTransitionOrderStatus_DeliveredIsTerminal(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Delivered, 5), nil).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Processing, "", ""))

	failed := requireTransitionError(t, err, commands.StageValidation, commands.ErrInvalidTransition)
	rejected, _ := failed.Rejection()
	assert.Equal(t, order.ReasonTerminalStatus, rejected.Reason)
}

func TestTransitionOrderStatus_OrderNotFound(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Processing, "", ""))

	requireTransitionError(t, err, commands.StageLookup, commands.ErrOrderNotFound)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionOrderStatus_LookupStorageFailure(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(nil, errors.New("connection refused")).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Processing, "", ""))

	requireTransitionError(t, err, commands.StageLookup, commands.ErrPersistence)
}

func TestTransitionOrderStatus_PersistenceFailureSendsNothing(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 2), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, changeTo(order.Shipped, 2)).
		Return(nil, errors.New("disk full")).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, "JD0146", "DHL"))

	failed := requireTransitionError(t, err, commands.StagePersistence, commands.ErrPersistence)
	assert.False(t, failed.IsConflict())
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestTransitionOrderStatus_ConcurrentModificationIsConflict(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Pending, 1), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, changeTo(order.Cancelled, 1)).
		Return(nil, errs.NewVersionIsInvalidError("order")).Once()

	_, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Cancelled, "", ""))

	failed := requireTransitionError(t, err, commands.StagePersistence, commands.ErrPersistence)
	assert.True(t, failed.IsConflict())
}

func TestTransitionOrderStatus_CommitFailureSendsNothing(t *testing.T) {
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	notifier := new(MockTrackingNotifier)
	handler := commands.NewTransitionOrderStatusCommandHandler(
		factory, services.NewTrackingNotificationComposer(carrier.DefaultCatalog()), notifier, nil)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 2), nil).Once(),
		repo.On("UpdateStatus", mock.Anything, changeTo(order.Shipped, 2)).Return(orderIn(t, id, order.Shipped, 3), nil).Once(),
		uow.On("Commit", mock.Anything).Return(errors.New("commit failed")).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	_, err := handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, "JD0146", "DHL"))

	requireTransitionError(t, err, commands.StagePersistence, commands.ErrPersistence)
	notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestTransitionOrderStatus_DispatchFailureIsPartialSuccess(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()
	dispatchErr := errors.New("mail gateway unavailable")

	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 2), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, changeTo(order.Shipped, 2)).
		Return(orderIn(t, id, order.Shipped, 3), nil).Once()
	f.notifier.On("SendTrackingNotification", mock.Anything, mock.Anything).Return(dispatchErr).Once()

	result, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, "JD0146", "DHL"))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePartialSuccess, result.Outcome)
	assert.True(t, result.IsPartial())
	require.ErrorIs(t, result.NotificationErr, dispatchErr)
	assert.False(t, result.NotificationSent)
	assert.Equal(t, order.Shipped, result.Order.Status())
	f.uow.AssertNumberOfCalls(t, "Commit", 1)
	f.notifier.AssertNumberOfCalls(t, "SendTrackingNotification", 1)
	f.repo.AssertNotCalled(t, "MarkTrackingNotified", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderStatus_BookkeepingFailureKeepsSuccess(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()

	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 2), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, changeTo(order.Shipped, 2)).
		Return(orderIn(t, id, order.Shipped, 3), nil).Once()
	f.notifier.On("SendTrackingNotification", mock.Anything, mock.Anything).Return(nil).Once()
	f.repo.On("MarkTrackingNotified", mock.Anything, id, mock.Anything).Return(errors.New("timeout")).Once()

	result, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Shipped, "JD0146", "DHL"))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeSuccess, result.Outcome)
	assert.True(t, result.NotificationSent)
}

func TestTransitionOrderStatus_DeliveryDoesNotNotify(t *testing.T) {
	id := kernel.NewUUID()
	f := newTransitionFixture()

	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 3), nil).Once()
	f.repo.On("UpdateStatus", mock.Anything, mock.MatchedBy(func(change order.StatusChange) bool {
		return change.To == order.Delivered && change.Tracking != nil && change.Tracking.ShippingCarrier() == "DHL"
	})).Return(orderIn(t, id, order.Delivered, 4), nil).Once()

	result, err := f.handler.Handle(t.Context(), transitionCmd(t, id, order.Delivered, "", ""))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeSuccess, result.Outcome)
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
}

func TestTransitionOrderStatus_InvalidCommand(t *testing.T) {
	f := newTransitionFixture()

	_, err := f.handler.Handle(t.Context(), commands.TransitionOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrTransitionOrderStatusCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
