package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resendFixture struct {
	repo     *MockOrderRepository
	uow      *MockOrderUoW
	notifier *MockTrackingNotifier
	lock     *MockNotificationLock
	handler  *commands.ResendTrackingNotificationCommandHandler
}

func newResendFixture() *resendFixture {
	repo := new(MockOrderRepository)
	factory, uow := newUoW(repo)
	notifier := new(MockTrackingNotifier)
	lock := new(MockNotificationLock)

	return &resendFixture{
		repo:     repo,
		uow:      uow,
		notifier: notifier,
		lock:     lock,
		handler: commands.NewResendTrackingNotificationCommandHandler(
			factory,
			services.NewTrackingNotificationComposer(carrier.DefaultCatalog()),
			notifier,
			lock,
			nil,
		),
	}
}

func resendCmd(t *testing.T, id kernel.UUID) commands.ResendTrackingNotificationCommand {
	t.Helper()
	cmd, err := commands.NewResendTrackingNotificationCommand(id, "bob")
	require.NoError(t, err)
	return cmd
}

func TestNewResendTrackingNotificationCommand(t *testing.T) {
	_, err := commands.NewResendTrackingNotificationCommand(kernel.UUID{}, "")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var cmd commands.ResendTrackingNotificationCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrResendTrackingNotificationCommandIsNotConstructed)
}

func TestResendTrackingNotification_Success(t *testing.T) {
	for _, status := range []order.Status{order.Shipped, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			id := kernel.NewUUID()
			f := newResendFixture()
			f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, status, 4), nil).Once()
			f.lock.On("Acquire", mock.Anything, id).Return(true, nil).Once()
			f.notifier.On("SendTrackingNotification", mock.Anything, mock.Anything).Return(nil).Once()
			f.repo.On("MarkTrackingNotified", mock.Anything, id, mock.Anything).Return(nil).Once()

			resent, err := f.handler.Handle(t.Context(), resendCmd(t, id))

			require.NoError(t, err)
			assert.Equal(t, status, resent.Status())
			f.lock.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
			f.repo.AssertExpectations(t)
			f.notifier.AssertExpectations(t)
			f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
		})
	}
}

func TestResendTrackingNotification_NotApplicableBeforeShipping(t *testing.T) {
	id := kernel.NewUUID()
	f := newResendFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Packed, 2), nil).Once()

	_, err := f.handler.Handle(t.Context(), resendCmd(t, id))

	require.ErrorIs(t, err, commands.ErrNotificationNotApplicable)
	f.lock.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
}

func TestResendTrackingNotification_NotFound(t *testing.T) {
	id := kernel.NewUUID()
	f := newResendFixture()
	f.repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	_, err := f.handler.Handle(t.Context(), resendCmd(t, id))

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestResendTrackingNotification_InProgress(t *testing.T) {
	id := kernel.NewUUID()
	f := newResendFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 4), nil).Once()
	f.lock.On("Acquire", mock.Anything, id).Return(false, nil).Once()

	_, err := f.handler.Handle(t.Context(), resendCmd(t, id))

	require.ErrorIs(t, err, commands.ErrResendInProgress)
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
}

func TestResendTrackingNotification_LockError(t *testing.T) {
	id := kernel.NewUUID()
	f := newResendFixture()
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 4), nil).Once()
	f.lock.On("Acquire", mock.Anything, id).Return(false, errors.New("redis down")).Once()

	_, err := f.handler.Handle(t.Context(), resendCmd(t, id))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
	f.notifier.AssertNotCalled(t, "SendTrackingNotification", mock.Anything, mock.Anything)
}

func TestResendTrackingNotification_DispatchFailureReleasesLock(t *testing.T) {
	id := kernel.NewUUID()
	f := newResendFixture()
	dispatchErr := errors.New("gateway timeout")
	f.repo.On("Get", mock.Anything, id).Return(orderIn(t, id, order.Shipped, 4), nil).Once()
	f.lock.On("Acquire", mock.Anything, id).Return(true, nil).Once()
	f.notifier.On("SendTrackingNotification", mock.Anything, mock.Anything).Return(dispatchErr).Once()
	f.lock.On("Release", mock.Anything, id).Return(nil).Once()

	_, err := f.handler.Handle(t.Context(), resendCmd(t, id))

	require.ErrorIs(t, err, commands.ErrDispatchFailed)
	require.ErrorIs(t, err, dispatchErr)
	f.lock.AssertExpectations(t)
	f.repo.AssertNotCalled(t, "MarkTrackingNotified", mock.Anything, mock.Anything, mock.Anything)
}
