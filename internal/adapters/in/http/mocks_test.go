package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	placed, _ := args.Get(0).(*order.Order)
	return placed, args.Error(1)
}

type MockStatusTransitioner struct{ mock.Mock }

func (m *MockStatusTransitioner) Handle(
	ctx context.Context,
	cmd commands.TransitionOrderStatusCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockNotificationResender struct{ mock.Mock }

func (m *MockNotificationResender) Handle(
	ctx context.Context,
	cmd commands.ResendTrackingNotificationCommand,
) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	resent, _ := args.Get(0).(*order.Order)
	return resent, args.Error(1)
}

type MockOrderDetailsReader struct{ mock.Mock }

func (m *MockOrderDetailsReader) Handle(
	ctx context.Context,
	query queries.GetOrderDetailsQuery,
) (queries.GetOrderDetailsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderDetailsQueryResponse), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}
