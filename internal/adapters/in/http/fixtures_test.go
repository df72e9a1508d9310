package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testOrderID = "9b2f1c4e-5d7a-4a0b-8f3e-2c6d1e0a9b7c"

type testAPI struct {
	echo     *echo.Echo
	placer   *MockOrderPlacer
	mover    *MockStatusTransitioner
	resender *MockNotificationResender
	details  *MockOrderDetailsReader
	lister   *MockOrderLister
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		placer:   new(MockOrderPlacer),
		mover:    new(MockStatusTransitioner),
		resender: new(MockNotificationResender),
		details:  new(MockOrderDetailsReader),
		lister:   new(MockOrderLister),
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:         api.placer,
		TransitionStatus:   api.mover,
		ResendNotification: api.resender,
		GetOrderDetails:    api.details,
		ListOrders:         api.lister,
		ValidateTransition: queries.NewValidateTransitionQueryHandler(),
	}, carrier.DefaultCatalog(), zap.NewNop())

	e, err := httpadapter.NewRouter(server, zap.NewNop())
	require.NoError(t, err)
	api.echo = e

	t.Cleanup(func() {
		api.placer.AssertExpectations(t)
		api.mover.AssertExpectations(t)
		api.resender.AssertExpectations(t)
		api.details.AssertExpectations(t)
		api.lister.AssertExpectations(t)
	})
	return api
}

func (api *testAPI) do(method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func actor() map[string]string {
	return map[string]string{"X-Actor": "ops@storefront.test"}
}

// orderIn returns an order with id testOrderID in the given status.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	id, err := kernel.ParseUUID(testOrderID)
	require.NoError(t, err)
	customer, err := kernel.NewContact("Ada Lovelace", "ada@example.com", "")
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Analytical St", "", "London", "", "N1 9GU", "GB")
	require.NoError(t, err)
	item, err := order.NewLineItem("Linen Shirt", order.Variant{Color: "Sand", Size: "M"}, 2, kernel.MustMoney("40.00", "USD"))
	require.NoError(t, err)

	placedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	placed, err := order.NewOrder(id, customer, address, []order.LineItem{item}, kernel.MustMoney("5.00", "USD"), placedAt)
	require.NoError(t, err)

	snapshot := order.Snapshot{
		ID:              placed.ID(),
		Status:          status,
		Customer:        placed.Customer(),
		ShippingAddress: placed.ShippingAddress(),
		LineItems:       placed.LineItems(),
		Subtotal:        placed.Amounts().Subtotal(),
		ShippingCost:    placed.Amounts().Shipping(),
		Total:           placed.Amounts().Total(),
		CreatedAt:       placedAt,
		UpdatedAt:       placedAt.Add(time.Hour),
		Version:         3,
	}
	if status.CarriesTracking() {
		tracking, trackingErr := order.NewTrackingInfo("1Z999AA10123456784", "UPS")
		require.NoError(t, trackingErr)
		snapshot.Tracking = &tracking
	}

	restored, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	return restored
}
