package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockClaimOrderHandler struct{ mock.Mock }

func (m *MockClaimOrderHandler) Handle(ctx context.Context, cmd commands.ClaimOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

// fakeCovers links covers under a fixed host.
type fakeCovers struct{}

func (fakeCovers) LineItemCover(_ context.Context, lineItemID kernel.UUID) (ports.CoverLinks, error) {
	base := "https://cdn.test/order-items/" + lineItemID.String()
	return ports.CoverLinks{Origin: base + "/cover.webp", Thumbnail: base + "/cover-thumbnail.webp"}, nil
}

type apiMocks struct {
	create  *MockCreateOrderHandler
	status  *MockChangeOrderStatusHandler
	claim   *MockClaimOrderHandler
	remove  *MockDeleteOrderHandler
	get     *MockGetOrderHandler
	list    *MockListOrdersHandler
	metrics *metrics.ServerMetrics
}

func newTestRouter(t *testing.T) (*echo.Echo, apiMocks) {
	t.Helper()

	m := apiMocks{
		create:  &MockCreateOrderHandler{},
		status:  &MockChangeOrderStatusHandler{},
		claim:   &MockClaimOrderHandler{},
		remove:  &MockDeleteOrderHandler{},
		get:     &MockGetOrderHandler{},
		list:    &MockListOrdersHandler{},
		metrics: metrics.NewServerMetrics(),
	}
	t.Cleanup(func() {
		m.create.AssertExpectations(t)
		m.status.AssertExpectations(t)
		m.claim.AssertExpectations(t)
		m.remove.AssertExpectations(t)
		m.get.AssertExpectations(t)
		m.list.AssertExpectations(t)
	})

	server := NewServer(Handlers{
		CreateOrder:       m.create,
		ChangeOrderStatus: m.status,
		ClaimOrder:        m.claim,
		DeleteOrder:       m.remove,
		GetOrder:          m.get,
		ListOrders:        m.list,
	}, fakeCovers{}, m.metrics)

	e, err := NewRouter(server, RouterConfig{
		JWTSecret: testSecret,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:   m.metrics,
	})
	require.NoError(t, err)
	return e, m
}

func signToken(t *testing.T, secret []byte, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func testAddress(t *testing.T, lat, lng float64, contact string) kernel.Address {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	a, err := kernel.NewAddress(p, "Zhejiang", "Hangzhou", "Xihu", "Lingyin", "8 Tea Road", contact, "0571-1234")
	require.NoError(t, err)
	return a
}

func testOrder(t *testing.T, customerID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Green tea", 2, decimal.RequireFromString("6.5"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), decimal.NewFromInt(2), "less ice",
		testAddress(t, 30.25, 120.15, "Tea House"), testAddress(t, 30.26, 120.16, "Li Na"), []order.LineItem{li},
		time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, o.Override(status))
	return o
}
