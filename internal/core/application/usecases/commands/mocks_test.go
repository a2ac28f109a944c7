package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/clock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByShop(ctx context.Context, customerID, shopID kernel.UUID) ([]cart.Line, error) {
	args := m.Called(ctx, customerID, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Line), args.Error(1)
}

func (m *MockCartRepository) DeleteLines(ctx context.Context, customerID kernel.UUID, lineIDs []kernel.UUID) error {
	args := m.Called(ctx, customerID, lineIDs)
	return args.Error(0)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) GetOwned(ctx context.Context, id, ownerID kernel.UUID) (kernel.Address, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(kernel.Address), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateLifecycle(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, e order.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]order.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Event), args.Error(1)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, ids []int64, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavor used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() ports.Clock {
	return clock.Fixed(now, time.UTC)
}

func testAddress(t *testing.T, lat, lon float64, contact string) kernel.Address {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	a, err := kernel.NewAddress(p, "Guangdong", "Shenzhen", "Nanshan", "Yuehai", "9 Science Park", contact, "0755-0000")
	require.NoError(t, err)
	return a
}

type shopTerms struct {
	owner      kernel.UUID
	opened     bool
	start, end int
	threshold  int64
	maxKm      float64
}

func testShop(t *testing.T, terms shopTerms) *shop.Shop {
	t.Helper()
	if terms.owner.IsZero() {
		terms.owner = kernel.NewUUID()
	}
	hours, err := shop.NewOpeningHours(terms.start, terms.end)
	require.NoError(t, err)
	s, err := shop.NewShop(kernel.NewUUID(), terms.owner, "Harbour Dim Sum", true, terms.opened, hours,
		shop.Delivery{Fee: decimal.NewFromInt(6), Threshold: decimal.NewFromInt(terms.threshold), MaxDistanceKm: terms.maxKm},
		testAddress(t, 22.54, 113.95, "Harbour Dim Sum"))
	require.NoError(t, err)
	return s
}

func openShop(t *testing.T) *shop.Shop {
	return testShop(t, shopTerms{opened: true, start: 0, end: 1440, threshold: 0, maxKm: 10})
}

func testLines(t *testing.T) []cart.Line {
	t.Helper()
	a, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Har gow", 2, decimal.NewFromInt(18), true, false)
	require.NoError(t, err)
	b, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Egg tart", 4, decimal.NewFromInt(5), true, false)
	require.NoError(t, err)
	return []cart.Line{a, b}
}

func testUser(t *testing.T, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), role)
	require.NoError(t, err)
	return u
}

func testOrder(t *testing.T, customerID, shopID kernel.UUID) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Har gow", 2, decimal.NewFromInt(18))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, shopID, decimal.NewFromInt(6), "",
		testAddress(t, 22.54, 113.95, "Harbour Dim Sum"), testAddress(t, 22.55, 113.96, "Wang Fang"),
		[]order.LineItem{li}, now.Add(-time.Hour))
	require.NoError(t, err)
	return o
}
