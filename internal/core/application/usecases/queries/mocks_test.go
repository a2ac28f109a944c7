package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

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

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateLifecycle(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockReadUoW struct{ mock.Mock }

func (m *MockReadUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockReadUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockReadUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockReadUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockReadUoW) ShopRepository() ports.ShopRepository {
	return m.Called().Get(0).(ports.ShopRepository)
}

func (m *MockReadUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockReadUoWFactory struct{ mock.Mock }

func (m *MockReadUoWFactory) Create() queries.ReadUoW {
	return m.Called().Get(0).(queries.ReadUoW)
}

type readMocks struct {
	users   *MockUserRepository
	shops   *MockShopRepository
	orders  *MockOrderRepository
	uow     *MockReadUoW
	factory *MockReadUoWFactory
}

func newReadMocks(t *testing.T) readMocks {
	t.Helper()
	m := readMocks{
		users:   new(MockUserRepository),
		shops:   new(MockShopRepository),
		orders:  new(MockOrderRepository),
		uow:     new(MockReadUoW),
		factory: new(MockReadUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", t.Context()).Return(nil).Once()
	m.uow.On("Rollback", t.Context()).Return(nil).Once()
	m.uow.On("UserRepository").Return(m.users).Maybe()
	m.uow.On("ShopRepository").Return(m.shops).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	return m
}

func (m readMocks) assert(t *testing.T) {
	m.users.AssertExpectations(t)
	m.shops.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}

func testUser(t *testing.T, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), role)
	require.NoError(t, err)
	return u
}

func testShop(t *testing.T, ownerID kernel.UUID) *shop.Shop {
	t.Helper()
	hours, err := shop.NewOpeningHours(0, 1440)
	require.NoError(t, err)
	s, err := shop.NewShop(kernel.NewUUID(), ownerID, "Corner Bakery", true, true, hours,
		shop.Delivery{Fee: decimal.NewFromInt(2), Threshold: decimal.Zero, MaxDistanceKm: 3},
		testAddress(t, "Corner Bakery"))
	require.NoError(t, err)
	return s
}

func testAddress(t *testing.T, contact string) kernel.Address {
	t.Helper()
	p, err := kernel.NewGeoPoint(39.9, 116.4)
	require.NoError(t, err)
	a, err := kernel.NewAddress(p, "Beijing", "Beijing", "Dongcheng", "Jingshan", "3 Hutong", contact, "010-8888")
	require.NoError(t, err)
	return a
}

func testOrder(t *testing.T, customerID, shopID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Croissant", 3, decimal.RequireFromString("4.5"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, shopID, decimal.NewFromInt(2), "",
		testAddress(t, "Corner Bakery"), testAddress(t, "Zhao Lei"), []order.LineItem{li},
		time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, o.Override(status))
	return o
}
