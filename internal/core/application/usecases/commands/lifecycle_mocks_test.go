package commands_test

import "testing"

type lifecycleMocks struct {
	users   *MockUserRepository
	shops   *MockShopRepository
	orders  *MockOrderRepository
	outbox  *MockOutboxRepository
	uow     *MockUoW
	factory *MockLifecycleUoWFactory
}

func newLifecycleMocks() lifecycleMocks {
	m := lifecycleMocks{
		users:   new(MockUserRepository),
		shops:   new(MockShopRepository),
		orders:  new(MockOrderRepository),
		outbox:  new(MockOutboxRepository),
		uow:     new(MockUoW),
		factory: new(MockLifecycleUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("UserRepository").Return(m.users).Maybe()
	m.uow.On("ShopRepository").Return(m.shops).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("OutboxRepository").Return(m.outbox).Maybe()
	return m
}

func (m lifecycleMocks) assert(t *testing.T) {
	m.users.AssertExpectations(t)
	m.shops.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.factory.AssertExpectations(t)
}
