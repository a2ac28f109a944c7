package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler freezes a customer's cart into a new Unpaid order.
//
// Every precondition is checked inside one transaction, in this order:
// actor known (401), shop exists and verified (404), shop open (403), cart
// non-empty (400), items orderable (403), delivery threshold reached (403),
// address owned by the customer (404), address within range (403). Only then
// are the lines that were read consumed and the order inserted. Any failure
// rolls everything back.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	clock      ports.Clock
	builder    services.OrderSnapshotBuilder
}

func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		builder:    services.NewOrderSnapshotBuilder(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := actors.Load(ctx, uow.UserRepository(), cmd.CustomerID()); err != nil {
		return nil, err
	}

	s, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = h.builder.ValidateShop(s, now); err != nil {
		return nil, err
	}

	cartRepo := uow.CartRepository()
	lines, err := cartRepo.GetByShop(ctx, cmd.CustomerID(), cmd.ShopID())
	if err != nil {
		return nil, err
	}
	if err = h.builder.ValidateCart(s, lines); err != nil {
		return nil, err
	}

	address, err := uow.AddressRepository().GetOwned(ctx, cmd.AddressID(), cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	o, err := h.builder.Build(services.SnapshotRequest{
		OrderID:    cmd.OrderID(),
		CustomerID: cmd.CustomerID(),
		Shop:       s,
		Lines:      lines,
		Address:    address,
		Note:       cmd.Note(),
		Now:        now,
	})
	if err != nil {
		return nil, err
	}

	if err = cartRepo.DeleteLines(ctx, cmd.CustomerID(), cart.IDs(lines)); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	event := order.NewEvent(o, order.EventCreated, o.Status(), cmd.CustomerID(), now)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
