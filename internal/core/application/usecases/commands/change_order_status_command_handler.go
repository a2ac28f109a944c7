package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status change requested by an actor.
//
// Administrators override the status directly. Everyone else goes through the
// transition table for their relation to the order. The write is conditional
// on the status read at the start, so a concurrent change surfaces as a
// conflict instead of being overwritten.
type ChangeOrderStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      ports.Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory LifecycleUoWFactory, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	actor, err := actors.Load(ctx, uow.UserRepository(), cmd.ActorID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	ownerID, err := actors.ShopOwner(ctx, uow.ShopRepository(), o.ShopID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	from := o.Status()
	relations := o.RelationOf(actor.ID(), ownerID, actor.IsAdmin())

	if relations.Has(order.RelationAdmin) {
		err = o.Override(cmd.Status())
	} else {
		err = o.ChangeStatus(relations, cmd.Status(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateLifecycle(ctx, o, from); err != nil {
		return nil, err
	}

	event := order.NewEvent(o, order.EventStatusChanged, from, actor.ID(), now)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
