package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// DeleteOrderCommandHandler removes a canceled order at its customer's request.
type DeleteOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      ports.Clock
}

func NewDeleteOrderCommandHandler(uowFactory LifecycleUoWFactory, clock ports.Clock) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := actors.Load(ctx, uow.UserRepository(), cmd.ActorID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureDeletableBy(cmd.ActorID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o, o.Status()); err != nil {
		return err
	}

	event := order.NewEvent(o, order.EventDeleted, o.Status(), cmd.ActorID(), h.clock.Now())
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
