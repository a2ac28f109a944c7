package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ClaimOrderCommandHandler lets any user claim a prepared order as its rider.
// First claimer wins: the update only applies while the stored status is still
// Prepared, and a rider who loses the race gets a conflict.
type ClaimOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	clock      ports.Clock
}

func NewClaimOrderCommandHandler(uowFactory LifecycleUoWFactory, clock ports.Clock) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	if _, err := actors.Load(ctx, uow.UserRepository(), cmd.RiderID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	from := o.Status()
	if err = o.ClaimBy(cmd.RiderID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateLifecycle(ctx, o, from); err != nil {
		return nil, err
	}

	event := order.NewEvent(o, order.EventRiderClaimed, from, cmd.RiderID(), now)
	if err = uow.OutboxRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
