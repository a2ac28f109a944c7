package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a new status on behalf of an actor.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(actorID, orderID kernel.UUID, status order.Status) (ChangeOrderStatusCommand, error) {
	c := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actorID.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	c.actorID = actorID
	c.orderID = orderID
	c.status = status
	return c, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
