package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand asks to remove a canceled order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actorID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
