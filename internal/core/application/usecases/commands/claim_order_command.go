package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand asks to assign the acting user as the rider of a prepared order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(riderID, orderID kernel.UUID) (ClaimOrderCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		riderID: riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) RiderID() kernel.UUID { return c.riderID }
func (c ClaimOrderCommand) OrderID() kernel.UUID { return c.orderID }
