package commands

import (
	"errors"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand asks to turn the customer's cart for a shop into an order
// delivered to one of the customer's addresses.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, shopID, addressID, "no cilantro")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	shopID     kernel.UUID
	addressID  kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID, customerID, shopID, addressID kernel.UUID, note string) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setIDs(orderID, customerID, shopID, addressID),
		c.setNote(note),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) ShopID() kernel.UUID     { return c.shopID }
func (c CreateOrderCommand) AddressID() kernel.UUID  { return c.addressID }
func (c CreateOrderCommand) Note() string            { return c.note }

func (c *CreateOrderCommand) setIDs(orderID, customerID, shopID, addressID kernel.UUID) error {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		shopID.Validate(),
		addressID.Validate(),
	); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	c.shopID = shopID
	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setNote(note string) error {
	if n := utf8.RuneCountInString(note); n > order.MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, order.MaxNoteLength)
	}

	c.note = note
	return nil
}
