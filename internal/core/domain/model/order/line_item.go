package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

// LineItem is one cart entry frozen into an order. Its price is the line total
// (unit price × quantity) at checkout and is never recalculated from the catalog.
// The referenced catalog item may be deleted later; the line item survives.
type LineItem struct {
	id       kernel.UUID
	itemID   kernel.UUID
	name     string
	quantity int
	price    decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewLineItem freezes a cart entry, computing price = unitPrice × quantity.
func NewLineItem(id, itemID kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}
	return RestoreLineItem(id, itemID, name, quantity, unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// RestoreLineItem rebuilds a persisted line item with its stored line total.
func RestoreLineItem(id, itemID kernel.UUID, name string, quantity int, price decimal.Decimal) (LineItem, error) {
	li := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		li.setID(id),
		li.setItemID(itemID),
		li.setName(name),
		li.setQuantity(quantity),
		li.setPrice(price),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li LineItem) ID() kernel.UUID        { return li.id }
func (li LineItem) ItemID() kernel.UUID    { return li.itemID }
func (li LineItem) Name() string           { return li.name }
func (li LineItem) Quantity() int          { return li.quantity }
func (li LineItem) Price() decimal.Decimal { return li.price }

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	li.itemID = itemID
	return nil
}

func (li *LineItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	li.price = price
	return nil
}
