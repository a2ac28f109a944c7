// Package cart is the order engine's view of a customer's cart for one shop.
// Each Line joins a cart entry with the live state of its catalog item.
package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrLineIsNotConstructed = errors.New("cart Line must be created via NewLine constructor")

	ErrCartIsEmpty      = errs.NewValueIsRequiredError("cart")
	ErrItemNotAvailable = errs.NewForbiddenError("item is not available")
	ErrItemIsOutOfStock = errs.NewForbiddenError("item is out of stock")
)

// Line is one cart entry with the catalog item's current price and flags.
type Line struct {
	id        kernel.UUID
	itemID    kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
	available bool
	stockout  bool
	guard     guard.ConstructorGuard
}

// NewLine builds a line from the cart entry id and its catalog item.
func NewLine(id, itemID kernel.UUID, name string, quantity int, unitPrice decimal.Decimal, available, stockout bool) (Line, error) {
	var err error
	if vErr := errors.Join(id.Validate(), itemID.Validate()); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if unitPrice.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice)))
	}
	if err != nil {
		return Line{}, err
	}

	return Line{
		id:        id,
		itemID:    itemID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		available: available,
		stockout:  stockout,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ID() kernel.UUID            { return l.id }
func (l Line) ItemID() kernel.UUID        { return l.itemID }
func (l Line) Name() string               { return l.name }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l Line) IsAvailable() bool          { return l.available }
func (l Line) IsStockout() bool           { return l.stockout }

// Total is unitPrice × quantity.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// EnsureOrderable rejects lines whose item is unavailable or out of stock.
func (l Line) EnsureOrderable() error {
	if !l.available {
		return errs.NewForbiddenErrorWithCause(ErrItemNotAvailable.Reason, fmt.Errorf("item %s", l.itemID))
	}
	if l.stockout {
		return errs.NewForbiddenErrorWithCause(ErrItemIsOutOfStock.Reason, fmt.Errorf("item %s", l.itemID))
	}
	return nil
}

// IDs returns the cart entry ids of lines in order.
func IDs(lines []Line) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.id)
	}
	return ids
}

// Subtotal sums Total over lines.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
