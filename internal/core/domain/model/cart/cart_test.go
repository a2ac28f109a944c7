package cart_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(t *testing.T, qty int, price string, available, stockout bool) cart.Line {
	t.Helper()
	l, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Dumplings", qty, decimal.RequireFromString(price), available, stockout)
	require.NoError(t, err)
	return l
}

func TestLine_Total(t *testing.T) {
	l := line(t, 3, "12.30", true, false)

	assert.True(t, decimal.RequireFromString("36.90").Equal(l.Total()))
}

func TestSubtotal(t *testing.T) {
	lines := []cart.Line{
		line(t, 2, "10", true, false),
		line(t, 1, "30", true, false),
	}

	assert.True(t, decimal.NewFromInt(50).Equal(cart.Subtotal(lines)))
	assert.True(t, decimal.Zero.Equal(cart.Subtotal(nil)))
}

func TestLine_EnsureOrderable(t *testing.T) {
	assert.NoError(t, line(t, 1, "1", true, false).EnsureOrderable())

	err := line(t, 1, "1", false, false).EnsureOrderable()
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), "not available")

	err = line(t, 1, "1", true, true).EnsureOrderable()
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), "out of stock")
}

func TestIDs(t *testing.T) {
	a := line(t, 1, "1", true, false)
	b := line(t, 2, "1", true, false)

	ids := cart.IDs([]cart.Line{a, b})

	require.Len(t, ids, 2)
	assert.True(t, a.ID().IsEqual(ids[0]))
	assert.True(t, b.ID().IsEqual(ids[1]))
	assert.Empty(t, cart.IDs(nil))
}

func TestNewLine_Invalid(t *testing.T) {
	_, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Dumplings", 0, decimal.NewFromInt(-1), true, false)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "quantity")
	assert.Contains(t, err.Error(), "unit price")
	assert.Error(t, cart.Line{}.Validate())
}

func TestNewLine_RequiresIDs(t *testing.T) {
	_, err := cart.NewLine(kernel.UUID{}, kernel.UUID{}, "Dumplings", 1, decimal.NewFromInt(1), true, false)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
