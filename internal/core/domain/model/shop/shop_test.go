package shop_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	point, err := kernel.NewGeoPoint(31.23, 121.47)
	require.NoError(t, err)
	addr, err := kernel.NewAddress(point, "Shanghai", "Shanghai", "Huangpu", "Nanjing Road", "100 Bund", "Night Noodles", "021-5555")
	require.NoError(t, err)
	return addr
}

func newShop(t *testing.T, opened bool, start, end int) *shop.Shop {
	t.Helper()
	hours, err := shop.NewOpeningHours(start, end)
	require.NoError(t, err)
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), "Night Noodles", true, opened, hours,
		shop.Delivery{Fee: decimal.NewFromInt(5), Threshold: decimal.NewFromInt(60), MaxDistanceKm: 5},
		testAddress(t))
	require.NoError(t, err)
	return s
}

func TestShop_EnsureOpenAt(t *testing.T) {
	t.Run("overnight shop accepts orders at 01:00", func(t *testing.T) {
		s := newShop(t, true, 1320, 120)

		assert.NoError(t, s.EnsureOpenAt(60))
	})

	t.Run("overnight shop rejects orders at 10:00", func(t *testing.T) {
		s := newShop(t, true, 1320, 120)

		err := s.EnsureOpenAt(600)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "shop is not open")
	})

	t.Run("closed flag wins over window", func(t *testing.T) {
		s := newShop(t, false, 0, 1440)

		assert.False(t, s.IsOpenAt(600))
		assert.ErrorIs(t, s.EnsureOpenAt(600), errs.ErrForbidden)
	})
}

func TestNewShop(t *testing.T) {
	hours, err := shop.NewOpeningHours(540, 1260)
	require.NoError(t, err)
	owner := kernel.NewUUID()

	t.Run("valid shop", func(t *testing.T) {
		s, err := shop.NewShop(kernel.NewUUID(), owner, "Tea House", true, true, hours,
			shop.Delivery{Fee: decimal.NewFromInt(3), Threshold: decimal.Zero, MaxDistanceKm: 2.5}, testAddress(t))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.IsOwnedBy(owner))
		assert.False(t, s.IsOwnedBy(kernel.NewUUID()))
		assert.True(t, s.IsVerified())
		assert.InDelta(t, 2.5, s.Delivery().MaxDistanceKm, 1e-9)
	})

	t.Run("negative delivery terms are rejected together", func(t *testing.T) {
		_, err := shop.NewShop(kernel.NewUUID(), owner, "Tea House", true, true, hours,
			shop.Delivery{Fee: decimal.NewFromInt(-1), Threshold: decimal.NewFromInt(-1), MaxDistanceKm: -1}, testAddress(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "delivery fee")
		assert.Contains(t, err.Error(), "delivery threshold")
		assert.Contains(t, err.Error(), "maximum distance")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s *shop.Shop
		assert.ErrorIs(t, s.Validate(), shop.ErrShopIsNotConstructed)
		assert.ErrorIs(t, (&shop.Shop{}).Validate(), shop.ErrShopIsNotConstructed)
	})
}
