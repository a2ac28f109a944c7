package services_test

import (
	"math"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	shopLat = 30.0
	shopLon = 120.0
)

var kmPerDegree = kernel.EarthRadiusKm * math.Pi / 180

type shopOpts struct {
	verified    bool
	opened      bool
	start, end  int
	threshold   string
	maxDistance float64
}

func defaultShopOpts() shopOpts {
	return shopOpts{verified: true, opened: true, start: 0, end: 1440, threshold: "0", maxDistance: 10}
}

func address(t *testing.T, lat, lon float64, contact string) kernel.Address {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	a, err := kernel.NewAddress(p, "Zhejiang", "Hangzhou", "Xihu", "Beishan", "8 Lake Road", contact, "0571-1234")
	require.NoError(t, err)
	return a
}

func newShop(t *testing.T, o shopOpts) *shop.Shop {
	t.Helper()
	hours, err := shop.NewOpeningHours(o.start, o.end)
	require.NoError(t, err)
	s, err := shop.NewShop(kernel.NewUUID(), kernel.NewUUID(), "Lakeside Kitchen", o.verified, o.opened, hours,
		shop.Delivery{
			Fee:           decimal.RequireFromString("4.50"),
			Threshold:     decimal.RequireFromString(o.threshold),
			MaxDistanceKm: o.maxDistance,
		},
		address(t, shopLat, shopLon, "Lakeside Kitchen"))
	require.NoError(t, err)
	return s
}

func cartLine(t *testing.T, name string, qty int, price string) cart.Line {
	t.Helper()
	l, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), name, qty, decimal.RequireFromString(price), true, false)
	require.NoError(t, err)
	return l
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestOrderSnapshotBuilder_ValidateShop(t *testing.T) {
	b := services.NewOrderSnapshotBuilder()

	t.Run("unverified shop is not found", func(t *testing.T) {
		o := defaultShopOpts()
		o.verified = false

		err := b.ValidateShop(newShop(t, o), at(12, 0))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("overnight shop at 01:00 is open", func(t *testing.T) {
		o := defaultShopOpts()
		o.start, o.end = 1320, 120

		assert.NoError(t, b.ValidateShop(newShop(t, o), at(1, 0)))
	})

	t.Run("overnight shop at 10:00 is closed", func(t *testing.T) {
		o := defaultShopOpts()
		o.start, o.end = 1320, 120

		assert.ErrorIs(t, b.ValidateShop(newShop(t, o), at(10, 0)), errs.ErrForbidden)
	})

	t.Run("shop flagged closed is forbidden", func(t *testing.T) {
		o := defaultShopOpts()
		o.opened = false

		assert.ErrorIs(t, b.ValidateShop(newShop(t, o), at(12, 0)), errs.ErrForbidden)
	})

	t.Run("uses the wall clock of the given time", func(t *testing.T) {
		o := defaultShopOpts()
		o.start, o.end = 540, 1260
		s := newShop(t, o)
		// 02:00 UTC is 10:00 in UTC+8.
		now := at(2, 0)

		assert.ErrorIs(t, b.ValidateShop(s, now), errs.ErrForbidden)
		assert.NoError(t, b.ValidateShop(s, now.In(time.FixedZone("CST", 8*60*60))))
	})
}

func TestOrderSnapshotBuilder_ValidateCart(t *testing.T) {
	b := services.NewOrderSnapshotBuilder()

	t.Run("empty cart is a bad request", func(t *testing.T) {
		err := b.ValidateCart(newShop(t, defaultShopOpts()), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unavailable item is forbidden", func(t *testing.T) {
		gone, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Seasonal soup", 1, decimal.NewFromInt(9), false, false)
		require.NoError(t, err)

		err = b.ValidateCart(newShop(t, defaultShopOpts()), []cart.Line{cartLine(t, "Rice", 1, "2"), gone})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("stockout item is forbidden", func(t *testing.T) {
		soldOut, err := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Crab", 1, decimal.NewFromInt(90), true, true)
		require.NoError(t, err)

		err = b.ValidateCart(newShop(t, defaultShopOpts()), []cart.Line{soldOut})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("threshold", func(t *testing.T) {
		o := defaultShopOpts()
		o.threshold = "60"
		s := newShop(t, o)

		err := b.ValidateCart(s, []cart.Line{cartLine(t, "Noodles", 2, "20"), cartLine(t, "Tea", 1, "10")})
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "threshold")

		err = b.ValidateCart(s, []cart.Line{cartLine(t, "Noodles", 2, "20"), cartLine(t, "Tea", 2, "10")})
		assert.NoError(t, err)
	})
}

func TestOrderSnapshotBuilder_Build(t *testing.T) {
	b := services.NewOrderSnapshotBuilder()
	customerLat := shopLat + 5.2/kmPerDegree

	request := func(s *shop.Shop) services.SnapshotRequest {
		return services.SnapshotRequest{
			OrderID:    kernel.NewUUID(),
			CustomerID: kernel.NewUUID(),
			Shop:       s,
			Lines:      []cart.Line{cartLine(t, "Noodles", 2, "20"), cartLine(t, "Tea", 2, "10.25")},
			Address:    address(t, customerLat, shopLon, "Li Lei"),
			Note:       "ring twice",
			Now:        at(12, 0),
		}
	}

	t.Run("address 5.2 km away exceeds 5.0 km range", func(t *testing.T) {
		o := defaultShopOpts()
		o.maxDistance = 5.0

		got, err := b.Build(request(newShop(t, o)))

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "delivery range")
		assert.Nil(t, got)
	})

	t.Run("address 5.2 km away within 6.0 km range", func(t *testing.T) {
		o := defaultShopOpts()
		o.maxDistance = 6.0
		s := newShop(t, o)
		req := request(s)

		got, err := b.Build(req)

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(req.OrderID))
		assert.True(t, got.CustomerID().IsEqual(req.CustomerID))
		assert.True(t, got.ShopID().IsEqual(s.ID()))
		assert.Equal(t, order.Unpaid, got.Status())
		assert.Equal(t, req.Now, got.CreatedAt())
		assert.Equal(t, order.Timestamps{}, got.Timestamps())
		assert.Equal(t, "ring twice", got.Note())
		assert.Equal(t, "Lakeside Kitchen", got.ShopAddress().ContactName())
		assert.Equal(t, "Li Lei", got.CustomerAddress().ContactName())

		items := got.Items()
		require.Len(t, items, 2)
		for i, li := range items {
			line := req.Lines[i]
			assert.True(t, li.ItemID().IsEqual(line.ItemID()))
			assert.Equal(t, line.Name(), li.Name())
			assert.Equal(t, line.Quantity(), li.Quantity())
			assert.True(t, line.Total().Equal(li.Price()))
		}

		// 40 + 20.50 + 4.50
		assert.True(t, decimal.RequireFromString("4.50").Equal(got.DeliveryFee()))
		assert.True(t, decimal.RequireFromString("65").Equal(got.Total()))
	})

	t.Run("overlong note is rejected", func(t *testing.T) {
		req := request(newShop(t, defaultShopOpts()))
		req.Note = string(make([]byte, order.MaxNoteLength+1))

		_, err := b.Build(req)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
