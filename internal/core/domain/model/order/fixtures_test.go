package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testAddress(t *testing.T, lat, lon float64, contact string) kernel.Address {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	addr, err := kernel.NewAddress(point, "Zhejiang", "Hangzhou", "Xihu", "Lingyin", "1 Tea Road", contact, "13900000000")
	require.NoError(t, err)
	return addr
}

func testLineItem(t *testing.T, name string, qty int, unitPrice string) order.LineItem {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), name, qty, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return li
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.RequireFromString("5"),
		"no cilantro",
		testAddress(t, 30.25, 120.15, "Tea House"),
		testAddress(t, 30.26, 120.16, "Han Meimei"),
		[]order.LineItem{
			testLineItem(t, "Longjing tea", 2, "18.50"),
			testLineItem(t, "Osmanthus cake", 3, "6"),
		},
		createdAt,
	)
	require.NoError(t, err)
	return o
}

// orderIn walks a fresh order to status through modeled transitions.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	at := createdAt.Add(time.Minute)
	switch status {
	case order.Unpaid:
	case order.Canceled:
		require.NoError(t, o.ChangeStatus(order.RelationCustomer, order.Canceled, at))
	default:
		path := []order.Status{order.Preparing, order.Prepared, order.Delivering, order.Finished}
		for _, next := range path {
			switch next {
			case order.Preparing:
				require.NoError(t, o.ChangeStatus(order.RelationCustomer, next, at))
			case order.Prepared:
				require.NoError(t, o.ChangeStatus(order.RelationShopOwner, next, at))
			case order.Delivering:
				require.NoError(t, o.ClaimBy(kernel.NewUUID(), at))
			case order.Finished:
				require.NoError(t, o.ChangeStatus(order.RelationRider, next, at))
			}
			if next == status {
				break
			}
		}
	}
	require.Equal(t, status, o.Status())
	return o
}
