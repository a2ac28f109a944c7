package orderrepo_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var createdAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func address(t *testing.T, lat, lon float64, contact string) kernel.Address {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	a, err := kernel.NewAddress(p, "Zhejiang", "Hangzhou", "Xihu", "Lingyin", "18 Tea Garden Rd", contact, "0571-1234")
	require.NoError(t, err)
	return a
}

// newOrder builds an Unpaid order: two noodles at 12.50 and one tea at 4.00
// plus a 2.00 fee, 31.00 in total.
func newOrder(t *testing.T, customerID, shopID kernel.UUID, at time.Time) *order.Order {
	t.Helper()
	noodles, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Pian'erchuan noodles", 2, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	tea, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Longjing tea", 1, decimal.RequireFromString("4.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, shopID, decimal.RequireFromString("2.00"), "no cilantro",
		address(t, 30.25, 120.15, "West Lake Noodles"), address(t, 30.27, 120.16, "Chen Jing"),
		[]order.LineItem{noodles, tea}, at)
	require.NoError(t, err)
	return o
}
