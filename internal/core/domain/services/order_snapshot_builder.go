package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"
)

var (
	ErrBelowDeliveryThreshold = errs.NewForbiddenError("order subtotal is below the delivery threshold")
	ErrOutOfDeliveryRange     = errs.NewForbiddenError("address is out of the shop's delivery range")
)

// SnapshotRequest is everything needed to freeze a cart into an order.
type SnapshotRequest struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	Shop       *shop.Shop
	Lines      []cart.Line
	Address    kernel.Address
	Note       string
	Now        time.Time
}

// OrderSnapshotBuilder turns a shop, a cart and an address into an order.
//
// The checks are split so a handler can run them in the order the data
// becomes available inside its transaction:
//
//	ValidateShop  -> shop verified (404) and open now (403)
//	ValidateCart  -> cart non-empty (400), every item orderable (403), threshold reached (403)
//	Build         -> address within delivery range (403), then compose the order
//
// Build does not repeat ValidateShop or ValidateCart.
type OrderSnapshotBuilder struct{}

func NewOrderSnapshotBuilder() OrderSnapshotBuilder {
	return OrderSnapshotBuilder{}
}

// ValidateShop rejects unverified shops as missing and closed shops as
// forbidden. now must already be in the reference time zone.
func (OrderSnapshotBuilder) ValidateShop(s *shop.Shop, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.IsVerified() {
		return errs.NewObjectNotFoundError("shop", s.ID().String())
	}
	return s.EnsureOpenAt(shop.MinuteOfDay(now))
}

// ValidateCart checks the customer's cart lines for s.
func (OrderSnapshotBuilder) ValidateCart(s *shop.Shop, lines []cart.Line) error {
	if len(lines) == 0 {
		return cart.ErrCartIsEmpty
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if err := l.EnsureOrderable(); err != nil {
			return err
		}
	}

	subtotal := cart.Subtotal(lines)
	if threshold := s.Delivery().Threshold; subtotal.LessThan(threshold) {
		return errs.NewForbiddenErrorWithCause(ErrBelowDeliveryThreshold.Reason,
			fmt.Errorf("subtotal %s, threshold %s", subtotal, threshold))
	}
	return nil
}

// Build checks the delivery distance and freezes the request into an Unpaid
// order. Prices, names and both addresses are copied by value.
func (OrderSnapshotBuilder) Build(req SnapshotRequest) (*order.Order, error) {
	if err := errors.Join(req.Shop.Validate(), req.Address.Validate()); err != nil {
		return nil, err
	}

	shopAddress := req.Shop.Address()
	distance, err := shopAddress.Point().DistanceKm(req.Address.Point())
	if err != nil {
		return nil, err
	}
	if maxKm := req.Shop.Delivery().MaxDistanceKm; distance > maxKm {
		return nil, errs.NewForbiddenErrorWithCause(ErrOutOfDeliveryRange.Reason,
			fmt.Errorf("%.3f km, maximum %.3f km", distance, maxKm))
	}

	items := make([]order.LineItem, 0, len(req.Lines))
	for _, l := range req.Lines {
		li, err := order.NewLineItem(kernel.NewUUID(), l.ItemID(), l.Name(), l.Quantity(), l.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	return order.NewOrder(
		req.OrderID,
		req.CustomerID,
		req.Shop.ID(),
		req.Shop.Delivery().Fee,
		req.Note,
		shopAddress,
		req.Address,
		items,
		req.Now,
	)
}
