package shop

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")

	ErrShopIsClosed = errs.NewForbiddenError("shop is not open")
)

// Delivery holds the shop's delivery terms.
type Delivery struct {
	Fee           decimal.Decimal
	Threshold     decimal.Decimal
	MaxDistanceKm float64
}

// Shop is the order engine's read model of a catalog shop.
type Shop struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	name     string
	verified bool
	opened   bool
	hours    OpeningHours
	delivery Delivery
	address  kernel.Address
	guard    guard.ConstructorGuard
}

func NewShop(
	id, ownerID kernel.UUID,
	name string,
	verified, opened bool,
	hours OpeningHours,
	delivery Delivery,
	address kernel.Address,
) (*Shop, error) {
	s := &Shop{
		name:     name,
		verified: verified,
		opened:   opened,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		hours.Validate(),
		address.Validate(),
		s.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.ownerID = ownerID
	s.hours = hours
	s.address = address
	return s, nil
}

func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

func (s *Shop) ID() kernel.UUID         { return s.id }
func (s *Shop) OwnerID() kernel.UUID    { return s.ownerID }
func (s *Shop) Name() string            { return s.name }
func (s *Shop) IsVerified() bool        { return s.verified }
func (s *Shop) IsOpened() bool          { return s.opened }
func (s *Shop) Hours() OpeningHours     { return s.hours }
func (s *Shop) Delivery() Delivery      { return s.delivery }
func (s *Shop) Address() kernel.Address { return s.address }

// IsOwnedBy reports whether actorID owns the shop.
func (s *Shop) IsOwnedBy(actorID kernel.UUID) bool {
	return s.ownerID.IsEqual(actorID)
}

// IsOpenAt reports whether the shop accepts orders at minute of day. Both the
// opened flag and the opening window must agree.
func (s *Shop) IsOpenAt(minute int) bool {
	return s.opened && s.hours.Contains(minute)
}

// EnsureOpenAt returns ErrShopIsClosed unless IsOpenAt(minute).
func (s *Shop) EnsureOpenAt(minute int) error {
	if !s.IsOpenAt(minute) {
		return errs.NewForbiddenErrorWithCause(ErrShopIsClosed.Reason,
			fmt.Errorf("minute %d outside %d-%d (opened=%t)", minute, s.hours.start, s.hours.end, s.opened))
	}
	return nil
}

func (s *Shop) setDelivery(d Delivery) error {
	var err error
	if d.Fee.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%s is negative", d.Fee)))
	}
	if d.Threshold.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("delivery threshold", fmt.Errorf("%s is negative", d.Threshold)))
	}
	if d.MaxDistanceKm < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("maximum distance", fmt.Errorf("%g is negative", d.MaxDistanceKm)))
	}
	if err != nil {
		return err
	}
	s.delivery = d
	return nil
}
