package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxNoteLength bounds the customer's free-text note, in characters.
const MaxNoteLength = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrTransitionNotAllowed = errs.NewForbiddenError("status transition is not allowed")
	ErrOrderNotClaimable    = errs.NewForbiddenError("only prepared orders can be claimed by a rider")
	ErrOrderNotDeletable    = errs.NewForbiddenError("only the customer can delete a canceled order")
	ErrOrderNotVisible      = errs.NewForbiddenError("order is not visible to this actor")
)

// Timestamps are the lifecycle instants of an order. A nil field means the
// corresponding transition has not fired yet.
type Timestamps struct {
	PaidAt      *time.Time
	PreparedAt  *time.Time
	DeliveredAt *time.Time
	FinishedAt  *time.Time
	CanceledAt  *time.Time
}

// Order is the aggregate root of a purchase.
//
// Order follows these invariants:
//   - Parties, money, note, addresses and line items never change after creation
//   - total = deliveryFee + Σ line item price
//   - Only status, rider and the lifecycle timestamps are mutated
//   - Each lifecycle timestamp is set once, by the first transition that stamps it
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	shopID     kernel.UUID
	riderID    *kernel.UUID

	status     Status
	createdAt  time.Time
	timestamps Timestamps

	deliveryFee decimal.Decimal
	total       decimal.Decimal
	note        string

	shopAddress     kernel.Address
	customerAddress kernel.Address
	items           []LineItem

	// deliveryPosition is the live rider coordinate, maintained outside this service.
	deliveryPosition *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewOrder creates an Unpaid order from frozen line items. The total is derived,
// never supplied.
func NewOrder(
	id, customerID, shopID kernel.UUID,
	deliveryFee decimal.Decimal,
	note string,
	shopAddress, customerAddress kernel.Address,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Unpaid,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(customerID, shopID),
		o.setDeliveryFee(deliveryFee),
		o.setNote(note),
		o.setAddresses(shopAddress, customerAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = o.deliveryFee.Add(o.Subtotal())
	return o, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	ShopID           kernel.UUID
	RiderID          *kernel.UUID
	Status           Status
	CreatedAt        time.Time
	Timestamps       Timestamps
	DeliveryFee      decimal.Decimal
	Total            decimal.Decimal
	Note             string
	ShopAddress      kernel.Address
	CustomerAddress  kernel.Address
	Items            []LineItem
	DeliveryPosition *kernel.GeoPoint
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is kept
// as is; it was derived when the order was created.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		riderID:          p.RiderID,
		createdAt:        p.CreatedAt,
		timestamps:       p.Timestamps,
		total:            p.Total,
		deliveryPosition: p.DeliveryPosition,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setParties(p.CustomerID, p.ShopID),
		o.setStatus(p.Status),
		o.setDeliveryFee(p.DeliveryFee),
		o.setNote(p.Note),
		o.setAddresses(p.ShopAddress, p.CustomerAddress),
		o.setItems(p.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                    { return o.id }
func (o *Order) CustomerID() kernel.UUID            { return o.customerID }
func (o *Order) ShopID() kernel.UUID                { return o.shopID }
func (o *Order) Status() Status                     { return o.status }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) Timestamps() Timestamps             { return o.timestamps }
func (o *Order) DeliveryFee() decimal.Decimal       { return o.deliveryFee }
func (o *Order) Total() decimal.Decimal             { return o.total }
func (o *Order) Note() string                       { return o.note }
func (o *Order) ShopAddress() kernel.Address        { return o.shopAddress }
func (o *Order) CustomerAddress() kernel.Address    { return o.customerAddress }
func (o *Order) DeliveryPosition() *kernel.GeoPoint { return o.deliveryPosition }

// Rider returns the assigned rider, or nil before the order is claimed.
func (o *Order) Rider() *kernel.UUID {
	return o.riderID
}

// Items returns a copy of the frozen line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Subtotal is the sum of the line item prices.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range o.items {
		sum = sum.Add(li.Price())
	}
	return sum
}

// RelationOf computes how actorID relates to this order. shopOwnerID is the
// current owner of the order's shop.
func (o *Order) RelationOf(actorID, shopOwnerID kernel.UUID, isAdmin bool) Relation {
	rel := RelationNone
	if o.customerID.IsEqual(actorID) {
		rel |= RelationCustomer
	}
	if shopOwnerID.IsEqual(actorID) {
		rel |= RelationShopOwner
	}
	if o.riderID != nil && o.riderID.IsEqual(actorID) {
		rel |= RelationRider
	}
	if isAdmin {
		rel |= RelationAdmin
	}
	return rel
}

// ChangeStatus applies a modeled transition for an actor holding relations.
// Anything not in the transition table, including moving backwards or staying
// put, is rejected with ErrTransitionNotAllowed.
func (o *Order) ChangeStatus(relations Relation, to Status, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	stamp, ok := LookupTransition(relations, o.status, to)
	if !ok {
		return errs.NewForbiddenErrorWithCause(ErrTransitionNotAllowed.Reason,
			fmt.Errorf("%s cannot move order from %s to %s", relations, o.status, to))
	}

	o.status = to
	o.stamp(stamp, at)
	return nil
}

// Override sets the status directly, skipping the transition table and leaving
// every timestamp untouched. It is the operational escape hatch for platform
// administrators and must not be reachable by anyone else.
func (o *Order) Override(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	o.status = to
	return nil
}

// ClaimBy assigns riderID to a Prepared order and starts delivery.
func (o *Order) ClaimBy(riderID kernel.UUID, at time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.status != Prepared {
		return errs.NewForbiddenErrorWithCause(ErrOrderNotClaimable.Reason,
			fmt.Errorf("order is %s", o.status))
	}

	o.riderID = &riderID
	o.status = Delivering
	o.stamp(StampDeliveredAt, at)
	return nil
}

// EnsureDeletableBy allows deletion only of a canceled order by its own customer.
func (o *Order) EnsureDeletableBy(actorID kernel.UUID) error {
	if o.status != Canceled || !o.customerID.IsEqual(actorID) {
		return ErrOrderNotDeletable
	}
	return nil
}

func (o *Order) stamp(stamp Stamp, at time.Time) {
	set := func(field **time.Time) {
		if *field == nil {
			t := at
			*field = &t
		}
	}

	switch stamp {
	case StampPaidAt:
		set(&o.timestamps.PaidAt)
	case StampPreparedAt:
		set(&o.timestamps.PreparedAt)
	case StampDeliveredAt:
		set(&o.timestamps.DeliveredAt)
	case StampFinishedAt:
		set(&o.timestamps.FinishedAt)
	case StampCanceledAt:
		set(&o.timestamps.CanceledAt)
	case StampNone:
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(customerID, shopID kernel.UUID) error {
	if err := errors.Join(customerID.Validate(), shopID.Validate()); err != nil {
		return err
	}
	o.customerID = customerID
	o.shopID = shopID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee", fmt.Errorf("%s is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setNote(note string) error {
	if n := utf8.RuneCountInString(note); n > MaxNoteLength {
		return errs.NewValueIsOutOfRangeError("note length", n, 0, MaxNoteLength)
	}
	o.note = note
	return nil
}

func (o *Order) setAddresses(shopAddress, customerAddress kernel.Address) error {
	if err := errors.Join(shopAddress.Validate(), customerAddress.Validate()); err != nil {
		return err
	}
	o.shopAddress = shopAddress
	o.customerAddress = customerAddress
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
