package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListScope selects whose orders are listed.
type ListScope int

const (
	// ScopeAll lists every order; administrators only.
	ScopeAll ListScope = iota + 1
	// ScopeCustomer lists orders the actor placed.
	ScopeCustomer
	// ScopeShop lists orders of one shop; its owner or administrators only.
	ScopeShop
	// ScopeRider lists orders the actor claimed as rider.
	ScopeRider
)

func (s ListScope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeCustomer:
		return "customer"
	case ScopeShop:
		return "shop"
	case ScopeRider:
		return "rider"
	default:
		return "unknown"
	}
}

// ListOrdersQuery pages through orders visible under a scope, newest first.
type ListOrdersQuery struct {
	actorID  kernel.UUID
	scope    ListScope
	shopID   kernel.UUID
	page     int
	pageSize int
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds a listing. shopID is required for ScopeShop and
// ignored otherwise. Zero page or pageSize take the defaults.
func NewListOrdersQuery(
	actorID kernel.UUID,
	scope ListScope,
	shopID kernel.UUID,
	page, pageSize int,
	status *order.Status,
) (ListOrdersQuery, error) {
	if page == 0 {
		page = DefaultPage
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	var errList []error
	errList = append(errList, actorID.Validate())
	if scope < ScopeAll || scope > ScopeRider {
		errList = append(errList, errs.NewValueIsOutOfRangeError("scope", int(scope), int(ScopeAll), int(ScopeRider)))
	}
	if scope == ScopeShop {
		errList = append(errList, shopID.Validate())
	}
	if page < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded"))
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page size", pageSize, 1, MaxPageSize))
	}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID:  actorID,
		scope:    scope,
		shopID:   shopID,
		page:     page,
		pageSize: pageSize,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ActorID() kernel.UUID  { return q.actorID }
func (q ListOrdersQuery) Scope() ListScope      { return q.scope }
func (q ListOrdersQuery) ShopID() kernel.UUID   { return q.shopID }
func (q ListOrdersQuery) Page() int             { return q.page }
func (q ListOrdersQuery) PageSize() int         { return q.pageSize }
func (q ListOrdersQuery) Status() *order.Status { return q.status }
