package queries

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var (
	ErrListAllRequiresAdmin = errs.NewForbiddenError("listing every order requires an administrator")
	ErrListShopNotOwned     = errs.NewForbiddenError("listing a shop's orders requires its owner")
)

// ListOrdersQueryHandler returns full order records for one listing scope.
type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := actors.Load(ctx, uow.UserRepository(), query.ActorID())
	if err != nil {
		return nil, err
	}

	filter := ports.OrderListFilter{
		Status:   query.Status(),
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}

	switch query.Scope() {
	case ScopeAll:
		if !actor.IsAdmin() {
			return nil, ErrListAllRequiresAdmin
		}
	case ScopeCustomer:
		id := actor.ID()
		filter.CustomerID = &id
	case ScopeRider:
		id := actor.ID()
		filter.RiderID = &id
	case ScopeShop:
		s, err := uow.ShopRepository().Get(ctx, query.ShopID())
		if err != nil {
			return nil, err
		}
		if !s.IsOwnedBy(actor.ID()) && !actor.IsAdmin() {
			return nil, ErrListShopNotOwned
		}
		id := s.ID()
		filter.ShopID = &id
	}

	return uow.OrderRepository().List(ctx, filter)
}
