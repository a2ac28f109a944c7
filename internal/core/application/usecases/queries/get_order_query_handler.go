package queries

import (
	"context"

	"marketplace/internal/core/application/usecases/actors"
	"marketplace/internal/core/domain/model/order"
)

// GetOrderQueryHandler reads an order and decides how much of it the actor
// may see. Participants and administrators get the full record; any other
// user may read a Prepared order, redacted; everything else is forbidden.
type GetOrderQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderQueryHandler(uowFactory ReadUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := actors.Load(ctx, uow.UserRepository(), query.ActorID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	ownerID, err := actors.ShopOwner(ctx, uow.ShopRepository(), o.ShopID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	visibility, err := o.VisibilityFor(o.RelationOf(actor.ID(), ownerID, actor.IsAdmin()))
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:    o,
		Redacted: visibility == order.VisibilityRedacted,
	}, nil
}
