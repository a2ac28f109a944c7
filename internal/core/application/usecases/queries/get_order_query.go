package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of an actor.
//
// Example:
//
//	query, err := NewGetOrderQuery(actorID, orderID)
//	resp, err := handler.Handle(ctx, query)
//	if resp.Redacted {
//	    // only status, preparedAt and the two addresses may be shown
//	}
type GetOrderQuery struct {
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actorID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actorID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actorID: actorID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse carries the order and whether the reader may see only
// its redacted projection.
type GetOrderQueryResponse struct {
	Order    *order.Order
	Redacted bool
}
