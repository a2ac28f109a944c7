package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// EventType names what happened to an order.
type EventType string

const (
	EventCreated       EventType = "order.created"
	EventStatusChanged EventType = "order.status_changed"
	EventRiderClaimed  EventType = "order.rider_claimed"
	EventDeleted       EventType = "order.deleted"
)

// Event is an order change recorded in the same transaction as the change
// itself and relayed to subscribers afterwards.
type Event struct {
	ID         int64
	OrderID    kernel.UUID
	Type       EventType
	Status     Status
	From       Status
	ActorID    kernel.UUID
	RiderID    *kernel.UUID
	Total      string
	OccurredAt time.Time
}

// NewEvent snapshots o after a change made by actorID. from is the status
// before the change; for creation it equals the current status.
func NewEvent(o *Order, typ EventType, from Status, actorID kernel.UUID, at time.Time) Event {
	return Event{
		OrderID:    o.id,
		Type:       typ,
		Status:     o.status,
		From:       from,
		ActorID:    actorID,
		RiderID:    o.riderID,
		Total:      o.total.String(),
		OccurredAt: at,
	}
}
