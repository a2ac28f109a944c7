// Package outboxrepo stores order events in the order_events table within the
// transaction of the change that produced them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderEventDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Type       string     `gorm:"size:32;not null"`
	Status     string     `gorm:"size:16;not null"`
	Payload    []byte     `gorm:"type:jsonb;not null"`
	OccurredAt time.Time  `gorm:"not null"`
	SentAt     *time.Time `gorm:"index"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

// payload holds the event fields that have no column of their own.
type payload struct {
	From    string     `json:"from"`
	ActorID uuid.UUID  `json:"actorId"`
	RiderID *uuid.UUID `json:"riderId,omitempty"`
	Total   string     `json:"total"`
}

func fromDomain(e order.Event) (OrderEventDTO, error) {
	p := payload{
		From:    e.From.String(),
		ActorID: e.ActorID.Raw(),
		Total:   e.Total,
	}
	if e.RiderID != nil {
		raw := e.RiderID.Raw()
		p.RiderID = &raw
	}

	body, err := json.Marshal(p)
	if err != nil {
		return OrderEventDTO{}, err
	}

	return OrderEventDTO{
		OrderID:    e.OrderID.Raw(),
		Type:       string(e.Type),
		Status:     e.Status.String(),
		Payload:    body,
		OccurredAt: e.OccurredAt,
	}, nil
}

func toDomain(dto OrderEventDTO) (order.Event, error) {
	var p payload
	if err := json.Unmarshal(dto.Payload, &p); err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return order.Event{}, err
	}
	actorID, err := kernel.UUIDFromGoogle(p.ActorID)
	if err != nil {
		return order.Event{}, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.Event{}, err
	}
	from, err := order.ParseStatus(p.From)
	if err != nil {
		return order.Event{}, err
	}

	var riderID *kernel.UUID
	if p.RiderID != nil {
		rID, riderErr := kernel.UUIDFromGoogle(*p.RiderID)
		if riderErr != nil {
			return order.Event{}, riderErr
		}
		riderID = &rID
	}

	return order.Event{
		ID:         dto.ID,
		OrderID:    orderID,
		Type:       order.EventType(dto.Type),
		Status:     status,
		From:       from,
		ActorID:    actorID,
		RiderID:    riderID,
		Total:      p.Total,
		OccurredAt: dto.OccurredAt,
	}, nil
}
