package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OutboxRepository stores order events until they are relayed.
type OutboxRepository interface {
	Add(ctx context.Context, event order.Event) error

	// FetchPending returns up to limit unsent events in insertion order.
	FetchPending(ctx context.Context, limit int) ([]order.Event, error)

	MarkSent(ctx context.Context, ids []int64, at time.Time) error
}

// EventPublisher delivers order events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
