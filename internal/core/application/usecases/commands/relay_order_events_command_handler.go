package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// RelayOrderEventsCommandHandler moves pending events from the outbox to the
// event publisher. Events are marked sent in the same transaction that
// selected them, after a successful publish, so a crash in between publishes
// them again on the next run.
type RelayOrderEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewRelayOrderEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) RelayOrderEventsCommandHandler {
	return RelayOrderEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle returns how many events were published.
func (h RelayOrderEventsCommandHandler) Handle(ctx context.Context, cmd RelayOrderEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	events, err := outbox.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, events...); err != nil {
		return 0, err
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	if err = outbox.MarkSent(ctx, ids, h.clock.Now()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(events), nil
}
