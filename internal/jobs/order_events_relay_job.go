package jobs

import (
	"context"
	"log/slog"
	"sync"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OrderEventsRelayJob moves pending order events from the outbox to the
// event publisher on a cron schedule.
type OrderEventsRelayJob struct {
	handler  relayHandler
	cmd      commands.RelayOrderEventsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	// mu keeps a slow run from overlapping the next tick.
	mu sync.Mutex
}

// NewOrderEventsRelayJob creates the relay job. batchSize bounds one relay
// round; a full round is followed immediately by another.
func NewOrderEventsRelayJob(
	handler relayHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) (*OrderEventsRelayJob, error) {
	cmd, err := commands.NewRelayOrderEventsCommand(batchSize)
	if err != nil {
		return nil, err
	}

	return &OrderEventsRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_events_relay_job"),
	}, nil
}

func (j *OrderEventsRelayJob) Name() string {
	return "order events relay"
}

// Start registers the job with its schedule and starts the scheduler.
func (j *OrderEventsRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order events relay job started", "schedule", j.schedule)
	return nil
}

// Run relays until the outbox is drained or a round fails, and returns how
// many events were published.
func (j *OrderEventsRelayJob) Run(ctx context.Context) int {
	if !j.mu.TryLock() {
		return 0
	}
	defer j.mu.Unlock()

	total := 0
	for ctx.Err() == nil {
		n, err := j.handler.Handle(ctx, j.cmd)
		total += n
		if err != nil {
			j.logger.ErrorContext(ctx, "Order events relay failed", "error", err, "published", total)
			break
		}
		if n < j.cmd.BatchSize() {
			break
		}
	}

	if total > 0 {
		j.logger.DebugContext(ctx, "Order events relayed", "count", total)
	}
	return total
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OrderEventsRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order events relay job stopped")
}
