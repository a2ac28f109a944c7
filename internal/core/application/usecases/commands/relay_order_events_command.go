package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MaxRelayBatch bounds how many events one relay run publishes.
const MaxRelayBatch = 1000

var ErrRelayOrderEventsCommandIsNotConstructed = errors.New(
	"RelayOrderEventsCommand must be created via NewRelayOrderEventsCommand constructor",
)

// RelayOrderEventsCommand publishes up to BatchSize pending order events.
type RelayOrderEventsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOrderEventsCommand(batchSize int) (RelayOrderEventsCommand, error) {
	if batchSize < 1 || batchSize > MaxRelayBatch {
		return RelayOrderEventsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, MaxRelayBatch)
	}

	return RelayOrderEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOrderEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrderEventsCommandIsNotConstructed)
}

func (c RelayOrderEventsCommand) BatchSize() int {
	return c.batchSize
}
