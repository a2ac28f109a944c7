// Package kafka publishes order events to a Kafka topic as JSON, keyed by
// order id so every event of one order lands on the same partition.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewWriter returns a writer that hashes message keys to partitions and waits
// for the leader's acknowledgement.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher implements ports.EventPublisher.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// OrderChangedMessage is the JSON value of a published event.
type OrderChangedMessage struct {
	EventID    int64     `json:"eventId"`
	OrderID    string    `json:"orderId"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	From       string    `json:"from"`
	ActorID    string    `json:"actorId"`
	RiderID    *string   `json:"riderId"`
	Total      string    `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newOrderChangedMessage(e order.Event) OrderChangedMessage {
	msg := OrderChangedMessage{
		EventID:    e.ID,
		OrderID:    e.OrderID.String(),
		Type:       string(e.Type),
		Status:     e.Status.String(),
		From:       e.From.String(),
		ActorID:    e.ActorID.String(),
		Total:      e.Total,
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.RiderID != nil {
		id := e.RiderID.String()
		msg.RiderID = &id
	}
	return msg
}

// Publish writes all events in one batch. Either the whole batch is
// acknowledged or an error is returned and the caller retries it later.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(newOrderChangedMessage(e))
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
