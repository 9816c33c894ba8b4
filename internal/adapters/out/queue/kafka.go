// Package queue provides the Kafka-backed order event publisher. Order
// creation and status changes are announced on one topic, keyed by order
// id so events for the same order stay ordered within a partition.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"entregaloya/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// KafkaOrderEventPublisher writes order events as JSON messages.
type KafkaOrderEventPublisher struct {
	writer *kafka.Writer
}

// NewKafkaOrderEventPublisher creates a publisher for the given brokers
// and topic.
func NewKafkaOrderEventPublisher(brokers []string, topic string) *KafkaOrderEventPublisher {
	return &KafkaOrderEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish writes the event. The caller treats failures as best-effort;
// this method only reports them.
func (p *KafkaOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write order event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaOrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopOrderEventPublisher discards events. Wired when no broker is
// configured so handlers never need nil checks at the call sites that
// construct them.
type NoopOrderEventPublisher struct{}

// NewNoopOrderEventPublisher creates a publisher that discards events.
func NewNoopOrderEventPublisher() NoopOrderEventPublisher {
	return NoopOrderEventPublisher{}
}

// Publish discards the event.
func (NoopOrderEventPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}
