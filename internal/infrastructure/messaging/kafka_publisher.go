package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/dmjfallon/cascade-beta/internal/domain/event"
)

// messageWriter is the slice of kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaEventPublisher implements port.EventPublisher by writing events to a
// single Kafka topic.
type KafkaEventPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given brokers and
// topic.
func NewKafkaEventPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaEventPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireAll,
	}
	return &KafkaEventPublisher{writer: w, topic: topic, logger: logger}
}

// Publish serialises and sends domain events to Kafka.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"event_id", evt.EventID(),
			"topic", p.topic,
			"payload_size", len(payload),
		)

		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.EventID()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
				{Key: "event_id", Value: []byte(evt.EventID())},
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("publish events to topic %s: %w", p.topic, err)
	}
	return nil
}

// Close closes the underlying writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}
