package messaging

import (
	"context"

	"github.com/dmjfallon/cascade-beta/internal/domain/event"
)

// NoopPublisher satisfies port.EventPublisher when no Kafka brokers are
// configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher { return NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, ...event.DomainEvent) error { return nil }
