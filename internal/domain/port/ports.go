package port

import (
	"context"
	"errors"
	"time"

	"github.com/dmjfallon/cascade-beta/internal/domain/event"
	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

// ErrScenarioNotFound is returned when no scenario exists for the given ID.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioRepository persists shareable comparison scenarios.
type ScenarioRepository interface {
	Save(ctx context.Context, scenario model.Scenario) error
	FindByID(ctx context.Context, id string) (model.Scenario, error)
}

// ResultCache stores serialized comparison results keyed by a deterministic
// hash of the request. A miss returns ok=false, never an error: the cache
// is an optimization, not a source of truth.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// EventPublisher emits domain events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
