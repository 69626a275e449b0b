package cache

import (
	"context"
	"time"
)

// NoopCache satisfies port.ResultCache when no Redis address is configured.
// Every lookup misses and every write is discarded.
type NoopCache struct{}

func NewNoopCache() NoopCache { return NoopCache{} }

func (NoopCache) Get(context.Context, string) (string, bool) { return "", false }

func (NoopCache) Set(context.Context, string, string, time.Duration) error { return nil }
