package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/dmjfallon/cascade-beta/internal/domain/event"
	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
)

type mockScenarioRepository struct {
	mu        sync.Mutex
	saved     []model.Scenario
	saveFunc  func(ctx context.Context, s model.Scenario) error
	findFunc  func(ctx context.Context, id string) (model.Scenario, error)
}

func (m *mockScenarioRepository) Save(ctx context.Context, s model.Scenario) error {
	m.mu.Lock()
	m.saved = append(m.saved, s)
	m.mu.Unlock()
	if m.saveFunc != nil {
		return m.saveFunc(ctx, s)
	}
	return nil
}

func (m *mockScenarioRepository) FindByID(ctx context.Context, id string) (model.Scenario, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.saved {
		if s.ID == id {
			return s, nil
		}
	}
	return model.Scenario{}, port.ErrScenarioNotFound
}

type mockResultCache struct {
	mu      sync.Mutex
	entries map[string]string
	setErr  error
	gets    int
	hits    int
}

func newMockResultCache() *mockResultCache {
	return &mockResultCache{entries: map[string]string{}}
}

func (m *mockResultCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return v, ok
}

func (m *mockResultCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

type mockEventPublisher struct {
	mu          sync.Mutex
	published   []event.DomainEvent
	publishFunc func(ctx context.Context, evts ...event.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	m.mu.Lock()
	m.published = append(m.published, evts...)
	m.mu.Unlock()
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	return nil
}
