package memory

import (
	"context"
	"sync"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
)

// ScenarioRepo is an in-memory port.ScenarioRepository. It backs local
// development and the CLI, where running PostgreSQL would be overkill.
type ScenarioRepo struct {
	mu        sync.RWMutex
	scenarios map[string]model.Scenario
}

func NewScenarioRepo() *ScenarioRepo {
	return &ScenarioRepo{scenarios: make(map[string]model.Scenario)}
}

func (r *ScenarioRepo) Save(_ context.Context, sc model.Scenario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[sc.ID] = sc
	return nil
}

func (r *ScenarioRepo) FindByID(_ context.Context, id string) (model.Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sc, ok := r.scenarios[id]
	if !ok {
		return model.Scenario{}, port.ErrScenarioNotFound
	}
	return sc, nil
}
