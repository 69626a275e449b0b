package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// ErrEmptyScenarioName is returned when a scenario is saved without a name.
var ErrEmptyScenarioName = errors.New("scenario name must not be empty")

// SaveScenarioUseCase persists a named set of comparison inputs under a
// generated identifier so it can be shared and replayed.
type SaveScenarioUseCase struct {
	scenarios port.ScenarioRepository
}

// NewSaveScenarioUseCase wires dependencies.
func NewSaveScenarioUseCase(scenarios port.ScenarioRepository) *SaveScenarioUseCase {
	return &SaveScenarioUseCase{scenarios: scenarios}
}

// Execute validates and stores the scenario. Inputs are stored raw; the
// normalizer runs when the scenario is replayed.
func (uc *SaveScenarioUseCase) Execute(
	ctx context.Context,
	req dto.SaveScenarioRequest,
) (dto.SaveScenarioResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.SaveScenarioResponse{}, ErrEmptyScenarioName
	}

	strategy, err := valueobject.NewStrategy(req.Compare.Strategy)
	if err != nil {
		return dto.SaveScenarioResponse{}, fmt.Errorf("parse strategy: %w", err)
	}
	redirectScheduled, redirectExtra := req.Compare.Redirects()

	scenario := model.Scenario{
		ID:                uuid.NewString(),
		Name:              name,
		LoanA:             req.Compare.LoanA,
		LoanB:             req.Compare.LoanB,
		ExtraA:            req.Compare.ExtraA,
		ExtraB:            req.Compare.ExtraB,
		RedirectScheduled: redirectScheduled,
		RedirectExtra:     redirectExtra,
		Strategy:          strategy.String(),
		CreatedAt:         time.Now().UTC(),
	}

	if err := uc.scenarios.Save(ctx, scenario); err != nil {
		return dto.SaveScenarioResponse{}, fmt.Errorf("save scenario: %w", err)
	}

	return dto.SaveScenarioResponse{
		ScenarioID: scenario.ID,
		CreatedAt:  scenario.CreatedAt,
	}, nil
}
