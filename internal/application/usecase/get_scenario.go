package usecase

import (
	"context"
	"fmt"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/domain/port"
)

// GetScenarioUseCase fetches a saved scenario and replays its inputs
// through a fresh comparison run.
type GetScenarioUseCase struct {
	scenarios  port.ScenarioRepository
	comparison *RunComparisonUseCase
}

// NewGetScenarioUseCase wires dependencies.
func NewGetScenarioUseCase(scenarios port.ScenarioRepository, comparison *RunComparisonUseCase) *GetScenarioUseCase {
	return &GetScenarioUseCase{scenarios: scenarios, comparison: comparison}
}

// Execute loads the scenario and computes its comparison.
func (uc *GetScenarioUseCase) Execute(
	ctx context.Context,
	req dto.GetScenarioRequest,
) (dto.GetScenarioResponse, error) {
	scenario, err := uc.scenarios.FindByID(ctx, req.ScenarioID)
	if err != nil {
		return dto.GetScenarioResponse{}, fmt.Errorf("find scenario: %w", err)
	}

	comparison, err := uc.comparison.Execute(ctx, dto.CompareRequest{
		LoanA:             scenario.LoanA,
		LoanB:             scenario.LoanB,
		ExtraA:            scenario.ExtraA,
		ExtraB:            scenario.ExtraB,
		RedirectScheduled: &scenario.RedirectScheduled,
		RedirectExtra:     &scenario.RedirectExtra,
		Strategy:          scenario.Strategy,
	})
	if err != nil {
		return dto.GetScenarioResponse{}, fmt.Errorf("replay scenario %s: %w", scenario.ID, err)
	}

	return dto.GetScenarioResponse{
		Scenario:   scenario,
		Comparison: comparison,
	}, nil
}
