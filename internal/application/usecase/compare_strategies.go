package usecase

import (
	"context"
	"fmt"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// CompareStrategiesUseCase runs avalanche and snowball over the same inputs
// and reports which saves more interest.
type CompareStrategiesUseCase struct {
	engine *service.ComparisonEngine
}

// NewCompareStrategiesUseCase wires dependencies.
func NewCompareStrategiesUseCase(engine *service.ComparisonEngine) *CompareStrategiesUseCase {
	return &CompareStrategiesUseCase{engine: engine}
}

// Execute runs both strategies and assembles the head-to-head view.
func (uc *CompareStrategiesUseCase) Execute(
	ctx context.Context,
	req dto.CompareStrategiesRequest,
) (dto.CompareStrategiesResponse, error) {
	redirectScheduled, redirectExtra := dto.CompareRequest{
		RedirectScheduled: req.RedirectScheduled,
		RedirectExtra:     req.RedirectExtra,
	}.Redirects()

	run := func(strategy valueobject.Strategy) (model.ComparisonResult, error) {
		return uc.engine.Compare(service.CompareRequest{
			LoanA:             req.LoanA,
			LoanB:             req.LoanB,
			ExtraA:            req.ExtraA,
			ExtraB:            req.ExtraB,
			RedirectScheduled: redirectScheduled,
			RedirectExtra:     redirectExtra,
			Strategy:          strategy,
		})
	}

	avalanche, err := run(valueobject.StrategyAvalanche)
	if err != nil {
		return dto.CompareStrategiesResponse{}, fmt.Errorf("avalanche run: %w", err)
	}
	snowball, err := run(valueobject.StrategySnowball)
	if err != nil {
		return dto.CompareStrategiesResponse{}, fmt.Errorf("snowball run: %w", err)
	}

	recommended := valueobject.StrategyAvalanche
	delta := snowball.Cascade.TotalInterest.Sub(avalanche.Cascade.TotalInterest)
	if delta.IsNegative() {
		recommended = valueobject.StrategySnowball
		delta = delta.Neg()
	}

	return dto.CompareStrategiesResponse{
		Avalanche:     outcome(avalanche),
		Snowball:      outcome(snowball),
		Recommended:   recommended.String(),
		InterestDelta: delta,
	}, nil
}

func outcome(r model.ComparisonResult) dto.StrategyOutcome {
	return dto.StrategyOutcome{
		MonthsToPayoff: r.Cascade.MonthsToPayoff,
		TotalInterest:  r.Cascade.TotalInterest,
		MonthsSaved:    r.MonthsSaved,
		InterestSaved:  r.InterestSaved,
	}
}
