package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

func referenceRequest() service.CompareRequest {
	return service.CompareRequest{
		LoanA:             model.LoanInput{Balance: 200000, Rate: 5, Months: 300},
		LoanB:             model.LoanInput{Balance: 150000, Rate: 3, Months: 300},
		ExtraA:            500,
		ExtraB:            300,
		RedirectScheduled: true,
		RedirectExtra:     true,
		Strategy:          valueobject.StrategyAvalanche,
	}
}

func TestComparisonEngine_ReferenceScenario(t *testing.T) {
	engine := service.NewComparisonEngine()

	result, err := engine.Compare(referenceRequest())
	require.NoError(t, err)

	assert.True(t, result.Cascade.TotalInterest.LessThanOrEqual(result.Baseline.TotalInterest),
		"cascade interest %s must not exceed baseline %s",
		result.Cascade.TotalInterest, result.Baseline.TotalInterest)
	assert.LessOrEqual(t, result.Cascade.MonthsToPayoff, result.Baseline.MonthsToPayoff)

	assert.GreaterOrEqual(t, result.MonthsSaved, 0)
	assert.False(t, result.InterestSaved.IsNegative())

	// Pooling two extras at the higher-rate loan has to beat paying them
	// separately by a wide margin on a 25-year horizon.
	assert.Greater(t, result.MonthsSaved, 1)
	assert.True(t, result.InterestSaved.GreaterThan(decimal.NewFromInt(1)))

	// Scheduled payments surface for renderers.
	assert.True(t, result.ScheduledPaymentA.Sub(decimal.NewFromFloat(1169.18)).Abs().LessThan(decimal.NewFromFloat(0.02)))
	assert.True(t, result.ScheduledPaymentB.IsPositive())
}

func TestComparisonEngine_ZeroExtraEquivalence(t *testing.T) {
	engine := service.NewComparisonEngine()

	req := referenceRequest()
	req.ExtraA = 0
	req.ExtraB = 0

	result, err := engine.Compare(req)
	require.NoError(t, err)

	assert.Equal(t, 0, result.MonthsSaved)
	assert.True(t, result.InterestSaved.IsZero())
	assert.Equal(t, result.Baseline.MonthsToPayoff, result.Cascade.MonthsToPayoff,
		"with no extras the cascade must reproduce the baseline exactly")
	assert.True(t, result.Cascade.TotalInterest.Equal(result.Baseline.TotalInterest))
}

func TestComparisonEngine_CascadeNeverWorse(t *testing.T) {
	engine := service.NewComparisonEngine()
	tolerance := decimal.NewFromFloat(0.01)

	cases := []struct {
		name     string
		req      service.CompareRequest
	}{
		{"reference avalanche", referenceRequest()},
		{
			"snowball small first",
			service.CompareRequest{
				LoanA:             model.LoanInput{Balance: 30000, Rate: 4, Months: 60},
				LoanB:             model.LoanInput{Balance: 90000, Rate: 7, Months: 180},
				ExtraA:            250,
				ExtraB:            100,
				RedirectScheduled: true,
				RedirectExtra:     true,
				Strategy:          valueobject.StrategySnowball,
			},
		},
		{
			"one-sided extra",
			service.CompareRequest{
				LoanA:             model.LoanInput{Balance: 120000, Rate: 6, Months: 240},
				LoanB:             model.LoanInput{Balance: 80000, Rate: 2, Months: 120},
				ExtraA:            0,
				ExtraB:            600,
				RedirectScheduled: true,
				RedirectExtra:     true,
				Strategy:          valueobject.StrategyAvalanche,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := engine.Compare(tc.req)
			require.NoError(t, err)
			assert.True(t,
				result.Cascade.TotalInterest.LessThanOrEqual(result.Baseline.TotalInterest.Add(tolerance)),
				"cascade interest %s vs baseline %s",
				result.Cascade.TotalInterest, result.Baseline.TotalInterest)
		})
	}
}

func TestComparisonEngine_ZeroRateLoan(t *testing.T) {
	engine := service.NewComparisonEngine()

	req := service.CompareRequest{
		LoanA:             model.LoanInput{Balance: 1200, Rate: 0, Months: 12},
		LoanB:             model.LoanInput{Balance: 2400, Rate: 0, Months: 24},
		ExtraA:            50,
		ExtraB:            0,
		RedirectScheduled: true,
		RedirectExtra:     true,
		Strategy:          valueobject.StrategyAvalanche,
	}

	result, err := engine.Compare(req)
	require.NoError(t, err)

	assert.True(t, result.ScheduledPaymentA.Equal(decimal.NewFromInt(100)),
		"zero-rate payment is balance/months, got %s", result.ScheduledPaymentA)
	assert.True(t, result.Baseline.TotalInterest.IsZero())
	assert.True(t, result.Cascade.TotalInterest.IsZero())
}

func TestComparisonEngine_NormalizesHostileInput(t *testing.T) {
	engine := service.NewComparisonEngine()

	req := service.CompareRequest{
		LoanA:             model.LoanInput{Balance: -100, Rate: 90, Months: -5},
		LoanB:             model.LoanInput{},
		ExtraA:            -20,
		ExtraB:            5e9,
		RedirectScheduled: true,
		RedirectExtra:     true,
	}

	result, err := engine.Compare(req)
	require.NoError(t, err, "hostile input is absorbed by normalization, never an error")

	assert.GreaterOrEqual(t, result.Baseline.MonthsToPayoff, 1)
	assert.GreaterOrEqual(t, result.Cascade.MonthsToPayoff, 1)
}

func TestComparisonEngine_SafetyCapIsFatal(t *testing.T) {
	engine := service.NewComparisonEngine()

	// Zero rate over a multi-thousand-year term: the derived payment cannot
	// amortise inside the safety cap. This must surface as a distinct
	// failure, not a truncated result.
	req := service.CompareRequest{
		LoanA:             model.LoanInput{Balance: 100_000_000, Rate: 0, Months: 9_000_000},
		LoanB:             model.LoanInput{Balance: 1000, Rate: 3, Months: 12},
		RedirectScheduled: true,
		RedirectExtra:     true,
	}

	_, err := engine.Compare(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvariantViolation)
}

func TestComparisonEngine_HugeTermCompletes(t *testing.T) {
	engine := service.NewComparisonEngine()

	// A million-month term clamps at normalization instead of overflowing
	// the annuity factor into NaN territory.
	req := service.CompareRequest{
		LoanA:             model.LoanInput{Balance: 200000, Rate: 5, Months: 1e6},
		LoanB:             model.LoanInput{Balance: 150000, Rate: 3, Months: 300},
		ExtraA:            500,
		RedirectScheduled: true,
		RedirectExtra:     true,
	}

	result, err := engine.Compare(req)
	require.NoError(t, err)

	assert.LessOrEqual(t, result.Baseline.MonthsToPayoff, service.MaxSimulationMonths)
	assert.LessOrEqual(t, result.Cascade.MonthsToPayoff, result.Baseline.MonthsToPayoff)
}

func TestComparisonEngine_SmallSavingsFilteredAsNoise(t *testing.T) {
	engine := service.NewComparisonEngine()

	// A negligible extra produces sub-threshold differences.
	req := referenceRequest()
	req.ExtraA = 0.01
	req.ExtraB = 0

	result, err := engine.Compare(req)
	require.NoError(t, err)

	if result.Baseline.MonthsToPayoff-result.Cascade.MonthsToPayoff <= 1 {
		assert.Equal(t, 0, result.MonthsSaved)
	}
	if result.Baseline.TotalInterest.Sub(result.Cascade.TotalInterest).LessThan(decimal.NewFromFloat(0.50)) {
		assert.True(t, result.InterestSaved.IsZero())
	}
}
