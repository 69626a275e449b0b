package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
)

func normalized(balance, rate, months float64) model.LoanTerms {
	return model.NormalizeLoan(model.LoanInput{Balance: balance, Rate: rate, Months: months})
}

func requireMonotonic(t *testing.T, balances []decimal.Decimal) {
	t.Helper()
	tolerance := decimal.NewFromFloat(0.01)
	for i, bal := range balances {
		require.False(t, bal.IsNegative(), "balance negative at month %d: %s", i, bal)
		if i > 0 {
			require.True(t, bal.LessThanOrEqual(balances[i-1].Add(tolerance)),
				"balance increased at month %d: %s -> %s", i, balances[i-1], bal)
		}
	}
}

func TestSimulateSingle_RunsToTermWithoutExtra(t *testing.T) {
	terms := normalized(200000, 5, 300)
	payment := model.ScheduledPayment(terms)

	trace, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.NoError(t, err)

	// A correctly derived payment amortises within a month or two of the
	// stated term.
	assert.InDelta(t, 300, trace.MonthsToPayoff, 2)
	assert.True(t, trace.TotalInterest.IsPositive())
	assert.Len(t, trace.Balances, trace.MonthsToPayoff+1)
	assert.True(t, trace.Balances[0].Equal(terms.Balance))
	assert.True(t, trace.Balances[len(trace.Balances)-1].IsZero())
	requireMonotonic(t, trace.Balances)
}

func TestSimulateSingle_ExtraShortensPayoff(t *testing.T) {
	terms := normalized(200000, 5, 300)
	payment := model.ScheduledPayment(terms)

	without, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.NoError(t, err)
	with, err := service.SimulateSingle(terms, payment, decimal.NewFromInt(500))
	require.NoError(t, err)

	assert.Less(t, with.MonthsToPayoff, without.MonthsToPayoff)
	assert.True(t, with.TotalInterest.LessThan(without.TotalInterest))
}

func TestSimulateSingle_ZeroRate(t *testing.T) {
	terms := normalized(1200, 0, 12)
	payment := model.ScheduledPayment(terms)
	require.True(t, payment.Equal(decimal.NewFromInt(100)))

	trace, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 12, trace.MonthsToPayoff)
	assert.True(t, trace.TotalInterest.IsZero(), "zero-rate loan accrues no interest")
	requireMonotonic(t, trace.Balances)
}

func TestSimulateSingle_TinyBalanceClearsInOneMonth(t *testing.T) {
	terms := normalized(50, 5, 60)
	payment := model.ScheduledPayment(terms)

	trace, err := service.SimulateSingle(terms, payment, decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Equal(t, 1, trace.MonthsToPayoff)
	require.Len(t, trace.Balances, 2)
	assert.True(t, trace.Balances[1].IsZero(), "final balance must be exactly zero")
}

func TestSimulateSingle_SafetyCap(t *testing.T) {
	// The stated term clamps to the cap length, and the even-split payment
	// rounds down a third of a cent a month. The residue needs one month
	// past the cap, which must fail rather than truncate.
	terms := normalized(100_000_000, 0, 9_000_000)
	payment := model.ScheduledPayment(terms)

	_, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvariantViolation)
}

func TestSimulateSingle_HugeTermTerminatesUnderCap(t *testing.T) {
	// A million-month request clamps to the term ceiling; the derived
	// payment must stay finite and amortise inside the safety cap instead
	// of poisoning the run with a non-finite annuity factor.
	terms := normalized(200000, 5, 1e6)
	payment := model.ScheduledPayment(terms)

	trace, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.NoError(t, err)

	assert.LessOrEqual(t, trace.MonthsToPayoff, service.MaxSimulationMonths)
	assert.True(t, trace.Balances[len(trace.Balances)-1].IsZero())
	requireMonotonic(t, trace.Balances)
}

func TestSimulateSingle_DenormalRateBehavesAsZeroRate(t *testing.T) {
	terms := normalized(1200, 1e-300, 12)
	payment := model.ScheduledPayment(terms)

	trace, err := service.SimulateSingle(terms, payment, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 12, trace.MonthsToPayoff)
	assert.True(t, trace.TotalInterest.IsZero(), "sub-resolution rate rounds to no interest")
}
