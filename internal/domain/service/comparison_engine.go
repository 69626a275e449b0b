package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/money"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// Savings below these thresholds are rounding/termination-boundary noise
// and report as zero.
var (
	monthsSavedNoiseFilter   = 1
	interestSavedNoiseFilter = decimal.NewFromFloat(0.50)

	// interestTolerance absorbs cent-level rounding drift when asserting the
	// cascade never beats the baseline in the wrong direction.
	interestTolerance = decimal.NewFromFloat(0.01)
)

// CompareRequest carries raw comparison inputs. The engine normalizes them;
// callers pass user input through unchanged.
type CompareRequest struct {
	LoanA             model.LoanInput
	LoanB             model.LoanInput
	ExtraA            float64
	ExtraB            float64
	RedirectScheduled bool
	RedirectExtra     bool
	Strategy          valueobject.Strategy
}

// ComparisonEngine assembles a baseline run and a cascade run into a
// ComparisonResult and asserts the system-wide invariants before returning.
// It holds no state; a single instance is safe for concurrent use.
type ComparisonEngine struct{}

// NewComparisonEngine returns a new engine instance.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{}
}

// Compare runs the full pipeline: normalize, derive scheduled payments,
// simulate the no-redirect baseline and the pooled cascade, compute savings
// metrics, and check invariants. On any invariant violation it returns an
// error wrapping ErrInvariantViolation and no result.
func (e *ComparisonEngine) Compare(req CompareRequest) (model.ComparisonResult, error) {
	loanA := model.NormalizeLoan(req.LoanA)
	loanB := model.NormalizeLoan(req.LoanB)
	extraA := model.NormalizeExtra(req.ExtraA)
	extraB := model.NormalizeExtra(req.ExtraB)

	strategy := req.Strategy
	if strategy.IsZero() {
		strategy = valueobject.StrategyAvalanche
	}

	paymentA := model.ScheduledPayment(loanA)
	paymentB := model.ScheduledPayment(loanB)

	// Baseline: each loan pays its own extra, nothing pooled or redirected.
	singleA, err := SimulateSingle(loanA, paymentA, extraA)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("baseline loan A: %w", err)
	}
	singleB, err := SimulateSingle(loanB, paymentB, extraB)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("baseline loan B: %w", err)
	}
	baseline := mergeBaseline(singleA, singleB)

	cascade, err := SimulateCascade(CascadeInput{
		LoanA:             loanA,
		LoanB:             loanB,
		PaymentA:          paymentA,
		PaymentB:          paymentB,
		ExtraA:            extraA,
		ExtraB:            extraB,
		RedirectScheduled: req.RedirectScheduled,
		RedirectExtra:     req.RedirectExtra,
		Strategy:          strategy,
	})
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("cascade: %w", err)
	}

	if err := checkInvariants(baseline, cascade); err != nil {
		return model.ComparisonResult{}, err
	}

	monthsSaved := baseline.MonthsToPayoff - cascade.MonthsToPayoff
	if monthsSaved <= monthsSavedNoiseFilter {
		monthsSaved = 0
	}

	interestSaved := money.RoundCents(baseline.TotalInterest.Sub(cascade.TotalInterest))
	if interestSaved.LessThan(interestSavedNoiseFilter) {
		interestSaved = decimal.Zero
	}

	return model.ComparisonResult{
		Baseline:          baseline,
		Cascade:           cascade,
		MonthsSaved:       monthsSaved,
		InterestSaved:     interestSaved,
		ScheduledPaymentA: paymentA,
		ScheduledPaymentB: paymentB,
	}, nil
}

// mergeBaseline combines two independent single-loan traces into the
// CascadeTrace shape renderers consume. Shorter sequences pad with zero
// (the loan is paid off); nothing was pooled, so yearly summaries and
// attribution stay empty.
func mergeBaseline(a, b model.SimulationTrace) model.CascadeTrace {
	months := a.MonthsToPayoff
	if b.MonthsToPayoff > months {
		months = b.MonthsToPayoff
	}

	combined := make([]decimal.Decimal, months+1)
	seqA := make([]decimal.Decimal, months+1)
	seqB := make([]decimal.Decimal, months+1)
	for i := 0; i <= months; i++ {
		balA, balB := decimal.Zero, decimal.Zero
		if i < len(a.Balances) {
			balA = a.Balances[i]
		}
		if i < len(b.Balances) {
			balB = b.Balances[i]
		}
		seqA[i] = balA
		seqB[i] = balB
		combined[i] = money.RoundCents(balA.Add(balB))
	}

	return model.CascadeTrace{
		MonthsToPayoff: months,
		TotalInterest:  money.RoundCents(a.TotalInterest.Add(b.TotalInterest)),
		Combined:       combined,
		LoanA:          seqA,
		LoanB:          seqB,
	}
}

// checkInvariants asserts the engine-wide guarantees that indicate an
// engine bug when broken: monotone non-increasing balances, non-negative money,
// and the cascade never doing worse than the baseline.
func checkInvariants(baseline, cascade model.CascadeTrace) error {
	if baseline.MonthsToPayoff < 1 || cascade.MonthsToPayoff < 1 {
		return fmt.Errorf("payoff months below 1: %w", ErrInvariantViolation)
	}
	if baseline.TotalInterest.IsNegative() || cascade.TotalInterest.IsNegative() {
		return fmt.Errorf("negative total interest: %w", ErrInvariantViolation)
	}
	if cascade.MonthsToPayoff > baseline.MonthsToPayoff {
		return fmt.Errorf(
			"cascade payoff %d months exceeds baseline %d: %w",
			cascade.MonthsToPayoff, baseline.MonthsToPayoff, ErrInvariantViolation,
		)
	}
	if cascade.TotalInterest.GreaterThan(baseline.TotalInterest.Add(interestTolerance)) {
		return fmt.Errorf(
			"cascade interest %s exceeds baseline %s beyond tolerance: %w",
			cascade.TotalInterest, baseline.TotalInterest, ErrInvariantViolation,
		)
	}

	for name, seq := range map[string][]decimal.Decimal{
		"baseline combined": baseline.Combined,
		"cascade combined":  cascade.Combined,
		"cascade loan A":    cascade.LoanA,
		"cascade loan B":    cascade.LoanB,
	} {
		if err := checkSequence(name, seq); err != nil {
			return err
		}
	}
	return nil
}

func checkSequence(name string, seq []decimal.Decimal) error {
	for i, bal := range seq {
		if bal.IsNegative() {
			return fmt.Errorf("%s balance negative at month %d: %w", name, i, ErrInvariantViolation)
		}
		if i > 0 && bal.GreaterThan(seq[i-1].Add(interestTolerance)) {
			return fmt.Errorf("%s balance increased at month %d: %w", name, i, ErrInvariantViolation)
		}
	}
	return nil
}
