package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/money"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// CascadeInput carries everything one cascade run needs. Payments come from
// model.ScheduledPayment; extras are already normalized.
type CascadeInput struct {
	LoanA             model.LoanTerms
	LoanB             model.LoanTerms
	PaymentA          decimal.Decimal
	PaymentB          decimal.Decimal
	ExtraA            decimal.Decimal
	ExtraB            decimal.Decimal
	RedirectScheduled bool
	RedirectExtra     bool
	Strategy          valueobject.Strategy
}

// cascadeConfig is the per-run constant part of the simulation, split from
// the mutable month state so the transition function stays pure.
type cascadeConfig struct {
	rateA, rateB       decimal.Decimal
	paymentA, paymentB decimal.Decimal
	extraA, extraB     decimal.Decimal
	redirectScheduled  bool
	redirectExtra      bool
	avalanche          bool
	ratePctA, ratePctB float64

	// Pooling engages only when at least one extra is positive. With both
	// extras zero the cascade reproduces the baseline exactly, including
	// the redirect toggles having no effect.
	pooling bool
}

// yearAccumulator collects one 12-month block's figures, reset at every
// year boundary and at final payoff.
type yearAccumulator struct {
	interest decimal.Decimal
	fromAToA decimal.Decimal
	fromAToB decimal.Decimal
	fromBToA decimal.Decimal
	fromBToB decimal.Decimal
}

// monthState is the complete mutable state of a cascade run. stepMonth
// takes a value and returns a new value; nothing in a run is mutated in
// place.
type monthState struct {
	balanceA      decimal.Decimal
	balanceB      decimal.Decimal
	totalInterest decimal.Decimal
	attribution   model.Attribution
	year          yearAccumulator
}

// SimulateCascade runs both loans in lockstep: accrue interest, apply
// scheduled payments, pool the month's eligible extra contributions, and
// allocate the pool to the strategy's target loan. After one loan clears,
// its owner's extra keeps contributing under RedirectExtra and its freed
// scheduled payment under RedirectScheduled. Yearly summaries close every
// 12th month and at final payoff.
func SimulateCascade(in CascadeInput) (model.CascadeTrace, error) {
	cfg := cascadeConfig{
		rateA:             in.LoanA.MonthlyRate(),
		rateB:             in.LoanB.MonthlyRate(),
		paymentA:          in.PaymentA,
		paymentB:          in.PaymentB,
		extraA:            in.ExtraA,
		extraB:            in.ExtraB,
		redirectScheduled: in.RedirectScheduled,
		redirectExtra:     in.RedirectExtra,
		avalanche:         in.Strategy.Equal(valueobject.StrategyAvalanche),
		ratePctA:          in.LoanA.RatePercent,
		ratePctB:          in.LoanB.RatePercent,
		pooling:           in.ExtraA.Add(in.ExtraB).IsPositive(),
	}

	s := monthState{
		balanceA:      in.LoanA.Balance,
		balanceB:      in.LoanB.Balance,
		totalInterest: decimal.Zero,
	}

	trace := model.CascadeTrace{
		Combined: []decimal.Decimal{money.RoundCents(s.balanceA.Add(s.balanceB))},
		LoanA:    []decimal.Decimal{s.balanceA},
		LoanB:    []decimal.Decimal{s.balanceB},
	}

	month := 0
	for s.balanceA.IsPositive() || s.balanceB.IsPositive() {
		month++
		if month > MaxSimulationMonths {
			return model.CascadeTrace{}, fmt.Errorf(
				"cascade run exceeded %d months: %w", MaxSimulationMonths, ErrInvariantViolation,
			)
		}

		s = stepMonth(cfg, s)

		trace.Combined = append(trace.Combined, money.RoundCents(s.balanceA.Add(s.balanceB)))
		trace.LoanA = append(trace.LoanA, s.balanceA)
		trace.LoanB = append(trace.LoanB, s.balanceB)

		paidOff := !s.balanceA.IsPositive() && !s.balanceB.IsPositive()
		if month%12 == 0 || paidOff {
			trace.Yearly = append(trace.Yearly, closeYear(month, s))
			s.year = yearAccumulator{}
		}
	}

	trace.MonthsToPayoff = month
	trace.TotalInterest = money.RoundCents(s.totalInterest)
	trace.Attribution = s.attribution
	trace.EffectiveReturn = effectiveReturn(s.attribution, cfg.ratePctA, cfg.ratePctB)
	return trace, nil
}

// stepMonth advances the cascade by one month. It is a pure function of the
// config and the incoming state.
func stepMonth(cfg cascadeConfig, s monthState) monthState {
	// 1. Accrue interest per active loan. Interest feeds the running totals
	// only; balances decline monotonically.
	interestA, interestB := decimal.Zero, decimal.Zero
	if s.balanceA.IsPositive() {
		interestA = money.RoundCents(s.balanceA.Mul(cfg.rateA))
	}
	if s.balanceB.IsPositive() {
		interestB = money.RoundCents(s.balanceB.Mul(cfg.rateB))
	}
	s.totalInterest = s.totalInterest.Add(interestA).Add(interestB)
	s.year.interest = s.year.interest.Add(interestA).Add(interestB)

	// 2. Apply the scheduled payments' principal portions.
	s.balanceA = applyScheduled(s.balanceA, cfg.paymentA, interestA)
	s.balanceB = applyScheduled(s.balanceB, cfg.paymentB, interestB)

	activeA := s.balanceA.IsPositive()
	activeB := s.balanceB.IsPositive()

	// 3. Determine this month's pooled contribution per source loan.
	contribA, contribB := decimal.Zero, decimal.Zero
	if cfg.pooling {
		switch {
		case activeA && activeB:
			contribA, contribB = cfg.extraA, cfg.extraB
		case activeB:
			contribB = cfg.extraB
			if cfg.redirectExtra {
				contribA = contribA.Add(cfg.extraA)
			}
			if cfg.redirectScheduled {
				contribA = contribA.Add(cfg.paymentA)
			}
		case activeA:
			contribA = cfg.extraA
			if cfg.redirectExtra {
				contribB = contribB.Add(cfg.extraB)
			}
			if cfg.redirectScheduled {
				contribB = contribB.Add(cfg.paymentB)
			}
		}
	}

	// 4. Allocate the pool to the strategy's target, capped at its balance.
	// Excess above the cap is discarded for the month; attribution records
	// only what was applied, proportional to each source's pool share.
	pool := contribA.Add(contribB)
	if pool.IsPositive() && (activeA || activeB) {
		targetIsA := chooseTarget(cfg, s, activeA, activeB)

		targetBalance := s.balanceB
		if targetIsA {
			targetBalance = s.balanceA
		}

		applied := pool
		if applied.GreaterThan(targetBalance) {
			applied = targetBalance
		}
		applied = money.RoundCents(applied)

		fromA := money.RoundCents(applied.Mul(contribA).Div(pool))
		fromB := applied.Sub(fromA)

		if targetIsA {
			s.balanceA = money.RoundCents(s.balanceA.Sub(applied))
			s.attribution.FromAToA = s.attribution.FromAToA.Add(fromA)
			s.attribution.FromBToA = s.attribution.FromBToA.Add(fromB)
			s.year.fromAToA = s.year.fromAToA.Add(fromA)
			s.year.fromBToA = s.year.fromBToA.Add(fromB)
		} else {
			s.balanceB = money.RoundCents(s.balanceB.Sub(applied))
			s.attribution.FromAToB = s.attribution.FromAToB.Add(fromA)
			s.attribution.FromBToB = s.attribution.FromBToB.Add(fromB)
			s.year.fromAToB = s.year.fromAToB.Add(fromA)
			s.year.fromBToB = s.year.fromBToB.Add(fromB)
		}
	}

	// 5. Snap floating-point residue below one cent to exactly zero so a
	// finished loan is never treated as still active.
	if s.balanceA.LessThan(money.Cent) {
		s.balanceA = decimal.Zero
	}
	if s.balanceB.LessThan(money.Cent) {
		s.balanceB = decimal.Zero
	}

	return s
}

// applyScheduled subtracts the principal portion of a scheduled payment:
// the payment minus this month's interest, floored at zero and capped at
// the open balance.
func applyScheduled(balance, payment, interest decimal.Decimal) decimal.Decimal {
	if !balance.IsPositive() {
		return balance
	}
	principal := money.RoundCents(payment.Sub(interest))
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	if principal.GreaterThan(balance) {
		principal = balance
	}
	return money.RoundCents(balance.Sub(principal))
}

// chooseTarget picks which loan receives the pool. With one loan cleared
// the survivor takes it all; otherwise avalanche targets the higher rate
// and snowball the smaller balance, ties broken toward loan A.
func chooseTarget(cfg cascadeConfig, s monthState, activeA, activeB bool) bool {
	switch {
	case !activeB:
		return true
	case !activeA:
		return false
	case cfg.avalanche:
		return cfg.ratePctA >= cfg.ratePctB
	default:
		return s.balanceA.LessThanOrEqual(s.balanceB)
	}
}

func closeYear(month int, s monthState) model.YearlySummary {
	return model.YearlySummary{
		Year:               (month + 11) / 12,
		InterestAccrued:    money.RoundCents(s.year.interest),
		ContributedByLoanA: s.year.fromAToA.Add(s.year.fromAToB),
		ContributedByLoanB: s.year.fromBToA.Add(s.year.fromBToB),
		ExtraAppliedToA:    s.year.fromAToA.Add(s.year.fromBToA),
		ExtraAppliedToB:    s.year.fromAToB.Add(s.year.fromBToB),
		EndBalanceLoanA:    s.balanceA,
		EndBalanceLoanB:    s.balanceB,
	}
}

// effectiveReturn is the weighted-average annual rate of the money actually
// applied as extra: sum(applied_i * rate_i) / sum(applied_i). Zero when no
// extra was ever applied.
func effectiveReturn(a model.Attribution, ratePctA, ratePctB float64) decimal.Decimal {
	appliedToA := a.FromAToA.Add(a.FromBToA)
	appliedToB := a.FromAToB.Add(a.FromBToB)
	total := appliedToA.Add(appliedToB)
	if !total.IsPositive() {
		return decimal.Zero
	}

	weighted := appliedToA.Mul(decimal.NewFromFloat(ratePctA)).
		Add(appliedToB.Mul(decimal.NewFromFloat(ratePctB)))
	return weighted.Div(total).Round(2)
}
