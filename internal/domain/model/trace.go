package model

import "github.com/shopspring/decimal"

// SimulationTrace is the outcome of running one loan to payoff. Balances is
// indexed by month with index 0 holding the starting balance. Created fresh
// per simulation call and never mutated after return.
type SimulationTrace struct {
	MonthsToPayoff int
	TotalInterest  decimal.Decimal
	Balances       []decimal.Decimal
}

// YearlySummary aggregates one 12-month block of a cascade run (the final
// block may be partial). Contributed amounts are per source loan; applied
// amounts are per destination loan. The two views always sum to the same
// total.
type YearlySummary struct {
	Year               int             `json:"year"`
	InterestAccrued    decimal.Decimal `json:"interest_accrued"`
	ContributedByLoanA decimal.Decimal `json:"contributed_by_loan_a"`
	ContributedByLoanB decimal.Decimal `json:"contributed_by_loan_b"`
	ExtraAppliedToA    decimal.Decimal `json:"extra_applied_to_a"`
	ExtraAppliedToB    decimal.Decimal `json:"extra_applied_to_b"`
	EndBalanceLoanA    decimal.Decimal `json:"end_balance_loan_a"`
	EndBalanceLoanB    decimal.Decimal `json:"end_balance_loan_b"`
}

// Attribution is the per-source accounting of whose pooled money ended up
// reducing which loan's balance over a full run.
type Attribution struct {
	FromAToA decimal.Decimal `json:"from_a_to_a"`
	FromAToB decimal.Decimal `json:"from_a_to_b"`
	FromBToA decimal.Decimal `json:"from_b_to_a"`
	FromBToB decimal.Decimal `json:"from_b_to_b"`
}

// TotalContributedByA returns all of loan A's money that was applied anywhere.
func (a Attribution) TotalContributedByA() decimal.Decimal {
	return a.FromAToA.Add(a.FromAToB)
}

// TotalContributedByB returns all of loan B's money that was applied anywhere.
func (a Attribution) TotalContributedByB() decimal.Decimal {
	return a.FromBToA.Add(a.FromBToB)
}

// CascadeTrace is the outcome of running both loans in lockstep. All three
// balance sequences are indexed by month with index 0 holding the starting
// balances. The baseline run reuses this shape with empty Yearly summaries
// and a zero Attribution, since nothing is pooled there.
type CascadeTrace struct {
	MonthsToPayoff  int               `json:"months_to_payoff"`
	TotalInterest   decimal.Decimal   `json:"total_interest"`
	Combined        []decimal.Decimal `json:"combined_balances"`
	LoanA           []decimal.Decimal `json:"loan_a_balances"`
	LoanB           []decimal.Decimal `json:"loan_b_balances"`
	Yearly          []YearlySummary   `json:"yearly_summaries,omitempty"`
	Attribution     Attribution       `json:"attribution"`
	EffectiveReturn decimal.Decimal   `json:"effective_return"`
}

// ComparisonResult is the sole artifact handed to external renderers:
// a baseline (independent loans, own extras, no pooling) against the
// cascade run, with derived savings metrics. Immutable once returned.
type ComparisonResult struct {
	Baseline          CascadeTrace    `json:"baseline"`
	Cascade           CascadeTrace    `json:"cascade"`
	MonthsSaved       int             `json:"months_saved"`
	InterestSaved     decimal.Decimal `json:"interest_saved"`
	ScheduledPaymentA decimal.Decimal `json:"scheduled_payment_a"`
	ScheduledPaymentB decimal.Decimal `json:"scheduled_payment_b"`
}
