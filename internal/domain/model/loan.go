package model

import (
	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/money"
)

// Normalization bounds. Out-of-range raw input saturates instead of
// erroring; missing or non-finite values map to the respective floor.
const (
	MinBalance = 1
	MaxBalance = 100_000_000

	MinRatePercent = 0
	MaxRatePercent = 25

	// MaxTermMonths matches the simulation safety cap. It also bounds the
	// (1+r)^n amortisation factor: at the rate ceiling the factor stays
	// around 1e107, far inside float64 range.
	MinTermMonths = 1
	MaxTermMonths = 12_000

	MaxExtraPayment = 1_000_000
)

// LoanInput carries raw, unvalidated loan parameters as supplied by a
// caller. Any numeric domain is acceptable; NormalizeLoan sanitizes.
type LoanInput struct {
	Balance float64 `json:"balance" yaml:"balance"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Months  float64 `json:"months" yaml:"months"`
}

// LoanTerms is an immutable, normalized loan descriptor. Balance is a
// cent-rounded decimal in [MinBalance, MaxBalance], RatePercent an annual
// percentage in [0, 25], TermMonths a positive integer.
type LoanTerms struct {
	Balance     decimal.Decimal
	RatePercent float64
	TermMonths  int
}

// MonthlyRate returns the monthly interest rate as a decimal fraction
// (annual percent / 100 / 12).
func (t LoanTerms) MonthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(t.RatePercent / 100 / 12)
}

// NormalizeLoan sanitizes raw input into valid simulation parameters.
// It never fails: omitted or pathological values clamp to the bounds above.
func NormalizeLoan(raw LoanInput) LoanTerms {
	balance := money.Clamp(
		money.FromFloat(raw.Balance),
		decimal.NewFromInt(MinBalance),
		decimal.NewFromInt(MaxBalance),
	)

	rate := money.ClampFloat(raw.Rate, MinRatePercent, MaxRatePercent)
	if rate != rate {
		rate = MinRatePercent
	}

	// Clamp on the float side: converting an out-of-range float64 to int
	// is implementation-defined.
	months := raw.Months
	if months != months || months < MinTermMonths {
		months = MinTermMonths
	}
	if months > MaxTermMonths {
		months = MaxTermMonths
	}
	term := int(months)

	return LoanTerms{
		Balance:     balance,
		RatePercent: rate,
		TermMonths:  term,
	}
}

// NormalizeExtra sanitizes a raw monthly overpayment amount: clamped to
// [0, MaxExtraPayment] and rounded to cents. Missing defaults to zero.
func NormalizeExtra(raw float64) decimal.Decimal {
	return money.Clamp(
		money.FromFloat(raw),
		decimal.Zero,
		decimal.NewFromInt(MaxExtraPayment),
	)
}
