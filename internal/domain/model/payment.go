package model

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/money"
)

// ScheduledPayment derives the fixed monthly payment that amortises the loan
// to zero over its term.
//
// The calculation uses:
//
//	monthlyRate = ratePercent / 100 / 12
//	payment     = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The power term is computed on float64 and converted back to decimal for
// monetary arithmetic. A zero-rate loan splits the principal evenly.
//
// The result is floored at one cent and, when the rate is positive, bumped
// above the first month's interest so amortisation is strictly positive. A
// payment that never reduces principal would otherwise loop the simulators
// forever.
func ScheduledPayment(terms LoanTerms) decimal.Decimal {
	principal := terms.Balance
	n := terms.TermMonths

	monthlyRate := terms.RatePercent / 100 / 12
	factor := math.Pow(1+monthlyRate, float64(n))

	// A rate below float64 resolution leaves 1+monthlyRate == 1 and a unit
	// factor; the annuity quotient would divide by zero. Amortise such a
	// loan like a zero-rate one.
	if terms.RatePercent == 0 || factor == 1 {
		payment := money.RoundCents(principal.Div(decimal.NewFromInt(int64(n))))
		if payment.LessThan(money.Cent) {
			payment = money.Cent
		}
		return payment
	}

	// An overflowed factor would turn the quotient into Inf/Inf. The
	// annuity payment tends to interest-only as the factor grows, so take
	// that limit plus the one-cent amortisation bump.
	if math.IsInf(factor, 0) {
		firstMonthInterest := money.RoundCents(principal.Mul(terms.MonthlyRate()))
		return firstMonthInterest.Add(money.Cent)
	}

	paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	payment := decimal.NewFromFloat(paymentFloat).Round(2)

	if payment.LessThan(money.Cent) {
		payment = money.Cent
	}

	firstMonthInterest := money.RoundCents(principal.Mul(terms.MonthlyRate()))
	if payment.LessThanOrEqual(firstMonthInterest) {
		payment = firstMonthInterest.Add(money.Cent)
	}

	return payment
}
