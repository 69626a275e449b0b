package model_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

func TestScheduledPayment_Annuity(t *testing.T) {
	// $200,000 at 5% for 300 months: payment is approximately $1,169.18.
	terms := model.NormalizeLoan(model.LoanInput{Balance: 200000, Rate: 5, Months: 300})
	payment := model.ScheduledPayment(terms)

	expected := decimal.NewFromFloat(1169.18)
	assert.True(t,
		payment.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.02)),
		"payment should be approximately $1,169.18, got %s", payment,
	)
}

func TestScheduledPayment_ZeroRate(t *testing.T) {
	terms := model.NormalizeLoan(model.LoanInput{Balance: 1200, Rate: 0, Months: 12})
	payment := model.ScheduledPayment(terms)

	assert.True(t, payment.Equal(decimal.NewFromInt(100)),
		"zero-rate payment should be balance/months, got %s", payment)
}

func TestScheduledPayment_ExceedsFirstMonthInterest(t *testing.T) {
	// A tiny balance over a very long term rounds the annuity payment down to
	// the first month's interest; the guard must bump it above.
	terms := model.NormalizeLoan(model.LoanInput{Balance: 1, Rate: 25, Months: 1000})
	payment := model.ScheduledPayment(terms)

	firstMonthInterest := terms.Balance.Mul(terms.MonthlyRate()).Round(2)
	assert.True(t, payment.GreaterThan(firstMonthInterest),
		"payment %s must exceed first month interest %s", payment, firstMonthInterest)
}

func TestScheduledPayment_NeverBelowOneCent(t *testing.T) {
	terms := model.NormalizeLoan(model.LoanInput{Balance: 1, Rate: 0, Months: 1000})
	payment := model.ScheduledPayment(terms)

	assert.True(t, payment.GreaterThanOrEqual(decimal.NewFromFloat(0.01)))
}

func TestScheduledPayment_ExtremeNormalizedInputs(t *testing.T) {
	// Every input the normalizer accepts must yield a finite, positive
	// payment; the conversion back to decimal panics on NaN or Inf.
	cases := []struct {
		name string
		raw  model.LoanInput
	}{
		{name: "million-month term", raw: model.LoanInput{Balance: 200000, Rate: 5, Months: 1e6}},
		{name: "infinite term", raw: model.LoanInput{Balance: 200000, Rate: 5, Months: math.Inf(1)}},
		{name: "maximal balance rate and term", raw: model.LoanInput{Balance: 1e9, Rate: 99, Months: 1e9}},
		{name: "denormal rate", raw: model.LoanInput{Balance: 100000, Rate: 1e-300, Months: 120}},
		{name: "smallest positive rate", raw: model.LoanInput{Balance: 100000, Rate: 5e-324, Months: 360}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payment := model.ScheduledPayment(model.NormalizeLoan(tc.raw))
			assert.True(t, payment.GreaterThanOrEqual(decimal.NewFromFloat(0.01)),
				"payment %s must be at least one cent", payment)
		})
	}
}

func TestScheduledPayment_SubResolutionRateAmortisesEvenly(t *testing.T) {
	// A rate too small for float64 to distinguish (1+r)^n from 1 behaves
	// like a zero rate instead of dividing by zero.
	terms := model.NormalizeLoan(model.LoanInput{Balance: 1200, Rate: 1e-300, Months: 12})
	payment := model.ScheduledPayment(terms)

	assert.True(t, payment.Equal(decimal.NewFromInt(100)),
		"sub-resolution rate should split evenly like zero rate, got %s", payment)
}
