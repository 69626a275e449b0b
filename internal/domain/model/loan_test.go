package model_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

func TestNormalizeLoan(t *testing.T) {
	cases := []struct {
		name        string
		raw         model.LoanInput
		wantBalance string
		wantRate    float64
		wantMonths  int
	}{
		{
			name:        "in-range passes through",
			raw:         model.LoanInput{Balance: 200000, Rate: 5, Months: 300},
			wantBalance: "200000",
			wantRate:    5,
			wantMonths:  300,
		},
		{
			name:        "balance rounds to cents",
			raw:         model.LoanInput{Balance: 1234.567, Rate: 3, Months: 12},
			wantBalance: "1234.57",
			wantRate:    3,
			wantMonths:  12,
		},
		{
			name:        "missing fields map to floors",
			raw:         model.LoanInput{},
			wantBalance: "1",
			wantRate:    0,
			wantMonths:  1,
		},
		{
			name:        "negative values clamp to floors",
			raw:         model.LoanInput{Balance: -50, Rate: -2, Months: -10},
			wantBalance: "1",
			wantRate:    0,
			wantMonths:  1,
		},
		{
			name:        "overlarge values clamp to ceilings",
			raw:         model.LoanInput{Balance: 5e9, Rate: 99, Months: 600},
			wantBalance: "100000000",
			wantRate:    25,
			wantMonths:  600,
		},
		{
			name:        "huge term clamps to ceiling",
			raw:         model.LoanInput{Balance: 1000, Rate: 4, Months: 1e6},
			wantBalance: "1000",
			wantRate:    4,
			wantMonths:  model.MaxTermMonths,
		},
		{
			name:        "infinite term clamps to ceiling",
			raw:         model.LoanInput{Balance: 1000, Rate: 4, Months: math.Inf(1)},
			wantBalance: "1000",
			wantRate:    4,
			wantMonths:  model.MaxTermMonths,
		},
		{
			name:        "fractional months truncate",
			raw:         model.LoanInput{Balance: 1000, Rate: 4, Months: 35.9},
			wantBalance: "1000",
			wantRate:    4,
			wantMonths:  35,
		},
		{
			name:        "NaN everywhere maps to floors",
			raw:         model.LoanInput{Balance: math.NaN(), Rate: math.NaN(), Months: math.NaN()},
			wantBalance: "1",
			wantRate:    0,
			wantMonths:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			terms := model.NormalizeLoan(tc.raw)
			assert.Equal(t, tc.wantBalance, terms.Balance.String())
			assert.Equal(t, tc.wantRate, terms.RatePercent)
			assert.Equal(t, tc.wantMonths, terms.TermMonths)
		})
	}
}

func TestNormalizeExtra(t *testing.T) {
	assert.True(t, model.NormalizeExtra(0).IsZero())
	assert.True(t, model.NormalizeExtra(-100).IsZero())
	assert.True(t, model.NormalizeExtra(math.NaN()).IsZero())
	assert.Equal(t, "500", model.NormalizeExtra(500).String())
	assert.Equal(t, "123.46", model.NormalizeExtra(123.456).String())
	assert.True(t, model.NormalizeExtra(5e7).Equal(decimal.NewFromInt(model.MaxExtraPayment)))
}
