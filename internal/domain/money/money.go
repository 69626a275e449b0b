// Package money canonicalizes the monetary quantities the simulators work
// with. Every amount that leaves this package is rounded to whole cents so
// drift cannot accumulate over long simulations.
package money

import "github.com/shopspring/decimal"

// Cent is the smallest representable amount.
var Cent = decimal.New(1, -2)

// RoundCents rounds d to the nearest cent, half away from zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Clamp saturates d into [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// ClampFloat saturates x into [lo, hi].
func ClampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// FromFloat converts a raw numeric input to a cent-rounded decimal.
// NaN and infinities collapse to zero so they clamp like any other
// out-of-range input.
func FromFloat(x float64) decimal.Decimal {
	if x != x || x > maxFloatInput || x < -maxFloatInput {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x).Round(2)
}

// Large enough for any balance the normalizer accepts, small enough to
// reject +Inf before decimal conversion.
const maxFloatInput = 1e15
