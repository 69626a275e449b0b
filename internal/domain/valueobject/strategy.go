package valueobject

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for strategy names other than "avalanche"
// and "snowball".
var ErrUnknownStrategy = errors.New("invalid strategy")

// ---------------------------------------------------------------------------
// Strategy – immutable value object
// ---------------------------------------------------------------------------

// Strategy selects which active loan receives the pooled extra each month.
type Strategy struct {
	value string
}

const (
	strategyAvalanche = "avalanche" // highest rate first
	strategySnowball  = "snowball"  // smallest balance first
)

var (
	StrategyAvalanche = Strategy{value: strategyAvalanche}
	StrategySnowball  = Strategy{value: strategySnowball}
)

var validStrategies = map[string]Strategy{
	strategyAvalanche: StrategyAvalanche,
	strategySnowball:  StrategySnowball,
}

// NewStrategy creates a Strategy from a raw string. The empty string maps to
// avalanche, the documented default.
func NewStrategy(s string) (Strategy, error) {
	if s == "" {
		return StrategyAvalanche, nil
	}
	v, ok := validStrategies[s]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
	return v, nil
}

// String returns the string representation of the strategy.
func (s Strategy) String() string { return s.value }

// IsZero returns true if the strategy has not been initialised.
func (s Strategy) IsZero() bool { return s.value == "" }

// Equal returns true when both strategies carry the same value.
func (s Strategy) Equal(other Strategy) bool { return s.value == other.value }
