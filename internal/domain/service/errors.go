package service

import (
	"errors"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

// MaxSimulationMonths bounds every simulation loop at 1000 years, the same
// ceiling the normalizer puts on a loan's stated term. A run that would
// exceed it indicates a pathological configuration, not a user error.
const MaxSimulationMonths = model.MaxTermMonths

// ErrInvariantViolation marks configuration/invariant failures: the safety
// cap was exceeded, a balance increased between months, or the cascade came
// out worse than the baseline beyond rounding tolerance. Callers receive it
// wrapped and must treat the run as having produced no result.
var ErrInvariantViolation = errors.New("simulation invariant violation")
