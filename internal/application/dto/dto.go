package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CompareRequest carries raw comparison inputs. The redirect toggles are
// pointers so an omitted field takes the documented default (true) instead
// of the zero value.
type CompareRequest struct {
	LoanA             model.LoanInput `json:"loan_a"`
	LoanB             model.LoanInput `json:"loan_b"`
	ExtraA            float64         `json:"extra_a"`
	ExtraB            float64         `json:"extra_b"`
	RedirectScheduled *bool           `json:"redirect_scheduled,omitempty"`
	RedirectExtra     *bool           `json:"redirect_extra,omitempty"`
	Strategy          string          `json:"strategy,omitempty"`
}

// Redirects resolves the toggle defaults: both redirects are on unless
// explicitly disabled.
func (r CompareRequest) Redirects() (scheduled, extra bool) {
	scheduled, extra = true, true
	if r.RedirectScheduled != nil {
		scheduled = *r.RedirectScheduled
	}
	if r.RedirectExtra != nil {
		extra = *r.RedirectExtra
	}
	return scheduled, extra
}

// CompareStrategiesRequest runs both strategies over the same inputs.
type CompareStrategiesRequest struct {
	LoanA             model.LoanInput `json:"loan_a"`
	LoanB             model.LoanInput `json:"loan_b"`
	ExtraA            float64         `json:"extra_a"`
	ExtraB            float64         `json:"extra_b"`
	RedirectScheduled *bool           `json:"redirect_scheduled,omitempty"`
	RedirectExtra     *bool           `json:"redirect_extra,omitempty"`
}

// SaveScenarioRequest persists a named set of comparison inputs for sharing.
type SaveScenarioRequest struct {
	Name    string         `json:"name"`
	Compare CompareRequest `json:"compare"`
}

// GetScenarioRequest identifies a saved scenario.
type GetScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CompareResponse is the external representation of one comparison run.
type CompareResponse struct {
	Strategy          string             `json:"strategy"`
	RedirectScheduled bool               `json:"redirect_scheduled"`
	RedirectExtra     bool               `json:"redirect_extra"`
	ScheduledPaymentA decimal.Decimal    `json:"scheduled_payment_a"`
	ScheduledPaymentB decimal.Decimal    `json:"scheduled_payment_b"`
	MonthsSaved       int                `json:"months_saved"`
	InterestSaved     decimal.Decimal    `json:"interest_saved"`
	Baseline          model.CascadeTrace `json:"baseline"`
	Cascade           model.CascadeTrace `json:"cascade"`
}

// StrategyOutcome summarises one strategy's side of a head-to-head run.
type StrategyOutcome struct {
	MonthsToPayoff int             `json:"months_to_payoff"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	MonthsSaved    int             `json:"months_saved"`
	InterestSaved  decimal.Decimal `json:"interest_saved"`
}

// CompareStrategiesResponse reports avalanche against snowball.
type CompareStrategiesResponse struct {
	Avalanche     StrategyOutcome `json:"avalanche"`
	Snowball      StrategyOutcome `json:"snowball"`
	Recommended   string          `json:"recommended"`
	InterestDelta decimal.Decimal `json:"interest_delta"`
}

// SaveScenarioResponse returns the shareable identifier.
type SaveScenarioResponse struct {
	ScenarioID string    `json:"scenario_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetScenarioResponse returns a saved scenario with a fresh comparison run
// over its inputs.
type GetScenarioResponse struct {
	Scenario   model.Scenario  `json:"scenario"`
	Comparison CompareResponse `json:"comparison"`
}
