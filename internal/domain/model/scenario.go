package model

import "time"

// Scenario is a saved, shareable set of comparison inputs. The loans and
// extras are stored raw (pre-normalization) so replaying a scenario goes
// through the normalizer exactly like a fresh request.
type Scenario struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LoanA             LoanInput `json:"loan_a"`
	LoanB             LoanInput `json:"loan_b"`
	ExtraA            float64   `json:"extra_a"`
	ExtraB            float64   `json:"extra_b"`
	RedirectScheduled bool      `json:"redirect_scheduled"`
	RedirectExtra     bool      `json:"redirect_extra"`
	Strategy          string    `json:"strategy"`
	CreatedAt         time.Time `json:"created_at"`
}
