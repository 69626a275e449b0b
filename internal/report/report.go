// Package report renders batch comparison results as Markdown or JSON.
package report

import (
	"time"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
)

// ScenarioResult is the outcome of one scenario in a batch run. Exactly one
// of Comparison and Error is set.
type ScenarioResult struct {
	Name       string               `json:"name"`
	Comparison *dto.CompareResponse `json:"comparison,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// BatchResult is the full output of a batch run.
type BatchResult struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source"`
	Results     []ScenarioResult `json:"results"`
}

// Failed counts scenarios that ended in an error.
func (b BatchResult) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Error != "" {
			n++
		}
	}
	return n
}
