package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/domain/model"
)

func sampleBatch() BatchResult {
	comparison := &dto.CompareResponse{
		Strategy:      "avalanche",
		MonthsSaved:   14,
		InterestSaved: decimal.RequireFromString("3120.55"),
		Baseline:      model.CascadeTrace{MonthsToPayoff: 300},
		Cascade: model.CascadeTrace{
			MonthsToPayoff:  286,
			EffectiveReturn: decimal.RequireFromString("4.21"),
		},
	}
	return BatchResult{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Source:      "scenarios.yaml",
		Results: []ScenarioResult{
			{Name: "two mortgages", Comparison: comparison},
			{Name: "broken", Error: "simulation exceeded 12000 months"},
		},
	}
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.md")
	require.NoError(t, WriteMarkdown(path, sampleBatch()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)

	assert.Contains(t, md, "# Overpayment cascade report")
	assert.Contains(t, md, "- Scenarios: 2 (1 failed)")
	assert.Contains(t, md, "| two mortgages | avalanche | 300 | 286 | 14 | 3120.55 | 4.21 |")
	assert.Contains(t, md, "## Failed scenarios")
	assert.Contains(t, md, "- broken: simulation exceeded 12000 months")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	require.NoError(t, WriteJSON(path, sampleBatch()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var decoded BatchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "scenarios.yaml", decoded.Source)
	assert.Equal(t, 1, decoded.Failed())
	assert.Equal(t, 286, decoded.Results[0].Comparison.Cascade.MonthsToPayoff)
	assert.Empty(t, decoded.Results[1].Comparison)
}
