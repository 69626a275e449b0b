package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteMarkdown renders the batch result as a Markdown summary table.
func WriteMarkdown(path string, batch BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Overpayment cascade report\n\n")
	fmt.Fprintf(&b, "- Source: %s\n", batch.Source)
	fmt.Fprintf(&b, "- Generated: %s\n", batch.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "- Scenarios: %d (%d failed)\n\n", len(batch.Results), batch.Failed())

	fmt.Fprintf(&b, "| Scenario | Strategy | Baseline months | Cascade months | Months saved | Interest saved | Effective return %% |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, r := range batch.Results {
		if r.Comparison == nil {
			continue
		}
		c := r.Comparison
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %s | %s |\n",
			r.Name, c.Strategy,
			c.Baseline.MonthsToPayoff, c.Cascade.MonthsToPayoff,
			c.MonthsSaved, c.InterestSaved.StringFixed(2),
			c.Cascade.EffectiveReturn.StringFixed(2),
		)
	}

	if batch.Failed() > 0 {
		fmt.Fprintf(&b, "\n## Failed scenarios\n\n")
		for _, r := range batch.Results {
			if r.Error != "" {
				fmt.Fprintf(&b, "- %s: %s\n", r.Name, r.Error)
			}
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
