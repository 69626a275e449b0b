// Package scenariofile loads batch comparison scenarios from YAML files for
// the CLI.
package scenariofile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmjfallon/cascade-beta/internal/domain/model"
	"github.com/dmjfallon/cascade-beta/internal/domain/valueobject"
)

// Scenario is one named comparison in a scenario file.
type Scenario struct {
	Name              string          `yaml:"name"`
	LoanA             model.LoanInput `yaml:"loan_a"`
	LoanB             model.LoanInput `yaml:"loan_b"`
	ExtraA            float64         `yaml:"extra_a"`
	ExtraB            float64         `yaml:"extra_b"`
	RedirectScheduled *bool           `yaml:"redirect_scheduled"`
	RedirectExtra     *bool           `yaml:"redirect_extra"`
	Strategy          string          `yaml:"strategy"`
}

// File is the top-level scenario file shape.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and validates a scenario file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read scenarios: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse scenarios: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks the scenario file for structural problems. Loan values are
// not range-checked here; the engine normalizes them.
func (f File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("scenario file contains no scenarios")
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for i, sc := range f.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d has no name", i+1)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true
		if _, err := valueobject.NewStrategy(sc.Strategy); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return nil
}
