// cascadecli runs a batch of comparison scenarios from a YAML file and
// writes a Markdown or JSON report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
	"github.com/dmjfallon/cascade-beta/internal/application/usecase"
	"github.com/dmjfallon/cascade-beta/internal/domain/service"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/cache"
	"github.com/dmjfallon/cascade-beta/internal/infrastructure/messaging"
	"github.com/dmjfallon/cascade-beta/internal/observability"
	"github.com/dmjfallon/cascade-beta/internal/report"
	"github.com/dmjfallon/cascade-beta/internal/scenariofile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cascadecli", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	scenariosPath := fs.String("scenarios", "", "path to the scenario YAML file")
	outPath := fs.String("out", "", "report output path (default: stdout path derived from format)")
	format := fs.String("format", "markdown", "report format: markdown or json")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenariosPath == "" {
		return fmt.Errorf("-scenarios is required")
	}
	if *format != "markdown" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}

	logger := observability.InitLogger(observability.LogConfig{Level: *logLevel, Format: "text"})

	file, err := scenariofile.Load(*scenariosPath)
	if err != nil {
		return err
	}

	engine := service.NewComparisonEngine()
	compare := usecase.NewRunComparisonUseCase(engine, cache.NewNoopCache(), messaging.NewNoopPublisher(), logger)

	ctx := context.Background()
	batch := report.BatchResult{
		GeneratedAt: time.Now().UTC(),
		Source:      *scenariosPath,
	}
	for _, sc := range file.Scenarios {
		resp, runErr := compare.Execute(ctx, dto.CompareRequest{
			LoanA:             sc.LoanA,
			LoanB:             sc.LoanB,
			ExtraA:            sc.ExtraA,
			ExtraB:            sc.ExtraB,
			RedirectScheduled: sc.RedirectScheduled,
			RedirectExtra:     sc.RedirectExtra,
			Strategy:          sc.Strategy,
		})
		result := report.ScenarioResult{Name: sc.Name}
		if runErr != nil {
			// One bad scenario should not sink the batch.
			logger.Warn("scenario failed", "name", sc.Name, "error", runErr)
			result.Error = runErr.Error()
		} else {
			result.Comparison = &resp
		}
		batch.Results = append(batch.Results, result)
	}

	path := *outPath
	if path == "" {
		if *format == "json" {
			path = "cascade-report.json"
		} else {
			path = "cascade-report.md"
		}
	}

	if *format == "json" {
		err = report.WriteJSON(path, batch)
	} else {
		err = report.WriteMarkdown(path, batch)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s report for %d scenario(s) to %s\n", *format, len(batch.Results), path)
	if failed := batch.Failed(); failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
