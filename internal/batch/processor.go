// Package batch processes a directory of order documents in one run. Each
// validation is a pure function of a single order, so files are processed
// concurrently against the shared immutable catalog.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/internal/analyzer"
	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/internal/validator"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

const defaultWorkers = 4

// Processor runs validation over every order document in a directory.
type Processor struct {
	logger   hclog.Logger
	catalog  *catalog.Catalog
	analyzer analyzer.Analyzer // nil disables LLM escalation
	workers  int

	csvMu sync.Mutex
}

// Options control a batch run.
type Options struct {
	InputDir  string
	OutputDir string
	CSVPath   string // consolidated CSV report, empty disables
}

// Summary aggregates the outcome of a batch run.
type Summary struct {
	RunID       string `json:"run_id"`
	Processed   int    `json:"processed"`
	Failed      int    `json:"failed"`
	TotalIssues int    `json:"total_issues"`
}

// New creates a batch processor. A nil analyzer skips LLM escalation; workers
// below one falls back to the default limit.
func New(logger hclog.Logger, cat *catalog.Catalog, an analyzer.Analyzer, workers int) *Processor {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Processor{
		logger:   logger,
		catalog:  cat,
		analyzer: an,
		workers:  workers,
	}
}

// Run validates every *.json file in the input directory, writing one
// analysis document per input into the output directory. Per-file failures
// are logged and counted; the batch continues.
func (p *Processor) Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}

	paths, err := filepath.Glob(filepath.Join(opts.InputDir, "*.json"))
	if err != nil {
		return summary, fmt.Errorf("failed to list input directory %q: %w", opts.InputDir, err)
	}
	if len(paths) == 0 {
		return summary, fmt.Errorf("no JSON files found in %q", opts.InputDir)
	}

	if err := files.CreateFolderIfNotExists(opts.OutputDir); err != nil {
		return summary, err
	}

	p.logger.Info("starting batch run", "run_id", summary.RunID, "files", len(paths), "workers", p.workers)

	var mu sync.Mutex
	var wg sync.WaitGroup
	guard := make(chan struct{}, p.workers)

	for _, path := range paths {
		guard <- struct{}{}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-guard }()

			rep, err := p.processFile(ctx, path, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("failed to process order file", "path", path, "error", err)
				summary.Failed++
				return
			}
			summary.Processed++
			summary.TotalIssues += rep.TotalIssues
		}(path)
	}
	wg.Wait()

	p.logger.Info("batch run completed", "run_id", summary.RunID,
		"processed", summary.Processed, "failed", summary.Failed, "total_issues", summary.TotalIssues)
	return summary, nil
}

// processFile runs the full pipeline for one order document.
func (p *Processor) processFile(ctx context.Context, path string, opts Options) (report.Report, error) {
	order, err := bom.Load(path)
	if err != nil {
		return report.Report{}, err
	}

	found := validator.Validate(order, p.catalog)
	rep := report.New(order.OrderID, found)

	if p.analyzer != nil {
		text, err := p.analyzer.Analyze(ctx, order, found)
		if err != nil {
			// Escalation is best-effort; the deterministic report stands.
			p.logger.Warn("LLM escalation failed", "path", path, "error", err)
		} else {
			rep.LLMReport = text
		}
	}

	outPath := filepath.Join(opts.OutputDir, "analysis_"+filepath.Base(path))
	if err := rep.WriteJSON(outPath); err != nil {
		return rep, err
	}

	if opts.CSVPath != "" {
		p.csvMu.Lock()
		err := report.AppendCSV(opts.CSVPath, rep, time.Now())
		p.csvMu.Unlock()
		if err != nil {
			return rep, err
		}
	}

	p.logger.Debug("processed order file", "path", path, "issues", rep.TotalIssues)
	return rep, nil
}
