package check

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// resolveOrder loads the order from the input path, or generates sample data
// when requested. The generated sample is optionally saved to disk.
func resolveOrder(options *RunOptions, logger hclog.Logger) (*bom.Order, error) {
	if options.InputPath != "" {
		logger.Info("loading order data", "path", options.InputPath)
		return bom.Load(options.InputPath)
	}

	status := "problematic"
	if options.Clean {
		status = "clean"
	}
	logger.Info("generating sample BOM order data", "kind", status)
	order := bom.SampleOrder(!options.Clean)

	if options.SaveSamplePath != "" {
		data, err := bom.Marshal(order)
		if err != nil {
			return nil, err
		}
		if err := files.WriteJsonFile(options.SaveSamplePath, data); err != nil {
			return nil, err
		}
		logger.Info("sample data saved to file", "path", options.SaveSamplePath)
	}

	return order, nil
}

// buildCatalog creates the reference catalog, loading reference data from the
// flag path or the configured reference_file when present.
func buildCatalog(cfg *config.Config, referenceFile string, logger hclog.Logger) (*catalog.Catalog, error) {
	cat := catalog.Default()

	if referenceFile == "" && cfg != nil {
		referenceFile = cfg.Catalog.ReferenceFile
	}
	if referenceFile != "" {
		if err := cat.LoadReferenceFile(referenceFile); err != nil {
			return nil, err
		}
		logger.Info("loaded reference items", "path", referenceFile, "count", cat.ReferenceCount())
	}

	return cat, nil
}

// appendCSVReport appends the report to the CSV issue log.
func appendCSVReport(path string, rep report.Report) error {
	return report.AppendCSV(path, rep, time.Now())
}
