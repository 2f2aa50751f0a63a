package analyse

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/bomgrid/bomcheck/cmd/version"
	"github.com/bomgrid/bomcheck/internal/analyzer"
	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// resolveOrder loads the order from the input path, or generates sample data
// when requested.
func resolveOrder(options *RunOptionsAnalyse, logger hclog.Logger) (*bom.Order, error) {
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

// analyzerSettings merges the command-line overrides over the configured
// analyzer settings. Empty flags keep the config (or default) values.
func analyzerSettings(cfg *config.Config, options *RunOptionsAnalyse) analyzer.Settings {
	settings := analyzer.Settings{}
	if cfg != nil {
		settings = analyzer.Settings{
			Provider:   cfg.Analyzer.Provider,
			Model:      cfg.Analyzer.Model,
			Endpoint:   cfg.Analyzer.Endpoint,
			Deployment: cfg.Analyzer.Deployment,
			APIVersion: cfg.Analyzer.APIVersion,
			MaxTokens:  cfg.Analyzer.MaxTokens,
		}
	}
	if options.Provider != "" {
		settings.Provider = options.Provider
	}
	if options.Model != "" {
		settings.Model = options.Model
	}
	if options.Endpoint != "" {
		settings.Endpoint = options.Endpoint
	}
	if options.Deployment != "" {
		settings.Deployment = options.Deployment
	}
	if options.APIVersion != "" {
		settings.APIVersion = options.APIVersion
	}
	return settings
}

// writeOutputs writes the requested report renderings. The output flag may
// name a directory, in which case a per-order file name is derived.
func writeOutputs(options *RunOptionsAnalyse, rep report.Report) error {
	if options.OutputPath != "" {
		fullPath, _, err := files.DetermineFileFullPath(options.OutputPath, fmt.Sprintf("analysis_%s.json", rep.OrderID))
		if err != nil {
			return err
		}
		if err := rep.WriteJSON(fullPath); err != nil {
			return err
		}
		logger.Info("analysis report saved to file", "path", fullPath)
	}
	if options.CSVPath != "" {
		if err := report.AppendCSV(options.CSVPath, rep, time.Now()); err != nil {
			return err
		}
		logger.Info("CSV report saved to file", "path", options.CSVPath)
	}
	if options.SarifPath != "" {
		if err := report.WriteSarif(rep, version.Version(), options.SarifPath); err != nil {
			return err
		}
		logger.Info("SARIF report saved to file", "path", options.SarifPath)
	}
	return nil
}
