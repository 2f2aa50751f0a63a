package batch

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/internal/analyzer"
	_ "github.com/bomgrid/bomcheck/internal/analyzer/providers"
	"github.com/bomgrid/bomcheck/internal/batch"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
	"github.com/bomgrid/bomcheck/pkg/shared/httpclient"
)

// RunOptionsBatch holds the arguments for the batch command.
type RunOptionsBatch struct {
	InputDir        string
	OutputDir       string
	CSVPath         string
	ReferenceFile   string
	GenerateSamples int
	SamplesDir      string
	Workers         int

	Provider string
	Model    string
	WithLLM  bool
}

// Global variables for configuration and command arguments
var (
	AppConfig    *config.Config
	logger       hclog.Logger
	batchOptions RunOptionsBatch

	exampleBatchUsage = `  # Validate every order document in a directory
  bomcheck batch --input-dir ./orders --output-dir ./analysis_results

  # Generate twenty sample orders, then validate them with a consolidated CSV log
  bomcheck batch -g 20 --samples-dir ./sample_orders
  bomcheck batch -i ./sample_orders --csv ./analysis_results/issues.csv

  # Validate a directory with LLM escalation and eight workers
  bomcheck batch -i ./orders --with-llm --provider openai -j 8`
)

// BatchCmd represents the batch command.
var BatchCmd = &cobra.Command{
	Use:                   "batch {--input-dir/-i PATH | --generate-samples/-g N} [--output-dir/-o PATH] [--csv PATH] [--workers/-j N]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleBatchUsage,
	Short:                 "Validate every BOM order document in a directory",
	RunE:                  runBatchCommand,
}

// Init initializes the global configuration variables for the batch command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	if err := validateBatchArgs(&batchOptions, args); err != nil {
		logger.Error("invalid batch arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid batch arguments: %w", err), 1)
	}

	if batchOptions.GenerateSamples > 0 {
		if err := batch.GenerateSamples(batchOptions.SamplesDir, batchOptions.GenerateSamples); err != nil {
			logger.Error("failed to generate sample orders", "error", err)
			return errors.NewCommandError(err, 2)
		}
		logger.Info("sample orders generated",
			"dir", batchOptions.SamplesDir, "count", batchOptions.GenerateSamples)
		fmt.Printf("Generated %d sample order files in %s\n",
			batchOptions.GenerateSamples, batchOptions.SamplesDir)
		return nil
	}

	cat, err := buildCatalog(AppConfig, batchOptions.ReferenceFile, logger)
	if err != nil {
		logger.Error("failed to build reference catalog", "error", err)
		return errors.NewCommandError(err, 1)
	}

	var an analyzer.Analyzer
	if batchOptions.WithLLM {
		an, err = buildAnalyzer(AppConfig, &batchOptions)
		if err != nil {
			logger.Error("failed to configure the LLM analyzer", "error", err)
			return errors.NewCommandError(err, 1)
		}
	}

	processor := batch.New(logger, cat, an, batchOptions.Workers)
	summary, err := processor.Run(context.Background(), batch.Options{
		InputDir:  batchOptions.InputDir,
		OutputDir: batchOptions.OutputDir,
		CSVPath:   batchOptions.CSVPath,
	})
	if err != nil {
		logger.Error("batch run failed", "error", err)
		return errors.NewCommandError(err, 2)
	}

	fmt.Printf("Batch run %s finished: %d processed, %d failed, %d issues found\n",
		summary.RunID, summary.Processed, summary.Failed, summary.TotalIssues)

	if summary.Failed > 0 {
		return errors.NewCommandError(
			fmt.Errorf("%d of %d order files failed to process", summary.Failed, summary.Failed+summary.Processed), 2)
	}
	return nil
}

// buildAnalyzer constructs the LLM client used for escalation during the
// batch run.
func buildAnalyzer(cfg *config.Config, options *RunOptionsBatch) (analyzer.Analyzer, error) {
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

	httpc := httpclient.InitializeRestyClient(logger, cfg)
	if cfg != nil && cfg.Analyzer.Timeout > 0 {
		httpc.SetTimeout(cfg.Analyzer.Timeout)
	}
	return analyzer.NewClient(httpc, settings, logger)
}

func init() {
	BatchCmd.Flags().StringVarP(&batchOptions.InputDir, "input-dir", "i", "", "Directory containing order JSON files to process.")
	BatchCmd.Flags().StringVarP(&batchOptions.OutputDir, "output-dir", "o", "./analysis_results", "Directory to write per-order analysis reports.")
	BatchCmd.Flags().StringVar(&batchOptions.CSVPath, "csv", "", "Path to append all findings to a consolidated CSV report.")
	BatchCmd.Flags().StringVar(&batchOptions.ReferenceFile, "reference-file", "", "Path to a reference data CSV file for item validation.")
	BatchCmd.Flags().IntVarP(&batchOptions.GenerateSamples, "generate-samples", "g", 0, "Generate N sample order files instead of processing.")
	BatchCmd.Flags().StringVar(&batchOptions.SamplesDir, "samples-dir", "./sample_orders", "Directory to write generated sample orders.")
	BatchCmd.Flags().IntVarP(&batchOptions.Workers, "workers", "j", 0, "Number of concurrent workers (default 4).")
	BatchCmd.Flags().StringVar(&batchOptions.Provider, "provider", "", "LLM provider for escalation (openai, azure, or ollama).")
	BatchCmd.Flags().StringVar(&batchOptions.Model, "model", "", "Model to use for escalation.")
	BatchCmd.Flags().BoolVar(&batchOptions.WithLLM, "with-llm", false, "Escalate every order to the LLM provider after validation.")
	BatchCmd.Flags().BoolP("help", "h", false, "Show help for the batch command.")
}
