package analyse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/internal/analyzer"
	_ "github.com/bomgrid/bomcheck/internal/analyzer/providers"
	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/issues"
	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/internal/validator"
	"github.com/bomgrid/bomcheck/pkg/shared/artifacts"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
	"github.com/bomgrid/bomcheck/pkg/shared/httpclient"
)

// RunOptionsAnalyse holds the arguments for the analyse command.
type RunOptionsAnalyse struct {
	InputPath      string
	OutputPath     string
	CSVPath        string
	SarifPath      string
	Sample         bool
	Clean          bool
	SaveSamplePath string
	ReferenceFile  string

	Provider   string
	Model      string
	Endpoint   string
	Deployment string
	APIVersion string
	SkipLLM    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig      *config.Config
	logger         hclog.Logger
	analyseOptions RunOptionsAnalyse

	exampleAnalyseUsage = `  # Validate an order and escalate it to OpenAI for supplementary analysis
  bomcheck analyse --input /path/to/order.json -o /path/to/analysis.json

  # Use an Azure OpenAI deployment
  bomcheck analyse --input order.json --provider azure --endpoint https://example.openai.azure.com --deployment bom-validator

  # Use a local Ollama model
  bomcheck analyse --input order.json --provider ollama --model llama3

  # Run the deterministic checks only (same as the check command)
  bomcheck analyse --input order.json --skip-llm`
)

// AnalyseCmd represents the analyse command.
var AnalyseCmd = &cobra.Command{
	Use:                   "analyse {--input/-i PATH | --sample/-s [--clean/-c]} [--provider NAME] [--model NAME] [--output/-o PATH] [--csv PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyseUsage,
	Short:                 "Validate a BOM order and escalate it to an LLM provider",
	Long:                  generateLongDescription(),
	RunE:                  runAnalyseCommand,
}

// Init initializes the global configuration variables for the analyse command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runAnalyseCommand(cmd *cobra.Command, args []string) error {
	if err := validateAnalyseArgs(&analyseOptions, args); err != nil {
		logger.Error("invalid analyse arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid analyse arguments: %w", err), 1)
	}

	order, err := resolveOrder(&analyseOptions, logger)
	if err != nil {
		logger.Error("failed to load order", "error", err)
		return errors.NewCommandError(err, 1)
	}

	cat, err := buildCatalog(AppConfig, analyseOptions.ReferenceFile, logger)
	if err != nil {
		logger.Error("failed to build reference catalog", "error", err)
		return errors.NewCommandError(err, 1)
	}

	found := validator.Validate(order, cat)
	rep := report.New(order.OrderID, found)

	if !analyseOptions.SkipLLM {
		// Best effort: an escalation failure must not suppress the
		// deterministic report.
		text, err := escalate(order, found)
		if err != nil {
			logger.Warn("LLM escalation failed, returning the deterministic report", "error", err)
		} else {
			rep.LLMReport = text
		}
	}

	fmt.Print(report.FormatText(rep))

	if err := writeOutputs(&analyseOptions, rep); err != nil {
		logger.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, 2)
	}

	if _, err := artifacts.SaveReportArtifact(AppConfig, logger, "analyse", rep); err != nil {
		logger.Warn("failed to save report artifact", "error", err)
	}

	logger.Info("analyse command completed successfully",
		"order_id", order.OrderID, "items", len(order.Items), "issues", rep.TotalIssues)
	return nil
}

// escalate sends the order and the deterministic findings to the configured
// LLM provider.
func escalate(order *bom.Order, found []issues.Issue) (string, error) {
	settings := analyzerSettings(AppConfig, &analyseOptions)

	httpc := httpclient.InitializeRestyClient(logger, AppConfig)
	if AppConfig.Analyzer.Timeout > 0 {
		httpc.SetTimeout(AppConfig.Analyzer.Timeout)
	}

	client, err := analyzer.NewClient(httpc, settings, logger)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), escalationDeadline(AppConfig))
	defer cancel()

	return client.Analyze(ctx, order, found)
}

// escalationDeadline bounds the whole escalation call, retries included.
func escalationDeadline(cfg *config.Config) time.Duration {
	if cfg != nil && cfg.Analyzer.Timeout > 0 {
		return cfg.Analyzer.Timeout
	}
	return 3 * time.Minute
}

// generateLongDescription generates the long description with the list of
// registered providers.
func generateLongDescription() string {
	return fmt.Sprintf(`Validate a BOM order with the deterministic rule checks, then send the order
and the findings to an LLM provider for supplementary free-text analysis.

List of available providers:
  %s`, strings.Join(analyzer.ListProviders(), "\n  "))
}

func init() {
	AnalyseCmd.Flags().StringVarP(&analyseOptions.InputPath, "input", "i", "", "Path to the input JSON file containing order data.")
	AnalyseCmd.Flags().StringVarP(&analyseOptions.OutputPath, "output", "o", "", "Path to save the analysis report (JSON).")
	AnalyseCmd.Flags().StringVar(&analyseOptions.CSVPath, "csv", "", "Path to append the analysis to a CSV report file.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.SarifPath, "sarif", "", "Path to save the analysis as a SARIF report.")
	AnalyseCmd.Flags().BoolVarP(&analyseOptions.Sample, "sample", "s", false, "Generate and analyse sample order data.")
	AnalyseCmd.Flags().BoolVarP(&analyseOptions.Clean, "clean", "c", false, "Generate clean sample data without issues.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.SaveSamplePath, "save-sample", "", "Save the generated sample order to a file.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.ReferenceFile, "reference-file", "", "Path to a reference data CSV file for item validation.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.Provider, "provider", "", "LLM provider to use (openai, azure, or ollama).")
	AnalyseCmd.Flags().StringVar(&analyseOptions.Model, "model", "", "Model to use (default: o3-mini).")
	AnalyseCmd.Flags().StringVar(&analyseOptions.Endpoint, "endpoint", "", "Provider endpoint URL override.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.Deployment, "deployment", "", "Azure OpenAI deployment name.")
	AnalyseCmd.Flags().StringVar(&analyseOptions.APIVersion, "api-version", "", "Azure OpenAI API version.")
	AnalyseCmd.Flags().BoolVar(&analyseOptions.SkipLLM, "skip-llm", false, "Skip the LLM escalation, run only the deterministic checks.")
	AnalyseCmd.Flags().BoolP("help", "h", false, "Show help for the analyse command.")
}
