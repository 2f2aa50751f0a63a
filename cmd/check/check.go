package check

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/cmd/version"
	"github.com/bomgrid/bomcheck/internal/report"
	"github.com/bomgrid/bomcheck/internal/validator"
	"github.com/bomgrid/bomcheck/pkg/shared/artifacts"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// RunOptions holds the arguments for the check command.
type RunOptions struct {
	InputPath      string
	OutputPath     string
	CSVPath        string
	SarifPath      string
	Sample         bool
	Clean          bool
	SaveSamplePath string
	ReferenceFile  string
}

// Global variables for configuration and command arguments
var (
	AppConfig    *config.Config
	logger       hclog.Logger
	checkOptions RunOptions

	exampleCheckUsage = `  # Validate an order document and print the findings
  bomcheck check --input /path/to/order.json

  # Validate an order and write the analysis report and a CSV issue log
  bomcheck check --input /path/to/order.json -o /path/to/analysis.json --csv /path/to/issues.csv

  # Validate the bundled problematic sample order
  bomcheck check --sample

  # Validate a clean sample and keep a copy of the generated order
  bomcheck check --sample --clean --save-sample /path/to/order.json

  # Validate against reference data and emit a SARIF report
  bomcheck check --input order.json --reference-file reference_items.csv --sarif analysis.sarif`
)

// CheckCmd represents the check command.
var CheckCmd = &cobra.Command{
	Use:                   "check {--input/-i PATH | --sample/-s [--clean/-c]} [--output/-o PATH] [--csv PATH] [--sarif PATH] [--reference-file PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCheckUsage,
	Short:                 "Run the deterministic rule checks over a BOM order",
	RunE:                  runCheckCommand,
}

// Init initializes the global configuration variables for the check command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runCheckCommand(cmd *cobra.Command, args []string) error {
	if err := validateCheckArgs(&checkOptions, args); err != nil {
		logger.Error("invalid check arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid check arguments: %w", err), 1)
	}

	order, err := resolveOrder(&checkOptions, logger)
	if err != nil {
		logger.Error("failed to load order", "error", err)
		return errors.NewCommandError(err, 1)
	}

	cat, err := buildCatalog(AppConfig, checkOptions.ReferenceFile, logger)
	if err != nil {
		logger.Error("failed to build reference catalog", "error", err)
		return errors.NewCommandError(err, 1)
	}

	found := validator.Validate(order, cat)
	rep := report.New(order.OrderID, found)

	fmt.Print(report.FormatText(rep))

	if err := writeOutputs(&checkOptions, rep); err != nil {
		logger.Error("failed to write report", "error", err)
		return errors.NewCommandError(err, 2)
	}

	if _, err := artifacts.SaveReportArtifact(AppConfig, logger, "check", rep); err != nil {
		logger.Warn("failed to save report artifact", "error", err)
	}

	logger.Info("check command completed successfully",
		"order_id", order.OrderID, "items", len(order.Items), "issues", rep.TotalIssues)
	return nil
}

// writeOutputs writes the requested report renderings. The output flag may
// name a directory, in which case a per-order file name is derived.
func writeOutputs(options *RunOptions, rep report.Report) error {
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
		if err := appendCSVReport(options.CSVPath, rep); err != nil {
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

func init() {
	CheckCmd.Flags().StringVarP(&checkOptions.InputPath, "input", "i", "", "Path to the input JSON file containing order data.")
	CheckCmd.Flags().StringVarP(&checkOptions.OutputPath, "output", "o", "", "Path to save the analysis report (JSON).")
	CheckCmd.Flags().StringVar(&checkOptions.CSVPath, "csv", "", "Path to append the analysis to a CSV report file.")
	CheckCmd.Flags().StringVar(&checkOptions.SarifPath, "sarif", "", "Path to save the analysis as a SARIF report.")
	CheckCmd.Flags().BoolVarP(&checkOptions.Sample, "sample", "s", false, "Generate and validate sample order data.")
	CheckCmd.Flags().BoolVarP(&checkOptions.Clean, "clean", "c", false, "Generate clean sample data without issues.")
	CheckCmd.Flags().StringVar(&checkOptions.SaveSamplePath, "save-sample", "", "Save the generated sample order to a file.")
	CheckCmd.Flags().StringVar(&checkOptions.ReferenceFile, "reference-file", "", "Path to a reference data CSV file for item validation.")
	CheckCmd.Flags().BoolP("help", "h", false, "Show help for the check command.")
}
