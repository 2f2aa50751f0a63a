package sample

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/internal/bom"
	"github.com/bomgrid/bomcheck/internal/catalog"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// RunOptionsSample holds the arguments for the sample command.
type RunOptionsSample struct {
	OutputPath        string
	Clean             bool
	GenerateReference string
}

// Global variables for configuration and command arguments
var (
	AppConfig     *config.Config
	logger        hclog.Logger
	sampleOptions RunOptionsSample

	exampleSampleUsage = `  # Print a problematic sample order to stdout
  bomcheck sample

  # Write a clean sample order to a file
  bomcheck sample --clean -o /path/to/order.json

  # Write the bundled reference item data as a CSV file
  bomcheck sample --generate-reference /path/to/reference_items.csv`
)

// SampleCmd represents the sample command.
var SampleCmd = &cobra.Command{
	Use:                   "sample [--clean/-c] [--output/-o PATH] [--generate-reference PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleSampleUsage,
	Short:                 "Generate sample BOM order data and reference files",
	RunE:                  runSampleCommand,
}

// Init initializes the global configuration variables for the sample command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runSampleCommand(cmd *cobra.Command, args []string) error {
	if err := validateSampleArgs(&sampleOptions, args); err != nil {
		logger.Error("invalid sample arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid sample arguments: %w", err), 1)
	}

	if sampleOptions.GenerateReference != "" {
		if err := catalog.WriteSampleReference(sampleOptions.GenerateReference); err != nil {
			logger.Error("failed to write reference data", "error", err)
			return errors.NewCommandError(err, 2)
		}
		logger.Info("reference data saved to file", "path", sampleOptions.GenerateReference)
		return nil
	}

	order := bom.SampleOrder(!sampleOptions.Clean)
	data, err := bom.Marshal(order)
	if err != nil {
		logger.Error("failed to marshal sample order", "error", err)
		return errors.NewCommandError(err, 2)
	}

	if sampleOptions.OutputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := files.WriteJsonFile(sampleOptions.OutputPath, data); err != nil {
		logger.Error("failed to save sample order", "error", err)
		return errors.NewCommandError(err, 2)
	}
	logger.Info("sample data saved to file", "path", sampleOptions.OutputPath, "order_id", order.OrderID)
	return nil
}

func init() {
	SampleCmd.Flags().StringVarP(&sampleOptions.OutputPath, "output", "o", "", "Path to save the sample order (default: stdout).")
	SampleCmd.Flags().BoolVarP(&sampleOptions.Clean, "clean", "c", false, "Generate clean sample data without issues.")
	SampleCmd.Flags().StringVar(&sampleOptions.GenerateReference, "generate-reference", "", "Write the bundled reference item data as a CSV file.")
	SampleCmd.Flags().BoolP("help", "h", false, "Show help for the sample command.")
}
