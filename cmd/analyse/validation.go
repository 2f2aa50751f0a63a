package analyse

import (
	"fmt"
	"strings"

	"github.com/bomgrid/bomcheck/internal/analyzer"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// validateAnalyseArgs validates the arguments provided to the analyse command.
func validateAnalyseArgs(options *RunOptionsAnalyse, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the analyse command takes flags only")
	}

	if options.InputPath != "" && (options.Sample || options.Clean) {
		return fmt.Errorf("you cannot use the 'input' flag together with sample generation flags")
	}

	if options.InputPath != "" {
		if err := files.ValidatePath(options.InputPath); err != nil {
			return fmt.Errorf("provided input path is not valid: %w", err)
		}
	}

	if options.Clean && !options.Sample {
		return fmt.Errorf("the 'clean' flag requires the 'sample' flag")
	}

	if options.SaveSamplePath != "" && !options.Sample {
		return fmt.Errorf("the 'save-sample' flag requires the 'sample' flag")
	}

	if options.ReferenceFile != "" {
		if err := files.ValidatePath(options.ReferenceFile); err != nil {
			return fmt.Errorf("provided reference file path is not valid: %w", err)
		}
	}

	if options.InputPath == "" && !options.Sample {
		return fmt.Errorf("either the 'input' flag or the 'sample' flag must be specified")
	}

	if options.SkipLLM {
		return nil
	}

	if options.Provider != "" && analyzer.GetProvider(options.Provider) == nil {
		return fmt.Errorf("unknown provider %q, available providers are: %s",
			options.Provider, strings.Join(analyzer.ListProviders(), ", "))
	}

	if options.Provider == "azure" && options.Deployment == "" && AppConfig.Analyzer.Deployment == "" {
		return fmt.Errorf("the azure provider requires the 'deployment' flag or the analyzer.deployment config option")
	}

	return nil
}
