package batch

import (
	"fmt"
	"strings"

	"github.com/bomgrid/bomcheck/internal/analyzer"
	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// validateBatchArgs validates the arguments provided to the batch command.
func validateBatchArgs(options *RunOptionsBatch, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the batch command takes flags only")
	}

	if options.GenerateSamples < 0 {
		return fmt.Errorf("the 'generate-samples' flag must be a positive number")
	}

	if options.GenerateSamples > 0 {
		if options.InputDir != "" {
			return fmt.Errorf("you cannot use the 'input-dir' flag together with the 'generate-samples' flag")
		}
		return nil
	}

	if options.InputDir == "" {
		return fmt.Errorf("either the 'input-dir' flag or the 'generate-samples' flag must be specified")
	}
	if err := files.ValidateDirPath(options.InputDir); err != nil {
		return fmt.Errorf("provided input directory is not valid: %w", err)
	}

	if options.ReferenceFile != "" {
		if err := files.ValidatePath(options.ReferenceFile); err != nil {
			return fmt.Errorf("provided reference file path is not valid: %w", err)
		}
	}

	if options.Workers < 0 {
		return fmt.Errorf("the 'workers' flag must be a positive number")
	}

	if !options.WithLLM && (options.Provider != "" || options.Model != "") {
		return fmt.Errorf("the 'provider' and 'model' flags require the 'with-llm' flag")
	}

	if options.WithLLM && options.Provider != "" && analyzer.GetProvider(options.Provider) == nil {
		return fmt.Errorf("unknown provider %q, available providers are: %s",
			options.Provider, strings.Join(analyzer.ListProviders(), ", "))
	}

	return nil
}
