package check

import (
	"fmt"

	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// validateCheckArgs validates the arguments provided to the check command.
func validateCheckArgs(options *RunOptions, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the check command takes flags only")
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

	return nil
}
