package sample

import "fmt"

// validateSampleArgs validates the arguments provided to the sample command.
func validateSampleArgs(options *RunOptionsSample, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the sample command takes flags only")
	}

	if options.GenerateReference != "" && (options.Clean || options.OutputPath != "") {
		return fmt.Errorf("you cannot use the 'generate-reference' flag together with order generation flags")
	}

	return nil
}
