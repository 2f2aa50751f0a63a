package upload

import (
	"fmt"

	"github.com/bomgrid/bomcheck/pkg/shared/files"
)

// validateUploadArgs validates the arguments provided to the upload command.
func validateUploadArgs(options *RunOptionsUpload, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the upload command takes flags only")
	}

	if options.InputPath == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}
	if err := files.ValidatePath(options.InputPath); err != nil {
		return fmt.Errorf("provided input path is not valid: %w", err)
	}

	if options.Bucket == "" && (AppConfig == nil || AppConfig.Storage.S3.Bucket == "") {
		return fmt.Errorf("the 'bucket' flag or the storage.s3.bucket config option must be specified")
	}

	return nil
}
