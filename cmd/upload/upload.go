package upload

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/internal/storage"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
)

// RunOptionsUpload holds the arguments for the upload command.
type RunOptionsUpload struct {
	InputPath string
	Bucket    string
	Region    string
	Key       string
	Overwrite bool
}

// Global variables for configuration and command arguments
var (
	AppConfig     *config.Config
	logger        hclog.Logger
	uploadOptions RunOptionsUpload

	exampleUploadUsage = `  # Upload an analysis report to the configured S3 bucket
  bomcheck upload --input ./analysis_results/analysis_order.json

  # Upload to an explicit bucket and key
  bomcheck upload -i analysis.json --bucket bom-reports --region eu-west-1 --key reports/2025/analysis.json`
)

// UploadCmd represents the upload command.
var UploadCmd = &cobra.Command{
	Use:                   "upload --input/-i PATH [--bucket NAME] [--region NAME] [--key KEY] [--overwrite]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleUploadUsage,
	Short:                 "Upload an analysis report to S3",
	RunE:                  runUploadCommand,
}

// Init initializes the global configuration variables for the upload command.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runUploadCommand(cmd *cobra.Command, args []string) error {
	if err := validateUploadArgs(&uploadOptions, args); err != nil {
		logger.Error("invalid upload arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid upload arguments: %w", err), 1)
	}

	bucket, region := resolveTarget(AppConfig, &uploadOptions)

	uploader, err := storage.NewS3Uploader(bucket, region, logger)
	if err != nil {
		logger.Error("failed to initialize the S3 uploader", "error", err)
		return errors.NewCommandError(err, 1)
	}

	key := uploadOptions.Key
	if key == "" {
		key = filepath.Base(uploadOptions.InputPath)
	}

	if !uploadOptions.Overwrite {
		exists, err := uploader.Exists(key)
		if err != nil {
			logger.Error("failed to check for an existing object", "key", key, "error", err)
			return errors.NewCommandError(err, 2)
		}
		if exists {
			err := fmt.Errorf("object %q already exists in bucket %q, use the 'overwrite' flag to replace it", key, bucket)
			logger.Error("upload aborted", "error", err)
			return errors.NewCommandError(err, 2)
		}
	}

	location, err := uploader.Upload(uploadOptions.InputPath, key)
	if err != nil {
		logger.Error("failed to upload report", "key", key, "error", err)
		return errors.NewCommandError(err, 2)
	}

	logger.Info("report uploaded", "bucket", bucket, "key", key, "location", location)
	fmt.Printf("Uploaded %s to %s\n", uploadOptions.InputPath, location)
	return nil
}

// resolveTarget merges the command-line overrides over the configured storage
// settings.
func resolveTarget(cfg *config.Config, options *RunOptionsUpload) (bucket, region string) {
	if cfg != nil {
		bucket = cfg.Storage.S3.Bucket
		region = cfg.Storage.S3.Region
	}
	if options.Bucket != "" {
		bucket = options.Bucket
	}
	if options.Region != "" {
		region = options.Region
	}
	return bucket, region
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadOptions.InputPath, "input", "i", "", "Path to the report file to upload.")
	UploadCmd.Flags().StringVar(&uploadOptions.Bucket, "bucket", "", "S3 bucket name (default: storage.s3.bucket from config).")
	UploadCmd.Flags().StringVar(&uploadOptions.Region, "region", "", "AWS region (default: storage.s3.region from config).")
	UploadCmd.Flags().StringVar(&uploadOptions.Key, "key", "", "Object key (default: the input file name).")
	UploadCmd.Flags().BoolVar(&uploadOptions.Overwrite, "overwrite", false, "Replace the object if it already exists.")
	UploadCmd.Flags().BoolP("help", "h", false, "Show help for the upload command.")
}
