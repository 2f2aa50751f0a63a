package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bomgrid/bomcheck/cmd/analyse"
	"github.com/bomgrid/bomcheck/cmd/batch"
	"github.com/bomgrid/bomcheck/cmd/check"
	"github.com/bomgrid/bomcheck/cmd/sample"
	"github.com/bomgrid/bomcheck/cmd/upload"
	"github.com/bomgrid/bomcheck/cmd/version"
	"github.com/bomgrid/bomcheck/pkg/shared/config"
	"github.com/bomgrid/bomcheck/pkg/shared/errors"
	"github.com/bomgrid/bomcheck/pkg/shared/logger"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "bomcheck [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Bomcheck validates Bill-of-Materials order records.",
		Long: `Bomcheck runs deterministic completeness, formatting, and consistency checks
	over BOM order documents and can escalate ambiguous orders to an LLM provider
	for supplementary analysis.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(check.CheckCmd)
	rootCmd.AddCommand(analyse.AnalyseCmd)
	rootCmd.AddCommand(batch.BatchCmd)
	rootCmd.AddCommand(sample.SampleCmd)
	rootCmd.AddCommand(upload.UploadCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return errors.ExitCode(err)
	}
	return 0
}

func initConfig() {
	// API keys may live in a .env next to the working directory; a missing
	// file is fine.
	_ = godotenv.Load()

	var err error
	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Printf("failed to initialize config file - %v \n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	l := logger.NewLogger(AppConfig, "core")

	version.Init(AppConfig)
	check.Init(AppConfig, l)
	analyse.Init(AppConfig, l)
	batch.Init(AppConfig, l)
	sample.Init(AppConfig, l)
	upload.Init(AppConfig, l)
}
