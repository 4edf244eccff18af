// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/ar-aging/internal/common"
	"fjacquet/ar-aging/internal/config"
	"fjacquet/ar-aging/internal/fileutils"
	"fjacquet/ar-aging/internal/logging"
	"fjacquet/ar-aging/internal/sample"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, populated before any command runs
	Cfg *config.Config

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ar-aging",
		Short: "A CLI tool to ingest accounts-receivable aging ledgers and classify payment risk.",
		Long: `ar-aging ingests a delimited-text aging ledger (comma or semicolon separated),
classifies every receivable as Current, Overdue or Impaired based on aging days,
and exports the resulting audit records as CSV or an aging summary report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ar-aging!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg

			// Propagate the configured logger to the leaf packages
			common.SetLogger(Log)
			sample.SetLogger(Log)
			fileutils.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.Export.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input ledger file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetLogger returns the shared logger wrapped in the logging.Logger interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
