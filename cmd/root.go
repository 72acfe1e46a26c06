package cmd

import (
	"fmt"
	"os"

	"model-binder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "model-binder",
	Short: "Model Binder Service",
	Long: `Model Binder turns loosely typed input into typed models.
It binds from environment, config files, HTTP requests, stored documents
and database rows, and reports every field it could not bind.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding .env and config.yaml")
}
