package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/hub-schedules/internal/config"
	"github.com/BruksfildServices01/hub-schedules/internal/logging"
)

var (
	cfg    *config.Config
	logger zerolog.Logger

	logLevel  string
	logFormat string
)

// rootCmd runs the HTTP server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "hub-schedules",
	Short: "Opening hours, special days and slots per hub",
	Long: `hub-schedules answers whether a hub is open at a given instant and
which appointment slots it offers on a date. Overrides beat special days,
special days beat the weekly hours.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		logger = logging.New(cfg.LogLevel, cfg.LogFormat)
	},
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, console); overrides LOG_FORMAT")

	rootCmd.AddCommand(serveCmd, migrateCmd, isOpenCmd, slotsCmd)
}
