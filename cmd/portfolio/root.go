package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/config"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio renders a single-page personal portfolio. It can serve the page
with per-visitor theme persistence, or build a static copy for any file host.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// loadConfig reads and validates the configuration, applying flag overrides.
func loadConfig() (*config.Config, portfolio.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := portfolio.NewDefaultLogger()
	logger.SetLevel(portfolio.ParseLogLevel(cfg.LogLevel))
	return cfg, logger, nil
}
