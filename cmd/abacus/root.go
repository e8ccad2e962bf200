package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"mercator-hq/abacus/pkg/cli"
	"mercator-hq/abacus/pkg/config"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Abacus - LLM usage accounting and budget enforcement",
	Long: `Abacus tracks token usage and USD cost of LLM API calls, resolves model
prices through a three-tier table (registered, refreshed, built-in), caches
responses, and enforces cost/token budgets.

The abacus command exposes the pricing side of the library for scripts and
operators:
  - Inspect the merged pricing table
  - Price hypothetical calls
  - Pull the community price feed on demand
  - Serve metrics, health probes, and pricing queries over HTTP

For more information, visit: https://github.com/mercator-hq/abacus`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration for a subcommand. A config file named
// explicitly with --config must exist; the default path is optional and its
// absence yields the built-in defaults, so pricing commands work out of the
// box.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err == nil {
		return cfg, nil
	}

	if !rootCmd.PersistentFlags().Changed("config") && errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), nil
	}

	return nil, cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
}

// initLogging installs the configured logger as the process default. The
// --verbose flag forces debug level regardless of configuration.
func initLogging(cfg *config.Config) error {
	logCfg := cfg.Telemetry.Logging
	if verbose {
		logCfg.Level = "debug"
	}

	logger, err := logging.NewFromConfig(logCfg, os.Stderr)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	slog.SetDefault(logger.Slog())
	return nil
}

// buildResolver creates a pricing resolver reflecting the configuration:
// the built-in fallback table plus any models from the overrides file.
func buildResolver(cfg *config.Config) (*pricing.Resolver, error) {
	resolver := pricing.NewResolver()

	if cfg.Pricing.OverridesPath != "" {
		count, err := pricing.LoadOverrides(resolver, cfg.Pricing.OverridesPath)
		if err != nil {
			return nil, cli.NewConfigError("pricing.overrides_path", err.Error())
		}
		slog.Debug("loaded pricing overrides",
			"path", cfg.Pricing.OverridesPath,
			"models", count,
		)
	}

	return resolver, nil
}
