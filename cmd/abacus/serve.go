package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"mercator-hq/abacus/pkg/cli"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/server"
	"mercator-hq/abacus/pkg/telemetry/health"
	"mercator-hq/abacus/pkg/telemetry/metrics"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the telemetry server",
	Long: `Start the telemetry server with the specified configuration.

The server exposes the Prometheus scrape endpoint, liveness/readiness
probes, and read-only pricing queries. When configured it also keeps the
pricing tables current: the overrides watcher reloads the overrides file on
change, and the refresh scheduler pulls the remote feed on a cron schedule.

Examples:
  # Start with default config
  abacus serve

  # Start with custom config
  abacus serve --config /etc/abacus/config.yaml

  # Override listen address
  abacus serve --listen 0.0.0.0:9090

  # Validate config without starting the server
  abacus serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = serveFlags.logLevel
	}

	if err := initLogging(cfg); err != nil {
		return err
	}

	if serveFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("Abacus v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Pricing resolver with configured overrides
	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}

	// Metrics registry; pricing activity shows up on the scrape endpoint
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	resolver.SetMetrics(collector.Pricing())

	counts := resolver.Counts()
	fmt.Printf("✓ Pricing resolver ready (%d built-in, %d override models)\n",
		counts.Fallback, counts.Registered)

	// Overrides watcher keeps the registered tier in sync with the file
	var watcher *pricing.Watcher
	if cfg.Pricing.WatchOverrides && cfg.Pricing.OverridesPath != "" {
		watcher, err = pricing.NewWatcher(resolver, &pricing.WatcherConfig{
			Path: cfg.Pricing.OverridesPath,
		})
		if err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to create overrides watcher: %w", err))
		}
		go func() {
			if err := watcher.Watch(ctx); err != nil {
				slog.Warn("overrides watcher stopped", "error", err)
			}
		}()
		defer watcher.Stop()

		fmt.Printf("✓ Watching overrides file: %s\n", cfg.Pricing.OverridesPath)
	}

	// Scheduled feed refresh
	var scheduler *pricing.Scheduler
	if cfg.Pricing.Refresh.Enabled {
		if cfg.Pricing.Refresh.OnStart {
			go func() {
				if resolver.Refresh(ctx, cfg.Pricing.Refresh.URL, cfg.Pricing.Refresh.Timeout) {
					slog.Info("startup price refresh complete", "models", resolver.Counts().Refreshed)
				}
			}()
		}

		scheduler = pricing.NewScheduler(resolver, pricing.SchedulerConfig{
			Schedule: cfg.Pricing.Refresh.Schedule,
			FeedURL:  cfg.Pricing.Refresh.URL,
			Timeout:  cfg.Pricing.Refresh.Timeout,
		})
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to start refresh scheduler: %w", err))
		}
		defer scheduler.Stop()

		if next := scheduler.NextRun(); next != nil {
			fmt.Printf("✓ Refresh scheduler started (next run %s)\n", next.Format(time.RFC3339))
		}
	}

	// Readiness checks for the components that can silently die
	checker := health.New(0)
	checker.RegisterCheck(health.CheckPricing, health.PricingCheck(resolver))
	checker.RegisterCheck(health.CheckScheduler, health.SchedulerCheck(scheduler))
	checker.RegisterCheck(health.CheckWatcher, health.WatcherCheck(watcher))

	srv := server.NewServer(server.Config{
		Listen:    &cfg.Server,
		Metrics:   &cfg.Telemetry.Metrics,
		Resolver:  resolver,
		Collector: collector,
		Checker:   checker,
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	fmt.Println()
	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/health\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for shutdown signal or server error
	sigChan := cli.WaitForShutdown()

	select {
	case err := <-errChan:
		if err != nil {
			return cli.NewCommandError("serve", err)
		}
		fmt.Println("✓ Server stopped")
		return nil
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal %s, shutting down gracefully...\n", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
			return cli.NewCommandError("serve", err)
		}

		fmt.Println("✓ Server stopped")
		return nil
	}
}
