// Package server provides the telemetry HTTP server behind "abacus serve".
//
// The server is not part of the accounting library surface: trackers,
// budgets, and caches work without it. It exists for deployments that want
// the library's operational data on the network, and it ties together the
// Prometheus collector, the health checker, and a pricing resolver with
// lifecycle management including graceful shutdown and signal handling.
//
// # Basic Usage
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolver := pricing.NewResolver()
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	srv := server.NewServer(server.Config{
//	    Listen:    &cfg.Server,
//	    Metrics:   &cfg.Telemetry.Metrics,
//	    Resolver:  resolver,
//	    Collector: collector,
//	})
//	if err := srv.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Routes
//
// The server exposes the following HTTP endpoints:
//
//   - GET /metrics - Prometheus scrape endpoint (path configurable)
//   - GET /health - Liveness probe (always returns 200)
//   - GET /ready - Readiness probe (runs registered component checks)
//   - GET /version - Build information
//   - GET /v1/pricing/models - Merged pricing table, optional ?provider= filter
//   - GET /v1/pricing/cost - Cost of a hypothetical call (?model=&prompt=&completion=)
//
// Nil components in server.Config disable the routes they back: a server
// built with only a Collector serves just the scrape endpoint and probes.
//
// # Graceful Shutdown
//
// Start blocks until the context is cancelled, SIGINT/SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests up to the configured
// shutdown timeout.
//
// # Thread Safety
//
// All server operations are safe to call concurrently.
package server
