// Package health provides the probe endpoints for the Abacus telemetry
// server.
//
// # Overview
//
// The health package implements liveness and readiness probes for Kubernetes
// and other orchestration systems, along with a version information endpoint.
// Readiness aggregates named component checks; this package ships checks for
// the components a serve process runs: the pricing resolver, the feed
// refresh scheduler, and the overrides watcher.
//
// # Endpoints
//
//   - /health: Liveness probe - indicates the process is running
//   - /ready: Readiness probe - runs all registered component checks
//   - /version: Build information - version, commit, build time
//
// # Usage
//
//	checker := health.New(5 * time.Second)
//
//	checker.RegisterCheck(health.CheckPricing, health.PricingCheck(resolver))
//	checker.RegisterCheck(health.CheckScheduler, health.SchedulerCheck(scheduler))
//
//	mux := http.NewServeMux()
//	health.RegisterRoutes(mux, checker, "1.0.0", "abc123", "2026-08-25")
//
// # Liveness vs Readiness
//
// Liveness (/health) only says the process is alive: 200 as long as the
// handler can run at all. Orchestrators restart the pod when it fails.
//
// Readiness (/ready) says the process is worth routing to: every registered
// component check must pass, otherwise the endpoint reports 503 with a
// degraded status and the per-component failures. A serve process whose
// refresh scheduler died keeps running (stale prices still resolve) but
// drops out of rotation until it recovers.
//
// # Component Checks
//
// A check is any func(ctx) error; nil means healthy. Checks run
// concurrently under a shared per-check timeout, so one slow component
// cannot stall the probe. Custom checks register alongside the built-ins:
//
//	checker.RegisterCheck("cache_dir", func(ctx context.Context) error {
//	    _, err := os.Stat(cacheDir)
//	    return err
//	})
package health
