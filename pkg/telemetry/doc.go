// Package telemetry groups the observability subpackages used across
// abacus: structured logging, Prometheus metrics, OpenTelemetry tracing,
// and health probes.
//
// Each subpackage stands on its own; nothing here forces all four on a
// program. A library embedding just the tracker typically wires only
// metrics, while "abacus serve" uses the full set.
//
//   - logging: slog-based structured logging with text and JSON output
//   - metrics: Prometheus collectors for usage, pricing, and budget activity
//   - tracing: OpenTelemetry spans around tracked completions
//   - health: liveness/readiness checking with pluggable component checks
//
// Configuration for all four lives under config.TelemetryConfig, so one
// YAML block configures the whole surface.
package telemetry
