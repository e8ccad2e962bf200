// Package tracing provides OpenTelemetry distributed tracing for Abacus.
//
// # Overview
//
// The tracing package implements W3C Trace Context propagation, span creation,
// and trace export to OTLP collectors. It gives visibility into tracked
// provider calls, budget decisions, and cache lookups with minimal overhead
// (<100µs per span).
//
// # Distributed Tracing
//
// Distributed tracing tracks requests as they flow through multiple services,
// creating a hierarchy of spans that represent operations. Each span records:
//   - Operation name and duration
//   - Attributes (key-value pairs)
//   - Events (timestamped logs within the span)
//   - Trace context (trace ID, span ID, sampling decision)
//
// # Trace Context Propagation
//
// The package implements W3C Trace Context (https://www.w3.org/TR/trace-context/)
// for propagating trace context across HTTP boundaries:
//
//	traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//	tracestate: congo=t61rcWkgMzE
//
// # Sampling Strategies
//
// Three sampling strategies are supported:
//   - always: Sample all traces (development/debugging)
//   - never: Sample no traces (tracing disabled)
//   - ratio: Sample a percentage of traces (production)
//
// # Usage
//
//	// Initialize tracer
//	cfg := &config.TracingConfig{
//	    Enabled:     true,
//	    Sampler:     "ratio",
//	    SampleRatio: 0.1,
//	    Endpoint:    "localhost:4317",
//	    ServiceName: "abacus",
//	}
//	tracer, err := tracing.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tracer.Shutdown(context.Background())
//
//	// Create span
//	ctx, span := tracer.Start(ctx, "abacus.provider.call")
//	defer span.End()
//
//	// Add attributes
//	span.SetAttributes(
//	    attribute.String("abacus.provider", "openai"),
//	    attribute.String("abacus.model", "gpt-4o"),
//	    attribute.Int("abacus.tokens.total", 1500),
//	    attribute.Float64("abacus.cost.usd", 0.05),
//	)
//
//	// Add event
//	span.AddEvent("budget_checked", trace.WithAttributes(
//	    attribute.String("scope", "batch-job"),
//	    attribute.Bool("exceeded", false),
//	))
//
// # Span Hierarchy
//
// Spans form a hierarchy representing the call tree:
//
//	abacus.request (10s)
//	├── abacus.budget.check (1ms)
//	├── abacus.cache.lookup (2ms)
//	├── abacus.provider.call (9.9s)
//	└── abacus.usage.track (1ms)
//
// # HTTP Integration
//
// Extract trace context from incoming HTTP requests:
//
//	ctx := tracing.Extract(r.Context(), r.Header)
//	ctx, span := tracer.Start(ctx, "handle_request")
//	defer span.End()
//
// Inject trace context into outgoing HTTP requests:
//
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, body)
//	tracing.Inject(ctx, req.Header)
//
// Or wrap a handler so extraction happens automatically:
//
//	http.Handle("/", tracing.HTTPMiddleware(handler))
//
// # Performance
//
// The tracing package is designed for minimal overhead:
//   - Span creation: <100µs per span
//   - Context propagation: <10µs
//   - Sampling decision: <1µs
//   - When disabled: <1µs (noop span)
//
// # Trace Export
//
// Spans are exported over OTLP/gRPC:
//
//	telemetry:
//	  tracing:
//	    enabled: true
//	    endpoint: localhost:4317
//	    otlp:
//	      insecure: true
//	      timeout: 10s
//
// # Attribute Helpers
//
// Common attributes can be set using helper functions:
//
//	// Provider attributes
//	tracing.SetProviderAttributes(span, "openai", "gpt-4o")
//
//	// Token and cost attributes
//	tracing.SetCostWithTokens(span, 1000, 500, 0.05)
//
//	// Cache attributes
//	tracing.SetCacheAttributes(span, true)
//
//	// Error attributes
//	tracing.SetErrorAttributes(span, err, "provider_error")
package tracing
