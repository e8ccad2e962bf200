package tracing

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Trace Context Propagation
//
// Outbound HTTP requests carry their trace context in W3C Trace Context
// headers (traceparent, tracestate) so provider calls can be correlated
// with the application trace that caused them:
//
//	traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// The global propagator is installed by New; before that, Inject and
// Extract are no-ops.

// Propagator returns the configured text map propagator.
// This is typically a composite propagator that handles both
// W3C Trace Context and W3C Baggage.
func Propagator() propagation.TextMapPropagator {
	return otel.GetTextMapPropagator()
}

// Inject injects trace context into HTTP headers.
//
// This is called on the client side before making an HTTP request:
//
//	req, _ := http.NewRequestWithContext(ctx, "POST", url, body)
//	tracing.Inject(ctx, req.Header)
//	resp, err := client.Do(req)
func Inject(ctx context.Context, headers http.Header) {
	Propagator().Inject(ctx, propagation.HeaderCarrier(headers))
}

// Extract extracts trace context from HTTP headers and returns a context
// carrying it. If no trace context is found, the original context is
// returned.
func Extract(ctx context.Context, headers http.Header) context.Context {
	return Propagator().Extract(ctx, propagation.HeaderCarrier(headers))
}

// InjectToMap injects trace context into a string map.
// This is useful for injecting context into non-HTTP destinations.
func InjectToMap(ctx context.Context, carrier map[string]string) {
	Propagator().Inject(ctx, propagation.MapCarrier(carrier))
}

// ExtractFromMap extracts trace context from a string map.
// This is useful for extracting context from non-HTTP sources.
func ExtractFromMap(ctx context.Context, carrier map[string]string) context.Context {
	return Propagator().Extract(ctx, propagation.MapCarrier(carrier))
}

// HTTPMiddleware extracts trace context from incoming requests so spans
// started by downstream handlers (tracked provider calls, budget scopes)
// join the caller's trace. The trace and span IDs are echoed in X-Trace-ID
// and X-Span-ID response headers when a valid context is present, which
// makes correlating a response with its trace straightforward.
//
//	http.Handle("/", tracing.HTTPMiddleware(handler))
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := Extract(r.Context(), r.Header)

		if sc := SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			w.Header().Set("X-Trace-ID", sc.TraceID().String())
			w.Header().Set("X-Span-ID", sc.SpanID().String())
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// traceparent field widths: version, trace ID, parent ID, flags.
var traceParentWidths = [4]int{2, 32, 16, 2}

// ValidateTraceParent reports whether a traceparent header is well formed
// per the W3C Trace Context spec: four dash-separated lowercase hex fields
// (version, 128-bit trace ID, 64-bit parent ID, 8-bit flags), with
// all-zero trace and parent IDs rejected.
func ValidateTraceParent(traceparent string) bool {
	parts := strings.Split(traceparent, "-")
	if len(parts) != 4 {
		return false
	}
	for i, part := range parts {
		if len(part) != traceParentWidths[i] || !isHexString(part) {
			return false
		}
	}
	// All-zero IDs are explicitly invalid.
	if parts[1] == strings.Repeat("0", 32) || parts[2] == strings.Repeat("0", 16) {
		return false
	}
	return true
}

// isHexString checks if a string contains only hexadecimal characters.
func isHexString(s string) bool {
	return !strings.ContainsFunc(s, func(c rune) bool {
		switch {
		case c >= '0' && c <= '9':
			return false
		case c >= 'a' && c <= 'f':
			return false
		case c >= 'A' && c <= 'F':
			return false
		}
		return true
	})
}

// ParseTraceParent splits a traceparent header into its components.
// Returns empty strings if the header is invalid.
func ParseTraceParent(traceparent string) (version, traceID, parentID, flags string, valid bool) {
	if !ValidateTraceParent(traceparent) {
		return "", "", "", "", false
	}

	parts := strings.Split(traceparent, "-")
	return parts[0], parts[1], parts[2], parts[3], true
}

// IsSampledFromTraceParent reports whether the sampled bit is set in a
// traceparent header's flags field.
func IsSampledFromTraceParent(traceparent string) bool {
	_, _, _, flags, valid := ParseTraceParent(traceparent)
	if !valid {
		return false
	}

	b, err := strconv.ParseUint(flags, 16, 8)
	if err != nil {
		return false
	}
	return b&0x01 == 0x01
}

// PropagationDebugInfo breaks down the propagation headers of a request
// into a flat map for diagnostic logging.
func PropagationDebugInfo(headers http.Header) map[string]string {
	info := make(map[string]string)

	if traceparent := headers.Get("traceparent"); traceparent != "" {
		info["traceparent"] = traceparent
		version, traceID, parentID, flags, valid := ParseTraceParent(traceparent)
		if valid {
			info["version"] = version
			info["trace_id"] = traceID
			info["parent_id"] = parentID
			info["flags"] = flags
			info["sampled"] = strconv.FormatBool(IsSampledFromTraceParent(traceparent))
		} else {
			info["error"] = "invalid traceparent format"
		}
	} else {
		info["traceparent"] = "not present"
	}

	if tracestate := headers.Get("tracestate"); tracestate != "" {
		info["tracestate"] = tracestate
	} else {
		info["tracestate"] = "not present"
	}

	return info
}
