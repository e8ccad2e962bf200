package config

import "time"

// Config is the root configuration structure for Abacus.
// It contains all configuration sections for pricing resolution, response
// caching, default budget limits, and telemetry.
type Config struct {
	// Pricing contains configuration for model price resolution including
	// the overrides file and the background feed refresh.
	Pricing PricingConfig `yaml:"pricing"`

	// Cache contains configuration for the response cache.
	Cache CacheConfig `yaml:"cache"`

	// Budget contains default budget limits applied by the CLI and by
	// applications that build scopes from configuration.
	Budget BudgetConfig `yaml:"budget"`

	// Server contains configuration for the telemetry server started by
	// "abacus serve".
	Server ServerConfig `yaml:"server"`

	// Telemetry contains configuration for observability including logging,
	// metrics, and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP telemetry server. The
// server exposes the metrics scrape endpoint, health probes, and a read-only
// pricing view; it never proxies provider traffic.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:9090", "0.0.0.0:9090").
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading a request.
	// Default: 10s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out a response
	// write. Scrapes of large registries stay well under this.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is how long a keep-alive connection may sit idle.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown before in-flight requests are dropped.
	// Default: 10s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PricingConfig contains configuration for model price resolution.
type PricingConfig struct {
	// OverridesPath is an optional YAML file of per-model price overrides.
	// Models listed there are registered on top of the built-in table.
	// Default: "" (no overrides)
	OverridesPath string `yaml:"overrides_path"`

	// WatchOverrides reloads the overrides file when it changes on disk.
	// Only meaningful when OverridesPath is set.
	// Default: false
	WatchOverrides bool `yaml:"watch_overrides"`

	// Refresh contains configuration for the background price feed refresh.
	Refresh RefreshConfig `yaml:"refresh"`
}

// RefreshConfig contains configuration for refreshing prices from the
// public model price feed.
type RefreshConfig struct {
	// Enabled controls whether the background refresh runs at all.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// URL is the price feed endpoint.
	// Default: the LiteLLM community feed
	URL string `yaml:"url"`

	// Schedule is a standard 5-field cron expression for periodic refresh.
	// Default: "0 6 * * *" (daily at 06:00)
	Schedule string `yaml:"schedule"`

	// Timeout bounds a single refresh attempt.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// OnStart triggers one refresh immediately at startup instead of
	// waiting for the first scheduled run.
	// Default: false
	OnStart bool `yaml:"on_start"`
}

// CacheConfig contains configuration for the response cache.
type CacheConfig struct {
	// Backend selects the cache implementation.
	// Options: "" (disabled), "memory", "disk", "sqlite"
	// Default: "" (disabled)
	Backend string `yaml:"backend"`

	// Path is the filesystem location for durable backends: the cache
	// directory for "disk", the database file for "sqlite". Ignored by
	// "memory". Empty uses a default under the system temp directory.
	Path string `yaml:"path"`
}

// BudgetConfig contains default budget limits. Zero values mean no limit;
// callers that need a deliberate zero cap construct limits in code.
type BudgetConfig struct {
	// MaxCostUSD is the default spend cap in US dollars.
	// Default: 0 (no limit)
	MaxCostUSD float64 `yaml:"max_cost_usd"`

	// MaxTokens is the default total token cap.
	// Default: 0 (no limit)
	MaxTokens int `yaml:"max_tokens"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactPII enables automatic redaction of sensitive values in logs:
	// API keys, bearer tokens, emails, and similar.
	// Default: true
	RedactPII bool `yaml:"redact_pii"`

	// RedactPatterns contains custom redaction patterns applied on top of
	// the built-in ones.
	RedactPatterns []RedactPattern `yaml:"redact_patterns"`
}

// RedactPattern defines a custom PII redaction pattern.
type RedactPattern struct {
	// Name is a descriptive name for the pattern.
	Name string `yaml:"name"`

	// Pattern is the regular expression to match.
	Pattern string `yaml:"pattern"`

	// Replacement is the string to replace matches with.
	Replacement string `yaml:"replacement"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Port is an optional dedicated port for the metrics endpoint
	// (0 = the embedding application decides).
	// Default: 0
	Port int `yaml:"port"`

	// Namespace is the metric name prefix.
	// Default: "abacus"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "" (none)
	Subsystem string `yaml:"subsystem"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 0.1 (10%)
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Example: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "abacus"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Insecure disables TLS for the OTLP connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
