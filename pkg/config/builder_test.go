package config

// ConfigBuilder provides a fluent API for building Config instances in tests.
// It starts with default values and allows selective overrides.
type ConfigBuilder struct {
	cfg Config
}

// NewTestConfig creates a new ConfigBuilder with sensible defaults for testing.
// The resulting configuration is valid and can be used immediately.
func NewTestConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: *DefaultConfig()}
}

// Build returns the built Config instance.
func (b *ConfigBuilder) Build() *Config {
	return &b.cfg
}

// WithOverridesPath sets the pricing overrides file path.
func (b *ConfigBuilder) WithOverridesPath(path string) *ConfigBuilder {
	b.cfg.Pricing.OverridesPath = path
	return b
}

// WithWatchedOverrides sets the pricing overrides file path and enables
// watching it for changes.
func (b *ConfigBuilder) WithWatchedOverrides(path string) *ConfigBuilder {
	b.cfg.Pricing.OverridesPath = path
	b.cfg.Pricing.WatchOverrides = true
	return b
}

// WithRefresh enables the price feed refresh against the given URL.
func (b *ConfigBuilder) WithRefresh(url string) *ConfigBuilder {
	b.cfg.Pricing.Refresh.Enabled = true
	b.cfg.Pricing.Refresh.URL = url
	if b.cfg.Pricing.Refresh.Schedule == "" {
		b.cfg.Pricing.Refresh.Schedule = DefaultRefreshSchedule
	}
	return b
}

// WithMemoryCache selects the in-memory cache backend.
func (b *ConfigBuilder) WithMemoryCache() *ConfigBuilder {
	b.cfg.Cache.Backend = "memory"
	b.cfg.Cache.Path = ""
	return b
}

// WithDiskCache selects the disk cache backend rooted at dir.
func (b *ConfigBuilder) WithDiskCache(dir string) *ConfigBuilder {
	b.cfg.Cache.Backend = "disk"
	b.cfg.Cache.Path = dir
	return b
}

// WithSQLiteCache selects the SQLite cache backend at the given database path.
func (b *ConfigBuilder) WithSQLiteCache(path string) *ConfigBuilder {
	b.cfg.Cache.Backend = "sqlite"
	b.cfg.Cache.Path = path
	return b
}

// WithMaxCostUSD sets the default budget spend cap.
func (b *ConfigBuilder) WithMaxCostUSD(limit float64) *ConfigBuilder {
	b.cfg.Budget.MaxCostUSD = limit
	return b
}

// WithMaxTokens sets the default budget token cap.
func (b *ConfigBuilder) WithMaxTokens(limit int) *ConfigBuilder {
	b.cfg.Budget.MaxTokens = limit
	return b
}

// WithLoggingLevel sets the logging level.
func (b *ConfigBuilder) WithLoggingLevel(level string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Level = level
	return b
}

// WithLoggingFormat sets the logging format.
func (b *ConfigBuilder) WithLoggingFormat(format string) *ConfigBuilder {
	b.cfg.Telemetry.Logging.Format = format
	return b
}

// WithMetricsEnabled sets whether metrics are enabled.
func (b *ConfigBuilder) WithMetricsEnabled(enabled bool) *ConfigBuilder {
	b.cfg.Telemetry.Metrics.Enabled = enabled
	return b
}

// WithTracingEnabled sets whether tracing is enabled.
func (b *ConfigBuilder) WithTracingEnabled(enabled bool, endpoint string) *ConfigBuilder {
	b.cfg.Telemetry.Tracing.Enabled = enabled
	b.cfg.Telemetry.Tracing.Endpoint = endpoint
	if b.cfg.Telemetry.Tracing.SampleRatio == 0 {
		b.cfg.Telemetry.Tracing.SampleRatio = DefaultTracingRatio
	}
	return b
}

// MinimalConfig returns a minimal valid configuration for testing.
// This is useful for tests that don't care about most configuration values.
func MinimalConfig() *Config {
	return NewTestConfig().Build()
}
