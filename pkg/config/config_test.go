package config

import (
	"testing"
)

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig().Build()

	// Verify defaults are applied
	if cfg.Pricing.Refresh.URL != DefaultRefreshURL {
		t.Errorf("expected refresh URL %q, got %q", DefaultRefreshURL, cfg.Pricing.Refresh.URL)
	}
	if cfg.Pricing.Refresh.Schedule != DefaultRefreshSchedule {
		t.Errorf("expected refresh schedule %q, got %q", DefaultRefreshSchedule, cfg.Pricing.Refresh.Schedule)
	}
	if cfg.Telemetry.Logging.Level != DefaultLoggingLevel {
		t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Telemetry.Logging.Level)
	}
	if cfg.Cache.Backend != DefaultCacheBackend {
		t.Errorf("expected cache backend %q, got %q", DefaultCacheBackend, cfg.Cache.Backend)
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestConfigBuilder_WithCacheBackends(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *ConfigBuilder
		want     string
		wantPath string
	}{
		{
			name: "memory",
			builder: func() *ConfigBuilder {
				return NewTestConfig().WithMemoryCache()
			},
			want: "memory",
		},
		{
			name: "disk",
			builder: func() *ConfigBuilder {
				return NewTestConfig().WithDiskCache("/tmp/abacus-cache")
			},
			want:     "disk",
			wantPath: "/tmp/abacus-cache",
		},
		{
			name: "sqlite",
			builder: func() *ConfigBuilder {
				return NewTestConfig().WithSQLiteCache("/tmp/abacus.db")
			},
			want:     "sqlite",
			wantPath: "/tmp/abacus.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.builder().Build()
			if cfg.Cache.Backend != tt.want {
				t.Errorf("expected backend %q, got %q", tt.want, cfg.Cache.Backend)
			}
			if cfg.Cache.Path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, cfg.Cache.Path)
			}
		})
	}
}

func TestConfigBuilder_WithRefresh(t *testing.T) {
	cfg := NewTestConfig().
		WithRefresh("https://prices.example.com/models.json").
		Build()

	if !cfg.Pricing.Refresh.Enabled {
		t.Error("expected refresh to be enabled")
	}
	if cfg.Pricing.Refresh.URL != "https://prices.example.com/models.json" {
		t.Errorf("expected refresh URL to be set, got %q", cfg.Pricing.Refresh.URL)
	}
	if cfg.Pricing.Refresh.Schedule == "" {
		t.Error("expected refresh schedule to be set")
	}
}

func TestConfigBuilder_WithWatchedOverrides(t *testing.T) {
	cfg := NewTestConfig().
		WithWatchedOverrides("/etc/abacus/prices.yaml").
		Build()

	if cfg.Pricing.OverridesPath != "/etc/abacus/prices.yaml" {
		t.Errorf("expected overrides path to be set, got %q", cfg.Pricing.OverridesPath)
	}
	if !cfg.Pricing.WatchOverrides {
		t.Error("expected overrides watching to be enabled")
	}

	// Watching plus a path is a valid combination.
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfigBuilder_WithBudgetLimits(t *testing.T) {
	cfg := NewTestConfig().
		WithMaxCostUSD(5.0).
		WithMaxTokens(100_000).
		Build()

	if cfg.Budget.MaxCostUSD != 5.0 {
		t.Errorf("expected cost limit 5.0, got %v", cfg.Budget.MaxCostUSD)
	}
	if cfg.Budget.MaxTokens != 100_000 {
		t.Errorf("expected token limit 100000, got %d", cfg.Budget.MaxTokens)
	}
}

func TestConfigBuilder_WithTracingEnabled(t *testing.T) {
	cfg := NewTestConfig().
		WithTracingEnabled(true, "localhost:4317").
		Build()

	if !cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing to be enabled")
	}
	if cfg.Telemetry.Tracing.Endpoint != "localhost:4317" {
		t.Errorf("expected endpoint %q, got %q", "localhost:4317", cfg.Telemetry.Tracing.Endpoint)
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 {
		t.Error("expected sample ratio to be set")
	}
}

func TestConfigBuilder_ChainedCalls(t *testing.T) {
	cfg := NewTestConfig().
		WithSQLiteCache("/tmp/abacus.db").
		WithMaxCostUSD(2.5).
		WithLoggingLevel("debug").
		WithMetricsEnabled(true).
		Build()

	if cfg.Cache.Backend != "sqlite" {
		t.Error("chained WithSQLiteCache failed")
	}
	if cfg.Budget.MaxCostUSD != 2.5 {
		t.Error("chained WithMaxCostUSD failed")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Error("chained WithLoggingLevel failed")
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("chained WithMetricsEnabled failed")
	}
}

func TestMinimalConfig(t *testing.T) {
	cfg := MinimalConfig()

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	// Verify it's a valid config that would pass validation
	if err := Validate(cfg); err != nil {
		t.Errorf("minimal config should be valid, got error: %v", err)
	}
}
