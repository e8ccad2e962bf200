package config

import (
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input Config
		check func(*testing.T, *Config)
	}{
		{
			name:  "empty config gets all defaults",
			input: Config{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Pricing.Refresh.URL != DefaultRefreshURL {
					t.Errorf("expected refresh URL %q, got %q", DefaultRefreshURL, cfg.Pricing.Refresh.URL)
				}
				if cfg.Pricing.Refresh.Schedule != DefaultRefreshSchedule {
					t.Errorf("expected refresh schedule %q, got %q", DefaultRefreshSchedule, cfg.Pricing.Refresh.Schedule)
				}
				if cfg.Pricing.Refresh.Timeout != DefaultRefreshTimeout {
					t.Errorf("expected refresh timeout %v, got %v", DefaultRefreshTimeout, cfg.Pricing.Refresh.Timeout)
				}
				if cfg.Telemetry.Logging.Level != DefaultLoggingLevel {
					t.Errorf("expected logging level %q, got %q", DefaultLoggingLevel, cfg.Telemetry.Logging.Level)
				}
				if cfg.Telemetry.Logging.Format != DefaultLoggingFormat {
					t.Errorf("expected logging format %q, got %q", DefaultLoggingFormat, cfg.Telemetry.Logging.Format)
				}
				if cfg.Telemetry.Metrics.Path != DefaultMetricsPath {
					t.Errorf("expected metrics path %q, got %q", DefaultMetricsPath, cfg.Telemetry.Metrics.Path)
				}
				if cfg.Telemetry.Metrics.Namespace != DefaultNamespace {
					t.Errorf("expected metrics namespace %q, got %q", DefaultNamespace, cfg.Telemetry.Metrics.Namespace)
				}
				if cfg.Telemetry.Tracing.Sampler != DefaultTracingSampler {
					t.Errorf("expected sampler %q, got %q", DefaultTracingSampler, cfg.Telemetry.Tracing.Sampler)
				}
				if cfg.Telemetry.Tracing.SampleRatio != DefaultTracingRatio {
					t.Errorf("expected sample ratio %v, got %v", DefaultTracingRatio, cfg.Telemetry.Tracing.SampleRatio)
				}
				if cfg.Telemetry.Tracing.ServiceName != DefaultTracingService {
					t.Errorf("expected service name %q, got %q", DefaultTracingService, cfg.Telemetry.Tracing.ServiceName)
				}
				if cfg.Telemetry.Tracing.OTLP.Timeout != DefaultOTLPTimeout {
					t.Errorf("expected OTLP timeout %v, got %v", DefaultOTLPTimeout, cfg.Telemetry.Tracing.OTLP.Timeout)
				}
				if cfg.Server.ListenAddress != DefaultListenAddress {
					t.Errorf("expected listen address %q, got %q", DefaultListenAddress, cfg.Server.ListenAddress)
				}
				if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
					t.Errorf("expected shutdown timeout %v, got %v", DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
				}
			},
		},
		{
			name: "existing server settings are preserved",
			input: Config{
				Server: ServerConfig{
					ListenAddress: "0.0.0.0:8125",
					ReadTimeout:   time.Minute,
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.ListenAddress != "0.0.0.0:8125" {
					t.Error("existing listen address was overwritten")
				}
				if cfg.Server.ReadTimeout != time.Minute {
					t.Error("existing read timeout was overwritten")
				}
				if cfg.Server.WriteTimeout != DefaultWriteTimeout {
					t.Error("write timeout should get default when not set")
				}
			},
		},
		{
			name: "existing values are preserved",
			input: Config{
				Pricing: PricingConfig{
					Refresh: RefreshConfig{
						URL:      "https://prices.example.com/models.json",
						Timeout:  30 * time.Second,
						Schedule: "*/10 * * * *",
					},
				},
				Telemetry: TelemetryConfig{
					Logging: LoggingConfig{Level: "debug"},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Pricing.Refresh.URL != "https://prices.example.com/models.json" {
					t.Error("existing refresh URL was overwritten")
				}
				if cfg.Pricing.Refresh.Timeout != 30*time.Second {
					t.Error("existing refresh timeout was overwritten")
				}
				if cfg.Pricing.Refresh.Schedule != "*/10 * * * *" {
					t.Error("existing refresh schedule was overwritten")
				}
				if cfg.Telemetry.Logging.Level != "debug" {
					t.Error("existing logging level was overwritten")
				}
				// Check that unset values got defaults
				if cfg.Telemetry.Logging.Format != DefaultLoggingFormat {
					t.Error("logging format should get default when not set")
				}
			},
		},
		{
			name: "cache and budget sections left alone",
			input: Config{
				Cache:  CacheConfig{Backend: "sqlite", Path: "/tmp/abacus.db"},
				Budget: BudgetConfig{MaxCostUSD: 1.5, MaxTokens: 50_000},
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Cache.Backend != "sqlite" || cfg.Cache.Path != "/tmp/abacus.db" {
					t.Errorf("cache section changed: %+v", cfg.Cache)
				}
				if cfg.Budget.MaxCostUSD != 1.5 || cfg.Budget.MaxTokens != 50_000 {
					t.Errorf("budget section changed: %+v", cfg.Budget)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.input
			ApplyDefaults(&cfg)
			tt.check(t, &cfg)
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	var cfg Config

	// Apply defaults twice
	ApplyDefaults(&cfg)
	firstPass := cfg

	ApplyDefaults(&cfg)

	if cfg.Pricing.Refresh.URL != firstPass.Pricing.Refresh.URL {
		t.Error("ApplyDefaults should be idempotent")
	}
	if cfg.Telemetry.Tracing.SampleRatio != firstPass.Telemetry.Tracing.SampleRatio {
		t.Error("ApplyDefaults should be idempotent")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Boolean defaults only DefaultConfig can set.
	if !cfg.Telemetry.Logging.RedactPII {
		t.Error("expected PII redaction enabled by default")
	}
	if !cfg.Telemetry.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
	if !cfg.Telemetry.Tracing.OTLP.Insecure {
		t.Error("expected insecure OTLP by default")
	}
	if cfg.Telemetry.Tracing.Enabled {
		t.Error("expected tracing disabled by default")
	}

	// And the rest of the defaults on top.
	if cfg.Pricing.Refresh.URL != DefaultRefreshURL {
		t.Errorf("expected refresh URL %q, got %q", DefaultRefreshURL, cfg.Pricing.Refresh.URL)
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("default config should be valid, got error: %v", err)
	}
}
