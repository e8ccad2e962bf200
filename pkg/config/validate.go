package config

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "cache.backend").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access to
// all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is
// valid. All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validatePricing(&cfg.Pricing)...)
	errs = append(errs, validateCache(&cfg.Cache)...)
	errs = append(errs, validateBudget(&cfg.Budget)...)
	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validatePricing validates pricing configuration.
func validatePricing(cfg *PricingConfig) []FieldError {
	var errs []FieldError

	if cfg.WatchOverrides && cfg.OverridesPath == "" {
		errs = append(errs, FieldError{
			Field:   "pricing.watch_overrides",
			Message: "watching requires pricing.overrides_path to be set",
		})
	}

	if cfg.Refresh.Enabled {
		if cfg.Refresh.URL == "" {
			errs = append(errs, FieldError{
				Field:   "pricing.refresh.url",
				Message: "refresh URL is required when refresh is enabled",
			})
		} else if u, err := url.Parse(cfg.Refresh.URL); err != nil || u.Scheme == "" {
			errs = append(errs, FieldError{
				Field:   "pricing.refresh.url",
				Message: fmt.Sprintf("invalid URL: %q", cfg.Refresh.URL),
			})
		}
		if cfg.Refresh.Schedule == "" {
			errs = append(errs, FieldError{
				Field:   "pricing.refresh.schedule",
				Message: "refresh schedule is required when refresh is enabled",
			})
		}
	}
	if cfg.Refresh.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "pricing.refresh.timeout",
			Message: "timeout must not be negative",
		})
	}

	return errs
}

// validateCache validates cache configuration.
func validateCache(cfg *CacheConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "", "memory", "disk", "sqlite":
	default:
		errs = append(errs, FieldError{
			Field:   "cache.backend",
			Message: fmt.Sprintf("unknown backend %q (options: memory, disk, sqlite, or empty to disable)", cfg.Backend),
		})
	}

	return errs
}

// validateBudget validates budget configuration.
func validateBudget(cfg *BudgetConfig) []FieldError {
	var errs []FieldError

	if cfg.MaxCostUSD < 0 {
		errs = append(errs, FieldError{
			Field:   "budget.max_cost_usd",
			Message: "cost limit must not be negative",
		})
	}
	if cfg.MaxTokens < 0 {
		errs = append(errs, FieldError{
			Field:   "budget.max_tokens",
			Message: "token limit must not be negative",
		})
	}

	return errs
}

// validateServer validates telemetry server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.ListenAddress); err != nil {
			errs = append(errs, FieldError{
				Field:   "server.listen_address",
				Message: fmt.Sprintf("invalid listen address %q: expected host:port", cfg.ListenAddress),
			})
		}
	}
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"server.read_timeout", cfg.ReadTimeout},
		{"server.write_timeout", cfg.WriteTimeout},
		{"server.idle_timeout", cfg.IdleTimeout},
		{"server.shutdown_timeout", cfg.ShutdownTimeout},
	} {
		if d.value < 0 {
			errs = append(errs, FieldError{
				Field:   d.name,
				Message: "timeout must not be negative",
			})
		}
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q (options: debug, info, warn, error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q (options: json, text)", cfg.Logging.Format),
		})
	}

	for i, p := range cfg.Logging.RedactPatterns {
		if _, err := regexp.Compile(p.Pattern); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("telemetry.logging.redact_patterns[%d]", i),
				Message: fmt.Sprintf("invalid pattern %q: %v", p.Pattern, err),
			})
		}
	}

	if cfg.Metrics.Enabled {
		if !strings.HasPrefix(cfg.Metrics.Path, "/") {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: fmt.Sprintf("path must start with '/': %q", cfg.Metrics.Path),
			})
		}
		if cfg.Metrics.Port < 0 || cfg.Metrics.Port > 65535 {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.port",
				Message: fmt.Sprintf("port must be between 0 and 65535: %d", cfg.Metrics.Port),
			})
		}
	}

	if cfg.Tracing.Enabled {
		switch cfg.Tracing.Sampler {
		case "always", "never", "ratio":
		default:
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sampler",
				Message: fmt.Sprintf("invalid sampler %q (options: always, never, ratio)", cfg.Tracing.Sampler),
			})
		}
		if cfg.Tracing.Sampler == "ratio" && (cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1) {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: fmt.Sprintf("sample ratio must be between 0.0 and 1.0: %f", cfg.Tracing.SampleRatio),
			})
		}
		if cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "endpoint is required when tracing is enabled",
			})
		}
	}

	return errs
}
