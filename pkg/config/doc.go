// Package config provides configuration management for Abacus.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with comprehensive validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention ABACUS_SECTION_FIELD.
// For example:
//
//   - ABACUS_CACHE_BACKEND overrides cache.backend
//   - ABACUS_BUDGET_MAX_COST_USD overrides budget.max_cost_usd
//   - ABACUS_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
// For application-wide configuration access, use the singleton pattern:
//
//	// At application startup
//	if err := config.Initialize("config.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anywhere in the application
//	cfg := config.GetConfig()
//	fmt.Println(cfg.Cache.Backend)
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
//
// # Validation
//
// All configuration is validated automatically during loading. Validation includes:
//
//   - Enum checks (e.g., cache backend, logging level and format)
//   - Range validation (e.g., sample ratio must be 0.0-1.0)
//   - Format validation (e.g., valid refresh URL, compilable redaction patterns)
//   - Logical validation (e.g., watching overrides requires an overrides path)
//
// Validation errors include field paths and helpful messages:
//
//	configuration validation failed with 2 errors:
//	  - cache.backend: unknown backend "redis" (options: memory, disk, sqlite, or empty to disable)
//	  - telemetry.tracing.endpoint: endpoint is required when tracing is enabled
//
// # Example Configuration
//
// Here is a minimal configuration file:
//
//	pricing:
//	  overrides_path: "./prices.yaml"
//	  refresh:
//	    enabled: true
//	    schedule: "0 6 * * *"
//
//	cache:
//	  backend: "sqlite"
//	  path: "./abacus-cache.db"
//
//	budget:
//	  max_cost_usd: 10.0
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//
// # Thread Safety
//
// All configuration access is thread-safe. The singleton pattern uses read-write
// locks to allow concurrent reads while protecting against concurrent writes during
// reload operations.
package config
