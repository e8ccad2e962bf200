package logging

import (
	"context"
	"io"
	"testing"
)

func benchLogger(b *testing.B, cfg Config) *Logger {
	b.Helper()
	if cfg.Writer == nil {
		cfg.Writer = io.Discard
	}
	logger, err := New(cfg)
	if err != nil {
		b.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func BenchmarkLogEmit(b *testing.B) {
	b.Run("info json", func(b *testing.B) {
		logger := benchLogger(b, Config{Level: "info", Format: "json"})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Info("tracked call", "model", "gpt-4o", "prompt_tokens", 1200+i)
		}
	})

	b.Run("info text", func(b *testing.B) {
		logger := benchLogger(b, Config{Level: "info", Format: "text"})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Info("tracked call", "model", "gpt-4o", "prompt_tokens", 1200+i)
		}
	})

	// The filtered call should cost close to nothing.
	b.Run("debug filtered", func(b *testing.B) {
		logger := benchLogger(b, Config{Level: "info", Format: "json"})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Debug("cache lookup", "backend", "sqlite", "attempt", i)
		}
	})
}

func BenchmarkRedaction(b *testing.B) {
	args := []any{
		"api_key", "sk-live4Qz8f3kq29xzl81m",
		"owner", "ops@mercator.dev",
		"prompt_tokens", 1200,
		"cost_usd", 0.0065,
	}

	b.Run("logger with redaction", func(b *testing.B) {
		logger := benchLogger(b, Config{Level: "info", Format: "json", RedactPII: true})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Info("feed refresh", args...)
		}
	})

	b.Run("logger without redaction", func(b *testing.B) {
		logger := benchLogger(b, Config{Level: "info", Format: "json"})
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			logger.Info("feed refresh", args...)
		}
	})

	b.Run("redact string", func(b *testing.B) {
		redactor := NewRedactor(nil)
		input := "refresh by ops@mercator.dev with key sk-live4Qz8f3kq29xzl81m from 10.0.0.12"
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = redactor.RedactString(input)
		}
	})

	b.Run("redact args", func(b *testing.B) {
		redactor := NewRedactor(nil)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = redactor.RedactArgs(args...)
		}
	})
}

func BenchmarkChildLogger(b *testing.B) {
	logger := benchLogger(b, Config{Level: "info", Format: "json"})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = logger.With("component", "scheduler", "job", "price_refresh")
	}
}

func BenchmarkContextLogging(b *testing.B) {
	logger := benchLogger(b, Config{Level: "info", Format: "json"})
	ctx := WithRequestID(context.Background(), "req-bench")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.InfoContext(ctx, "tracked call", "model", "claude-sonnet-4-5")
	}
}
