// Package server provides the telemetry HTTP server behind "abacus serve".
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mercator-hq/abacus/pkg/config"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/telemetry/health"
	"mercator-hq/abacus/pkg/telemetry/metrics"
)

// Config assembles the telemetry server from its parts. Nil components
// disable the routes they back rather than failing construction, so a
// metrics-only deployment needs nothing but a collector.
type Config struct {
	// Listen carries the listen address and HTTP timeouts.
	Listen *config.ServerConfig

	// Metrics controls the scrape endpoint path and whether it is mounted.
	Metrics *config.MetricsConfig

	// Resolver backs the read-only pricing endpoints.
	Resolver *pricing.Resolver

	// Collector supplies the Prometheus registry handler.
	Collector *metrics.Collector

	// Checker backs the readiness probe. Nil gets a fresh checker with no
	// component checks, so /ready always reports ready.
	Checker *health.Checker

	// Version, Commit, and BuildTime are served at /version.
	Version   string
	Commit    string
	BuildTime string
}

// Server is the telemetry HTTP server. It exposes the Prometheus scrape
// endpoint, the liveness/readiness probes, and read-only pricing queries.
type Server struct {
	config       Config
	httpServer   *http.Server
	logger       *slog.Logger
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// NewServer creates a telemetry server from cfg.
func NewServer(cfg Config) *Server {
	if cfg.Listen == nil {
		cfg.Listen = &config.ServerConfig{
			ListenAddress:   config.DefaultListenAddress,
			ReadTimeout:     config.DefaultReadTimeout,
			WriteTimeout:    config.DefaultWriteTimeout,
			IdleTimeout:     config.DefaultIdleTimeout,
			ShutdownTimeout: config.DefaultShutdownTimeout,
		}
	}
	if cfg.Checker == nil {
		cfg.Checker = health.New(0)
	}

	return &Server{
		config:       cfg,
		logger:       slog.Default().With("component", "server"),
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown. Shutdown is
// triggered by context cancellation, SIGINT/SIGTERM, or a Shutdown call.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.httpServer = &http.Server{
		Addr:         s.config.Listen.ListenAddress,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.Listen.ReadTimeout,
		WriteTimeout: s.config.Listen.WriteTimeout,
		IdleTimeout:  s.config.Listen.IdleTimeout,
	}
	s.isRunning = true
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting telemetry server",
			"address", s.config.Listen.ListenAddress,
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		s.logger.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		close(s.shutdownChan)

		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		timeout := s.config.Listen.ShutdownTimeout
		if timeout <= 0 {
			timeout = config.DefaultShutdownTimeout
		}

		s.logger.Info("initiating graceful shutdown", "timeout", timeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("telemetry server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	if s.config.Collector != nil && (s.config.Metrics == nil || s.config.Metrics.Enabled) {
		path := config.DefaultMetricsPath
		if s.config.Metrics != nil && s.config.Metrics.Path != "" {
			path = s.config.Metrics.Path
		}
		mux.Handle(path, s.config.Collector.Handler())
	}

	health.RegisterRoutes(mux, s.config.Checker, s.config.Version, s.config.Commit, s.config.BuildTime)

	if s.config.Resolver != nil {
		mux.Handle("/v1/pricing/models", NewModelsHandler(s.config.Resolver))
		mux.Handle("/v1/pricing/cost", NewCostHandler(s.config.Resolver))
	}

	var handler http.Handler = mux
	handler = s.logRequests(handler)
	handler = s.recoverPanics(handler)

	return handler
}

// logRequests logs each request at debug level with its latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// recoverPanics converts handler panics into 500 responses.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler. It is primarily useful for
// mounting the telemetry routes inside another server.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
