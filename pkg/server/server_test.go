package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mercator-hq/abacus/pkg/config"
	"mercator-hq/abacus/pkg/pricing"
	"mercator-hq/abacus/pkg/telemetry/metrics"
)

func testServer(t *testing.T) (*Server, *pricing.Resolver) {
	t.Helper()

	resolver := pricing.NewResolver()
	resolver.RegisterModel("test-model", 0.5, 1.5, "custom")

	metricsCfg := &config.MetricsConfig{
		Enabled:   true,
		Path:      "/metrics",
		Namespace: "abacus_test",
	}
	collector := metrics.NewCollector(metricsCfg, nil)

	srv := NewServer(Config{
		Metrics:   metricsCfg,
		Resolver:  resolver,
		Collector: collector,
		Version:   "1.0.0-test",
		Commit:    "abc123",
		BuildTime: "2026-08-25",
	})

	return srv, resolver
}

// TestNewServer_Defaults tests that nil components get usable defaults.
func TestNewServer_Defaults(t *testing.T) {
	srv := NewServer(Config{})

	if srv.config.Listen == nil {
		t.Fatal("expected non-nil listen config")
	}
	if srv.config.Listen.ListenAddress != config.DefaultListenAddress {
		t.Errorf("expected default listen address %q, got %q",
			config.DefaultListenAddress, srv.config.Listen.ListenAddress)
	}
	if srv.config.Checker == nil {
		t.Error("expected non-nil checker")
	}
	if srv.IsRunning() {
		t.Error("expected new server to not be running")
	}
}

// TestHandler_Probes tests the probe routes.
func TestHandler_Probes(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

// TestHandler_Version tests that /version serves the configured build info.
func TestHandler_Version(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	var info struct {
		Version string `json:"version"`
		Commit  string `json:"commit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if info.Version != "1.0.0-test" {
		t.Errorf("expected version '1.0.0-test', got %q", info.Version)
	}
	if info.Commit != "abc123" {
		t.Errorf("expected commit 'abc123', got %q", info.Commit)
	}
}

// TestHandler_Metrics tests the Prometheus scrape endpoint.
func TestHandler_Metrics(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if !strings.Contains(rec.Body.String(), "abacus_test") {
		t.Error("expected metrics output to contain the configured namespace")
	}
}

// TestHandler_MetricsDisabled tests that disabling metrics removes the route.
func TestHandler_MetricsDisabled(t *testing.T) {
	metricsCfg := &config.MetricsConfig{
		Enabled:   false,
		Path:      "/metrics",
		Namespace: "abacus_test_disabled",
	}
	srv := NewServer(Config{
		Metrics:   metricsCfg,
		Collector: metrics.NewCollector(metricsCfg, nil),
	})
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

// TestModelsHandler tests the pricing table endpoint.
func TestModelsHandler(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	t.Run("lists merged table", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/models", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response struct {
			Count  int                           `json:"count"`
			Models map[string]pricing.ModelPrice `json:"models"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if response.Count == 0 {
			t.Error("expected non-empty model table")
		}
		if _, ok := response.Models["test-model"]; !ok {
			t.Error("expected registered model in listing")
		}
	})

	t.Run("provider filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/models?provider=custom", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		var response struct {
			Count  int                           `json:"count"`
			Models map[string]pricing.ModelPrice `json:"models"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if response.Count != 1 {
			t.Errorf("expected 1 custom model, got %d", response.Count)
		}
		for model, price := range response.Models {
			if price.Provider != "custom" {
				t.Errorf("model %q has provider %q, expected custom", model, price.Provider)
			}
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/models", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	})
}

// TestCostHandler tests the cost calculation endpoint.
func TestCostHandler(t *testing.T) {
	srv, _ := testServer(t)
	handler := srv.Handler()

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCost   float64
	}{
		{
			name:           "valid request",
			query:          "model=test-model&prompt=1000&completion=2000",
			expectedStatus: http.StatusOK,
			expectedCost:   3.5, // 1000/1000*0.5 + 2000/1000*1.5
		},
		{
			name:           "absent counts default to zero",
			query:          "model=test-model",
			expectedStatus: http.StatusOK,
			expectedCost:   0,
		},
		{
			name:           "missing model",
			query:          "prompt=1000",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown model",
			query:          "model=no-such-model&prompt=100&completion=100",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid prompt count",
			query:          "model=test-model&prompt=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative completion count",
			query:          "model=test-model&completion=-5",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/pricing/cost?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response struct {
				CostUSD float64 `json:"cost_usd"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}

			if response.CostUSD != tt.expectedCost {
				t.Errorf("expected cost %v, got %v", tt.expectedCost, response.CostUSD)
			}
		})
	}
}

// TestRecoverPanics tests that handler panics become 500 responses.
func TestRecoverPanics(t *testing.T) {
	srv, _ := testServer(t)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := srv.recoverPanics(panicking)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

// TestStartShutdown tests the server lifecycle.
func TestStartShutdown(t *testing.T) {
	srv := NewServer(Config{
		Listen: &config.ServerConfig{
			ListenAddress:   "127.0.0.1:0",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(context.Background())
	}()

	// Wait for the listener goroutine to come up
	deadline := time.Now().Add(2 * time.Second)
	for !srv.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !srv.IsRunning() {
		t.Fatal("server did not start")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected nil error from Start, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Start did not return after shutdown")
	}

	if srv.IsRunning() {
		t.Error("expected server to report not running after shutdown")
	}
}

// TestShutdown_NotRunning tests shutdown on a server that never started.
func TestShutdown_NotRunning(t *testing.T) {
	srv := NewServer(Config{})

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
