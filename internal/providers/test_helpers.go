package providers

import (
	"time"

	"mercator-hq/abacus/pkg/providers"
)

// TestConfig returns a client configuration suitable for tests: short
// timeout, few retries, small connection pool.
func TestConfig(name string) providers.ClientConfig {
	return providers.ClientConfig{
		Name:                name,
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Timeout:             5 * time.Second,
		MaxRetries:          2,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config pointed at baseURL, usually a
// MockServer.
func TestConfigWithURL(name, baseURL string) providers.ClientConfig {
	config := TestConfig(name)
	config.BaseURL = baseURL
	return config
}

// TestMessage builds a single chat message.
func TestMessage(role, content string) providers.Message {
	return providers.Message{Role: role, Content: content}
}

// TestCompletionRequest builds a completion request with modest sampling
// settings.
func TestCompletionRequest(model string, messages ...providers.Message) *providers.CompletionRequest {
	return &providers.CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   100,
	}
}
