package generic

import (
	"log/slog"

	"mercator-hq/abacus/pkg/providers"
	"mercator-hq/abacus/pkg/providers/openai"
)

// Client is a generic OpenAI-compatible client adapter.
// It supports any provider that implements the OpenAI API format,
// such as Ollama, LM Studio, vLLM, FastChat, etc.
//
// This adapter reuses the OpenAI request/response format but allows
// for custom base URLs and optional API keys.
type Client struct {
	*openai.Client
}

// NewClient creates a new generic OpenAI-compatible client. The base URL
// is required; the API key is optional since local servers typically run
// without authentication.
func NewClient(config providers.ClientConfig) (*Client, error) {
	if config.Name == "" {
		config.Name = "generic"
	}

	if config.BaseURL == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "base_url",
			Message:  "base URL is required for generic provider",
		}
	}

	// API key is optional for generic providers (local models don't need it)
	// Set a dummy key if not provided to satisfy the OpenAI adapter
	if config.APIKey == "" {
		config.APIKey = "not-required"
	}

	// Local providers typically don't need retries or big pools
	if config.MaxRetries == 0 {
		config.MaxRetries = 1
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 10
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 5
	}

	openaiClient, err := openai.NewClient(config)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Client: openaiClient,
	}

	slog.Info("generic OpenAI-compatible client initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
	)

	return c, nil
}
