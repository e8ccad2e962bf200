package anthropic

import (
	"context"
	"fmt"
	"log/slog"

	"mercator-hq/abacus/pkg/providers"
)

// DefaultBaseURL is the Anthropic API endpoint used when ClientConfig.BaseURL
// is empty.
const DefaultBaseURL = "https://api.anthropic.com"

// DefaultAnthropicVersion is the API version sent in the anthropic-version
// header.
const DefaultAnthropicVersion = "2023-06-01"

// Client is the Anthropic client adapter.
// It implements the providers.Client interface against Anthropic's
// Messages API.
type Client struct {
	*providers.HTTPClient
}

// NewClient creates a new Anthropic client. The API key is required; the
// base URL defaults to the public Anthropic endpoint.
func NewClient(config providers.ClientConfig) (*Client, error) {
	if config.Name == "" {
		config.Name = providers.ProviderAnthropic
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.APIKey == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "api_key",
			Message:  "API key is required for Anthropic",
		}
	}

	c := &Client{
		HTTPClient: providers.NewHTTPClient(config),
	}

	slog.Info("Anthropic client initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
	)

	return c, nil
}

// Complete sends a messages request to Anthropic.
func (c *Client) Complete(ctx context.Context, req *providers.CompletionRequest) (*providers.CompletionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	anthropicReq, err := transformRequest(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/messages", c.Config().BaseURL)
	headers := map[string]string{
		"x-api-key":         c.Config().APIKey,
		"anthropic-version": DefaultAnthropicVersion,
		"Content-Type":      "application/json",
	}

	var anthropicResp AnthropicResponse
	if err := c.DoJSONRequest(ctx, "POST", url, anthropicReq, &anthropicResp, headers); err != nil {
		return nil, err
	}

	resp, err := transformResponse(&anthropicResp)
	if err != nil {
		return nil, &providers.ParseError{
			Provider: c.Name(),
			Cause:    err,
		}
	}

	slog.Debug("completion request succeeded",
		"provider", c.Name(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}

// validateRequest validates the completion request.
func validateRequest(req *providers.CompletionRequest) error {
	if req == nil {
		return &providers.ValidationError{
			Field:   "request",
			Message: "request cannot be nil",
		}
	}

	if req.Model == "" {
		return &providers.ValidationError{
			Field:   "model",
			Message: "model is required",
		}
	}

	if len(req.Messages) == 0 {
		return &providers.ValidationError{
			Field:   "messages",
			Message: "at least one message is required",
		}
	}

	return nil
}
