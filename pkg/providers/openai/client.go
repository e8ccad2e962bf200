package openai

import (
	"context"
	"fmt"
	"log/slog"

	"mercator-hq/abacus/pkg/providers"
)

// DefaultBaseURL is the OpenAI API endpoint used when ClientConfig.BaseURL
// is empty.
const DefaultBaseURL = "https://api.openai.com"

// Client is the OpenAI client adapter.
// It implements the providers.Client interface against OpenAI's chat
// completions API.
type Client struct {
	*providers.HTTPClient
}

// NewClient creates a new OpenAI client. The API key is required; the
// base URL defaults to the public OpenAI endpoint.
func NewClient(config providers.ClientConfig) (*Client, error) {
	if config.Name == "" {
		config.Name = providers.ProviderOpenAI
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.APIKey == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "api_key",
			Message:  "API key is required for OpenAI",
		}
	}

	c := &Client{
		HTTPClient: providers.NewHTTPClient(config),
	}

	slog.Info("OpenAI client initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
	)

	return c, nil
}

// Complete sends a chat completion request to OpenAI.
func (c *Client) Complete(ctx context.Context, req *providers.CompletionRequest) (*providers.CompletionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	openaiReq := transformRequest(req)

	url := fmt.Sprintf("%s/v1/chat/completions", c.Config().BaseURL)
	headers := map[string]string{
		"Authorization": "Bearer " + c.Config().APIKey,
		"Content-Type":  "application/json",
	}

	var openaiResp OpenAIResponse
	if err := c.DoJSONRequest(ctx, "POST", url, openaiReq, &openaiResp, headers); err != nil {
		return nil, err
	}

	resp, err := transformResponse(&openaiResp)
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
