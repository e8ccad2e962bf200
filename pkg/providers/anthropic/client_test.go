package anthropic

import (
	"context"
	"strings"
	"testing"

	testhelpers "mercator-hq/abacus/internal/providers"
	"mercator-hq/abacus/pkg/providers"
)

func TestClient_Complete(t *testing.T) {
	// Create mock server
	mock := testhelpers.NewMockServer()
	defer mock.Close()

	// Configure mock response
	mock.SetResponse("/v1/messages", testhelpers.MockResponse{
		StatusCode: 200,
		Body:       testhelpers.MockAnthropicResponse("Hello, world!", "claude-3-5-sonnet-20241022"),
	})

	// Create client
	client, err := NewClient(testhelpers.TestConfigWithURL("anthropic", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	// Send completion
	ctx := context.Background()
	resp, err := client.Complete(ctx, &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: "Hello"},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	// Verify response
	if resp.Model != "claude-3-5-sonnet-20241022" {
		t.Errorf("expected model claude-3-5-sonnet-20241022, got %s", resp.Model)
	}

	if resp.Content != "Hello, world!" {
		t.Errorf("expected content %q, got %q", "Hello, world!", resp.Content)
	}

	// input_tokens + output_tokens from the mock payload
	if resp.Usage.TotalTokens != 30 {
		t.Errorf("expected total tokens 30, got %d", resp.Usage.TotalTokens)
	}

	if resp.FinishReason != providers.FinishReasonStop {
		t.Errorf("expected finish reason %q, got %q", providers.FinishReasonStop, resp.FinishReason)
	}
}

func TestClient_ValidationError(t *testing.T) {
	client, err := NewClient(testhelpers.TestConfig("anthropic"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	tests := []struct {
		name    string
		req     *providers.CompletionRequest
		wantErr string
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: "request cannot be nil",
		},
		{
			name: "empty model",
			req: &providers.CompletionRequest{
				Messages: []providers.Message{
					{Role: providers.RoleUser, Content: "Hello"},
				},
			},
			wantErr: "model is required",
		},
		{
			name: "empty messages",
			req: &providers.CompletionRequest{
				Model:    "claude-3-5-sonnet-20241022",
				Messages: []providers.Message{},
			},
			wantErr: "at least one message is required",
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Complete(ctx, tt.req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			validationErr, ok := err.(*providers.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}

			if !strings.Contains(validationErr.Message, tt.wantErr) {
				t.Errorf("expected error message to contain %q, got %q", tt.wantErr, validationErr.Message)
			}
		})
	}
}

func TestClient_RetriesServerError(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff sleeps; skipping in short mode")
	}

	mock := testhelpers.NewMockServer()
	defer mock.Close()

	// First attempt gets a 500, the retry succeeds.
	mock.QueueResponses("/v1/messages",
		testhelpers.MockServerError(),
		testhelpers.MockResponse{
			StatusCode: 200,
			Body:       testhelpers.MockAnthropicResponse("Recovered!", "claude-3-5-sonnet-20241022"),
		},
	)

	client, err := NewClient(testhelpers.TestConfigWithURL("anthropic", mock.URL()))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	resp, err := client.Complete(context.Background(), &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: "Hello"},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		t.Fatalf("Complete failed after retry: %v", err)
	}

	if resp.Content != "Recovered!" {
		t.Errorf("expected content %q, got %q", "Recovered!", resp.Content)
	}
	if got := mock.GetRequestCount(); got != 2 {
		t.Errorf("expected 2 requests (initial + retry), got %d", got)
	}
}

func TestClient_MessageAlternation(t *testing.T) {
	client, err := NewClient(testhelpers.TestConfig("anthropic"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	// First message must be from user
	req := &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleAssistant, Content: "Hello"},
		},
		MaxTokens: 1024,
	}

	ctx := context.Background()
	_, err = client.Complete(ctx, req)
	if err == nil {
		t.Fatal("expected validation error for non-user first message, got nil")
	}

	// Messages must alternate
	req = &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: "Hello"},
			{Role: providers.RoleUser, Content: "Hello again"},
		},
		MaxTokens: 1024,
	}

	_, err = client.Complete(ctx, req)
	if err == nil {
		t.Fatal("expected validation error for non-alternating messages, got nil")
	}
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	_, err := NewClient(providers.ClientConfig{})
	if err == nil {
		t.Fatal("expected config error, got nil")
	}

	configErr, ok := err.(*providers.ConfigError)
	if !ok {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if configErr.Field != "api_key" {
		t.Errorf("expected field api_key, got %q", configErr.Field)
	}
}

func TestClient_ImplementsClientInterface(t *testing.T) {
	var _ providers.Client = (*Client)(nil)
}
