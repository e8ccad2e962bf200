// Package anthropic implements the Anthropic client adapter.
//
// This package provides an implementation of the providers.Client interface
// for Anthropic's Messages API. The adapter handles authentication,
// request/response transformation, and retry of transient failures.
//
// # Basic Usage
//
//	client, err := anthropic.NewClient(providers.ClientConfig{
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Complete(context.Background(), &providers.CompletionRequest{
//	    Model: "claude-3-5-sonnet-20241022",
//	    Messages: []providers.Message{
//	        {Role: providers.RoleUser, Content: "Hello!"},
//	    },
//	    MaxTokens: 1024,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// Wrap the client in providers.NewAnthropic to record usage on a tracker.
//
// # Request Transformation
//
// The adapter transforms provider-agnostic requests to Anthropic's format:
//
//   - System messages are extracted and placed in the "system" field
//   - Messages must alternate between user and assistant (enforced by validation)
//   - MaxTokens is required by the API (defaults to 4096 if not provided)
//   - Stop sequences map to the stop_sequences field
//
// # Response Transformation
//
// The adapter normalizes Anthropic responses to provider-agnostic format:
//
//   - Text content blocks are concatenated into a single string
//   - Token usage is extracted (input_tokens + output_tokens)
//   - Stop reason is normalized (end_turn -> stop, max_tokens -> length)
//
// # Error Handling
//
// The adapter maps Anthropic HTTP errors to common error types:
//
//   - 401/403 -> AuthError
//   - 429 -> RateLimitError (includes retry-after)
//   - 400 -> APIError (not retried)
//   - 5xx -> APIError (retried automatically)
//
// # Anthropic-Specific Requirements
//
// Important differences from OpenAI:
//
//  1. MaxTokens is required (cannot be 0)
//  2. System messages must be extracted from the messages array
//  3. Messages must alternate between user and assistant
//  4. First message must be from user
//  5. Uses x-api-key header instead of Authorization: Bearer
//  6. Requires anthropic-version header
package anthropic
