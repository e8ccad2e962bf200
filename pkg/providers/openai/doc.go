// Package openai implements the OpenAI client adapter.
//
// This package provides an implementation of the providers.Client interface
// for OpenAI's chat completions API. The adapter handles authentication,
// request/response transformation, and retry of transient failures.
//
// # Basic Usage
//
//	client, err := openai.NewClient(providers.ClientConfig{
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Complete(context.Background(), &providers.CompletionRequest{
//	    Model: "gpt-4o",
//	    Messages: []providers.Message{
//	        {Role: providers.RoleUser, Content: "Hello!"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// Wrap the client in providers.NewOpenAI to record usage on a tracker.
//
// # Request Transformation
//
// The adapter transforms provider-agnostic requests to OpenAI's format:
//
//   - Messages are passed through as-is (OpenAI format is the baseline)
//   - System messages stay in the messages array
//   - N is pinned to 1 so every response has exactly one choice
//
// # Response Transformation
//
// The adapter normalizes OpenAI responses to provider-agnostic format:
//
//   - Token usage is extracted from the usage field
//   - Finish reason is normalized (stop, length, content_filter)
//
// # Error Handling
//
// The adapter maps OpenAI HTTP errors to common error types:
//
//   - 401/403 -> AuthError
//   - 429 -> RateLimitError (includes retry-after)
//   - 400 -> APIError (not retried)
//   - 5xx -> APIError (retried automatically)
package openai
