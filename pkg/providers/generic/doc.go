// Package generic implements a generic OpenAI-compatible client adapter.
//
// This package provides an implementation of the providers.Client interface
// for any provider that implements the OpenAI API format, such as local LLM
// servers (Ollama, LM Studio, vLLM, FastChat) and custom OpenAI-compatible
// endpoints.
//
// # Basic Usage
//
//	client, err := generic.NewClient(providers.ClientConfig{
//	    Name:    "ollama",
//	    BaseURL: "http://localhost:11434",
//	    // API key is optional for local providers
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	resp, err := client.Complete(context.Background(), &providers.CompletionRequest{
//	    Model: "llama3",
//	    Messages: []providers.Message{
//	        {Role: providers.RoleUser, Content: "Hello!"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// Wrap the client in providers.NewCustom to record usage on a tracker
// under a provider label of your choosing. Local models usually have no
// feed pricing, so register them on the resolver first:
//
//	resolver.RegisterModel("llama3", 0, 0, "ollama")
//	tracked := providers.NewCustom(client, tracker, "ollama")
//
// # Implementation Details
//
// The adapter reuses the OpenAI adapter since most local LLM servers
// implement the OpenAI chat completions format. The request path is
// /v1/chat/completions relative to the configured base URL.
//
// Compared to cloud providers, local models typically:
//
//   - Don't require API keys (set to "not-required" by default)
//   - Need longer timeouts (inference can be slow)
//   - Have fewer retry attempts (defaults to 1)
//   - Use smaller connection pools (single instance)
//
// # Compatibility Notes
//
// Not all OpenAI-compatible servers implement the full API. The adapter
// works as long as the server implements the basic chat completions
// endpoint with the OpenAI request/response format, including the usage
// field. Servers that omit token usage produce responses the tracked
// wrapper refuses to account for.
package generic
