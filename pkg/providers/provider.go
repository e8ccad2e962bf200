package providers

import "context"

// Client is the transport contract for an LLM provider. A Client knows how
// to deliver a completion request to its API and normalize the response; it
// does not know anything about usage accounting, budgets, or caching. The
// tracked wrappers in this package layer those concerns on top of any Client.
//
// Implementations must respect context cancellation and return immediately
// when the context is cancelled.
//
// Example usage:
//
//	client := myOpenAIClient{apiKey: os.Getenv("OPENAI_API_KEY")}
//	provider := providers.NewOpenAI(client, tracker)
//
//	req := &providers.CompletionRequest{
//	    Model: "gpt-4o",
//	    Messages: []providers.Message{
//	        {Role: "user", Content: "Hello!"},
//	    },
//	}
//
//	resp, err := provider.Complete(ctx, req)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Content)
type Client interface {
	// Complete sends a completion request and returns the normalized response.
	// The returned response must carry accurate token usage, since that is
	// what the tracked wrappers account against.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}
