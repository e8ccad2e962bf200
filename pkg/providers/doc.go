// Package providers implements tracked wrappers around LLM provider clients.
//
// # Overview
//
// A wrapper accepts any Client (the transport that actually talks to an LLM
// API) and layers usage accounting on top: every completion's token counts
// and cost are recorded on a usage.Tracker, responses are cached when the
// tracker has a cache configured, and budget scopes on the context are
// re-checked after each call. The wrapped client stays oblivious to all of
// this; it only sees the requests that were not served from cache.
//
// # Basic Usage
//
// Wrap a client and use it in place of the original:
//
//	resolver := pricing.NewResolver()
//	tracker, err := usage.NewTracker(resolver, usage.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	provider := providers.NewOpenAI(openaiClient, tracker)
//
//	resp, err := provider.Complete(ctx, &providers.CompletionRequest{
//	    Model: "gpt-4o",
//	    Messages: []providers.Message{
//	        {Role: "user", Content: "Hello!"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
//	total := tracker.Usage()
//	fmt.Printf("spent $%.4f across %d calls\n", total.TotalCostUSD, total.Calls)
//
// Providers without a built-in wrapper use NewCustom with an explicit
// provider name:
//
//	provider := providers.NewCustom(ollamaClient, tracker, "ollama")
//
// # Budget Enforcement
//
// Wrappers check the context for a budget scope after every call, including
// calls served from cache. Run a conversation inside budget.Run and the
// wrapper stops it as soon as the scope's limits are crossed:
//
//	err := budget.Run(ctx, tracker, budget.Limits{MaxCostUSD: budget.Cost(1.00)},
//	    func(ctx context.Context) error {
//	        for _, prompt := range prompts {
//	            if _, err := provider.Complete(ctx, request(prompt)); err != nil {
//	                return err
//	            }
//	        }
//	        return nil
//	    })
//
// # Caching
//
// When the tracker is built with a cache, identical requests are served
// from it without calling the wrapped client. A hit records the tokens and
// cost that were avoided as savings; it does not add to tracked usage. The
// cache key is derived from the request's JSON form, so the Metadata field
// never affects it.
//
// # Thread Safety
//
// A Tracked wrapper is safe for concurrent use as long as the wrapped
// Client is. SetTracer is not synchronized; attach tracers during setup,
// before the wrapper is shared.
package providers
