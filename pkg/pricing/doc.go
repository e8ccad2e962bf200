// Package pricing resolves per-model token prices and computes request costs.
//
// # Overview
//
// The pricing package maintains three tiers of price tables and resolves
// models against them in strict priority order:
//
//  1. Registered: models registered at runtime via RegisterModel or a
//     pricing overrides file. Always wins.
//  2. Refreshed: models loaded from the LiteLLM community feed by Refresh.
//  3. Fallback: the built-in table shipped with this package.
//
// Prices are expressed in USD per 1000 tokens. Costs are computed as
//
//	(promptTokens/1000)*InputPer1K + (completionTokens/1000)*OutputPer1K
//
// # Usage
//
//	resolver := pricing.NewResolver()
//
//	// Optional: pull current prices from the community feed.
//	resolver.Refresh(ctx, "", 0)
//
//	// Optional: pin prices for private or fine-tuned models.
//	resolver.RegisterModel("my-fine-tune", 0.0010, 0.0020, "custom")
//
//	cost, err := resolver.CalculateCost("gpt-4o", 1000, 500)
//	if err != nil {
//	    // model unknown in all three tiers
//	}
//
// # Refreshing
//
// Refresh never fails loudly: on any fetch or parse error it keeps the
// previous tables and returns false. Long-running processes can keep prices
// current with a cron-driven Scheduler, and operators can hot-edit an
// overrides file via Watcher.
//
// # Thread Safety
//
// All resolver operations are thread-safe using sync.RWMutex for concurrent
// access.
package pricing
