// Package usage provides the central accounting ledger for LLM API calls.
//
// # Overview
//
// The usage package accumulates token counts, derived costs, and call counts
// from every tracked API call. Totals are kept globally and per provider, and
// the ledger separately counts response-cache hits and misses together with
// the tokens and cost those hits avoided.
//
// Costs are never computed here: the tracker asks its pricing.Resolver for
// the cost of each call at the moment it is tracked, so a model unknown to
// every pricing tier rejects the call with no partial state recorded.
//
// # Usage
//
//	resolver := pricing.NewResolver()
//	tracker, err := usage.NewTracker(resolver, usage.Config{Cache: "memory"})
//	if err != nil {
//	    return err
//	}
//
//	err = tracker.Track("gpt-4o", 1200, 350, "openai")
//	fmt.Println(tracker.Usage().TotalTokens)
//	fmt.Println(tracker.UsageByProvider()["openai"].Calls)
//
// # Snapshots
//
// Usage, UsageByProvider, CacheStats, and TotalCostUSD return independent
// copies that are consistent at the instant of the read. Holding a snapshot
// never observes later mutations.
//
// # Thread Safety
//
// A single mutex guards all tracker state. Every mutation and every snapshot
// read runs under it, so accumulation across goroutines is linearizable.
package usage
