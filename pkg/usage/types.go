package usage

// Usage holds token counts, cost, and call counts for one accounting bucket.
//
// A Usage value is produced by the tracker for the global aggregate and for
// each provider subtotal. Values produced by the tracker always satisfy
// TotalTokens == PromptTokens + CompletionTokens; nothing re-checks the
// invariant on values callers build by hand.
type Usage struct {
	// TotalTokens is the total number of tokens used.
	TotalTokens int `json:"total_tokens"`

	// PromptTokens is the number of prompt/input tokens.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of completion/output tokens.
	CompletionTokens int `json:"completion_tokens"`

	// TotalCostUSD is the total cost in USD.
	TotalCostUSD float64 `json:"total_cost_usd"`

	// Calls is the number of API calls made.
	Calls int `json:"calls"`
}

// Add accumulates another Usage into this one, field by field.
// Accumulation is associative and commutative, so partial sums can be
// combined in any order.
func (u *Usage) Add(other Usage) {
	u.TotalTokens += other.TotalTokens
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalCostUSD += other.TotalCostUSD
	u.Calls += other.Calls
}

// Sub returns the field-wise difference u - other.
// Budget scopes use this to compute usage deltas against a baseline snapshot.
func (u Usage) Sub(other Usage) Usage {
	return Usage{
		TotalTokens:      u.TotalTokens - other.TotalTokens,
		PromptTokens:     u.PromptTokens - other.PromptTokens,
		CompletionTokens: u.CompletionTokens - other.CompletionTokens,
		TotalCostUSD:     u.TotalCostUSD - other.TotalCostUSD,
		Calls:            u.Calls - other.Calls,
	}
}

// CacheStats holds response-cache effectiveness counters.
//
// The saved counters record what a cache hit would have cost had the call
// gone to the provider. They are kept separate from the billed totals in
// Usage; a hit never changes the billed aggregates.
type CacheStats struct {
	// Hits is the number of cache hits.
	Hits int `json:"hits"`

	// Misses is the number of cache misses.
	Misses int `json:"misses"`

	// SavedCostUSD is the total cost avoided by cache hits, in USD.
	SavedCostUSD float64 `json:"saved_cost_usd"`

	// SavedTokens is the total number of tokens avoided by cache hits.
	SavedTokens int `json:"saved_tokens"`
}
