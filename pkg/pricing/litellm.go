package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultFeedURL is the community pricing feed maintained by the LiteLLM
	// project. It maps model names to per-token costs across providers.
	DefaultFeedURL = "https://raw.githubusercontent.com/BerriAI/litellm/main/model_prices_and_context_window.json"

	// DefaultFeedTimeout bounds a single feed fetch when the caller does not
	// supply a timeout of its own.
	DefaultFeedTimeout = 10 * time.Second
)

// feedEntry is the subset of a LiteLLM feed record that pricing cares about.
// Costs are pointers so that entries without pricing can be told apart from
// entries priced at zero.
type feedEntry struct {
	InputCostPerToken  *float64 `json:"input_cost_per_token"`
	OutputCostPerToken *float64 `json:"output_cost_per_token"`
	LiteLLMProvider    string   `json:"litellm_provider"`
}

// fetchFeed downloads and parses the pricing feed at url. It returns a table
// keyed by model name with costs converted to USD per 1000 tokens.
//
// Entries that carry no input or no output cost are skipped, as is the
// "sample_spec" entry the feed uses to document its own schema. Records whose
// shape does not match feedEntry are skipped rather than failing the whole
// fetch, since the feed mixes model records with metadata.
func fetchFeed(ctx context.Context, url string, timeout time.Duration) (map[string]ModelPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from pricing feed", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing feed: %w", err)
	}

	return parseFeed(body)
}

// parseFeed converts raw feed JSON into a pricing table. Split out from
// fetchFeed so the parser can be exercised without a live HTTP server.
func parseFeed(body []byte) (map[string]ModelPrice, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse pricing feed: %w", err)
	}

	table := make(map[string]ModelPrice)
	for name, rawEntry := range raw {
		if name == "sample_spec" {
			continue
		}

		var entry feedEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			continue
		}
		if entry.InputCostPerToken == nil || entry.OutputCostPerToken == nil {
			continue
		}

		// The feed prices per token; the resolver works per 1000 tokens.
		table[name] = ModelPrice{
			InputPer1K:  *entry.InputCostPerToken * 1000,
			OutputPer1K: *entry.OutputCostPerToken * 1000,
			Provider:    entry.LiteLLMProvider,
		}
	}

	return table, nil
}
