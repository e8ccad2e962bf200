package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"mercator-hq/abacus/pkg/budget"
	"mercator-hq/abacus/pkg/cache"
	"mercator-hq/abacus/pkg/telemetry/tracing"
	"mercator-hq/abacus/pkg/usage"
)

// Tracked wraps a Client and accounts for every completion that flows
// through it: token counts and cost are recorded on the tracker, responses
// are served from and written to the tracker's cache when one is configured,
// and any budget scope on the context is re-checked after each call.
//
// Tracked itself implements Client, so wrappers compose with anything else
// that accepts one.
type Tracked struct {
	client   Client
	tracker  *usage.Tracker
	provider string
	logger   *slog.Logger
	tracer   *tracing.Tracer
}

func newTracked(client Client, tracker *usage.Tracker, provider string) *Tracked {
	return &Tracked{
		client:   client,
		tracker:  tracker,
		provider: provider,
		logger:   slog.Default().With("component", "providers"),
	}
}

// NewOpenAI wraps an OpenAI client. Usage is recorded under the "openai"
// provider name.
func NewOpenAI(client Client, tracker *usage.Tracker) *Tracked {
	return newTracked(client, tracker, ProviderOpenAI)
}

// NewAnthropic wraps an Anthropic client. Usage is recorded under the
// "anthropic" provider name.
func NewAnthropic(client Client, tracker *usage.Tracker) *Tracked {
	return newTracked(client, tracker, ProviderAnthropic)
}

// NewCustom wraps a client for a provider without a built-in wrapper.
// Usage is recorded under the given provider name, and the wrapped client's
// responses must report token usage the same way the built-in ones do.
func NewCustom(client Client, tracker *usage.Tracker, provider string) *Tracked {
	return newTracked(client, tracker, provider)
}

// New creates a tracked wrapper for a known provider name. It returns a
// ProviderNotSupportedError for names without a built-in wrapper; use
// NewCustom for those instead.
func New(provider string, client Client, tracker *usage.Tracker) (*Tracked, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAI(client, tracker), nil
	case ProviderAnthropic:
		return NewAnthropic(client, tracker), nil
	default:
		return nil, &ProviderNotSupportedError{Provider: provider}
	}
}

// SetTracer attaches a tracer. When set, each Complete call runs inside its
// own span carrying provider, model, token, and cost attributes.
func (t *Tracked) SetTracer(tracer *tracing.Tracer) {
	t.tracer = tracer
}

// Provider returns the provider name usage is recorded under.
func (t *Tracked) Provider() string {
	return t.provider
}

// Tracker returns the tracker this wrapper records usage on.
func (t *Tracked) Tracker() *usage.Tracker {
	return t.tracker
}

// Complete forwards the request to the wrapped client and accounts for the
// response.
//
// When the tracker has a cache, the request is looked up first. A hit skips
// the wrapped client entirely: the avoided cost is computed from the cached
// response's usage and recorded as a saving, not as spend. A miss records
// the miss, forwards the call, and stores the response for next time.
//
// After either path, any budget scope on the context is checked, so a
// conversation that crossed its limit stops on the next call even when that
// call would have been served from cache. Errors from the wrapped client
// are returned as-is with nothing recorded.
func (t *Tracked) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	requestID := uuid.New().String()

	span := tracing.SpanFromContext(ctx)
	if t.tracer != nil {
		ctx, span = t.tracer.Start(ctx, "providers.complete")
		defer span.End()
	}
	tracing.SetProviderAttributes(span, t.provider, req.Model)
	tracing.SetRequestAttributes(span, requestID, req.User)

	store := t.tracker.Cache()

	var key string
	if store != nil {
		key = cache.MakeKey(req)
		if resp, ok := t.cachedResponse(store, key); ok {
			return t.completeFromCache(ctx, span, requestID, resp)
		}
		t.tracker.RecordCacheMiss()
		tracing.SetCacheAttributes(span, false)
	}

	resp, err := t.client.Complete(ctx, req)
	if err != nil {
		tracing.SetError(span, err)
		return nil, err
	}
	if err := t.validateResponse(resp); err != nil {
		tracing.SetError(span, err)
		return nil, err
	}

	if store != nil {
		t.storeResponse(store, key, resp)
	}

	prompt := resp.Usage.PromptTokens
	completion := resp.Usage.CompletionTokens
	if err := t.tracker.Track(resp.Model, prompt, completion, t.provider); err != nil {
		tracing.SetError(span, err)
		return nil, err
	}
	tracing.SetTokenAttributes(span, prompt, completion)

	t.logger.Debug("tracked completion",
		"request_id", requestID,
		"provider", t.provider,
		"model", resp.Model,
		"prompt_tokens", prompt,
		"completion_tokens", completion,
	)

	if err := budget.Check(ctx); err != nil {
		tracing.SetError(span, err)
		return nil, err
	}

	return resp, nil
}

// completeFromCache accounts for a response served from cache. The saved
// cost is priced from the cached response's usage; if that model can no
// longer be priced the hit is surfaced as an error rather than silently
// recorded as a zero saving.
func (t *Tracked) completeFromCache(ctx context.Context, span trace.Span, requestID string, resp *CompletionResponse) (*CompletionResponse, error) {
	prompt := resp.Usage.PromptTokens
	completion := resp.Usage.CompletionTokens

	savedCost, err := t.tracker.Resolver().CalculateCost(resp.Model, prompt, completion)
	if err != nil {
		err = fmt.Errorf("pricing cached response: %w", err)
		tracing.SetError(span, err)
		return nil, err
	}

	t.tracker.RecordCacheHit(prompt+completion, savedCost)
	tracing.SetCacheAttributes(span, true)
	tracing.SetTokenAttributes(span, prompt, completion)
	tracing.SetCostAttributes(span, savedCost)

	t.logger.Debug("served from cache",
		"request_id", requestID,
		"provider", t.provider,
		"model", resp.Model,
		"saved_tokens", prompt+completion,
		"saved_cost_usd", savedCost,
	)

	if err := budget.Check(ctx); err != nil {
		tracing.SetError(span, err)
		return nil, err
	}

	return resp, nil
}

// validateResponse rejects responses the tracker cannot account for. They
// are neither cached nor recorded.
func (t *Tracked) validateResponse(resp *CompletionResponse) error {
	switch {
	case resp == nil:
		return &ExtractionError{Provider: t.provider, Reason: "response is nil"}
	case resp.Model == "":
		return &ExtractionError{Provider: t.provider, Reason: "response has no model"}
	case resp.Usage == (TokenUsage{}):
		return &ExtractionError{Provider: t.provider, Reason: "response has no token usage"}
	}
	return nil
}

// cachedResponse looks up and decodes a cached response. An entry that no
// longer decodes is treated as a miss.
func (t *Tracked) cachedResponse(store cache.Cache, key string) (*CompletionResponse, bool) {
	data, ok := store.Get(key)
	if !ok {
		return nil, false
	}
	var resp CompletionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

// storeResponse serializes and caches a response. A response that cannot be
// serialized is simply not cached.
func (t *Tracked) storeResponse(store cache.Cache, key string, resp *CompletionResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	store.Set(key, data)
}
