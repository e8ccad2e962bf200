package providers

// Message represents a single message in a conversation.
// It is provider-agnostic; the wrapped client is responsible for any
// provider-specific transformation.
type Message struct {
	// Role identifies the message sender (system, user, assistant, tool)
	Role string `json:"role"`

	// Content is the message text content
	Content string `json:"content"`

	// Name is an optional name for the message sender (used for multi-user conversations)
	Name string `json:"name,omitempty"`
}

// TokenUsage represents token consumption for a single completion.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used (prompt + completion)
	TotalTokens int `json:"total_tokens"`
}

// CompletionRequest represents a provider-agnostic completion request.
//
// The JSON-serializable fields double as the cache identity of the request:
// two requests that marshal to the same canonical JSON share a cache entry.
// Metadata is excluded from serialization and therefore from the cache key.
type CompletionRequest struct {
	// Model is the model identifier (e.g., "gpt-4o", "claude-sonnet-4-5")
	Model string `json:"model"`

	// Messages is the conversation history
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0, typically 0.0 to 1.0)
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens is the maximum number of tokens to generate
	MaxTokens int `json:"max_tokens,omitempty"`

	// TopP controls nucleus sampling (0.0 to 1.0)
	TopP float64 `json:"top_p,omitempty"`

	// Stop sequences that will halt generation
	Stop []string `json:"stop,omitempty"`

	// User is an optional user identifier for abuse monitoring
	User string `json:"user,omitempty"`

	// Metadata contains additional request context (team, session, etc.)
	// This is not sent to the provider and not part of the cache key.
	Metadata map[string]string `json:"-"`
}

// CompletionResponse represents a provider-agnostic completion response.
// It is normalized from provider-specific response formats by the wrapped
// client. The Usage field is what the tracked wrappers account against.
type CompletionResponse struct {
	// ID is the unique response identifier
	ID string `json:"id"`

	// Model is the model that generated the response
	Model string `json:"model"`

	// Content is the generated text content
	Content string `json:"content"`

	// FinishReason indicates why generation stopped
	// (stop, length, content_filter)
	FinishReason string `json:"finish_reason,omitempty"`

	// Usage contains token consumption information
	Usage TokenUsage `json:"usage"`

	// Created is the Unix timestamp when the response was created
	Created int64 `json:"created,omitempty"`
}

// Provider name constants for the built-in wrappers.
const (
	// ProviderOpenAI is the provider name used by NewOpenAI.
	ProviderOpenAI = "openai"

	// ProviderAnthropic is the provider name used by NewAnthropic.
	ProviderAnthropic = "anthropic"
)

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reason constants
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
)
