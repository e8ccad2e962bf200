package anthropic

import (
	"testing"

	"mercator-hq/abacus/pkg/providers"
)

func TestTransformRequest_SystemExtraction(t *testing.T) {
	req := &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Content: "You are terse."},
			{Role: providers.RoleUser, Content: "Hello"},
			{Role: providers.RoleAssistant, Content: "Hi"},
			{Role: providers.RoleUser, Content: "Bye"},
		},
		MaxTokens: 512,
	}

	anthropicReq, err := transformRequest(req)
	if err != nil {
		t.Fatalf("transformRequest failed: %v", err)
	}

	if anthropicReq.System != "You are terse." {
		t.Errorf("expected system message to be extracted, got %q", anthropicReq.System)
	}

	// System message must not remain in the messages array
	if len(anthropicReq.Messages) != 3 {
		t.Fatalf("expected 3 messages after system extraction, got %d", len(anthropicReq.Messages))
	}
	for _, msg := range anthropicReq.Messages {
		if msg.Role == providers.RoleSystem {
			t.Error("system message left in messages array")
		}
	}

	if anthropicReq.MaxTokens != 512 {
		t.Errorf("expected max tokens 512, got %d", anthropicReq.MaxTokens)
	}
}

func TestTransformRequest_DefaultMaxTokens(t *testing.T) {
	req := &providers.CompletionRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: "Hello"},
		},
	}

	anthropicReq, err := transformRequest(req)
	if err != nil {
		t.Fatalf("transformRequest failed: %v", err)
	}

	if anthropicReq.MaxTokens != 4096 {
		t.Errorf("expected default max tokens 4096, got %d", anthropicReq.MaxTokens)
	}
}

func TestValidateMessageSequence(t *testing.T) {
	tests := []struct {
		name     string
		messages []AnthropicMessage
		wantErr  bool
	}{
		{
			name:     "empty",
			messages: nil,
			wantErr:  false,
		},
		{
			name: "single user message",
			messages: []AnthropicMessage{
				{Role: providers.RoleUser, Content: "Hello"},
			},
			wantErr: false,
		},
		{
			name: "alternating",
			messages: []AnthropicMessage{
				{Role: providers.RoleUser, Content: "Hello"},
				{Role: providers.RoleAssistant, Content: "Hi"},
				{Role: providers.RoleUser, Content: "Bye"},
			},
			wantErr: false,
		},
		{
			name: "assistant first",
			messages: []AnthropicMessage{
				{Role: providers.RoleAssistant, Content: "Hi"},
			},
			wantErr: true,
		},
		{
			name: "consecutive user messages",
			messages: []AnthropicMessage{
				{Role: providers.RoleUser, Content: "Hello"},
				{Role: providers.RoleUser, Content: "Hello again"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMessageSequence(tt.messages)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransformResponse(t *testing.T) {
	resp := &AnthropicResponse{
		ID:    "msg_123",
		Type:  "message",
		Role:  providers.RoleAssistant,
		Model: "claude-3-5-sonnet-20241022",
		Content: []ContentBlock{
			{Type: "text", Text: "Hello, "},
			{Type: "text", Text: "world!"},
		},
		StopReason: "end_turn",
		Usage: AnthropicUsage{
			InputTokens:  15,
			OutputTokens: 5,
		},
	}

	result, err := transformResponse(resp)
	if err != nil {
		t.Fatalf("transformResponse failed: %v", err)
	}

	// Text blocks are concatenated
	if result.Content != "Hello, world!" {
		t.Errorf("expected concatenated content, got %q", result.Content)
	}

	if result.Usage.PromptTokens != 15 {
		t.Errorf("expected prompt tokens 15, got %d", result.Usage.PromptTokens)
	}
	if result.Usage.CompletionTokens != 5 {
		t.Errorf("expected completion tokens 5, got %d", result.Usage.CompletionTokens)
	}
	// Anthropic does not report a total; it is derived
	if result.Usage.TotalTokens != 20 {
		t.Errorf("expected total tokens 20, got %d", result.Usage.TotalTokens)
	}

	if result.FinishReason != providers.FinishReasonStop {
		t.Errorf("expected finish reason stop, got %s", result.FinishReason)
	}
}

func TestTransformResponse_NoContent(t *testing.T) {
	resp := &AnthropicResponse{
		ID:    "msg_123",
		Model: "claude-3-5-sonnet-20241022",
	}

	if _, err := transformResponse(resp); err == nil {
		t.Fatal("expected error for response without content blocks, got nil")
	}
}

func TestNormalizeStopReason(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{"end_turn", providers.FinishReasonStop},
		{"max_tokens", providers.FinishReasonLength},
		{"stop_sequence", providers.FinishReasonStop},
		{"weird_reason", "weird_reason"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeStopReason(tt.reason); got != tt.want {
			t.Errorf("normalizeStopReason(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
