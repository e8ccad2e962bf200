package providers

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCompletionRequest_MetadataExcludedFromJSON(t *testing.T) {
	req := &CompletionRequest{
		Model: "gpt-4o",
		Messages: []Message{
			{Role: RoleUser, Content: "Hello"},
		},
		Metadata: map[string]string{"trace_id": "abc123"},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// Metadata must not leak into the serialized request; cache keys are
	// derived from the JSON form and metadata must never affect them
	if strings.Contains(string(data), "trace_id") {
		t.Errorf("expected metadata to be excluded from JSON, got %s", data)
	}
	if strings.Contains(string(data), "abc123") {
		t.Errorf("expected metadata values to be excluded from JSON, got %s", data)
	}
}

func TestCompletionRequest_OptionalFieldsOmitted(t *testing.T) {
	req := &CompletionRequest{
		Model: "gpt-4o",
		Messages: []Message{
			{Role: RoleUser, Content: "Hello"},
		},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for _, field := range []string{"temperature", "max_tokens", "top_p", "stop", "user"} {
		if strings.Contains(string(data), field) {
			t.Errorf("expected zero-valued field %q to be omitted, got %s", field, data)
		}
	}
}

func TestTokenUsage_WireFormat(t *testing.T) {
	data := []byte(`{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30}`)

	var usage TokenUsage
	if err := json.Unmarshal(data, &usage); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if usage.PromptTokens != 10 {
		t.Errorf("expected prompt tokens 10, got %d", usage.PromptTokens)
	}
	if usage.CompletionTokens != 20 {
		t.Errorf("expected completion tokens 20, got %d", usage.CompletionTokens)
	}
	if usage.TotalTokens != 30 {
		t.Errorf("expected total tokens 30, got %d", usage.TotalTokens)
	}
}
