package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderDrainsQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"tip":"start small"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"tip":"review notes"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"tip":"start small"}` {
		t.Fatalf("unexpected first content: %s", first.Content)
	}
	if first.Usage.InputTokens != 10 {
		t.Fatalf("want 10 input tokens, got %d", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("want stop reason %q, got %q", "end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"tip":"review notes"}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable, got %T", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "you are a study coach",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("want 1 call, got %d", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != "you are a study coach" {
		t.Fatalf("recorded system prompt = %q", got)
	}
}

func TestMockProviderQueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("want ErrRateLimit, got %T", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("want %q, got %q", "mock", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("default purpose = %q, want %q", p, "unknown")
	}

	ctx = WithPurpose(ctx, "study-plan")
	if p := PurposeFrom(ctx); p != "study-plan" {
		t.Fatalf("purpose = %q, want %q", p, "study-plan")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
