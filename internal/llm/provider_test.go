package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"prompt":"How would you greet a friend in Spanish?"}`),
			Usage:   Usage{InputTokens: 64, OutputTokens: 12, TotalTokens: 76},
		},
		MockResponse{Content: json.RawMessage(`{"prompt":"Which word means thank you?"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Reword: Pick the Spanish word for \"hello\"."}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"prompt":"How would you greet a friend in Spanish?"}` {
		t.Fatalf("unexpected first reply: %s", first.Content)
	}
	if first.Usage.InputTokens != 64 {
		t.Fatalf("expected 64 input tokens, got %d", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Reword: \"Gracias\" means:"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"prompt":"Which word means thank you?"}` {
		t.Fatalf("unexpected second reply: %s", second.Content)
	}
}

func TestMockProviderExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You are a patient Spanish tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Reword this prompt."}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a patient Spanish tutor." {
		t.Fatalf("unexpected system prompt: %q", mock.Calls[0].System)
	}
}

func TestMockProviderScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("expected 'mock', got %q", got)
	}
}

func TestPurposeTravelsOnContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "remediation-gen")
	if p := PurposeFrom(ctx); p != "remediation-gen" {
		t.Fatalf("expected 'remediation-gen', got %q", p)
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
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
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
