package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiStub points an OpenAIProvider at a server that replies with the given
// status and raw JSON body for every request.
func openaiStub(t *testing.T, status int, body string) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func openaiCompletion(content, finishReason string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-rw1", "object": "chat.completion", "created": 1234567890,
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": %q}],
		"usage": {"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65}
	}`, content, finishReason)
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiStub(t, http.StatusOK,
		openaiCompletion(`{"prompt":"Pick the Spanish word for \"hello\"."}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a patient Spanish tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Reword this question prompt."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := `{"prompt":"Pick the Spanish word for \"hello\"."}`; string(resp.Content) != want {
		t.Errorf("content = %q, want %q", resp.Content, want)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v, want 40 in / 25 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
}

func TestOpenAITruncatedReply(t *testing.T) {
	p := openaiStub(t, http.StatusOK, openaiCompletion(`{"prompt":"Pick the`, "length"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hola"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "max_tokens")
	}
}

func TestOpenAITurnsFoldInSystemPrompt(t *testing.T) {
	msgs := openaiTurns(Request{
		System: "You are a patient Spanish tutor.",
		Messages: []Message{
			{Role: RoleUser, Content: "Reword this question prompt."},
			{Role: RoleAssistant, Content: `{"prompt":"..."}`},
		},
	})
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "You are a patient Spanish tutor." {
		t.Errorf("first message = %+v, want the system prompt", msgs[0])
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("turn roles = %q, %q", msgs[1].Role, msgs[2].Role)
	}
}

func TestOpenAIRateLimitMapsToErrRateLimit(t *testing.T) {
	p := openaiStub(t, http.StatusTooManyRequests,
		`{"error":{"type":"tokens","message":"Rate limit exceeded","code":"rate_limit_exceeded"}}`)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hola"}},
		MaxTokens: 64,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("want ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestOpenAIServerErrorMapsToUnavailable(t *testing.T) {
	p := openaiStub(t, http.StatusInternalServerError,
		`{"error":{"type":"server_error","message":"Internal server error"}}`)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hola"}},
		MaxTokens: 64,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestOpenAIModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Errorf("ModelID() = %q", got)
	}
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o" {
		t.Errorf("ModelID() = %q, want %q", got, "gpt-4o")
	}
}
