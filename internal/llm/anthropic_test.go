package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicStub points an AnthropicProvider at a server that replies with the
// given status and raw JSON body for every request.
func anthropicStub(t *testing.T, status int, body string) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(option.WithAPIKey("test-key"), option.WithBaseURL(srv.URL))
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func TestAnthropicGenerate(t *testing.T) {
	reply := `{
		"id": "msg_rw1", "type": "message", "role": "assistant",
		"model": "claude-sonnet-4-20250514", "stop_reason": "end_turn",
		"content": [{"type": "text", "text": "{\"prompt\":\"Pick the Spanish word for \\\"hello\\\".\"}"}],
		"usage": {"input_tokens": 50, "output_tokens": 30}
	}`
	p := anthropicStub(t, http.StatusOK, reply)

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
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Errorf("usage = %+v, want 50 in / 30 out", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want %q", resp.StopReason, "end")
	}
}

func TestAnthropicRateLimitMapsToErrRateLimit(t *testing.T) {
	p := anthropicStub(t, http.StatusTooManyRequests,
		`{"type":"error","error":{"type":"rate_limit_error","message":"Rate limit exceeded"}}`)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hola"}},
		MaxTokens: 64,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("want ErrRateLimit, got %T (%v)", err, err)
	}
}

func TestAnthropicServerErrorMapsToUnavailable(t *testing.T) {
	p := anthropicStub(t, http.StatusInternalServerError,
		`{"type":"error","error":{"type":"api_error","message":"Internal server error"}}`)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hola"}},
		MaxTokens: 64,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("want ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestAnthropicModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if got := p.ModelID(); got != "claude-sonnet-4-20250514" {
		t.Errorf("ModelID() = %q", got)
	}
}

func TestAnthropicAliasResolution(t *testing.T) {
	if got := aliasOrID("claude-sonnet", anthropicAliases); got != "claude-sonnet-4-20250514" {
		t.Errorf("claude-sonnet resolved to %q", got)
	}
	if got := aliasOrID("claude-haiku", anthropicAliases); got != "claude-haiku-4-5-20251001" {
		t.Errorf("claude-haiku resolved to %q", got)
	}
	// Full model IDs pass through so users can pin an exact release.
	if got := aliasOrID("claude-sonnet-4-20250514", anthropicAliases); got != "claude-sonnet-4-20250514" {
		t.Errorf("exact ID did not pass through, got %q", got)
	}
}
