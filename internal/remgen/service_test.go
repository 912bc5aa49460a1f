package remgen

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/llm"
)

func testInput() VariantInput {
	return VariantInput{
		QuestionID:  "q-greet-easy",
		ConceptName: "Basic greetings",
		Domain:      catalog.DomainVocabulary,
		Difficulty:  catalog.DifficultyBeginner,
		Prompt:      "How do you say 'hello' in Spanish?",
		Choices:     []string{"hola", "adiós", "gracias", "por favor"},
		WrongAnswer: "gracias",
	}
}

func pollVariant(t *testing.T, svc *Service, questionID string) (*Variant, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if v, ok := svc.ConsumeVariant(questionID); ok {
			return v, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_RewritesPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"prompt":"Which word greets someone in Spanish?"}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestVariant(t.Context(), testInput())

	v, ok := pollVariant(t, svc, "q-greet-easy")
	if !ok {
		t.Fatal("expected a rewritten variant")
	}
	if v.QuestionID != "q-greet-easy" {
		t.Errorf("question id = %q, want q-greet-easy", v.QuestionID)
	}
	if v.Prompt != "Which word greets someone in Spanish?" {
		t.Errorf("prompt = %q", v.Prompt)
	}

	// The prompt sent to the LLM carries the concept and choices.
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
	sent := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Basic greetings", "hola", "gracias"} {
		if !strings.Contains(sent, want) {
			t.Errorf("user message missing %q:\n%s", want, sent)
		}
	}
}

func TestService_StaleVariantIsDiscarded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"prompt":"Fresh wording"}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestVariant(t.Context(), testInput())

	// The quiz moved on to another question before the rewrite landed.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if v, ok := svc.ConsumeVariant("some-other-question"); ok {
		t.Fatalf("stale variant served: %+v", v)
	}
	// And it is gone for the original question too.
	if _, ok := svc.ConsumeVariant("q-greet-easy"); ok {
		t.Error("variant should be consumed by the mismatched read")
	}
}

func TestService_GenerationFailureYieldsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestVariant(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if _, ok := svc.ConsumeVariant("q-greet-easy"); ok {
		t.Error("failed generation should not yield a variant")
	}
}

func TestService_EmptyPromptRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"prompt":""}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestVariant(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if _, ok := svc.ConsumeVariant("q-greet-easy"); ok {
		t.Error("empty prompt should be rejected")
	}
}
