// Package remgen rewrites remediation question prompts with an LLM so a
// retried concept doesn't read as a verbatim repeat. Only the wording
// changes: question id, concept, difficulty tier, choices, and the correct
// answer all pass through untouched. Generation is asynchronous and
// best-effort; when nothing is ready the caller shows the catalog prompt.
package remgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/lingua/internal/catalog"
	"github.com/abhisek/lingua/internal/llm"
)

// VariantInput describes the remediation question to reword.
type VariantInput struct {
	QuestionID  string
	ConceptName string
	Domain      catalog.Domain
	Difficulty  catalog.Difficulty
	Prompt      string
	Choices     []string

	// WrongAnswer is the learner's failed answer text, for context.
	WrongAnswer string
}

// Variant is a reworded prompt for a specific question.
type Variant struct {
	QuestionID string
	Prompt     string
}

// Service rewrites remediation prompts asynchronously. Only one rewrite is
// in-flight at a time; new requests replace pending ones.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Variant
	ready   bool
}

// NewService creates a remediation rewrite service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestVariant starts an async prompt rewrite for the question.
func (s *Service) RequestVariant(ctx context.Context, in VariantInput) {
	go func() {
		v, err := s.generate(ctx, in)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			s.pending = nil
		} else {
			s.pending = v
		}
		s.ready = true
	}()
}

// ConsumeVariant returns the rewritten prompt for questionID if one is
// ready. A pending rewrite for a different question is discarded, since
// the quiz has moved on.
func (s *Service) ConsumeVariant(questionID string) (*Variant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	v := s.pending
	s.pending = nil
	s.ready = false
	if v == nil || v.QuestionID != questionID {
		return nil, false
	}
	return v, true
}

type variantOutput struct {
	Prompt string `json:"prompt"`
}

func (s *Service) generate(ctx context.Context, in VariantInput) (*Variant, error) {
	ctx = llm.WithPurpose(ctx, "remediation-gen")

	req := llm.Request{
		System: variantSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVariantUserMessage(in)},
		},
		Schema:      VariantSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("remediation rewrite: %w", err)
	}

	var out variantOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse rewrite response: %w", err)
	}
	if out.Prompt == "" {
		return nil, fmt.Errorf("rewrite produced an empty prompt")
	}

	return &Variant{QuestionID: in.QuestionID, Prompt: out.Prompt}, nil
}
