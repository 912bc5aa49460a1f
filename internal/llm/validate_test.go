package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func rewriteSchema() *Schema {
	return &Schema{
		Name:        "prompt-rewrite",
		Description: "A reworded practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":     map[string]any{"type": "string"},
				"tries":      map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"prompt", "tries"},
		},
	}
}

func wantInvalidResponse(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateAcceptsConformingReply(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which word greets someone?","tries":1,"difficulty":"easy"}`)
	if err := validate(rewriteSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateOptionalFieldMayBeOmitted(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which word greets someone?","tries":2}`)
	if err := validate(rewriteSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which word greets someone?"}`)
	wantInvalidResponse(t, validate(rewriteSchema(), raw))
}

func TestValidateRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which word greets someone?","tries":"dos"}`)
	wantInvalidResponse(t, validate(rewriteSchema(), raw))
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	raw := json.RawMessage(`{"prompt":"Which word greets someone?","tries":1,"difficulty":"imposible"}`)
	wantInvalidResponse(t, validate(rewriteSchema(), raw))
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{prompt: hola}`)
	wantInvalidResponse(t, validate(rewriteSchema(), raw))
}

func TestValidateRejectsEmptyReply(t *testing.T) {
	wantInvalidResponse(t, validate(rewriteSchema(), json.RawMessage(``)))
}

func TestValidateNilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"whatever":"the model said"}`)
	if err := validate(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateNestedDefinition(t *testing.T) {
	schema := &Schema{
		Name:        "concept-report",
		Description: "Per-concept tier outcomes",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"concept": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"tiers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"concept", "tiers"},
		},
	}

	valid := json.RawMessage(`{"concept":{"id":"greet-hola"},"tiers":[1,0,1]}`)
	if err := validate(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"concept":{"id":"greet-hola"},"tiers":["easy","hard"]}`)
	if err := validate(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
