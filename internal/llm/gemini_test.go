package llm

import "testing"

func TestGeminiAliasResolution(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.input, geminiAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt":     map[string]any{"type": "string"},
			"tries":      map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"tiers": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"prompt", "tries"},
	})

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["prompt"].Type != "STRING" {
		t.Fatalf("expected STRING for prompt, got %s", schema.Properties["prompt"].Type)
	}
	if schema.Properties["tries"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for tries, got %s", schema.Properties["tries"].Type)
	}
	if len(schema.Properties["difficulty"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["difficulty"].Enum))
	}
	if schema.Properties["tiers"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for tiers, got %s", schema.Properties["tiers"].Type)
	}
	if schema.Properties["tiers"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for tiers items, got %s", schema.Properties["tiers"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
