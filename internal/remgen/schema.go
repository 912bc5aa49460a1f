package remgen

import "github.com/abhisek/lingua/internal/llm"

// VariantSchema defines the JSON schema for a remediation prompt rewrite.
// Only the wording changes; the answer and choices stay intact, so the
// structure is a single rewritten prompt string.
var VariantSchema = &llm.Schema{
	Name:        "remediation-question",
	Description: "A reworded practice question prompt for a struggling learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The reworded question prompt (1-2 sentences, same meaning, fresh wording)",
			},
		},
		"required":             []any{"prompt"},
		"additionalProperties": false,
	},
}
