package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent logs one rewrite-provider call. The lingua llm commands
// read these rows for transcripts, token spend and failure rates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend name: anthropic, openai, gemini, openrouter, mock"),
		field.String("model").
			Comment("Resolved model ID, after alias expansion"),
		field.String("purpose").
			Comment("Caller label carried on the context, e.g. remediation-gen"),
		field.Bool("success").
			Comment("False when the provider returned an error"),
		field.String("error_message").
			Default(""),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time as seen by the caller"),
		field.Text("request_body").
			Default("").
			Comment("Prompt transcript, kept so lingua llm view can replay it"),
		field.Text("response_body").
			Default("").
			Comment("Raw reply content"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
