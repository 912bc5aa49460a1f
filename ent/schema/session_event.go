package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks the start and end of a quiz session. Start rows carry
// only the lesson identity; the counters are filled in on the end row.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID shared by every event the session emits"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("lesson_id").
			NotEmpty(),
		field.String("domain").
			NotEmpty(),
		field.Int("questions_served").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("mastered_concepts").
			Default(0).
			Comment("Concepts that reached mastery during the session"),
		field.Int("total_concepts").
			Default(0),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("lesson_id"),
	}
}
