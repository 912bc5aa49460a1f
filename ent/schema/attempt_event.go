package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered question within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson being played"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept the question tests"),
		field.String("question_id").
			NotEmpty(),
		field.String("domain").
			NotEmpty().
			Comment("Skill domain of the lesson"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Bool("penalty").
			Default(false).
			Comment("Served as remediation after a failure"),
		field.Bool("correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("domain"),
		index.Fields("correct"),
	}
}
