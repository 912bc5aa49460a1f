package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records the reward computed for a finished session and fed
// back into the recommender.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Float("reward").
			Comment("Final reward in [0,1]"),
		field.Float("accuracy"),
		field.Float("credit_ratio").
			Default(0).
			Comment("Reward-eligible credit fraction from the quiz"),
		field.Int("xp_awarded").
			Default(0),
		field.Bool("first_attempt").
			Comment("False when the lesson had been rewarded before"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
	}
}
