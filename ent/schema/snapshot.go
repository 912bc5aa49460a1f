package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a full copy of the learner state: skills, bandit
// parameters, XP, hearts, streak. Sessions restore from the newest
// snapshot instead of replaying the event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Global sequence at the time the snapshot was written"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Serialized learner state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}
