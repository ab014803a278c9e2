package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UnlockedAchievement marks that a learner has unlocked one achievement.
// The unique (learner_id, achievement_key) index is what makes concurrent
// unlock attempts safe: the second insert fails the constraint and the
// caller treats that as a successful no-op.
type UnlockedAchievement struct {
	ent.Schema
}

func (UnlockedAchievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Immutable().
			NotEmpty(),
		field.String("achievement_key").
			Immutable().
			NotEmpty(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UnlockedAchievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "achievement_key").
			Unique(),
		index.Fields("learner_id"),
	}
}
