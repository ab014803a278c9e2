package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerProfile holds one learner's gamification state: running point
// total, derived level, and daily activity streak. Points and level only
// ever increase; streak may increase, reset to 1, or stay constant.
type LearnerProfile struct {
	ent.Schema
}

func (LearnerProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("points").
			Default(0).
			NonNegative(),
		field.Int("level").
			Default(1).
			Positive(),
		field.Int("streak").
			Default(0).
			NonNegative(),
		field.Time("last_active_at").
			Optional().
			Nillable().
			Comment("Nil until the learner's first qualifying action"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (LearnerProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("points"),
	}
}
