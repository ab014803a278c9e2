package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard is one reviewable card together with its spaced repetition
// state. The review fields are mutated only through the engine, once per
// review submission.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty(),
		field.String("learner_id").
			Immutable().
			NotEmpty(),
		field.String("front").
			NotEmpty(),
		field.String("back").
			NotEmpty(),
		field.Int("repetitions").
			Default(0).
			NonNegative().
			Comment("Consecutive successful recalls"),
		field.Float("easiness_factor").
			Default(2.5),
		field.Int("interval_days").
			Default(1).
			Positive(),
		field.Time("next_review_at").
			Default(time.Now),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "next_review_at"),
	}
}
