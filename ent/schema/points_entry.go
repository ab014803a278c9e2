package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PointsEntry records one point-earning action. The table is append-only:
// entries are never updated or deleted, and time-windowed leaderboard sums
// and activity-count aggregates are derived from it.
type PointsEntry struct {
	ent.Schema
}

func (PointsEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{LedgerMixin{}}
}

func (PointsEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Immutable().
			NotEmpty(),
		field.String("action").
			Immutable().
			NotEmpty(),
		field.Int("points").
			Immutable().
			NonNegative(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

func (PointsEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("action"),
		index.Fields("learner_id", "action"),
	}
}
