package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// LedgerMixin provides the base fields shared by append-only ledger entities.
// Entries are immutable once written and carry a global sequence number so
// the audit trail has a total order independent of per-table IDs.
type LedgerMixin struct {
	mixin.Schema
}

func (LedgerMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the entry was appended"),
	}
}

func (LedgerMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("created_at"),
	}
}
