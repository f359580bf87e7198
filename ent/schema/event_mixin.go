// Package schema declares the journal entities. The store creates the
// matching tables itself; schema_test keeps the two in agreement.
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin holds the columns every journal entry starts with. The
// sequence is shared across tables so entries merge into one feed.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Journal-wide increasing sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the entry"),
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("UUID of the process session that wrote the entry"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
