package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ProgressChange records a day being marked or unmarked complete.
type ProgressChange struct {
	ent.Schema
}

func (ProgressChange) Annotations() []entschema.Annotation {
	return []entschema.Annotation{entsql.Annotation{Table: "progress_changes"}}
}

func (ProgressChange) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressChange) Fields() []ent.Field {
	return []ent.Field{
		field.Int("day").
			Range(1, 100),
		field.Bool("completed").
			Comment("State of the day after the change"),
	}
}
