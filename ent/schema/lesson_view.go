package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// LessonView records a lesson being opened from any surface.
type LessonView struct {
	ent.Schema
}

func (LessonView) Annotations() []entschema.Annotation {
	return []entschema.Annotation{entsql.Annotation{Table: "lesson_views"}}
}

func (LessonView) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonView) Fields() []ent.Field {
	return []ent.Field{
		field.Int("day").
			Range(1, 100),
		field.String("source").
			Comment("Where the lesson was opened: tui, web, api or cli"),
	}
}
