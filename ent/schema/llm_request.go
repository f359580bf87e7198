package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	entschema "entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// LLMRequest records every tutor call for cost tracking and debugging.
type LLMRequest struct {
	ent.Schema
}

func (LLMRequest) Annotations() []entschema.Annotation {
	return []entschema.Annotation{entsql.Annotation{Table: "llm_requests"}}
}

func (LLMRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("anthropic, openai, gemini, openrouter or mock"),
		field.String("model"),
		field.String("purpose").
			Comment("Caller label such as hint"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Text("error_message").
			Default(""),
	}
}
