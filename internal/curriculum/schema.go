package curriculum

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// lessonSchemaURL is the resource name the schema is registered under.
const lessonSchemaURL = "schema://day-lesson.json"

// LessonSchema is the JSON Schema every authored lesson file must satisfy.
var LessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"day": map[string]any{
			"type":    "integer",
			"minimum": FirstDay,
			"maximum": LastDay,
		},
		"title": nonEmptyString(),
		"category": map[string]any{
			"type": "string",
			"enum": enumOf(AllCategories()),
		},
		"description": nonEmptyString(),
		"objectives": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    nonEmptyString(),
		},
		"explanation": nonEmptyString(),
		"key_terms": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"term":       nonEmptyString(),
					"definition": nonEmptyString(),
				},
				"required":             []any{"term", "definition"},
				"additionalProperties": false,
			},
		},
		"exercises": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":    "string",
						"pattern": "^d[0-9]{3}-[a-z0-9]+(-[a-z0-9]+)*$",
					},
					"title": nonEmptyString(),
					"type": map[string]any{
						"type": "string",
						"enum": []any{string(ExerciseClasswork), string(ExerciseHomework)},
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard)},
					},
					"instructions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    nonEmptyString(),
					},
				},
				"required":             []any{"id", "title", "type", "difficulty", "instructions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"day", "title", "category", "description", "objectives", "explanation", "key_terms", "exercises"},
	"additionalProperties": false,
}

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func enumOf(cats []Category) []any {
	out := make([]any, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded JSON value, so round-trip the map.
	raw, err := json.Marshal(LessonSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal lesson schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse lesson schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(lessonSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(lessonSchemaURL)
})

// validateDocument checks a decoded lesson document against LessonSchema.
// doc must already be in encoding/json form (maps, slices, float64).
func validateDocument(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile lesson schema: %w", err)
	}
	return schema.Validate(doc)
}
