package tutor

import "github.com/abhisek/webdev100/internal/llm"

// HintSchema is the structured output requested for exercise hints.
var HintSchema = &llm.Schema{
	Name:        "exercise-hint",
	Description: "A short hint that helps a beginner make progress on a web development exercise without solving it",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "2-4 sentences pointing the learner in the right direction. Do not give the full solution.",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "The HTML, CSS or JavaScript concept the exercise practises (2-5 words)",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "One concrete thing to try next",
			},
		},
		"required":             []any{"hint", "concept", "next_step"},
		"additionalProperties": false,
	},
}

type hintOutput struct {
	Hint     string `json:"hint"`
	Concept  string `json:"concept"`
	NextStep string `json:"next_step"`
}
