package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint":    map[string]any{"type": "string", "description": "one short nudge"},
			"level":   map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"steps":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"minutes": map[string]any{"type": "integer"},
		},
		"required": []string{"hint"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(s.Properties))
	}
	if s.Properties["hint"].Description != "one short nudge" {
		t.Fatalf("description lost: %q", s.Properties["hint"].Description)
	}
	if got := s.Properties["level"].Enum; len(got) != 3 || got[2] != "hard" {
		t.Fatalf("enum = %v", got)
	}
	if s.Properties["steps"].Type != genai.TypeArray || s.Properties["steps"].Items.Type != genai.TypeString {
		t.Fatalf("array items not converted")
	}
	if s.Properties["minutes"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER, got %s", s.Properties["minutes"].Type)
	}
	if len(s.Required) != 1 || s.Required[0] != "hint" {
		t.Fatalf("required = %v", s.Required)
	}
}

func TestGeminiContentsRoles(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "a"},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Fatalf("roles = %q, %q", got[0].Role, got[1].Role)
	}
}
