package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-hint",
		Description: "A test hint",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint":    map[string]any{"type": "string", "minLength": 1},
				"concept": map[string]any{"type": "string"},
				"level":   map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
				"minutes": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []string{"hint", "concept"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"hint":"Close the tag.","concept":"elements","level":"easy","minutes":5}`, false},
		{"optional fields omitted", `{"hint":"Close the tag.","concept":"elements"}`, false},
		{"missing required", `{"hint":"Close the tag."}`, true},
		{"empty hint", `{"hint":"","concept":"elements"}`, true},
		{"wrong type", `{"hint":"x","concept":"y","minutes":"five"}`, true},
		{"negative minutes", `{"hint":"x","concept":"y","minutes":-1}`, true},
		{"enum violation", `{"hint":"x","concept":"y","level":"expert"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercise": map[string]any{
					"type":       "object",
					"properties": map[string]any{"id": map[string]any{"type": "string"}},
					"required":   []any{"id"},
				},
				"steps": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"exercise", "steps"},
		},
	}

	valid := json.RawMessage(`{"exercise":{"id":"d001-a"},"steps":["open","save"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"exercise":{"id":"d001-a"},"steps":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := testSchema()
	a, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Fatal("expected the cached schema on the second call")
	}
}
