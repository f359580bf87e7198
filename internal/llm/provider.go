package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Provider sends a single prompt to a model and returns its answer.
type Provider interface {
	// Generate runs req. When req.Schema is set the provider asks for
	// structured output and Response.Content holds JSON that passed
	// validation against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier the provider sends requests to.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks for JSON output matching Definition.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}

// Schema names a JSON Schema the response must satisfy. Name is kebab-case
// and doubles as the tool or schema name on providers that want one.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the model output.
type Response struct {
	// Content is the validated JSON object when the request carried a
	// Schema, otherwise the raw text.
	Content json.RawMessage

	Usage      Usage
	Model      string
	StopReason string
}

// Decode unmarshals Content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
