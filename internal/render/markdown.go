// Package render turns lesson records into terminal text.
package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Style names accepted by glamour.WithStylePath.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	// StylePlain produces no escape sequences.
	StylePlain = "notty"
)

// Markdown renders explanation blobs with glamour. Renderers are built
// lazily per wrap width and reused. It is safe for concurrent use.
type Markdown struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown returns a renderer using a glamour style name. An empty
// style means StyleDark.
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = StyleDark
	}
	return &Markdown{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}

// Render formats md wrapped at width. If glamour fails the source text is
// returned unchanged so a lesson is never hidden behind a render error.
func (m *Markdown) Render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	r, err := m.renderer(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
