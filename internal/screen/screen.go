// Package screen defines what the router stacks: a Screen, plus the Deps
// bundle every screen is built from.
package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/progress"
	"github.com/abhisek/webdev100/internal/render"
	"github.com/abhisek/webdev100/internal/store"
	"github.com/abhisek/webdev100/internal/tutor"
	"github.com/abhisek/webdev100/internal/ui/layout"
)

// Screen is one page of the TUI. The app draws the header and footer;
// View renders only the body.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Deps is what screens share. Session and Tutor may be nil.
type Deps struct {
	Catalog  *curriculum.Catalog
	Progress *progress.Tracker
	Session  *store.Session
	Tutor    *tutor.Service
	Markdown *render.Markdown
	Log      *logging.Logger
}

// RecordView journals a lesson opened in the TUI. Failures are logged.
func (d *Deps) RecordView(day int) {
	if d.Session == nil {
		return
	}
	if err := d.Session.RecordLessonView(context.Background(), day, store.SourceTUI); err != nil {
		d.Logger().Warn("record lesson view", "day", day, "error", err)
	}
}

// Logger returns Log or a no-op logger.
func (d *Deps) Logger() *logging.Logger {
	if d.Log == nil {
		return logging.Nop()
	}
	return d.Log
}
