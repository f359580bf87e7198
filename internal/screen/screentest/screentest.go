// Package screentest builds screen dependencies for tests.
package screentest

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/logging"
	"github.com/abhisek/webdev100/internal/progress"
	"github.com/abhisek/webdev100/internal/render"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/store"
)

// Lesson returns a minimal valid lesson with one classwork and one
// homework exercise.
func Lesson(day int, cat curriculum.Category) curriculum.DayLesson {
	id := fmt.Sprintf("d%03d", day)
	return curriculum.DayLesson{
		Day:         day,
		Title:       fmt.Sprintf("Lesson %d", day),
		Category:    cat,
		Description: "desc",
		Objectives:  []string{"learn"},
		Explanation: "Some **text**.",
		Exercises: []curriculum.Exercise{
			{ID: id + "-class", Title: "In class", Type: curriculum.ExerciseClasswork, Difficulty: curriculum.DifficultyEasy, Instructions: []string{"do it"}},
			{ID: id + "-home", Title: "At home", Type: curriculum.ExerciseHomework, Difficulty: curriculum.DifficultyHard, Instructions: []string{"do more"}},
		},
	}
}

// Deps builds a catalog of days 1, 2, 3 (HTML) and 21, 22 (CSS) with an
// empty tracker and an in-memory session journal.
func Deps(t *testing.T) *screen.Deps {
	t.Helper()
	cat, err := curriculum.NewCatalog([]curriculum.DayLesson{
		Lesson(1, curriculum.CategoryHTML),
		Lesson(2, curriculum.CategoryHTML),
		Lesson(3, curriculum.CategoryHTML),
		Lesson(21, curriculum.CategoryCSS),
		Lesson(22, curriculum.CategoryCSS),
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	sess := store.NewSession(st.JournalRepo())

	return &screen.Deps{
		Catalog:  cat,
		Progress: progress.New(cat.Len(), progress.WithJournal(sess)),
		Session:  sess,
		Markdown: render.NewMarkdown(render.StylePlain),
		Log:      logging.Nop(),
	}
}

// Key returns a key press for a printable rune.
func Key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Special returns a key press for a named key such as tea.KeyEnter.
func Special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Msg runs cmd and returns its message, failing when cmd is nil.
func Msg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	return cmd()
}

// Plain strips escape sequences from a rendered view.
func Plain(s string) string {
	return ansi.Strip(s)
}
