package gotoday

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/screens/lesson"
	"github.com/abhisek/webdev100/internal/ui/components"
	"github.com/abhisek/webdev100/internal/ui/layout"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

// GoToDayScreen asks for a day number and opens it.
type GoToDayScreen struct {
	deps  *screen.Deps
	input components.TextInput
}

var _ screen.Screen = (*GoToDayScreen)(nil)
var _ screen.KeyHintProvider = (*GoToDayScreen)(nil)

// New creates the screen.
func New(deps *screen.Deps) *GoToDayScreen {
	return &GoToDayScreen{
		deps:  deps,
		input: components.NewTextInput(fmt.Sprintf("%d-%d", curriculum.FirstDay, curriculum.LastDay), true, 3),
	}
}

func (s *GoToDayScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GoToDayScreen) Title() string {
	return "Go to day"
}

func (s *GoToDayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Day"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *GoToDayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit replaces this screen with the lesson, or with the not-found
// screen for a number that has no lesson.
func (s *GoToDayScreen) submit() tea.Cmd {
	if s.input.Value() == "" {
		s.input.SetError("type a day number")
		return nil
	}
	day, err := s.input.NumericValue()
	if err != nil {
		s.input.SetError("not a number")
		return nil
	}
	return router.Replace(lesson.Open(s.deps, day))
}

func (s *GoToDayScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Which day do you want to open?"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d lessons, days %d to %d", s.deps.Catalog.Len(), curriculum.FirstDay, curriculum.LastDay)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
