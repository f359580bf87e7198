package notfound

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/ui/components"
	"github.com/abhisek/webdev100/internal/ui/layout"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

// NotFoundScreen is shown for a day with no lesson.
type NotFoundScreen struct {
	day  int
	home components.Button
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates the screen for day. A zero day renders a generic message.
func New(day int) *NotFoundScreen {
	return &NotFoundScreen{
		day:  day,
		home: components.NewButton("Back home", router.Reset),
	}
}

func (s *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (s *NotFoundScreen) Title() string {
	return "Not found"
}

// Message is the headline shown to the learner.
func (s *NotFoundScreen) Message() string {
	if s.day == 0 {
		return "Page not found"
	}
	return fmt.Sprintf("Day %d not found", s.day)
}

func (s *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.home, cmd = s.home.Update(msg)
	return s, cmd
}

func (s *NotFoundScreen) View(width, height int) string {
	body := theme.Problem.Render(s.Message()) + "\n\n" +
		theme.Hint.Render("The curriculum runs from day 1 to day 100.") + "\n\n" +
		s.home.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
