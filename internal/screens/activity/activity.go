package activity

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/store"
	"github.com/abhisek/webdev100/internal/ui/layout"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

// Limit caps how many journal entries the screen loads.
const Limit = 200

type activityLoadedMsg struct {
	Entries []store.Activity
	Usage   store.LLMUsage
	Err     error
}

// ActivityScreen lists this session's journal, newest first.
type ActivityScreen struct {
	deps    *screen.Deps
	entries []store.Activity
	usage   store.LLMUsage
	offset  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ActivityScreen)(nil)
var _ screen.KeyHintProvider = (*ActivityScreen)(nil)

// New creates a new ActivityScreen.
func New(deps *screen.Deps) *ActivityScreen {
	return &ActivityScreen{deps: deps}
}

func (s *ActivityScreen) Init() tea.Cmd {
	sess := s.deps.Session
	return func() tea.Msg {
		if sess == nil {
			return activityLoadedMsg{}
		}
		ctx := context.Background()
		entries, err := sess.Recent(ctx, Limit)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		usage, err := sess.Usage(ctx)
		if err != nil {
			return activityLoadedMsg{Entries: entries, Err: err}
		}
		return activityLoadedMsg{Entries: entries, Usage: usage}
	}
}

func (s *ActivityScreen) Title() string {
	return "Session activity"
}

func (s *ActivityScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ActivityScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.entries = msg.Entries
		s.usage = msg.Usage
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.entries)-1 {
				s.offset++
			}
		case "r":
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *ActivityScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\nLoading activity...")
	}
	if len(s.entries) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNothing yet. Open a lesson to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")
	if s.usage.Requests > 0 {
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("AI hints: %d requests, %d failed, %d tokens",
			s.usage.Requests, s.usage.Failures, s.usage.InputTokens+s.usage.OutputTokens)))
		b.WriteString("\n\n")
	}

	rows := max(height-4, 1)
	for i := s.offset; i < len(s.entries) && i < s.offset+rows; i++ {
		e := s.entries[i]
		line := fmt.Sprintf("  %s  %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(e.Timestamp.Local().Format("15:04:05")),
			Describe(e))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Describe renders one journal entry as a sentence.
func Describe(e store.Activity) string {
	switch e.Kind {
	case store.ActivityLessonView:
		return fmt.Sprintf("Opened day %d (%s)", e.Day, e.Source)
	case store.ActivityProgressChange:
		if e.Completed {
			return theme.Done.Render(fmt.Sprintf("✓ Completed day %d", e.Day))
		}
		return fmt.Sprintf("Reopened day %d", e.Day)
	case store.ActivityLLMRequest:
		status := "ok"
		if !e.Success {
			status = "failed"
		}
		return fmt.Sprintf("AI %s via %s: %s", e.Purpose, e.Model, status)
	default:
		return string(e.Kind)
	}
}
