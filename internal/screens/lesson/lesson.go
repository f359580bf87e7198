package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/webdev100/internal/curriculum"
	"github.com/abhisek/webdev100/internal/render"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen"
	"github.com/abhisek/webdev100/internal/screens/notfound"
	"github.com/abhisek/webdev100/internal/tutor"
	"github.com/abhisek/webdev100/internal/ui/layout"
	"github.com/abhisek/webdev100/internal/ui/theme"
)

const hintPollInterval = 200 * time.Millisecond

type hintTickMsg time.Time

// LessonScreen shows one day in a scrollable viewport.
type LessonScreen struct {
	deps   *screen.Deps
	lesson curriculum.DayLesson

	vp       viewport.Model
	width    int
	height   int
	dirty    bool
	selected int // index into lesson.Exercises

	hintPending bool
	hint        *tutor.Hint
	hintErr     string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a screen for lesson.
func New(deps *screen.Deps, lesson curriculum.DayLesson) *LessonScreen {
	return &LessonScreen{
		deps:   deps,
		lesson: lesson,
		vp:     viewport.New(),
		dirty:  true,
	}
}

// Open returns the screen for day, or the not-found screen when the
// catalog has no such day.
func Open(deps *screen.Deps, day int) screen.Screen {
	l, ok := deps.Catalog.Lookup(day)
	if !ok {
		return notfound.New(day)
	}
	return New(deps, l)
}

func (s *LessonScreen) Init() tea.Cmd {
	s.deps.RecordView(s.lesson.Day)
	return nil
}

func (s *LessonScreen) Title() string {
	return fmt.Sprintf("Day %d", s.lesson.Day)
}

// Day returns the day on screen.
func (s *LessonScreen) Day() int {
	return s.lesson.Day
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "Tab", Description: "Exercise"},
	}
	if s.deps.Tutor.Enabled() {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintTickMsg:
		return s, s.pollHint()

	case tea.KeyMsg:
		switch msg.String() {
		case "space":
			s.deps.Progress.Toggle(context.Background(), s.lesson.Day)
			s.dirty = true
			return s, nil
		case "n":
			return s, s.neighbor(true)
		case "p":
			return s, s.neighbor(false)
		case "tab":
			s.selectExercise(1)
			return s, nil
		case "shift+tab":
			s.selectExercise(-1)
			return s, nil
		case "h":
			return s, s.requestHint()
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *LessonScreen) View(width, height int) string {
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.vp.SetWidth(width)
		s.vp.SetHeight(height)
		s.dirty = true
	}
	if s.dirty {
		s.vp.SetContent(s.content())
		s.dirty = false
	}
	return s.vp.View()
}

// content renders the lesson plus the hint panel.
func (s *LessonScreen) content() string {
	w := max(s.width-4, 20)
	body := render.Lesson(s.deps.Markdown, s.lesson, render.LessonOptions{
		Width:     w,
		Completed: s.deps.Progress.IsComplete(s.lesson.Day),
		Selected:  s.selectedID(),
	})

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(body))

	switch {
	case s.hintPending:
		b.WriteString("\n\n  " + theme.Hint.Render("Asking the tutor..."))
	case s.hintErr != "":
		b.WriteString("\n\n  " + theme.Problem.Render("Hint failed: "+s.hintErr))
	case s.hint != nil && s.hint.ExerciseID == s.selectedID():
		card := fmt.Sprintf("%s\n\n%s\n\n%s %s",
			theme.Heading.Render("Hint · "+s.hint.Concept),
			s.hint.Text,
			theme.Selected.Render("Next:"),
			s.hint.NextStep,
		)
		b.WriteString("\n\n" + theme.Card.Width(w).MarginLeft(2).Render(card))
	}
	b.WriteString("\n")
	return b.String()
}

func (s *LessonScreen) selectedID() string {
	if len(s.lesson.Exercises) == 0 {
		return ""
	}
	return s.ordered()[s.selected].ID
}

// ordered lists exercises the way they are rendered: classwork first.
func (s *LessonScreen) ordered() []curriculum.Exercise {
	cw, hw := curriculum.Partition(s.lesson.Exercises)
	return append(cw, hw...)
}

func (s *LessonScreen) selectExercise(step int) {
	n := len(s.lesson.Exercises)
	if n == 0 {
		return
	}
	s.selected = ((s.selected+step)%n + n) % n
	s.dirty = true
}

func (s *LessonScreen) neighbor(next bool) tea.Cmd {
	prev, nxt, ok := s.deps.Catalog.Neighbors(s.lesson.Day)
	if !ok {
		return nil
	}
	day := prev
	if next {
		day = nxt
	}
	if day == 0 {
		return nil
	}
	return router.Replace(Open(s.deps, day))
}

func (s *LessonScreen) requestHint() tea.Cmd {
	if !s.deps.Tutor.Enabled() || s.hintPending || len(s.lesson.Exercises) == 0 {
		return nil
	}
	ex := s.ordered()[s.selected]
	s.deps.Tutor.RequestHint(context.Background(), tutor.HintInput{Lesson: s.lesson, Exercise: ex})
	s.hintPending = true
	s.hint, s.hintErr = nil, ""
	s.dirty = true
	return hintTick()
}

// pollHint checks for a finished hint and keeps ticking until one arrives.
func (s *LessonScreen) pollHint() tea.Cmd {
	if !s.hintPending {
		return nil
	}
	res, ok := s.deps.Tutor.ConsumeHint()
	if !ok {
		return hintTick()
	}
	s.hintPending = false
	s.dirty = true
	if res.Err != nil {
		s.deps.Logger().Warn("hint request failed", "day", s.lesson.Day, "error", res.Err)
		s.hintErr = res.Err.Error()
		return nil
	}
	s.hint = res.Hint
	return nil
}

func hintTick() tea.Cmd {
	return tea.Tick(hintPollInterval, func(t time.Time) tea.Msg {
		return hintTickMsg(t)
	})
}
