package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type pingMsg struct{}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "home"}
	r := New(s1)

	s2 := &stubScreen{title: "day 1"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "day 1" {
		t.Errorf("expected active 'day 1', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "catalog"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "day 1"})

	s3 := &stubScreen{title: "day 2"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "day 2" {
		t.Errorf("expected active 'day 2', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestResetReturnsToRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	r.Push(&stubScreen{title: "go to day"})
	r.Push(&stubScreen{title: "not found"})

	r.Update(ResetMsg{})

	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active() != root {
		t.Errorf("expected root screen to be active")
	}

	r.Update(ResetMsg{})
	if r.Depth() != 1 {
		t.Errorf("reset at root changed depth to %d", r.Depth())
	}
}

func TestMessageCommands(t *testing.T) {
	s := &stubScreen{title: "x"}
	tests := []struct {
		name string
		cmd  tea.Cmd
		want tea.Msg
	}{
		{"push", Push(s), PushScreenMsg{Screen: s}},
		{"pop", Pop(), PopScreenMsg{}},
		{"replace", Replace(s), ReplaceScreenMsg{Screen: s}},
		{"reset", Reset(), ResetMsg{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd(); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "home"}
	top := &stubScreen{title: "catalog"}
	r := New(root)
	r.Push(top)

	r.Update(pingMsg{})

	if len(top.got) != 1 {
		t.Errorf("active screen got %d messages, want 1", len(top.got))
	}
	if len(root.got) != 0 {
		t.Errorf("inactive screen got %d messages, want 0", len(root.got))
	}
	if r.View(80, 24) != "catalog" {
		t.Errorf("View rendered %q", r.View(80, 24))
	}
}
