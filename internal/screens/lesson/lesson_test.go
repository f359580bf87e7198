package lesson

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/llm"
	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen/screentest"
	"github.com/abhisek/webdev100/internal/screens/notfound"
	"github.com/abhisek/webdev100/internal/store"
	"github.com/abhisek/webdev100/internal/tutor"
)

func TestOpen(t *testing.T) {
	deps := screentest.Deps(t)

	if s, ok := Open(deps, 2).(*LessonScreen); !ok || s.Day() != 2 {
		t.Errorf("Open(2) = %T", Open(deps, 2))
	}
	if _, ok := Open(deps, 50).(*notfound.NotFoundScreen); !ok {
		t.Errorf("Open(50) = %T, want not-found screen", Open(deps, 50))
	}
}

func TestInitRecordsView(t *testing.T) {
	deps := screentest.Deps(t)
	s := Open(deps, 3)
	s.Init()

	recent, err := deps.Session.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Kind != store.ActivityLessonView || recent[0].Day != 3 || recent[0].Source != store.SourceTUI {
		t.Errorf("journal = %+v", recent)
	}
}

func TestSpaceTogglesCompletion(t *testing.T) {
	deps := screentest.Deps(t)
	s := Open(deps, 1)
	s.View(80, 30)

	s.Update(screentest.Key(' '))
	if !deps.Progress.IsComplete(1) {
		t.Fatal("day 1 should be complete")
	}
	if v := s.View(80, 30); !strings.Contains(v, "completed") {
		t.Errorf("view does not show completion:\n%s", v)
	}

	s.Update(screentest.Key(' '))
	if deps.Progress.IsComplete(1) {
		t.Error("second toggle should clear completion")
	}
}

func TestNextPrevious(t *testing.T) {
	deps := screentest.Deps(t)

	tests := []struct {
		name    string
		day     int
		key     rune
		wantDay int
	}{
		{"next", 2, 'n', 3},
		{"next skips gap", 3, 'n', 21},
		{"previous", 21, 'p', 3},
		{"no previous on first", 1, 'p', 0},
		{"no next on last", 22, 'n', 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(deps, tt.day)
			_, cmd := s.Update(screentest.Key(tt.key))
			if tt.wantDay == 0 {
				if cmd != nil {
					t.Errorf("expected no navigation, got %T", cmd())
				}
				return
			}
			msg, ok := screentest.Msg(t, cmd).(router.ReplaceScreenMsg)
			if !ok {
				t.Fatalf("expected ReplaceScreenMsg")
			}
			if got := msg.Screen.(*LessonScreen).Day(); got != tt.wantDay {
				t.Errorf("navigated to %d, want %d", got, tt.wantDay)
			}
		})
	}
}

func TestTabSelectsExercise(t *testing.T) {
	deps := screentest.Deps(t)
	s := New(deps, deps.Catalog.All()[0])

	if s.selectedID() != "d001-class" {
		t.Fatalf("initial selection %q", s.selectedID())
	}
	s.Update(screentest.Special(tea.KeyTab))
	if s.selectedID() != "d001-home" {
		t.Errorf("after tab %q", s.selectedID())
	}
	s.Update(screentest.Special(tea.KeyTab))
	if s.selectedID() != "d001-class" {
		t.Errorf("tab should wrap, got %q", s.selectedID())
	}
	if v := screentest.Plain(s.View(80, 80)); !strings.Contains(v, "▸ In class") {
		t.Errorf("selected exercise not highlighted:\n%s", v)
	}
}

func TestHintKeyWithoutTutor(t *testing.T) {
	deps := screentest.Deps(t)
	s := Open(deps, 1).(*LessonScreen)

	_, cmd := s.Update(screentest.Key('h'))
	if cmd != nil {
		t.Error("hint key should do nothing without a tutor")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "h" {
			t.Error("hint key advertised without a tutor")
		}
	}
}

func TestHintFlow(t *testing.T) {
	deps := screentest.Deps(t)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"hint":"Use a heading tag.","concept":"headings","next_step":"Add an h1."}`)})
	deps.Tutor = tutor.NewService(mock, tutor.DefaultConfig())
	t.Cleanup(deps.Tutor.Wait)

	s := Open(deps, 1).(*LessonScreen)
	s.View(80, 80)

	_, cmd := s.Update(screentest.Key('h'))
	if cmd == nil {
		t.Fatal("expected a poll tick")
	}
	if !strings.Contains(s.View(80, 80), "Asking the tutor") {
		t.Error("pending state not shown")
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.hintPending && time.Now().Before(deadline) {
		s.Update(hintTickMsg(time.Now()))
		time.Sleep(5 * time.Millisecond)
	}
	if s.hintPending {
		t.Fatal("hint never arrived")
	}
	v := s.View(80, 80)
	if !strings.Contains(v, "headings") || !strings.Contains(v, "Add an h1.") {
		t.Errorf("hint not rendered:\n%s", v)
	}
	if got := mock.Calls[0].Messages[0].Content; !strings.Contains(got, "d001-class") {
		t.Errorf("hint asked for the wrong exercise: %s", got)
	}
}
