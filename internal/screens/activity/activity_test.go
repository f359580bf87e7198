package activity

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/webdev100/internal/screen/screentest"
	"github.com/abhisek/webdev100/internal/store"
)

func load(t *testing.T, s *ActivityScreen) {
	t.Helper()
	s.Update(screentest.Msg(t, s.Init()))
}

func TestShowsJournalNewestFirst(t *testing.T) {
	deps := screentest.Deps(t)
	ctx := context.Background()
	deps.RecordView(2)
	deps.Progress.Complete(ctx, 2)

	s := New(deps)
	load(t, s)

	v := screentest.Plain(s.View(80, 20))
	done := strings.Index(v, "Completed day 2")
	opened := strings.Index(v, "Opened day 2 (tui)")
	if done < 0 || opened < 0 {
		t.Fatalf("missing entries:\n%s", v)
	}
	if done > opened {
		t.Errorf("entries not newest first:\n%s", v)
	}
}

func TestEmpty(t *testing.T) {
	s := New(screentest.Deps(t))
	if !strings.Contains(s.View(80, 20), "Loading") {
		t.Error("expected loading state before Init")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Nothing yet") {
		t.Errorf("expected empty state")
	}
}

func TestNoSession(t *testing.T) {
	deps := screentest.Deps(t)
	deps.Session = nil
	s := New(deps)
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Nothing yet") {
		t.Errorf("expected empty state without a session")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in   store.Activity
		want string
	}{
		{store.Activity{Kind: store.ActivityLessonView, Day: 4, Source: store.SourceWeb}, "Opened day 4 (web)"},
		{store.Activity{Kind: store.ActivityProgressChange, Day: 4}, "Reopened day 4"},
		{store.Activity{Kind: store.ActivityLLMRequest, Purpose: "exercise-hint", Model: "mock", Success: false}, "AI exercise-hint via mock: failed"},
	}
	for _, tt := range tests {
		if got := Describe(tt.in); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
