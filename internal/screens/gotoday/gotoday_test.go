package gotoday

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/router"
	"github.com/abhisek/webdev100/internal/screen/screentest"
	"github.com/abhisek/webdev100/internal/screens/lesson"
	"github.com/abhisek/webdev100/internal/screens/notfound"
)

func typeDigits(s *GoToDayScreen, digits string) {
	for _, r := range digits {
		s.Update(screentest.Key(r))
	}
}

func TestSubmitDefinedDay(t *testing.T) {
	s := New(screentest.Deps(t))
	typeDigits(s, "21")

	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	msg, ok := screentest.Msg(t, cmd).(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	ls, ok := msg.Screen.(*lesson.LessonScreen)
	if !ok || ls.Day() != 21 {
		t.Errorf("opened %T", msg.Screen)
	}
}

func TestSubmitUndefinedDay(t *testing.T) {
	for _, digits := range []string{"50", "0", "999"} {
		t.Run(digits, func(t *testing.T) {
			s := New(screentest.Deps(t))
			typeDigits(s, digits)

			_, cmd := s.Update(screentest.Special(tea.KeyEnter))
			msg, ok := screentest.Msg(t, cmd).(router.ReplaceScreenMsg)
			if !ok {
				t.Fatal("expected ReplaceScreenMsg")
			}
			if _, ok := msg.Screen.(*notfound.NotFoundScreen); !ok {
				t.Errorf("opened %T, want not-found screen", msg.Screen)
			}
		})
	}
}

func TestSubmitEmpty(t *testing.T) {
	s := New(screentest.Deps(t))
	_, cmd := s.Update(screentest.Special(tea.KeyEnter))
	if cmd != nil {
		t.Error("empty input should not navigate")
	}
	if s.input.Err() == "" {
		t.Error("expected an inline error")
	}
}

func TestLettersIgnored(t *testing.T) {
	s := New(screentest.Deps(t))
	typeDigits(s, "1a2")
	if got := s.input.Value(); got != "12" {
		t.Errorf("input = %q, want 12", got)
	}
}
