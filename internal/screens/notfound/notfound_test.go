package notfound

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/router"
)

func TestView(t *testing.T) {
	s := New(250)
	v := s.View(80, 20)
	if !strings.Contains(v, "Day 250 not found") {
		t.Errorf("view missing message: %q", v)
	}
	if !strings.Contains(v, "Back home") {
		t.Errorf("view missing home button: %q", v)
	}
}

func TestGenericMessage(t *testing.T) {
	if got := New(0).Message(); got != "Page not found" {
		t.Errorf("Message() = %q", got)
	}
}

func TestEnterResetsToHome(t *testing.T) {
	s := New(0)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.ResetMsg); !ok {
		t.Errorf("expected ResetMsg, got %T", cmd())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := New(3)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Errorf("expected no command, got %T", cmd())
	}
}
