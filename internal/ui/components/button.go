package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/ui/theme"
)

// Button is a styled button component. Enter or space presses it while
// it is focused.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a focused button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Focused: true,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Focused {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
