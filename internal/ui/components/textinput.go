package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/webdev100/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with webdev100 styling and an inline
// error line.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	err         string
}

// NewTextInput creates a new focused text input. limit caps the number of
// characters; zero means no cap.
func NewTextInput(placeholder string, numericOnly bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Non-digit characters are dropped when
// NumericOnly is set; any edit clears the error line.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if t.NumericOnly && len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
		t.err = ""
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.err != "" {
		view += "\n" + theme.Problem.Render("✗ "+t.err)
	}
	return view
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Value())
}

// SetError shows msg under the input until the next edit.
func (t *TextInput) SetError(msg string) {
	t.err = msg
}

// Err returns the current error line.
func (t TextInput) Err() string {
	return t.err
}
