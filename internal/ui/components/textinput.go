package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Pixverse styling.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
	rejected bool
}

// NewTextInput creates a new styled text input. It starts blurred.
func NewTextInput(placeholder string, charLimit, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "✎ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	if maxWidth > 0 {
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		t.rejected = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.rejected {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ write something first")
	}
	return view
}

// Value returns the current input value, trimmed.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.Reset()
	t.rejected = false
}

// Reject flags the current value until the next key press.
func (t *TextInput) Reject() {
	t.rejected = true
}
