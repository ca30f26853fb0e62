package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/ui/theme"
)

// Selector is a horizontal row of options. Tab cycles, and the digit keys
// 1..9 jump straight to an option.
type Selector struct {
	Options  []string
	Selected int
}

// NewSelector creates a selector with the first option active.
func NewSelector(options []string) Selector {
	return Selector{Options: options}
}

// Update handles tab and digit keys. It reports whether the selection changed.
func (s Selector) Update(msg tea.Msg) (Selector, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.Options) == 0 {
		return s, false
	}

	prev := s.Selected
	key := kmsg.String()
	switch key {
	case "tab":
		s.Selected = (s.Selected + 1) % len(s.Options)
	case "shift+tab":
		s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(s.Options) {
			s.Selected = n - 1
		}
	}
	return s, s.Selected != prev
}

// View renders the options side by side.
func (s Selector) View() string {
	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		label := strconv.Itoa(i+1) + " " + opt
		if i == s.Selected {
			parts = append(parts, theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(label))
		}
	}
	return strings.Join(parts, " ")
}
