package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all pixel cards.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// PixelCard wraps content in a rounded card with an optional title line.
func PixelCard(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Title.Width(cw-6).Render(title) + "\n\n" + content
	}
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(body)
}

// Modal wraps content in the double-bordered modal frame.
func Modal(content string, cw int) string {
	return theme.Modal.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// Dots renders a carousel position indicator.
func Dots(current, total int) string {
	var s string
	for i := 0; i < total; i++ {
		if i > 0 {
			s += " "
		}
		if i == current {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return s
}
