package screen

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/ui/layout"
)

// Name identifies a screen in the journey.
type Name string

const (
	Loading    Name = "loading"
	Countdown  Name = "countdown"
	Wrapped    Name = "wrapped"
	Jigsaw     Name = "jigsaw"
	Reveal     Name = "reveal"
	PostReveal Name = "post-reveal"
)

// Names lists every screen in journey order.
var Names = []Name{Loading, Countdown, Wrapped, Jigsaw, Reveal, PostReveal}

// ErrUnknownScreen is returned when a name is not one of Names.
var ErrUnknownScreen = errors.New("unknown screen")

// Parse maps a string to a Name.
func Parse(s string) (Name, error) {
	for _, n := range Names {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
}

func (n Name) String() string { return string(n) }

// Screen defines the interface for all application screens.
type Screen interface {
	// Init runs every time the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// Deactivator is implemented by screens that own timers. Deactivate is
// called when another screen takes over and must stop every owned ticker.
type Deactivator interface {
	Deactivate()
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
