package router

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/screen"
)

// SwitchScreenMsg asks the owner of the router to move to another screen.
// The router does not act on it itself; the controller does, because a
// transition also records and persists progress.
type SwitchScreenMsg struct {
	Name screen.Name
}

// Switch returns a command that emits SwitchScreenMsg.
func Switch(name screen.Name) tea.Cmd {
	return func() tea.Msg { return SwitchScreenMsg{Name: name} }
}

// Router holds one instance of every screen and tracks which one is active.
// Only the active screen receives messages.
type Router struct {
	screens map[screen.Name]screen.Screen
	current screen.Name
}

// New creates an empty Router.
func New() *Router {
	return &Router{screens: make(map[screen.Name]screen.Screen)}
}

// Register adds or replaces the screen for name.
func (r *Router) Register(name screen.Name, s screen.Screen) {
	r.screens[name] = s
}

// Lookup returns the registered screen for name.
func (r *Router) Lookup(name screen.Name) (screen.Screen, bool) {
	s, ok := r.screens[name]
	return s, ok
}

// Switch deactivates the current screen, makes name current and runs its
// Init. Switching to the current screen re-runs Init.
func (r *Router) Switch(name screen.Name) (tea.Cmd, error) {
	next, ok := r.screens[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", screen.ErrUnknownScreen, name)
	}
	if prev, ok := r.screens[r.current]; ok {
		if d, ok := prev.(screen.Deactivator); ok {
			d.Deactivate()
		}
	}
	r.current = name
	return next.Init(), nil
}

// Current returns the name of the active screen, or "" before the first Switch.
func (r *Router) Current() screen.Name {
	return r.current
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.current]
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.current] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
