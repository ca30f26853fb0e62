// Package reveal types out the birthday letter behind the unlocked door.
package reveal

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/layout"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

var keys = struct {
	Skip, Continue, Video, Download key.Binding
}{
	Skip:     key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Skip")),
	Continue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Continue")),
	Video:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "Video")),
	Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Yearbook")),
}

// RevealScreen celebrates on entry and types the letter one rune at a time.
type RevealScreen struct {
	pack   *content.Pack
	fx     effects.Renderer
	prog   *progress.Store
	writer components.Typewriter
}

var _ screen.Screen = (*RevealScreen)(nil)

func New(pack *content.Pack, fx effects.Renderer, prog *progress.Store) *RevealScreen {
	return &RevealScreen{
		pack:   pack,
		fx:     fx,
		prog:   prog,
		writer: components.NewTypewriter(strings.TrimSpace(pack.Letter)),
	}
}

func (r *RevealScreen) Title() string {
	return "The Letter"
}

// Init fires the confetti and restarts the letter from the first rune.
func (r *RevealScreen) Init() tea.Cmd {
	r.fx.Celebrate()
	return r.writer.Start()
}

func (r *RevealScreen) Deactivate() {
	r.writer.Stop()
}

// Letter returns the part of the letter typed so far.
func (r *RevealScreen) Letter() string { return r.writer.Text() }

// Typing reports whether the letter is still being typed.
func (r *RevealScreen) Typing() bool { return r.writer.Running() }

func (r *RevealScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.TypewriterTickMsg:
		return r, r.writer.Update(msg)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Skip):
			r.writer.Skip()
		case key.Matches(msg, keys.Continue):
			return r, action.To(string(screen.PostReveal))
		case key.Matches(msg, keys.Video):
			return r, action.Of(action.PlayVideo)
		case key.Matches(msg, keys.Download):
			return r, action.Of(action.Download)
		}
	}
	return r, nil
}

func (r *RevealScreen) KeyHints() []layout.KeyHint {
	if r.writer.Running() {
		return layout.Hints(keys.Skip, keys.Continue)
	}
	return layout.Hints(keys.Continue, keys.Video, keys.Download)
}

func (r *RevealScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	letter := r.writer.Text()
	if r.writer.Running() {
		letter += "▌"
	}
	body := lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(letter)

	stats := r.prog.State().Stats()
	line := fmt.Sprintf("📸 %d memories   ◆ %d tokens   🏆 %d awards",
		len(r.pack.Photos), stats.Tokens, stats.Awards)

	sections := []string{
		components.PixelCard("💌 FOR YOU", body, cw),
		"",
		theme.Muted.Render(line),
	}
	return components.Center(strings.Join(sections, "\n"), width, height)
}
