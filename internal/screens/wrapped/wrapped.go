// Package wrapped is the card carousel. Widget cards (music, photobox,
// awards) are set up each time they become the current card and torn down
// when the carousel moves on.
package wrapped

import (
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
	Prev, Next, Continue, Back key.Binding
}{
	Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "Prev")),
	Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "Next")),
	Continue: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "To the puzzle")),
	Back:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Countdown")),
}

// WrappedScreen shows one card at a time. The controller owns navigation
// and calls Show; the screen only emits prev/next actions.
type WrappedScreen struct {
	pack  *content.Pack
	index int

	music    *musicWidget
	photobox *photoboxWidget
	awards   *awardsWidget
}

var _ screen.Screen = (*WrappedScreen)(nil)

// New creates the carousel over pack's cards.
func New(pack *content.Pack, fx effects.Renderer, prog *progress.Store) *WrappedScreen {
	return &WrappedScreen{
		pack:     pack,
		music:    newMusicWidget(pack.Playlists),
		photobox: newPhotoboxWidget(pack.Photos, fx),
		awards:   newAwardsWidget(pack, fx, prog),
	}
}

func (w *WrappedScreen) Title() string {
	return "Your Year, Wrapped"
}

// Init re-runs the setup of the current card.
func (w *WrappedScreen) Init() tea.Cmd {
	return w.Show(w.index)
}

// Deactivate stops every widget timer.
func (w *WrappedScreen) Deactivate() {
	w.photobox.Stop()
	w.awards.Stop()
}

// Len returns the number of cards.
func (w *WrappedScreen) Len() int { return len(w.pack.Cards) }

// Index returns the current card.
func (w *WrappedScreen) Index() int { return w.index }

// Card returns the current card.
func (w *WrappedScreen) Card() content.Card {
	if w.index < 0 || w.index >= len(w.pack.Cards) {
		return content.Card{}
	}
	return w.pack.Cards[w.index]
}

func (w *WrappedScreen) wrap(i int) int {
	n := w.Len()
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Seek moves to card i without setting up its widget. Init does that when
// the screen is next entered.
func (w *WrappedScreen) Seek(i int) {
	w.Deactivate()
	w.index = w.wrap(i)
}

// Show makes card i current, tearing down the previous card's widget and
// setting up the new one.
func (w *WrappedScreen) Show(i int) tea.Cmd {
	w.Seek(i)

	switch w.Card().Kind {
	case content.KindMusic:
		return w.music.Start()
	case content.KindPhotobox:
		return w.photobox.Start()
	case content.KindAwards:
		return w.awards.Start()
	}
	return nil
}

func (w *WrappedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TickMsg:
		if cmd, ok := w.photobox.Tick(msg); ok {
			return w, cmd
		}
		if cmd, ok := w.awards.Tick(msg); ok {
			return w, cmd
		}

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Prev):
			return w, action.Of(action.PrevCard)
		case key.Matches(msg, keys.Next):
			return w, action.Of(action.NextCard)
		case key.Matches(msg, keys.Continue):
			return w, action.To(string(screen.Jigsaw))
		case key.Matches(msg, keys.Back):
			return w, action.Cmd(action.Action{Kind: action.Back, Target: string(screen.Countdown)})
		}
		switch w.Card().Kind {
		case content.KindMusic:
			return w, w.music.Key(msg)
		case content.KindPhotobox:
			return w, w.photobox.Key(msg)
		}
	}
	return w, nil
}

func (w *WrappedScreen) KeyHints() []layout.KeyHint {
	hints := layout.Hints(keys.Prev, keys.Next, keys.Continue)
	switch w.Card().Kind {
	case content.KindMusic:
		hints = append(hints, layout.Hints(musicKeys.Pick)...)
	case content.KindPhotobox:
		hints = append(hints, layout.Hints(photoKeys.Print, photoKeys.Memory)...)
	}
	return hints
}

func (w *WrappedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	card := w.Card()

	var body string
	switch card.Kind {
	case content.KindMusic:
		body = w.music.View(cw)
	case content.KindPhotobox:
		body = w.photobox.View(cw)
	case content.KindAwards:
		body = w.awards.View(cw)
	default:
		body = theme.Body.Render(strings.TrimSpace(card.Body))
	}

	sections := []string{
		components.PixelCard(card.Title, body, cw),
		"",
		components.Dots(w.index, w.Len()),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
