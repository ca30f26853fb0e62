package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TypewriterInterval is the delay between two revealed runes.
const TypewriterInterval = 50 * time.Millisecond

// TypewriterTickMsg advances the typewriter with the matching generation.
type TypewriterTickMsg struct {
	Gen int
}

// Typewriter reveals a text one rune per tick. Start cancels any run in
// progress, so the text is never typed by two runs at once.
type Typewriter struct {
	runes    []rune
	shown    int
	gen      int
	running  bool
	interval time.Duration
}

// NewTypewriter creates a typewriter for text. Nothing is shown until Start.
func NewTypewriter(text string) Typewriter {
	return Typewriter{runes: []rune(text), interval: TypewriterInterval}
}

// Start resets the text to empty and begins typing.
func (t *Typewriter) Start() tea.Cmd {
	t.gen++
	t.shown = 0
	t.running = true
	return t.tick()
}

// Stop cancels typing, leaving the revealed part in place.
func (t *Typewriter) Stop() {
	t.gen++
	t.running = false
}

// Skip reveals the whole text and stops.
func (t *Typewriter) Skip() {
	t.shown = len(t.runes)
	t.Stop()
}

// Update consumes ticks of the current run.
func (t *Typewriter) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || !t.running || tick.Gen != t.gen {
		return nil
	}
	if t.shown < len(t.runes) {
		t.shown++
	}
	if t.shown >= len(t.runes) {
		t.running = false
		return nil
	}
	return t.tick()
}

func (t Typewriter) tick() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TypewriterTickMsg{Gen: gen}
	})
}

// Text returns the revealed part.
func (t Typewriter) Text() string { return string(t.runes[:t.shown]) }

// Done reports whether the whole text is shown.
func (t Typewriter) Done() bool { return t.shown >= len(t.runes) }

// Running reports whether a run is in progress.
func (t Typewriter) Running() bool { return t.running }

// Gen returns the current run generation.
func (t Typewriter) Gen() int { return t.gen }
