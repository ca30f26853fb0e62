package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is delivered by a Ticker. Gen is the ticker generation that
// scheduled it.
type TickMsg struct {
	ID   string
	Gen  int
	Time time.Time
}

// Ticker is a restartable tick source. Start and Stop both bump the
// generation, so ticks already in flight from an earlier run never match
// Owns and are dropped by the receiver.
type Ticker struct {
	ID       string
	Interval time.Duration

	gen     int
	running bool
}

// NewTicker returns a stopped ticker.
func NewTicker(id string, interval time.Duration) *Ticker {
	return &Ticker{ID: id, Interval: interval}
}

// Start cancels any previous run and schedules the first tick.
func (t *Ticker) Start() tea.Cmd {
	t.gen++
	t.running = true
	return t.schedule(t.Interval)
}

// Stop cancels the current run.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
}

// Next schedules the following tick of the current run.
func (t *Ticker) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.schedule(t.Interval)
}

// After schedules a single tick of the current run after d.
func (t *Ticker) After(d time.Duration) tea.Cmd {
	if !t.running {
		return nil
	}
	return t.schedule(d)
}

// Owns reports whether msg belongs to the current run.
func (t *Ticker) Owns(msg TickMsg) bool {
	return t.running && msg.ID == t.ID && msg.Gen == t.gen
}

func (t *Ticker) Running() bool { return t.running }

func (t *Ticker) Gen() int { return t.gen }

func (t *Ticker) schedule(d time.Duration) tea.Cmd {
	id, gen := t.ID, t.gen
	return tea.Tick(d, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: now}
	})
}
