package wrapped

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

// PrintInterval is the time between two captured photos.
const PrintInterval = 2500 * time.Millisecond

var photoKeys = struct {
	Print, Memory key.Binding
}{
	Print:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Print")),
	Memory: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Open memory")),
}

// photoboxWidget prints the photos one by one onto a strip.
type photoboxWidget struct {
	photos   []content.Photo
	fx       effects.Renderer
	ticker   *screen.Ticker
	captured int
}

func newPhotoboxWidget(photos []content.Photo, fx effects.Renderer) *photoboxWidget {
	return &photoboxWidget{
		photos: photos,
		fx:     fx,
		ticker: screen.NewTicker("photobox", PrintInterval),
	}
}

// Start shows the idle booth. Printing waits for the player.
func (p *photoboxWidget) Start() tea.Cmd {
	p.ticker.Stop()
	p.captured = 0
	return nil
}

func (p *photoboxWidget) Stop() {
	p.ticker.Stop()
}

func (p *photoboxWidget) Printing() bool { return p.ticker.Running() }

func (p *photoboxWidget) Done() bool {
	return len(p.photos) > 0 && p.captured >= len(p.photos)
}

func (p *photoboxWidget) Key(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, photoKeys.Print):
		if p.Printing() || len(p.photos) == 0 {
			return nil
		}
		if p.Done() {
			p.captured = 0
		}
		return p.ticker.Start()
	case key.Matches(msg, photoKeys.Memory):
		if p.captured == 0 {
			return nil
		}
		ph := p.photos[p.captured-1]
		return func() tea.Msg { return action.OpenMemoryMsg{ID: ph.ID, Caption: ph.Caption} }
	}
	return nil
}

// Tick reports whether msg belonged to the photobox.
func (p *photoboxWidget) Tick(msg screen.TickMsg) (tea.Cmd, bool) {
	if !p.ticker.Owns(msg) {
		return nil, msg.ID == p.ticker.ID
	}
	p.captured++
	if p.Done() {
		p.ticker.Stop()
		p.fx.Notify("Photostrip printed! Press m to open a memory.")
		return nil, true
	}
	return p.ticker.Next(), true
}

func (p *photoboxWidget) status() string {
	switch {
	case p.Printing():
		return fmt.Sprintf("CAPTURED %d/%d", p.captured, len(p.photos))
	case p.Done():
		return "PRINT COMPLETE · press p to print again"
	default:
		return "READY TO PRINT · press p to start"
	}
}

func (p *photoboxWidget) View(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("● PHOTOBOX SESSION ●"))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(p.status()))
	b.WriteString("\n\n")

	if p.captured == 0 {
		b.WriteString(theme.Hint.Render("The strip is empty."))
		return b.String()
	}
	// The newest frames fit; older ones scroll off the top.
	start := max(0, p.captured-4)
	for i := start; i < p.captured; i++ {
		b.WriteString(theme.Body.Render(fmt.Sprintf("[%2d] %s", i+1, p.photos[i].Caption)))
		b.WriteString("\n")
	}
	b.WriteString(theme.Selected.Render("♥ MEMORIES ♥"))
	return b.String()
}
