package wrapped

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const (
	// RevealInterval spaces out the award entrances.
	RevealInterval = 300 * time.Millisecond
	// ConfettiDelay follows the last entrance.
	ConfettiDelay = 500 * time.Millisecond
)

// awardsWidget unlocks the pack's awards and reveals every unlocked award
// one at a time, with a level-up cue each and confetti after the last.
type awardsWidget struct {
	pack   *content.Pack
	fx     effects.Renderer
	prog   *progress.Store
	ticker *screen.Ticker

	names    []string
	revealed int
}

func newAwardsWidget(pack *content.Pack, fx effects.Renderer, prog *progress.Store) *awardsWidget {
	return &awardsWidget{
		pack:   pack,
		fx:     fx,
		prog:   prog,
		ticker: screen.NewTicker("awards", RevealInterval),
	}
}

func (a *awardsWidget) Start() tea.Cmd {
	st := a.prog.State()
	st.UnlockAwards(a.pack.AwardNames())
	a.names = slices.Clone(st.UnlockedAwards)
	a.revealed = 0
	if len(a.names) == 0 {
		a.ticker.Stop()
		return nil
	}
	return a.ticker.Start()
}

func (a *awardsWidget) Stop() {
	a.ticker.Stop()
}

// Tick reports whether msg belonged to the awards reveal.
func (a *awardsWidget) Tick(msg screen.TickMsg) (tea.Cmd, bool) {
	if !a.ticker.Owns(msg) {
		return nil, msg.ID == a.ticker.ID
	}
	if a.revealed < len(a.names) {
		a.revealed++
		a.fx.PlayCue(effects.CueLevelUp)
		if a.revealed == len(a.names) {
			return a.ticker.After(ConfettiDelay), true
		}
		return a.ticker.Next(), true
	}
	a.ticker.Stop()
	a.fx.Celebrate()
	return nil, true
}

func (a *awardsWidget) View(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("ACHIEVEMENTS UNLOCKED"))
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("%d Awards", len(a.names))))
	b.WriteString("\n\n")
	for _, name := range a.names[:a.revealed] {
		aw := a.pack.Award(name)
		b.WriteString(theme.Body.Bold(true).Render(aw.Icon + " " + aw.Name))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  " + aw.Description))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
