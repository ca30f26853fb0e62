package effects

import (
	"image/color"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"

	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const (
	// ToastDuration is how long a notice stays on screen.
	ToastDuration = 3 * time.Second

	// ConfettiRows is the height of the confetti strip.
	ConfettiRows = 6

	confettiFPS       = 30
	confettiCols      = 60
	confettiCount     = 36
	confettiMaxFrames = 4 * confettiFPS
)

var (
	confettiGlyphs = []string{"*", "✦", "•", "+", "◆", "♥"}
	confettiColors = []color.Color{theme.Primary, theme.Secondary, theme.Accent, theme.Success, theme.Error}
)

type particle struct {
	proj  *harmonica.Projectile
	glyph string
	color color.Color
}

// Overlay is the terminal Renderer. Screens themselves are drawn by the
// Bubble Tea view; Overlay keeps the transient layer on top: the current
// toast, the last cue and a confetti burst. Requests made outside the
// Update loop queue commands that the owner drains with Cmd.
type Overlay struct {
	log *log.Logger
	rng *rand.Rand

	toast       string
	toastTicker *screen.Ticker

	confetti       []particle
	confettiFrames int
	confettiTicker *screen.Ticker

	lastCue  Cue
	screen   screen.Name
	carousel int

	pending []tea.Cmd
}

var _ Renderer = (*Overlay)(nil)

// NewOverlay creates an Overlay. A nil logger discards diagnostics.
func NewOverlay(logger *log.Logger, rng *rand.Rand) *Overlay {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b9))
	}
	return &Overlay{
		log:            logger,
		rng:            rng,
		toastTicker:    screen.NewTicker("toast", ToastDuration),
		confettiTicker: screen.NewTicker("confetti", time.Second/confettiFPS),
	}
}

func (o *Overlay) RenderScreen(name screen.Name) {
	o.screen = name
	o.log.Debug("render screen", "screen", name)
}

func (o *Overlay) RenderBoard(b puzzle.Board) {
	o.log.Debug("render board", "board", b.String(), "solved", b.Solved())
}

func (o *Overlay) RenderCarousel(index int) {
	o.carousel = index
	o.log.Debug("render carousel", "index", index)
}

// Notify replaces the current toast and restarts its expiry.
func (o *Overlay) Notify(message string) {
	o.toast = message
	o.pending = append(o.pending, o.toastTicker.Start())
	o.log.Info("notice", "message", message)
}

func (o *Overlay) PlayCue(c Cue) {
	o.lastCue = c
	o.log.Debug("cue", "cue", c)
}

// Celebrate launches a fresh confetti burst, replacing any burst in flight.
func (o *Overlay) Celebrate() {
	o.confetti = o.confetti[:0]
	o.confettiFrames = 0
	for i := 0; i < confettiCount; i++ {
		pos := harmonica.Point{
			X: o.rng.Float64() * confettiCols,
			Y: ConfettiRows,
		}
		vel := harmonica.Vector{
			X: (o.rng.Float64() - 0.5) * 16,
			Y: -(6 + o.rng.Float64()*5),
		}
		o.confetti = append(o.confetti, particle{
			proj:  harmonica.NewProjectile(harmonica.FPS(confettiFPS), pos, vel, harmonica.TerminalGravity),
			glyph: confettiGlyphs[o.rng.IntN(len(confettiGlyphs))],
			color: confettiColors[o.rng.IntN(len(confettiColors))],
		})
	}
	o.pending = append(o.pending, o.confettiTicker.Start())
}

// Cmd drains the commands queued by Notify and Celebrate.
func (o *Overlay) Cmd() tea.Cmd {
	if len(o.pending) == 0 {
		return nil
	}
	cmds := o.pending
	o.pending = nil
	return tea.Batch(cmds...)
}

// Update consumes the overlay's own tick messages. It reports false for
// any message it does not own.
func (o *Overlay) Update(msg tea.Msg) (bool, tea.Cmd) {
	tick, ok := msg.(screen.TickMsg)
	if !ok {
		return false, nil
	}
	switch {
	case o.toastTicker.Owns(tick):
		o.toast = ""
		o.toastTicker.Stop()
		return true, nil
	case o.confettiTicker.Owns(tick):
		o.stepConfetti()
		if len(o.confetti) == 0 {
			o.confettiTicker.Stop()
			return true, nil
		}
		return true, o.confettiTicker.Next()
	case tick.ID == o.toastTicker.ID || tick.ID == o.confettiTicker.ID:
		// Stale tick from a replaced toast or burst.
		return true, nil
	}
	return false, nil
}

func (o *Overlay) stepConfetti() {
	o.confettiFrames++
	if o.confettiFrames >= confettiMaxFrames {
		o.confetti = o.confetti[:0]
		return
	}
	alive := o.confetti[:0]
	for _, p := range o.confetti {
		pos := p.proj.Update()
		if pos.Y > ConfettiRows || pos.X < 0 || pos.X >= confettiCols {
			continue
		}
		alive = append(alive, p)
	}
	o.confetti = alive
}

// Toast returns the visible notice, or "".
func (o *Overlay) Toast() string { return o.toast }

// LastCue returns the most recent cue.
func (o *Overlay) LastCue() Cue { return o.lastCue }

// Celebrating reports whether confetti is in flight.
func (o *Overlay) Celebrating() bool { return len(o.confetti) > 0 }

// ConfettiView renders the burst as a strip ConfettiRows high and width wide.
func (o *Overlay) ConfettiView(width int) string {
	if len(o.confetti) == 0 || width <= 0 {
		return ""
	}
	grid := make([][]string, ConfettiRows)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for _, p := range o.confetti {
		pos := p.proj.Position()
		row := int(pos.Y)
		col := int(pos.X * float64(width) / confettiCols)
		if row < 0 || row >= ConfettiRows || col < 0 || col >= width {
			continue
		}
		grid[row][col] = lipgloss.NewStyle().Foreground(p.color).Render(p.glyph)
	}
	lines := make([]string, ConfettiRows)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return strings.Join(lines, "\n")
}
