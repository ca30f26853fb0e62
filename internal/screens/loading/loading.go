// Package loading is the boot screen: a stepped progress bar with captions
// that hands over to the countdown once every step has run.
package loading

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/router"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const (
	StepInterval = 150 * time.Millisecond
	TotalSteps   = 10
	SettleDelay  = 800 * time.Millisecond
)

// LoadingScreen advances one step per tick. After the last step it waits
// SettleDelay and asks for the countdown.
type LoadingScreen struct {
	captions []string
	step     int
	settled  bool
	ticker   *screen.Ticker
	spinner  spinner.Model
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a LoadingScreen showing captions, one per step.
func New(captions []string) *LoadingScreen {
	return &LoadingScreen{
		captions: captions,
		ticker:   screen.NewTicker("loading", StepInterval),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (l *LoadingScreen) Title() string {
	return ""
}

func (l *LoadingScreen) Init() tea.Cmd {
	l.step = 0
	l.settled = false
	return tea.Batch(l.ticker.Start(), l.spinner.Tick)
}

// Deactivate stops stepping so a resume that leaves early is not followed
// by a late hand-over.
func (l *LoadingScreen) Deactivate() {
	l.ticker.Stop()
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TickMsg:
		if !l.ticker.Owns(msg) {
			return l, nil
		}
		if l.settled {
			l.ticker.Stop()
			return l, router.Switch(screen.Countdown)
		}
		l.step++
		if l.step >= TotalSteps {
			l.settled = true
			return l, l.ticker.After(SettleDelay)
		}
		return l, l.ticker.Next()

	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

// Step returns how many steps have completed.
func (l *LoadingScreen) Step() int { return l.step }

// Caption returns the caption for the current step.
func (l *LoadingScreen) Caption() string {
	if len(l.captions) == 0 {
		return "LOADING..."
	}
	i := l.step - 1
	if i < 0 {
		i = 0
	}
	if i >= len(l.captions) {
		i = len(l.captions) - 1
	}
	return l.captions[i]
}

func (l *LoadingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	caption := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(l.Caption())
	if !l.settled {
		caption = l.spinner.View() + " " + caption
	}
	bar := components.NewProgressBar("", components.Steps(l.step, TotalSteps), true, cw).View()

	sections := []string{
		RenderBanner(width, height),
		"",
		caption,
		"",
		bar,
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
