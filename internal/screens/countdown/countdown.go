// Package countdown shows the time left until the birthday and the button
// that starts the journey.
package countdown

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/layout"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

// TickInterval is the refresh period of the clock.
const TickInterval = time.Second

var keys = struct {
	Start key.Binding
}{
	Start: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Start journey")),
}

// Remaining is the time left, split for display.
type Remaining struct {
	Days, Hours, Minutes, Seconds int
}

// CountdownScreen ticks once per second until the target is reached, then
// stays in the arrived state with its ticker stopped.
type CountdownScreen struct {
	target  time.Time
	now     func() time.Time
	ticker  *screen.Ticker
	left    time.Duration
	arrived bool
	ticks   int
	start   components.Button
}

var _ screen.Screen = (*CountdownScreen)(nil)

// New creates a countdown to target. now defaults to time.Now.
func New(target time.Time, now func() time.Time) *CountdownScreen {
	if now == nil {
		now = time.Now
	}
	return &CountdownScreen{
		target: target,
		now:    now,
		ticker: screen.NewTicker("countdown", TickInterval),
		start: components.NewButton("START JOURNEY", true, func() tea.Cmd {
			return action.Of(action.Start)
		}),
	}
}

// SetTarget changes the date counted down to. It takes effect on the next
// refresh.
func (c *CountdownScreen) SetTarget(t time.Time) {
	c.target = t
}

func (c *CountdownScreen) Title() string {
	return "Countdown"
}

// Init refreshes immediately and starts a new ticker run, cancelling any
// run left over from an earlier visit.
func (c *CountdownScreen) Init() tea.Cmd {
	c.refresh()
	if c.arrived {
		c.ticker.Stop()
		return nil
	}
	return c.ticker.Start()
}

func (c *CountdownScreen) Deactivate() {
	c.ticker.Stop()
}

func (c *CountdownScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TickMsg:
		if !c.ticker.Owns(msg) {
			return c, nil
		}
		c.ticks++
		c.refresh()
		if c.arrived {
			c.ticker.Stop()
			return c, nil
		}
		return c, c.ticker.Next()

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		c.start, cmd = c.start.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CountdownScreen) refresh() {
	c.left = c.target.Sub(c.now())
	if c.left <= 0 {
		c.left = 0
		c.arrived = true
		return
	}
	c.arrived = false
}

// Arrived reports whether the target has been reached.
func (c *CountdownScreen) Arrived() bool { return c.arrived }

// Remaining returns the time left at the last refresh.
func (c *CountdownScreen) Remaining() Remaining {
	d := c.left
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	return Remaining{Days: days, Hours: hours, Minutes: minutes, Seconds: int(d / time.Second)}
}

// Ticks returns how many ticks of the current ticker were processed.
func (c *CountdownScreen) Ticks() int { return c.ticks }

func (c *CountdownScreen) KeyHints() []layout.KeyHint {
	return layout.Hints(keys.Start)
}

func (c *CountdownScreen) View(width, height int) string {
	var sections []string

	if c.arrived {
		sections = append(sections, theme.Big.Render("★ HAPPY BIRTHDAY! ★"))
	} else {
		r := c.Remaining()
		sections = append(sections,
			theme.Subtitle.Render("YOUR BIRTHDAY ARRIVES IN"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top,
				cell(r.Days, "DAYS", width), cell(r.Hours, "HOURS", width),
				cell(r.Minutes, "MINUTES", width), cell(r.Seconds, "SECONDS", width),
			),
		)
	}

	sections = append(sections,
		"",
		theme.Hint.Render(c.target.Format("Monday, 2 January 2006")),
		"",
		c.start.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func cell(n int, label string, width int) string {
	w, margin := 11, 1
	if layout.IsCompactWidth(width) {
		w, margin = 9, 0
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(w).
		Align(lipgloss.Center).
		Margin(0, margin).
		Render(theme.Big.Render(fmt.Sprintf("%02d", n)) + "\n" + theme.Muted.Render(label))
}
