package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/controller"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/ui/layout"
)

// Options holds dependencies injected into the app.
type Options struct {
	Progress *progress.Store
	Content  *content.Pack
	Logger   *log.Logger
	Rand     *rand.Rand
	Shuffle  puzzle.ShuffleOptions
	Now      func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *controller.Controller
	fx     *effects.Overlay
	width  int
	height int
}

// newAppModel wires the overlay renderer into a controller.
func newAppModel(opts Options) AppModel {
	fx := effects.NewOverlay(opts.Logger, opts.Rand)
	ctrl := controller.New(controller.Deps{
		Progress: opts.Progress,
		Content:  opts.Content,
		Renderer: fx,
		Logger:   opts.Logger,
		Rand:     opts.Rand,
		Now:      opts.Now,
		Shuffle:  opts.Shuffle,
	})
	return AppModel{ctrl: ctrl, fx: fx}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.ctrl.Init()
	return tea.Batch(cmd, m.fx.Cmd())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.ctrl.Save()
			return m, tea.Quit
		}
	}

	if handled, cmd := m.fx.Update(msg); handled {
		return m, cmd
	}

	cmd := m.ctrl.Update(msg)
	// Notify and Celebrate queue their timers on the overlay.
	return m, tea.Batch(cmd, m.fx.Cmd())
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole frame: header, toast line, optional confetti,
// the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	stats := m.ctrl.Progress().Stats()
	header := layout.RenderHeader(m.ctrl.Title(), stats.Tokens, stats.Keys, m.width)

	hints := append(m.ctrl.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	status := ""
	if cue := m.fx.LastCue(); cue != "" {
		status = "♪ " + string(cue)
	}
	footer := layout.RenderFooter(hints, status, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	// One line is kept for the toast so the screen does not jump.
	top := layout.RenderToast(m.fx.Toast(), m.width)
	screenHeight := contentHeight - 1
	if m.fx.Celebrating() {
		top += "\n" + m.fx.ConfettiView(m.width)
		screenHeight -= effects.ConfettiRows
	}
	if screenHeight < 0 {
		screenHeight = 0
	}

	content := top + "\n" + m.ctrl.View(m.width, screenHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
