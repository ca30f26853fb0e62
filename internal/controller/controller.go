// Package controller is the journey state machine. It owns the router and
// every screen, applies actions to progress and persists after each change.
package controller

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/router"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/screens/countdown"
	"github.com/abhisek/pixverse/internal/screens/jigsaw"
	"github.com/abhisek/pixverse/internal/screens/loading"
	"github.com/abhisek/pixverse/internal/screens/postreveal"
	"github.com/abhisek/pixverse/internal/screens/reveal"
	"github.com/abhisek/pixverse/internal/screens/wrapped"
	"github.com/abhisek/pixverse/internal/ui/layout"
)

// ResumeDelay is how long a returning player sees the loading screen
// before being taken back to the cards.
const ResumeDelay = 500 * time.Millisecond

// Deps are the collaborators of a Controller. Progress, Content and
// Renderer are required.
type Deps struct {
	Progress *progress.Store
	Content  *content.Pack
	Renderer effects.Renderer
	Logger   *log.Logger
	Rand     *rand.Rand
	Now      func() time.Time
	Shuffle  puzzle.ShuffleOptions
}

// Controller drives the screens.
type Controller struct {
	router *router.Router
	prog   *progress.Store
	pack   *content.Pack
	fx     effects.Renderer
	log    *log.Logger

	loading   *loading.LoadingScreen
	countdown *countdown.CountdownScreen
	wrapped   *wrapped.WrappedScreen
	jigsaw    *jigsaw.JigsawScreen
	reveal    *reveal.RevealScreen
	post      *postreveal.PostRevealScreen

	card   int
	modal  *action.OpenMemoryMsg
	resume *screen.Ticker
	stages map[string]*stage
}

// New builds every screen and registers it with a fresh router.
func New(d Deps) *Controller {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	c := &Controller{
		router: router.New(),
		prog:   d.Progress,
		pack:   d.Content,
		fx:     d.Renderer,
		log:    d.Logger,
		resume: screen.NewTicker("resume", ResumeDelay),
	}

	c.loading = loading.New(d.Content.Loading)
	c.countdown = countdown.New(d.Progress.State().BirthdayDate, d.Now)
	c.wrapped = wrapped.New(d.Content, d.Renderer, d.Progress)
	c.jigsaw = jigsaw.New(d.Rand, d.Shuffle, d.Renderer, d.Progress)
	c.reveal = reveal.New(d.Content, d.Renderer, d.Progress)
	c.post = postreveal.New(d.Content, d.Progress)

	c.router.Register(screen.Loading, c.loading)
	c.router.Register(screen.Countdown, c.countdown)
	c.router.Register(screen.Wrapped, c.wrapped)
	c.router.Register(screen.Jigsaw, c.jigsaw)
	c.router.Register(screen.Reveal, c.reveal)
	c.router.Register(screen.PostReveal, c.post)

	c.stages = c.newStages()
	return c
}

// Init loads progress and enters the loading screen. A player whose journey
// already started is taken to the cards after ResumeDelay.
func (c *Controller) Init() tea.Cmd {
	res := c.prog.Load(context.Background())
	c.countdown.SetTarget(c.prog.State().BirthdayDate)

	cmd, _ := c.switchTo(screen.Loading)
	if !res.Resume {
		return cmd
	}
	c.log.Info("resuming journey", "tokens", c.prog.State().Tokens)
	return tea.Batch(cmd, c.resume.Start())
}

// TransitionTo activates the named screen and persists. An unknown name
// leaves everything as it was.
func (c *Controller) TransitionTo(name screen.Name) (tea.Cmd, error) {
	cmd, err := c.switchTo(name)
	if err != nil {
		return nil, err
	}
	c.save()
	return cmd, nil
}

func (c *Controller) switchTo(name screen.Name) (tea.Cmd, error) {
	if _, ok := c.router.Lookup(name); !ok {
		err := fmt.Errorf("%w: %q", screen.ErrUnknownScreen, name)
		c.log.Error("transition failed", "screen", name, "err", err)
		c.fx.Notify(fmt.Sprintf("Screen %s not available", name))
		return nil, err
	}
	c.modal = nil
	cmd, err := c.router.Switch(name)
	if err != nil {
		return nil, err
	}
	c.prog.State().CurrentScreen = string(name)
	c.fx.RenderScreen(name)
	c.log.Debug("screen", "name", name)
	return cmd, nil
}

// Current returns the active screen.
func (c *Controller) Current() screen.Name { return c.router.Current() }

// Card returns the carousel cursor.
func (c *Controller) Card() int { return c.card }

// Progress returns the live progress.
func (c *Controller) Progress() *progress.Progress { return c.prog.State() }

// Jigsaw exposes the puzzle screen.
func (c *Controller) Jigsaw() *jigsaw.JigsawScreen { return c.jigsaw }

// NextCard moves the carousel forward, wrapping at the end. The first
// visit to an index grants CardTokenReward.
func (c *Controller) NextCard() tea.Cmd {
	next := c.wrapCard(c.card + 1)
	if c.prog.State().MarkViewed(next, progress.CardTokenReward) {
		c.log.Debug("card viewed", "index", next, "tokens", c.prog.State().Tokens)
	}
	return c.showCard(next)
}

// PrevCard moves the carousel back, wrapping at the start.
func (c *Controller) PrevCard() tea.Cmd {
	return c.showCard(c.wrapCard(c.card - 1))
}

func (c *Controller) wrapCard(i int) int {
	n := c.wrapped.Len()
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (c *Controller) showCard(i int) tea.Cmd {
	c.card = i
	c.fx.RenderCarousel(i)
	if c.router.Current() != screen.Wrapped {
		c.wrapped.Seek(i)
		return nil
	}
	return c.wrapped.Show(i)
}

// Save persists the current progress. Failures are logged by the store.
func (c *Controller) Save() {
	c.save()
}

func (c *Controller) save() {
	// Failures are logged by the store and never interrupt the journey.
	_ = c.prog.Save(context.Background())
}

// Update routes a message. Controller-level messages are handled here;
// everything else goes to the active screen.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.SwitchScreenMsg:
		cmd, _ := c.TransitionTo(msg.Name)
		return cmd

	case action.Msg:
		return c.Dispatch(msg.Action)

	case action.OpenMemoryMsg:
		c.openModal(msg)
		return nil

	case action.PersistMsg:
		c.log.Debug("persist", "reason", msg.Reason)
		c.save()
		return nil

	case screen.TickMsg:
		if cmd, ok := c.tick(msg); ok {
			return cmd
		}

	case tea.KeyPressMsg:
		if c.modal != nil {
			return c.modalKey(msg)
		}
	}
	return c.router.Update(msg)
}

func (c *Controller) tick(msg screen.TickMsg) (tea.Cmd, bool) {
	if c.resume.Owns(msg) {
		c.resume.Stop()
		// The player may have moved on by hand while loading.
		if c.router.Current() != screen.Loading {
			return nil, true
		}
		cmd, _ := c.TransitionTo(screen.Wrapped)
		return cmd, true
	}
	for _, st := range c.stages {
		if st.ticker.Owns(msg) {
			st.ticker.Stop()
			st.done()
			return nil, true
		}
	}
	return nil, false
}

// Title is the header title.
func (c *Controller) Title() string {
	if c.modal != nil {
		return "Memory"
	}
	if s := c.router.Active(); s != nil {
		return s.Title()
	}
	return ""
}

// KeyHints returns the footer hints for the modal or the active screen.
func (c *Controller) KeyHints() []layout.KeyHint {
	if c.modal != nil {
		return layout.Hints(modalKeys.Pin, modalKeys.Close)
	}
	if p, ok := c.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return nil
}

// View renders the active screen, or the memory modal on top of it.
func (c *Controller) View(width, height int) string {
	if c.modal != nil {
		return c.modalView(width, height)
	}
	return c.router.View(width, height)
}
