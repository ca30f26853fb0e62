// Package jigsaw is the 3x3 sliding-tile puzzle that guards the reveal.
package jigsaw

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/layout"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const (
	// HintDuration is how long misplaced tiles stay highlighted.
	HintDuration = 2 * time.Second
	// CelebrateDelay separates the winning move from the confetti.
	CelebrateDelay = 500 * time.Millisecond
)

var keys = struct {
	Slide, Pick, Hint, Reset, Open, Back key.Binding
}{
	Slide: key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→", "Slide")),
	Pick:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "Move slot")),
	Hint:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Hint")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Shuffle")),
	Open:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open the door")),
	Back:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "Cards")),
}

var directions = map[string]puzzle.Direction{
	"up":    puzzle.Up,
	"down":  puzzle.Down,
	"left":  puzzle.Left,
	"right": puzzle.Right,
}

// JigsawScreen owns the puzzle game. Solving it grants the jigsaw reward
// once per progress reset.
type JigsawScreen struct {
	game *puzzle.Game
	fx   effects.Renderer
	prog *progress.Store

	hint      *screen.Ticker
	celebrate *screen.Ticker
	hinted    map[int]bool
}

var _ screen.Screen = (*JigsawScreen)(nil)

// New creates the puzzle screen. The first board is dealt on Init.
func New(rng *rand.Rand, opts puzzle.ShuffleOptions, fx effects.Renderer, prog *progress.Store) *JigsawScreen {
	return &JigsawScreen{
		game:      puzzle.NewGame(rng, opts),
		fx:        fx,
		prog:      prog,
		hint:      screen.NewTicker("jigsaw-hint", HintDuration),
		celebrate: screen.NewTicker("jigsaw-celebrate", CelebrateDelay),
	}
}

func (j *JigsawScreen) Title() string {
	return "Unlock the Door"
}

// Init deals a fresh board every time the screen is entered.
func (j *JigsawScreen) Init() tea.Cmd {
	j.Reset()
	return nil
}

func (j *JigsawScreen) Deactivate() {
	j.hint.Stop()
	j.celebrate.Stop()
	j.hinted = nil
}

// Game exposes the puzzle for inspection.
func (j *JigsawScreen) Game() *puzzle.Game { return j.game }

// Reset reshuffles the board and clears any highlight.
func (j *JigsawScreen) Reset() {
	j.Deactivate()
	j.game.Reset()
	j.fx.RenderBoard(j.game.Board())
}

// Hint highlights the misplaced tiles for HintDuration and returns how
// many there are.
func (j *JigsawScreen) Hint() (int, tea.Cmd) {
	slots := j.game.Board().Hint()
	if len(slots) == 0 {
		j.hint.Stop()
		j.hinted = nil
		return 0, nil
	}
	j.hinted = make(map[int]bool, len(slots))
	for _, s := range slots {
		j.hinted[s] = true
	}
	return len(slots), j.hint.Start()
}

// Hinted reports whether slot is currently highlighted.
func (j *JigsawScreen) Hinted(slot int) bool { return j.hinted[slot] }

func (j *JigsawScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TickMsg:
		switch {
		case j.hint.Owns(msg):
			j.hint.Stop()
			j.hinted = nil
		case j.celebrate.Owns(msg):
			j.celebrate.Stop()
			j.fx.Celebrate()
		}
		return j, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Slide):
			return j, j.apply(j.game.Slide(directions[msg.String()]))
		case key.Matches(msg, keys.Pick):
			n, _ := strconv.Atoi(msg.String())
			return j, j.apply(j.game.Try(n - 1))
		case key.Matches(msg, keys.Hint):
			return j, action.Of(action.Hint)
		case key.Matches(msg, keys.Reset):
			return j, action.Of(action.Reset)
		case key.Matches(msg, keys.Open):
			if j.game.State() == puzzle.Solved {
				return j, action.To(string(screen.Reveal))
			}
		case key.Matches(msg, keys.Back):
			return j, action.Cmd(action.Action{Kind: action.Back, Target: string(screen.Wrapped)})
		}
	}
	return j, nil
}

func (j *JigsawScreen) apply(res puzzle.MoveResult) tea.Cmd {
	if !res.Moved {
		return nil
	}
	j.hinted = nil
	j.hint.Stop()
	j.fx.RenderBoard(j.game.Board())
	if !res.JustSolved {
		return nil
	}

	j.fx.PlayCue(effects.CueWin)
	if j.prog.State().GrantOnce(progress.JigsawTag, progress.PuzzleKeyReward, progress.PuzzleTokenReward) {
		j.fx.Notify(fmt.Sprintf("Puzzle completed! You earned a key and %d tokens.", progress.PuzzleTokenReward))
	} else {
		j.fx.Notify("Puzzle completed!")
	}
	return tea.Batch(j.celebrate.Start(), action.Persist("jigsaw solved"))
}

func (j *JigsawScreen) KeyHints() []layout.KeyHint {
	if j.game.State() == puzzle.Solved {
		return layout.Hints(keys.Open, keys.Reset, keys.Back)
	}
	return layout.Hints(keys.Slide, keys.Pick, keys.Hint, keys.Reset)
}

func (j *JigsawScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	board := j.game.Board()
	solved := j.game.State() == puzzle.Solved

	rows := make([]string, 0, puzzle.Size)
	for r := 0; r < puzzle.Size; r++ {
		cells := make([]string, 0, puzzle.Size)
		for c := 0; c < puzzle.Size; c++ {
			slot := r*puzzle.Size + c
			cells = append(cells, j.tile(slot, board.At(slot), solved))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, "\n")

	var status string
	switch {
	case solved:
		status = theme.Selected.Render("★ UNLOCKED! ★") + "\n" + theme.Hint.Render("Press Enter to open the door")
	case len(j.hinted) > 0:
		status = theme.Muted.Render(fmt.Sprintf("%d pieces out of place", len(j.hinted)))
	default:
		status = theme.Muted.Render(fmt.Sprintf("Moves: %d", j.game.Moves()))
	}

	body := theme.Body.Render("Arrange the tiles 1 to 8 to find the key.") + "\n\n" + grid + "\n\n" + status
	return components.Center(components.PixelCard("🔒 LOCKED DOOR", body, cw), width, height)
}

func (j *JigsawScreen) tile(slot, t int, solved bool) string {
	cell := lipgloss.NewStyle().Margin(0, 1, 1, 0)
	if t == puzzle.Empty {
		return cell.Render(theme.TileEmpty.Render("\n\n"))
	}
	style := theme.Tile
	switch {
	case solved:
		style = style.Background(theme.Success)
	case j.hinted[slot]:
		style = style.Background(theme.Accent)
	}
	return cell.Render(style.Render("\n" + strconv.Itoa(t) + "\n"))
}
