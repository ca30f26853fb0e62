package puzzle

import "math/rand/v2"

// State is the externally visible puzzle state.
type State int

const (
	Unsolved State = iota
	Solved
)

func (s State) String() string {
	if s == Solved {
		return "solved"
	}
	return "unsolved"
}

// MoveResult describes the outcome of a single attempted move.
type MoveResult struct {
	// Moved is true when a tile actually changed slots.
	Moved bool
	// JustSolved is true only on the move that completed the board.
	JustSolved bool
}

// Game wraps a Board with the unsolved/solved lifecycle. Once solved, the
// board is frozen until Reset deals a fresh shuffle.
type Game struct {
	rng   *rand.Rand
	opts  ShuffleOptions
	board Board
	state State
	moves int
}

// NewGame creates a game and deals the first board.
func NewGame(rng *rand.Rand, opts ShuffleOptions) *Game {
	g := &Game{rng: rng, opts: opts}
	g.Reset()
	return g
}

// Reset deals a freshly shuffled board and returns to Unsolved.
func (g *Game) Reset() {
	g.board, _ = New(g.rng, g.opts)
	g.state = Unsolved
	g.moves = 0
}

// Load replaces the board, e.g. to restore a known layout in tests.
func (g *Game) Load(b Board) {
	g.board = b
	g.moves = 0
	g.state = Unsolved
	if b.Solved() {
		g.state = Solved
	}
}

// Try attempts to move the tile at slot.
func (g *Game) Try(slot int) MoveResult {
	if g.state == Solved {
		return MoveResult{}
	}
	return g.after(g.board.Move(slot))
}

// Slide attempts to slide a neighbouring tile into the gap.
func (g *Game) Slide(d Direction) MoveResult {
	if g.state == Solved {
		return MoveResult{}
	}
	return g.after(g.board.Slide(d))
}

func (g *Game) after(moved bool) MoveResult {
	if !moved {
		return MoveResult{}
	}
	g.moves++
	if g.board.Solved() {
		g.state = Solved
		return MoveResult{Moved: true, JustSolved: true}
	}
	return MoveResult{Moved: true}
}

// Board returns the current board.
func (g *Game) Board() Board { return g.board }

// State returns Unsolved or Solved.
func (g *Game) State() State { return g.state }

// Moves returns the number of successful moves since the last deal.
func (g *Game) Moves() int { return g.moves }
