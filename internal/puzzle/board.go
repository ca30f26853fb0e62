// Package puzzle implements the 3x3 sliding-tile board used by the jigsaw screen.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	// Size is the width and height of the grid.
	Size = 3
	// Slots is the number of cells on the board.
	Slots = Size * Size
	// Empty marks the vacant slot.
	Empty = 0
)

// ErrInvalidBoard is returned when a board layout does not hold exactly the
// tiles 1..8 plus one empty slot.
var ErrInvalidBoard = errors.New("invalid board")

// Direction names the way a tile slides into the gap.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Board is a 3x3 sliding-tile grid. The zero value is not a valid board;
// use New, SolvedBoard or Parse.
type Board struct {
	tiles [Slots]int
	empty int
}

// ShuffleOptions tune New.
type ShuffleOptions struct {
	// Solvable forces the shuffled layout into the solvable half of the
	// permutation space by swapping two tiles when the inversion parity is odd.
	Solvable bool
}

// SolvedBoard returns the canonical solved layout [1..8, empty].
func SolvedBoard() Board {
	var b Board
	for i := 0; i < Slots-1; i++ {
		b.tiles[i] = i + 1
	}
	b.tiles[Slots-1] = Empty
	b.empty = Slots - 1
	return b
}

// New returns a freshly shuffled board and its empty slot index.
//
// The layout is a Fisher-Yates shuffle over all nine slots, so the empty
// slot can land anywhere. A layout that happens to be already solved is
// reshuffled.
func New(rng *rand.Rand, opts ShuffleOptions) (Board, int) {
	for {
		b := SolvedBoard()
		for i := Slots - 1; i > 0; i-- {
			j := rng.IntN(i + 1)
			b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
		}
		b.empty = b.indexOf(Empty)

		if opts.Solvable && !b.Solvable() {
			b.fixParity()
		}
		if !b.Solved() {
			return b, b.empty
		}
	}
}

// Parse reads a board from nine digits in slot order, '0' or '_' marking
// the empty slot, e.g. "12345678_".
func Parse(s string) (Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != Slots {
		return Board{}, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Slots, len(s))
	}
	var b Board
	for i, r := range s {
		switch {
		case r == '_' || r == '0':
			b.tiles[i] = Empty
		case r >= '1' && r <= '8':
			b.tiles[i] = int(r - '0')
		default:
			return Board{}, fmt.Errorf("%w: bad cell %q at %d", ErrInvalidBoard, r, i)
		}
	}
	if err := b.validate(); err != nil {
		return Board{}, err
	}
	b.empty = b.indexOf(Empty)
	return b, nil
}

// FromTiles builds a board from a slot-ordered tile slice.
func FromTiles(tiles []int) (Board, error) {
	if len(tiles) != Slots {
		return Board{}, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Slots, len(tiles))
	}
	var b Board
	copy(b.tiles[:], tiles)
	if err := b.validate(); err != nil {
		return Board{}, err
	}
	b.empty = b.indexOf(Empty)
	return b, nil
}

// IsAdjacent reports whether slots a and b share an edge on the grid.
func IsAdjacent(a, b int) bool {
	if a < 0 || a >= Slots || b < 0 || b >= Slots {
		return false
	}
	dr := abs(a/Size - b/Size)
	dc := abs(a%Size - b%Size)
	return dr+dc == 1
}

// Move slides the tile at slot into the gap. It reports whether a swap
// happened; a non-adjacent slot leaves the board untouched.
func (b *Board) Move(slot int) bool {
	if !IsAdjacent(slot, b.empty) {
		return false
	}
	b.tiles[b.empty], b.tiles[slot] = b.tiles[slot], b.tiles[b.empty]
	b.empty = slot
	return true
}

// Slide moves the tile that sits next to the gap in the opposite direction
// of d, so Up slides the tile below the gap upwards.
func (b *Board) Slide(d Direction) bool {
	row, col := b.empty/Size, b.empty%Size
	switch d {
	case Up:
		row++
	case Down:
		row--
	case Left:
		col++
	case Right:
		col--
	default:
		return false
	}
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return b.Move(row*Size + col)
}

// Solved reports whether the board equals [1,2,3,4,5,6,7,8,empty].
func (b Board) Solved() bool {
	for k := 0; k < Slots-1; k++ {
		if b.tiles[k] != k+1 {
			return false
		}
	}
	return b.tiles[Slots-1] == Empty
}

// Hint returns the slots holding a tile that is not in its solved position.
// The empty slot is never reported.
func (b Board) Hint() []int {
	var out []int
	for i, t := range b.tiles {
		if t != Empty && t != i+1 {
			out = append(out, i)
		}
	}
	return out
}

// Solvable reports whether the layout can reach the solved board. On an
// odd-width grid that is exactly when the tile inversion count is even.
func (b Board) Solvable() bool {
	return b.inversions()%2 == 0
}

// Tiles returns a copy of the slot contents.
func (b Board) Tiles() [Slots]int {
	return b.tiles
}

// At returns the tile in slot i.
func (b Board) At(i int) int {
	return b.tiles[i]
}

// EmptySlot returns the index of the vacant slot.
func (b Board) EmptySlot() int {
	return b.empty
}

// String renders the board in Parse notation.
func (b Board) String() string {
	var sb strings.Builder
	for _, t := range b.tiles {
		if t == Empty {
			sb.WriteByte('_')
			continue
		}
		sb.WriteByte(byte('0' + t))
	}
	return sb.String()
}

func (b Board) inversions() int {
	n := 0
	for i := 0; i < Slots; i++ {
		if b.tiles[i] == Empty {
			continue
		}
		for j := i + 1; j < Slots; j++ {
			if b.tiles[j] != Empty && b.tiles[i] > b.tiles[j] {
				n++
			}
		}
	}
	return n
}

// fixParity swaps the first two tiles, which flips the inversion parity.
func (b *Board) fixParity() {
	first := -1
	for i, t := range b.tiles {
		if t == Empty {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		b.tiles[first], b.tiles[i] = b.tiles[i], b.tiles[first]
		return
	}
}

func (b Board) indexOf(tile int) int {
	for i, t := range b.tiles {
		if t == tile {
			return i
		}
	}
	return -1
}

func (b Board) validate() error {
	var seen [Slots]bool
	for i, t := range b.tiles {
		if t < 0 || t >= Slots {
			return fmt.Errorf("%w: tile %d at slot %d out of range", ErrInvalidBoard, t, i)
		}
		if seen[t] {
			return fmt.Errorf("%w: tile %d appears twice", ErrInvalidBoard, t)
		}
		seen[t] = true
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
