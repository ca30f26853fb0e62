package puzzle

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := Parse(s)
	require.NoError(t, err)
	return b
}

func assertPermutation(t *testing.T, b Board) {
	t.Helper()
	tiles := b.Tiles()
	empties := 0
	var rest []int
	for _, v := range tiles {
		if v == Empty {
			empties++
			continue
		}
		rest = append(rest, v)
	}
	sort.Ints(rest)
	assert.Equal(t, 1, empties, "board %s", b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, rest, "board %s", b)
	assert.Equal(t, Empty, b.At(b.EmptySlot()))
}

func TestNewProducesPermutation(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		b, empty := New(seeded(seed), ShuffleOptions{})
		assertPermutation(t, b)
		assert.Equal(t, b.EmptySlot(), empty)
		assert.False(t, b.Solved())
	}
}

func TestNewEmptyLandsAnywhere(t *testing.T) {
	seen := map[int]bool{}
	for seed := uint64(0); seed < 2000; seed++ {
		_, empty := New(seeded(seed), ShuffleOptions{})
		seen[empty] = true
	}
	assert.Len(t, seen, Slots)
}

func TestNewSolvableOption(t *testing.T) {
	for seed := uint64(0); seed < 500; seed++ {
		b, _ := New(seeded(seed), ShuffleOptions{Solvable: true})
		assertPermutation(t, b)
		assert.True(t, b.Solvable(), "board %s", b)
	}
}

func TestNewWithoutCorrectionHitsBothParities(t *testing.T) {
	var solvable, unsolvable int
	for seed := uint64(0); seed < 400; seed++ {
		b, _ := New(seeded(seed), ShuffleOptions{})
		if b.Solvable() {
			solvable++
		} else {
			unsolvable++
		}
	}
	assert.Positive(t, solvable)
	assert.Positive(t, unsolvable)
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{0, 1, true},
		{0, 3, true},
		{4, 5, true},
		{4, 7, true},
		{2, 3, false}, // row wrap
		{5, 6, false}, // row wrap
		{0, 4, false}, // diagonal
		{0, 2, false},
		{4, 4, false},
		{-1, 0, false},
		{8, 9, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAdjacent(tt.a, tt.b), "IsAdjacent(%d, %d)", tt.a, tt.b)
	}
}

func TestIsAdjacentSymmetric(t *testing.T) {
	for i := 0; i < Slots; i++ {
		for j := 0; j < Slots; j++ {
			assert.Equal(t, IsAdjacent(i, j), IsAdjacent(j, i), "pair (%d, %d)", i, j)
		}
	}
}

func TestMoveNonAdjacentIsNoop(t *testing.T) {
	b := mustParse(t, "12345678_")
	before := b

	for _, slot := range []int{0, 1, 2, 3, 4, 6, 8, -1, 42} {
		assert.False(t, b.Move(slot), "slot %d", slot)
		assert.Equal(t, before, b)
	}
}

func TestMoveAdjacentSwapsTwoSlots(t *testing.T) {
	b := mustParse(t, "1234_5678")
	before := b.Tiles()

	require.True(t, b.Move(1))
	after := b.Tiles()

	diff := 0
	for i := range before {
		if before[i] != after[i] {
			diff++
		}
	}
	assert.Equal(t, 2, diff)
	assert.Equal(t, 1, b.EmptySlot())
	assert.Equal(t, "1_3425678", b.String())
	assertPermutation(t, b)
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name  string
		start string
		dir   Direction
		moved bool
		want  string
	}{
		{"down pulls tile above", "12345678_", Down, true, "12345_786"},
		{"right pulls tile left", "12345678_", Right, true, "1234567_8"},
		{"up at bottom edge", "12345678_", Up, false, "12345678_"},
		{"left at right edge", "12345678_", Left, false, "12345678_"},
		{"up from center", "1234_5678", Up, true, "1234756_8"},
		{"left from center", "1234_5678", Left, true, "12345_678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.start)
			assert.Equal(t, tt.moved, b.Slide(tt.dir))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestSolved(t *testing.T) {
	assert.True(t, SolvedBoard().Solved())
	assert.True(t, mustParse(t, "12345678_").Solved())
	assert.False(t, mustParse(t, "1234567_8").Solved())
	assert.False(t, mustParse(t, "_12345678").Solved())
	assert.False(t, mustParse(t, "21345678_").Solved())
}

func TestHint(t *testing.T) {
	assert.Empty(t, SolvedBoard().Hint())
	assert.Equal(t, []int{8}, mustParse(t, "1234567_8").Hint())
	assert.Equal(t, []int{0, 1}, mustParse(t, "21345678_").Hint())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, mustParse(t, "_12345678").Hint())
}

func TestHintIdempotentOnSolved(t *testing.T) {
	b := SolvedBoard()
	assert.Empty(t, b.Hint())
	assert.Empty(t, b.Hint())
	assert.True(t, b.Solved())
}

func TestSolvable(t *testing.T) {
	assert.True(t, SolvedBoard().Solvable())
	assert.True(t, mustParse(t, "1234567_8").Solvable())
	assert.False(t, mustParse(t, "21345678_").Solvable())
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "1234", "11345678_", "12345678x", "123456789", "1234567__"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidBoard, "input %q", in)
	}
}

func TestFromTiles(t *testing.T) {
	b, err := FromTiles([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	require.NoError(t, err)
	assert.Equal(t, 7, b.EmptySlot())

	_, err = FromTiles([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidBoard)
}
