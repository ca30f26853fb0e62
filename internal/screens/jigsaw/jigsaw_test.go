package jigsaw

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/store"
)

func newTestJigsaw(t *testing.T) (*JigsawScreen, *effects.Recorder, *progress.Store) {
	t.Helper()
	fx := &effects.Recorder{}
	prog := progress.NewStore(store.NewMemoryRepo(), progress.Defaults(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)), progress.Options{})
	j := New(rand.New(rand.NewPCG(1, 2)), puzzle.ShuffleOptions{Solvable: true}, fx, prog)
	return j, fx, prog
}

func load(t *testing.T, j *JigsawScreen, layout string) {
	t.Helper()
	b, err := puzzle.Parse(layout)
	if err != nil {
		t.Fatalf("parse %q: %v", layout, err)
	}
	j.game.Load(b)
}

func char(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestInitDealsFreshBoard(t *testing.T) {
	j, fx, _ := newTestJigsaw(t)

	j.Init()

	if len(fx.Boards) != 1 {
		t.Fatalf("rendered boards = %d, want 1", len(fx.Boards))
	}
	if fx.Boards[0].Solved() {
		t.Error("fresh deal should not be solved")
	}
	if s := j.Game().State(); s != puzzle.Unsolved {
		t.Errorf("state = %v, want unsolved", s)
	}
	if m := j.Game().Moves(); m != 0 {
		t.Errorf("moves = %d, want 0", m)
	}
}

func TestSolvingGrantsRewardOnce(t *testing.T) {
	j, fx, prog := newTestJigsaw(t)
	j.Init()
	load(t, j, "1234567_8")

	_, cmd := j.Update(char('9'))
	if cmd == nil {
		t.Fatal("solving should return a command")
	}
	if s := j.Game().State(); s != puzzle.Solved {
		t.Fatalf("state = %v, want solved", s)
	}
	if n := fx.CueCount(effects.CueWin); n != 1 {
		t.Errorf("win cues = %d, want 1", n)
	}
	if k := prog.State().CollectedKeys; k != 1 {
		t.Errorf("keys = %d, want 1", k)
	}
	if tok := prog.State().Tokens; tok != progress.PuzzleTokenReward {
		t.Errorf("tokens = %d, want %d", tok, progress.PuzzleTokenReward)
	}
	if got := fx.LastNotice(); got != "Puzzle completed! You earned a key and 50 tokens." {
		t.Errorf("notice = %q", got)
	}

	// Confetti follows after the delay.
	if fx.Celebrations != 0 {
		t.Fatal("celebration should wait for the timer")
	}
	j.Update(screen.TickMsg{ID: "jigsaw-celebrate", Gen: j.celebrate.Gen()})
	if fx.Celebrations != 1 {
		t.Errorf("celebrations = %d, want 1", fx.Celebrations)
	}

	// A second solve in the same progress grants nothing more.
	load(t, j, "1234567_8")
	j.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s := j.Game().State(); s != puzzle.Solved {
		t.Fatalf("state = %v, want solved", s)
	}
	if k := prog.State().CollectedKeys; k != 1 {
		t.Errorf("keys after second solve = %d, want 1", k)
	}
	if tok := prog.State().Tokens; tok != progress.PuzzleTokenReward {
		t.Errorf("tokens after second solve = %d, want %d", tok, progress.PuzzleTokenReward)
	}
	if got := fx.LastNotice(); got != "Puzzle completed!" {
		t.Errorf("notice = %q, want %q", got, "Puzzle completed!")
	}
	if n := fx.CueCount(effects.CueWin); n != 2 {
		t.Errorf("win cues = %d, want 2", n)
	}
}

func TestSolveRequestsPersist(t *testing.T) {
	j, _, _ := newTestJigsaw(t)
	j.Init()
	load(t, j, "1234567_8")

	_, cmd := j.Update(char('9'))
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) != 2 {
		t.Fatalf("solve cmd = %#v, want a batch of two", batch)
	}

	// The first entry is the celebrate timer; the second asks for a save.
	want := action.PersistMsg{Reason: "jigsaw solved"}
	if got := batch[1](); got != want {
		t.Errorf("persist msg = %#v, want %#v", got, want)
	}
}

func TestIgnoredMoves(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		key    tea.KeyPressMsg
	}{
		// Slot 1 (index 0) is not next to the gap at index 4.
		{"not adjacent", "1234_5678", char('1')},
		{"already solved", "12345678_", tea.KeyPressMsg{Code: tea.KeyDown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, fx, _ := newTestJigsaw(t)
			j.Init()
			load(t, j, tt.layout)
			before := len(fx.Boards)

			_, cmd := j.Update(tt.key)

			if cmd != nil {
				t.Error("ignored move should not return a command")
			}
			if len(fx.Boards) != before {
				t.Errorf("board re-rendered %d times", len(fx.Boards)-before)
			}
			if m := j.Game().Moves(); m != 0 {
				t.Errorf("moves = %d, want 0", m)
			}
		})
	}
}

func TestHintHighlightsMisplacedTiles(t *testing.T) {
	j, _, _ := newTestJigsaw(t)
	j.Init()
	load(t, j, "21345678_")

	n, cmd := j.Hint()
	if n != 2 {
		t.Errorf("misplaced = %d, want 2", n)
	}
	if cmd == nil {
		t.Error("hint should start its timer")
	}
	for slot, want := range map[int]bool{0: true, 1: true, 8: false} {
		if got := j.Hinted(slot); got != want {
			t.Errorf("Hinted(%d) = %v, want %v", slot, got, want)
		}
	}

	j.Update(screen.TickMsg{ID: "jigsaw-hint", Gen: j.hint.Gen()})
	if j.Hinted(0) {
		t.Error("hint should clear when its timer fires")
	}
}

func TestHintOnSolvedBoard(t *testing.T) {
	j, _, _ := newTestJigsaw(t)
	load(t, j, "12345678_")

	n, cmd := j.Hint()
	if n != 0 || cmd != nil {
		t.Errorf("Hint() = %d, %v; want 0, nil", n, cmd)
	}
}

func TestKeysEmitActions(t *testing.T) {
	j, _, _ := newTestJigsaw(t)
	j.Init()

	_, cmd := j.Update(char('?'))
	if got, want := cmd(), (action.Msg{Action: action.Action{Kind: action.Hint}}); got != want {
		t.Errorf("? = %#v, want %#v", got, want)
	}

	_, cmd = j.Update(char('r'))
	if got, want := cmd(), (action.Msg{Action: action.Action{Kind: action.Reset}}); got != want {
		t.Errorf("r = %#v, want %#v", got, want)
	}

	_, cmd = j.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("door stays shut while unsolved")
	}

	load(t, j, "12345678_")
	_, cmd = j.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	want := action.Msg{Action: action.Action{Kind: action.Continue, Target: "reveal"}}
	if cmd == nil {
		t.Fatal("enter on a solved board should open the door")
	}
	if got := cmd(); got != want {
		t.Errorf("enter = %#v, want %#v", got, want)
	}
}

func TestResetDealsNewBoard(t *testing.T) {
	j, fx, _ := newTestJigsaw(t)
	j.Init()
	load(t, j, "12345678_")

	j.Reset()

	if s := j.Game().State(); s != puzzle.Unsolved {
		t.Errorf("state = %v, want unsolved", s)
	}
	if fx.Boards[len(fx.Boards)-1].Solved() {
		t.Error("reset should render an unsolved deal")
	}
}

func TestDeactivateDropsPendingCelebration(t *testing.T) {
	j, fx, _ := newTestJigsaw(t)
	j.Init()
	load(t, j, "1234567_8")
	j.Update(char('9'))
	pending := screen.TickMsg{ID: "jigsaw-celebrate", Gen: j.celebrate.Gen()}

	j.Deactivate()
	j.Update(pending)

	if fx.Celebrations != 0 {
		t.Errorf("celebrations = %d, want 0", fx.Celebrations)
	}
}

func TestViewShowsTiles(t *testing.T) {
	j, _, _ := newTestJigsaw(t)
	load(t, j, "12345678_")

	out := j.View(80, 30)
	for _, want := range []string{"UNLOCKED", "8"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
