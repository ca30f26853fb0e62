package reveal

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/store"
	"github.com/abhisek/pixverse/internal/ui/components"
)

func newTestReveal(t *testing.T, letter string) (*RevealScreen, *effects.Recorder) {
	t.Helper()
	pack, err := content.Default()
	if err != nil {
		t.Fatalf("load default pack: %v", err)
	}
	pack.Letter = letter
	fx := &effects.Recorder{}
	prog := progress.NewStore(store.NewMemoryRepo(), progress.Defaults(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)), progress.Options{})
	return New(pack, fx, prog), fx
}

func TestInitCelebratesAndTypes(t *testing.T) {
	r, fx := newTestReveal(t, "Hi!")

	if cmd := r.Init(); cmd == nil {
		t.Fatal("Init should start the typewriter")
	}
	if fx.Celebrations != 1 {
		t.Errorf("celebrations = %d, want 1", fx.Celebrations)
	}
	if !r.Typing() || r.Letter() != "" {
		t.Errorf("before ticks: typing=%v letter=%q", r.Typing(), r.Letter())
	}

	gen := r.writer.Gen()
	for i := 0; i < 3; i++ {
		r.Update(components.TypewriterTickMsg{Gen: gen})
	}
	if r.Letter() != "Hi!" {
		t.Errorf("letter = %q, want %q", r.Letter(), "Hi!")
	}
	if r.Typing() {
		t.Error("typing should stop at the end of the letter")
	}
}

func TestReentryRestartsLetter(t *testing.T) {
	r, fx := newTestReveal(t, "Hello")

	r.Init()
	stale := r.writer.Gen()
	r.Update(components.TypewriterTickMsg{Gen: stale})
	if r.Letter() != "H" {
		t.Fatalf("letter = %q, want %q", r.Letter(), "H")
	}

	r.Deactivate()
	r.Init()
	if fx.Celebrations != 2 {
		t.Errorf("celebrations = %d, want 2", fx.Celebrations)
	}

	// A tick from the first visit must not advance the second run.
	r.Update(components.TypewriterTickMsg{Gen: stale})
	if r.Letter() != "" {
		t.Errorf("stale tick advanced the letter to %q", r.Letter())
	}

	r.Update(components.TypewriterTickMsg{Gen: r.writer.Gen()})
	if r.Letter() != "H" {
		t.Errorf("letter = %q, want %q", r.Letter(), "H")
	}
}

func TestSpaceSkipsTyping(t *testing.T) {
	r, _ := newTestReveal(t, "A long letter")
	r.Init()

	r.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	if r.Letter() != "A long letter" || r.Typing() {
		t.Errorf("after skip: letter=%q typing=%v", r.Letter(), r.Typing())
	}
}

func TestKeysEmitActions(t *testing.T) {
	tests := []struct {
		key  tea.KeyPressMsg
		want action.Action
	}{
		{tea.KeyPressMsg{Code: tea.KeyEnter}, action.Action{Kind: action.Continue, Target: "post-reveal"}},
		{tea.KeyPressMsg{Code: 'v', Text: "v"}, action.Action{Kind: action.PlayVideo}},
		{tea.KeyPressMsg{Code: 'd', Text: "d"}, action.Action{Kind: action.Download}},
	}

	r, _ := newTestReveal(t, "x")
	r.Init()
	for _, tt := range tests {
		_, cmd := r.Update(tt.key)
		if cmd == nil {
			t.Errorf("%s: no command", tt.key)
			continue
		}
		if got := cmd(); got != (action.Msg{Action: tt.want}) {
			t.Errorf("%s = %#v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestViewShowsStats(t *testing.T) {
	r, _ := newTestReveal(t, "Dear you")
	r.prog.State().Tokens = 70
	r.writer.Skip()

	out := r.View(100, 40)
	for _, want := range []string{"Dear you", "70 tokens", "6 memories"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
