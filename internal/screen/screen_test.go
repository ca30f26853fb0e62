package screen

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, n := range Names {
		got, err := Parse(string(n))
		if err != nil {
			t.Fatalf("Parse(%q): %v", n, err)
		}
		if got != n {
			t.Errorf("Parse(%q) = %q", n, got)
		}
	}

	if _, err := Parse("credits"); !errors.Is(err, ErrUnknownScreen) {
		t.Errorf("Parse(credits) err = %v, want ErrUnknownScreen", err)
	}
}

func TestTickerRestartCancelsPreviousRun(t *testing.T) {
	tk := NewTicker("countdown", time.Second)

	if tk.Start() == nil {
		t.Fatal("Start should schedule a tick")
	}
	first := TickMsg{ID: "countdown", Gen: tk.Gen()}
	if !tk.Owns(first) {
		t.Fatal("ticker should own its own tick")
	}

	tk.Start()
	second := TickMsg{ID: "countdown", Gen: tk.Gen()}
	if tk.Owns(first) {
		t.Error("tick from the first run must be stale")
	}
	if !tk.Owns(second) {
		t.Error("ticker should own the restarted run's tick")
	}
}

func TestTickerStop(t *testing.T) {
	tk := NewTicker("x", time.Second)
	tk.Start()
	msg := TickMsg{ID: "x", Gen: tk.Gen()}

	tk.Stop()

	if tk.Running() || tk.Owns(msg) {
		t.Error("stopped ticker should neither run nor own ticks")
	}
	if tk.Next() != nil || tk.After(time.Second) != nil {
		t.Error("stopped ticker should not schedule")
	}
}

func TestTickerIgnoresOtherIDs(t *testing.T) {
	a := NewTicker("a", time.Second)
	b := NewTicker("b", time.Second)
	a.Start()
	b.Start()

	if a.Owns(TickMsg{ID: "b", Gen: b.Gen()}) {
		t.Error("ticker a should not own b's tick")
	}
}
