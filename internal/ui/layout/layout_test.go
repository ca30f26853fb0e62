package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestHints(t *testing.T) {
	on := key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Prev"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Nope"), key.WithDisabled())

	got := Hints(on, off)
	if len(got) != 1 || got[0] != (KeyHint{Key: "←", Description: "Prev"}) {
		t.Errorf("unexpected hints %#v", got)
	}
}

func TestRenderHeaderShowsCounters(t *testing.T) {
	h := RenderHeader("Countdown", 60, 1, 100)
	if !strings.Contains(h, "60 tokens") {
		t.Errorf("header missing tokens: %q", h)
	}
	if !strings.Contains(h, "PIXVERSE") {
		t.Errorf("header missing brand: %q", h)
	}
}

func TestRenderFooterStatus(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, "♪ click", 100)
	if !strings.Contains(f, "♪ click") {
		t.Errorf("footer missing status: %q", f)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 40, 10)
	if got := lipgloss.Height(frame); got != 10 {
		t.Errorf("frame height = %d, want 10", got)
	}
}

func TestRenderToastEmpty(t *testing.T) {
	if RenderToast("", 80) != "" {
		t.Error("expected empty toast line")
	}
}
