package controller

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

var modalKeys = struct {
	Pin, Close key.Binding
}{
	Pin:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin")),
	Close: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
}

func (c *Controller) openModal(m action.OpenMemoryMsg) {
	if m.Caption == "" {
		if ph, ok := c.pack.Photo(m.ID); ok {
			m.Caption = ph.Caption
		}
	}
	c.modal = &m
}

// Modal returns the open memory, if any.
func (c *Controller) Modal() (action.OpenMemoryMsg, bool) {
	if c.modal == nil {
		return action.OpenMemoryMsg{}, false
	}
	return *c.modal, true
}

// modalKey handles keys while the modal is open. Keys it does not bind are
// swallowed so the screen underneath stays still.
func (c *Controller) modalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, modalKeys.Pin):
		return c.Dispatch(action.Action{Kind: action.PinMemory, Text: c.modal.ID})
	case key.Matches(msg, modalKeys.Close):
		return c.Dispatch(action.Action{Kind: action.CloseModal})
	}
	return nil
}

func (c *Controller) modalView(width, height int) string {
	cw := components.ContentWidth(width)
	pinned := ""
	for _, id := range c.prog.State().PinnedMemories {
		if id == c.modal.ID {
			pinned = "\n" + theme.Selected.Render("📌 pinned")
		}
	}
	h := help.New()
	body := theme.Title.Render("📸 MEMORY") + "\n\n" +
		theme.Body.Render(c.modal.Caption) + "\n" +
		theme.Hint.Render(c.modal.ID) + pinned + "\n\n" +
		h.ShortHelpView([]key.Binding{modalKeys.Pin, modalKeys.Close})
	return components.Center(components.Modal(body, cw), width, height)
}
