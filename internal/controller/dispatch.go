package controller

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/screen"
)

// Dispatch applies one action. Every dispatch plays the click cue; known
// actions are persisted afterwards, unknown ones are logged and dropped.
func (c *Controller) Dispatch(a action.Action) tea.Cmd {
	c.fx.PlayCue(effects.CueClick)

	cmd, ok := c.apply(a)
	if !ok {
		c.log.Warn("ignoring unknown action", "action", a.String())
		return nil
	}
	c.log.Debug("dispatch", "action", a.String())
	c.save()
	return cmd
}

func (c *Controller) apply(a action.Action) (tea.Cmd, bool) {
	switch a.Kind {
	case action.Start:
		c.prog.State().StartJourney()
		cmd, _ := c.switchTo(screen.Wrapped)
		c.fx.PlayCue(effects.CueStart)
		c.fx.Notify("Welcome to your Pixverse! 🎉")
		return tea.Batch(cmd, c.stages["welcome"].ticker.Start()), true

	case action.Continue, action.Back:
		if a.Target == "" {
			return nil, true
		}
		cmd, _ := c.switchTo(screen.Name(a.Target))
		return cmd, true

	case action.NextCard:
		return c.NextCard(), true

	case action.PrevCard:
		return c.PrevCard(), true

	case action.Hint:
		n, cmd := c.jigsaw.Hint()
		if n == 0 {
			c.fx.Notify("All pieces are in the correct position!")
			return nil, true
		}
		c.fx.Notify(fmt.Sprintf("Found %d pieces in wrong position", n))
		c.fx.PlayCue(effects.CueHint)
		return cmd, true

	case action.Reset:
		c.jigsaw.Reset()
		c.fx.Notify("Puzzle reset")
		c.fx.PlayCue(effects.CueReset)
		return nil, true

	case action.Share:
		url := c.pack.Share.URL
		c.fx.Notify("Link copied to clipboard! " + url)
		c.fx.PlayCue(effects.CueShare)
		return tea.SetClipboard(url), true

	case action.ShareSocial:
		url, err := c.pack.ShareURL(a.Platform)
		if err != nil {
			c.log.Warn("share failed", "platform", a.Platform, "err", err)
			c.fx.Notify(fmt.Sprintf("Sharing on %q is not supported", a.Platform))
			return nil, true
		}
		c.fx.Notify(fmt.Sprintf("Share on %s: %s", a.Platform, url))
		c.fx.PlayCue(effects.CueShare)
		return tea.SetClipboard(url), true

	case action.Download:
		c.fx.Notify("Preparing your yearbook download...")
		return c.stages["download"].ticker.Start(), true

	case action.GeneratePoster:
		c.fx.Notify("Generating your pixel poster...")
		return c.stages["poster"].ticker.Start(), true

	case action.PlayVideo:
		c.fx.Notify("Preparing video player...")
		return c.stages["video"].ticker.Start(), true

	case action.SubmitMessage:
		if err := c.prog.State().AddMessage(a.Text); err != nil {
			if !errors.Is(err, progress.ErrEmptyMessage) {
				c.log.Warn("message rejected", "err", err)
			}
			c.fx.Notify("Please write a message first")
			c.post.Reject()
			return nil, true
		}
		c.fx.Notify("Message added to star gallery!")
		c.fx.PlayCue(effects.CueMessage)
		c.post.Accept()
		return nil, true

	case action.Restart:
		c.prog.Reset()
		c.card = 0
		c.wrapped.Seek(0)
		cmd, _ := c.switchTo(screen.Countdown)
		c.fx.Notify("Journey restarted!")
		c.fx.PlayCue(effects.CueRestart)
		return cmd, true

	case action.CloseModal:
		c.modal = nil
		return nil, true

	case action.PinMemory:
		id := a.Text
		if id == "" && c.modal != nil {
			id = c.modal.ID
		}
		if c.prog.State().Pin(id) {
			c.fx.Notify("Memory pinned to your collection!")
			c.fx.PlayCue(effects.CuePin)
		} else if id != "" {
			c.fx.Notify("Memory already in your collection")
		}
		c.modal = nil
		return nil, true
	}
	return nil, false
}
