package controller

import (
	"time"

	"github.com/abhisek/pixverse/internal/effects"
	"github.com/abhisek/pixverse/internal/screen"
)

// Delays of the staged actions.
const (
	WelcomeConfettiDelay = 500 * time.Millisecond
	DownloadDelay        = 2 * time.Second
	PosterDelay          = 1500 * time.Millisecond
	VideoDelay           = 1500 * time.Millisecond
)

// stage is a one-shot follow-up to an action: a notice now, another one
// when the ticker fires. Repeating the action restarts the wait.
type stage struct {
	ticker *screen.Ticker
	done   func()
}

func (c *Controller) newStages() map[string]*stage {
	mk := func(id string, d time.Duration, done func()) *stage {
		return &stage{ticker: screen.NewTicker(id, d), done: done}
	}
	return map[string]*stage{
		"welcome": mk("welcome", WelcomeConfettiDelay, func() {
			c.fx.Celebrate()
		}),
		"download": mk("download", DownloadDelay, func() {
			c.fx.Notify("Yearbook downloaded successfully!")
			c.fx.PlayCue(effects.CueDownload)
		}),
		"poster": mk("poster", PosterDelay, func() {
			c.fx.Notify("Poster generated! Ready to download.")
			c.fx.PlayCue(effects.CuePoster)
		}),
		"video": mk("video", VideoDelay, func() {
			c.fx.Notify("Now playing...")
			c.fx.PlayCue(effects.CueVideo)
		}),
	}
}
