// Package effects is the presentation side of the journey: notices, sound
// cues and celebrations. The controller talks to a Renderer and never to
// the terminal directly.
package effects

import (
	"github.com/abhisek/pixverse/internal/puzzle"
	"github.com/abhisek/pixverse/internal/screen"
)

// Cue names a sound event. Cues are surfaced, not played.
type Cue string

const (
	CueClick    Cue = "click"
	CueWin      Cue = "win"
	CueHint     Cue = "hint"
	CueReset    Cue = "reset"
	CueMessage  Cue = "message"
	CuePoster   Cue = "poster"
	CueDownload Cue = "download"
	CueShare    Cue = "share"
	CuePin      Cue = "pin"
	CueRestart  Cue = "restart"
	CueLevelUp  Cue = "level-up"
	CueStart    Cue = "start"
	CueVideo    Cue = "video"
)

// Renderer receives every presentation request from the core.
type Renderer interface {
	RenderScreen(name screen.Name)
	RenderBoard(b puzzle.Board)
	RenderCarousel(index int)
	Notify(message string)
	PlayCue(c Cue)
	Celebrate()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RenderScreen(screen.Name) {}
func (Nop) RenderBoard(puzzle.Board) {}
func (Nop) RenderCarousel(int)       {}
func (Nop) Notify(string)            {}
func (Nop) PlayCue(Cue)              {}
func (Nop) Celebrate()               {}

// Recorder keeps every call in order.
type Recorder struct {
	Screens      []screen.Name
	Boards       []puzzle.Board
	Carousel     []int
	Notices      []string
	Cues         []Cue
	Celebrations int
}

func (r *Recorder) RenderScreen(name screen.Name) { r.Screens = append(r.Screens, name) }
func (r *Recorder) RenderBoard(b puzzle.Board)    { r.Boards = append(r.Boards, b) }
func (r *Recorder) RenderCarousel(i int)          { r.Carousel = append(r.Carousel, i) }
func (r *Recorder) Notify(msg string)             { r.Notices = append(r.Notices, msg) }
func (r *Recorder) PlayCue(c Cue)                 { r.Cues = append(r.Cues, c) }
func (r *Recorder) Celebrate()                    { r.Celebrations++ }

// CueCount returns how many times c was played.
func (r *Recorder) CueCount(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

// LastNotice returns the most recent notice or "".
func (r *Recorder) LastNotice() string {
	if len(r.Notices) == 0 {
		return ""
	}
	return r.Notices[len(r.Notices)-1]
}
