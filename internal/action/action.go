// Package action defines the closed set of user intents the controller
// dispatches. Screens never mutate shared state directly; they emit an
// action as a Bubble Tea message.
package action

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// Kind names an action.
type Kind int

const (
	Unknown Kind = iota
	Start
	Continue
	Back
	PrevCard
	NextCard
	Hint
	Reset
	Share
	ShareSocial
	Download
	PlayVideo
	SubmitMessage
	GeneratePoster
	Restart
	CloseModal
	PinMemory
)

var kindNames = map[Kind]string{
	Start:          "start",
	Continue:       "continue",
	Back:           "back",
	PrevCard:       "prev-card",
	NextCard:       "next-card",
	Hint:           "hint",
	Reset:          "reset",
	Share:          "share",
	ShareSocial:    "share-social",
	Download:       "download",
	PlayVideo:      "play-video",
	SubmitMessage:  "submit-message",
	GeneratePoster: "generate-poster",
	Restart:        "restart",
	CloseModal:     "close-modal",
	PinMemory:      "pin-memory",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseKind maps an action name to its Kind. Unrecognised names map to Unknown.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return Unknown
}

// Action is one user intent. Target is used by continue/back, Platform by
// share-social, Text by submit-message and pin-memory.
type Action struct {
	Kind     Kind
	Target   string
	Platform string
	Text     string
}

func (a Action) String() string {
	switch {
	case a.Target != "":
		return a.Kind.String() + ":" + a.Target
	case a.Platform != "":
		return a.Kind.String() + ":" + a.Platform
	default:
		return a.Kind.String()
	}
}

// Msg carries an Action through the Bubble Tea loop to the controller.
type Msg struct {
	Action Action
}

// Cmd returns a command emitting a.
func Cmd(a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Action: a} }
}

// Of is shorthand for an action with no arguments.
func Of(k Kind) tea.Cmd {
	return Cmd(Action{Kind: k})
}

// To builds a continue action towards target.
func To(target string) tea.Cmd {
	return Cmd(Action{Kind: Continue, Target: target})
}

// OpenMemoryMsg asks the controller to show the memory modal for a photo.
type OpenMemoryMsg struct {
	ID      string
	Caption string
}

// PersistMsg asks the controller to save progress outside of a dispatch,
// for example after a puzzle move completes the board.
type PersistMsg struct {
	Reason string
}

// Persist returns a command emitting PersistMsg.
func Persist(reason string) tea.Cmd {
	return func() tea.Msg { return PersistMsg{Reason: reason} }
}
