// Package progress holds the player's cross-screen state and its
// persistence contract.
package progress

import (
	"errors"
	"slices"
	"strings"
	"time"
)

const (
	// SnapshotKey is the key the progress snapshot is stored under.
	SnapshotKey = "pixverseState"

	// SchemaVersion is written into every snapshot.
	SchemaVersion = 2

	// JigsawTag identifies the sliding-tile puzzle in CompletedPuzzles.
	JigsawTag = "jigsaw"

	// PuzzleKeyReward and PuzzleTokenReward are granted once per puzzle tag.
	PuzzleKeyReward   = 1
	PuzzleTokenReward = 50

	// CardTokenReward is granted the first time a card index is reached.
	CardTokenReward = 10
)

// DefaultAwards seeds UnlockedAwards for a brand new player.
var DefaultAwards = []string{"Meme Master", "Late Night Coder", "Smile Champion"}

// ErrEmptyMessage is returned by AddMessage for blank input.
var ErrEmptyMessage = errors.New("message is empty")

// Progress is the persisted snapshot. Sets are kept as ordered slices so the
// JSON shape stays a plain array.
type Progress struct {
	CollectedKeys    int       `json:"collectedKeys"`
	Tokens           int       `json:"tokens"`
	XP               int       `json:"xp"`
	CompletedPuzzles []string  `json:"completedPuzzles"`
	PinnedMemories   []string  `json:"pinnedMemories"`
	StarMessages     []string  `json:"starMessages"`
	ViewedCards      []int     `json:"viewedCards"`
	UnlockedAwards   []string  `json:"unlockedAwards"`
	BirthdayDate     time.Time `json:"birthdayDate"`
	Version          int       `json:"version"`
	JourneyStarted   bool      `json:"journeyStarted"`
	CurrentScreen    string    `json:"currentScreen"`
}

// Defaults returns a fresh Progress counting down to target.
func Defaults(target time.Time) Progress {
	return Progress{
		CompletedPuzzles: []string{},
		PinnedMemories:   []string{},
		StarMessages:     []string{},
		ViewedCards:      []int{},
		UnlockedAwards:   slices.Clone(DefaultAwards),
		BirthdayDate:     target,
		Version:          SchemaVersion,
		CurrentScreen:    "loading",
	}
}

// DefaultTarget is Dec 25 of the year now falls in, local time.
func DefaultTarget(now time.Time) time.Time {
	return time.Date(now.Year(), time.December, 25, 0, 0, 0, 0, now.Location())
}

// Clone returns a deep copy.
func (p Progress) Clone() Progress {
	p.CompletedPuzzles = slices.Clone(p.CompletedPuzzles)
	p.PinnedMemories = slices.Clone(p.PinnedMemories)
	p.StarMessages = slices.Clone(p.StarMessages)
	p.ViewedCards = slices.Clone(p.ViewedCards)
	p.UnlockedAwards = slices.Clone(p.UnlockedAwards)
	return p
}

// GrantOnce applies the deltas and records tag as completed, unless tag was
// already completed. It reports whether the grant was applied.
func (p *Progress) GrantOnce(tag string, keyDelta, tokenDelta int) bool {
	if slices.Contains(p.CompletedPuzzles, tag) {
		return false
	}
	p.CompletedPuzzles = append(p.CompletedPuzzles, tag)
	p.CollectedKeys += keyDelta
	p.Tokens += tokenDelta
	return true
}

// MarkViewed records a card index and grants bonus tokens the first time.
func (p *Progress) MarkViewed(index, bonus int) bool {
	if slices.Contains(p.ViewedCards, index) {
		return false
	}
	p.ViewedCards = append(p.ViewedCards, index)
	p.Tokens += bonus
	return true
}

// AddMessage appends a trimmed star message.
func (p *Progress) AddMessage(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}
	p.StarMessages = append(p.StarMessages, text)
	return nil
}

// Pin adds a memory id to the pinned set. It reports whether id was new.
func (p *Progress) Pin(id string) bool {
	if id == "" || slices.Contains(p.PinnedMemories, id) {
		return false
	}
	p.PinnedMemories = append(p.PinnedMemories, id)
	return true
}

// UnlockAwards adds any names not yet unlocked, keeping order.
func (p *Progress) UnlockAwards(names []string) int {
	added := 0
	for _, n := range names {
		if n == "" || slices.Contains(p.UnlockedAwards, n) {
			continue
		}
		p.UnlockedAwards = append(p.UnlockedAwards, n)
		added++
	}
	return added
}

// StartJourney flags that the player has left the countdown.
func (p *Progress) StartJourney() {
	p.JourneyStarted = true
}

// Reset clears every counter and set. The target date, schema version and
// current screen survive.
func (p *Progress) Reset() {
	*p = Progress{
		CompletedPuzzles: []string{},
		PinnedMemories:   []string{},
		StarMessages:     []string{},
		ViewedCards:      []int{},
		UnlockedAwards:   []string{},
		BirthdayDate:     p.BirthdayDate,
		Version:          p.Version,
		CurrentScreen:    p.CurrentScreen,
	}
}

// Stats is a read-only summary for the reveal screen and the stats command.
type Stats struct {
	Keys     int
	Tokens   int
	XP       int
	Awards   int
	Messages int
	Pinned   int
	Viewed   int
	Puzzles  int
	Started  bool
	Birthday time.Time
}

// Stats summarises the current progress.
func (p Progress) Stats() Stats {
	return Stats{
		Keys:     p.CollectedKeys,
		Tokens:   p.Tokens,
		XP:       p.XP,
		Awards:   len(p.UnlockedAwards),
		Messages: len(p.StarMessages),
		Pinned:   len(p.PinnedMemories),
		Viewed:   len(p.ViewedCards),
		Puzzles:  len(p.CompletedPuzzles),
		Started:  p.JourneyStarted,
		Birthday: p.BirthdayDate,
	}
}

// normalize replaces nil sets left behind by a null in an older snapshot.
func (p *Progress) normalize() {
	if p.CompletedPuzzles == nil {
		p.CompletedPuzzles = []string{}
	}
	if p.PinnedMemories == nil {
		p.PinnedMemories = []string{}
	}
	if p.StarMessages == nil {
		p.StarMessages = []string{}
	}
	if p.ViewedCards == nil {
		p.ViewedCards = []int{}
	}
	if p.UnlockedAwards == nil {
		p.UnlockedAwards = []string{}
	}
}
