package progress

import (
	"context"
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"github.com/abhisek/pixverse/internal/store"
)

// DefaultKeepSnapshots is how many snapshots Save keeps per key.
const DefaultKeepSnapshots = 10

// Options configures a Store.
type Options struct {
	// Key overrides SnapshotKey.
	Key string
	// SessionID tags every snapshot written by this process.
	SessionID string
	// Keep bounds the snapshot history; zero means DefaultKeepSnapshots.
	Keep int
	// ForceTarget makes the default target date win over a persisted one.
	ForceTarget bool
	Logger      *log.Logger
}

// LoadResult describes what Load found.
type LoadResult struct {
	// Found is true when a snapshot was read and merged.
	Found bool
	// Resume is true when the merged state says the journey already started.
	Resume bool
}

// Store owns the live Progress and moves it to and from a SnapshotRepo.
// Persistence problems never surface as failures to the caller's flow; they
// are logged and the in-memory state stays authoritative.
type Store struct {
	repo     store.SnapshotRepo
	opts     Options
	log      *log.Logger
	defaults Progress
	state    Progress
}

// NewStore creates a Store whose state starts at defaults.
func NewStore(repo store.SnapshotRepo, defaults Progress, opts Options) *Store {
	if opts.Key == "" {
		opts.Key = SnapshotKey
	}
	if opts.Keep <= 0 {
		opts.Keep = DefaultKeepSnapshots
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defaults.normalize()
	return &Store{
		repo:     repo,
		opts:     opts,
		log:      logger,
		defaults: defaults.Clone(),
		state:    defaults.Clone(),
	}
}

// State returns the live progress for reading and mutation.
func (s *Store) State() *Progress {
	return &s.state
}

// Load reads the latest snapshot and merges it field by field over the
// defaults, so fields missing from an older snapshot keep their default.
// A missing, unreadable or corrupt snapshot leaves the defaults in place.
func (s *Store) Load(ctx context.Context) LoadResult {
	s.state = s.defaults.Clone()

	snap, err := s.repo.Latest(ctx, s.opts.Key)
	if err != nil {
		s.log.Warn("could not read progress snapshot", "key", s.opts.Key, "err", err)
		return LoadResult{}
	}
	if snap == nil {
		return LoadResult{}
	}

	merged, err := merge(s.defaults, snap.Data)
	if err != nil {
		s.log.Warn("could not load progress snapshot", "key", s.opts.Key, "seq", snap.Sequence, "err", err)
		return LoadResult{}
	}
	if s.opts.ForceTarget {
		merged.BirthdayDate = s.defaults.BirthdayDate
	}
	s.state = merged

	s.log.Debug("progress loaded", "seq", snap.Sequence, "tokens", merged.Tokens, "started", merged.JourneyStarted)
	return LoadResult{Found: true, Resume: merged.JourneyStarted}
}

// Save writes the whole state as a new snapshot and prunes old ones.
// The error is returned for callers that care; it has already been logged.
func (s *Store) Save(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Warn("could not encode progress snapshot", "err", err)
		return err
	}
	snap := &store.Snapshot{
		Key:       s.opts.Key,
		SessionID: s.opts.SessionID,
		Data:      data,
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.log.Warn("could not save progress snapshot", "key", s.opts.Key, "err", err)
		return err
	}
	if err := s.repo.Prune(ctx, s.opts.Key, s.opts.Keep); err != nil {
		s.log.Warn("could not prune progress snapshots", "key", s.opts.Key, "err", err)
	}
	return nil
}

// Reset clears the live state; see Progress.Reset.
func (s *Store) Reset() {
	s.state.Reset()
}

// merge overlays raw on a copy of defaults. Unknown keys are ignored and
// absent keys keep their default value.
func merge(defaults Progress, raw []byte) (Progress, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Progress{}, err
	}

	merged := defaults.Clone()
	if err := json.Unmarshal(raw, &merged); err != nil {
		return Progress{}, err
	}
	migrate(&merged, fields)
	merged.normalize()
	return merged, nil
}

// migrate upgrades snapshots written by older schema versions.
func migrate(p *Progress, fields map[string]json.RawMessage) {
	version := 0
	if v, ok := fields["version"]; ok {
		_ = json.Unmarshal(v, &version)
	}
	if version < 2 {
		// Version 1 wrote the flag under two spellings; either one counts.
		if v, ok := fields["journeystarted"]; ok {
			var started bool
			if json.Unmarshal(v, &started) == nil && started {
				p.JourneyStarted = true
			}
		}
	}
	p.Version = SchemaVersion
}
