package store

import (
	"context"
	"time"
)

// Snapshot is one persisted copy of a keyed state document.
type Snapshot struct {
	ID        int64
	Key       string
	Sequence  int64
	SessionID string
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo stores keyed state snapshots. Every Save appends; the newest
// snapshot for a key wins.
type SnapshotRepo interface {
	// Save stores a new snapshot. Sequence is assigned by the repo.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for key, or nil if none exist.
	Latest(ctx context.Context, key string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots for key.
	Prune(ctx context.Context, key string, keep int) error
}
