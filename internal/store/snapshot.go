package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339Nano

// snapshotRepo implements SnapshotRepo on the snapshots table.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots(key, sequence, session_id, timestamp, data) VALUES(?,?,?,?,?)`,
		snap.Key,
		seq,
		snap.SessionID,
		snap.Timestamp.UTC().Format(timeLayout),
		string(snap.Data),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = id
	snap.Sequence = seq
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, key string) (*Snapshot, error) {
	var (
		s    Snapshot
		ts   string
		data string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, key, sequence, session_id, timestamp, data
		 FROM snapshots WHERE key = ? ORDER BY sequence DESC LIMIT 1`,
		key,
	).Scan(&s.ID, &s.Key, &s.Sequence, &s.SessionID, &ts, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	s.Timestamp, err = time.Parse(timeLayout, ts)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot timestamp: %w", err)
	}
	s.Data = []byte(data)
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, key string, keep int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE key = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE key = ? ORDER BY sequence DESC LIMIT ?
		)`,
		key, key, keep,
	)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
