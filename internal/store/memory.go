package store

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-process SnapshotRepo. It backs tests and serves as
// the fallback when the database cannot be opened.
type MemoryRepo struct {
	mu    sync.Mutex
	snaps []Snapshot
	seq   int64

	// SaveErr, when set, is returned by every Save.
	SaveErr error
	// LatestErr, when set, is returned by every Latest.
	LatestErr error
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Save(_ context.Context, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.seq++
	snap.ID = m.seq
	snap.Sequence = m.seq
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}
	cp := *snap
	cp.Data = append([]byte(nil), snap.Data...)
	m.snaps = append(m.snaps, cp)
	return nil
}

func (m *MemoryRepo) Latest(_ context.Context, key string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LatestErr != nil {
		return nil, m.LatestErr
	}
	for i := len(m.snaps) - 1; i >= 0; i-- {
		if m.snaps[i].Key == key {
			cp := m.snaps[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepo) Prune(_ context.Context, key string, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := 0
	out := make([]Snapshot, 0, len(m.snaps))
	for i := len(m.snaps) - 1; i >= 0; i-- {
		s := m.snaps[i]
		if s.Key == key {
			if kept >= keep {
				continue
			}
			kept++
		}
		out = append(out, s)
	}
	// out was filled newest first; restore chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	m.snaps = out
	return nil
}

// Count returns the number of stored snapshots for key.
func (m *MemoryRepo) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.snaps {
		if s.Key == key {
			n++
		}
	}
	return n
}

// Put stores raw data under key, bypassing SaveErr. Tests use it to seed
// hand-written snapshots.
func (m *MemoryRepo) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.snaps = append(m.snaps, Snapshot{
		ID:        m.seq,
		Key:       key,
		Sequence:  m.seq,
		Timestamp: time.Now(),
		Data:      append([]byte(nil), data...),
	})
}
