package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pixverse.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "pixverseState")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	in := &Snapshot{
		Key:       "pixverseState",
		SessionID: "run-1",
		Timestamp: now,
		Data:      []byte(`{"tokens":10}`),
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if in.Sequence != 1 {
		t.Errorf("assigned sequence = %d, want 1", in.Sequence)
	}

	snap, err = repo.Latest(ctx, "pixverseState")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if string(snap.Data) != `{"tokens":10}` {
		t.Errorf("data = %s", snap.Data)
	}
	if snap.SessionID != "run-1" {
		t.Errorf("session id = %q", snap.SessionID)
	}
	if !snap.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, now)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Timestamps go backwards; the sequence still decides.
	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Key:       "k",
			Timestamp: base.Add(-time.Duration(i) * time.Minute),
			Data:      []byte(fmt.Sprintf(`{"n":%d}`, i)),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "k")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(snap.Data) != `{"n":2}` {
		t.Errorf("latest data = %s, want n=2", snap.Data)
	}
}

func TestSnapshotKeysAreIsolated(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	_ = repo.Save(ctx, &Snapshot{Key: "a", Data: []byte(`"a"`)})
	_ = repo.Save(ctx, &Snapshot{Key: "b", Data: []byte(`"b"`)})

	snap, err := repo.Latest(ctx, "a")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(snap.Data) != `"a"` {
		t.Errorf("data = %s, want \"a\"", snap.Data)
	}
}

func countRows(t *testing.T, s *Store, key string) int {
	t.Helper()
	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM snapshots WHERE key = ?`, key).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.Save(ctx, &Snapshot{Key: "k", Data: []byte(fmt.Sprintf(`%d`, i))}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	_ = repo.Save(ctx, &Snapshot{Key: "other", Data: []byte(`0`)})

	if err := repo.Prune(ctx, "k", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	if n := countRows(t, s, "k"); n != 5 {
		t.Errorf("remaining snapshots = %d, want 5", n)
	}
	if n := countRows(t, s, "other"); n != 1 {
		t.Errorf("other key snapshots = %d, want 1", n)
	}

	snap, err := repo.Latest(ctx, "k")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(snap.Data) != "6" {
		t.Errorf("latest data = %s, want 6", snap.Data)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, &Snapshot{Key: "k", Data: []byte(`{}`)}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "k", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := countRows(t, s, "k"); n != 2 {
		t.Errorf("remaining snapshots = %d, want 2", n)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepo()

	for i := 0; i < 4; i++ {
		if err := m.Save(ctx, &Snapshot{Key: "k", Data: []byte(fmt.Sprintf("%d", i))}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if err := m.Prune(ctx, "k", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n := m.Count("k"); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	snap, _ := m.Latest(ctx, "k")
	if string(snap.Data) != "3" {
		t.Errorf("latest = %s, want 3", snap.Data)
	}

	m.SaveErr = errors.New("disk full")
	if err := m.Save(ctx, &Snapshot{Key: "k"}); err == nil {
		t.Error("expected SaveErr to surface")
	}
}
