package storage

import (
	"path/filepath"
	"testing"

	"github.com/cubeforge/ncube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create(3)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("session ID should not be empty")
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if s == nil {
		t.Fatal("session not found after create")
	}
	if s.Dimensions != 3 || s.EndedAt != nil || s.Solved {
		t.Errorf("unexpected fresh session: %+v", s)
	}

	if err := sessions.End(id, 42, true); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatalf("get after end failed: %v", err)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("ended session should have end time and duration")
	}
	if s.MoveCount != 42 || !s.Solved {
		t.Errorf("unexpected ended session: %+v", s)
	}
}

func TestSessionGetMissing(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	s, err := sessions.Get("no-such-id")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if s != nil {
		t.Error("missing session should return nil")
	}
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	for i := 0; i < 3; i++ {
		if _, err := sessions.Create(2 + i); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}
	list, err := sessions.List(10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("list returned %d sessions, want 3", len(list))
	}
}

func TestMoveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(3)
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	recorded := []ncube.Move{
		{Axis: ncube.X, Layer: 0, Positive: true},
		{Axis: ncube.Y, Layer: 2, Positive: false},
	}
	for i, m := range recorded {
		if _, err := moves.Create(id, i, int64(i*100), m); err != nil {
			t.Fatalf("create move %d failed: %v", i, err)
		}
	}

	got, err := moves.GetBySession(id)
	if err != nil {
		t.Fatalf("get moves failed: %v", err)
	}
	if len(got) != len(recorded) {
		t.Fatalf("got %d moves, want %d", len(got), len(recorded))
	}
	for i, m := range got {
		want := recorded[i]
		if m.Axis != want.Axis.String() || m.Layer != want.Layer || m.Positive != want.Positive {
			t.Errorf("move %d = %+v, want %v", i, m, want)
		}
		if m.Notation != want.Notation() {
			t.Errorf("move %d notation = %q, want %q", i, m.Notation, want.Notation())
		}
	}

	count, err := moves.CountBySession(id)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != len(recorded) {
		t.Errorf("count = %d, want %d", count, len(recorded))
	}
}

func TestMoveCreateBatch(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(4)
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	batch := []ncube.Move{
		{Axis: ncube.Z, Layer: 1, Positive: true},
		{Axis: ncube.X, Layer: 3, Positive: false},
		{Axis: ncube.Y, Layer: 0, Positive: true},
	}
	if err := moves.CreateBatch(id, 0, 0, batch); err != nil {
		t.Fatalf("batch create failed: %v", err)
	}

	count, err := moves.CountBySession(id)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != len(batch) {
		t.Errorf("count = %d, want %d", count, len(batch))
	}
}
