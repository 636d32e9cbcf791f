// Tests in this file cover the invocation history store against a temp DB.
package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *HistoryStore {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, Config{Path: filepath.Join(t.TempDir(), "state.db")})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewHistoryStore(ctx, db)
	if err != nil {
		t.Fatalf("NewHistoryStore failed: %v", err)
	}
	return store
}

func TestRecordAndRecent(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	first := Invocation{
		Operation: "migrate",
		Args:      []string{"msg=add users"},
		ExitCode:  0,
		Duration:  1500 * time.Millisecond,
		StartedAt: time.Unix(1700000000, 0).UTC(),
	}
	second := Invocation{
		Operation: "lint",
		ExitCode:  1,
		Duration:  300 * time.Millisecond,
		StartedAt: time.Unix(1700000100, 0).UTC(),
	}

	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d rows, want 2", len(got))
	}

	// Newest first.
	if got[0].Operation != "lint" || got[0].ExitCode != 1 {
		t.Fatalf("Recent[0] = %+v, want the lint run", got[0])
	}
	if got[1].Operation != "migrate" {
		t.Fatalf("Recent[1] = %+v, want the migrate run", got[1])
	}
	// Args with embedded spaces come back as one value, not two.
	if len(got[1].Args) != 1 || got[1].Args[0] != "msg=add users" {
		t.Fatalf("Recent[1].Args = %v, want [msg=add users]", got[1].Args)
	}
	if got[0].Args != nil {
		t.Fatalf("Recent[0].Args = %v, want none", got[0].Args)
	}
	if got[1].Duration != 1500*time.Millisecond {
		t.Fatalf("Recent[1].Duration = %v, want 1.5s", got[1].Duration)
	}
	if !got[1].StartedAt.Equal(first.StartedAt) {
		t.Fatalf("Recent[1].StartedAt = %v, want %v", got[1].StartedAt, first.StartedAt)
	}
}

func TestRecentLimit(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		inv := Invocation{Operation: "install", StartedAt: time.Now()}
		if err := store.Record(ctx, inv); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(got))
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}
