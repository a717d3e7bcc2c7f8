package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/modules"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestModule(id, name string) *modules.Module {
	now := time.Now().UTC().Truncate(time.Second)
	return &modules.Module{
		ID:          id,
		Name:        name,
		Status:      modules.StatusStarted,
		CreatedAt:   now,
		LastUpdated: now,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
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

func TestCreateAndGetOnce(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")
	ctx := context.Background()

	m := newTestModule("m1", "Kubernetes")
	m.Resources = []string{"my notes"}
	if err := docs.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := docs.GetOnce(ctx, "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Kubernetes" || got.Status != modules.StatusStarted {
		t.Fatalf("unexpected module: %+v", got)
	}
	if len(got.Resources) != 1 || got.Resources[0] != "my notes" {
		t.Fatalf("resources = %v", got.Resources)
	}
	if got.AssignmentContent != nil {
		t.Fatal("assignment content should be absent")
	}
}

func TestGetOnceNotFound(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")

	_, err := docs.GetOnce(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMergeUpdateTouchesOnlySetFields(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")
	ctx := context.Background()

	m := newTestModule("m1", "Kubernetes")
	m.Resources = []string{"my notes"}
	if err := docs.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := docs.MergeUpdate(ctx, "m1", modules.Patch{
		Status: modules.StatusPtr(modules.StatusAssignmentDone),
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	got, err := docs.GetOnce(ctx, "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != modules.StatusAssignmentDone {
		t.Fatalf("status = %v, want assignment_done", got.Status)
	}
	// Unspecified fields are untouched.
	if got.Name != "Kubernetes" || len(got.Resources) != 1 {
		t.Fatalf("merge clobbered unrelated fields: %+v", got)
	}
	if !got.LastUpdated.After(m.LastUpdated) && !got.LastUpdated.Equal(m.LastUpdated) {
		t.Fatal("merge must refresh lastUpdated")
	}
}

func TestMergeUpdateUnknownModule(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")

	err := docs.MergeUpdate(context.Background(), "missing", modules.Patch{
		Status: modules.StatusPtr(modules.StatusCompleted),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMergeUpdateReplacesSliceWholesale(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")
	ctx := context.Background()

	m := newTestModule("m1", "Kubernetes")
	m.Quizzes = []modules.QuizAttempt{{Score: 60, Date: time.Now().UTC()}}
	if err := docs.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := docs.MergeUpdate(ctx, "m1", modules.Patch{
		Quizzes: modules.QuizzesPtr([]modules.QuizAttempt{
			{Score: 60, Date: time.Now().UTC()},
			{Score: 100, Date: time.Now().UTC()},
		}),
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	got, err := docs.GetOnce(ctx, "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Quizzes) != 2 || got.Quizzes[1].Score != 100 {
		t.Fatalf("quizzes = %+v", got.Quizzes)
	}
}

func TestUserIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	docsA := s.Docs("pathwise", "user-a")
	docsB := s.Docs("pathwise", "user-b")

	if err := docsA.Create(ctx, newTestModule("m1", "Go")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := docsB.GetOnce(ctx, "m1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected user-b to not see user-a's module, got %v", err)
	}
}

func TestSubscribeDeliversSnapshots(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")
	ctx := context.Background()

	if err := docs.Create(ctx, newTestModule("m1", "Go")); err != nil {
		t.Fatalf("create: %v", err)
	}

	sub := docs.Subscribe(10)
	defer sub.Unsubscribe()

	snap := waitSnapshot(t, sub)
	if len(snap) != 1 || snap[0].ID != "m1" {
		t.Fatalf("initial snapshot = %+v", snap)
	}

	if err := docs.Create(ctx, newTestModule("m2", "Rust")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// Eventually a snapshot containing both modules arrives; intermediate
	// snapshots may be dropped under load.
	deadline := time.After(2 * time.Second)
	for {
		snap = waitSnapshot(t, sub)
		if len(snap) == 2 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("never saw both modules, last snapshot: %+v", snap)
		default:
		}
	}
}

func TestSubscribeCapsLimit(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		if err := docs.Create(ctx, newTestModule(id, "topic "+id)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sub := docs.Subscribe(3)
	defer sub.Unsubscribe()

	snap := waitSnapshot(t, sub)
	if len(snap) != 3 {
		t.Fatalf("expected snapshot capped at 3, got %d", len(snap))
	}

	// A zero or oversized limit clamps to the subscription cap.
	sub2 := docs.Subscribe(0)
	defer sub2.Unsubscribe()
	snap2 := waitSnapshot(t, sub2)
	if len(snap2) != 5 {
		t.Fatalf("expected all 5 under the cap, got %d", len(snap2))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")

	sub := docs.Subscribe(10)
	sub.Unsubscribe()
	sub.Unsubscribe() // idempotent

	// The channel eventually closes; drain anything already queued.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.C:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after unsubscribe")
		}
	}
}

func TestSubscribeClosesOnSnapshotFailure(t *testing.T) {
	s := openTestStore(t)
	docs := s.Docs("pathwise", "user-1")

	// Break the snapshot query underneath the live notifier. A
	// subscriber must see the stream close rather than wait forever.
	if _, err := s.DB().Exec("DROP TABLE module_docs"); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	sub := docs.Subscribe(0)
	defer sub.Unsubscribe()

	select {
	case snap, ok := <-sub.C:
		if ok {
			t.Fatalf("expected closed channel, got snapshot of %d", len(snap))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription neither delivered nor closed")
	}
}

func waitSnapshot(t *testing.T, sub *Subscription) []*modules.Module {
	t.Helper()
	select {
	case snap, ok := <-sub.C:
		if !ok {
			t.Fatal("subscription closed unexpectedly")
		}
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}
