package registry

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/modules"
	"github.com/abhisek/pathwise/internal/phase"
	"github.com/abhisek/pathwise/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	docs := s.Docs("pathwise", "user-1")
	contentSvc := content.NewService(nil, docs, content.DefaultConfig(), nil)
	assessSvc := assessment.NewService(nil, assessment.DefaultConfig(), nil)
	return NewService(docs, contentSvc, assessSvc, nil)
}

func TestCreateAndGet(t *testing.T) {
	reg := newTestService(t)
	ctx := context.Background()

	m, err := reg.CreateModule(ctx, "Kubernetes")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected generated id")
	}
	if m.Status != modules.StatusStarted {
		t.Fatalf("status = %v, want started", m.Status)
	}

	got, err := reg.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Kubernetes" {
		t.Fatalf("name = %q", got.Name)
	}
}

func TestListNewestFirst(t *testing.T) {
	reg := newTestService(t)
	ctx := context.Background()

	first, err := reg.CreateModule(ctx, "Go")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// Creation timestamps must differ for the ordering to be observable.
	time.Sleep(5 * time.Millisecond)
	second, err := reg.CreateModule(ctx, "Rust")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ms, err := reg.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(ms))
	}
	if ms[0].ID != second.ID || ms[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", ms[0].Name, ms[1].Name)
	}
}

func TestSortModulesStable(t *testing.T) {
	now := time.Now()
	ms := []*modules.Module{
		{ID: "b", CreatedAt: now},
		{ID: "a", CreatedAt: now},
		{ID: "c", CreatedAt: now.Add(time.Minute)},
	}
	SortModules(ms)

	if ms[0].ID != "c" {
		t.Fatalf("newest must sort first, got %s", ms[0].ID)
	}
	// Ties break on id for a stable display order.
	if ms[1].ID != "a" || ms[2].ID != "b" {
		t.Fatalf("tie-break order wrong: %s, %s", ms[1].ID, ms[2].ID)
	}
}

func TestAddResource(t *testing.T) {
	reg := newTestService(t)
	ctx := context.Background()

	m, err := reg.CreateModule(ctx, "Kubernetes")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := reg.AddResource(ctx, m.ID, "https://kubernetes.io/docs/")
	if err != nil {
		t.Fatalf("add resource: %v", err)
	}
	if updated.Status != modules.StatusResourcesAdded {
		t.Fatalf("first resource should move status to resources_added, got %v", updated.Status)
	}

	// A second resource appends without touching status.
	updated, err = reg.AddResource(ctx, m.ID, "my notes")
	if err != nil {
		t.Fatalf("add second resource: %v", err)
	}
	if len(updated.Resources) != 2 {
		t.Fatalf("resources = %v", updated.Resources)
	}
	if updated.Status != modules.StatusResourcesAdded {
		t.Fatalf("status = %v, want resources_added", updated.Status)
	}

	got, err := reg.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Resources) != 2 {
		t.Fatalf("persisted resources = %v", got.Resources)
	}
}

func TestOpenReportsNeedsGeneration(t *testing.T) {
	reg := newTestService(t)
	ctx := context.Background()

	m, err := reg.CreateModule(ctx, "Kubernetes")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	machine, needsGen, err := reg.Open(ctx, m.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if machine.Phase() != phase.PhaseAssignment {
		t.Fatalf("phase = %v, want assignment", machine.Phase())
	}
	if !needsGen {
		t.Fatal("fresh module must need generation")
	}
}

func TestWatchResortsSnapshots(t *testing.T) {
	reg := newTestService(t)
	ctx := context.Background()

	older, err := reg.CreateModule(ctx, "Go")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	newer, err := reg.CreateModule(ctx, "Rust")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Touch the older module so the store's last-write order disagrees
	// with creation order.
	if _, err := reg.AddResource(ctx, older.ID, "my notes"); err != nil {
		t.Fatalf("add resource: %v", err)
	}

	ch, stop := reg.Watch(10)
	defer stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed")
			}
			if len(snap) == 2 {
				if snap[0].ID != newer.ID {
					t.Fatalf("expected creation order, got %s first", snap[0].Name)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}
