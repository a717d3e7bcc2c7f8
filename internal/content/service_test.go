package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
)

// fakeSyncer records merge patches keyed by module id.
type fakeSyncer struct {
	mu      sync.Mutex
	patches []modules.Patch
	err     error
}

func (f *fakeSyncer) MergeUpdate(_ context.Context, _ string, p modules.Patch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, p)
	return f.err
}

func (f *fakeSyncer) picksPatches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.patches {
		if p.TeacherPicks != nil {
			n++
		}
	}
	return n
}

func (f *fakeSyncer) assignmentPatches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.patches {
		if p.AssignmentContent != nil {
			n++
		}
	}
	return n
}

func testModule() *modules.Module {
	return &modules.Module{ID: "m1", Name: "Kubernetes", Resources: []string{"my notes"}}
}

func picksJSON() json.RawMessage {
	return json.RawMessage(`[
		{"title":"Kubernetes documentation","url":"https://kubernetes.io/docs/"},
		{"title":"Kubernetes: Up and Running"},
		{"title":"Killercoda interactive scenarios","url":"https://killercoda.com"}
	]`)
}

func assignmentJSON() json.RawMessage {
	return json.RawMessage(`{
		"title":"Deploy a resilient service",
		"total_marks":100,
		"scenario":{"title":"Launch week","description":"Your team ships a new API."},
		"sections":[{
			"section_id":"section_1",
			"section_title":"Deployment basics",
			"marks":100,
			"sub_scenario":{"title":"First rollout","description":"Get the API running."},
			"tasks":[{
				"task_id":"task_1",
				"task_description":"Write the Deployment manifest.",
				"marks":100,
				"type":"code_input",
				"language":"yaml"
			}]
		}],
		"resources":[{"title":"Deployments","url":"https://kubernetes.io/docs/concepts/workloads/","type":"documentation","category":"reference"}]
	}`)
}

// routingProvider answers picks and assignment requests by inspecting
// the schema on each call, since the two generation goroutines race.
type routingProvider struct {
	picks      llm.MockResponse
	assignment llm.MockResponse
	mu         sync.Mutex
	calls      []llm.Request
}

func (r *routingProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	r.mu.Lock()
	r.calls = append(r.calls, req)
	r.mu.Unlock()

	resp := r.assignment
	if req.Schema == TeacherPicksSchema {
		resp = r.picks
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &llm.Response{Content: resp.Content, Model: "mock", StopReason: "end"}, nil
}

func (r *routingProvider) ModelID() string { return "mock" }

func TestGenerate_BothPartsPersisted(t *testing.T) {
	provider := &routingProvider{
		picks:      llm.MockResponse{Content: picksJSON()},
		assignment: llm.MockResponse{Content: assignmentJSON()},
	}
	syncer := &fakeSyncer{}
	svc := NewService(provider, syncer, DefaultConfig(), nil)

	res, err := svc.Generate(context.Background(), testModule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Notices) != 0 {
		t.Fatalf("unexpected notices: %v", res.Notices)
	}
	if len(res.Picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(res.Picks))
	}
	if res.Assignment == nil || res.Assignment.Title != "Deploy a resilient service" {
		t.Fatalf("unexpected assignment: %+v", res.Assignment)
	}

	// Each part is written with its own merge.
	if syncer.picksPatches() != 1 {
		t.Fatalf("expected 1 picks merge, got %d", syncer.picksPatches())
	}
	if syncer.assignmentPatches() != 1 {
		t.Fatalf("expected 1 assignment merge, got %d", syncer.assignmentPatches())
	}
}

func TestGenerate_NilProviderFatal(t *testing.T) {
	svc := NewService(nil, &fakeSyncer{}, DefaultConfig(), nil)
	_, err := svc.Generate(context.Background(), testModule())
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerate_MalformedAssignmentFallsBack(t *testing.T) {
	provider := &routingProvider{
		picks:      llm.MockResponse{Content: picksJSON()},
		assignment: llm.MockResponse{Content: json.RawMessage(`this is not json`)},
	}
	syncer := &fakeSyncer{}
	svc := NewService(provider, syncer, DefaultConfig(), nil)

	res, err := svc.Generate(context.Background(), testModule())
	if err != nil {
		t.Fatalf("fallback must not be an error: %v", err)
	}

	// The assignment is never left missing after an attempted generation.
	if res.Assignment == nil {
		t.Fatal("expected fallback assignment")
	}
	if len(res.Assignment.Sections) == 0 {
		t.Fatal("fallback assignment must carry sections")
	}
	if len(res.Notices) != 1 {
		t.Fatalf("expected 1 notice, got %v", res.Notices)
	}
	if syncer.assignmentPatches() != 1 {
		t.Fatal("fallback assignment must be persisted")
	}

	// The independent picks request still succeeded.
	if len(res.Picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(res.Picks))
	}
}

func TestGenerate_InvalidPicksFallBack(t *testing.T) {
	provider := &routingProvider{
		picks:      llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema violation")}},
		assignment: llm.MockResponse{Content: assignmentJSON()},
	}
	syncer := &fakeSyncer{}
	svc := NewService(provider, syncer, DefaultConfig(), nil)

	res, err := svc.Generate(context.Background(), testModule())
	if err != nil {
		t.Fatalf("fallback must not be an error: %v", err)
	}
	if len(res.Picks) == 0 {
		t.Fatal("expected fallback picks")
	}
	if syncer.picksPatches() != 1 {
		t.Fatal("fallback picks must be persisted")
	}
}

func TestGenerate_TransportErrorNoFallback(t *testing.T) {
	provider := &routingProvider{
		picks:      llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}},
		assignment: llm.MockResponse{Content: assignmentJSON()},
	}
	syncer := &fakeSyncer{}
	svc := NewService(provider, syncer, DefaultConfig(), nil)

	res, err := svc.Generate(context.Background(), testModule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Transport failures are reported verbatim; nothing is substituted
	// or persisted for that part.
	if len(res.Picks) != 0 {
		t.Fatal("no picks may be substituted for a transport failure")
	}
	if syncer.picksPatches() != 0 {
		t.Fatal("nothing may be persisted for a failed transport request")
	}
	if len(res.Notices) != 1 {
		t.Fatalf("expected 1 notice, got %v", res.Notices)
	}

	// The assignment side is unaffected.
	if res.Assignment == nil || syncer.assignmentPatches() != 1 {
		t.Fatal("assignment request must proceed independently")
	}
}

func TestGenerate_PersistFailureSurfaced(t *testing.T) {
	provider := &routingProvider{
		picks:      llm.MockResponse{Content: picksJSON()},
		assignment: llm.MockResponse{Content: assignmentJSON()},
	}
	syncer := &fakeSyncer{err: errors.New("store offline")}
	svc := NewService(provider, syncer, DefaultConfig(), nil)

	res, err := svc.Generate(context.Background(), testModule())
	if err == nil {
		t.Fatal("expected persistence error to surface")
	}
	// Generated values remain available; there is no rollback.
	if res == nil || len(res.Picks) == 0 || res.Assignment == nil {
		t.Fatal("generated content must survive a failed write")
	}
}

func TestGenerate_SingleFlightPerModule(t *testing.T) {
	svc := NewService(&routingProvider{}, &fakeSyncer{}, DefaultConfig(), nil)

	if !svc.inflight.tryAcquire("m1") {
		t.Fatal("first acquire should succeed")
	}
	_, err := svc.Generate(context.Background(), testModule())
	if !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("expected ErrGenerationInFlight, got %v", err)
	}

	svc.inflight.release("m1")
	if !svc.inflight.tryAcquire("m1") {
		t.Fatal("acquire after release should succeed")
	}
}
