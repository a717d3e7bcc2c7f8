package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
	"github.com/abhisek/pathwise/internal/registry"
	"github.com/abhisek/pathwise/internal/store"
)

// schemaRoutingProvider answers each request according to its schema, so
// the concurrent content requests and the sequential assessment requests
// all get matching payloads.
type schemaRoutingProvider struct{}

func (schemaRoutingProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	var payload json.RawMessage
	switch req.Schema {
	case content.TeacherPicksSchema:
		payload = json.RawMessage(`[
			{"title":"Kubernetes documentation","url":"https://kubernetes.io/docs/"},
			{"title":"Kubernetes: Up and Running"},
			{"title":"Killercoda interactive scenarios"}
		]`)
	case content.AssignmentSchema:
		payload = json.RawMessage(`{
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
	default:
		payload = json.RawMessage(`[
			{"question":"q1","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"},
			{"question":"q2","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"},
			{"question":"q3","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"},
			{"question":"q4","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"},
			{"question":"q5","options":{"A":"a","B":"b","C":"c","D":"d"},"correctAnswer":"A"}
		]`)
	}
	return &llm.Response{Content: payload, Model: "mock", StopReason: "end"}, nil
}

func (schemaRoutingProvider) ModelID() string { return "mock" }

func newTestRegistry(t *testing.T) (*registry.Service, store.DocRepo) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	docs := s.Docs("pathwise", "user-1")
	provider := schemaRoutingProvider{}
	contentSvc := content.NewService(provider, docs, content.DefaultConfig(), nil)
	assessSvc := assessment.NewService(provider, assessment.DefaultConfig(), nil)
	return registry.NewService(docs, contentSvc, assessSvc, nil), docs
}

func TestSessionFullModuleLifecycle(t *testing.T) {
	reg, docs := newTestRegistry(t)

	script := strings.Join([]string{
		"n Kubernetes", // create module from the list screen
		"a task_1",     // answer the assignment task
		"a manifest with three replicas",
		"n",             // next on the last section submits
		"",              // begin the quiz
		"A", "A", "A", "A", "A", // 100%
		"",              // begin the final test
		"A", "A", "A", "A", "A", // 100%
		"b", // leave results
		"q", // quit the list
	}, "\n") + "\n"

	var out bytes.Buffer
	s := newSession(reg, strings.NewReader(script), &out)

	if err := s.run(context.Background(), ""); err != nil {
		t.Fatalf("session: %v\noutput:\n%s", err, out.String())
	}

	for _, want := range []string{
		"Preparing study content",
		"Deploy a resilient service",
		"Assignment submitted",
		"Difficulty:    Fundamentals",
		"Quiz score: 100%",
		"Difficulty:    Comprehensive",
		"Final test score: 100%",
		"Certificate:     issued",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}

	// Confirm the persisted document reached the terminal state.
	ms, err := reg.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("expected 1 module, got %d", len(ms))
	}
	m, err := docs.GetOnce(context.Background(), ms[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Status != modules.StatusCompleted {
		t.Fatalf("status = %v, want completed", m.Status)
	}
	if !m.CertificateIssued || m.FinalTestScore != 100 {
		t.Fatalf("final state = %+v", m)
	}
	if len(m.Quizzes) != 1 || m.Quizzes[0].Score != 100 {
		t.Fatalf("quizzes = %+v", m.Quizzes)
	}
	if m.Assignments.Responses["section_1"]["task_1"] == "" {
		t.Fatal("assignment response must be persisted")
	}
}

func TestSessionFailedFinalTestNeedsRevisit(t *testing.T) {
	reg, docs := newTestRegistry(t)

	script := strings.Join([]string{
		"n Kubernetes",
		"n", // submit the single-section assignment untouched
		"",
		"A", "A", "A", "A", "A", // pass the quiz
		"",
		"B", "B", "B", "B", "B", // fail the final test
		"b",
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := newSession(reg, strings.NewReader(script), &out)
	if err := s.run(context.Background(), ""); err != nil {
		t.Fatalf("session: %v\noutput:\n%s", err, out.String())
	}

	ms, err := reg.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	m, err := docs.GetOnce(context.Background(), ms[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Status != modules.StatusNeedsRevisit {
		t.Fatalf("status = %v, want needs_revisit", m.Status)
	}
	if m.CertificateIssued {
		t.Fatal("certificate must not be issued on a failed final test")
	}
}

func TestSessionResetFromResults(t *testing.T) {
	reg, docs := newTestRegistry(t)

	script := strings.Join([]string{
		"n Kubernetes",
		"n",
		"",
		"A", "A", "A", "A", "A",
		"",
		"B", "B", "B", "B", "B", // fail, land on results
		"r", // retake
		"b", // back from the assignment phase
		"q",
	}, "\n") + "\n"

	var out bytes.Buffer
	s := newSession(reg, strings.NewReader(script), &out)
	if err := s.run(context.Background(), ""); err != nil {
		t.Fatalf("session: %v\noutput:\n%s", err, out.String())
	}

	ms, err := reg.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	m, err := docs.GetOnce(context.Background(), ms[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Status != modules.StatusStarted {
		t.Fatalf("status = %v, want started after reset", m.Status)
	}
	if len(m.Quizzes) != 0 || m.FinalTestScore != 0 {
		t.Fatal("assessment history must be cleared by reset")
	}
	if m.AssignmentContent == nil || len(m.TeacherPicks) == 0 {
		t.Fatal("generated content must survive reset")
	}
}
