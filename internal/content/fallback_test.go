package content

import (
	"reflect"
	"testing"

	"github.com/abhisek/pathwise/internal/modules"
)

func TestFallbackPicksDeterministic(t *testing.T) {
	a := FallbackPicks("Kubernetes")
	b := FallbackPicks("Kubernetes")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("fallback picks must be deterministic")
	}
	if len(a) < 3 || len(a) > 5 {
		t.Fatalf("expected 3-5 picks, got %d", len(a))
	}
	for _, p := range a {
		if p.Title == "" {
			t.Fatal("every pick needs a title")
		}
	}
}

func TestFallbackAssignmentShape(t *testing.T) {
	ac := FallbackAssignment("Kubernetes")

	if ac.Title == "" || ac.TotalMarks == 0 {
		t.Fatal("fallback assignment needs a title and total marks")
	}
	if len(ac.Sections) == 0 {
		t.Fatal("fallback assignment needs sections")
	}
	for _, sec := range ac.Sections {
		if sec.SectionID == "" || len(sec.Tasks) == 0 {
			t.Fatalf("section %q malformed", sec.SectionTitle)
		}
		for _, task := range sec.Tasks {
			if task.TaskID == "" || task.TaskDescription == "" {
				t.Fatalf("task in %q malformed", sec.SectionID)
			}
			if task.Type != modules.TaskTypeText && task.Type != modules.TaskTypeCode {
				t.Fatalf("task %q has invalid type %q", task.TaskID, task.Type)
			}
		}
	}
	if len(ac.Resources) == 0 {
		t.Fatal("fallback assignment needs resources")
	}
}

func TestFallbackAssignmentDeterministic(t *testing.T) {
	if !reflect.DeepEqual(FallbackAssignment("Go"), FallbackAssignment("Go")) {
		t.Fatal("fallback assignment must be deterministic")
	}
}
