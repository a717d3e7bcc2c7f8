package modules

import (
	"testing"
	"time"
)

func TestHasContent(t *testing.T) {
	ac := &AssignmentContent{Title: "Practice"}
	picks := []TeacherPick{{Title: "Official docs"}}

	tests := []struct {
		name string
		m    Module
		want bool
	}{
		{"both present", Module{AssignmentContent: ac, TeacherPicks: picks}, true},
		{"no assignment", Module{TeacherPicks: picks}, false},
		{"no picks", Module{AssignmentContent: ac}, false},
		{"neither", Module{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.HasContent(); got != tt.want {
				t.Fatalf("HasContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllQuizzesPassed(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		scores []float64
		want   bool
	}{
		{"no attempts", nil, false},
		{"single pass", []float64{80}, true},
		{"single fail", []float64{79.9}, false},
		{"all pass", []float64{80, 100, 90}, true},
		{"one fail among passes", []float64{100, 60, 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Module
			for _, s := range tt.scores {
				m.Quizzes = append(m.Quizzes, QuizAttempt{Score: s, Date: now})
			}
			if got := m.AllQuizzesPassed(); got != tt.want {
				t.Fatalf("AllQuizzesPassed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatchIsZero(t *testing.T) {
	if !(Patch{}).IsZero() {
		t.Fatal("empty patch should be zero")
	}
	if (Patch{Status: StatusPtr(StatusCompleted)}).IsZero() {
		t.Fatal("patch with a field should not be zero")
	}
	if (Patch{Quizzes: QuizzesPtr([]QuizAttempt{})}).IsZero() {
		t.Fatal("patch carrying an empty slice is still a set field")
	}
}
