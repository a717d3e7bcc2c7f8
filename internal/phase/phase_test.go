package phase

import (
	"testing"

	"github.com/abhisek/pathwise/internal/modules"
)

func moduleWithContent() *modules.Module {
	return &modules.Module{
		ID:     "m1",
		Name:   "Kubernetes",
		Status: modules.StatusStarted,
		TeacherPicks: []modules.TeacherPick{
			{Title: "Official docs"},
		},
		AssignmentContent: &modules.AssignmentContent{
			Title: "Practice",
			Sections: []modules.Section{
				{SectionID: "section_1"},
			},
		},
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		mod  func() *modules.Module
		want Phase
	}{
		{
			name: "completed goes to results",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.Status = modules.StatusCompleted
				return m
			},
			want: PhaseResults,
		},
		{
			name: "needs revisit goes to results",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.Status = modules.StatusNeedsRevisit
				return m
			},
			want: PhaseResults,
		},
		{
			name: "missing content goes to assignment",
			mod: func() *modules.Module {
				return &modules.Module{ID: "m1", Status: modules.StatusStarted}
			},
			want: PhaseAssignment,
		},
		{
			name: "missing picks still counts as missing content",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.TeacherPicks = nil
				return m
			},
			want: PhaseAssignment,
		},
		{
			name: "assignment done goes to quiz",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.Status = modules.StatusAssignmentDone
				m.Assignments.Completed = true
				return m
			},
			want: PhaseQuiz,
		},
		{
			name: "all quizzes passed goes to final test",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.Quizzes = []modules.QuizAttempt{{Score: 100}, {Score: 80}}
				return m
			},
			want: PhaseFinalTest,
		},
		{
			name: "failed quiz stays on assignment",
			mod: func() *modules.Module {
				m := moduleWithContent()
				m.Quizzes = []modules.QuizAttempt{{Score: 60}}
				return m
			},
			want: PhaseAssignment,
		},
		{
			name: "fresh module with content goes to assignment",
			mod:  moduleWithContent,
			want: PhaseAssignment,
		},
		{
			name: "results precedence beats missing content",
			mod: func() *modules.Module {
				return &modules.Module{ID: "m1", Status: modules.StatusCompleted}
			},
			want: PhaseResults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.mod()); got != tt.want {
				t.Fatalf("Derive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseModuleSelect, "moduleSelect"},
		{PhaseResources, "resources"},
		{PhaseAssignment, "assignment"},
		{PhaseQuiz, "quiz"},
		{PhaseFinalTest, "finalTest"},
		{PhaseResults, "results"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
