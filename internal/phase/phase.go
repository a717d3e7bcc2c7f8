// Package phase owns the per-module study progression: the learner-visible
// phase, its derivation from persisted module state, and the transitions
// fired by assignment navigation and assessment submissions.
package phase

import "github.com/abhisek/pathwise/internal/modules"

// Phase is the learner-visible stage of progress through a module.
type Phase int

const (
	PhaseModuleSelect Phase = iota
	PhaseResources
	PhaseAssignment
	PhaseQuiz
	PhaseFinalTest
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseModuleSelect:
		return "moduleSelect"
	case PhaseResources:
		return "resources"
	case PhaseAssignment:
		return "assignment"
	case PhaseQuiz:
		return "quiz"
	case PhaseFinalTest:
		return "finalTest"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Derive is the single authoritative mapping from persisted module state
// to a phase. It is recomputed whenever a module is (re)selected.
//
// The resources phase is never derived; it is reachable only by explicit
// navigation from the assignment phase.
func Derive(m *modules.Module) Phase {
	switch {
	case m.Status == modules.StatusCompleted || m.Status == modules.StatusNeedsRevisit:
		return PhaseResults
	case !m.HasContent():
		// Content must be (re)generated before the learner can progress.
		return PhaseAssignment
	case m.Status == modules.StatusAssignmentDone:
		return PhaseQuiz
	case m.AllQuizzesPassed():
		return PhaseFinalTest
	default:
		return PhaseAssignment
	}
}
