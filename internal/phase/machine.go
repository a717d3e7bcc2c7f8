package phase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/modules"
)

// Syncer is the write-back half of the persistence synchronizer the
// machine needs. Satisfied by store.DocRepo.
type Syncer interface {
	MergeUpdate(ctx context.Context, moduleID string, p modules.Patch) error
}

var (
	// ErrNoQuestions is returned when a submission is attempted before a
	// question set was successfully generated.
	ErrNoQuestions = errors.New("no questions loaded: generate the assessment first")

	// ErrWrongPhase is returned when an event fires in a phase that does
	// not accept it.
	ErrWrongPhase = errors.New("operation not valid in the current phase")
)

// Machine drives one selected module through its phases. It mutates the
// module optimistically in memory and writes back through the Syncer;
// a failed write is surfaced but never rolled back locally.
//
// The machine is event/callback-driven and not safe for concurrent use.
type Machine struct {
	module *modules.Module
	syncer Syncer
	phase  Phase

	// section is the current assignment section index, in
	// [0, sectionCount-1].
	section int

	// Ephemeral assessment state, discarded after scoring and on
	// navigation back to module selection.
	questions []assessment.Question
	answers   map[int]string

	now func() time.Time
}

// NewMachine binds a machine to a selected module, deriving the phase
// from its persisted state.
func NewMachine(m *modules.Module, syncer Syncer) *Machine {
	return &Machine{
		module:  m,
		syncer:  syncer,
		phase:   Derive(m),
		answers: make(map[int]string),
		now:     time.Now,
	}
}

// Module returns the bound module.
func (ma *Machine) Module() *modules.Module { return ma.module }

// Phase returns the current phase.
func (ma *Machine) Phase() Phase { return ma.phase }

// SectionIndex returns the current assignment section index.
func (ma *Machine) SectionIndex() int { return ma.section }

// NeedsGeneration reports whether study content must be generated before
// the learner can progress past the assignment phase.
func (ma *Machine) NeedsGeneration() bool {
	return ma.phase == PhaseAssignment && !ma.module.HasContent()
}

// Questions returns the active assessment question set, if any.
func (ma *Machine) Questions() []assessment.Question { return ma.questions }

// ViewResources navigates to the resources phase. Only reachable by
// explicit navigation, never by derivation.
func (ma *Machine) ViewResources() {
	ma.phase = PhaseResources
}

// ResumeStudy re-derives the phase from persisted state, leaving the
// resources phase or refreshing after external changes.
func (ma *Machine) ResumeStudy() {
	ma.phase = Derive(ma.module)
}

// RecordResponse stores the learner's submission for one task. The text
// is recorded verbatim, never evaluated, and persisted immediately.
func (ma *Machine) RecordResponse(ctx context.Context, sectionID, taskID, text string) error {
	if ma.phase != PhaseAssignment {
		return ErrWrongPhase
	}

	if ma.module.Assignments.Responses == nil {
		ma.module.Assignments.Responses = make(map[string]map[string]string)
	}
	if ma.module.Assignments.Responses[sectionID] == nil {
		ma.module.Assignments.Responses[sectionID] = make(map[string]string)
	}
	ma.module.Assignments.Responses[sectionID][taskID] = text

	st := ma.module.Assignments
	return ma.merge(ctx, modules.Patch{Assignments: &st})
}

// PrevSection moves one section back, flooring at the first section.
func (ma *Machine) PrevSection() {
	if ma.phase != PhaseAssignment {
		return
	}
	if ma.section > 0 {
		ma.section--
	}
}

// NextSection advances one section. On the last section "next" is
// redefined as "submit": the assignment completes and the quiz phase
// begins. Returns true when the assignment was submitted.
func (ma *Machine) NextSection(ctx context.Context) (bool, error) {
	if ma.phase != PhaseAssignment {
		return false, ErrWrongPhase
	}
	if ma.module.AssignmentContent == nil {
		return false, fmt.Errorf("assignment content missing: %w", ErrWrongPhase)
	}

	last := len(ma.module.AssignmentContent.Sections) - 1
	if ma.section < last {
		ma.section++
		return false, nil
	}

	return true, ma.SubmitAssignment(ctx)
}

// SubmitAssignment completes the assignment explicitly, firing the
// assignment -> quiz transition.
func (ma *Machine) SubmitAssignment(ctx context.Context) error {
	if ma.phase != PhaseAssignment {
		return ErrWrongPhase
	}

	ma.module.Assignments.Completed = true
	ma.module.Status = modules.StatusAssignmentDone
	ma.phase = PhaseQuiz

	st := ma.module.Assignments
	return ma.merge(ctx, modules.Patch{
		Assignments: &st,
		Status:      modules.StatusPtr(modules.StatusAssignmentDone),
	})
}

// LoadQuestions installs a freshly generated question set for the
// current quiz or final test. Rejected outside assessment phases.
func (ma *Machine) LoadQuestions(qs []assessment.Question) error {
	if ma.phase != PhaseQuiz && ma.phase != PhaseFinalTest {
		return ErrWrongPhase
	}
	ma.questions = qs
	ma.answers = make(map[int]string)
	return nil
}

// Answer records the learner's selected option key for one question.
func (ma *Machine) Answer(questionIndex int, option string) {
	if questionIndex >= 0 && questionIndex < len(ma.questions) {
		ma.answers[questionIndex] = option
	}
}

// SubmitQuiz scores the active quiz, records the attempt regardless of
// score, and advances to the final test when the attempt passes. The
// question set is discarded after scoring.
func (ma *Machine) SubmitQuiz(ctx context.Context) (float64, error) {
	if ma.phase != PhaseQuiz {
		return 0, ErrWrongPhase
	}
	if len(ma.questions) == 0 {
		return 0, ErrNoQuestions
	}

	score := assessment.Score(ma.questions, ma.answers)
	ma.module.Quizzes = append(ma.module.Quizzes, modules.QuizAttempt{
		Score: score,
		Date:  ma.now().UTC(),
	})
	ma.clearAssessment()

	if score >= modules.CertificationThreshold {
		ma.phase = PhaseFinalTest
	}

	quizzes := ma.module.Quizzes
	return score, ma.merge(ctx, modules.Patch{Quizzes: &quizzes})
}

// SubmitFinalTest scores the active final test and fires the
// finalTest -> results transition. The score always overwrites the
// previous one; status and certification follow the threshold.
func (ma *Machine) SubmitFinalTest(ctx context.Context) (float64, error) {
	if ma.phase != PhaseFinalTest {
		return 0, ErrWrongPhase
	}
	if len(ma.questions) == 0 {
		return 0, ErrNoQuestions
	}

	score := assessment.Score(ma.questions, ma.answers)
	ma.clearAssessment()

	ma.module.FinalTestScore = score
	if score >= modules.CertificationThreshold {
		ma.module.Status = modules.StatusCompleted
		ma.module.CertificateIssued = true
	} else {
		ma.module.Status = modules.StatusNeedsRevisit
		ma.module.CertificateIssued = false
	}
	ma.phase = PhaseResults

	return score, ma.merge(ctx, modules.Patch{
		FinalTestScore:    modules.Float64Ptr(score),
		Status:            modules.StatusPtr(ma.module.Status),
		CertificateIssued: modules.BoolPtr(ma.module.CertificateIssued),
	})
}

// Reset fires the results -> assignment transition: assessment history
// is cleared while resources, teacher picks, and generated assignment
// content are retained so the retry reuses them.
func (ma *Machine) Reset(ctx context.Context) error {
	if ma.phase != PhaseResults {
		return ErrWrongPhase
	}

	ma.module.Assignments = modules.AssignmentState{}
	ma.module.Quizzes = nil
	ma.module.FinalTestScore = 0
	ma.module.CertificateIssued = false
	ma.module.Status = modules.StatusStarted

	ma.section = 0
	ma.clearAssessment()
	ma.phase = Derive(ma.module)

	empty := modules.AssignmentState{}
	return ma.merge(ctx, modules.Patch{
		Assignments:       &empty,
		Quizzes:           modules.QuizzesPtr([]modules.QuizAttempt{}),
		FinalTestScore:    modules.Float64Ptr(0),
		CertificateIssued: modules.BoolPtr(false),
		Status:            modules.StatusPtr(modules.StatusStarted),
	})
}

// BackToModules leaves the module, discarding all ephemeral state.
func (ma *Machine) BackToModules() {
	ma.clearAssessment()
	ma.section = 0
	ma.phase = PhaseModuleSelect
}

func (ma *Machine) clearAssessment() {
	ma.questions = nil
	ma.answers = make(map[int]string)
}

func (ma *Machine) merge(ctx context.Context, p modules.Patch) error {
	ma.module.LastUpdated = ma.now().UTC()
	if err := ma.syncer.MergeUpdate(ctx, ma.module.ID, p); err != nil {
		return fmt.Errorf("write back module %s: %w", ma.module.ID, err)
	}
	return nil
}
