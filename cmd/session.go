package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/pathwise/internal/assessment"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/modules"
	"github.com/abhisek/pathwise/internal/phase"
	"github.com/abhisek/pathwise/internal/registry"
)

// session drives the interactive study loop over stdin/stdout.
type session struct {
	reg *registry.Service
	in  *bufio.Scanner
	out io.Writer
}

func newSession(reg *registry.Service, r io.Reader, w io.Writer) *session {
	return &session{reg: reg, in: bufio.NewScanner(r), out: w}
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine returns the next input line, or false when input is closed.
func (s *session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// run starts the session. With a module id it opens that module
// directly; otherwise it starts at module selection.
func (s *session) run(ctx context.Context, moduleID string) error {
	if moduleID != "" {
		return s.study(ctx, moduleID)
	}

	for {
		ms, err := s.reg.List(ctx)
		if err != nil {
			return err
		}

		s.printf("\nYour modules:\n")
		if len(ms) == 0 {
			s.printf("  (none yet)\n")
		}
		for i, m := range ms {
			s.printf("  %2d. %-40s  %s\n", i+1, m.Name, m.Status)
		}
		s.printf("\n[number] open module | n <topic> new module | q quit\n> ")

		line, ok := s.readLine()
		if !ok {
			return nil
		}

		switch {
		case line == "q":
			return nil
		case strings.HasPrefix(line, "n "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "n "))
			if name == "" {
				s.printf("Module topic cannot be empty.\n")
				continue
			}
			m, err := s.reg.CreateModule(ctx, name)
			if err != nil {
				s.printf("Create failed: %v\n", err)
				continue
			}
			if err := s.study(ctx, m.ID); err != nil {
				return err
			}
		default:
			idx, err := strconv.Atoi(line)
			if err != nil || idx < 1 || idx > len(ms) {
				s.printf("Enter a module number, n <topic>, or q.\n")
				continue
			}
			if err := s.study(ctx, ms[idx-1].ID); err != nil {
				return err
			}
		}
	}
}

// study opens one module and drives it through its phases until the
// learner navigates back to module selection.
func (s *session) study(ctx context.Context, moduleID string) error {
	machine, needsGen, err := s.reg.Open(ctx, moduleID)
	if err != nil {
		return err
	}
	m := machine.Module()

	if needsGen {
		if err := s.generateContent(ctx, machine); err != nil {
			return err
		}
	}

	for {
		switch machine.Phase() {
		case phase.PhaseModuleSelect:
			return nil
		case phase.PhaseResources:
			s.showResources(m)
			machine.ResumeStudy()
		case phase.PhaseAssignment:
			if machine.NeedsGeneration() {
				if err := s.generateContent(ctx, machine); err != nil {
					return err
				}
				continue
			}
			if err := s.assignmentStep(ctx, machine); err != nil {
				return err
			}
		case phase.PhaseQuiz:
			if err := s.runAssessment(ctx, machine, assessment.VariantQuiz); err != nil {
				return err
			}
		case phase.PhaseFinalTest:
			if err := s.runAssessment(ctx, machine, assessment.VariantFinalTest); err != nil {
				return err
			}
		case phase.PhaseResults:
			if err := s.showResults(ctx, machine); err != nil {
				return err
			}
		}
	}
}

// generateContent runs content generation for the bound module and
// reports notices. A missing credential aborts the session; anything
// else leaves the learner in place to retry.
func (s *session) generateContent(ctx context.Context, machine *phase.Machine) error {
	m := machine.Module()
	s.printf("\nPreparing study content for %q...\n", m.Name)

	res, err := s.reg.GenerateContent(ctx, m)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return err
		}
		if errors.Is(err, content.ErrGenerationInFlight) {
			s.printf("Content generation is already running; try again shortly.\n")
			machine.BackToModules()
			return nil
		}
		return err
	}

	for _, n := range res.Notices {
		s.printf("Note: %s\n", n)
	}
	machine.ResumeStudy()

	if machine.NeedsGeneration() {
		s.printf("Study content is still unavailable; try this module again later.\n")
		machine.BackToModules()
	}
	return nil
}

func (s *session) showResources(m *modules.Module) {
	s.printf("\nResources for %q\n", m.Name)

	s.printf("\nYour materials:\n")
	if len(m.Resources) == 0 {
		s.printf("  (none added)\n")
	}
	for _, r := range m.Resources {
		s.printf("  - %s\n", r)
	}

	s.printf("\nTeacher's picks:\n")
	if len(m.TeacherPicks) == 0 {
		s.printf("  (not generated yet)\n")
	}
	for _, p := range m.TeacherPicks {
		if p.URL != "" {
			s.printf("  - %s (%s)\n", p.Title, p.URL)
		} else {
			s.printf("  - %s\n", p.Title)
		}
	}

	s.printf("\nPress Enter to continue.\n")
	s.readLine()
}

// assignmentStep renders the current section and handles one command.
func (s *session) assignmentStep(ctx context.Context, machine *phase.Machine) error {
	m := machine.Module()
	ac := m.AssignmentContent
	if ac == nil || len(ac.Sections) == 0 {
		s.printf("Assignment content is missing; returning to modules.\n")
		machine.BackToModules()
		return nil
	}

	idx := machine.SectionIndex()
	sec := ac.Sections[idx]

	s.printf("\n%s (section %d/%d, %d marks)\n", ac.Title, idx+1, len(ac.Sections), ac.TotalMarks)
	s.printf("\n%s: %s\n", sec.SectionTitle, sec.SubScenario.Title)
	s.printf("%s\n", sec.SubScenario.Description)

	s.printf("\nTasks:\n")
	for _, t := range sec.Tasks {
		done := " "
		if resp := m.Assignments.Responses[sec.SectionID]; resp[t.TaskID] != "" {
			done = "*"
		}
		s.printf(" [%s] %s (%d marks, %s): %s\n", done, t.TaskID, t.Marks, t.Type, t.TaskDescription)
	}

	next := "n next section"
	if idx == len(ac.Sections)-1 {
		next = "n submit assignment"
	}
	s.printf("\na <task-id> answer | %s | p previous | r resources | b back\n> ", next)

	line, ok := s.readLine()
	if !ok {
		machine.BackToModules()
		return nil
	}

	switch {
	case line == "b":
		machine.BackToModules()
	case line == "r":
		machine.ViewResources()
	case line == "p":
		machine.PrevSection()
	case line == "n":
		submitted, err := machine.NextSection(ctx)
		if err != nil {
			s.printf("Error: %v\n", err)
			return nil
		}
		if submitted {
			s.printf("\nAssignment submitted. Time for the quiz.\n")
		}
	case strings.HasPrefix(line, "a "):
		taskID := strings.TrimSpace(strings.TrimPrefix(line, "a "))
		if !sectionHasTask(sec, taskID) {
			s.printf("No task %q in this section.\n", taskID)
			return nil
		}
		s.printf("Your response:\n> ")
		text, ok := s.readLine()
		if !ok {
			machine.BackToModules()
			return nil
		}
		if err := machine.RecordResponse(ctx, sec.SectionID, taskID, text); err != nil {
			s.printf("Could not save response: %v\n", err)
		}
	default:
		s.printf("Unknown command.\n")
	}
	return nil
}

func sectionHasTask(sec modules.Section, taskID string) bool {
	for _, t := range sec.Tasks {
		if t.TaskID == taskID {
			return true
		}
	}
	return false
}

// runAssessment generates a question set for the quiz or final test,
// collects answers, and submits.
func (s *session) runAssessment(ctx context.Context, machine *phase.Machine, v assessment.Variant) error {
	m := machine.Module()

	label := "quiz"
	if v == assessment.VariantFinalTest {
		label = "final test"
	}
	meta := assessment.MetadataFor(v)
	s.printf("\nReady for the %s on %q.\n", label, m.Name)
	s.printf("  Difficulty:    %s\n", meta.Difficulty)
	s.printf("  Time estimate: %s\n", meta.TimeEstimate)
	s.printf("  %s\n", meta.Alignment)
	s.printf("Press Enter to begin (b to go back).\n> ")

	line, ok := s.readLine()
	if !ok || line == "b" {
		machine.BackToModules()
		return nil
	}

	qs, err := s.reg.GenerateQuestions(ctx, m, v)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return err
		}
		s.printf("Could not generate the %s: %v\nTry again in a moment.\n", label, err)
		return nil
	}
	if err := machine.LoadQuestions(qs); err != nil {
		s.printf("Error: %v\n", err)
		return nil
	}

	for i, q := range qs {
		s.printf("\nQ%d. %s\n", i+1, q.Question)
		s.printf("  A. %s\n  B. %s\n  C. %s\n  D. %s\n", q.Options.A, q.Options.B, q.Options.C, q.Options.D)

		for {
			s.printf("Answer (A-D): ")
			ans, ok := s.readLine()
			if !ok {
				machine.BackToModules()
				return nil
			}
			ans = strings.ToUpper(ans)
			if ans == "A" || ans == "B" || ans == "C" || ans == "D" {
				machine.Answer(i, ans)
				break
			}
			s.printf("Enter A, B, C, or D.\n")
		}
	}

	if v == assessment.VariantFinalTest {
		score, err := machine.SubmitFinalTest(ctx)
		if err != nil {
			s.printf("Could not submit: %v\n", err)
			return nil
		}
		s.printf("\nFinal test score: %.0f%%\n", score)
		return nil
	}

	score, err := machine.SubmitQuiz(ctx)
	if err != nil {
		s.printf("Could not submit: %v\n", err)
		return nil
	}
	if score >= modules.CertificationThreshold {
		s.printf("\nQuiz score: %.0f%%. Passed! The final test is next.\n", score)
	} else {
		s.printf("\nQuiz score: %.0f%%. You need %.0f%% to unlock the final test; take another quiz when ready.\n",
			score, modules.CertificationThreshold)
	}
	return nil
}

// showResults renders the results phase and handles reset/back.
func (s *session) showResults(ctx context.Context, machine *phase.Machine) error {
	m := machine.Module()

	s.printf("\nResults for %q\n", m.Name)
	s.printf("  Status:          %s\n", m.Status)
	s.printf("  Final test:      %.0f%%\n", m.FinalTestScore)
	s.printf("  Quiz attempts:   %d\n", len(m.Quizzes))
	if m.CertificateIssued {
		s.printf("  Certificate:     issued\n")
	} else {
		s.printf("  Certificate:     not issued (need %.0f%%)\n", modules.CertificationThreshold)
	}

	s.printf("\nr retake module | b back to modules\n> ")
	line, ok := s.readLine()
	if !ok {
		machine.BackToModules()
		return nil
	}

	switch line {
	case "r":
		if err := machine.Reset(ctx); err != nil {
			s.printf("Could not reset: %v\n", err)
			return nil
		}
		s.printf("Module reset. Your resources and assignment are kept; work through it again.\n")
	case "b":
		machine.BackToModules()
	default:
		s.printf("Unknown command.\n")
	}
	return nil
}
