package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/modules"
)

const questionSystemPrompt = `You are an examiner writing multiple-choice questions for a self-paced study module.

Rules:
- Write exactly 5 questions about the given topic.
- Each question has exactly 4 options labeled A, B, C, D, with exactly one correct answer.
- Distractors should reflect plausible misunderstandings, not random values.
- Questions must be answerable from the listed study materials alone.
- Use plain text. No markdown, no LaTeX.`

// buildQuestionUserMessage assembles the prompt from the module's study
// materials. The variant changes the instructional framing only; the
// response schema is the same for both.
func buildQuestionUserMessage(m *modules.Module, v Variant) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", m.Name)

	b.WriteString("\nStudy materials:\n")
	b.WriteString(buildMaterials(m))

	b.WriteString("\nFraming:\n")
	if v == VariantFinalTest {
		b.WriteString("This is the final test for the module. Cover the full breadth of the topic, mixing recall with applied understanding. Include at least one question that combines two concepts.")
	} else {
		b.WriteString("This is a practice quiz. Focus on the fundamentals: definitions, core concepts, and simple applications a learner should master first.")
	}

	return b.String()
}

// buildMaterials lists learner-added resources and teacher picks. When
// both are empty the prompt falls back to a generic framing; the
// response schema is unaffected.
func buildMaterials(m *modules.Module) string {
	var lines []string

	for _, r := range m.Resources {
		lines = append(lines, "- "+r)
	}
	for _, p := range m.TeacherPicks {
		if p.URL != "" {
			lines = append(lines, fmt.Sprintf("- %s (%s)", p.Title, p.URL))
		} else {
			lines = append(lines, "- "+p.Title)
		}
	}

	if len(lines) == 0 {
		return "The standard materials for this topic.\n"
	}
	return strings.Join(lines, "\n") + "\n"
}
