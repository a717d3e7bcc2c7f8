package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/modules"
)

const picksSystemPrompt = `You are a study mentor curating resources for a learner starting a new topic.

Rules:
- Recommend 3 to 5 resources: official documentation, a well-regarded book or course, and at least one hands-on resource.
- Titles must name the actual resource, specific enough to search for.
- Include a URL only when a canonical one exists. Never invent URLs.
- Order from foundational to advanced.`

const assignmentSystemPrompt = `You are a course designer writing a scenario-driven practice assignment for a self-paced study module.

Rules:
- Frame the whole assignment around one realistic scenario a practitioner would face.
- Split the work into 2 to 4 sections, each with its own sub-scenario and 1 to 3 concrete tasks.
- Each task is either text_input (explain, analyze, compare) or code_input (implement, fix, extend). Set the language field for code_input tasks.
- Assign marks per task and per section, and a total for the assignment.
- List 2 to 4 reference resources relevant to the scenario.
- Use plain text in descriptions. No markdown.`

func buildPicksUserMessage(m *modules.Module) string {
	return fmt.Sprintf("Curate study resources for the topic: %s", m.Name)
}

func buildAssignmentUserMessage(m *modules.Module) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", m.Name)

	if len(m.Resources) > 0 {
		b.WriteString("\nThe learner is studying from these materials; ground the scenario in what they cover:\n")
		for _, r := range m.Resources {
			b.WriteString("- " + r + "\n")
		}
	}

	return b.String()
}
