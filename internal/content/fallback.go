package content

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/modules"
)

// FallbackPicks returns the deterministic placeholder resource list used
// when generation produced unusable output. It satisfies the same shape
// constraints as a generated list so downstream code never needs to
// distinguish the two.
func FallbackPicks(topic string) []modules.TeacherPick {
	return []modules.TeacherPick{
		{Title: fmt.Sprintf("Official documentation for %s", topic)},
		{Title: fmt.Sprintf("An introductory tutorial on %s", topic)},
		{Title: fmt.Sprintf("Practice exercises covering %s fundamentals", topic)},
	}
}

// FallbackAssignment returns the deterministic placeholder assignment
// used when generation produced unusable output. Its structure is valid
// against the assignment schema so the learner can continue through the
// module instead of being blocked on a failed generation.
func FallbackAssignment(topic string) *modules.AssignmentContent {
	return &modules.AssignmentContent{
		Title:      fmt.Sprintf("Practice Assignment: %s", topic),
		TotalMarks: 100,
		Scenario: modules.Scenario{
			Title:       "Independent Study",
			Description: fmt.Sprintf("A tailored assignment could not be generated. Work through the tasks below to consolidate your understanding of %s.", topic),
		},
		Sections: []modules.Section{
			{
				SectionID:    "section_1",
				SectionTitle: "Core Concepts",
				Marks:        50,
				SubScenario: modules.Scenario{
					Title:       "Explain the Fundamentals",
					Description: fmt.Sprintf("Demonstrate that you understand what %s is and when to use it.", topic),
				},
				Tasks: []modules.Task{
					{
						TaskID:          "task_1",
						TaskDescription: fmt.Sprintf("In your own words, explain the core ideas behind %s and the problems it solves.", topic),
						Marks:           25,
						Type:            modules.TaskTypeText,
					},
					{
						TaskID:          "task_2",
						TaskDescription: fmt.Sprintf("Describe a real situation where %s is the right tool, and one where it is not.", topic),
						Marks:           25,
						Type:            modules.TaskTypeText,
					},
				},
			},
			{
				SectionID:    "section_2",
				SectionTitle: "Applied Practice",
				Marks:        50,
				SubScenario: modules.Scenario{
					Title:       "Put It to Work",
					Description: fmt.Sprintf("Apply %s to a small problem of your choosing.", topic),
				},
				Tasks: []modules.Task{
					{
						TaskID:          "task_3",
						TaskDescription: fmt.Sprintf("Build a minimal working example that uses %s, and paste it here.", topic),
						Marks:           30,
						Type:            modules.TaskTypeCode,
					},
					{
						TaskID:          "task_4",
						TaskDescription: "Note what went wrong while building it and how you fixed it.",
						Marks:           20,
						Type:            modules.TaskTypeText,
					},
				},
			},
		},
		Resources: []modules.AssignmentResource{
			{
				Title:    fmt.Sprintf("Official documentation for %s", topic),
				URL:      "",
				Type:     "documentation",
				Category: "reference",
			},
			{
				Title:    fmt.Sprintf("Community discussions on %s", topic),
				URL:      "",
				Type:     "forum",
				Category: "support",
			},
		},
	}
}
