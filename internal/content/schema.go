package content

import "github.com/abhisek/pathwise/internal/llm"

// TeacherPicksSchema is the JSON schema for the curated resource list:
// a bounded list of titles with optional URLs.
var TeacherPicksSchema = &llm.Schema{
	Name:        "teacher-picks",
	Description: "A short curated list of study resources for a topic",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 3,
		"maxItems": 5,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "Resource title, specific enough to search for",
				},
				"url": map[string]any{
					"type":        "string",
					"description": "Link to the resource, when a canonical one exists",
				},
			},
			"required":             []any{"title"},
			"additionalProperties": false,
		},
	},
}

// AssignmentSchema is the JSON schema for the full structured
// assignment. Marks are carried as generated; no sum consistency
// between task, section, and total marks is requested or enforced.
var AssignmentSchema = &llm.Schema{
	Name:        "assignment",
	Description: "A scenario-driven multi-section assignment for a study module",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Assignment title",
			},
			"total_marks": map[string]any{
				"type":        "integer",
				"description": "Total marks for the whole assignment",
			},
			"scenario": scenarioSchema("Overall scenario framing the assignment"),
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"section_id": map[string]any{
							"type":        "string",
							"description": "Stable section identifier, e.g. section_1",
						},
						"section_title": map[string]any{"type": "string"},
						"marks": map[string]any{
							"type":        "integer",
							"description": "Marks for this section",
						},
						"sub_scenario": scenarioSchema("Scenario fragment for this section"),
						"tasks": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"task_id": map[string]any{
										"type":        "string",
										"description": "Stable task identifier, e.g. task_1",
									},
									"task_description": map[string]any{"type": "string"},
									"marks":            map[string]any{"type": "integer"},
									"type": map[string]any{
										"type": "string",
										"enum": []any{"text_input", "code_input"},
									},
									"language": map[string]any{
										"type":        "string",
										"description": "Programming language for code_input tasks",
									},
								},
								"required":             []any{"task_id", "task_description", "marks", "type"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"section_id", "section_title", "marks", "sub_scenario", "tasks"},
					"additionalProperties": false,
				},
			},
			"resources": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":    map[string]any{"type": "string"},
						"url":      map[string]any{"type": "string"},
						"type":     map[string]any{"type": "string"},
						"category": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "url", "type", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "total_marks", "scenario", "sections", "resources"},
		"additionalProperties": false,
	},
}

func scenarioSchema(desc string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": desc,
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
		"required":             []any{"title", "description"},
		"additionalProperties": false,
	}
}
