package assessment

import "github.com/abhisek/pathwise/internal/llm"

// QuestionSetSchema is the JSON schema for a generated question set:
// exactly five four-option multiple-choice questions.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A set of multiple-choice questions with one correct option each",
	Definition: map[string]any{
		"type":     "array",
		"minItems": QuestionCount,
		"maxItems": QuestionCount,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question text, self-contained and unambiguous",
				},
				"options": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"A": map[string]any{"type": "string"},
						"B": map[string]any{"type": "string"},
						"C": map[string]any{"type": "string"},
						"D": map[string]any{"type": "string"},
					},
					"required":             []any{"A", "B", "C", "D"},
					"additionalProperties": false,
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"enum":        []any{"A", "B", "C", "D"},
					"description": "The key of the correct option",
				},
			},
			"required":             []any{"question", "options", "correctAnswer"},
			"additionalProperties": false,
		},
	},
}
