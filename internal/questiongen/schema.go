package questiongen

import "github.com/abhisek/prepcoach/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single exam practice question with answer, solution, and concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the candidate, in plain text",
			},
			"question_type": map[string]any{
				"type":        "string",
				"enum":        []any{"mcq", "numerical"},
				"description": "How the candidate answers: pick from options or type a number",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 option texts for mcq, in order A through D. Empty array for numerical.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The option label (A-D) for mcq, or the numeric answer as a string for numerical.",
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short hint the candidate can request. May be empty.",
			},
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Short bullet names of the concepts this question exercises",
			},
		},
		"required":             []any{"question", "question_type", "options", "correct_answer", "solution", "hint", "concepts"},
		"additionalProperties": false,
	},
}
