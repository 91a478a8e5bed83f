package coach

import "focusdeck/internal/llm"

// StudyPlanSchema defines the JSON schema for study plan generation.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A Pomodoro study plan with timed sessions and study tips",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "The subject this plan covers",
			},
			"sessions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"objective": map[string]any{
							"type":        "string",
							"description": "What to accomplish in this session",
						},
						"work_minutes": map[string]any{
							"type":        "integer",
							"description": "Length of the focused work block in minutes",
						},
						"break_minutes": map[string]any{
							"type":        "integer",
							"description": "Length of the break after this session in minutes",
						},
					},
					"required":             []any{"objective", "work_minutes", "break_minutes"},
					"additionalProperties": false,
				},
				"description": "Ordered Pomodoro sessions filling the available time",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 study tips tailored to the subject",
			},
		},
		"required":             []any{"subject", "sessions", "tips"},
		"additionalProperties": false,
	},
}
