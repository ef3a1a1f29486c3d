package fillblank

import "github.com/carloslator/EnglishVerbs/internal/llm"

// ItemSchema is the response format requested from the model.
var ItemSchema = &llm.Schema{
	Name:        "fill-blank-question",
	Description: "A beginner fill-in-the-blank question for one English verb",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":        "string",
				"description": "A short English sentence with ___ where the verb goes",
			},
			"correctOption": map[string]any{
				"type":        "string",
				"description": "The verb form that fills the blank",
			},
			"distractors": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Three wrong English verbs in the same form",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the answer, in simple English",
			},
		},
		"required":             []any{"sentence", "correctOption", "distractors", "explanation"},
		"additionalProperties": false,
	},
}
