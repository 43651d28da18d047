package content

import "github.com/abhisek/mentor/internal/llm"

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func stringList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// overviewSchema shapes a topic overview with its subtopic plan.
var overviewSchema = &llm.Schema{
	Name:        "topic-overview",
	Description: "A learning overview for a subject: description, objectives, and ordered subtopics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject":             stringProp("The subject as given"),
			"description":         stringProp("Brief description of what this subject covers (2-3 sentences)"),
			"learning_objectives": stringList("3-5 key things the learner will understand"),
			"subtopics": map[string]any{
				"type":        "array",
				"description": "3-5 subtopics in logical learning order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"key":           stringProp("Short kebab-case identifier, e.g. \"variables-and-types\""),
						"title":         stringProp("Subtopic name"),
						"objective":     stringProp("What the learner will be able to do afterwards"),
						"prerequisites": stringList("Keys of subtopics that must come first; empty for none"),
					},
					"required":             []any{"key", "title", "objective", "prerequisites"},
					"additionalProperties": false,
				},
			},
			"real_world_applications": stringList("2-3 practical applications"),
		},
		"required":             []any{"subject", "description", "learning_objectives", "subtopics", "real_world_applications"},
		"additionalProperties": false,
	},
}

// assessmentSchema shapes the 5-question diagnostic.
var assessmentSchema = &llm.Schema{
	Name:        "diagnostic-questions",
	Description: "Five diagnostic questions spanning beginner to advanced difficulty",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly 5 questions, 2 beginner, 2 intermediate, 1 advanced",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": stringProp("q1 through q5"),
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"beginner", "intermediate", "advanced"},
						},
						"question": stringProp("The question text"),
						"concept":  stringProp("What concept this tests"),
					},
					"required":             []any{"id", "difficulty", "question", "concept"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// gradingSchema shapes an answer judgment.
var gradingSchema = &llm.Schema{
	Name:        "answer-grading",
	Description: "Judgment of a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct":       map[string]any{"type": "boolean"},
			"partial":       map[string]any{"type": "boolean", "description": "Shows some understanding but incomplete"},
			"feedback":      stringProp("Brief encouraging feedback (1-2 sentences)"),
			"misconception": stringProp("Any misconception detected, empty string if none"),
		},
		"required":             []any{"correct", "partial", "feedback", "misconception"},
		"additionalProperties": false,
	},
}

// lessonSchema shapes teaching content for one subtopic.
var lessonSchema = &llm.Schema{
	Name:        "subtopic-lesson",
	Description: "Teaching content: explanation, analogies, and Socratic guiding questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation":       stringProp("Clear explanation for the learner's level (2-3 paragraphs)"),
			"key_concepts":      stringList("3-5 main concepts to understand"),
			"analogies":         stringList("2-3 relatable analogies for the difficult parts"),
			"examples":          stringList("2-3 concrete examples"),
			"common_mistakes":   stringList("2-3 common misconceptions or errors"),
			"guiding_questions": stringList("3-4 Socratic questions that guide discovery, in order"),
		},
		"required":             []any{"explanation", "key_concepts", "analogies", "examples", "common_mistakes", "guiding_questions"},
		"additionalProperties": false,
	},
}

// followupSchema shapes the probe-or-advance dialogue judgment.
var followupSchema = &llm.Schema{
	Name:        "socratic-followup",
	Description: "Verdict on a dialogue response: probe deeper or confirm and advance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{VerdictProbe, VerdictAdvance},
				"description": "probe when understanding is shaky, advance when it is adequate",
			},
			"reply": stringProp("For probe: ONE deeper question. For advance: a short confirmation (1-2 sentences)."),
		},
		"required":             []any{"verdict", "reply"},
		"additionalProperties": false,
	},
}

// practiceSchema shapes one practice problem.
var practiceSchema = &llm.Schema{
	Name:        "practice-problem",
	Description: "A practice problem with an ordered hint ladder and a model answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":    stringProp("The problem statement"),
			"answer":      stringProp("The model answer"),
			"hints":       stringList("2-3 hints ordered from gentle nudge to nearly giving it away"),
			"explanation": stringProp("Full explanation of the solution"),
			"concept":     stringProp("What concept this tests"),
		},
		"required":             []any{"question", "answer", "hints", "explanation", "concept"},
		"additionalProperties": false,
	},
}

// schemaFor returns the llm schema for a kind.
func schemaFor(kind Kind) *llm.Schema {
	switch kind {
	case KindTopicOverview:
		return overviewSchema
	case KindAssessment:
		return assessmentSchema
	case KindGrading:
		return gradingSchema
	case KindLesson:
		return lessonSchema
	case KindFollowup:
		return followupSchema
	case KindPractice:
		return practiceSchema
	}
	return nil
}
