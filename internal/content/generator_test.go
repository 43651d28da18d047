package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/mentor/internal/llm"
	"github.com/abhisek/mentor/internal/topic"
)

func overviewJSON() json.RawMessage {
	return json.RawMessage(`{
		"subject": "python programming",
		"description": "Writing programs in Python.",
		"learning_objectives": ["understand variables"],
		"subtopics": [
			{"key": "variables", "title": "Variables", "objective": "declare and use variables", "prerequisites": []},
			{"key": "functions", "title": "Functions", "objective": "write functions", "prerequisites": ["variables"]}
		],
		"real_world_applications": ["automation"]
	}`)
}

func assessmentJSON() json.RawMessage {
	return json.RawMessage(`{"questions": [
		{"id": "q1", "difficulty": "beginner", "question": "What is a variable?", "concept": "variables"},
		{"id": "q2", "difficulty": "beginner", "question": "What does print do?", "concept": "output"},
		{"id": "q3", "difficulty": "intermediate", "question": "When would you use a loop?", "concept": "loops"},
		{"id": "q4", "difficulty": "intermediate", "question": "What is a function argument?", "concept": "functions"},
		{"id": "q5", "difficulty": "advanced", "question": "How does a closure capture state?", "concept": "closures"}
	]}`)
}

func practiceJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "Write a function that doubles a number.",
		"answer": "def double(n): return n * 2",
		"hints": ["Think about the def keyword.", "Multiply the argument by 2."],
		"explanation": "def introduces a function; return hands back the result.",
		"concept": "functions"
	}`)
}

func overviewRequest() Request {
	return Request{
		Kind:     KindTopicOverview,
		Subject:  "python programming",
		TopicKey: "python-programming",
	}
}

func TestGenerator_TopicOverview(t *testing.T) {
	mock := llm.NewMock(llm.Canned{Content: overviewJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	out, err := gen.Generate(context.Background(), overviewRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != KindTopicOverview || out.Overview == nil {
		t.Fatal("expected overview variant")
	}
	if len(out.Overview.Subtopics) != 2 {
		t.Errorf("expected 2 subtopics, got %d", len(out.Overview.Subtopics))
	}
	if got := mock.Purposes(); len(got) != 1 || got[0] != "topic_overview" {
		t.Errorf("unexpected purposes: %v", got)
	}
}

func TestGenerator_AssessmentShape(t *testing.T) {
	tests := []struct {
		name    string
		payload json.RawMessage
		wantErr bool
	}{
		{"valid five questions", assessmentJSON(), false},
		{"only four questions", json.RawMessage(`{"questions": [
			{"id": "q1", "difficulty": "beginner", "question": "a", "concept": "x"},
			{"id": "q2", "difficulty": "beginner", "question": "b", "concept": "x"},
			{"id": "q3", "difficulty": "intermediate", "question": "c", "concept": "x"},
			{"id": "q4", "difficulty": "advanced", "question": "d", "concept": "x"}
		]}`), true},
		{"no advanced question", json.RawMessage(`{"questions": [
			{"id": "q1", "difficulty": "beginner", "question": "a", "concept": "x"},
			{"id": "q2", "difficulty": "beginner", "question": "b", "concept": "x"},
			{"id": "q3", "difficulty": "intermediate", "question": "c", "concept": "x"},
			{"id": "q4", "difficulty": "intermediate", "question": "d", "concept": "x"},
			{"id": "q5", "difficulty": "beginner", "question": "e", "concept": "x"}
		]}`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMock(llm.Canned{Content: tt.payload})
			gen := NewGenerator(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), Request{
				Kind:     KindAssessment,
				Subject:  "python programming",
				TopicKey: "python-programming",
			})
			if tt.wantErr {
				var genErr *GenerationError
				if !errors.As(err, &genErr) {
					t.Fatalf("expected GenerationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGenerator_PracticeNeedsHints(t *testing.T) {
	mock := llm.NewMock(llm.Canned{Content: json.RawMessage(`{
		"question": "q", "answer": "a", "hints": [], "explanation": "e", "concept": "c"
	}`)})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{
		Kind:     KindPractice,
		Subject:  "python programming",
		TopicKey: "python-programming",
		Subtopic: "Functions",
		SubKey:   "functions",
		Level:    topic.LevelBeginner,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError for hintless problem, got %v", err)
	}
}

func TestGenerator_MissingContextIsValidationError(t *testing.T) {
	gen := NewGenerator(llm.NewMock(), DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Kind: KindLesson, Subject: "x", TopicKey: "x"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for missing subtopic, got %v", err)
	}
}
