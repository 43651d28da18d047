package dialogue

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/topic"
)

// tutorStub implements content.Generator with deterministic rules: the
// follow-up verdict probes when the answer contains "hmm", grading marks
// "right" correct, and every lesson carries two guiding questions.
type tutorStub struct{}

func (tutorStub) Generate(_ context.Context, req content.Request) (*content.Content, error) {
	switch req.Kind {
	case content.KindLesson:
		return &content.Content{Kind: req.Kind, Lesson: &content.Lesson{
			Explanation: "explanation of " + req.Subtopic,
			Analogies:   []string{"like a recipe"},
			GuidingQuestions: []string{
				fmt.Sprintf("%s: first question", req.SubKey),
				fmt.Sprintf("%s: second question", req.SubKey),
			},
		}}, nil
	case content.KindFollowup:
		if strings.Contains(req.Answer, "hmm") {
			return &content.Content{Kind: req.Kind, Followup: &content.Followup{
				Verdict: content.VerdictProbe, Reply: "What makes you say that?",
			}}, nil
		}
		return &content.Content{Kind: req.Kind, Followup: &content.Followup{
			Verdict: content.VerdictAdvance, Reply: "Well reasoned.",
		}}, nil
	case content.KindPractice:
		return &content.Content{Kind: req.Kind, Problem: &content.Problem{
			Question: "solve this",
			Answer:   "right",
			Hints:    []string{"hint one", "hint two"},
		}}, nil
	case content.KindGrading:
		correct := req.Answer == "right"
		return &content.Content{Kind: req.Kind, Grading: &content.Grading{
			Correct: correct, Feedback: "graded",
		}}, nil
	}
	return nil, fmt.Errorf("unexpected kind %q", req.Kind)
}

func twoSubtopicTopic() *topic.Topic {
	return &topic.Topic{
		Key:     "baking",
		Subject: "baking",
		Subtopics: []topic.Subtopic{
			{Key: "dough", Title: "Dough", Objective: "mix dough"},
			{Key: "oven", Title: "Oven", Objective: "bake it", Prereqs: []string{"dough"}},
		},
		CreatedAt: time.Now(),
	}
}

func startedEngine(t *testing.T, top *topic.Topic) *Engine {
	t.Helper()
	eng := New(content.NewCache(tutorStub{}), top, topic.LevelBeginner)
	step, err := eng.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if step.Kind != StepLesson {
		t.Fatalf("first step = %v, want lesson", step.Kind)
	}
	return eng
}

func TestEngine_ProbeKeepsQuestionPending(t *testing.T) {
	eng := startedEngine(t, twoSubtopicTopic())

	step, err := eng.Respond(context.Background(), "hmm, not sure")
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepProbe {
		t.Fatalf("step = %v, want probe", step.Kind)
	}
	if step.Question != "dough: first question" {
		t.Errorf("probe must keep the question pending, got %q", step.Question)
	}
}

func TestEngine_AdvanceThroughSubtopics(t *testing.T) {
	top := twoSubtopicTopic()
	eng := startedEngine(t, top)

	step, err := eng.Respond(context.Background(), "flour and water")
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepQuestion || step.Question != "dough: second question" {
		t.Fatalf("expected second guiding question, got %v %q", step.Kind, step.Question)
	}

	step, err = eng.Respond(context.Background(), "knead and rest")
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepLesson || step.Subtopic.Key != "oven" {
		t.Fatalf("expected to enter oven subtopic, got %v", step.Kind)
	}
	if step.Completed != "Dough" {
		t.Errorf("step should name the finished subtopic, got %q", step.Completed)
	}
	if top.Subtopics[0].Status != topic.StatusCompleted {
		t.Errorf("dough status = %v, want completed", top.Subtopics[0].Status)
	}

	// Finish the last subtopic.
	for i := 0; i < 2; i++ {
		step, err = eng.Respond(context.Background(), "sound answer")
		if err != nil {
			t.Fatal(err)
		}
	}
	if step.Kind != StepTopicDone {
		t.Fatalf("expected topic done, got %v", step.Kind)
	}
	if !eng.Done() {
		t.Error("engine should report done")
	}
}

func TestEngine_PrerequisiteBlocksThenForcedEntry(t *testing.T) {
	top := &topic.Topic{
		Key:     "baking",
		Subject: "baking",
		Subtopics: []topic.Subtopic{
			{Key: "oven", Title: "Oven", Prereqs: []string{"dough"}},
			{Key: "dough", Title: "Dough"},
		},
	}
	eng := New(content.NewCache(tutorStub{}), top, topic.LevelBeginner)

	step, err := eng.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepBlocked || step.Subtopic.Key != "oven" {
		t.Fatalf("expected blocked entry to oven, got %v", step.Kind)
	}

	step, err = eng.Skip(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepLesson || step.Subtopic.Key != "oven" {
		t.Fatalf("forced entry should reach oven, got %v", step.Kind)
	}
	if step.Warning == "" {
		t.Error("forced entry past prerequisites must carry a warning")
	}
}

func TestEngine_AnswerAtBlockedStepRepresentsChoice(t *testing.T) {
	top := &topic.Topic{
		Key:     "baking",
		Subject: "baking",
		Subtopics: []topic.Subtopic{
			{Key: "dough", Title: "Dough"},
			{Key: "oven", Title: "Oven", Prereqs: []string{"proofing"}},
			{Key: "proofing", Title: "Proofing"},
		},
	}
	eng := startedEngine(t, top)

	// Finish dough; the walk stops at oven, whose prerequisite comes
	// later in the declared order.
	var step *Step
	var err error
	for i := 0; i < 2; i++ {
		step, err = eng.Respond(context.Background(), "a fine answer")
		if err != nil {
			t.Fatal(err)
		}
	}
	if step.Kind != StepBlocked || step.Subtopic.Key != "oven" {
		t.Fatalf("expected blocked entry to oven, got %v", step.Kind)
	}
	if step.Completed != "Dough" {
		t.Errorf("blocked step should still name the finished subtopic, got %q", step.Completed)
	}

	// Free-text input at the blocked prompt has no question to answer;
	// the choice comes back instead of a grade against dough.
	step, err = eng.Respond(context.Background(), "another answer")
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepBlocked || step.Subtopic.Key != "oven" {
		t.Fatalf("expected the blocked prompt again, got %v", step.Kind)
	}
	if _, err := eng.EnterPractice(context.Background()); err == nil {
		t.Error("practice at a blocked step must be refused")
	}

	step, err = eng.Skip(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepLesson || step.Subtopic.Key != "oven" {
		t.Fatalf("forced entry should reach oven, got %v", step.Kind)
	}
	if step.Warning == "" {
		t.Error("forced entry past prerequisites must carry a warning")
	}
}

func TestEngine_SkipMarksSubtopicSkipped(t *testing.T) {
	top := twoSubtopicTopic()
	eng := startedEngine(t, top)

	step, err := eng.Skip(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if top.Subtopics[0].Status != topic.StatusSkipped {
		t.Errorf("dough status = %v, want skipped", top.Subtopics[0].Status)
	}
	if step.Subtopic.Key != "oven" {
		t.Errorf("skip should enter the next subtopic, got %q", step.Subtopic.Key)
	}
}

func TestEngine_PracticeHintsInOrderThenExhausted(t *testing.T) {
	eng := startedEngine(t, twoSubtopicTopic())

	step, err := eng.EnterPractice(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepProblem {
		t.Fatalf("step = %v, want problem", step.Kind)
	}

	for i, want := range []string{"hint one", "hint two", NoMoreHints, NoMoreHints} {
		got, err := eng.Hint()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("hint %d = %q, want %q", i, got, want)
		}
	}
}

func TestEngine_PracticeGradingUpdatesDeltas(t *testing.T) {
	eng := startedEngine(t, twoSubtopicTopic())

	if _, err := eng.EnterPractice(context.Background()); err != nil {
		t.Fatal(err)
	}
	step, err := eng.SubmitPractice(context.Background(), "right")
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepGraded || !step.Grading.Correct {
		t.Fatalf("expected correct grading, got %+v", step)
	}
	if step.Question != "dough: first question" {
		t.Errorf("dialogue must resume at the pending question, got %q", step.Question)
	}

	if _, err := eng.EnterPractice(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.SubmitPractice(context.Background(), "wrong"); err != nil {
		t.Fatal(err)
	}

	attempted, correct := eng.PracticeDeltas()
	if attempted != 2 || correct != 1 {
		t.Errorf("deltas = (%d, %d), want (2, 1)", attempted, correct)
	}
}

func TestEngine_SkipPracticeDoesNotCount(t *testing.T) {
	eng := startedEngine(t, twoSubtopicTopic())

	if _, err := eng.EnterPractice(context.Background()); err != nil {
		t.Fatal(err)
	}
	step, err := eng.Skip(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if step.Kind != StepQuestion || step.Question != "dough: first question" {
		t.Fatalf("skip in practice must resume the dialogue, got %v %q", step.Kind, step.Question)
	}
	if attempted, _ := eng.PracticeDeltas(); attempted != 0 {
		t.Errorf("skipped problem must not count, attempted = %d", attempted)
	}
}
