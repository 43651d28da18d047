package assessment

import (
	"context"
	"fmt"
	"testing"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/topic"
)

// fakeGen serves a fixed question batch and grades answers by exact
// match against the string "right".
type fakeGen struct {
	gradeCalls int
}

func (f *fakeGen) Generate(_ context.Context, req content.Request) (*content.Content, error) {
	switch req.Kind {
	case content.KindAssessment:
		var qs []content.AssessmentQuestion
		difficulties := []string{"beginner", "beginner", "intermediate", "intermediate", "advanced"}
		for i, d := range difficulties {
			qs = append(qs, content.AssessmentQuestion{
				ID:         fmt.Sprintf("q%d", i+1),
				Difficulty: d,
				Text:       fmt.Sprintf("question %d", i+1),
				Concept:    "cells",
			})
		}
		return &content.Content{Kind: req.Kind, Assessment: &content.AssessmentSet{Questions: qs}}, nil
	case content.KindGrading:
		f.gradeCalls++
		correct := req.Answer == "right"
		fb := "Not quite."
		if correct {
			fb = "Exactly."
		}
		return &content.Content{Kind: req.Kind, Grading: &content.Grading{Correct: correct, Feedback: fb}}, nil
	}
	return nil, fmt.Errorf("unexpected kind %q", req.Kind)
}

func newTestEngine(t *testing.T) (*Engine, *fakeGen) {
	t.Helper()
	gen := &fakeGen{}
	eng := New(content.NewCache(gen), "cell biology", "cell-biology")
	if err := eng.Begin(context.Background()); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return eng, gen
}

func TestEngine_WalksAllFiveQuestions(t *testing.T) {
	eng, gen := newTestEngine(t)

	if eng.Total() != 5 {
		t.Fatalf("expected 5 questions, got %d", eng.Total())
	}
	for i := 0; i < 5; i++ {
		if eng.Question() == nil {
			t.Fatalf("no question at index %d", i)
		}
		if eng.Index() != i {
			t.Errorf("index = %d, want %d", eng.Index(), i)
		}
		if _, err := eng.Submit(context.Background(), "right"); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	if !eng.Done() {
		t.Error("engine should be done after five answers")
	}
	if eng.Question() != nil {
		t.Error("no question should remain after completion")
	}
	if gen.gradeCalls != 5 {
		t.Errorf("expected 5 grading calls, got %d", gen.gradeCalls)
	}
}

func TestEngine_SkipCountsAsIncorrect(t *testing.T) {
	eng, gen := newTestEngine(t)

	// Three correct, one wrong, one skipped: 3 correct -> intermediate.
	for _, answer := range []string{"right", "right", "right", "wrong"} {
		if _, err := eng.Submit(context.Background(), answer); err != nil {
			t.Fatal(err)
		}
	}
	eng.Skip()

	if !eng.Done() {
		t.Fatal("skip must advance to completion")
	}
	res := eng.Score()
	if res.Level != topic.LevelIntermediate {
		t.Errorf("level = %v, want intermediate", res.Level)
	}
	if res.Answers[4].Signal != SignalSkipped {
		t.Errorf("last answer signal = %v, want skipped", res.Answers[4].Signal)
	}
	if gen.gradeCalls != 4 {
		t.Errorf("skipped question must not be graded, got %d calls", gen.gradeCalls)
	}
}

func TestEngine_SubmitAfterDoneFails(t *testing.T) {
	eng, _ := newTestEngine(t)
	for i := 0; i < 5; i++ {
		eng.Skip()
	}
	if _, err := eng.Submit(context.Background(), "right"); err == nil {
		t.Error("expected error submitting past the last question")
	}
}

func TestDeriveLevel(t *testing.T) {
	tests := []struct {
		correct int
		want    topic.Level
	}{
		{0, topic.LevelBeginner},
		{1, topic.LevelBeginner},
		{2, topic.LevelIntermediate},
		{3, topic.LevelIntermediate},
		{4, topic.LevelAdvanced},
		{5, topic.LevelAdvanced},
	}
	for _, tt := range tests {
		if got := DeriveLevel(tt.correct); got != tt.want {
			t.Errorf("DeriveLevel(%d) = %v, want %v", tt.correct, got, tt.want)
		}
	}
}
