package content

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/mentor/internal/topic"
)

// scriptedGen is a Generator stub that replays results in order and
// counts invocations.
type scriptedGen struct {
	results []func() (*Content, error)
	calls   int
}

func (s *scriptedGen) Generate(_ context.Context, req Request) (*Content, error) {
	s.calls++
	if len(s.results) == 0 {
		return &Content{Kind: req.Kind, Problem: &Problem{Question: "q", Answer: "a", Hints: []string{"h"}}}, nil
	}
	next := s.results[0]
	s.results = s.results[1:]
	return next()
}

func lessonRequest() Request {
	return Request{
		Kind:     KindLesson,
		Subject:  "genetics",
		TopicKey: "genetics",
		Subtopic: "Inheritance",
		SubKey:   "inheritance",
		Level:    topic.LevelBeginner,
	}
}

func TestCache_Idempotence(t *testing.T) {
	lesson := &Content{Kind: KindLesson, Lesson: &Lesson{Explanation: "e", Analogies: []string{"a"}, GuidingQuestions: []string{"g"}}}
	gen := &scriptedGen{results: []func() (*Content, error){
		func() (*Content, error) { return lesson, nil },
	}}
	cache := NewCache(gen)

	first, err := cache.GetOrGenerate(context.Background(), lessonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.GetOrGenerate(context.Background(), lessonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("expected exactly 1 generator call, got %d", gen.calls)
	}
	if first != second {
		t.Error("second call should return the identical stored value")
	}
}

func TestCache_DistinctLevelsDistinctEntries(t *testing.T) {
	gen := &scriptedGen{}
	cache := NewCache(gen)

	reqA := lessonRequest()
	reqB := lessonRequest()
	reqB.Level = topic.LevelAdvanced

	// scriptedGen's default result decodes as any kind for this test's
	// purposes; only call counting matters.
	if _, err := cache.GetOrGenerate(context.Background(), reqA); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.GetOrGenerate(context.Background(), reqB); err != nil {
		t.Fatal(err)
	}
	if gen.calls != 2 {
		t.Errorf("different levels must generate separately, got %d calls", gen.calls)
	}
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
}

func TestCache_SingleRetryThenError(t *testing.T) {
	genErr := func() (*Content, error) {
		return nil, &GenerationError{Kind: KindLesson, Err: errors.New("bad shape")}
	}
	gen := &scriptedGen{results: []func() (*Content, error){genErr, genErr, genErr}}
	cache := NewCache(gen)

	_, err := cache.GetOrGenerate(context.Background(), lessonRequest())
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("expected original call plus one retry, got %d calls", gen.calls)
	}
	if cache.Len() != 0 {
		t.Error("failed generations must not be cached")
	}
}

func TestCache_RetrySucceeds(t *testing.T) {
	lesson := &Content{Kind: KindLesson, Lesson: &Lesson{Explanation: "e", Analogies: []string{"a"}, GuidingQuestions: []string{"g"}}}
	gen := &scriptedGen{results: []func() (*Content, error){
		func() (*Content, error) { return nil, &GenerationError{Kind: KindLesson, Err: errors.New("flaky")} },
		func() (*Content, error) { return lesson, nil },
	}}
	cache := NewCache(gen)

	out, err := cache.GetOrGenerate(context.Background(), lessonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != lesson {
		t.Error("expected the retried result")
	}
	if cache.Len() != 1 {
		t.Error("successful retry should be cached")
	}
}

func TestCache_GradingNeverCached(t *testing.T) {
	gen := &scriptedGen{}
	cache := NewCache(gen)

	req := Request{
		Kind:     KindGrading,
		Subject:  "genetics",
		TopicKey: "genetics",
		Question: "What is a gene?",
		Answer:   "A unit of heredity",
	}
	for range 3 {
		if _, err := cache.GetOrGenerate(context.Background(), req); err != nil {
			t.Fatal(err)
		}
	}
	if gen.calls != 3 {
		t.Errorf("grading must bypass the cache, got %d calls for 3 requests", gen.calls)
	}
	if cache.Len() != 0 {
		t.Error("grading results must never be stored")
	}
}

func TestCache_InvalidContextRejected(t *testing.T) {
	cache := NewCache(&scriptedGen{})

	_, err := cache.GetOrGenerate(context.Background(), Request{Kind: KindLesson})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
