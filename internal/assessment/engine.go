// Package assessment runs the 5-question diagnostic that places a
// learner on a topic: one batched question generation, per-answer
// grading, and a fixed leveling heuristic over the results.
package assessment

import (
	"context"
	"fmt"

	"github.com/abhisek/mentor/internal/content"
	"github.com/abhisek/mentor/internal/topic"
)

// Signal classifies one diagnostic answer.
type Signal string

const (
	SignalCorrect   Signal = "correct"
	SignalIncorrect Signal = "incorrect"
	SignalSkipped   Signal = "skipped"
)

// Answer pairs a diagnostic question with the learner's response and
// the model's judgment.
type Answer struct {
	Question content.AssessmentQuestion
	Response string
	Signal   Signal
	Feedback string
	Partial  bool
}

// Result is an immutable completed diagnostic. Retaking the assessment
// produces a new Result; the old one is never mutated.
type Result struct {
	Answers []Answer
	Level   topic.Level
}

// Engine walks the diagnostic: AwaitingAnswer(i) for i in 0..4, then
// scoring. Questions are fetched as one batch so difficulty stays
// internally consistent and the model is called once for the set.
type Engine struct {
	cache    *content.Cache
	subject  string
	topicKey string

	questions []content.AssessmentQuestion
	answers   []Answer
	idx       int
}

// New creates an engine for one diagnostic run.
func New(cache *content.Cache, subject, topicKey string) *Engine {
	return &Engine{cache: cache, subject: subject, topicKey: topicKey}
}

// Begin fetches the question batch. Safe to call once per engine.
func (e *Engine) Begin(ctx context.Context) error {
	out, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindAssessment,
		Subject:  e.subject,
		TopicKey: e.topicKey,
	})
	if err != nil {
		return err
	}
	e.questions = out.Assessment.Questions
	return nil
}

// Question returns the current question, or nil when the run is done.
func (e *Engine) Question() *content.AssessmentQuestion {
	if e.idx >= len(e.questions) {
		return nil
	}
	return &e.questions[e.idx]
}

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.idx }

// Total returns the number of diagnostic questions.
func (e *Engine) Total() int { return len(e.questions) }

// Done reports whether all questions have been answered or skipped.
func (e *Engine) Done() bool {
	return len(e.questions) > 0 && e.idx >= len(e.questions)
}

// Submit grades the learner's response to the current question and
// advances. The grading judgment is the model's alone.
func (e *Engine) Submit(ctx context.Context, response string) (*content.Grading, error) {
	q := e.Question()
	if q == nil {
		return nil, fmt.Errorf("no question awaiting an answer")
	}

	out, err := e.cache.GetOrGenerate(ctx, content.Request{
		Kind:     content.KindGrading,
		Subject:  e.subject,
		TopicKey: e.topicKey,
		Question: q.Text,
		Answer:   response,
	})
	if err != nil {
		return nil, err
	}

	g := out.Grading
	signal := SignalIncorrect
	if g.Correct {
		signal = SignalCorrect
	}
	e.answers = append(e.answers, Answer{
		Question: *q,
		Response: response,
		Signal:   signal,
		Feedback: g.Feedback,
		Partial:  g.Partial,
	})
	e.idx++
	return g, nil
}

// Skip records the current question as skipped and advances. Skips count
// as incorrect for leveling but never block progression.
func (e *Engine) Skip() {
	q := e.Question()
	if q == nil {
		return
	}
	e.answers = append(e.answers, Answer{Question: *q, Signal: SignalSkipped})
	e.idx++
}

// Score derives the proficiency level from the completed run. Calling
// Score before Done yields a result over the answers so far; the
// orchestrator only scores completed runs.
func (e *Engine) Score() *Result {
	correct := 0
	for _, a := range e.answers {
		if a.Signal == SignalCorrect {
			correct++
		}
	}
	answers := make([]Answer, len(e.answers))
	copy(answers, e.answers)
	return &Result{Answers: answers, Level: DeriveLevel(correct)}
}

// DeriveLevel maps the count of correct answers (out of 5, skips
// counting as incorrect) to a proficiency level. The thresholds are a
// fixed heuristic, never delegated to the model.
func DeriveLevel(correct int) topic.Level {
	switch {
	case correct >= 4:
		return topic.LevelAdvanced
	case correct >= 2:
		return topic.LevelIntermediate
	default:
		return topic.LevelBeginner
	}
}
