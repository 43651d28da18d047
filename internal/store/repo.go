package store

import (
	"context"

	"github.com/abhisek/mentor/ent"
	"github.com/abhisek/mentor/internal/llm"
)

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID          string
	LearnerID          string
	Action             string // "start" or "end"
	TopicKey           string
	Level              string
	SubtopicsCompleted int
	PracticeAttempted  int
	PracticeCorrect    int
	DurationSecs       int
}

// PracticeEventData captures one practice problem outcome.
type PracticeEventData struct {
	SessionID     string
	TopicKey      string
	SubtopicKey   string
	Question      string
	LearnerAnswer string
	Correct       bool
	Skipped       bool
	HintsUsed     int
}

// AssessmentEventData captures one completed diagnostic.
type AssessmentEventData struct {
	SessionID string
	TopicKey  string
	Correct   int
	Skipped   int
	Level     string
	Retake    bool
}

// TokenTotals aggregates LLM token spend.
type TokenTotals struct {
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate query access to the event log.
// It also satisfies llm.Recorder so the provider stack can audit calls.
type EventRepo interface {
	llm.Recorder

	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendPracticeEvent(ctx context.Context, data PracticeEventData) error
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// SessionCount returns the number of completed sessions for the
	// learner (empty learnerID counts all learners).
	SessionCount(ctx context.Context, learnerID string) (int, error)

	// TokenUsage aggregates LLM spend, optionally filtered by purpose
	// (empty purpose aggregates everything).
	TokenUsage(ctx context.Context, purpose string) (TokenTotals, error)

	// PracticeAccuracy returns the fraction of graded practice problems
	// answered correctly for a topic, 0 when none exist.
	PracticeAccuracy(ctx context.Context, topicKey string) (float64, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
