// Package profile owns the durable learner record: per-topic proficiency
// levels, subtopic completion statuses, and lifetime practice counters,
// merged monotonically across sessions and stored as one JSON document
// per learner.
package profile

import (
	"time"

	"github.com/abhisek/mentor/internal/topic"
)

// Profile is one learner's durable record.
type Profile struct {
	LearnerID     string                 `json:"learner_id"`
	Name          string                 `json:"name,omitempty"`
	TotalSessions int                    `json:"total_sessions"`
	LastTopicKey  string                 `json:"last_topic_key,omitempty"`
	Topics        map[string]TopicRecord `json:"topics"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// TopicRecord is the durable state for one topic key.
type TopicRecord struct {
	Subject           string                  `json:"subject"`
	Level             topic.Level             `json:"level,omitempty"`
	Subtopics         map[string]topic.Status `json:"subtopics"`
	Misconceptions    []string                `json:"misconceptions,omitempty"`
	PracticeAttempted int                     `json:"practice_attempted"`
	PracticeCorrect   int                     `json:"practice_correct"`
	LastAccessed      time.Time               `json:"last_accessed"`
}

// Mastered reports whether every known subtopic of the record is
// completed. An empty record is never mastered.
func (r TopicRecord) Mastered() bool {
	if len(r.Subtopics) == 0 {
		return false
	}
	for _, st := range r.Subtopics {
		if st != topic.StatusCompleted {
			return false
		}
	}
	return true
}

// New returns an empty profile for the learner.
func New(learnerID string) *Profile {
	return &Profile{LearnerID: learnerID, Topics: make(map[string]TopicRecord)}
}

// StatusDelta is one subtopic status observed during a session. Explicit
// marks a learner command (skip, retake) whose result overwrites the
// stored status regardless of the monotonic order.
type StatusDelta struct {
	Status   topic.Status
	Explicit bool
}

// SessionDelta is everything one session learned about one topic.
type SessionDelta struct {
	TopicKey string
	Subject  string

	// Level is empty when no assessment completed this session (the
	// diagnostic was aborted or skipped via continue).
	Level  topic.Level
	Retake bool

	Subtopics      map[string]StatusDelta
	Misconceptions []string

	PracticeAttempted int
	PracticeCorrect   int

	At time.Time
}

// Merge folds a session delta into the profile. Levels never regress
// unless the learner explicitly retook the assessment; statuses follow
// the monotonic order not_started < in_progress < skipped < completed,
// with explicit skips and retakes overwriting unconditionally; practice
// counters are strictly additive.
func (p *Profile) Merge(d SessionDelta) {
	if d.TopicKey == "" {
		return
	}
	if p.Topics == nil {
		p.Topics = make(map[string]TopicRecord)
	}

	rec, ok := p.Topics[d.TopicKey]
	if !ok {
		rec = TopicRecord{Subject: d.Subject, Subtopics: make(map[string]topic.Status)}
	}
	if rec.Subtopics == nil {
		rec.Subtopics = make(map[string]topic.Status)
	}
	if d.Subject != "" {
		rec.Subject = d.Subject
	}

	if d.Level != "" {
		if d.Retake || d.Level.AtLeast(rec.Level) {
			rec.Level = d.Level
		}
	}

	for key, sd := range d.Subtopics {
		if sd.Explicit || sd.Status.Rank() >= rec.Subtopics[key].Rank() {
			rec.Subtopics[key] = sd.Status
		}
	}

	rec.Misconceptions = append(rec.Misconceptions, d.Misconceptions...)
	rec.PracticeAttempted += d.PracticeAttempted
	rec.PracticeCorrect += d.PracticeCorrect
	if !d.At.IsZero() {
		rec.LastAccessed = d.At
	}

	p.Topics[d.TopicKey] = rec
	p.LastTopicKey = d.TopicKey
	p.UpdatedAt = d.At
}
