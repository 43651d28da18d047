// Package topic models a learner-chosen topic and its generated curriculum:
// ordered subtopics with prerequisites, completion statuses, and the
// proficiency levels derived from the diagnostic assessment.
package topic

import (
	"strings"
	"time"
	"unicode"
)

// Level is the learner's proficiency on a topic.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// levelRank orders levels for merge comparisons.
var levelRank = map[Level]int{
	LevelBeginner:     0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
}

// AtLeast reports whether l is the same as or higher than other.
// Unknown levels rank below beginner.
func (l Level) AtLeast(other Level) bool {
	return levelRank[l] >= levelRank[other]
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Status is a subtopic's completion state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusSkipped    Status = "skipped"
	StatusCompleted  Status = "completed"
)

// statusRank defines the monotonic merge order:
// not_started < in_progress < skipped < completed.
var statusRank = map[Status]int{
	StatusNotStarted: 0,
	StatusInProgress: 1,
	StatusSkipped:    2,
	StatusCompleted:  3,
}

// Rank returns the status's position in the merge order.
// Unknown statuses rank as not_started.
func (s Status) Rank() int {
	return statusRank[s]
}

// Settled reports whether the status allows dependents to proceed
// (prerequisites are satisfied by completed or skipped subtopics).
func (s Status) Settled() bool {
	return s == StatusCompleted || s == StatusSkipped
}

// Subtopic is one ordered unit of a topic's curriculum.
type Subtopic struct {
	Key       string
	Title     string
	Objective string
	Prereqs   []string // keys of subtopics that must be settled first
	Status    Status
}

// Topic is an immutable per-session curriculum for one subject.
// Regenerating a topic produces a new Topic value with a new key.
type Topic struct {
	Key       string // canonical key derived from the subject text
	Subject   string // learner-supplied free text, as typed
	Overview  string
	Subtopics []Subtopic
	CreatedAt time.Time
}

// Subtopic returns the subtopic with the given key, or nil.
func (t *Topic) Subtopic(key string) *Subtopic {
	for i := range t.Subtopics {
		if t.Subtopics[i].Key == key {
			return &t.Subtopics[i]
		}
	}
	return nil
}

// Eligible reports whether the subtopic at index i may be entered through
// the normal advance path: every prerequisite it names must be completed
// or skipped. Prerequisite keys that don't resolve are ignored rather
// than deadlocking the curriculum.
func (t *Topic) Eligible(i int) bool {
	if i < 0 || i >= len(t.Subtopics) {
		return false
	}
	for _, pk := range t.Subtopics[i].Prereqs {
		if pre := t.Subtopic(pk); pre != nil && !pre.Status.Settled() {
			return false
		}
	}
	return true
}

// AllSettled reports whether every subtopic is completed or skipped.
func (t *Topic) AllSettled() bool {
	for _, st := range t.Subtopics {
		if !st.Status.Settled() {
			return false
		}
	}
	return len(t.Subtopics) > 0
}

// CanonicalKey normalizes learner-supplied subject text into a stable,
// filesystem-safe key: lowercased, runs of non-alphanumerics collapsed to
// single hyphens. "The French  Revolution!" -> "the-french-revolution".
func CanonicalKey(subject string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(subject)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "topic"
	}
	return b.String()
}
