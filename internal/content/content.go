// Package content is the boundary to the content-generation model.
// It owns the per-kind prompts and JSON schemas, converts model output
// into typed content values, shape-checks them, and memoizes cacheable
// kinds for the lifetime of a session.
package content

import (
	"fmt"

	"github.com/abhisek/mentor/internal/topic"
)

// Kind tags what a generation request produces.
type Kind string

const (
	KindTopicOverview Kind = "topic_overview"
	KindAssessment    Kind = "assessment"
	KindGrading       Kind = "grading"
	KindLesson        Kind = "lesson"
	KindFollowup      Kind = "socratic_followup"
	KindPractice      Kind = "practice"
)

// Cacheable reports whether results of this kind may be memoized.
// Grading and follow-up judgments depend on the learner's answer, which
// the cache key cannot capture, so they always pass through.
func (k Kind) Cacheable() bool {
	switch k {
	case KindTopicOverview, KindAssessment, KindLesson, KindPractice:
		return true
	}
	return false
}

// Request carries the context for one generation. Which fields are
// required depends on Kind; Validate enforces that.
type Request struct {
	Kind     Kind
	Subject  string // learner-supplied topic text, as typed
	TopicKey string // canonical topic key
	Subtopic string // subtopic title (lesson, practice, follow-up)
	SubKey   string // subtopic key (lesson, practice, follow-up)
	Level    topic.Level

	// Grading and follow-up context.
	Question   string
	Answer     string
	Transcript string // recent dialogue exchanges, newest last
}

// Validate checks that the request carries the context its kind needs.
// A failure is a programming defect, not a model fault.
func (r Request) Validate() error {
	if r.Subject == "" || r.TopicKey == "" {
		return &ValidationError{Reason: fmt.Sprintf("%s request missing topic", r.Kind)}
	}
	switch r.Kind {
	case KindTopicOverview, KindAssessment:
	case KindLesson, KindPractice:
		if r.Subtopic == "" || r.SubKey == "" {
			return &ValidationError{Reason: fmt.Sprintf("%s request missing subtopic", r.Kind)}
		}
		if !r.Level.Valid() {
			return &ValidationError{Reason: fmt.Sprintf("%s request missing proficiency level", r.Kind)}
		}
	case KindGrading:
		if r.Question == "" || r.Answer == "" {
			return &ValidationError{Reason: "grading request missing question or answer"}
		}
	case KindFollowup:
		if r.Subtopic == "" || r.Question == "" || r.Answer == "" {
			return &ValidationError{Reason: "follow-up request missing dialogue context"}
		}
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown content kind %q", r.Kind)}
	}
	return nil
}

// Content is the tagged result of a generation: exactly the field
// matching Kind is set.
type Content struct {
	Kind       Kind
	Overview   *TopicOverview
	Assessment *AssessmentSet
	Grading    *Grading
	Lesson     *Lesson
	Followup   *Followup
	Problem    *Problem
}

// GenerationError reports that the model produced no usable
// output for a request (transport failure or shape mismatch).
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError reports a malformed request, which is a caller bug.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid content request: " + e.Reason
}
