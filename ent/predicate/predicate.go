// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
