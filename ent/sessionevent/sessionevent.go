// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTopicKey holds the string denoting the topic_key field in the database.
	FieldTopicKey = "topic_key"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldSubtopicsCompleted holds the string denoting the subtopics_completed field in the database.
	FieldSubtopicsCompleted = "subtopics_completed"
	// FieldPracticeAttempted holds the string denoting the practice_attempted field in the database.
	FieldPracticeAttempted = "practice_attempted"
	// FieldPracticeCorrect holds the string denoting the practice_correct field in the database.
	FieldPracticeCorrect = "practice_correct"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldAction,
	FieldTopicKey,
	FieldLevel,
	FieldSubtopicsCompleted,
	FieldPracticeAttempted,
	FieldPracticeCorrect,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultTopicKey holds the default value on creation for the "topic_key" field.
	DefaultTopicKey string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
	// DefaultSubtopicsCompleted holds the default value on creation for the "subtopics_completed" field.
	DefaultSubtopicsCompleted int
	// DefaultPracticeAttempted holds the default value on creation for the "practice_attempted" field.
	DefaultPracticeAttempted int
	// DefaultPracticeCorrect holds the default value on creation for the "practice_correct" field.
	DefaultPracticeCorrect int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTopicKey orders the results by the topic_key field.
func ByTopicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicKey, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// BySubtopicsCompleted orders the results by the subtopics_completed field.
func BySubtopicsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicsCompleted, opts...).ToFunc()
}

// ByPracticeAttempted orders the results by the practice_attempted field.
func ByPracticeAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeAttempted, opts...).ToFunc()
}

// ByPracticeCorrect orders the results by the practice_correct field.
func ByPracticeCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCorrect, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
