// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopicKey holds the string denoting the topic_key field in the database.
	FieldTopicKey = "topic_key"
	// FieldSubtopicKey holds the string denoting the subtopic_key field in the database.
	FieldSubtopicKey = "subtopic_key"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldLearnerAnswer holds the string denoting the learner_answer field in the database.
	FieldLearnerAnswer = "learner_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopicKey,
	FieldSubtopicKey,
	FieldQuestion,
	FieldLearnerAnswer,
	FieldCorrect,
	FieldSkipped,
	FieldHintsUsed,
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
	// TopicKeyValidator is a validator for the "topic_key" field. It is called by the builders before save.
	TopicKeyValidator func(string) error
	// SubtopicKeyValidator is a validator for the "subtopic_key" field. It is called by the builders before save.
	SubtopicKeyValidator func(string) error
	// DefaultLearnerAnswer holds the default value on creation for the "learner_answer" field.
	DefaultLearnerAnswer string
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped bool
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
)

// OrderOption defines the ordering options for the PracticeEvent queries.
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

// ByTopicKey orders the results by the topic_key field.
func ByTopicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicKey, opts...).ToFunc()
}

// BySubtopicKey orders the results by the subtopic_key field.
func BySubtopicKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicKey, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByLearnerAnswer orders the results by the learner_answer field.
func ByLearnerAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}
