// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
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
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldRetake holds the string denoting the retake field in the database.
	FieldRetake = "retake"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopicKey,
	FieldCorrect,
	FieldSkipped,
	FieldLevel,
	FieldRetake,
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
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultRetake holds the default value on creation for the "retake" field.
	DefaultRetake bool
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
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

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByRetake orders the results by the retake field.
func ByRetake(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetake, opts...).ToFunc()
}
