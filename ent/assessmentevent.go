// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// Canonical topic key
	TopicKey string `json:"topic_key,omitempty"`
	// Correct answers out of five, skips counting as incorrect
	Correct int `json:"correct,omitempty"`
	// Questions skipped
	Skipped int `json:"skipped,omitempty"`
	// Derived proficiency level
	Level string `json:"level,omitempty"`
	// Whether the learner explicitly retook the diagnostic
	Retake       bool `json:"retake,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldRetake:
			values[i] = new(sql.NullBool)
		case assessmentevent.FieldID, assessmentevent.FieldSequence, assessmentevent.FieldCorrect, assessmentevent.FieldSkipped:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldSessionID, assessmentevent.FieldTopicKey, assessmentevent.FieldLevel:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case assessmentevent.FieldTopicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_key", values[i])
			} else if value.Valid {
				_m.TopicKey = value.String
			}
		case assessmentevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case assessmentevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case assessmentevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case assessmentevent.FieldRetake:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retake", values[i])
			} else if value.Valid {
				_m.Retake = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic_key=")
	builder.WriteString(_m.TopicKey)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("retake=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retake))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
