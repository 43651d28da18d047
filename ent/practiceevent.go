// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
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
	// Subtopic the problem was drawn from
	SubtopicKey string `json:"subtopic_key,omitempty"`
	// Problem text as presented
	Question string `json:"question,omitempty"`
	// Final answer, empty when skipped
	LearnerAnswer string `json:"learner_answer,omitempty"`
	// Grading verdict (false when skipped)
	Correct bool `json:"correct,omitempty"`
	// Problem abandoned without grading
	Skipped bool `json:"skipped,omitempty"`
	// Hints revealed before answering
	HintsUsed    int `json:"hints_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldCorrect, practiceevent.FieldSkipped:
			values[i] = new(sql.NullBool)
		case practiceevent.FieldID, practiceevent.FieldSequence, practiceevent.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldSessionID, practiceevent.FieldTopicKey, practiceevent.FieldSubtopicKey, practiceevent.FieldQuestion, practiceevent.FieldLearnerAnswer:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (_m *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case practiceevent.FieldTopicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_key", values[i])
			} else if value.Valid {
				_m.TopicKey = value.String
			}
		case practiceevent.FieldSubtopicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_key", values[i])
			} else if value.Valid {
				_m.SubtopicKey = value.String
			}
		case practiceevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case practiceevent.FieldLearnerAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_answer", values[i])
			} else if value.Valid {
				_m.LearnerAnswer = value.String
			}
		case practiceevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case practiceevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		case practiceevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
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
	builder.WriteString("subtopic_key=")
	builder.WriteString(_m.SubtopicKey)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("learner_answer=")
	builder.WriteString(_m.LearnerAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
