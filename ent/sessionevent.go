// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// Canonical learner key
	LearnerID string `json:"learner_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Canonical topic key (set once a topic is chosen)
	TopicKey string `json:"topic_key,omitempty"`
	// Assessed proficiency level (on end only)
	Level string `json:"level,omitempty"`
	// Subtopics finished this session (on end only)
	SubtopicsCompleted int `json:"subtopics_completed,omitempty"`
	// Practice problems attempted (on end only)
	PracticeAttempted int `json:"practice_attempted,omitempty"`
	// Practice problems solved (on end only)
	PracticeCorrect int `json:"practice_correct,omitempty"`
	// Actual duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldSubtopicsCompleted, sessionevent.FieldPracticeAttempted, sessionevent.FieldPracticeCorrect, sessionevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldLearnerID, sessionevent.FieldAction, sessionevent.FieldTopicKey, sessionevent.FieldLevel:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case sessionevent.FieldTopicKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_key", values[i])
			} else if value.Valid {
				_m.TopicKey = value.String
			}
		case sessionevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case sessionevent.FieldSubtopicsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopics_completed", values[i])
			} else if value.Valid {
				_m.SubtopicsCompleted = int(value.Int64)
			}
		case sessionevent.FieldPracticeAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_attempted", values[i])
			} else if value.Valid {
				_m.PracticeAttempted = int(value.Int64)
			}
		case sessionevent.FieldPracticeCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_correct", values[i])
			} else if value.Valid {
				_m.PracticeCorrect = int(value.Int64)
			}
		case sessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
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
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("topic_key=")
	builder.WriteString(_m.TopicKey)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("subtopics_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicsCompleted))
	builder.WriteString(", ")
	builder.WriteString("practice_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeAttempted))
	builder.WriteString(", ")
	builder.WriteString("practice_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCorrect))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
