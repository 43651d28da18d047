// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mentor/ent/assessmentevent"
	"github.com/abhisek/mentor/ent/llmrequestevent"
	"github.com/abhisek/mentor/ent/practiceevent"
	"github.com/abhisek/mentor/ent/predicate"
	"github.com/abhisek/mentor/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentEvent = "AssessmentEvent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePracticeEvent   = "PracticeEvent"
	TypeSessionEvent    = "SessionEvent"
)

// AssessmentEventMutation represents an operation that mutates the AssessmentEvent nodes in the graph.
type AssessmentEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	topic_key     *string
	correct       *int
	addcorrect    *int
	skipped       *int
	addskipped    *int
	level         *string
	retake        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AssessmentEvent, error)
	predicates    []predicate.AssessmentEvent
}

var _ ent.Mutation = (*AssessmentEventMutation)(nil)

// assessmenteventOption allows management of the mutation configuration using functional options.
type assessmenteventOption func(*AssessmentEventMutation)

// newAssessmentEventMutation creates new mutation for the AssessmentEvent entity.
func newAssessmentEventMutation(c config, op Op, opts ...assessmenteventOption) *AssessmentEventMutation {
	m := &AssessmentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentEventID sets the ID field of the mutation.
func withAssessmentEventID(id int) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessmentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentEvent sets the old AssessmentEvent of the mutation.
func withAssessmentEvent(node *AssessmentEvent) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		m.oldValue = func(context.Context) (*AssessmentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssessmentEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssessmentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopicKey sets the "topic_key" field.
func (m *AssessmentEventMutation) SetTopicKey(s string) {
	m.topic_key = &s
}

// TopicKey returns the value of the "topic_key" field in the mutation.
func (m *AssessmentEventMutation) TopicKey() (r string, exists bool) {
	v := m.topic_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicKey returns the old "topic_key" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTopicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicKey: %w", err)
	}
	return oldValue.TopicKey, nil
}

// ResetTopicKey resets all changes to the "topic_key" field.
func (m *AssessmentEventMutation) ResetTopicKey() {
	m.topic_key = nil
}

// SetCorrect sets the "correct" field.
func (m *AssessmentEventMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AssessmentEventMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *AssessmentEventMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *AssessmentEventMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AssessmentEventMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetSkipped sets the "skipped" field.
func (m *AssessmentEventMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *AssessmentEventMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *AssessmentEventMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *AssessmentEventMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *AssessmentEventMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetLevel sets the "level" field.
func (m *AssessmentEventMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *AssessmentEventMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AssessmentEventMutation) ResetLevel() {
	m.level = nil
}

// SetRetake sets the "retake" field.
func (m *AssessmentEventMutation) SetRetake(b bool) {
	m.retake = &b
}

// Retake returns the value of the "retake" field in the mutation.
func (m *AssessmentEventMutation) Retake() (r bool, exists bool) {
	v := m.retake
	if v == nil {
		return
	}
	return *v, true
}

// OldRetake returns the old "retake" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldRetake(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetake: %w", err)
	}
	return oldValue.Retake, nil
}

// ResetRetake resets all changes to the "retake" field.
func (m *AssessmentEventMutation) ResetRetake() {
	m.retake = nil
}

// Where appends a list predicates to the AssessmentEventMutation builder.
func (m *AssessmentEventMutation) Where(ps ...predicate.AssessmentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentEvent).
func (m *AssessmentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, assessmentevent.FieldSessionID)
	}
	if m.topic_key != nil {
		fields = append(fields, assessmentevent.FieldTopicKey)
	}
	if m.correct != nil {
		fields = append(fields, assessmentevent.FieldCorrect)
	}
	if m.skipped != nil {
		fields = append(fields, assessmentevent.FieldSkipped)
	}
	if m.level != nil {
		fields = append(fields, assessmentevent.FieldLevel)
	}
	if m.retake != nil {
		fields = append(fields, assessmentevent.FieldRetake)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.Sequence()
	case assessmentevent.FieldTimestamp:
		return m.Timestamp()
	case assessmentevent.FieldSessionID:
		return m.SessionID()
	case assessmentevent.FieldTopicKey:
		return m.TopicKey()
	case assessmentevent.FieldCorrect:
		return m.Correct()
	case assessmentevent.FieldSkipped:
		return m.Skipped()
	case assessmentevent.FieldLevel:
		return m.Level()
	case assessmentevent.FieldRetake:
		return m.Retake()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessmentevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessmentevent.FieldTopicKey:
		return m.OldTopicKey(ctx)
	case assessmentevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case assessmentevent.FieldSkipped:
		return m.OldSkipped(ctx)
	case assessmentevent.FieldLevel:
		return m.OldLevel(ctx)
	case assessmentevent.FieldRetake:
		return m.OldRetake(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessmentevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessmentevent.FieldTopicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicKey(v)
		return nil
	case assessmentevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case assessmentevent.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case assessmentevent.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case assessmentevent.FieldRetake:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetake(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.addcorrect != nil {
		fields = append(fields, assessmentevent.FieldCorrect)
	}
	if m.addskipped != nil {
		fields = append(fields, assessmentevent.FieldSkipped)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.AddedSequence()
	case assessmentevent.FieldCorrect:
		return m.AddedCorrect()
	case assessmentevent.FieldSkipped:
		return m.AddedSkipped()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentevent.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case assessmentevent.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessmentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ResetField(name string) error {
	switch name {
	case assessmentevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessmentevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessmentevent.FieldTopicKey:
		m.ResetTopicKey()
		return nil
	case assessmentevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case assessmentevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	case assessmentevent.FieldLevel:
		m.ResetLevel()
		return nil
	case assessmentevent.FieldRetake:
		m.ResetRetake()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PracticeEventMutation represents an operation that mutates the PracticeEvent nodes in the graph.
type PracticeEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	session_id     *string
	topic_key      *string
	subtopic_key   *string
	question       *string
	learner_answer *string
	correct        *bool
	skipped        *bool
	hints_used     *int
	addhints_used  *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PracticeEvent, error)
	predicates     []predicate.PracticeEvent
}

var _ ent.Mutation = (*PracticeEventMutation)(nil)

// practiceeventOption allows management of the mutation configuration using functional options.
type practiceeventOption func(*PracticeEventMutation)

// newPracticeEventMutation creates new mutation for the PracticeEvent entity.
func newPracticeEventMutation(c config, op Op, opts ...practiceeventOption) *PracticeEventMutation {
	m := &PracticeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeEventID sets the ID field of the mutation.
func withPracticeEventID(id int) practiceeventOption {
	return func(m *PracticeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeEvent
		)
		m.oldValue = func(ctx context.Context) (*PracticeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeEvent sets the old PracticeEvent of the mutation.
func withPracticeEvent(node *PracticeEvent) practiceeventOption {
	return func(m *PracticeEventMutation) {
		m.oldValue = func(context.Context) (*PracticeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PracticeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PracticeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PracticeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PracticeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PracticeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *PracticeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PracticeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PracticeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopicKey sets the "topic_key" field.
func (m *PracticeEventMutation) SetTopicKey(s string) {
	m.topic_key = &s
}

// TopicKey returns the value of the "topic_key" field in the mutation.
func (m *PracticeEventMutation) TopicKey() (r string, exists bool) {
	v := m.topic_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicKey returns the old "topic_key" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldTopicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicKey: %w", err)
	}
	return oldValue.TopicKey, nil
}

// ResetTopicKey resets all changes to the "topic_key" field.
func (m *PracticeEventMutation) ResetTopicKey() {
	m.topic_key = nil
}

// SetSubtopicKey sets the "subtopic_key" field.
func (m *PracticeEventMutation) SetSubtopicKey(s string) {
	m.subtopic_key = &s
}

// SubtopicKey returns the value of the "subtopic_key" field in the mutation.
func (m *PracticeEventMutation) SubtopicKey() (r string, exists bool) {
	v := m.subtopic_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicKey returns the old "subtopic_key" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSubtopicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicKey: %w", err)
	}
	return oldValue.SubtopicKey, nil
}

// ResetSubtopicKey resets all changes to the "subtopic_key" field.
func (m *PracticeEventMutation) ResetSubtopicKey() {
	m.subtopic_key = nil
}

// SetQuestion sets the "question" field.
func (m *PracticeEventMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *PracticeEventMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *PracticeEventMutation) ResetQuestion() {
	m.question = nil
}

// SetLearnerAnswer sets the "learner_answer" field.
func (m *PracticeEventMutation) SetLearnerAnswer(s string) {
	m.learner_answer = &s
}

// LearnerAnswer returns the value of the "learner_answer" field in the mutation.
func (m *PracticeEventMutation) LearnerAnswer() (r string, exists bool) {
	v := m.learner_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerAnswer returns the old "learner_answer" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldLearnerAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerAnswer: %w", err)
	}
	return oldValue.LearnerAnswer, nil
}

// ResetLearnerAnswer resets all changes to the "learner_answer" field.
func (m *PracticeEventMutation) ResetLearnerAnswer() {
	m.learner_answer = nil
}

// SetCorrect sets the "correct" field.
func (m *PracticeEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *PracticeEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *PracticeEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetSkipped sets the "skipped" field.
func (m *PracticeEventMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *PracticeEventMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *PracticeEventMutation) ResetSkipped() {
	m.skipped = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *PracticeEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *PracticeEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *PracticeEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *PracticeEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *PracticeEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// Where appends a list predicates to the PracticeEventMutation builder.
func (m *PracticeEventMutation) Where(ps ...predicate.PracticeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeEvent).
func (m *PracticeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, practiceevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, practiceevent.FieldSessionID)
	}
	if m.topic_key != nil {
		fields = append(fields, practiceevent.FieldTopicKey)
	}
	if m.subtopic_key != nil {
		fields = append(fields, practiceevent.FieldSubtopicKey)
	}
	if m.question != nil {
		fields = append(fields, practiceevent.FieldQuestion)
	}
	if m.learner_answer != nil {
		fields = append(fields, practiceevent.FieldLearnerAnswer)
	}
	if m.correct != nil {
		fields = append(fields, practiceevent.FieldCorrect)
	}
	if m.skipped != nil {
		fields = append(fields, practiceevent.FieldSkipped)
	}
	if m.hints_used != nil {
		fields = append(fields, practiceevent.FieldHintsUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.Sequence()
	case practiceevent.FieldTimestamp:
		return m.Timestamp()
	case practiceevent.FieldSessionID:
		return m.SessionID()
	case practiceevent.FieldTopicKey:
		return m.TopicKey()
	case practiceevent.FieldSubtopicKey:
		return m.SubtopicKey()
	case practiceevent.FieldQuestion:
		return m.Question()
	case practiceevent.FieldLearnerAnswer:
		return m.LearnerAnswer()
	case practiceevent.FieldCorrect:
		return m.Correct()
	case practiceevent.FieldSkipped:
		return m.Skipped()
	case practiceevent.FieldHintsUsed:
		return m.HintsUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceevent.FieldSequence:
		return m.OldSequence(ctx)
	case practiceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case practiceevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case practiceevent.FieldTopicKey:
		return m.OldTopicKey(ctx)
	case practiceevent.FieldSubtopicKey:
		return m.OldSubtopicKey(ctx)
	case practiceevent.FieldQuestion:
		return m.OldQuestion(ctx)
	case practiceevent.FieldLearnerAnswer:
		return m.OldLearnerAnswer(ctx)
	case practiceevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case practiceevent.FieldSkipped:
		return m.OldSkipped(ctx)
	case practiceevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case practiceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case practiceevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case practiceevent.FieldTopicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicKey(v)
		return nil
	case practiceevent.FieldSubtopicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicKey(v)
		return nil
	case practiceevent.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case practiceevent.FieldLearnerAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerAnswer(v)
		return nil
	case practiceevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case practiceevent.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case practiceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, practiceevent.FieldSequence)
	}
	if m.addhints_used != nil {
		fields = append(fields, practiceevent.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSequence:
		return m.AddedSequence()
	case practiceevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case practiceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PracticeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeEventMutation) ResetField(name string) error {
	switch name {
	case practiceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case practiceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case practiceevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case practiceevent.FieldTopicKey:
		m.ResetTopicKey()
		return nil
	case practiceevent.FieldSubtopicKey:
		m.ResetSubtopicKey()
		return nil
	case practiceevent.FieldQuestion:
		m.ResetQuestion()
		return nil
	case practiceevent.FieldLearnerAnswer:
		m.ResetLearnerAnswer()
		return nil
	case practiceevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case practiceevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	case practiceevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	session_id             *string
	learner_id             *string
	action                 *string
	topic_key              *string
	level                  *string
	subtopics_completed    *int
	addsubtopics_completed *int
	practice_attempted     *int
	addpractice_attempted  *int
	practice_correct       *int
	addpractice_correct    *int
	duration_secs          *int
	addduration_secs       *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*SessionEvent, error)
	predicates             []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetTopicKey sets the "topic_key" field.
func (m *SessionEventMutation) SetTopicKey(s string) {
	m.topic_key = &s
}

// TopicKey returns the value of the "topic_key" field in the mutation.
func (m *SessionEventMutation) TopicKey() (r string, exists bool) {
	v := m.topic_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicKey returns the old "topic_key" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTopicKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicKey: %w", err)
	}
	return oldValue.TopicKey, nil
}

// ResetTopicKey resets all changes to the "topic_key" field.
func (m *SessionEventMutation) ResetTopicKey() {
	m.topic_key = nil
}

// SetLevel sets the "level" field.
func (m *SessionEventMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *SessionEventMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *SessionEventMutation) ResetLevel() {
	m.level = nil
}

// SetSubtopicsCompleted sets the "subtopics_completed" field.
func (m *SessionEventMutation) SetSubtopicsCompleted(i int) {
	m.subtopics_completed = &i
	m.addsubtopics_completed = nil
}

// SubtopicsCompleted returns the value of the "subtopics_completed" field in the mutation.
func (m *SessionEventMutation) SubtopicsCompleted() (r int, exists bool) {
	v := m.subtopics_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicsCompleted returns the old "subtopics_completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSubtopicsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicsCompleted: %w", err)
	}
	return oldValue.SubtopicsCompleted, nil
}

// AddSubtopicsCompleted adds i to the "subtopics_completed" field.
func (m *SessionEventMutation) AddSubtopicsCompleted(i int) {
	if m.addsubtopics_completed != nil {
		*m.addsubtopics_completed += i
	} else {
		m.addsubtopics_completed = &i
	}
}

// AddedSubtopicsCompleted returns the value that was added to the "subtopics_completed" field in this mutation.
func (m *SessionEventMutation) AddedSubtopicsCompleted() (r int, exists bool) {
	v := m.addsubtopics_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicsCompleted resets all changes to the "subtopics_completed" field.
func (m *SessionEventMutation) ResetSubtopicsCompleted() {
	m.subtopics_completed = nil
	m.addsubtopics_completed = nil
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (m *SessionEventMutation) SetPracticeAttempted(i int) {
	m.practice_attempted = &i
	m.addpractice_attempted = nil
}

// PracticeAttempted returns the value of the "practice_attempted" field in the mutation.
func (m *SessionEventMutation) PracticeAttempted() (r int, exists bool) {
	v := m.practice_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeAttempted returns the old "practice_attempted" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPracticeAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeAttempted: %w", err)
	}
	return oldValue.PracticeAttempted, nil
}

// AddPracticeAttempted adds i to the "practice_attempted" field.
func (m *SessionEventMutation) AddPracticeAttempted(i int) {
	if m.addpractice_attempted != nil {
		*m.addpractice_attempted += i
	} else {
		m.addpractice_attempted = &i
	}
}

// AddedPracticeAttempted returns the value that was added to the "practice_attempted" field in this mutation.
func (m *SessionEventMutation) AddedPracticeAttempted() (r int, exists bool) {
	v := m.addpractice_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeAttempted resets all changes to the "practice_attempted" field.
func (m *SessionEventMutation) ResetPracticeAttempted() {
	m.practice_attempted = nil
	m.addpractice_attempted = nil
}

// SetPracticeCorrect sets the "practice_correct" field.
func (m *SessionEventMutation) SetPracticeCorrect(i int) {
	m.practice_correct = &i
	m.addpractice_correct = nil
}

// PracticeCorrect returns the value of the "practice_correct" field in the mutation.
func (m *SessionEventMutation) PracticeCorrect() (r int, exists bool) {
	v := m.practice_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCorrect returns the old "practice_correct" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPracticeCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCorrect: %w", err)
	}
	return oldValue.PracticeCorrect, nil
}

// AddPracticeCorrect adds i to the "practice_correct" field.
func (m *SessionEventMutation) AddPracticeCorrect(i int) {
	if m.addpractice_correct != nil {
		*m.addpractice_correct += i
	} else {
		m.addpractice_correct = &i
	}
}

// AddedPracticeCorrect returns the value that was added to the "practice_correct" field in this mutation.
func (m *SessionEventMutation) AddedPracticeCorrect() (r int, exists bool) {
	v := m.addpractice_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCorrect resets all changes to the "practice_correct" field.
func (m *SessionEventMutation) ResetPracticeCorrect() {
	m.practice_correct = nil
	m.addpractice_correct = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, sessionevent.FieldLearnerID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.topic_key != nil {
		fields = append(fields, sessionevent.FieldTopicKey)
	}
	if m.level != nil {
		fields = append(fields, sessionevent.FieldLevel)
	}
	if m.subtopics_completed != nil {
		fields = append(fields, sessionevent.FieldSubtopicsCompleted)
	}
	if m.practice_attempted != nil {
		fields = append(fields, sessionevent.FieldPracticeAttempted)
	}
	if m.practice_correct != nil {
		fields = append(fields, sessionevent.FieldPracticeCorrect)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldLearnerID:
		return m.LearnerID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldTopicKey:
		return m.TopicKey()
	case sessionevent.FieldLevel:
		return m.Level()
	case sessionevent.FieldSubtopicsCompleted:
		return m.SubtopicsCompleted()
	case sessionevent.FieldPracticeAttempted:
		return m.PracticeAttempted()
	case sessionevent.FieldPracticeCorrect:
		return m.PracticeCorrect()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldTopicKey:
		return m.OldTopicKey(ctx)
	case sessionevent.FieldLevel:
		return m.OldLevel(ctx)
	case sessionevent.FieldSubtopicsCompleted:
		return m.OldSubtopicsCompleted(ctx)
	case sessionevent.FieldPracticeAttempted:
		return m.OldPracticeAttempted(ctx)
	case sessionevent.FieldPracticeCorrect:
		return m.OldPracticeCorrect(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldTopicKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicKey(v)
		return nil
	case sessionevent.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case sessionevent.FieldSubtopicsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicsCompleted(v)
		return nil
	case sessionevent.FieldPracticeAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeAttempted(v)
		return nil
	case sessionevent.FieldPracticeCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCorrect(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addsubtopics_completed != nil {
		fields = append(fields, sessionevent.FieldSubtopicsCompleted)
	}
	if m.addpractice_attempted != nil {
		fields = append(fields, sessionevent.FieldPracticeAttempted)
	}
	if m.addpractice_correct != nil {
		fields = append(fields, sessionevent.FieldPracticeCorrect)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldSubtopicsCompleted:
		return m.AddedSubtopicsCompleted()
	case sessionevent.FieldPracticeAttempted:
		return m.AddedPracticeAttempted()
	case sessionevent.FieldPracticeCorrect:
		return m.AddedPracticeCorrect()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldSubtopicsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicsCompleted(v)
		return nil
	case sessionevent.FieldPracticeAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeAttempted(v)
		return nil
	case sessionevent.FieldPracticeCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCorrect(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldTopicKey:
		m.ResetTopicKey()
		return nil
	case sessionevent.FieldLevel:
		m.ResetLevel()
		return nil
	case sessionevent.FieldSubtopicsCompleted:
		m.ResetSubtopicsCompleted()
		return nil
	case sessionevent.FieldPracticeAttempted:
		m.ResetPracticeAttempted()
		return nil
	case sessionevent.FieldPracticeCorrect:
		m.ResetPracticeCorrect()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
