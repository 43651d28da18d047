// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SessionEventCreate) SetLearnerID(v string) *SessionEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTopicKey sets the "topic_key" field.
func (_c *SessionEventCreate) SetTopicKey(v string) *SessionEventCreate {
	_c.mutation.SetTopicKey(v)
	return _c
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTopicKey(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetTopicKey(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *SessionEventCreate) SetLevel(v string) *SessionEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableLevel(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetSubtopicsCompleted sets the "subtopics_completed" field.
func (_c *SessionEventCreate) SetSubtopicsCompleted(v int) *SessionEventCreate {
	_c.mutation.SetSubtopicsCompleted(v)
	return _c
}

// SetNillableSubtopicsCompleted sets the "subtopics_completed" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableSubtopicsCompleted(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetSubtopicsCompleted(*v)
	}
	return _c
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (_c *SessionEventCreate) SetPracticeAttempted(v int) *SessionEventCreate {
	_c.mutation.SetPracticeAttempted(v)
	return _c
}

// SetNillablePracticeAttempted sets the "practice_attempted" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillablePracticeAttempted(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetPracticeAttempted(*v)
	}
	return _c
}

// SetPracticeCorrect sets the "practice_correct" field.
func (_c *SessionEventCreate) SetPracticeCorrect(v int) *SessionEventCreate {
	_c.mutation.SetPracticeCorrect(v)
	return _c
}

// SetNillablePracticeCorrect sets the "practice_correct" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillablePracticeCorrect(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetPracticeCorrect(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *SessionEventCreate) SetDurationSecs(v int) *SessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationSecs(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TopicKey(); !ok {
		v := sessionevent.DefaultTopicKey
		_c.mutation.SetTopicKey(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := sessionevent.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.SubtopicsCompleted(); !ok {
		v := sessionevent.DefaultSubtopicsCompleted
		_c.mutation.SetSubtopicsCompleted(v)
	}
	if _, ok := _c.mutation.PracticeAttempted(); !ok {
		v := sessionevent.DefaultPracticeAttempted
		_c.mutation.SetPracticeAttempted(v)
	}
	if _, ok := _c.mutation.PracticeCorrect(); !ok {
		v := sessionevent.DefaultPracticeCorrect
		_c.mutation.SetPracticeCorrect(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := sessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicKey(); !ok {
		return &ValidationError{Name: "topic_key", err: errors.New(`ent: missing required field "SessionEvent.topic_key"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SessionEvent.level"`)}
	}
	if _, ok := _c.mutation.SubtopicsCompleted(); !ok {
		return &ValidationError{Name: "subtopics_completed", err: errors.New(`ent: missing required field "SessionEvent.subtopics_completed"`)}
	}
	if _, ok := _c.mutation.PracticeAttempted(); !ok {
		return &ValidationError{Name: "practice_attempted", err: errors.New(`ent: missing required field "SessionEvent.practice_attempted"`)}
	}
	if _, ok := _c.mutation.PracticeCorrect(); !ok {
		return &ValidationError{Name: "practice_correct", err: errors.New(`ent: missing required field "SessionEvent.practice_correct"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "SessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.TopicKey(); ok {
		_spec.SetField(sessionevent.FieldTopicKey, field.TypeString, value)
		_node.TopicKey = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.SubtopicsCompleted(); ok {
		_spec.SetField(sessionevent.FieldSubtopicsCompleted, field.TypeInt, value)
		_node.SubtopicsCompleted = value
	}
	if value, ok := _c.mutation.PracticeAttempted(); ok {
		_spec.SetField(sessionevent.FieldPracticeAttempted, field.TypeInt, value)
		_node.PracticeAttempted = value
	}
	if value, ok := _c.mutation.PracticeCorrect(); ok {
		_spec.SetField(sessionevent.FieldPracticeCorrect, field.TypeInt, value)
		_node.PracticeCorrect = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
