// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeEventCreate) SetSessionID(v string) *PracticeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopicKey sets the "topic_key" field.
func (_c *PracticeEventCreate) SetTopicKey(v string) *PracticeEventCreate {
	_c.mutation.SetTopicKey(v)
	return _c
}

// SetSubtopicKey sets the "subtopic_key" field.
func (_c *PracticeEventCreate) SetSubtopicKey(v string) *PracticeEventCreate {
	_c.mutation.SetSubtopicKey(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *PracticeEventCreate) SetQuestion(v string) *PracticeEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_c *PracticeEventCreate) SetLearnerAnswer(v string) *PracticeEventCreate {
	_c.mutation.SetLearnerAnswer(v)
	return _c
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableLearnerAnswer(v *string) *PracticeEventCreate {
	if v != nil {
		_c.SetLearnerAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PracticeEventCreate) SetCorrect(v bool) *PracticeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableCorrect(v *bool) *PracticeEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *PracticeEventCreate) SetSkipped(v bool) *PracticeEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableSkipped(v *bool) *PracticeEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *PracticeEventCreate) SetHintsUsed(v int) *PracticeEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableHintsUsed(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		v := practiceevent.DefaultLearnerAnswer
		_c.mutation.SetLearnerAnswer(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := practiceevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := practiceevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := practiceevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicKey(); !ok {
		return &ValidationError{Name: "topic_key", err: errors.New(`ent: missing required field "PracticeEvent.topic_key"`)}
	}
	if v, ok := _c.mutation.TopicKey(); ok {
		if err := practiceevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.topic_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubtopicKey(); !ok {
		return &ValidationError{Name: "subtopic_key", err: errors.New(`ent: missing required field "PracticeEvent.subtopic_key"`)}
	}
	if v, ok := _c.mutation.SubtopicKey(); ok {
		if err := practiceevent.SubtopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subtopic_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "PracticeEvent.question"`)}
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		return &ValidationError{Name: "learner_answer", err: errors.New(`ent: missing required field "PracticeEvent.learner_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PracticeEvent.correct"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "PracticeEvent.skipped"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "PracticeEvent.hints_used"`)}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
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

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicKey(); ok {
		_spec.SetField(practiceevent.FieldTopicKey, field.TypeString, value)
		_node.TopicKey = value
	}
	if value, ok := _c.mutation.SubtopicKey(); ok {
		_spec.SetField(practiceevent.FieldSubtopicKey, field.TypeString, value)
		_node.SubtopicKey = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(practiceevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.LearnerAnswer(); ok {
		_spec.SetField(practiceevent.FieldLearnerAnswer, field.TypeString, value)
		_node.LearnerAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(practiceevent.FieldSkipped, field.TypeBool, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(practiceevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
