// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentEventCreate) SetSessionID(v string) *AssessmentEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopicKey sets the "topic_key" field.
func (_c *AssessmentEventCreate) SetTopicKey(v string) *AssessmentEventCreate {
	_c.mutation.SetTopicKey(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AssessmentEventCreate) SetCorrect(v int) *AssessmentEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *AssessmentEventCreate) SetSkipped(v int) *AssessmentEventCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableSkipped(v *int) *AssessmentEventCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *AssessmentEventCreate) SetLevel(v string) *AssessmentEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetRetake sets the "retake" field.
func (_c *AssessmentEventCreate) SetRetake(v bool) *AssessmentEventCreate {
	_c.mutation.SetRetake(v)
	return _c
}

// SetNillableRetake sets the "retake" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableRetake(v *bool) *AssessmentEventCreate {
	if v != nil {
		_c.SetRetake(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := assessmentevent.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.Retake(); !ok {
		v := assessmentevent.DefaultRetake
		_c.mutation.SetRetake(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssessmentEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicKey(); !ok {
		return &ValidationError{Name: "topic_key", err: errors.New(`ent: missing required field "AssessmentEvent.topic_key"`)}
	}
	if v, ok := _c.mutation.TopicKey(); ok {
		if err := assessmentevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.topic_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AssessmentEvent.correct"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "AssessmentEvent.skipped"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AssessmentEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := assessmentevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Retake(); !ok {
		return &ValidationError{Name: "retake", err: errors.New(`ent: missing required field "AssessmentEvent.retake"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicKey(); ok {
		_spec.SetField(assessmentevent.FieldTopicKey, field.TypeString, value)
		_node.TopicKey = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(assessmentevent.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(assessmentevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Retake(); ok {
		_spec.SetField(assessmentevent.FieldRetake, field.TypeBool, value)
		_node.Retake = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
