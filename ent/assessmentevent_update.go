// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/assessmentevent"
	"github.com/abhisek/mentor/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *AssessmentEventUpdate) SetTopicKey(v string) *AssessmentEventUpdate {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTopicKey(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdate) SetCorrect(v int) *AssessmentEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCorrect(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentEventUpdate) AddCorrect(v int) *AssessmentEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AssessmentEventUpdate) SetSkipped(v int) *AssessmentEventUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSkipped(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *AssessmentEventUpdate) AddSkipped(v int) *AssessmentEventUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentEventUpdate) SetLevel(v string) *AssessmentEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableLevel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetRetake sets the "retake" field.
func (_u *AssessmentEventUpdate) SetRetake(v bool) *AssessmentEventUpdate {
	_u.mutation.SetRetake(v)
	return _u
}

// SetNillableRetake sets the "retake" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRetake(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRetake(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := assessmentevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessmentevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(assessmentevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(assessmentevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(assessmentevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessmentevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Retake(); ok {
		_spec.SetField(assessmentevent.FieldRetake, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *AssessmentEventUpdateOne) SetTopicKey(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTopicKey(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AssessmentEventUpdateOne) SetCorrect(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCorrect(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *AssessmentEventUpdateOne) AddCorrect(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *AssessmentEventUpdateOne) SetSkipped(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSkipped(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *AssessmentEventUpdateOne) AddSkipped(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentEventUpdateOne) SetLevel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableLevel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetRetake sets the "retake" field.
func (_u *AssessmentEventUpdateOne) SetRetake(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetRetake(v)
	return _u
}

// SetNillableRetake sets the "retake" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRetake(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRetake(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := assessmentevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessmentevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(assessmentevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(assessmentevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(assessmentevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(assessmentevent.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessmentevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Retake(); ok {
		_spec.SetField(assessmentevent.FieldRetake, field.TypeBool, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
