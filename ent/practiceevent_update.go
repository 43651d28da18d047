// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/practiceevent"
	"github.com/abhisek/mentor/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdate) SetSessionID(v string) *PracticeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSessionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *PracticeEventUpdate) SetTopicKey(v string) *PracticeEventUpdate {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableTopicKey(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetSubtopicKey sets the "subtopic_key" field.
func (_u *PracticeEventUpdate) SetSubtopicKey(v string) *PracticeEventUpdate {
	_u.mutation.SetSubtopicKey(v)
	return _u
}

// SetNillableSubtopicKey sets the "subtopic_key" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSubtopicKey(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSubtopicKey(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PracticeEventUpdate) SetQuestion(v string) *PracticeEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableQuestion(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *PracticeEventUpdate) SetLearnerAnswer(v string) *PracticeEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableLearnerAnswer(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdate) SetCorrect(v bool) *PracticeEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableCorrect(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *PracticeEventUpdate) SetSkipped(v bool) *PracticeEventUpdate {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSkipped(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PracticeEventUpdate) SetHintsUsed(v int) *PracticeEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableHintsUsed(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PracticeEventUpdate) AddHintsUsed(v int) *PracticeEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := practiceevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicKey(); ok {
		if err := practiceevent.SubtopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subtopic_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(practiceevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicKey(); ok {
		_spec.SetField(practiceevent.FieldSubtopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(practiceevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(practiceevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(practiceevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(practiceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(practiceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdateOne) SetSessionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSessionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *PracticeEventUpdateOne) SetTopicKey(v string) *PracticeEventUpdateOne {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableTopicKey(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetSubtopicKey sets the "subtopic_key" field.
func (_u *PracticeEventUpdateOne) SetSubtopicKey(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSubtopicKey(v)
	return _u
}

// SetNillableSubtopicKey sets the "subtopic_key" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSubtopicKey(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSubtopicKey(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *PracticeEventUpdateOne) SetQuestion(v string) *PracticeEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableQuestion(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *PracticeEventUpdateOne) SetLearnerAnswer(v string) *PracticeEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableLearnerAnswer(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdateOne) SetCorrect(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableCorrect(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *PracticeEventUpdateOne) SetSkipped(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSkipped(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *PracticeEventUpdateOne) SetHintsUsed(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableHintsUsed(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *PracticeEventUpdateOne) AddHintsUsed(v int) *PracticeEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicKey(); ok {
		if err := practiceevent.TopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "topic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.topic_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicKey(); ok {
		if err := practiceevent.SubtopicKeyValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_key", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subtopic_key": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(practiceevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicKey(); ok {
		_spec.SetField(practiceevent.FieldSubtopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(practiceevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(practiceevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(practiceevent.FieldSkipped, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(practiceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(practiceevent.FieldHintsUsed, field.TypeInt, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
