// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/predicate"
	"github.com/abhisek/mentor/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionEventUpdate) SetLearnerID(v string) *SessionEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLearnerID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *SessionEventUpdate) SetTopicKey(v string) *SessionEventUpdate {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopicKey(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdate) SetLevel(v string) *SessionEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLevel(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSubtopicsCompleted sets the "subtopics_completed" field.
func (_u *SessionEventUpdate) SetSubtopicsCompleted(v int) *SessionEventUpdate {
	_u.mutation.ResetSubtopicsCompleted()
	_u.mutation.SetSubtopicsCompleted(v)
	return _u
}

// SetNillableSubtopicsCompleted sets the "subtopics_completed" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSubtopicsCompleted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetSubtopicsCompleted(*v)
	}
	return _u
}

// AddSubtopicsCompleted adds value to the "subtopics_completed" field.
func (_u *SessionEventUpdate) AddSubtopicsCompleted(v int) *SessionEventUpdate {
	_u.mutation.AddSubtopicsCompleted(v)
	return _u
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (_u *SessionEventUpdate) SetPracticeAttempted(v int) *SessionEventUpdate {
	_u.mutation.ResetPracticeAttempted()
	_u.mutation.SetPracticeAttempted(v)
	return _u
}

// SetNillablePracticeAttempted sets the "practice_attempted" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePracticeAttempted(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPracticeAttempted(*v)
	}
	return _u
}

// AddPracticeAttempted adds value to the "practice_attempted" field.
func (_u *SessionEventUpdate) AddPracticeAttempted(v int) *SessionEventUpdate {
	_u.mutation.AddPracticeAttempted(v)
	return _u
}

// SetPracticeCorrect sets the "practice_correct" field.
func (_u *SessionEventUpdate) SetPracticeCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetPracticeCorrect()
	_u.mutation.SetPracticeCorrect(v)
	return _u
}

// SetNillablePracticeCorrect sets the "practice_correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillablePracticeCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetPracticeCorrect(*v)
	}
	return _u
}

// AddPracticeCorrect adds value to the "practice_correct" field.
func (_u *SessionEventUpdate) AddPracticeCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddPracticeCorrect(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(sessionevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicsCompleted(); ok {
		_spec.SetField(sessionevent.FieldSubtopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicsCompleted(); ok {
		_spec.AddField(sessionevent.FieldSubtopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeAttempted(); ok {
		_spec.SetField(sessionevent.FieldPracticeAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeAttempted(); ok {
		_spec.AddField(sessionevent.FieldPracticeAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCorrect(); ok {
		_spec.SetField(sessionevent.FieldPracticeCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCorrect(); ok {
		_spec.AddField(sessionevent.FieldPracticeCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *SessionEventUpdateOne) SetLearnerID(v string) *SessionEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLearnerID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTopicKey sets the "topic_key" field.
func (_u *SessionEventUpdateOne) SetTopicKey(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopicKey(v)
	return _u
}

// SetNillableTopicKey sets the "topic_key" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopicKey(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopicKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdateOne) SetLevel(v string) *SessionEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLevel(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSubtopicsCompleted sets the "subtopics_completed" field.
func (_u *SessionEventUpdateOne) SetSubtopicsCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetSubtopicsCompleted()
	_u.mutation.SetSubtopicsCompleted(v)
	return _u
}

// SetNillableSubtopicsCompleted sets the "subtopics_completed" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSubtopicsCompleted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSubtopicsCompleted(*v)
	}
	return _u
}

// AddSubtopicsCompleted adds value to the "subtopics_completed" field.
func (_u *SessionEventUpdateOne) AddSubtopicsCompleted(v int) *SessionEventUpdateOne {
	_u.mutation.AddSubtopicsCompleted(v)
	return _u
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (_u *SessionEventUpdateOne) SetPracticeAttempted(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPracticeAttempted()
	_u.mutation.SetPracticeAttempted(v)
	return _u
}

// SetNillablePracticeAttempted sets the "practice_attempted" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePracticeAttempted(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPracticeAttempted(*v)
	}
	return _u
}

// AddPracticeAttempted adds value to the "practice_attempted" field.
func (_u *SessionEventUpdateOne) AddPracticeAttempted(v int) *SessionEventUpdateOne {
	_u.mutation.AddPracticeAttempted(v)
	return _u
}

// SetPracticeCorrect sets the "practice_correct" field.
func (_u *SessionEventUpdateOne) SetPracticeCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetPracticeCorrect()
	_u.mutation.SetPracticeCorrect(v)
	return _u
}

// SetNillablePracticeCorrect sets the "practice_correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillablePracticeCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetPracticeCorrect(*v)
	}
	return _u
}

// AddPracticeCorrect adds value to the "practice_correct" field.
func (_u *SessionEventUpdateOne) AddPracticeCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddPracticeCorrect(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicKey(); ok {
		_spec.SetField(sessionevent.FieldTopicKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubtopicsCompleted(); ok {
		_spec.SetField(sessionevent.FieldSubtopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicsCompleted(); ok {
		_spec.AddField(sessionevent.FieldSubtopicsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeAttempted(); ok {
		_spec.SetField(sessionevent.FieldPracticeAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeAttempted(); ok {
		_spec.AddField(sessionevent.FieldPracticeAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PracticeCorrect(); ok {
		_spec.SetField(sessionevent.FieldPracticeCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCorrect(); ok {
		_spec.AddField(sessionevent.FieldPracticeCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
