// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mentor/ent/assessmentevent"
	"github.com/abhisek/mentor/ent/predicate"
)

// AssessmentEventDelete is the builder for deleting a AssessmentEvent entity.
type AssessmentEventDelete struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventDelete builder.
func (_d *AssessmentEventDelete) Where(ps ...predicate.AssessmentEvent) *AssessmentEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AssessmentEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AssessmentEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AssessmentEventDeleteOne is the builder for deleting a single AssessmentEvent entity.
type AssessmentEventDeleteOne struct {
	_d *AssessmentEventDelete
}

// Where appends a list predicates to the AssessmentEventDelete builder.
func (_d *AssessmentEventDeleteOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AssessmentEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{assessmentevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AssessmentEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
