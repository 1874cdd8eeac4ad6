// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/gen/ent/predicate"
)

// BiomarkerStandardDelete is the builder for deleting a BiomarkerStandard entity.
type BiomarkerStandardDelete struct {
	config
	hooks    []Hook
	mutation *BiomarkerStandardMutation
}

// Where appends a list predicates to the BiomarkerStandardDelete builder.
func (_d *BiomarkerStandardDelete) Where(ps ...predicate.BiomarkerStandard) *BiomarkerStandardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BiomarkerStandardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiomarkerStandardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BiomarkerStandardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(biomarkerstandard.Table, sqlgraph.NewFieldSpec(biomarkerstandard.FieldID, field.TypeUUID))
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

// BiomarkerStandardDeleteOne is the builder for deleting a single BiomarkerStandard entity.
type BiomarkerStandardDeleteOne struct {
	_d *BiomarkerStandardDelete
}

// Where appends a list predicates to the BiomarkerStandardDelete builder.
func (_d *BiomarkerStandardDeleteOne) Where(ps ...predicate.BiomarkerStandard) *BiomarkerStandardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BiomarkerStandardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{biomarkerstandard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BiomarkerStandardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
