// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
	"github.com/google/uuid"
)

// LabJobCreate is the builder for creating a LabJob entity.
type LabJobCreate struct {
	config
	mutation *LabJobMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LabJobCreate) SetUserID(v string) *LabJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *LabJobCreate) SetSourcePath(v string) *LabJobCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetSourceFormat sets the "source_format" field.
func (_c *LabJobCreate) SetSourceFormat(v string) *LabJobCreate {
	_c.mutation.SetSourceFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LabJobCreate) SetStatus(v string) *LabJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableStatus(v *string) *LabJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *LabJobCreate) SetStage(v string) *LabJobCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableStage(v *string) *LabJobCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetCurrentPage sets the "current_page" field.
func (_c *LabJobCreate) SetCurrentPage(v int) *LabJobCreate {
	_c.mutation.SetCurrentPage(v)
	return _c
}

// SetNillableCurrentPage sets the "current_page" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableCurrentPage(v *int) *LabJobCreate {
	if v != nil {
		_c.SetCurrentPage(*v)
	}
	return _c
}

// SetTotalPages sets the "total_pages" field.
func (_c *LabJobCreate) SetTotalPages(v int) *LabJobCreate {
	_c.mutation.SetTotalPages(v)
	return _c
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableTotalPages(v *int) *LabJobCreate {
	if v != nil {
		_c.SetTotalPages(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabJobCreate) SetCreatedAt(v time.Time) *LabJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableCreatedAt(v *time.Time) *LabJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LabJobCreate) SetStartedAt(v time.Time) *LabJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableStartedAt(v *time.Time) *LabJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LabJobCreate) SetCompletedAt(v time.Time) *LabJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableCompletedAt(v *time.Time) *LabJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LabJobCreate) SetErrorMessage(v string) *LabJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableErrorMessage(v *string) *LabJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *LabJobCreate) SetResult(v json.RawMessage) *LabJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetTrace sets the "trace" field.
func (_c *LabJobCreate) SetTrace(v json.RawMessage) *LabJobCreate {
	_c.mutation.SetTrace(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LabJobCreate) SetID(v uuid.UUID) *LabJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabJobCreate) SetNillableID(v *uuid.UUID) *LabJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabJobMutation object of the builder.
func (_c *LabJobCreate) Mutation() *LabJobMutation {
	return _c.mutation
}

// Save creates the LabJob in the database.
func (_c *LabJobCreate) Save(ctx context.Context) (*LabJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabJobCreate) SaveX(ctx context.Context) *LabJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := labjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentPage(); !ok {
		v := labjob.DefaultCurrentPage
		_c.mutation.SetCurrentPage(v)
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		v := labjob.DefaultTotalPages
		_c.mutation.SetTotalPages(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LabJob.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := labjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LabJob.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "LabJob.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := labjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabJob.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFormat(); !ok {
		return &ValidationError{Name: "source_format", err: errors.New(`ent: missing required field "LabJob.source_format"`)}
	}
	if v, ok := _c.mutation.SourceFormat(); ok {
		if err := labjob.SourceFormatValidator(v); err != nil {
			return &ValidationError{Name: "source_format", err: fmt.Errorf(`ent: validator failed for field "LabJob.source_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LabJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := labjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LabJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentPage(); !ok {
		return &ValidationError{Name: "current_page", err: errors.New(`ent: missing required field "LabJob.current_page"`)}
	}
	if _, ok := _c.mutation.TotalPages(); !ok {
		return &ValidationError{Name: "total_pages", err: errors.New(`ent: missing required field "LabJob.total_pages"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LabJob.created_at"`)}
	}
	return nil
}

func (_c *LabJobCreate) sqlSave(ctx context.Context) (*LabJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LabJobCreate) createSpec() (*LabJob, *sqlgraph.CreateSpec) {
	var (
		_node = &LabJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labjob.Table, sqlgraph.NewFieldSpec(labjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(labjob.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(labjob.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.SourceFormat(); ok {
		_spec.SetField(labjob.FieldSourceFormat, field.TypeString, value)
		_node.SourceFormat = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(labjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(labjob.FieldStage, field.TypeString, value)
		_node.Stage = &value
	}
	if value, ok := _c.mutation.CurrentPage(); ok {
		_spec.SetField(labjob.FieldCurrentPage, field.TypeInt, value)
		_node.CurrentPage = value
	}
	if value, ok := _c.mutation.TotalPages(); ok {
		_spec.SetField(labjob.FieldTotalPages, field.TypeInt, value)
		_node.TotalPages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(labjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(labjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(labjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(labjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Trace(); ok {
		_spec.SetField(labjob.FieldTrace, field.TypeJSON, value)
		_node.Trace = value
	}
	return _node, _spec
}

// LabJobCreateBulk is the builder for creating many LabJob entities in bulk.
type LabJobCreateBulk struct {
	config
	err      error
	builders []*LabJobCreate
}

// Save creates the LabJob entities in the database.
func (_c *LabJobCreateBulk) Save(ctx context.Context) ([]*LabJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabJobMutation)
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
func (_c *LabJobCreateBulk) SaveX(ctx context.Context) []*LabJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
