// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
	"github.com/biomarkerlab/labreports/gen/ent/predicate"
)

// LabJobUpdate is the builder for updating LabJob entities.
type LabJobUpdate struct {
	config
	hooks    []Hook
	mutation *LabJobMutation
}

// Where appends a list predicates to the LabJobUpdate builder.
func (_u *LabJobUpdate) Where(ps ...predicate.LabJob) *LabJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LabJobUpdate) SetUserID(v string) *LabJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableUserID(v *string) *LabJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LabJobUpdate) SetSourcePath(v string) *LabJobUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableSourcePath(v *string) *LabJobUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabJobUpdate) SetStatus(v string) *LabJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableStatus(v *string) *LabJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *LabJobUpdate) SetStage(v string) *LabJobUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableStage(v *string) *LabJobUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *LabJobUpdate) ClearStage() *LabJobUpdate {
	_u.mutation.ClearStage()
	return _u
}

// SetCurrentPage sets the "current_page" field.
func (_u *LabJobUpdate) SetCurrentPage(v int) *LabJobUpdate {
	_u.mutation.ResetCurrentPage()
	_u.mutation.SetCurrentPage(v)
	return _u
}

// SetNillableCurrentPage sets the "current_page" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableCurrentPage(v *int) *LabJobUpdate {
	if v != nil {
		_u.SetCurrentPage(*v)
	}
	return _u
}

// AddCurrentPage adds value to the "current_page" field.
func (_u *LabJobUpdate) AddCurrentPage(v int) *LabJobUpdate {
	_u.mutation.AddCurrentPage(v)
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *LabJobUpdate) SetTotalPages(v int) *LabJobUpdate {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableTotalPages(v *int) *LabJobUpdate {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *LabJobUpdate) AddTotalPages(v int) *LabJobUpdate {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LabJobUpdate) SetStartedAt(v time.Time) *LabJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableStartedAt(v *time.Time) *LabJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *LabJobUpdate) ClearStartedAt() *LabJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabJobUpdate) SetCompletedAt(v time.Time) *LabJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableCompletedAt(v *time.Time) *LabJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabJobUpdate) ClearCompletedAt() *LabJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LabJobUpdate) SetErrorMessage(v string) *LabJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LabJobUpdate) SetNillableErrorMessage(v *string) *LabJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LabJobUpdate) ClearErrorMessage() *LabJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *LabJobUpdate) SetResult(v json.RawMessage) *LabJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *LabJobUpdate) AppendResult(v json.RawMessage) *LabJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *LabJobUpdate) ClearResult() *LabJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetTrace sets the "trace" field.
func (_u *LabJobUpdate) SetTrace(v json.RawMessage) *LabJobUpdate {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *LabJobUpdate) AppendTrace(v json.RawMessage) *LabJobUpdate {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *LabJobUpdate) ClearTrace() *LabJobUpdate {
	_u.mutation.ClearTrace()
	return _u
}

// Mutation returns the LabJobMutation object of the builder.
func (_u *LabJobUpdate) Mutation() *LabJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabJobUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := labjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LabJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := labjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LabJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labjob.Table, labjob.Columns, sqlgraph.NewFieldSpec(labjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(labjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(labjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(labjob.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(labjob.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPage(); ok {
		_spec.SetField(labjob.FieldCurrentPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPage(); ok {
		_spec.AddField(labjob.FieldCurrentPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(labjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(labjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(labjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(labjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(labjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(labjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(labjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(labjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(labjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(labjob.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labjob.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(labjob.FieldTrace, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabJobUpdateOne is the builder for updating a single LabJob entity.
type LabJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *LabJobUpdateOne) SetUserID(v string) *LabJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableUserID(v *string) *LabJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *LabJobUpdateOne) SetSourcePath(v string) *LabJobUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableSourcePath(v *string) *LabJobUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LabJobUpdateOne) SetStatus(v string) *LabJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableStatus(v *string) *LabJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *LabJobUpdateOne) SetStage(v string) *LabJobUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableStage(v *string) *LabJobUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// ClearStage clears the value of the "stage" field.
func (_u *LabJobUpdateOne) ClearStage() *LabJobUpdateOne {
	_u.mutation.ClearStage()
	return _u
}

// SetCurrentPage sets the "current_page" field.
func (_u *LabJobUpdateOne) SetCurrentPage(v int) *LabJobUpdateOne {
	_u.mutation.ResetCurrentPage()
	_u.mutation.SetCurrentPage(v)
	return _u
}

// SetNillableCurrentPage sets the "current_page" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableCurrentPage(v *int) *LabJobUpdateOne {
	if v != nil {
		_u.SetCurrentPage(*v)
	}
	return _u
}

// AddCurrentPage adds value to the "current_page" field.
func (_u *LabJobUpdateOne) AddCurrentPage(v int) *LabJobUpdateOne {
	_u.mutation.AddCurrentPage(v)
	return _u
}

// SetTotalPages sets the "total_pages" field.
func (_u *LabJobUpdateOne) SetTotalPages(v int) *LabJobUpdateOne {
	_u.mutation.ResetTotalPages()
	_u.mutation.SetTotalPages(v)
	return _u
}

// SetNillableTotalPages sets the "total_pages" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableTotalPages(v *int) *LabJobUpdateOne {
	if v != nil {
		_u.SetTotalPages(*v)
	}
	return _u
}

// AddTotalPages adds value to the "total_pages" field.
func (_u *LabJobUpdateOne) AddTotalPages(v int) *LabJobUpdateOne {
	_u.mutation.AddTotalPages(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *LabJobUpdateOne) SetStartedAt(v time.Time) *LabJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableStartedAt(v *time.Time) *LabJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *LabJobUpdateOne) ClearStartedAt() *LabJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LabJobUpdateOne) SetCompletedAt(v time.Time) *LabJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableCompletedAt(v *time.Time) *LabJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LabJobUpdateOne) ClearCompletedAt() *LabJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LabJobUpdateOne) SetErrorMessage(v string) *LabJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LabJobUpdateOne) SetNillableErrorMessage(v *string) *LabJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LabJobUpdateOne) ClearErrorMessage() *LabJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResult sets the "result" field.
func (_u *LabJobUpdateOne) SetResult(v json.RawMessage) *LabJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *LabJobUpdateOne) AppendResult(v json.RawMessage) *LabJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *LabJobUpdateOne) ClearResult() *LabJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetTrace sets the "trace" field.
func (_u *LabJobUpdateOne) SetTrace(v json.RawMessage) *LabJobUpdateOne {
	_u.mutation.SetTrace(v)
	return _u
}

// AppendTrace appends value to the "trace" field.
func (_u *LabJobUpdateOne) AppendTrace(v json.RawMessage) *LabJobUpdateOne {
	_u.mutation.AppendTrace(v)
	return _u
}

// ClearTrace clears the value of the "trace" field.
func (_u *LabJobUpdateOne) ClearTrace() *LabJobUpdateOne {
	_u.mutation.ClearTrace()
	return _u
}

// Mutation returns the LabJobMutation object of the builder.
func (_u *LabJobUpdateOne) Mutation() *LabJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabJobUpdate builder.
func (_u *LabJobUpdateOne) Where(ps ...predicate.LabJob) *LabJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabJobUpdateOne) Select(field string, fields ...string) *LabJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabJob entity.
func (_u *LabJobUpdateOne) Save(ctx context.Context) (*LabJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabJobUpdateOne) SaveX(ctx context.Context) *LabJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabJobUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := labjob.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LabJob.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := labjob.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "LabJob.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := labjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LabJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LabJobUpdateOne) sqlSave(ctx context.Context) (_node *LabJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labjob.Table, labjob.Columns, sqlgraph.NewFieldSpec(labjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LabJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labjob.FieldID)
		for _, f := range fields {
			if !labjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != labjob.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(labjob.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(labjob.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(labjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(labjob.FieldStage, field.TypeString, value)
	}
	if _u.mutation.StageCleared() {
		_spec.ClearField(labjob.FieldStage, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPage(); ok {
		_spec.SetField(labjob.FieldCurrentPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPage(); ok {
		_spec.AddField(labjob.FieldCurrentPage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalPages(); ok {
		_spec.SetField(labjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPages(); ok {
		_spec.AddField(labjob.FieldTotalPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(labjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(labjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(labjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(labjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(labjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(labjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(labjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trace(); ok {
		_spec.SetField(labjob.FieldTrace, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTrace(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, labjob.FieldTrace, value)
		})
	}
	if _u.mutation.TraceCleared() {
		_spec.ClearField(labjob.FieldTrace, field.TypeJSON)
	}
	_node = &LabJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
