// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/gen/ent/predicate"
)

// BiomarkerStandardUpdate is the builder for updating BiomarkerStandard entities.
type BiomarkerStandardUpdate struct {
	config
	hooks    []Hook
	mutation *BiomarkerStandardMutation
}

// Where appends a list predicates to the BiomarkerStandardUpdate builder.
func (_u *BiomarkerStandardUpdate) Where(ps ...predicate.BiomarkerStandard) *BiomarkerStandardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *BiomarkerStandardUpdate) SetCode(v string) *BiomarkerStandardUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableCode(v *string) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerStandardUpdate) SetName(v string) *BiomarkerStandardUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableName(v *string) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *BiomarkerStandardUpdate) SetAliases(v []string) *BiomarkerStandardUpdate {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *BiomarkerStandardUpdate) AppendAliases(v []string) *BiomarkerStandardUpdate {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *BiomarkerStandardUpdate) ClearAliases() *BiomarkerStandardUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_u *BiomarkerStandardUpdate) SetCanonicalUnit(v string) *BiomarkerStandardUpdate {
	_u.mutation.SetCanonicalUnit(v)
	return _u
}

// SetNillableCanonicalUnit sets the "canonical_unit" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableCanonicalUnit(v *string) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetCanonicalUnit(*v)
	}
	return _u
}

// ClearCanonicalUnit clears the value of the "canonical_unit" field.
func (_u *BiomarkerStandardUpdate) ClearCanonicalUnit() *BiomarkerStandardUpdate {
	_u.mutation.ClearCanonicalUnit()
	return _u
}

// SetConversions sets the "conversions" field.
func (_u *BiomarkerStandardUpdate) SetConversions(v map[string]float64) *BiomarkerStandardUpdate {
	_u.mutation.SetConversions(v)
	return _u
}

// ClearConversions clears the value of the "conversions" field.
func (_u *BiomarkerStandardUpdate) ClearConversions() *BiomarkerStandardUpdate {
	_u.mutation.ClearConversions()
	return _u
}

// SetMaleMin sets the "male_min" field.
func (_u *BiomarkerStandardUpdate) SetMaleMin(v float64) *BiomarkerStandardUpdate {
	_u.mutation.ResetMaleMin()
	_u.mutation.SetMaleMin(v)
	return _u
}

// SetNillableMaleMin sets the "male_min" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableMaleMin(v *float64) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetMaleMin(*v)
	}
	return _u
}

// AddMaleMin adds value to the "male_min" field.
func (_u *BiomarkerStandardUpdate) AddMaleMin(v float64) *BiomarkerStandardUpdate {
	_u.mutation.AddMaleMin(v)
	return _u
}

// ClearMaleMin clears the value of the "male_min" field.
func (_u *BiomarkerStandardUpdate) ClearMaleMin() *BiomarkerStandardUpdate {
	_u.mutation.ClearMaleMin()
	return _u
}

// SetMaleMax sets the "male_max" field.
func (_u *BiomarkerStandardUpdate) SetMaleMax(v float64) *BiomarkerStandardUpdate {
	_u.mutation.ResetMaleMax()
	_u.mutation.SetMaleMax(v)
	return _u
}

// SetNillableMaleMax sets the "male_max" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableMaleMax(v *float64) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetMaleMax(*v)
	}
	return _u
}

// AddMaleMax adds value to the "male_max" field.
func (_u *BiomarkerStandardUpdate) AddMaleMax(v float64) *BiomarkerStandardUpdate {
	_u.mutation.AddMaleMax(v)
	return _u
}

// ClearMaleMax clears the value of the "male_max" field.
func (_u *BiomarkerStandardUpdate) ClearMaleMax() *BiomarkerStandardUpdate {
	_u.mutation.ClearMaleMax()
	return _u
}

// SetFemaleMin sets the "female_min" field.
func (_u *BiomarkerStandardUpdate) SetFemaleMin(v float64) *BiomarkerStandardUpdate {
	_u.mutation.ResetFemaleMin()
	_u.mutation.SetFemaleMin(v)
	return _u
}

// SetNillableFemaleMin sets the "female_min" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableFemaleMin(v *float64) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetFemaleMin(*v)
	}
	return _u
}

// AddFemaleMin adds value to the "female_min" field.
func (_u *BiomarkerStandardUpdate) AddFemaleMin(v float64) *BiomarkerStandardUpdate {
	_u.mutation.AddFemaleMin(v)
	return _u
}

// ClearFemaleMin clears the value of the "female_min" field.
func (_u *BiomarkerStandardUpdate) ClearFemaleMin() *BiomarkerStandardUpdate {
	_u.mutation.ClearFemaleMin()
	return _u
}

// SetFemaleMax sets the "female_max" field.
func (_u *BiomarkerStandardUpdate) SetFemaleMax(v float64) *BiomarkerStandardUpdate {
	_u.mutation.ResetFemaleMax()
	_u.mutation.SetFemaleMax(v)
	return _u
}

// SetNillableFemaleMax sets the "female_max" field if the given value is not nil.
func (_u *BiomarkerStandardUpdate) SetNillableFemaleMax(v *float64) *BiomarkerStandardUpdate {
	if v != nil {
		_u.SetFemaleMax(*v)
	}
	return _u
}

// AddFemaleMax adds value to the "female_max" field.
func (_u *BiomarkerStandardUpdate) AddFemaleMax(v float64) *BiomarkerStandardUpdate {
	_u.mutation.AddFemaleMax(v)
	return _u
}

// ClearFemaleMax clears the value of the "female_max" field.
func (_u *BiomarkerStandardUpdate) ClearFemaleMax() *BiomarkerStandardUpdate {
	_u.mutation.ClearFemaleMax()
	return _u
}

// Mutation returns the BiomarkerStandardMutation object of the builder.
func (_u *BiomarkerStandardUpdate) Mutation() *BiomarkerStandardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BiomarkerStandardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerStandardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BiomarkerStandardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerStandardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerStandardUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := biomarkerstandard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarkerstandard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BiomarkerStandardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarkerstandard.Table, biomarkerstandard.Columns, sqlgraph.NewFieldSpec(biomarkerstandard.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(biomarkerstandard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarkerstandard.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(biomarkerstandard.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, biomarkerstandard.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(biomarkerstandard.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalUnit(); ok {
		_spec.SetField(biomarkerstandard.FieldCanonicalUnit, field.TypeString, value)
	}
	if _u.mutation.CanonicalUnitCleared() {
		_spec.ClearField(biomarkerstandard.FieldCanonicalUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Conversions(); ok {
		_spec.SetField(biomarkerstandard.FieldConversions, field.TypeJSON, value)
	}
	if _u.mutation.ConversionsCleared() {
		_spec.ClearField(biomarkerstandard.FieldConversions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaleMin(); ok {
		_spec.AddField(biomarkerstandard.FieldMaleMin, field.TypeFloat64, value)
	}
	if _u.mutation.MaleMinCleared() {
		_spec.ClearField(biomarkerstandard.FieldMaleMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaleMax(); ok {
		_spec.AddField(biomarkerstandard.FieldMaleMax, field.TypeFloat64, value)
	}
	if _u.mutation.MaleMaxCleared() {
		_spec.ClearField(biomarkerstandard.FieldMaleMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FemaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFemaleMin(); ok {
		_spec.AddField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64, value)
	}
	if _u.mutation.FemaleMinCleared() {
		_spec.ClearField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FemaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFemaleMax(); ok {
		_spec.AddField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64, value)
	}
	if _u.mutation.FemaleMaxCleared() {
		_spec.ClearField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarkerstandard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BiomarkerStandardUpdateOne is the builder for updating a single BiomarkerStandard entity.
type BiomarkerStandardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BiomarkerStandardMutation
}

// SetCode sets the "code" field.
func (_u *BiomarkerStandardUpdateOne) SetCode(v string) *BiomarkerStandardUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableCode(v *string) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *BiomarkerStandardUpdateOne) SetName(v string) *BiomarkerStandardUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableName(v *string) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAliases sets the "aliases" field.
func (_u *BiomarkerStandardUpdateOne) SetAliases(v []string) *BiomarkerStandardUpdateOne {
	_u.mutation.SetAliases(v)
	return _u
}

// AppendAliases appends value to the "aliases" field.
func (_u *BiomarkerStandardUpdateOne) AppendAliases(v []string) *BiomarkerStandardUpdateOne {
	_u.mutation.AppendAliases(v)
	return _u
}

// ClearAliases clears the value of the "aliases" field.
func (_u *BiomarkerStandardUpdateOne) ClearAliases() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_u *BiomarkerStandardUpdateOne) SetCanonicalUnit(v string) *BiomarkerStandardUpdateOne {
	_u.mutation.SetCanonicalUnit(v)
	return _u
}

// SetNillableCanonicalUnit sets the "canonical_unit" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableCanonicalUnit(v *string) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetCanonicalUnit(*v)
	}
	return _u
}

// ClearCanonicalUnit clears the value of the "canonical_unit" field.
func (_u *BiomarkerStandardUpdateOne) ClearCanonicalUnit() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearCanonicalUnit()
	return _u
}

// SetConversions sets the "conversions" field.
func (_u *BiomarkerStandardUpdateOne) SetConversions(v map[string]float64) *BiomarkerStandardUpdateOne {
	_u.mutation.SetConversions(v)
	return _u
}

// ClearConversions clears the value of the "conversions" field.
func (_u *BiomarkerStandardUpdateOne) ClearConversions() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearConversions()
	return _u
}

// SetMaleMin sets the "male_min" field.
func (_u *BiomarkerStandardUpdateOne) SetMaleMin(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.ResetMaleMin()
	_u.mutation.SetMaleMin(v)
	return _u
}

// SetNillableMaleMin sets the "male_min" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableMaleMin(v *float64) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetMaleMin(*v)
	}
	return _u
}

// AddMaleMin adds value to the "male_min" field.
func (_u *BiomarkerStandardUpdateOne) AddMaleMin(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.AddMaleMin(v)
	return _u
}

// ClearMaleMin clears the value of the "male_min" field.
func (_u *BiomarkerStandardUpdateOne) ClearMaleMin() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearMaleMin()
	return _u
}

// SetMaleMax sets the "male_max" field.
func (_u *BiomarkerStandardUpdateOne) SetMaleMax(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.ResetMaleMax()
	_u.mutation.SetMaleMax(v)
	return _u
}

// SetNillableMaleMax sets the "male_max" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableMaleMax(v *float64) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetMaleMax(*v)
	}
	return _u
}

// AddMaleMax adds value to the "male_max" field.
func (_u *BiomarkerStandardUpdateOne) AddMaleMax(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.AddMaleMax(v)
	return _u
}

// ClearMaleMax clears the value of the "male_max" field.
func (_u *BiomarkerStandardUpdateOne) ClearMaleMax() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearMaleMax()
	return _u
}

// SetFemaleMin sets the "female_min" field.
func (_u *BiomarkerStandardUpdateOne) SetFemaleMin(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.ResetFemaleMin()
	_u.mutation.SetFemaleMin(v)
	return _u
}

// SetNillableFemaleMin sets the "female_min" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableFemaleMin(v *float64) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetFemaleMin(*v)
	}
	return _u
}

// AddFemaleMin adds value to the "female_min" field.
func (_u *BiomarkerStandardUpdateOne) AddFemaleMin(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.AddFemaleMin(v)
	return _u
}

// ClearFemaleMin clears the value of the "female_min" field.
func (_u *BiomarkerStandardUpdateOne) ClearFemaleMin() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearFemaleMin()
	return _u
}

// SetFemaleMax sets the "female_max" field.
func (_u *BiomarkerStandardUpdateOne) SetFemaleMax(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.ResetFemaleMax()
	_u.mutation.SetFemaleMax(v)
	return _u
}

// SetNillableFemaleMax sets the "female_max" field if the given value is not nil.
func (_u *BiomarkerStandardUpdateOne) SetNillableFemaleMax(v *float64) *BiomarkerStandardUpdateOne {
	if v != nil {
		_u.SetFemaleMax(*v)
	}
	return _u
}

// AddFemaleMax adds value to the "female_max" field.
func (_u *BiomarkerStandardUpdateOne) AddFemaleMax(v float64) *BiomarkerStandardUpdateOne {
	_u.mutation.AddFemaleMax(v)
	return _u
}

// ClearFemaleMax clears the value of the "female_max" field.
func (_u *BiomarkerStandardUpdateOne) ClearFemaleMax() *BiomarkerStandardUpdateOne {
	_u.mutation.ClearFemaleMax()
	return _u
}

// Mutation returns the BiomarkerStandardMutation object of the builder.
func (_u *BiomarkerStandardUpdateOne) Mutation() *BiomarkerStandardMutation {
	return _u.mutation
}

// Where appends a list predicates to the BiomarkerStandardUpdate builder.
func (_u *BiomarkerStandardUpdateOne) Where(ps ...predicate.BiomarkerStandard) *BiomarkerStandardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BiomarkerStandardUpdateOne) Select(field string, fields ...string) *BiomarkerStandardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BiomarkerStandard entity.
func (_u *BiomarkerStandardUpdateOne) Save(ctx context.Context) (*BiomarkerStandard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BiomarkerStandardUpdateOne) SaveX(ctx context.Context) *BiomarkerStandard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BiomarkerStandardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BiomarkerStandardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BiomarkerStandardUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := biomarkerstandard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := biomarkerstandard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BiomarkerStandardUpdateOne) sqlSave(ctx context.Context) (_node *BiomarkerStandard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(biomarkerstandard.Table, biomarkerstandard.Columns, sqlgraph.NewFieldSpec(biomarkerstandard.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BiomarkerStandard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, biomarkerstandard.FieldID)
		for _, f := range fields {
			if !biomarkerstandard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != biomarkerstandard.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(biomarkerstandard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(biomarkerstandard.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aliases(); ok {
		_spec.SetField(biomarkerstandard.FieldAliases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAliases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, biomarkerstandard.FieldAliases, value)
		})
	}
	if _u.mutation.AliasesCleared() {
		_spec.ClearField(biomarkerstandard.FieldAliases, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalUnit(); ok {
		_spec.SetField(biomarkerstandard.FieldCanonicalUnit, field.TypeString, value)
	}
	if _u.mutation.CanonicalUnitCleared() {
		_spec.ClearField(biomarkerstandard.FieldCanonicalUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Conversions(); ok {
		_spec.SetField(biomarkerstandard.FieldConversions, field.TypeJSON, value)
	}
	if _u.mutation.ConversionsCleared() {
		_spec.ClearField(biomarkerstandard.FieldConversions, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaleMin(); ok {
		_spec.AddField(biomarkerstandard.FieldMaleMin, field.TypeFloat64, value)
	}
	if _u.mutation.MaleMinCleared() {
		_spec.ClearField(biomarkerstandard.FieldMaleMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaleMax(); ok {
		_spec.AddField(biomarkerstandard.FieldMaleMax, field.TypeFloat64, value)
	}
	if _u.mutation.MaleMaxCleared() {
		_spec.ClearField(biomarkerstandard.FieldMaleMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FemaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFemaleMin(); ok {
		_spec.AddField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64, value)
	}
	if _u.mutation.FemaleMinCleared() {
		_spec.ClearField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FemaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFemaleMax(); ok {
		_spec.AddField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64, value)
	}
	if _u.mutation.FemaleMaxCleared() {
		_spec.ClearField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64)
	}
	_node = &BiomarkerStandard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{biomarkerstandard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
