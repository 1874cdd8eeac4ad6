// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/google/uuid"
)

// BiomarkerStandardCreate is the builder for creating a BiomarkerStandard entity.
type BiomarkerStandardCreate struct {
	config
	mutation *BiomarkerStandardMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *BiomarkerStandardCreate) SetCode(v string) *BiomarkerStandardCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BiomarkerStandardCreate) SetName(v string) *BiomarkerStandardCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAliases sets the "aliases" field.
func (_c *BiomarkerStandardCreate) SetAliases(v []string) *BiomarkerStandardCreate {
	_c.mutation.SetAliases(v)
	return _c
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (_c *BiomarkerStandardCreate) SetCanonicalUnit(v string) *BiomarkerStandardCreate {
	_c.mutation.SetCanonicalUnit(v)
	return _c
}

// SetNillableCanonicalUnit sets the "canonical_unit" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableCanonicalUnit(v *string) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetCanonicalUnit(*v)
	}
	return _c
}

// SetConversions sets the "conversions" field.
func (_c *BiomarkerStandardCreate) SetConversions(v map[string]float64) *BiomarkerStandardCreate {
	_c.mutation.SetConversions(v)
	return _c
}

// SetMaleMin sets the "male_min" field.
func (_c *BiomarkerStandardCreate) SetMaleMin(v float64) *BiomarkerStandardCreate {
	_c.mutation.SetMaleMin(v)
	return _c
}

// SetNillableMaleMin sets the "male_min" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableMaleMin(v *float64) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetMaleMin(*v)
	}
	return _c
}

// SetMaleMax sets the "male_max" field.
func (_c *BiomarkerStandardCreate) SetMaleMax(v float64) *BiomarkerStandardCreate {
	_c.mutation.SetMaleMax(v)
	return _c
}

// SetNillableMaleMax sets the "male_max" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableMaleMax(v *float64) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetMaleMax(*v)
	}
	return _c
}

// SetFemaleMin sets the "female_min" field.
func (_c *BiomarkerStandardCreate) SetFemaleMin(v float64) *BiomarkerStandardCreate {
	_c.mutation.SetFemaleMin(v)
	return _c
}

// SetNillableFemaleMin sets the "female_min" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableFemaleMin(v *float64) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetFemaleMin(*v)
	}
	return _c
}

// SetFemaleMax sets the "female_max" field.
func (_c *BiomarkerStandardCreate) SetFemaleMax(v float64) *BiomarkerStandardCreate {
	_c.mutation.SetFemaleMax(v)
	return _c
}

// SetNillableFemaleMax sets the "female_max" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableFemaleMax(v *float64) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetFemaleMax(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BiomarkerStandardCreate) SetID(v uuid.UUID) *BiomarkerStandardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BiomarkerStandardCreate) SetNillableID(v *uuid.UUID) *BiomarkerStandardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BiomarkerStandardMutation object of the builder.
func (_c *BiomarkerStandardCreate) Mutation() *BiomarkerStandardMutation {
	return _c.mutation
}

// Save creates the BiomarkerStandard in the database.
func (_c *BiomarkerStandardCreate) Save(ctx context.Context) (*BiomarkerStandard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BiomarkerStandardCreate) SaveX(ctx context.Context) *BiomarkerStandard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiomarkerStandardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiomarkerStandardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BiomarkerStandardCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := biomarkerstandard.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BiomarkerStandardCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "BiomarkerStandard.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := biomarkerstandard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BiomarkerStandard.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := biomarkerstandard.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BiomarkerStandard.name": %w`, err)}
		}
	}
	return nil
}

func (_c *BiomarkerStandardCreate) sqlSave(ctx context.Context) (*BiomarkerStandard, error) {
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

func (_c *BiomarkerStandardCreate) createSpec() (*BiomarkerStandard, *sqlgraph.CreateSpec) {
	var (
		_node = &BiomarkerStandard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(biomarkerstandard.Table, sqlgraph.NewFieldSpec(biomarkerstandard.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(biomarkerstandard.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(biomarkerstandard.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Aliases(); ok {
		_spec.SetField(biomarkerstandard.FieldAliases, field.TypeJSON, value)
		_node.Aliases = value
	}
	if value, ok := _c.mutation.CanonicalUnit(); ok {
		_spec.SetField(biomarkerstandard.FieldCanonicalUnit, field.TypeString, value)
		_node.CanonicalUnit = value
	}
	if value, ok := _c.mutation.Conversions(); ok {
		_spec.SetField(biomarkerstandard.FieldConversions, field.TypeJSON, value)
		_node.Conversions = value
	}
	if value, ok := _c.mutation.MaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMin, field.TypeFloat64, value)
		_node.MaleMin = &value
	}
	if value, ok := _c.mutation.MaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldMaleMax, field.TypeFloat64, value)
		_node.MaleMax = &value
	}
	if value, ok := _c.mutation.FemaleMin(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMin, field.TypeFloat64, value)
		_node.FemaleMin = &value
	}
	if value, ok := _c.mutation.FemaleMax(); ok {
		_spec.SetField(biomarkerstandard.FieldFemaleMax, field.TypeFloat64, value)
		_node.FemaleMax = &value
	}
	return _node, _spec
}

// BiomarkerStandardCreateBulk is the builder for creating many BiomarkerStandard entities in bulk.
type BiomarkerStandardCreateBulk struct {
	config
	err      error
	builders []*BiomarkerStandardCreate
}

// Save creates the BiomarkerStandard entities in the database.
func (_c *BiomarkerStandardCreateBulk) Save(ctx context.Context) ([]*BiomarkerStandard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BiomarkerStandard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BiomarkerStandardMutation)
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
func (_c *BiomarkerStandardCreateBulk) SaveX(ctx context.Context) []*BiomarkerStandard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BiomarkerStandardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BiomarkerStandardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
