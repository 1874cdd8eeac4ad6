// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
	"github.com/biomarkerlab/labreports/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBiomarkerStandard = "BiomarkerStandard"
	TypeLabJob            = "LabJob"
)

// BiomarkerStandardMutation represents an operation that mutates the BiomarkerStandard nodes in the graph.
type BiomarkerStandardMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	code           *string
	name           *string
	aliases        *[]string
	appendaliases  []string
	canonical_unit *string
	conversions    *map[string]float64
	male_min       *float64
	addmale_min    *float64
	male_max       *float64
	addmale_max    *float64
	female_min     *float64
	addfemale_min  *float64
	female_max     *float64
	addfemale_max  *float64
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*BiomarkerStandard, error)
	predicates     []predicate.BiomarkerStandard
}

var _ ent.Mutation = (*BiomarkerStandardMutation)(nil)

// biomarkerstandardOption allows management of the mutation configuration using functional options.
type biomarkerstandardOption func(*BiomarkerStandardMutation)

// newBiomarkerStandardMutation creates new mutation for the BiomarkerStandard entity.
func newBiomarkerStandardMutation(c config, op Op, opts ...biomarkerstandardOption) *BiomarkerStandardMutation {
	m := &BiomarkerStandardMutation{
		config:        c,
		op:            op,
		typ:           TypeBiomarkerStandard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBiomarkerStandardID sets the ID field of the mutation.
func withBiomarkerStandardID(id uuid.UUID) biomarkerstandardOption {
	return func(m *BiomarkerStandardMutation) {
		var (
			err   error
			once  sync.Once
			value *BiomarkerStandard
		)
		m.oldValue = func(ctx context.Context) (*BiomarkerStandard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BiomarkerStandard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBiomarkerStandard sets the old BiomarkerStandard of the mutation.
func withBiomarkerStandard(node *BiomarkerStandard) biomarkerstandardOption {
	return func(m *BiomarkerStandardMutation) {
		m.oldValue = func(context.Context) (*BiomarkerStandard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BiomarkerStandardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BiomarkerStandardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BiomarkerStandard entities.
func (m *BiomarkerStandardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BiomarkerStandardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BiomarkerStandardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BiomarkerStandard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *BiomarkerStandardMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *BiomarkerStandardMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *BiomarkerStandardMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *BiomarkerStandardMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BiomarkerStandardMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BiomarkerStandardMutation) ResetName() {
	m.name = nil
}

// SetAliases sets the "aliases" field.
func (m *BiomarkerStandardMutation) SetAliases(s []string) {
	m.aliases = &s
	m.appendaliases = nil
}

// Aliases returns the value of the "aliases" field in the mutation.
func (m *BiomarkerStandardMutation) Aliases() (r []string, exists bool) {
	v := m.aliases
	if v == nil {
		return
	}
	return *v, true
}

// OldAliases returns the old "aliases" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldAliases(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAliases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAliases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAliases: %w", err)
	}
	return oldValue.Aliases, nil
}

// AppendAliases adds s to the "aliases" field.
func (m *BiomarkerStandardMutation) AppendAliases(s []string) {
	m.appendaliases = append(m.appendaliases, s...)
}

// AppendedAliases returns the list of values that were appended to the "aliases" field in this mutation.
func (m *BiomarkerStandardMutation) AppendedAliases() ([]string, bool) {
	if len(m.appendaliases) == 0 {
		return nil, false
	}
	return m.appendaliases, true
}

// ClearAliases clears the value of the "aliases" field.
func (m *BiomarkerStandardMutation) ClearAliases() {
	m.aliases = nil
	m.appendaliases = nil
	m.clearedFields[biomarkerstandard.FieldAliases] = struct{}{}
}

// AliasesCleared returns if the "aliases" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) AliasesCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldAliases]
	return ok
}

// ResetAliases resets all changes to the "aliases" field.
func (m *BiomarkerStandardMutation) ResetAliases() {
	m.aliases = nil
	m.appendaliases = nil
	delete(m.clearedFields, biomarkerstandard.FieldAliases)
}

// SetCanonicalUnit sets the "canonical_unit" field.
func (m *BiomarkerStandardMutation) SetCanonicalUnit(s string) {
	m.canonical_unit = &s
}

// CanonicalUnit returns the value of the "canonical_unit" field in the mutation.
func (m *BiomarkerStandardMutation) CanonicalUnit() (r string, exists bool) {
	v := m.canonical_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalUnit returns the old "canonical_unit" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldCanonicalUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalUnit: %w", err)
	}
	return oldValue.CanonicalUnit, nil
}

// ClearCanonicalUnit clears the value of the "canonical_unit" field.
func (m *BiomarkerStandardMutation) ClearCanonicalUnit() {
	m.canonical_unit = nil
	m.clearedFields[biomarkerstandard.FieldCanonicalUnit] = struct{}{}
}

// CanonicalUnitCleared returns if the "canonical_unit" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) CanonicalUnitCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldCanonicalUnit]
	return ok
}

// ResetCanonicalUnit resets all changes to the "canonical_unit" field.
func (m *BiomarkerStandardMutation) ResetCanonicalUnit() {
	m.canonical_unit = nil
	delete(m.clearedFields, biomarkerstandard.FieldCanonicalUnit)
}

// SetConversions sets the "conversions" field.
func (m *BiomarkerStandardMutation) SetConversions(value map[string]float64) {
	m.conversions = &value
}

// Conversions returns the value of the "conversions" field in the mutation.
func (m *BiomarkerStandardMutation) Conversions() (r map[string]float64, exists bool) {
	v := m.conversions
	if v == nil {
		return
	}
	return *v, true
}

// OldConversions returns the old "conversions" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldConversions(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversions: %w", err)
	}
	return oldValue.Conversions, nil
}

// ClearConversions clears the value of the "conversions" field.
func (m *BiomarkerStandardMutation) ClearConversions() {
	m.conversions = nil
	m.clearedFields[biomarkerstandard.FieldConversions] = struct{}{}
}

// ConversionsCleared returns if the "conversions" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) ConversionsCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldConversions]
	return ok
}

// ResetConversions resets all changes to the "conversions" field.
func (m *BiomarkerStandardMutation) ResetConversions() {
	m.conversions = nil
	delete(m.clearedFields, biomarkerstandard.FieldConversions)
}

// SetMaleMin sets the "male_min" field.
func (m *BiomarkerStandardMutation) SetMaleMin(f float64) {
	m.male_min = &f
	m.addmale_min = nil
}

// MaleMin returns the value of the "male_min" field in the mutation.
func (m *BiomarkerStandardMutation) MaleMin() (r float64, exists bool) {
	v := m.male_min
	if v == nil {
		return
	}
	return *v, true
}

// OldMaleMin returns the old "male_min" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldMaleMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaleMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaleMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaleMin: %w", err)
	}
	return oldValue.MaleMin, nil
}

// AddMaleMin adds f to the "male_min" field.
func (m *BiomarkerStandardMutation) AddMaleMin(f float64) {
	if m.addmale_min != nil {
		*m.addmale_min += f
	} else {
		m.addmale_min = &f
	}
}

// AddedMaleMin returns the value that was added to the "male_min" field in this mutation.
func (m *BiomarkerStandardMutation) AddedMaleMin() (r float64, exists bool) {
	v := m.addmale_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaleMin clears the value of the "male_min" field.
func (m *BiomarkerStandardMutation) ClearMaleMin() {
	m.male_min = nil
	m.addmale_min = nil
	m.clearedFields[biomarkerstandard.FieldMaleMin] = struct{}{}
}

// MaleMinCleared returns if the "male_min" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) MaleMinCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldMaleMin]
	return ok
}

// ResetMaleMin resets all changes to the "male_min" field.
func (m *BiomarkerStandardMutation) ResetMaleMin() {
	m.male_min = nil
	m.addmale_min = nil
	delete(m.clearedFields, biomarkerstandard.FieldMaleMin)
}

// SetMaleMax sets the "male_max" field.
func (m *BiomarkerStandardMutation) SetMaleMax(f float64) {
	m.male_max = &f
	m.addmale_max = nil
}

// MaleMax returns the value of the "male_max" field in the mutation.
func (m *BiomarkerStandardMutation) MaleMax() (r float64, exists bool) {
	v := m.male_max
	if v == nil {
		return
	}
	return *v, true
}

// OldMaleMax returns the old "male_max" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldMaleMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaleMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaleMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaleMax: %w", err)
	}
	return oldValue.MaleMax, nil
}

// AddMaleMax adds f to the "male_max" field.
func (m *BiomarkerStandardMutation) AddMaleMax(f float64) {
	if m.addmale_max != nil {
		*m.addmale_max += f
	} else {
		m.addmale_max = &f
	}
}

// AddedMaleMax returns the value that was added to the "male_max" field in this mutation.
func (m *BiomarkerStandardMutation) AddedMaleMax() (r float64, exists bool) {
	v := m.addmale_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaleMax clears the value of the "male_max" field.
func (m *BiomarkerStandardMutation) ClearMaleMax() {
	m.male_max = nil
	m.addmale_max = nil
	m.clearedFields[biomarkerstandard.FieldMaleMax] = struct{}{}
}

// MaleMaxCleared returns if the "male_max" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) MaleMaxCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldMaleMax]
	return ok
}

// ResetMaleMax resets all changes to the "male_max" field.
func (m *BiomarkerStandardMutation) ResetMaleMax() {
	m.male_max = nil
	m.addmale_max = nil
	delete(m.clearedFields, biomarkerstandard.FieldMaleMax)
}

// SetFemaleMin sets the "female_min" field.
func (m *BiomarkerStandardMutation) SetFemaleMin(f float64) {
	m.female_min = &f
	m.addfemale_min = nil
}

// FemaleMin returns the value of the "female_min" field in the mutation.
func (m *BiomarkerStandardMutation) FemaleMin() (r float64, exists bool) {
	v := m.female_min
	if v == nil {
		return
	}
	return *v, true
}

// OldFemaleMin returns the old "female_min" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldFemaleMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFemaleMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFemaleMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFemaleMin: %w", err)
	}
	return oldValue.FemaleMin, nil
}

// AddFemaleMin adds f to the "female_min" field.
func (m *BiomarkerStandardMutation) AddFemaleMin(f float64) {
	if m.addfemale_min != nil {
		*m.addfemale_min += f
	} else {
		m.addfemale_min = &f
	}
}

// AddedFemaleMin returns the value that was added to the "female_min" field in this mutation.
func (m *BiomarkerStandardMutation) AddedFemaleMin() (r float64, exists bool) {
	v := m.addfemale_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearFemaleMin clears the value of the "female_min" field.
func (m *BiomarkerStandardMutation) ClearFemaleMin() {
	m.female_min = nil
	m.addfemale_min = nil
	m.clearedFields[biomarkerstandard.FieldFemaleMin] = struct{}{}
}

// FemaleMinCleared returns if the "female_min" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) FemaleMinCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldFemaleMin]
	return ok
}

// ResetFemaleMin resets all changes to the "female_min" field.
func (m *BiomarkerStandardMutation) ResetFemaleMin() {
	m.female_min = nil
	m.addfemale_min = nil
	delete(m.clearedFields, biomarkerstandard.FieldFemaleMin)
}

// SetFemaleMax sets the "female_max" field.
func (m *BiomarkerStandardMutation) SetFemaleMax(f float64) {
	m.female_max = &f
	m.addfemale_max = nil
}

// FemaleMax returns the value of the "female_max" field in the mutation.
func (m *BiomarkerStandardMutation) FemaleMax() (r float64, exists bool) {
	v := m.female_max
	if v == nil {
		return
	}
	return *v, true
}

// OldFemaleMax returns the old "female_max" field's value of the BiomarkerStandard entity.
// If the BiomarkerStandard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BiomarkerStandardMutation) OldFemaleMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFemaleMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFemaleMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFemaleMax: %w", err)
	}
	return oldValue.FemaleMax, nil
}

// AddFemaleMax adds f to the "female_max" field.
func (m *BiomarkerStandardMutation) AddFemaleMax(f float64) {
	if m.addfemale_max != nil {
		*m.addfemale_max += f
	} else {
		m.addfemale_max = &f
	}
}

// AddedFemaleMax returns the value that was added to the "female_max" field in this mutation.
func (m *BiomarkerStandardMutation) AddedFemaleMax() (r float64, exists bool) {
	v := m.addfemale_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearFemaleMax clears the value of the "female_max" field.
func (m *BiomarkerStandardMutation) ClearFemaleMax() {
	m.female_max = nil
	m.addfemale_max = nil
	m.clearedFields[biomarkerstandard.FieldFemaleMax] = struct{}{}
}

// FemaleMaxCleared returns if the "female_max" field was cleared in this mutation.
func (m *BiomarkerStandardMutation) FemaleMaxCleared() bool {
	_, ok := m.clearedFields[biomarkerstandard.FieldFemaleMax]
	return ok
}

// ResetFemaleMax resets all changes to the "female_max" field.
func (m *BiomarkerStandardMutation) ResetFemaleMax() {
	m.female_max = nil
	m.addfemale_max = nil
	delete(m.clearedFields, biomarkerstandard.FieldFemaleMax)
}

// Where appends a list predicates to the BiomarkerStandardMutation builder.
func (m *BiomarkerStandardMutation) Where(ps ...predicate.BiomarkerStandard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BiomarkerStandardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BiomarkerStandardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BiomarkerStandard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BiomarkerStandardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BiomarkerStandardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BiomarkerStandard).
func (m *BiomarkerStandardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BiomarkerStandardMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.code != nil {
		fields = append(fields, biomarkerstandard.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, biomarkerstandard.FieldName)
	}
	if m.aliases != nil {
		fields = append(fields, biomarkerstandard.FieldAliases)
	}
	if m.canonical_unit != nil {
		fields = append(fields, biomarkerstandard.FieldCanonicalUnit)
	}
	if m.conversions != nil {
		fields = append(fields, biomarkerstandard.FieldConversions)
	}
	if m.male_min != nil {
		fields = append(fields, biomarkerstandard.FieldMaleMin)
	}
	if m.male_max != nil {
		fields = append(fields, biomarkerstandard.FieldMaleMax)
	}
	if m.female_min != nil {
		fields = append(fields, biomarkerstandard.FieldFemaleMin)
	}
	if m.female_max != nil {
		fields = append(fields, biomarkerstandard.FieldFemaleMax)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BiomarkerStandardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case biomarkerstandard.FieldCode:
		return m.Code()
	case biomarkerstandard.FieldName:
		return m.Name()
	case biomarkerstandard.FieldAliases:
		return m.Aliases()
	case biomarkerstandard.FieldCanonicalUnit:
		return m.CanonicalUnit()
	case biomarkerstandard.FieldConversions:
		return m.Conversions()
	case biomarkerstandard.FieldMaleMin:
		return m.MaleMin()
	case biomarkerstandard.FieldMaleMax:
		return m.MaleMax()
	case biomarkerstandard.FieldFemaleMin:
		return m.FemaleMin()
	case biomarkerstandard.FieldFemaleMax:
		return m.FemaleMax()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BiomarkerStandardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case biomarkerstandard.FieldCode:
		return m.OldCode(ctx)
	case biomarkerstandard.FieldName:
		return m.OldName(ctx)
	case biomarkerstandard.FieldAliases:
		return m.OldAliases(ctx)
	case biomarkerstandard.FieldCanonicalUnit:
		return m.OldCanonicalUnit(ctx)
	case biomarkerstandard.FieldConversions:
		return m.OldConversions(ctx)
	case biomarkerstandard.FieldMaleMin:
		return m.OldMaleMin(ctx)
	case biomarkerstandard.FieldMaleMax:
		return m.OldMaleMax(ctx)
	case biomarkerstandard.FieldFemaleMin:
		return m.OldFemaleMin(ctx)
	case biomarkerstandard.FieldFemaleMax:
		return m.OldFemaleMax(ctx)
	}
	return nil, fmt.Errorf("unknown BiomarkerStandard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiomarkerStandardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case biomarkerstandard.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case biomarkerstandard.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case biomarkerstandard.FieldAliases:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAliases(v)
		return nil
	case biomarkerstandard.FieldCanonicalUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalUnit(v)
		return nil
	case biomarkerstandard.FieldConversions:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversions(v)
		return nil
	case biomarkerstandard.FieldMaleMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaleMin(v)
		return nil
	case biomarkerstandard.FieldMaleMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaleMax(v)
		return nil
	case biomarkerstandard.FieldFemaleMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFemaleMin(v)
		return nil
	case biomarkerstandard.FieldFemaleMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFemaleMax(v)
		return nil
	}
	return fmt.Errorf("unknown BiomarkerStandard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BiomarkerStandardMutation) AddedFields() []string {
	var fields []string
	if m.addmale_min != nil {
		fields = append(fields, biomarkerstandard.FieldMaleMin)
	}
	if m.addmale_max != nil {
		fields = append(fields, biomarkerstandard.FieldMaleMax)
	}
	if m.addfemale_min != nil {
		fields = append(fields, biomarkerstandard.FieldFemaleMin)
	}
	if m.addfemale_max != nil {
		fields = append(fields, biomarkerstandard.FieldFemaleMax)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BiomarkerStandardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case biomarkerstandard.FieldMaleMin:
		return m.AddedMaleMin()
	case biomarkerstandard.FieldMaleMax:
		return m.AddedMaleMax()
	case biomarkerstandard.FieldFemaleMin:
		return m.AddedFemaleMin()
	case biomarkerstandard.FieldFemaleMax:
		return m.AddedFemaleMax()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BiomarkerStandardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case biomarkerstandard.FieldMaleMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaleMin(v)
		return nil
	case biomarkerstandard.FieldMaleMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaleMax(v)
		return nil
	case biomarkerstandard.FieldFemaleMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFemaleMin(v)
		return nil
	case biomarkerstandard.FieldFemaleMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFemaleMax(v)
		return nil
	}
	return fmt.Errorf("unknown BiomarkerStandard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BiomarkerStandardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(biomarkerstandard.FieldAliases) {
		fields = append(fields, biomarkerstandard.FieldAliases)
	}
	if m.FieldCleared(biomarkerstandard.FieldCanonicalUnit) {
		fields = append(fields, biomarkerstandard.FieldCanonicalUnit)
	}
	if m.FieldCleared(biomarkerstandard.FieldConversions) {
		fields = append(fields, biomarkerstandard.FieldConversions)
	}
	if m.FieldCleared(biomarkerstandard.FieldMaleMin) {
		fields = append(fields, biomarkerstandard.FieldMaleMin)
	}
	if m.FieldCleared(biomarkerstandard.FieldMaleMax) {
		fields = append(fields, biomarkerstandard.FieldMaleMax)
	}
	if m.FieldCleared(biomarkerstandard.FieldFemaleMin) {
		fields = append(fields, biomarkerstandard.FieldFemaleMin)
	}
	if m.FieldCleared(biomarkerstandard.FieldFemaleMax) {
		fields = append(fields, biomarkerstandard.FieldFemaleMax)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BiomarkerStandardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BiomarkerStandardMutation) ClearField(name string) error {
	switch name {
	case biomarkerstandard.FieldAliases:
		m.ClearAliases()
		return nil
	case biomarkerstandard.FieldCanonicalUnit:
		m.ClearCanonicalUnit()
		return nil
	case biomarkerstandard.FieldConversions:
		m.ClearConversions()
		return nil
	case biomarkerstandard.FieldMaleMin:
		m.ClearMaleMin()
		return nil
	case biomarkerstandard.FieldMaleMax:
		m.ClearMaleMax()
		return nil
	case biomarkerstandard.FieldFemaleMin:
		m.ClearFemaleMin()
		return nil
	case biomarkerstandard.FieldFemaleMax:
		m.ClearFemaleMax()
		return nil
	}
	return fmt.Errorf("unknown BiomarkerStandard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BiomarkerStandardMutation) ResetField(name string) error {
	switch name {
	case biomarkerstandard.FieldCode:
		m.ResetCode()
		return nil
	case biomarkerstandard.FieldName:
		m.ResetName()
		return nil
	case biomarkerstandard.FieldAliases:
		m.ResetAliases()
		return nil
	case biomarkerstandard.FieldCanonicalUnit:
		m.ResetCanonicalUnit()
		return nil
	case biomarkerstandard.FieldConversions:
		m.ResetConversions()
		return nil
	case biomarkerstandard.FieldMaleMin:
		m.ResetMaleMin()
		return nil
	case biomarkerstandard.FieldMaleMax:
		m.ResetMaleMax()
		return nil
	case biomarkerstandard.FieldFemaleMin:
		m.ResetFemaleMin()
		return nil
	case biomarkerstandard.FieldFemaleMax:
		m.ResetFemaleMax()
		return nil
	}
	return fmt.Errorf("unknown BiomarkerStandard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BiomarkerStandardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BiomarkerStandardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BiomarkerStandardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BiomarkerStandardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BiomarkerStandardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BiomarkerStandardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BiomarkerStandardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BiomarkerStandard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BiomarkerStandardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BiomarkerStandard edge %s", name)
}

// LabJobMutation represents an operation that mutates the LabJob nodes in the graph.
type LabJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	user_id         *string
	source_path     *string
	source_format   *string
	status          *string
	stage           *string
	current_page    *int
	addcurrent_page *int
	total_pages     *int
	addtotal_pages  *int
	created_at      *time.Time
	started_at      *time.Time
	completed_at    *time.Time
	error_message   *string
	result          *json.RawMessage
	appendresult    json.RawMessage
	trace           *json.RawMessage
	appendtrace     json.RawMessage
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*LabJob, error)
	predicates      []predicate.LabJob
}

var _ ent.Mutation = (*LabJobMutation)(nil)

// labjobOption allows management of the mutation configuration using functional options.
type labjobOption func(*LabJobMutation)

// newLabJobMutation creates new mutation for the LabJob entity.
func newLabJobMutation(c config, op Op, opts ...labjobOption) *LabJobMutation {
	m := &LabJobMutation{
		config:        c,
		op:            op,
		typ:           TypeLabJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabJobID sets the ID field of the mutation.
func withLabJobID(id uuid.UUID) labjobOption {
	return func(m *LabJobMutation) {
		var (
			err   error
			once  sync.Once
			value *LabJob
		)
		m.oldValue = func(ctx context.Context) (*LabJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabJob sets the old LabJob of the mutation.
func withLabJob(node *LabJob) labjobOption {
	return func(m *LabJobMutation) {
		m.oldValue = func(context.Context) (*LabJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabJob entities.
func (m *LabJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LabJobMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LabJobMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LabJobMutation) ResetUserID() {
	m.user_id = nil
}

// SetSourcePath sets the "source_path" field.
func (m *LabJobMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *LabJobMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *LabJobMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetSourceFormat sets the "source_format" field.
func (m *LabJobMutation) SetSourceFormat(s string) {
	m.source_format = &s
}

// SourceFormat returns the value of the "source_format" field in the mutation.
func (m *LabJobMutation) SourceFormat() (r string, exists bool) {
	v := m.source_format
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFormat returns the old "source_format" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldSourceFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFormat: %w", err)
	}
	return oldValue.SourceFormat, nil
}

// ResetSourceFormat resets all changes to the "source_format" field.
func (m *LabJobMutation) ResetSourceFormat() {
	m.source_format = nil
}

// SetStatus sets the "status" field.
func (m *LabJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LabJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LabJobMutation) ResetStatus() {
	m.status = nil
}

// SetStage sets the "stage" field.
func (m *LabJobMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *LabJobMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *LabJobMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[labjob.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *LabJobMutation) StageCleared() bool {
	_, ok := m.clearedFields[labjob.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *LabJobMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, labjob.FieldStage)
}

// SetCurrentPage sets the "current_page" field.
func (m *LabJobMutation) SetCurrentPage(i int) {
	m.current_page = &i
	m.addcurrent_page = nil
}

// CurrentPage returns the value of the "current_page" field in the mutation.
func (m *LabJobMutation) CurrentPage() (r int, exists bool) {
	v := m.current_page
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPage returns the old "current_page" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldCurrentPage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPage: %w", err)
	}
	return oldValue.CurrentPage, nil
}

// AddCurrentPage adds i to the "current_page" field.
func (m *LabJobMutation) AddCurrentPage(i int) {
	if m.addcurrent_page != nil {
		*m.addcurrent_page += i
	} else {
		m.addcurrent_page = &i
	}
}

// AddedCurrentPage returns the value that was added to the "current_page" field in this mutation.
func (m *LabJobMutation) AddedCurrentPage() (r int, exists bool) {
	v := m.addcurrent_page
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPage resets all changes to the "current_page" field.
func (m *LabJobMutation) ResetCurrentPage() {
	m.current_page = nil
	m.addcurrent_page = nil
}

// SetTotalPages sets the "total_pages" field.
func (m *LabJobMutation) SetTotalPages(i int) {
	m.total_pages = &i
	m.addtotal_pages = nil
}

// TotalPages returns the value of the "total_pages" field in the mutation.
func (m *LabJobMutation) TotalPages() (r int, exists bool) {
	v := m.total_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPages returns the old "total_pages" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldTotalPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPages: %w", err)
	}
	return oldValue.TotalPages, nil
}

// AddTotalPages adds i to the "total_pages" field.
func (m *LabJobMutation) AddTotalPages(i int) {
	if m.addtotal_pages != nil {
		*m.addtotal_pages += i
	} else {
		m.addtotal_pages = &i
	}
}

// AddedTotalPages returns the value that was added to the "total_pages" field in this mutation.
func (m *LabJobMutation) AddedTotalPages() (r int, exists bool) {
	v := m.addtotal_pages
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPages resets all changes to the "total_pages" field.
func (m *LabJobMutation) ResetTotalPages() {
	m.total_pages = nil
	m.addtotal_pages = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LabJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *LabJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LabJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *LabJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[labjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *LabJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[labjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LabJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, labjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *LabJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LabJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LabJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[labjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LabJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[labjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LabJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, labjob.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *LabJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LabJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LabJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[labjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LabJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[labjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LabJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, labjob.FieldErrorMessage)
}

// SetResult sets the "result" field.
func (m *LabJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *LabJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *LabJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *LabJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *LabJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[labjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *LabJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[labjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *LabJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, labjob.FieldResult)
}

// SetTrace sets the "trace" field.
func (m *LabJobMutation) SetTrace(jm json.RawMessage) {
	m.trace = &jm
	m.appendtrace = nil
}

// Trace returns the value of the "trace" field in the mutation.
func (m *LabJobMutation) Trace() (r json.RawMessage, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTrace returns the old "trace" field's value of the LabJob entity.
// If the LabJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabJobMutation) OldTrace(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrace: %w", err)
	}
	return oldValue.Trace, nil
}

// AppendTrace adds jm to the "trace" field.
func (m *LabJobMutation) AppendTrace(jm json.RawMessage) {
	m.appendtrace = append(m.appendtrace, jm...)
}

// AppendedTrace returns the list of values that were appended to the "trace" field in this mutation.
func (m *LabJobMutation) AppendedTrace() (json.RawMessage, bool) {
	if len(m.appendtrace) == 0 {
		return nil, false
	}
	return m.appendtrace, true
}

// ClearTrace clears the value of the "trace" field.
func (m *LabJobMutation) ClearTrace() {
	m.trace = nil
	m.appendtrace = nil
	m.clearedFields[labjob.FieldTrace] = struct{}{}
}

// TraceCleared returns if the "trace" field was cleared in this mutation.
func (m *LabJobMutation) TraceCleared() bool {
	_, ok := m.clearedFields[labjob.FieldTrace]
	return ok
}

// ResetTrace resets all changes to the "trace" field.
func (m *LabJobMutation) ResetTrace() {
	m.trace = nil
	m.appendtrace = nil
	delete(m.clearedFields, labjob.FieldTrace)
}

// Where appends a list predicates to the LabJobMutation builder.
func (m *LabJobMutation) Where(ps ...predicate.LabJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabJob).
func (m *LabJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.user_id != nil {
		fields = append(fields, labjob.FieldUserID)
	}
	if m.source_path != nil {
		fields = append(fields, labjob.FieldSourcePath)
	}
	if m.source_format != nil {
		fields = append(fields, labjob.FieldSourceFormat)
	}
	if m.status != nil {
		fields = append(fields, labjob.FieldStatus)
	}
	if m.stage != nil {
		fields = append(fields, labjob.FieldStage)
	}
	if m.current_page != nil {
		fields = append(fields, labjob.FieldCurrentPage)
	}
	if m.total_pages != nil {
		fields = append(fields, labjob.FieldTotalPages)
	}
	if m.created_at != nil {
		fields = append(fields, labjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, labjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, labjob.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, labjob.FieldErrorMessage)
	}
	if m.result != nil {
		fields = append(fields, labjob.FieldResult)
	}
	if m.trace != nil {
		fields = append(fields, labjob.FieldTrace)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labjob.FieldUserID:
		return m.UserID()
	case labjob.FieldSourcePath:
		return m.SourcePath()
	case labjob.FieldSourceFormat:
		return m.SourceFormat()
	case labjob.FieldStatus:
		return m.Status()
	case labjob.FieldStage:
		return m.Stage()
	case labjob.FieldCurrentPage:
		return m.CurrentPage()
	case labjob.FieldTotalPages:
		return m.TotalPages()
	case labjob.FieldCreatedAt:
		return m.CreatedAt()
	case labjob.FieldStartedAt:
		return m.StartedAt()
	case labjob.FieldCompletedAt:
		return m.CompletedAt()
	case labjob.FieldErrorMessage:
		return m.ErrorMessage()
	case labjob.FieldResult:
		return m.Result()
	case labjob.FieldTrace:
		return m.Trace()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labjob.FieldUserID:
		return m.OldUserID(ctx)
	case labjob.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case labjob.FieldSourceFormat:
		return m.OldSourceFormat(ctx)
	case labjob.FieldStatus:
		return m.OldStatus(ctx)
	case labjob.FieldStage:
		return m.OldStage(ctx)
	case labjob.FieldCurrentPage:
		return m.OldCurrentPage(ctx)
	case labjob.FieldTotalPages:
		return m.OldTotalPages(ctx)
	case labjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case labjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case labjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case labjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case labjob.FieldResult:
		return m.OldResult(ctx)
	case labjob.FieldTrace:
		return m.OldTrace(ctx)
	}
	return nil, fmt.Errorf("unknown LabJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labjob.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case labjob.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case labjob.FieldSourceFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFormat(v)
		return nil
	case labjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case labjob.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case labjob.FieldCurrentPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPage(v)
		return nil
	case labjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPages(v)
		return nil
	case labjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case labjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case labjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case labjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case labjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case labjob.FieldTrace:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrace(v)
		return nil
	}
	return fmt.Errorf("unknown LabJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabJobMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_page != nil {
		fields = append(fields, labjob.FieldCurrentPage)
	}
	if m.addtotal_pages != nil {
		fields = append(fields, labjob.FieldTotalPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labjob.FieldCurrentPage:
		return m.AddedCurrentPage()
	case labjob.FieldTotalPages:
		return m.AddedTotalPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labjob.FieldCurrentPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPage(v)
		return nil
	case labjob.FieldTotalPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPages(v)
		return nil
	}
	return fmt.Errorf("unknown LabJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(labjob.FieldStage) {
		fields = append(fields, labjob.FieldStage)
	}
	if m.FieldCleared(labjob.FieldStartedAt) {
		fields = append(fields, labjob.FieldStartedAt)
	}
	if m.FieldCleared(labjob.FieldCompletedAt) {
		fields = append(fields, labjob.FieldCompletedAt)
	}
	if m.FieldCleared(labjob.FieldErrorMessage) {
		fields = append(fields, labjob.FieldErrorMessage)
	}
	if m.FieldCleared(labjob.FieldResult) {
		fields = append(fields, labjob.FieldResult)
	}
	if m.FieldCleared(labjob.FieldTrace) {
		fields = append(fields, labjob.FieldTrace)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabJobMutation) ClearField(name string) error {
	switch name {
	case labjob.FieldStage:
		m.ClearStage()
		return nil
	case labjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case labjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case labjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case labjob.FieldResult:
		m.ClearResult()
		return nil
	case labjob.FieldTrace:
		m.ClearTrace()
		return nil
	}
	return fmt.Errorf("unknown LabJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabJobMutation) ResetField(name string) error {
	switch name {
	case labjob.FieldUserID:
		m.ResetUserID()
		return nil
	case labjob.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case labjob.FieldSourceFormat:
		m.ResetSourceFormat()
		return nil
	case labjob.FieldStatus:
		m.ResetStatus()
		return nil
	case labjob.FieldStage:
		m.ResetStage()
		return nil
	case labjob.FieldCurrentPage:
		m.ResetCurrentPage()
		return nil
	case labjob.FieldTotalPages:
		m.ResetTotalPages()
		return nil
	case labjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case labjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case labjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case labjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case labjob.FieldResult:
		m.ResetResult()
		return nil
	case labjob.FieldTrace:
		m.ResetTrace()
		return nil
	}
	return fmt.Errorf("unknown LabJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LabJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LabJob edge %s", name)
}
