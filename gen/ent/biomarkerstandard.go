// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/google/uuid"
)

// BiomarkerStandard is the model entity for the BiomarkerStandard schema.
type BiomarkerStandard struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Aliases holds the value of the "aliases" field.
	Aliases []string `json:"aliases,omitempty"`
	// CanonicalUnit holds the value of the "canonical_unit" field.
	CanonicalUnit string `json:"canonical_unit,omitempty"`
	// Conversions holds the value of the "conversions" field.
	Conversions map[string]float64 `json:"conversions,omitempty"`
	// MaleMin holds the value of the "male_min" field.
	MaleMin *float64 `json:"male_min,omitempty"`
	// MaleMax holds the value of the "male_max" field.
	MaleMax *float64 `json:"male_max,omitempty"`
	// FemaleMin holds the value of the "female_min" field.
	FemaleMin *float64 `json:"female_min,omitempty"`
	// FemaleMax holds the value of the "female_max" field.
	FemaleMax    *float64 `json:"female_max,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BiomarkerStandard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case biomarkerstandard.FieldAliases, biomarkerstandard.FieldConversions:
			values[i] = new([]byte)
		case biomarkerstandard.FieldMaleMin, biomarkerstandard.FieldMaleMax, biomarkerstandard.FieldFemaleMin, biomarkerstandard.FieldFemaleMax:
			values[i] = new(sql.NullFloat64)
		case biomarkerstandard.FieldCode, biomarkerstandard.FieldName, biomarkerstandard.FieldCanonicalUnit:
			values[i] = new(sql.NullString)
		case biomarkerstandard.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BiomarkerStandard fields.
func (_m *BiomarkerStandard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case biomarkerstandard.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case biomarkerstandard.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case biomarkerstandard.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case biomarkerstandard.FieldAliases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aliases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aliases); err != nil {
					return fmt.Errorf("unmarshal field aliases: %w", err)
				}
			}
		case biomarkerstandard.FieldCanonicalUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_unit", values[i])
			} else if value.Valid {
				_m.CanonicalUnit = value.String
			}
		case biomarkerstandard.FieldConversions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conversions); err != nil {
					return fmt.Errorf("unmarshal field conversions: %w", err)
				}
			}
		case biomarkerstandard.FieldMaleMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field male_min", values[i])
			} else if value.Valid {
				_m.MaleMin = new(float64)
				*_m.MaleMin = value.Float64
			}
		case biomarkerstandard.FieldMaleMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field male_max", values[i])
			} else if value.Valid {
				_m.MaleMax = new(float64)
				*_m.MaleMax = value.Float64
			}
		case biomarkerstandard.FieldFemaleMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field female_min", values[i])
			} else if value.Valid {
				_m.FemaleMin = new(float64)
				*_m.FemaleMin = value.Float64
			}
		case biomarkerstandard.FieldFemaleMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field female_max", values[i])
			} else if value.Valid {
				_m.FemaleMax = new(float64)
				*_m.FemaleMax = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BiomarkerStandard.
// This includes values selected through modifiers, order, etc.
func (_m *BiomarkerStandard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BiomarkerStandard.
// Note that you need to call BiomarkerStandard.Unwrap() before calling this method if this BiomarkerStandard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BiomarkerStandard) Update() *BiomarkerStandardUpdateOne {
	return NewBiomarkerStandardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BiomarkerStandard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BiomarkerStandard) Unwrap() *BiomarkerStandard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BiomarkerStandard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BiomarkerStandard) String() string {
	var builder strings.Builder
	builder.WriteString("BiomarkerStandard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("aliases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aliases))
	builder.WriteString(", ")
	builder.WriteString("canonical_unit=")
	builder.WriteString(_m.CanonicalUnit)
	builder.WriteString(", ")
	builder.WriteString("conversions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conversions))
	builder.WriteString(", ")
	if v := _m.MaleMin; v != nil {
		builder.WriteString("male_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaleMax; v != nil {
		builder.WriteString("male_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FemaleMin; v != nil {
		builder.WriteString("female_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FemaleMax; v != nil {
		builder.WriteString("female_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// BiomarkerStandards is a parsable slice of BiomarkerStandard.
type BiomarkerStandards []*BiomarkerStandard
