// Code generated by ent, DO NOT EDIT.

package biomarkerstandard

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the biomarkerstandard type in the database.
	Label = "biomarker_standard"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAliases holds the string denoting the aliases field in the database.
	FieldAliases = "aliases"
	// FieldCanonicalUnit holds the string denoting the canonical_unit field in the database.
	FieldCanonicalUnit = "canonical_unit"
	// FieldConversions holds the string denoting the conversions field in the database.
	FieldConversions = "conversions"
	// FieldMaleMin holds the string denoting the male_min field in the database.
	FieldMaleMin = "male_min"
	// FieldMaleMax holds the string denoting the male_max field in the database.
	FieldMaleMax = "male_max"
	// FieldFemaleMin holds the string denoting the female_min field in the database.
	FieldFemaleMin = "female_min"
	// FieldFemaleMax holds the string denoting the female_max field in the database.
	FieldFemaleMax = "female_max"
	// Table holds the table name of the biomarkerstandard in the database.
	Table = "biomarker_standard"
)

// Columns holds all SQL columns for biomarkerstandard fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldName,
	FieldAliases,
	FieldCanonicalUnit,
	FieldConversions,
	FieldMaleMin,
	FieldMaleMax,
	FieldFemaleMin,
	FieldFemaleMax,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BiomarkerStandard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCanonicalUnit orders the results by the canonical_unit field.
func ByCanonicalUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalUnit, opts...).ToFunc()
}

// ByMaleMin orders the results by the male_min field.
func ByMaleMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaleMin, opts...).ToFunc()
}

// ByMaleMax orders the results by the male_max field.
func ByMaleMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaleMax, opts...).ToFunc()
}

// ByFemaleMin orders the results by the female_min field.
func ByFemaleMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFemaleMin, opts...).ToFunc()
}

// ByFemaleMax orders the results by the female_max field.
func ByFemaleMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFemaleMax, opts...).ToFunc()
}
