// Code generated by ent, DO NOT EDIT.

package biomarkerstandard

import (
	"entgo.io/ent/dialect/sql"
	"github.com/biomarkerlab/labreports/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldName, v))
}

// CanonicalUnit applies equality check predicate on the "canonical_unit" field. It's identical to CanonicalUnitEQ.
func CanonicalUnit(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldCanonicalUnit, v))
}

// MaleMin applies equality check predicate on the "male_min" field. It's identical to MaleMinEQ.
func MaleMin(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldMaleMin, v))
}

// MaleMax applies equality check predicate on the "male_max" field. It's identical to MaleMaxEQ.
func MaleMax(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldMaleMax, v))
}

// FemaleMin applies equality check predicate on the "female_min" field. It's identical to FemaleMinEQ.
func FemaleMin(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldFemaleMin, v))
}

// FemaleMax applies equality check predicate on the "female_max" field. It's identical to FemaleMaxEQ.
func FemaleMax(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldFemaleMax, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContainsFold(FieldName, v))
}

// AliasesIsNil applies the IsNil predicate on the "aliases" field.
func AliasesIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldAliases))
}

// AliasesNotNil applies the NotNil predicate on the "aliases" field.
func AliasesNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldAliases))
}

// CanonicalUnitEQ applies the EQ predicate on the "canonical_unit" field.
func CanonicalUnitEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldCanonicalUnit, v))
}

// CanonicalUnitNEQ applies the NEQ predicate on the "canonical_unit" field.
func CanonicalUnitNEQ(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldCanonicalUnit, v))
}

// CanonicalUnitIn applies the In predicate on the "canonical_unit" field.
func CanonicalUnitIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldCanonicalUnit, vs...))
}

// CanonicalUnitNotIn applies the NotIn predicate on the "canonical_unit" field.
func CanonicalUnitNotIn(vs ...string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldCanonicalUnit, vs...))
}

// CanonicalUnitGT applies the GT predicate on the "canonical_unit" field.
func CanonicalUnitGT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldCanonicalUnit, v))
}

// CanonicalUnitGTE applies the GTE predicate on the "canonical_unit" field.
func CanonicalUnitGTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldCanonicalUnit, v))
}

// CanonicalUnitLT applies the LT predicate on the "canonical_unit" field.
func CanonicalUnitLT(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldCanonicalUnit, v))
}

// CanonicalUnitLTE applies the LTE predicate on the "canonical_unit" field.
func CanonicalUnitLTE(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldCanonicalUnit, v))
}

// CanonicalUnitContains applies the Contains predicate on the "canonical_unit" field.
func CanonicalUnitContains(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContains(FieldCanonicalUnit, v))
}

// CanonicalUnitHasPrefix applies the HasPrefix predicate on the "canonical_unit" field.
func CanonicalUnitHasPrefix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasPrefix(FieldCanonicalUnit, v))
}

// CanonicalUnitHasSuffix applies the HasSuffix predicate on the "canonical_unit" field.
func CanonicalUnitHasSuffix(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldHasSuffix(FieldCanonicalUnit, v))
}

// CanonicalUnitIsNil applies the IsNil predicate on the "canonical_unit" field.
func CanonicalUnitIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldCanonicalUnit))
}

// CanonicalUnitNotNil applies the NotNil predicate on the "canonical_unit" field.
func CanonicalUnitNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldCanonicalUnit))
}

// CanonicalUnitEqualFold applies the EqualFold predicate on the "canonical_unit" field.
func CanonicalUnitEqualFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEqualFold(FieldCanonicalUnit, v))
}

// CanonicalUnitContainsFold applies the ContainsFold predicate on the "canonical_unit" field.
func CanonicalUnitContainsFold(v string) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldContainsFold(FieldCanonicalUnit, v))
}

// ConversionsIsNil applies the IsNil predicate on the "conversions" field.
func ConversionsIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldConversions))
}

// ConversionsNotNil applies the NotNil predicate on the "conversions" field.
func ConversionsNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldConversions))
}

// MaleMinEQ applies the EQ predicate on the "male_min" field.
func MaleMinEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldMaleMin, v))
}

// MaleMinNEQ applies the NEQ predicate on the "male_min" field.
func MaleMinNEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldMaleMin, v))
}

// MaleMinIn applies the In predicate on the "male_min" field.
func MaleMinIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldMaleMin, vs...))
}

// MaleMinNotIn applies the NotIn predicate on the "male_min" field.
func MaleMinNotIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldMaleMin, vs...))
}

// MaleMinGT applies the GT predicate on the "male_min" field.
func MaleMinGT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldMaleMin, v))
}

// MaleMinGTE applies the GTE predicate on the "male_min" field.
func MaleMinGTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldMaleMin, v))
}

// MaleMinLT applies the LT predicate on the "male_min" field.
func MaleMinLT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldMaleMin, v))
}

// MaleMinLTE applies the LTE predicate on the "male_min" field.
func MaleMinLTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldMaleMin, v))
}

// MaleMinIsNil applies the IsNil predicate on the "male_min" field.
func MaleMinIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldMaleMin))
}

// MaleMinNotNil applies the NotNil predicate on the "male_min" field.
func MaleMinNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldMaleMin))
}

// MaleMaxEQ applies the EQ predicate on the "male_max" field.
func MaleMaxEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldMaleMax, v))
}

// MaleMaxNEQ applies the NEQ predicate on the "male_max" field.
func MaleMaxNEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldMaleMax, v))
}

// MaleMaxIn applies the In predicate on the "male_max" field.
func MaleMaxIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldMaleMax, vs...))
}

// MaleMaxNotIn applies the NotIn predicate on the "male_max" field.
func MaleMaxNotIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldMaleMax, vs...))
}

// MaleMaxGT applies the GT predicate on the "male_max" field.
func MaleMaxGT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldMaleMax, v))
}

// MaleMaxGTE applies the GTE predicate on the "male_max" field.
func MaleMaxGTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldMaleMax, v))
}

// MaleMaxLT applies the LT predicate on the "male_max" field.
func MaleMaxLT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldMaleMax, v))
}

// MaleMaxLTE applies the LTE predicate on the "male_max" field.
func MaleMaxLTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldMaleMax, v))
}

// MaleMaxIsNil applies the IsNil predicate on the "male_max" field.
func MaleMaxIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldMaleMax))
}

// MaleMaxNotNil applies the NotNil predicate on the "male_max" field.
func MaleMaxNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldMaleMax))
}

// FemaleMinEQ applies the EQ predicate on the "female_min" field.
func FemaleMinEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldFemaleMin, v))
}

// FemaleMinNEQ applies the NEQ predicate on the "female_min" field.
func FemaleMinNEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldFemaleMin, v))
}

// FemaleMinIn applies the In predicate on the "female_min" field.
func FemaleMinIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldFemaleMin, vs...))
}

// FemaleMinNotIn applies the NotIn predicate on the "female_min" field.
func FemaleMinNotIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldFemaleMin, vs...))
}

// FemaleMinGT applies the GT predicate on the "female_min" field.
func FemaleMinGT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldFemaleMin, v))
}

// FemaleMinGTE applies the GTE predicate on the "female_min" field.
func FemaleMinGTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldFemaleMin, v))
}

// FemaleMinLT applies the LT predicate on the "female_min" field.
func FemaleMinLT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldFemaleMin, v))
}

// FemaleMinLTE applies the LTE predicate on the "female_min" field.
func FemaleMinLTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldFemaleMin, v))
}

// FemaleMinIsNil applies the IsNil predicate on the "female_min" field.
func FemaleMinIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldFemaleMin))
}

// FemaleMinNotNil applies the NotNil predicate on the "female_min" field.
func FemaleMinNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldFemaleMin))
}

// FemaleMaxEQ applies the EQ predicate on the "female_max" field.
func FemaleMaxEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldEQ(FieldFemaleMax, v))
}

// FemaleMaxNEQ applies the NEQ predicate on the "female_max" field.
func FemaleMaxNEQ(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNEQ(FieldFemaleMax, v))
}

// FemaleMaxIn applies the In predicate on the "female_max" field.
func FemaleMaxIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIn(FieldFemaleMax, vs...))
}

// FemaleMaxNotIn applies the NotIn predicate on the "female_max" field.
func FemaleMaxNotIn(vs ...float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotIn(FieldFemaleMax, vs...))
}

// FemaleMaxGT applies the GT predicate on the "female_max" field.
func FemaleMaxGT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGT(FieldFemaleMax, v))
}

// FemaleMaxGTE applies the GTE predicate on the "female_max" field.
func FemaleMaxGTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldGTE(FieldFemaleMax, v))
}

// FemaleMaxLT applies the LT predicate on the "female_max" field.
func FemaleMaxLT(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLT(FieldFemaleMax, v))
}

// FemaleMaxLTE applies the LTE predicate on the "female_max" field.
func FemaleMaxLTE(v float64) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldLTE(FieldFemaleMax, v))
}

// FemaleMaxIsNil applies the IsNil predicate on the "female_max" field.
func FemaleMaxIsNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldIsNull(FieldFemaleMax))
}

// FemaleMaxNotNil applies the NotNil predicate on the "female_max" field.
func FemaleMaxNotNil() predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.FieldNotNull(FieldFemaleMax))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BiomarkerStandard) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BiomarkerStandard) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BiomarkerStandard) predicate.BiomarkerStandard {
	return predicate.BiomarkerStandard(sql.NotPredicates(p))
}
