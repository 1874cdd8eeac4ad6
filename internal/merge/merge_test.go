package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/entity"
)

func bm(name, value, unit string) entity.Biomarker {
	return entity.Biomarker{Name: name, Value: value, Unit: unit}
}

func f64(v float64) *float64 { return &v }

func TestMergeDedupesSpellingVariants(t *testing.T) {
	pages := []PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Hemoglobin", "14.2", "g/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Haemoglobin", "14.2", "g/dL")}},
	}

	res := Merge(pages)

	require.Len(t, res.Biomarkers, 1)
	assert.Equal(t, "Hemoglobin", res.Biomarkers[0].Name)
	assert.Equal(t, 1, res.Biomarkers[0].Page)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Equal(t, []int{1, 2}, res.SourcePages[Key("Hemoglobin", "g/dL")])
	assert.Empty(t, res.Conflicts)
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	first := bm("Glucose", "95", "mg/dL")
	second := bm("Glucose", "95", "mg/dL")
	second.ReferenceMin = f64(70)
	second.ReferenceMax = f64(99)
	second.Flag = "normal"

	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{first}},
		{Page: 3, Biomarkers: []entity.Biomarker{second}},
	})

	require.Len(t, res.Biomarkers, 1)
	kept := res.Biomarkers[0]
	assert.Equal(t, "95", kept.Value)
	assert.Equal(t, 1, kept.Page)
	// duplicates fill gaps the canonical record was missing
	require.NotNil(t, kept.ReferenceMin)
	assert.Equal(t, 70.0, *kept.ReferenceMin)
	require.NotNil(t, kept.ReferenceMax)
	assert.Equal(t, 99.0, *kept.ReferenceMax)
	assert.Equal(t, "normal", kept.Flag)
}

func TestMergeGapFillNeverOverwrites(t *testing.T) {
	first := bm("Glucose", "95", "mg/dL")
	first.ReferenceMin = f64(65)
	second := bm("Glucose", "95", "mg/dL")
	second.ReferenceMin = f64(70)

	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{first}},
		{Page: 2, Biomarkers: []entity.Biomarker{second}},
	})

	require.Len(t, res.Biomarkers, 1)
	assert.Equal(t, 65.0, *res.Biomarkers[0].ReferenceMin)
}

func TestMergeConflictingNumericValues(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "105", "mg/dL")}},
	})

	require.Len(t, res.Biomarkers, 1)
	assert.Equal(t, "95", res.Biomarkers[0].Value)
	require.Len(t, res.Conflicts, 1)
	c := res.Conflicts[0]
	assert.Equal(t, "Glucose", c.BiomarkerName)
	assert.Equal(t, []int{1, 2}, c.SourcePages)
	assert.Equal(t, []string{"95", "105"}, c.Values)
	assert.Equal(t, "95", c.KeptValue)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "different values")
}

func TestMergeWithinToleranceIsNotAConflict(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95.00", "mg/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "95.005", "mg/dL")}},
	})

	assert.Empty(t, res.Conflicts)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1, res.DuplicatesRemoved)
}

func TestMergeThreeWayConflictStaysOneEntry(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "105", "mg/dL")}},
		{Page: 3, Biomarkers: []entity.Biomarker{bm("Glucose", "110", "mg/dL")}},
	})

	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, []int{1, 2, 3}, res.Conflicts[0].SourcePages)
	assert.Equal(t, []string{"95", "105", "110"}, res.Conflicts[0].Values)
}

func TestMergeQualitativeDuplicatesNeverConflict(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Urine Protein", "Negative", "")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Urine Protein", "Trace", "")}},
	})

	require.Len(t, res.Biomarkers, 1)
	assert.Equal(t, "Negative", res.Biomarkers[0].Value)
	assert.Empty(t, res.Conflicts)
}

func TestMergeOrderIndependence(t *testing.T) {
	a := PageResult{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL"), bm("Hemoglobin", "14.2", "g/dL")}}
	b := PageResult{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "105", "mg/dL")}}
	c := PageResult{Page: 3, Biomarkers: []entity.Biomarker{bm("TSH", "2.1", "mIU/L")}}

	forward := Merge([]PageResult{a, b, c})
	reversed := Merge([]PageResult{c, b, a})

	assert.Equal(t, forward.Biomarkers, reversed.Biomarkers)
	assert.Equal(t, forward.Conflicts, reversed.Conflicts)
	assert.Equal(t, forward.DuplicatesRemoved, reversed.DuplicatesRemoved)
	assert.Equal(t, forward.SourcePages, reversed.SourcePages)
}

func TestMergeIdempotent(t *testing.T) {
	once := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL"), bm("Hemoglobin", "14.2", "g/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL")}},
	})

	again := Merge([]PageResult{{Page: 1, Biomarkers: once.Biomarkers}})

	assert.Equal(t, len(once.Biomarkers), len(again.Biomarkers))
	assert.Equal(t, 0, again.DuplicatesRemoved)
	assert.Empty(t, again.Conflicts)
}

func TestMergeCorrectionsAndVerificationStatus(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 2, VerificationStatus: constants.VerificationCorrected, Corrections: []string{"fixed unit for Glucose"}},
		{Page: 1, VerificationStatus: constants.VerificationClean},
	})

	assert.Equal(t, constants.VerificationCorrected, res.VerificationStatus)
	require.Len(t, res.Corrections, 1)
	assert.Equal(t, "[Page 2] fixed unit for Glucose", res.Corrections[0])
}

func TestMergeWorstVerificationStatusWins(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, VerificationStatus: constants.VerificationCorrected},
		{Page: 2, VerificationStatus: constants.VerificationFailed},
		{Page: 3, VerificationStatus: constants.VerificationClean},
	})

	assert.Equal(t, constants.VerificationFailed, res.VerificationStatus)
}

func TestMergeEmptyInput(t *testing.T) {
	res := Merge(nil)

	assert.Empty(t, res.Biomarkers)
	assert.Equal(t, 0, res.DuplicatesRemoved)
	assert.Equal(t, constants.VerificationClean, res.VerificationStatus)
}

func TestMergeSameNameDifferentUnitStaysSeparate(t *testing.T) {
	res := Merge([]PageResult{
		{Page: 1, Biomarkers: []entity.Biomarker{bm("Glucose", "95", "mg/dL")}},
		{Page: 2, Biomarkers: []entity.Biomarker{bm("Glucose", "5.3", "mmol/L")}},
	})

	assert.Len(t, res.Biomarkers, 2)
	assert.Equal(t, 0, res.DuplicatesRemoved)
}
