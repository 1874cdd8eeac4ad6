package standards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/merge"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	seed, err := DefaultStandards()
	require.NoError(t, err)
	return NewMatcher(NewCatalog(seed), nil)
}

func mergedResult(bms ...entity.Biomarker) merge.Result {
	res := merge.Result{SourcePages: make(map[string][]int)}
	for _, bm := range bms {
		res.Biomarkers = append(res.Biomarkers, bm)
		res.SourcePages[merge.Key(bm.Name, bm.Unit)] = []int{1}
	}
	return res
}

func TestProcessMatchesByAlias(t *testing.T) {
	m := testMatcher(t)

	out, traces, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Blood Sugar", Value: "95", Unit: "mg/dL"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.True(t, pb.Matched)
	require.NotNil(t, pb.StandardCode)
	assert.Equal(t, "GLU", *pb.StandardCode)
	assert.Equal(t, ConversionNotNeeded, pb.Conversion)
	require.NotNil(t, pb.ConvertedValue)
	assert.Equal(t, 95.0, *pb.ConvertedValue)
	require.NotNil(t, pb.Flag)
	assert.Equal(t, "normal", *pb.Flag)
	assert.Equal(t, []int{1}, pb.SourcePages)
	assert.Equal(t, "alias", traces[0].MatchedBy)
}

func TestProcessCodeHintBeatsAlias(t *testing.T) {
	m := testMatcher(t)

	out, traces, err := m.Process(mergedResult(
		entity.Biomarker{Name: "some unrecognized label", Value: "14.0", Unit: "g/dL", StandardCode: "HGB"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.True(t, out[0].Matched)
	assert.Equal(t, "HGB", *out[0].StandardCode)
	assert.Equal(t, "code_hint", traces[0].MatchedBy)
}

func TestProcessUnitConversion(t *testing.T) {
	m := testMatcher(t)

	// 5.5 mmol/L glucose -> 99.1 mg/dL
	out, traces, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Glucose", Value: "5.5", Unit: "mmol/L"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.Equal(t, ConversionApplied, pb.Conversion)
	assert.Equal(t, ConversionApplied, traces[0].Conversion)
	require.NotNil(t, pb.ConvertedValue)
	assert.InDelta(t, 99.1, *pb.ConvertedValue, 0.01)
	require.NotNil(t, pb.ConvertedUnit)
	assert.Equal(t, "mg/dL", *pb.ConvertedUnit)
	// flagged against the canonical-unit range
	require.NotNil(t, pb.Flag)
	assert.Equal(t, "high", *pb.Flag)
}

func TestProcessMissingConversionSkipsFlagging(t *testing.T) {
	m := testMatcher(t)

	out, _, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Glucose", Value: "95", Unit: "furlongs"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.True(t, pb.Matched)
	assert.Equal(t, ConversionMissing, pb.Conversion)
	assert.Nil(t, pb.ConvertedValue)
	assert.Nil(t, pb.Flag)
	require.Len(t, pb.ValidationIssues, 1)
	assert.Contains(t, pb.ValidationIssues[0], "no conversion factor")
}

func TestProcessGenderSelectsRange(t *testing.T) {
	m := testMatcher(t)
	low := mergedResult(entity.Biomarker{Name: "Hemoglobin", Value: "12.5", Unit: "g/dL"})

	male, _, err := m.Process(low, constants.GenderMale)
	require.NoError(t, err)
	female, _, err := m.Process(low, constants.GenderFemale)
	require.NoError(t, err)

	// 12.5 g/dL is below the male floor of 13.5 but inside the female range
	assert.Equal(t, "low", *male[0].Flag)
	assert.Equal(t, "normal", *female[0].Flag)
}

func TestProcessQualitativeBypassesConversionAndFlag(t *testing.T) {
	m := testMatcher(t)

	out, _, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Urine Protein", Value: "Negative"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.True(t, pb.Matched)
	assert.True(t, pb.IsQualitative)
	assert.Nil(t, pb.ConvertedValue)
	assert.Nil(t, pb.Flag)
	assert.Empty(t, pb.ValidationIssues)
}

func TestProcessUnmatchedQualitativeStillFlaggedQualitative(t *testing.T) {
	m := testMatcher(t)

	out, _, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Obscure Dipstick Thing", Value: "Negative"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.False(t, pb.Matched)
	assert.True(t, pb.IsQualitative)
	assert.Nil(t, pb.ConvertedValue)
	assert.Nil(t, pb.Flag)
	require.Len(t, pb.ValidationIssues, 1)
	assert.Contains(t, pb.ValidationIssues[0], "no matching standard")
}

func TestProcessUnmatchedKeptRaw(t *testing.T) {
	m := testMatcher(t)

	out, _, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Obscure Analyte XYZ", Value: "42", Unit: "units"},
	), constants.GenderMale)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pb := out[0]
	assert.False(t, pb.Matched)
	assert.Equal(t, "42", pb.Value)
	require.Len(t, pb.ValidationIssues, 1)
	assert.Contains(t, pb.ValidationIssues[0], "no matching standard")
}

func TestProcessEmptyCatalogErrors(t *testing.T) {
	m := NewMatcher(NewCatalog(nil), nil)

	_, _, err := m.Process(mergedResult(
		entity.Biomarker{Name: "Glucose", Value: "95", Unit: "mg/dL"},
	), constants.GenderMale)
	assert.Error(t, err)
}

func TestCatalogAliasLookupIsNormalized(t *testing.T) {
	seed, err := DefaultStandards()
	require.NoError(t, err)
	c := NewCatalog(seed)

	for _, name := range []string{"hemoglobin", "HAEMOGLOBIN", " Hb ", "hgb"} {
		std, ok := c.ByName(name)
		require.True(t, ok, "lookup %q", name)
		assert.Equal(t, "HGB", std.Code)
	}
}
