package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/biomarkerlab/labreports/internal/entity"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestBiomarkersXLSX(t *testing.T) {
	result := &entity.JobResult{
		Biomarkers: []entity.ProcessedBiomarker{
			{
				Name:           "Glucose",
				Value:          "95",
				Unit:           "mg/dL",
				StandardCode:   strPtr("GLU"),
				StandardName:   strPtr("Glucose"),
				ConvertedValue: f64Ptr(95),
				ConvertedUnit:  strPtr("mg/dL"),
				ReferenceMin:   f64Ptr(70),
				ReferenceMax:   f64Ptr(99),
				Flag:           strPtr("normal"),
				Matched:        true,
				SourcePages:    []int{1, 2},
			},
			{
				Name:             "Obscure Analyte",
				Value:            "7",
				Unit:             "units",
				SourcePages:      []int{3},
				ValidationIssues: []string{"no matching standard"},
			},
		},
	}

	data, err := NewService(nil).BiomarkersXLSX(result)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Biomarkers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Biomarker", rows[0][0])
	assert.Equal(t, "Glucose", rows[1][0])
	assert.Equal(t, "GLU", rows[1][1])
	assert.Equal(t, "1, 2", rows[1][9])
	assert.Equal(t, "Obscure Analyte", rows[2][0])
}

func TestBiomarkersXLSXEmptyResult(t *testing.T) {
	data, err := NewService(nil).BiomarkersXLSX(&entity.JobResult{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
