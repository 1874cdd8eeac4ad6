package entity

import (
	"strconv"
	"strings"
)

// Biomarker is a single lab measurement as extracted from a page, before
// merging and standards matching. Value may be numeric ("95") or qualitative
// ("Negative").
type Biomarker struct {
	Name           string   `json:"name"`
	Value          string   `json:"value"`
	Unit           string   `json:"unit,omitempty"`
	SecondaryValue string   `json:"secondary_value,omitempty"`
	SecondaryUnit  string   `json:"secondary_unit,omitempty"`
	ReferenceMin   *float64 `json:"reference_min,omitempty"`
	ReferenceMax   *float64 `json:"reference_max,omitempty"`
	Flag           string   `json:"flag,omitempty"`
	StandardCode   string   `json:"standard_code,omitempty"` // hint from the extractor, if any
	Page           int      `json:"page,omitempty"`
}

// NumericValue parses the value as a float, tolerating thousands separators
// and surrounding whitespace. ok is false for qualitative values.
func (b Biomarker) NumericValue() (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(b.Value, ",", ""))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// PatientInfo is patient metadata extracted from the report. Fields may be
// partially populated or absent entirely.
type PatientInfo struct {
	Name        string `json:"name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	PatientID   string `json:"patient_id,omitempty"`
}

// LabInfo is laboratory metadata extracted from the report.
type LabInfo struct {
	LabName        string `json:"lab_name,omitempty"`
	CollectionDate string `json:"collection_date,omitempty"`
	ReportDate     string `json:"report_date,omitempty"`
	OrderingDoctor string `json:"ordering_doctor,omitempty"`
}

// ProcessedBiomarker is the final, persisted form of each biomarker. Created
// once by the standards matcher and never mutated; a re-run produces a new set.
type ProcessedBiomarker struct {
	Name           string   `json:"name"`
	Value          string   `json:"value"`
	Unit           string   `json:"unit,omitempty"`
	StandardCode   *string  `json:"standard_code,omitempty"`
	StandardName   *string  `json:"standard_name,omitempty"`
	ConvertedValue *float64 `json:"converted_value,omitempty"`
	ConvertedUnit  *string  `json:"converted_unit,omitempty"`
	ReferenceMin   *float64 `json:"reference_min,omitempty"`
	ReferenceMax   *float64 `json:"reference_max,omitempty"`
	Flag           *string  `json:"flag,omitempty"`
	Matched        bool     `json:"matched"`
	IsQualitative  bool     `json:"is_qualitative,omitempty"`
	// Conversion is one of "applied", "missing", "not_needed".
	Conversion       string   `json:"conversion"`
	SourcePages      []int    `json:"source_pages,omitempty"`
	ValidationIssues []string `json:"validation_issues,omitempty"`
}

// BiomarkerStandard is a canonical biomarker definition used to normalize
// free-text extraction output.
type BiomarkerStandard struct {
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	Aliases       []string           `json:"aliases,omitempty"`
	CanonicalUnit string             `json:"canonical_unit"`
	// Conversions maps a normalized source unit to the factor that converts a
	// value in that unit into the canonical unit.
	Conversions map[string]float64 `json:"conversions,omitempty"`
	MaleMin     *float64           `json:"male_min,omitempty"`
	MaleMax     *float64           `json:"male_max,omitempty"`
	FemaleMin   *float64           `json:"female_min,omitempty"`
	FemaleMax   *float64           `json:"female_max,omitempty"`
}
