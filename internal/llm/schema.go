package llm

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the capability as a structured output constraint
// and also use it locally to validate.
func BuildExtractionJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"patient":    patientProp(),
			"lab":        labProp(),
			"biomarkers": map[string]any{"type": "array", "items": biomarkerProp()},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"biomarkers"},
	}
}

// BuildVerificationJSONSchema is the extraction schema plus the corrections
// list and the explicit pass/fail verdict.
func BuildVerificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"patient":    patientProp(),
			"lab":        labProp(),
			"biomarkers": map[string]any{"type": "array", "items": biomarkerProp()},
			"corrections": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"verification_passed": map[string]any{"type": "boolean"},
		},
		"required": []string{"biomarkers", "corrections", "verification_passed"},
	}
}

func biomarkerProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":            map[string]any{"type": "string", "minLength": 1},
			"value":           map[string]any{"type": "string", "minLength": 1},
			"unit":            map[string]any{"type": "string"},
			"secondary_value": map[string]any{"type": "string"},
			"secondary_unit":  map[string]any{"type": "string"},
			"reference_min":   map[string]any{"type": "number"},
			"reference_max":   map[string]any{"type": "number"},
			"flag":            map[string]any{"type": "string"},
			"standard_code":   map[string]any{"type": "string"},
		},
		"required": []string{"name", "value"},
	}
}

func patientProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":          map[string]any{"type": "string"},
			"gender":        map[string]any{"type": "string"},
			"date_of_birth": map[string]any{"type": "string"},
			"patient_id":    map[string]any{"type": "string"},
		},
	}
}

func labProp() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"lab_name":        map[string]any{"type": "string"},
			"collection_date": map[string]any{"type": "string"},
			"report_date":     map[string]any{"type": "string"},
			"ordering_doctor": map[string]any{"type": "string"},
		},
	}
}
