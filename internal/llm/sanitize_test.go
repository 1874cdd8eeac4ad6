package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around braces", `Here is the result: {"a":1} hope it helps`, `{"a":1}`},
		{"leading whitespace", "  \n\t{\"a\":1}  ", `{"a":1}`},
		{"no json at all", "sorry, cannot do that", "sorry, cannot do that"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, string(StripCodeFences([]byte(tc.in))))
		})
	}
}

func TestSanitizeCoercesNumericValue(t *testing.T) {
	in := []byte(`{"biomarkers":[{"name":"Glucose","value":95.5,"unit":"mg/dL"}]}`)

	out, adjusted, err := SanitizeDocumentJSON(in)
	require.NoError(t, err)
	assert.Contains(t, adjusted, "value(number)")

	var doc struct {
		Biomarkers []struct {
			Value string `json:"value"`
		} `json:"biomarkers"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Biomarkers, 1)
	assert.Equal(t, "95.5", doc.Biomarkers[0].Value)
}

func TestSanitizeCoercesStringReferenceBounds(t *testing.T) {
	in := []byte(`{"biomarkers":[{"name":"Glucose","value":"95","reference_min":"70","reference_max":"99.0"}]}`)

	out, adjusted, err := SanitizeDocumentJSON(in)
	require.NoError(t, err)
	assert.Contains(t, adjusted, "reference_min(string)")

	var doc struct {
		Biomarkers []struct {
			Min float64 `json:"reference_min"`
			Max float64 `json:"reference_max"`
		} `json:"biomarkers"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, 70.0, doc.Biomarkers[0].Min)
	assert.Equal(t, 99.0, doc.Biomarkers[0].Max)
}

func TestSanitizeDropsIncompleteBiomarkers(t *testing.T) {
	in := []byte(`{"biomarkers":[
		{"name":"Glucose","value":"95"},
		{"name":"","value":"12"},
		{"name":"Hemoglobin"},
		{"value":"7"},
		"not an object",
		{"name":"TSH","value":null}
	]}`)

	out, _, err := SanitizeDocumentJSON(in)
	require.NoError(t, err)

	var doc struct {
		Biomarkers []map[string]any `json:"biomarkers"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Biomarkers, 1)
	assert.Equal(t, "Glucose", doc.Biomarkers[0]["name"])
}

func TestSanitizeDropsNullAndEmptyMetadata(t *testing.T) {
	in := []byte(`{"biomarkers":[],"patient":null,"lab":{"lab_name":"  "}}`)

	out, adjusted, err := SanitizeDocumentJSON(in)
	require.NoError(t, err)
	assert.Contains(t, adjusted, "patient(null)")
	assert.Contains(t, adjusted, "lab(empty)")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	_, hasPatient := doc["patient"]
	_, hasLab := doc["lab"]
	assert.False(t, hasPatient)
	assert.False(t, hasLab)
}

func TestSanitizeRejectsNonJSON(t *testing.T) {
	_, _, err := SanitizeDocumentJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestSanitizedExtractionValidates(t *testing.T) {
	schema := BuildExtractionJSONSchema()
	raw := []byte(`{"biomarkers":[{"name":"Glucose","value":95,"reference_min":"70"}],"patient":null}`)

	require.Error(t, ValidateJSONAgainstSchema(schema, raw))
	cleaned, _, err := SanitizeDocumentJSON(raw)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}
