package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hemoglobin", "hgb"},
		{"Haemoglobin", "hgb"},
		{"HGB", "hgb"},
		{"  Glucose Fasting ", "glucfasting"},
		{"Cholesterol, Total", "choltotal"},
		{"25-OH Vitamin D", "25ohvitamind"},
		{"Triglycerides", "trig"},
		{"Triglyceride", "trig"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeUnitKeepsSlash(t *testing.T) {
	assert.Equal(t, "mg/dl", NormalizeUnit("mg/dL"))
	assert.Equal(t, "mg/dl", NormalizeUnit(" MG / DL "))
	assert.Equal(t, "mmol/l", NormalizeUnit("mmol/L"))
	assert.Equal(t, "109/l", NormalizeUnit("10^9/L"))
}

func TestKeyCollapsesVariants(t *testing.T) {
	assert.Equal(t, Key("Hemoglobin", "g/dL"), Key("Haemoglobin", "G/DL"))
	assert.NotEqual(t, Key("Glucose", "mg/dL"), Key("Glucose", "mmol/L"))
}
