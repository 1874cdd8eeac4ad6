package merge

import "strings"

// nameSynonyms collapses locale and spelling variants of the same analyte into
// one token. Applied in order, longest spellings first, so "haemoglobin" folds
// before "hemoglobin" would partially match.
var nameSynonyms = []struct{ from, to string }{
	{"haemoglobin", "hgb"},
	{"hemoglobin", "hgb"},
	{"cholesterol", "chol"},
	{"triglycerides", "trig"},
	{"triglyceride", "trig"},
	{"glucose", "gluc"},
	{"creatinine", "creat"},
	{"bilirubin", "bili"},
}

// NormalizeName lower-cases, collapses known synonyms, and strips
// non-alphanumeric characters.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, syn := range nameSynonyms {
		s = strings.ReplaceAll(s, syn.from, syn.to)
	}
	return stripNonAlnum(s, false)
}

// NormalizeUnit lower-cases and strips non-alphanumeric characters except '/'.
func NormalizeUnit(unit string) string {
	return stripNonAlnum(strings.ToLower(strings.TrimSpace(unit)), true)
}

// Key is the dedup key biomarkers collide on during merge.
func Key(name, unit string) string {
	return NormalizeName(name) + ":" + NormalizeUnit(unit)
}

func stripNonAlnum(s string, keepSlash bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case keepSlash && r == '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}
