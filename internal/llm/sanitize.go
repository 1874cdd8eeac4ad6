package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StripCodeFences removes markdown formatting fences the model may wrap its
// JSON payload in (```json ... ```). If no fence is found it falls back to the
// outermost object braces, and otherwise returns the trimmed input.
func StripCodeFences(raw []byte) []byte {
	s := bytes.TrimSpace(raw)

	if i := bytes.Index(s, []byte("```")); i >= 0 {
		rest := s[i+3:]
		// language tag on the fence line, e.g. ```json
		if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
			first := bytes.TrimSpace(rest[:nl])
			if len(first) <= 8 && !bytes.ContainsAny(first, "{}[]") {
				rest = rest[nl+1:]
			}
		}
		if j := bytes.Index(rest, []byte("```")); j >= 0 {
			rest = rest[:j]
		}
		return bytes.TrimSpace(rest)
	}

	start := bytes.IndexByte(s, '{')
	end := bytes.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return bytes.TrimSpace(s[start : end+1])
	}
	return s
}

// SanitizeDocumentJSON normalizes a raw extraction/verification document so the
// overall payload can still validate:
//   - Coerces numeric biomarker values -> string
//   - Coerces string reference bounds -> number
//   - Drops null/empty optionals and biomarkers missing name or value
//   - Trims obvious strings
//
// Returns the cleaned document and the list of adjustments made.
func SanitizeDocumentJSON(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var adjusted []string

	if raw, ok := m["biomarkers"].([]any); ok {
		cleaned := make([]any, 0, len(raw))
		for i, item := range raw {
			bm, ok := item.(map[string]any)
			if !ok {
				adjusted = append(adjusted, fmt.Sprintf("biomarkers[%d](type)", i))
				continue
			}
			coerceToString(bm, "value", &adjusted)
			coerceToString(bm, "secondary_value", &adjusted)
			coerceToNumber(bm, "reference_min", &adjusted)
			coerceToNumber(bm, "reference_max", &adjusted)
			for _, k := range []string{"name", "unit", "secondary_unit", "flag", "standard_code"} {
				trimOrDrop(bm, k, &adjusted)
			}
			name, _ := bm["name"].(string)
			value, _ := bm["value"].(string)
			if name == "" || value == "" {
				adjusted = append(adjusted, fmt.Sprintf("biomarkers[%d](incomplete)", i))
				continue
			}
			cleaned = append(cleaned, bm)
		}
		m["biomarkers"] = cleaned
	}

	for _, k := range []string{"patient", "lab"} {
		if sub, ok := m[k].(map[string]any); ok {
			empty := true
			for field := range sub {
				trimOrDrop(sub, field, &adjusted)
			}
			for range sub {
				empty = false
				break
			}
			if empty {
				delete(m, k)
				adjusted = append(adjusted, k+"(empty)")
			}
		} else if _, present := m[k]; present {
			delete(m, k)
			adjusted = append(adjusted, k+"(null)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, adjusted, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, adjusted, nil
}

func coerceToString(m map[string]any, k string, adjusted *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			delete(m, k)
			*adjusted = append(*adjusted, k+"(empty)")
		} else {
			m[k] = s
		}
	case float64:
		m[k] = strconv.FormatFloat(t, 'f', -1, 64)
		*adjusted = append(*adjusted, k+"(number)")
	case nil:
		delete(m, k)
		*adjusted = append(*adjusted, k+"(null)")
	default:
		delete(m, k)
		*adjusted = append(*adjusted, k+"(type)")
	}
}

func coerceToNumber(m map[string]any, k string, adjusted *[]string) {
	v, ok := m[k]
	if !ok {
		return
	}
	switch t := v.(type) {
	case float64:
		// already fine
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			m[k] = f
			*adjusted = append(*adjusted, k+"(string)")
		} else {
			delete(m, k)
			*adjusted = append(*adjusted, k+"(unparsable)")
		}
	case nil:
		delete(m, k)
		*adjusted = append(*adjusted, k+"(null)")
	default:
		delete(m, k)
		*adjusted = append(*adjusted, k+"(type)")
	}
}

func trimOrDrop(m map[string]any, k string, adjusted *[]string) {
	if v, ok := m[k].(string); ok {
		s := strings.TrimSpace(v)
		if s == "" {
			delete(m, k)
			*adjusted = append(*adjusted, k+"(empty)")
		} else {
			m[k] = s
		}
	} else if v, present := m[k]; present {
		if v == nil {
			delete(m, k)
			*adjusted = append(*adjusted, k+"(null)")
		}
	}
}
