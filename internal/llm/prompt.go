package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildExtractionSystemPrompt instructs the first pass: read the attached lab
// report and emit structured biomarker data.
func BuildExtractionSystemPrompt() string {
	parts := []string{
		"You are a medical lab report parser. Read the attached scanned lab report and return ONLY JSON that matches the JSON Schema provided.",
		"Extract every biomarker row you can see: name, result value, unit, and the printed reference range if one is shown.",
		"Keep values exactly as printed. Qualitative results (e.g. Negative, Trace, Positive) go in 'value' as text.",
		"If a result is printed in two unit systems, put the second one in 'secondary_value'/'secondary_unit'.",
		"Include patient and lab metadata only when clearly printed. Never guess.",
		"Report an overall 'confidence' between 0 and 1 for how legible the page was.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildExtractionUserPrompt names the chunk being processed.
func BuildExtractionUserPrompt(page, totalPages int) string {
	var b strings.Builder
	if totalPages > 1 {
		fmt.Fprintf(&b, "This is page %d of a %d-page lab report.", page, totalPages)
	} else {
		b.WriteString("This is a complete lab report document.")
	}
	b.WriteString(" Extract all biomarker measurements from it.")
	return b.String()
}

// BuildVerificationSystemPrompt instructs the second, independent pass: check
// the first extraction against the source and correct it.
func BuildVerificationSystemPrompt() string {
	parts := []string{
		"You are a quality checker for lab report extraction. You receive the attached source document and a JSON extraction produced by another system.",
		"Compare the extraction against the document. Fix transcription errors: wrong digits, swapped units, missed rows, invented rows.",
		"Return ONLY JSON matching the provided schema: the corrected document, a 'corrections' list with one short sentence per change you made, and 'verification_passed'.",
		"Set 'verification_passed' to false only when the source is unreadable or the extraction is unusable; an extraction you corrected still passes.",
		"If the extraction is already accurate, return it unchanged with an empty 'corrections' list.",
	}
	return strings.Join(parts, " ")
}

// BuildVerificationUserPrompt embeds the first-pass output for review.
func BuildVerificationUserPrompt(page, totalPages int, extraction ExtractionPayload) string {
	enc, err := json.MarshalIndent(extraction, "", "  ")
	if err != nil {
		enc = []byte("{}")
	}
	var b strings.Builder
	if totalPages > 1 {
		fmt.Fprintf(&b, "Verify this extraction of page %d of a %d-page lab report.\n\n", page, totalPages)
	} else {
		b.WriteString("Verify this extraction of the attached lab report.\n\n")
	}
	b.WriteString("Extraction to verify:\n")
	b.Write(enc)
	return b.String()
}
