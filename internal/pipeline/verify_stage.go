package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/biomarkerlab/labreports/internal/llm"
	"github.com/biomarkerlab/labreports/internal/pdf"
)

// VerifyStage drives the second, independent capability pass. Verification is
// a quality check, not a required data source: every failure mode degrades to
// the unverified extraction instead of failing the chunk, so Run never returns
// an error.
type VerifyStage struct {
	Capability llm.Capability
	Logger     *slog.Logger
}

// VerifyResult is the single result type all degradation branches collapse
// into. Degraded carries why the original extraction was passed through.
type VerifyResult struct {
	Payload  llm.VerificationPayload
	Degraded bool
	Reason   string
}

func NewVerifyStage(capability llm.Capability, logger *slog.Logger) *VerifyStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyStage{Capability: capability, Logger: logger}
}

// Run verifies one chunk's extraction. Always returns a usable result.
func (s *VerifyStage) Run(ctx context.Context, chunk pdf.Chunk, mime string, totalPages int, extraction llm.ExtractionPayload) VerifyResult {
	start := time.Now()

	if s.Capability == nil {
		return s.degrade(chunk.Page, extraction, "verification capability not configured")
	}

	schema := llm.BuildVerificationJSONSchema()
	raw, err := s.Capability.Invoke(ctx, llm.InvokeRequest{
		System:         llm.BuildVerificationSystemPrompt(),
		User:           llm.BuildVerificationUserPrompt(chunk.Page, totalPages, extraction),
		Attachment:     chunk.Data,
		AttachmentName: fmt.Sprintf("page-%d.pdf", chunk.Page),
		AttachmentMIME: mime,
		Schema:         schema,
	})
	if err != nil {
		return s.degrade(chunk.Page, extraction, fmt.Sprintf("verification call failed: %v", err))
	}

	content := llm.StripCodeFences(raw)
	if len(content) == 0 {
		return s.degrade(chunk.Page, extraction, "verification returned empty output")
	}
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, _, sErr := llm.SanitizeDocumentJSON(content)
		if sErr != nil {
			return s.degrade(chunk.Page, extraction, fmt.Sprintf("verification output unparsable: %v", sErr))
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			return s.degrade(chunk.Page, extraction, fmt.Sprintf("verification output invalid: %v", vErr))
		}
		content = cleaned
	}

	var out llm.VerificationPayload
	if err := json.Unmarshal(content, &out); err != nil {
		return s.degrade(chunk.Page, extraction, fmt.Sprintf("verification decode failed: %v", err))
	}
	if len(out.Biomarkers) == 0 && len(extraction.Biomarkers) > 0 {
		// a verifier that dropped everything is not trustworthy
		return s.degrade(chunk.Page, extraction, "verification returned no biomarkers")
	}

	s.Logger.Info("pipeline.verify.ok",
		"page", chunk.Page,
		"passed", out.VerificationPassed,
		"corrections", len(out.Corrections),
		"elapsed_ms", time.Since(start).Milliseconds())
	return VerifyResult{Payload: out}
}

// degrade returns the original extraction unchanged, marked unverified, with a
// synthetic correction entry explaining why.
func (s *VerifyStage) degrade(page int, extraction llm.ExtractionPayload, reason string) VerifyResult {
	s.Logger.Warn("pipeline.verify.degraded", "page", page, "reason", reason)
	return VerifyResult{
		Payload: llm.VerificationPayload{
			Patient:            extraction.Patient,
			Lab:                extraction.Lab,
			Biomarkers:         extraction.Biomarkers,
			Corrections:        []string{"verification unavailable: " + reason},
			VerificationPassed: false,
		},
		Degraded: true,
		Reason:   reason,
	}
}
