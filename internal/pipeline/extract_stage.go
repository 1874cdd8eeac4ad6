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

// ExtractStage drives the first capability pass over one chunk. Extraction
// failures are fatal to the chunk: there is no fallback data source.
type ExtractStage struct {
	Capability llm.Capability
	Logger     *slog.Logger
}

func NewExtractStage(capability llm.Capability, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Capability: capability, Logger: logger}
}

// Run extracts structured data from one chunk. The returned raw bytes are the
// fence-stripped model payload, kept for the trace even on validation failure.
func (s *ExtractStage) Run(ctx context.Context, chunk pdf.Chunk, mime string, totalPages int) (llm.ExtractionPayload, []byte, error) {
	start := time.Now()
	schema := llm.BuildExtractionJSONSchema()

	raw, err := s.Capability.Invoke(ctx, llm.InvokeRequest{
		System:         llm.BuildExtractionSystemPrompt(),
		User:           llm.BuildExtractionUserPrompt(chunk.Page, totalPages),
		Attachment:     chunk.Data,
		AttachmentName: fmt.Sprintf("page-%d.pdf", chunk.Page),
		AttachmentMIME: mime,
		Schema:         schema,
	})
	if err != nil {
		s.Logger.Error("pipeline.extract.invoke_failed",
			"page", chunk.Page, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return llm.ExtractionPayload{}, nil, fmt.Errorf("extraction call: %w", err)
	}

	content := llm.StripCodeFences(raw)
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		cleaned, adjusted, sErr := llm.SanitizeDocumentJSON(content)
		if sErr != nil {
			s.Logger.Error("pipeline.extract.unparsable",
				"page", chunk.Page, "error", sErr)
			return llm.ExtractionPayload{}, content, fmt.Errorf("extraction output unparsable: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			s.Logger.Error("pipeline.extract.schema_validation_failed",
				"page", chunk.Page, "error", vErr)
			return llm.ExtractionPayload{}, content, fmt.Errorf("extraction schema validation: %w", vErr)
		}
		s.Logger.Warn("pipeline.extract.sanitize_applied",
			"page", chunk.Page, "adjusted", adjusted)
		content = cleaned
	}

	var out llm.ExtractionPayload
	if err := json.Unmarshal(content, &out); err != nil {
		return llm.ExtractionPayload{}, content, fmt.Errorf("unmarshal extraction: %w", err)
	}

	s.Logger.Info("pipeline.extract.ok",
		"page", chunk.Page,
		"biomarkers", len(out.Biomarkers),
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, content, nil
}
