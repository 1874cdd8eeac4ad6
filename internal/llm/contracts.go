package llm

import (
	"context"

	"github.com/biomarkerlab/labreports/internal/entity"
)

// InvokeRequest is one call against a document-understanding capability.
// Extraction and verification both go through this shape so providers can be
// swapped without touching orchestration.
type InvokeRequest struct {
	System         string
	User           string
	Attachment     []byte // chunk bytes, attached as a file part when non-nil
	AttachmentName string
	AttachmentMIME string
	Schema         map[string]any // JSON schema the response must satisfy
}

// Capability is the interface the pipeline depends on. Invoke returns the raw
// textual payload of the model response (possibly fenced), or an error for
// transport/timeout/empty-response failures.
type Capability interface {
	Invoke(ctx context.Context, req InvokeRequest) ([]byte, error)
}

// ExtractionPayload is the normalized shape we want from the extraction pass.
type ExtractionPayload struct {
	Patient    *entity.PatientInfo `json:"patient,omitempty"`
	Lab        *entity.LabInfo     `json:"lab,omitempty"`
	Biomarkers []entity.Biomarker  `json:"biomarkers"`
	Confidence float32             `json:"confidence,omitempty"`
}

// VerificationPayload is the shape we want from the verification pass: the
// corrected document plus what was changed and an explicit verdict.
type VerificationPayload struct {
	Patient            *entity.PatientInfo `json:"patient,omitempty"`
	Lab                *entity.LabInfo     `json:"lab,omitempty"`
	Biomarkers         []entity.Biomarker  `json:"biomarkers"`
	Corrections        []string            `json:"corrections"`
	VerificationPassed bool                `json:"verification_passed"`
}
