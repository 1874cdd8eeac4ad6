package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LabJob represents one processing run of an uploaded lab report, for data
// transfer between layers. Created on submission, mutated only by the pipeline,
// immutable once terminal.
type LabJob struct {
	ID           uuid.UUID       `json:"id"`
	UserID       string          `json:"user_id"`
	SourcePath   string          `json:"source_path"`
	SourceFormat string          `json:"source_format"`
	Status       string          `json:"status"`
	Stage        *string         `json:"stage,omitempty"`
	CurrentPage  int             `json:"current_page"`
	TotalPages   int             `json:"total_pages"`
	CreatedAt    time.Time       `json:"created_at"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	Trace        json.RawMessage `json:"trace,omitempty"`
}

// JobResult is the extracted-result payload persisted on a terminal job.
type JobResult struct {
	Patient            *PatientInfo         `json:"patient,omitempty"`
	Lab                *LabInfo             `json:"lab,omitempty"`
	Biomarkers         []ProcessedBiomarker `json:"biomarkers"`
	DuplicatesRemoved  int                  `json:"duplicates_removed"`
	Conflicts          []ValueConflict      `json:"conflicts,omitempty"`
	Warnings           []string             `json:"warnings,omitempty"`
	Corrections        []string             `json:"corrections,omitempty"`
	VerificationStatus string               `json:"verification_status"`
	PagesProcessed     int                  `json:"pages_processed"`
	PagesFailed        int                  `json:"pages_failed"`
}

// ValueConflict records duplicate biomarkers whose values disagreed during merge.
type ValueConflict struct {
	BiomarkerName string   `json:"biomarker_name"`
	SourcePages   []int    `json:"source_pages"`
	Values        []string `json:"values"`
	KeptValue     string   `json:"kept_value"`
}

// JobTrace is the debug payload stored alongside the result. Never required
// for correctness.
type JobTrace struct {
	Stages []StageTiming `json:"stages,omitempty"`
	Pages  []PageTrace   `json:"pages,omitempty"`
	Match  []MatchTrace  `json:"match,omitempty"`
}

type StageTiming struct {
	Stage      string    `json:"stage"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
}

type PageTrace struct {
	Page               int    `json:"page"`
	ExtractMS          int64  `json:"extract_ms"`
	VerifyMS           int64  `json:"verify_ms"`
	BiomarkersFound    int    `json:"biomarkers_found"`
	VerificationStatus string `json:"verification_status"`
	ExtractError       string `json:"extract_error,omitempty"`
	RawPreview         string `json:"raw_preview,omitempty"`
}

type MatchTrace struct {
	Name         string `json:"name"`
	StandardCode string `json:"standard_code,omitempty"`
	MatchedBy    string `json:"matched_by,omitempty"` // "code_hint" | "alias" | ""
	Conversion   string `json:"conversion"`           // "applied" | "missing" | "not_needed"
}
