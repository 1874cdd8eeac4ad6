package constants

// JobStatus is the canonical status for rows in lab_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // submitted, not yet picked up
	JobStatusProcessing JobStatus = "processing" // pipeline running (see JobStage)
	JobStatusComplete   JobStatus = "complete"   // every page extracted and matching finished
	JobStatusPartial    JobStatus = "partial"    // usable biomarkers produced, but a stage degraded
	JobStatusFailed     JobStatus = "failed"     // terminal failure, no usable result
)

// JobStage is the processing sub-state. Only meaningful while status is processing.
type JobStage string

const (
	StageFetchingSource JobStage = "fetching_source"
	StageSplittingPages JobStage = "splitting_pages"
	StageExtracting     JobStage = "extracting"
	StageVerifying      JobStage = "verifying"
	StagePostProcessing JobStage = "post_processing"
)

// VerificationStatus classifies one page's (or the whole job's) verification outcome.
type VerificationStatus string

const (
	VerificationClean     VerificationStatus = "clean"
	VerificationCorrected VerificationStatus = "corrected"
	VerificationFailed    VerificationStatus = "failed"
)

// WorstVerification returns the worse of two statuses under failed > corrected > clean.
func WorstVerification(a, b VerificationStatus) VerificationStatus {
	rank := func(s VerificationStatus) int {
		switch s {
		case VerificationFailed:
			return 2
		case VerificationCorrected:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// Flag classifies a biomarker value against its reference range.
type Flag string

const (
	FlagHigh   Flag = "high"
	FlagLow    Flag = "low"
	FlagNormal Flag = "normal"
)

// Gender selects which reference range applies.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// JobStatuses holds the allowed values for the status field in LabJob.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusComplete),
	string(JobStatusPartial),
	string(JobStatusFailed),
}

// IsTerminal reports whether a status is final. Terminal jobs are never mutated;
// a re-run creates a fresh record.
func IsTerminal(s JobStatus) bool {
	return s == JobStatusComplete || s == JobStatusPartial || s == JobStatusFailed
}
