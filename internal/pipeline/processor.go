package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/merge"
	"github.com/biomarkerlab/labreports/internal/pdf"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/standards"
	"github.com/biomarkerlab/labreports/internal/storage"
)

// JobStore is the slice of the job repository the orchestrator needs.
type JobStore interface {
	MarkProcessing(ctx context.Context, id uuid.UUID, stage string) error
	SetStage(ctx context.Context, id uuid.UUID, stage string) error
	SetProgress(ctx context.Context, id uuid.UUID, current, total int) error
	FinishSuccess(ctx context.Context, id uuid.UUID, status string, result, trace json.RawMessage) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string, trace json.RawMessage) error
}

// ChunkOutcome is one chunk's processing result. Transient: consumed by the
// merge step, persisted only as trace data.
type ChunkOutcome struct {
	Page               int
	Patient            *entity.PatientInfo
	Lab                *entity.LabInfo
	Biomarkers         []entity.Biomarker
	VerificationStatus constants.VerificationStatus
	Corrections        []string
	ExtractFailed      bool
	ExtractError       string
	ExtractMS          int64
	VerifyMS           int64
	RawPreview         string
}

// Config holds orchestration knobs.
type Config struct {
	// SinglePassPageLimit: documents at or below this many pages are processed
	// as one chunk.
	SinglePassPageLimit int
	// MaxWorkers bounds concurrent chunk processing. 1 = strictly sequential.
	MaxWorkers int
}

// Processor coordinates the whole run for one job: fetch, split, per-chunk
// extract+verify, merge, standards matching, and job-record/stream reporting.
type Processor struct {
	Logger   *slog.Logger
	Store    storage.Fetcher
	Splitter *pdf.Splitter
	Extract  *ExtractStage
	Verify   *VerifyStage
	Matcher  *standards.Matcher
	Jobs     JobStore
	Events   *progress.Broker
	Cfg      Config

	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func NewProcessor(logger *slog.Logger, store storage.Fetcher, splitter *pdf.Splitter,
	extract *ExtractStage, verify *VerifyStage, matcher *standards.Matcher,
	jobs JobStore, events *progress.Broker, cfg Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}
	return &Processor{
		Logger:   logger,
		Store:    store,
		Splitter: splitter,
		Extract:  extract,
		Verify:   verify,
		Matcher:  matcher,
		Jobs:     jobs,
		Events:   events,
		Cfg:      cfg,
		active:   make(map[uuid.UUID]struct{}),
	}
}

// Begin claims the single active run for a job. A second submission against a
// job already processing is rejected, never interleaved.
func (p *Processor) Begin(job *entity.LabJob) error {
	if constants.IsTerminal(constants.JobStatus(job.Status)) {
		return common.NewAppError("JOB_ERROR", "job is already terminal", common.ErrConflict)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, running := p.active[job.ID]; running {
		return common.NewAppError("JOB_ERROR", "job is already processing", common.ErrConflict)
	}
	p.active[job.ID] = struct{}{}
	p.Events.Open(job.ID)
	return nil
}

func (p *Processor) end(id uuid.UUID) {
	p.mu.Lock()
	delete(p.active, id)
	p.mu.Unlock()
}

// Run executes the pipeline for a claimed job. Callers must hold the claim
// from Begin. The caller's gender selects reference ranges; when empty, the
// extracted patient gender (if any) is used, defaulting to male.
func (p *Processor) Run(ctx context.Context, job *entity.LabJob, gender constants.Gender) {
	defer p.end(job.ID)
	trace := &entity.JobTrace{}
	stages := newStageReporter(ctx, p, job.ID, trace)

	chunks, mime, err := p.prepare(ctx, job, stages)
	if err != nil {
		p.fail(ctx, job.ID, err.Error(), trace)
		return
	}
	if len(chunks) == 0 {
		p.fail(ctx, job.ID, "document has no pages to process", trace)
		return
	}
	if len(chunks) > 1 {
		_ = p.Jobs.SetProgress(ctx, job.ID, 0, len(chunks))
	}

	outcomes := p.runChunks(ctx, job.ID, chunks, mime, stages)
	for _, oc := range outcomes {
		trace.Pages = append(trace.Pages, entity.PageTrace{
			Page:               oc.Page,
			ExtractMS:          oc.ExtractMS,
			VerifyMS:           oc.VerifyMS,
			BiomarkersFound:    len(oc.Biomarkers),
			VerificationStatus: string(oc.VerificationStatus),
			ExtractError:       oc.ExtractError,
			RawPreview:         oc.RawPreview,
		})
	}

	failed := 0
	for _, oc := range outcomes {
		if oc.ExtractFailed {
			failed++
		}
	}
	if failed == len(outcomes) {
		p.fail(ctx, job.ID, fmt.Sprintf("extraction failed for all %d pages", failed), trace)
		return
	}

	stages.report(constants.StagePostProcessing)

	pages := make([]merge.PageResult, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.ExtractFailed {
			continue
		}
		pages = append(pages, merge.PageResult{
			Page:               oc.Page,
			Biomarkers:         oc.Biomarkers,
			VerificationStatus: oc.VerificationStatus,
			Corrections:        oc.Corrections,
		})
	}
	merged := merge.Merge(pages)
	if len(merged.Biomarkers) == 0 {
		p.fail(ctx, job.ID, "no biomarkers could be extracted from the document", trace)
		return
	}

	patient, lab := firstMetadata(outcomes)
	if gender == "" && patient != nil {
		gender = parseGender(patient.Gender)
	}

	status := constants.JobStatusComplete
	if failed > 0 {
		status = constants.JobStatusPartial
	}

	processed, matchTraces, matchErr := p.Matcher.Process(merged, gender)
	if matchErr != nil {
		// post-processing failure: raw biomarkers are still usable
		p.Logger.Error("pipeline.match.failed", "job_id", job.ID, "error", matchErr)
		status = constants.JobStatusPartial
		processed = rawProcessed(merged)
		merged.Warnings = append(merged.Warnings,
			fmt.Sprintf("standards matching failed: %v; biomarkers kept unmatched", matchErr))
	} else {
		trace.Match = matchTraces
		if countMatched(processed) == 0 {
			status = constants.JobStatusPartial
			merged.Warnings = append(merged.Warnings, "no biomarker matched a known standard")
		}
	}

	result := entity.JobResult{
		Patient:            patient,
		Lab:                lab,
		Biomarkers:         processed,
		DuplicatesRemoved:  merged.DuplicatesRemoved,
		Conflicts:          merged.Conflicts,
		Warnings:           merged.Warnings,
		Corrections:        merged.Corrections,
		VerificationStatus: string(merged.VerificationStatus),
		PagesProcessed:     len(outcomes) - failed,
		PagesFailed:        failed,
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		p.fail(ctx, job.ID, fmt.Sprintf("encode result: %v", err), trace)
		return
	}
	if err := p.Jobs.FinishSuccess(ctx, job.ID, string(status), resultJSON, marshalTrace(trace)); err != nil {
		p.Logger.Error("pipeline.finish.persist_failed", "job_id", job.ID, "error", err)
	}
	p.Events.Complete(job.ID, result)
	p.Logger.Info("pipeline.run.done",
		"job_id", job.ID,
		"status", string(status),
		"biomarkers", len(processed),
		"duplicates_removed", merged.DuplicatesRemoved,
		"conflicts", len(merged.Conflicts),
		"pages_failed", failed)
}

// prepare covers fetching and splitting. Returns the chunk list and the
// attachment MIME type.
func (p *Processor) prepare(ctx context.Context, job *entity.LabJob, stages *stageReporter) ([]pdf.Chunk, string, error) {
	stages.report(constants.StageFetchingSource)
	data, err := p.Store.Fetch(ctx, job.SourcePath)
	if err != nil {
		return nil, "", fmt.Errorf("fetch source: %w", err)
	}

	ext := path.Ext(job.SourcePath)
	isPDF := strings.EqualFold(constants.MapExtToFormat(ext), "PDF")
	mime := constants.MapExtToMIME(ext)

	pageCount, err := p.Splitter.PageCount(data, isPDF)
	if err != nil {
		return nil, "", fmt.Errorf("page count: %w", err)
	}
	if isPDF && pageCount > p.Splitter.SinglePassPageLimit {
		stages.report(constants.StageSplittingPages)
	}
	chunks, err := p.Splitter.Split(data, pageCount, isPDF)
	if err != nil {
		return nil, "", fmt.Errorf("split document: %w", err)
	}
	return chunks, mime, nil
}

// runChunks processes all chunks with a bounded worker pool. Outcomes come
// back indexed by chunk position so merge inputs stay in page order no matter
// how scheduling interleaves.
func (p *Processor) runChunks(ctx context.Context, jobID uuid.UUID, chunks []pdf.Chunk, mime string, stages *stageReporter) []ChunkOutcome {
	outcomes := make([]ChunkOutcome, len(chunks))
	totalPages := 0
	for _, c := range chunks {
		totalPages += c.Pages
	}

	workers := p.Cfg.MaxWorkers
	if workers > len(chunks) {
		workers = len(chunks)
	}

	var (
		wg   sync.WaitGroup
		done sync.Mutex
	)
	completed := 0
	idxCh := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				outcomes[i] = p.processChunk(ctx, chunks[i], mime, totalPages, stages)
				if len(chunks) > 1 {
					done.Lock()
					completed++
					_ = p.Jobs.SetProgress(ctx, jobID, completed, len(chunks))
					done.Unlock()
				}
			}
		}()
	}
	for i := range chunks {
		idxCh <- i
	}
	close(idxCh)
	wg.Wait()
	return outcomes
}

// processChunk runs extraction then verification, strictly in sequence, for
// one chunk.
func (p *Processor) processChunk(ctx context.Context, chunk pdf.Chunk, mime string, totalPages int, stages *stageReporter) ChunkOutcome {
	oc := ChunkOutcome{Page: chunk.Page}

	stages.report(constants.StageExtracting)
	t0 := time.Now()
	extraction, raw, err := p.Extract.Run(ctx, chunk, mime, totalPages)
	oc.ExtractMS = time.Since(t0).Milliseconds()
	oc.RawPreview = preview(raw)
	if err != nil {
		oc.ExtractFailed = true
		oc.ExtractError = err.Error()
		oc.VerificationStatus = constants.VerificationFailed
		return oc
	}

	stages.report(constants.StageVerifying)
	t1 := time.Now()
	vres := p.Verify.Run(ctx, chunk, mime, totalPages, extraction)
	oc.VerifyMS = time.Since(t1).Milliseconds()

	oc.Patient = vres.Payload.Patient
	oc.Lab = vres.Payload.Lab
	oc.Biomarkers = vres.Payload.Biomarkers
	oc.Corrections = vres.Payload.Corrections
	switch {
	case !vres.Payload.VerificationPassed:
		oc.VerificationStatus = constants.VerificationFailed
	case len(vres.Payload.Corrections) > 0:
		oc.VerificationStatus = constants.VerificationCorrected
	default:
		oc.VerificationStatus = constants.VerificationClean
	}
	return oc
}

func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, message string, trace *entity.JobTrace) {
	p.Logger.Error("pipeline.run.failed", "job_id", jobID, "error", message)
	if err := p.Jobs.FinishFailure(ctx, jobID, message, marshalTrace(trace)); err != nil {
		p.Logger.Error("pipeline.fail.persist_failed", "job_id", jobID, "error", err)
	}
	p.Events.Error(jobID, message)
}

// stageReporter pushes stage transitions to the job record and the event
// stream, keeping them monotonic even when parallel chunk workers report out
// of order.
type stageReporter struct {
	ctx   context.Context
	p     *Processor
	jobID uuid.UUID
	trace *entity.JobTrace

	mu      sync.Mutex
	rank    int
	started bool
	last    time.Time
}

var stageOrder = map[constants.JobStage]int{
	constants.StageFetchingSource: 1,
	constants.StageSplittingPages: 2,
	constants.StageExtracting:     3,
	constants.StageVerifying:      4,
	constants.StagePostProcessing: 5,
}

func newStageReporter(ctx context.Context, p *Processor, jobID uuid.UUID, trace *entity.JobTrace) *stageReporter {
	return &stageReporter{ctx: ctx, p: p, jobID: jobID, trace: trace}
}

func (r *stageReporter) report(stage constants.JobStage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rank := stageOrder[stage]
	if rank <= r.rank {
		return
	}
	now := time.Now()
	if n := len(r.trace.Stages); n > 0 {
		r.trace.Stages[n-1].DurationMS = now.Sub(r.last).Milliseconds()
	}
	r.trace.Stages = append(r.trace.Stages, entity.StageTiming{Stage: string(stage), StartedAt: now})
	r.last = now
	r.rank = rank

	if !r.started {
		r.started = true
		_ = r.p.Jobs.MarkProcessing(r.ctx, r.jobID, string(stage))
	} else {
		_ = r.p.Jobs.SetStage(r.ctx, r.jobID, string(stage))
	}
	r.p.Events.Stage(r.jobID, stage)
}

func firstMetadata(outcomes []ChunkOutcome) (*entity.PatientInfo, *entity.LabInfo) {
	var patient *entity.PatientInfo
	var lab *entity.LabInfo
	for _, oc := range outcomes {
		if patient == nil && oc.Patient != nil {
			patient = oc.Patient
		}
		if lab == nil && oc.Lab != nil {
			lab = oc.Lab
		}
	}
	return patient, lab
}

// parseGender maps free-text gender onto a range selector.
func parseGender(s string) constants.Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female", "w", "woman":
		return constants.GenderFemale
	default:
		return constants.GenderMale
	}
}

// rawProcessed keeps merged biomarkers usable when the matcher itself errored.
func rawProcessed(merged merge.Result) []entity.ProcessedBiomarker {
	out := make([]entity.ProcessedBiomarker, 0, len(merged.Biomarkers))
	for _, bm := range merged.Biomarkers {
		_, numeric := bm.NumericValue()
		out = append(out, entity.ProcessedBiomarker{
			Name:             bm.Name,
			Value:            bm.Value,
			Unit:             bm.Unit,
			Matched:          false,
			IsQualitative:    !numeric,
			Conversion:       standards.ConversionNotNeeded,
			SourcePages:      merged.SourcePages[merge.Key(bm.Name, bm.Unit)],
			ValidationIssues: []string{"standards matching unavailable"},
		})
	}
	return out
}

func countMatched(processed []entity.ProcessedBiomarker) int {
	n := 0
	for _, pb := range processed {
		if pb.Matched {
			n++
		}
	}
	return n
}

func preview(raw []byte) string {
	const limit = 300
	s := string(raw)
	if len(s) > limit {
		return s[:limit] + "…"
	}
	return s
}

func marshalTrace(trace *entity.JobTrace) json.RawMessage {
	if n := len(trace.Stages); n > 0 && trace.Stages[n-1].DurationMS == 0 {
		trace.Stages[n-1].DurationMS = time.Since(trace.Stages[n-1].StartedAt).Milliseconds()
	}
	b, err := json.Marshal(trace)
	if err != nil {
		return nil
	}
	return b
}
