package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/pdf"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/standards"
)

type fakeFetcher struct {
	data []byte
	err  error
}

func (f *fakeFetcher) Fetch(context.Context, string) ([]byte, error) {
	return f.data, f.err
}

// recordingStore captures every job-store write the orchestrator makes.
type recordingStore struct {
	mu         sync.Mutex
	stages     []string
	status     string
	result     json.RawMessage
	trace      json.RawMessage
	failureMsg string
	progress   [][2]int
}

func (r *recordingStore) MarkProcessing(_ context.Context, _ uuid.UUID, stage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
	return nil
}

func (r *recordingStore) SetStage(_ context.Context, _ uuid.UUID, stage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
	return nil
}

func (r *recordingStore) SetProgress(_ context.Context, _ uuid.UUID, current, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, [2]int{current, total})
	return nil
}

func (r *recordingStore) FinishSuccess(_ context.Context, _ uuid.UUID, status string, result, trace json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	r.result = result
	r.trace = trace
	return nil
}

func (r *recordingStore) FinishFailure(_ context.Context, _ uuid.UUID, message string, trace json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = string(constants.JobStatusFailed)
	r.failureMsg = message
	r.trace = trace
	return nil
}

func newTestJob() *entity.LabJob {
	return &entity.LabJob{
		ID:         uuid.New(),
		UserID:     "u1",
		SourcePath: "u1/report.png",
		Status:     string(constants.JobStatusPending),
	}
}

func newTestProcessor(t *testing.T, store *recordingStore, extract, verify *fakeCapability, fetcher *fakeFetcher) (*Processor, *progress.Broker) {
	t.Helper()
	seed, err := standards.DefaultStandards()
	require.NoError(t, err)
	events := progress.NewBroker(nil)
	proc := NewProcessor(
		nil,
		fetcher,
		pdf.NewSplitter(3, nil),
		NewExtractStage(extract, nil),
		NewVerifyStage(verify, nil),
		standards.NewMatcher(standards.NewCatalog(seed), nil),
		store,
		events,
		Config{SinglePassPageLimit: 3, MaxWorkers: 1},
	)
	return proc, events
}

func runAndCollect(t *testing.T, proc *Processor, events *progress.Broker, job *entity.LabJob) []progress.Event {
	t.Helper()
	require.NoError(t, proc.Begin(job))
	ch, ok := events.Subscribe(job.ID)
	require.True(t, ok)

	proc.Run(context.Background(), job, "")

	var got []progress.Event
	for ev := range ch {
		got = append(got, ev)
	}
	return got
}

func TestRunCompleteJob(t *testing.T) {
	extract := &fakeCapability{responses: [][]byte{
		[]byte(`{"patient":{"name":"Jane Roe","gender":"female"},"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"},{"name":"Hemoglobin","value":"13.0","unit":"g/dL"}],"confidence":0.93}`),
	}}
	verify := &fakeCapability{responses: [][]byte{
		[]byte(`{"patient":{"name":"Jane Roe","gender":"female"},"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"},{"name":"Hemoglobin","value":"13.0","unit":"g/dL"}],"corrections":[],"verification_passed":true}`),
	}}
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store, extract, verify, &fakeFetcher{data: []byte("png bytes")})
	job := newTestJob()

	got := runAndCollect(t, proc, events, job)

	assert.Equal(t, string(constants.JobStatusComplete), store.status)
	assert.Empty(t, store.failureMsg)

	var result entity.JobResult
	require.NoError(t, json.Unmarshal(store.result, &result))
	assert.Len(t, result.Biomarkers, 2)
	assert.Equal(t, "clean", result.VerificationStatus)
	assert.Equal(t, 1, result.PagesProcessed)
	assert.Equal(t, 0, result.PagesFailed)
	require.NotNil(t, result.Patient)
	assert.Equal(t, "Jane Roe", result.Patient.Name)
	// gender comes from the extracted patient: 13.0 g/dL is normal for the
	// female range but low for the male one
	for _, pb := range result.Biomarkers {
		if pb.StandardCode != nil && *pb.StandardCode == "HGB" {
			require.NotNil(t, pb.Flag)
			assert.Equal(t, "normal", *pb.Flag)
		}
	}

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, progress.EventComplete, last.Type)
	for _, ev := range got[:len(got)-1] {
		assert.Equal(t, progress.EventStage, ev.Type)
	}
	// stage order is monotonic
	assert.Equal(t, []string{
		string(constants.StageFetchingSource),
		string(constants.StageExtracting),
		string(constants.StageVerifying),
		string(constants.StagePostProcessing),
	}, store.stages)
}

func TestRunFetchFailure(t *testing.T) {
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store,
		&fakeCapability{}, &fakeCapability{},
		&fakeFetcher{err: errors.New("no such document")})
	job := newTestJob()

	got := runAndCollect(t, proc, events, job)

	assert.Equal(t, string(constants.JobStatusFailed), store.status)
	assert.Contains(t, store.failureMsg, "fetch source")
	require.Len(t, got, 2) // fetching_source stage, then error
	assert.Equal(t, progress.EventError, got[1].Type)
}

func TestRunAllChunksFailedIsFailed(t *testing.T) {
	extract := &fakeCapability{errs: []error{errors.New("model unavailable")}}
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store, extract, &fakeCapability{}, &fakeFetcher{data: []byte("png")})
	job := newTestJob()

	got := runAndCollect(t, proc, events, job)

	assert.Equal(t, string(constants.JobStatusFailed), store.status)
	assert.Contains(t, store.failureMsg, "extraction failed")
	assert.Equal(t, progress.EventError, got[len(got)-1].Type)
	// extract ran, verify never did
	assert.Equal(t, 1, extract.calls)
}

func TestRunZeroBiomarkersIsFailed(t *testing.T) {
	extract := &fakeCapability{responses: [][]byte{[]byte(`{"biomarkers":[]}`)}}
	verify := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[],"corrections":[],"verification_passed":true}`),
	}}
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store, extract, verify, &fakeFetcher{data: []byte("png")})
	job := newTestJob()

	runAndCollect(t, proc, events, job)

	assert.Equal(t, string(constants.JobStatusFailed), store.status)
	assert.Contains(t, store.failureMsg, "no biomarkers")
}

func TestRunNoMatchedStandardIsPartial(t *testing.T) {
	extract := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Obscure Analyte","value":"7","unit":"units"}]}`),
	}}
	verify := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Obscure Analyte","value":"7","unit":"units"}],"corrections":[],"verification_passed":true}`),
	}}
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store, extract, verify, &fakeFetcher{data: []byte("png")})
	job := newTestJob()

	got := runAndCollect(t, proc, events, job)

	assert.Equal(t, string(constants.JobStatusPartial), store.status)
	assert.Equal(t, progress.EventComplete, got[len(got)-1].Type)

	var result entity.JobResult
	require.NoError(t, json.Unmarshal(store.result, &result))
	require.Len(t, result.Biomarkers, 1)
	assert.False(t, result.Biomarkers[0].Matched)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "no biomarker matched")
}

func TestRunDegradedVerificationKeepsExtraction(t *testing.T) {
	extract := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"}]}`),
	}}
	verify := &fakeCapability{errs: []error{errors.New("verifier down")}}
	store := &recordingStore{}
	proc, events := newTestProcessor(t, store, extract, verify, &fakeFetcher{data: []byte("png")})
	job := newTestJob()

	runAndCollect(t, proc, events, job)

	// a degraded verification never fails the job
	assert.Equal(t, string(constants.JobStatusComplete), store.status)

	var result entity.JobResult
	require.NoError(t, json.Unmarshal(store.result, &result))
	assert.Equal(t, "failed", result.VerificationStatus)
	require.Len(t, result.Biomarkers, 1)
	assert.Equal(t, "95", result.Biomarkers[0].Value)
	require.NotEmpty(t, result.Corrections)
	assert.Contains(t, result.Corrections[0], "verification unavailable")
}

func TestBeginRejectsSecondClaim(t *testing.T) {
	store := &recordingStore{}
	proc, _ := newTestProcessor(t, store, &fakeCapability{}, &fakeCapability{}, &fakeFetcher{})
	job := newTestJob()

	require.NoError(t, proc.Begin(job))
	err := proc.Begin(job)
	assert.Error(t, err)
}

func TestBeginRejectsTerminalJob(t *testing.T) {
	store := &recordingStore{}
	proc, _ := newTestProcessor(t, store, &fakeCapability{}, &fakeCapability{}, &fakeFetcher{})
	job := newTestJob()
	job.Status = string(constants.JobStatusComplete)

	assert.Error(t, proc.Begin(job))
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, constants.GenderFemale, parseGender("Female"))
	assert.Equal(t, constants.GenderFemale, parseGender(" f "))
	assert.Equal(t, constants.GenderMale, parseGender("male"))
	assert.Equal(t, constants.GenderMale, parseGender(""))
	assert.Equal(t, constants.GenderMale, parseGender("unknown"))
}
