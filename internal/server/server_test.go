package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/export"
	"github.com/biomarkerlab/labreports/internal/llm"
	"github.com/biomarkerlab/labreports/internal/pdf"
	"github.com/biomarkerlab/labreports/internal/pipeline"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/standards"
)

type fakeJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.LabJob
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: make(map[uuid.UUID]*entity.LabJob)}
}

func (f *fakeJobs) Create(_ context.Context, userID, sourcePath, sourceFormat string) (*entity.LabJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := &entity.LabJob{
		ID:           uuid.New(),
		UserID:       userID,
		SourcePath:   sourcePath,
		SourceFormat: sourceFormat,
		Status:       string(constants.JobStatusPending),
		CreatedAt:    time.Now(),
	}
	f.jobs[job.ID] = job
	copied := *job
	return &copied, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.LabJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, common.NewAppError("JOB_ERROR", "job not found", common.ErrNotFound)
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobs) MarkProcessing(_ context.Context, id uuid.UUID, stage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Status = string(constants.JobStatusProcessing)
		job.Stage = &stage
	}
	return nil
}

func (f *fakeJobs) SetStage(_ context.Context, id uuid.UUID, stage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Stage = &stage
	}
	return nil
}

func (f *fakeJobs) SetProgress(_ context.Context, id uuid.UUID, current, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.CurrentPage = current
		job.TotalPages = total
	}
	return nil
}

func (f *fakeJobs) FinishSuccess(_ context.Context, id uuid.UUID, status string, result, trace json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Status = status
		job.Stage = nil
		job.Result = result
		job.Trace = trace
	}
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, id uuid.UUID, message string, trace json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.jobs[id]; ok {
		job.Status = string(constants.JobStatusFailed)
		job.Stage = nil
		job.ErrorMessage = &message
		job.Trace = trace
	}
	return nil
}

type fakeStandards struct{}

func (fakeStandards) ListAll(context.Context) ([]entity.BiomarkerStandard, error) {
	return []entity.BiomarkerStandard{
		{Code: "GLU", Name: "Glucose", CanonicalUnit: "mg/dL"},
	}, nil
}

func (fakeStandards) SeedMissing(context.Context, []entity.BiomarkerStandard) (int, error) {
	return 0, nil
}

type staticCapability struct{ payload string }

func (s staticCapability) Invoke(context.Context, llm.InvokeRequest) ([]byte, error) {
	return []byte(s.payload), nil
}

type staticFetcher struct{}

func (staticFetcher) Fetch(context.Context, string) ([]byte, error) {
	return []byte("image bytes"), nil
}

func newTestServer(t *testing.T, jobs *fakeJobs) *Server {
	t.Helper()
	seed, err := standards.DefaultStandards()
	require.NoError(t, err)

	events := progress.NewBroker(nil)
	proc := pipeline.NewProcessor(
		nil,
		staticFetcher{},
		pdf.NewSplitter(3, nil),
		pipeline.NewExtractStage(staticCapability{
			payload: `{"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"}]}`,
		}, nil),
		pipeline.NewVerifyStage(staticCapability{
			payload: `{"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"}],"corrections":[],"verification_passed":true}`,
		}, nil),
		standards.NewMatcher(standards.NewCatalog(seed), nil),
		jobs,
		events,
		pipeline.Config{SinglePassPageLimit: 3, MaxWorkers: 1},
	)
	return New(nil, ":0", jobs, fakeStandards{}, proc, events, export.NewService(nil))
}

func doRequest(s *Server, method, target, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	s.httpSrv.Handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateJobRequiresUserHeader(t *testing.T) {
	s := newTestServer(t, newFakeJobs())

	rec := doRequest(s, http.MethodPost, "/v1/jobs", "", CreateJobRequest{SourcePath: "u1/r.png"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJobRejectsForeignPath(t *testing.T) {
	s := newTestServer(t, newFakeJobs())

	rec := doRequest(s, http.MethodPost, "/v1/jobs", "u1", CreateJobRequest{SourcePath: "u2/r.png"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJobRejectsUnsupportedExtension(t *testing.T) {
	s := newTestServer(t, newFakeJobs())

	rec := doRequest(s, http.MethodPost, "/v1/jobs", "u1", CreateJobRequest{SourcePath: "u1/r.docx"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateJobStreamedRunsToCompletion(t *testing.T) {
	jobs := newFakeJobs()
	s := newTestServer(t, jobs)

	rec := doRequest(s, http.MethodPost, "/v1/jobs?stream=1", "u1", CreateJobRequest{SourcePath: "u1/r.png"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-ndjson", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.NotEmpty(t, lines)
	var last progress.Event
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, progress.EventComplete, last.Type)

	// the job record reached a terminal state too
	jobs.mu.Lock()
	defer jobs.mu.Unlock()
	require.Len(t, jobs.jobs, 1)
	for _, job := range jobs.jobs {
		assert.Equal(t, string(constants.JobStatusComplete), job.Status)
		assert.NotEmpty(t, job.Result)
	}
}

func TestCreateJobAcceptedWithoutStream(t *testing.T) {
	jobs := newFakeJobs()
	s := newTestServer(t, jobs)

	rec := doRequest(s, http.MethodPost, "/v1/jobs", "u1", CreateJobRequest{SourcePath: "u1/r.png"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	var job entity.LabJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "u1", job.UserID)

	// poll until the background run lands
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := jobs.GetByID(context.Background(), job.ID)
		require.NoError(t, err)
		if constants.IsTerminal(constants.JobStatus(got.Status)) {
			assert.Equal(t, string(constants.JobStatusComplete), got.Status)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("job never reached a terminal state")
}

func TestGetJobHidesForeignJobs(t *testing.T) {
	jobs := newFakeJobs()
	s := newTestServer(t, jobs)
	job, err := jobs.Create(context.Background(), "u1", "u1/r.png", "IMAGE")
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/v1/jobs/"+job.ID.String(), "u2", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJobEventsConflictWhenNoActiveStream(t *testing.T) {
	jobs := newFakeJobs()
	s := newTestServer(t, jobs)
	job, err := jobs.Create(context.Background(), "u1", "u1/r.png", "IMAGE")
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/v1/jobs/"+job.ID.String()+"/events", "u1", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListStandards(t *testing.T) {
	s := newTestServer(t, newFakeJobs())

	rec := doRequest(s, http.MethodGet, "/v1/standards", "u1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count     int                        `json:"count"`
		Standards []entity.BiomarkerStandard `json:"standards"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "GLU", body.Standards[0].Code)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, newFakeJobs())

	rec := doRequest(s, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
