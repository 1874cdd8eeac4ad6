package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
)

// CreateJobRequest is the body for POST /v1/jobs.
type CreateJobRequest struct {
	SourcePath string `json:"source_path"`
	// Gender selects reference ranges; optional, falls back to the gender
	// extracted from the report.
	Gender string `json:"gender,omitempty"`
}

// handleCreateJob registers a job and launches its run. With ?stream=1 the
// response is an NDJSON event stream that follows the run to its terminal
// event; otherwise the created job record is returned immediately.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if userID == "" {
		writeError(w, common.NewAppError("AUTH_ERROR", "missing X-User-ID header", common.ErrUnauthorized))
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("VALIDATION_ERROR", "invalid request body", common.ErrInvalidInput))
		return
	}
	if err := common.ValidateOwnerPath(userID, req.SourcePath); err != nil {
		writeError(w, err)
		return
	}
	format := constants.MapExtToFormat(pathExt(req.SourcePath))
	if format == "" {
		writeError(w, common.NewAppError("VALIDATION_ERROR",
			"unsupported file type, expected pdf, jpg, jpeg or png", common.ErrInvalidInput))
		return
	}

	job, err := s.jobs.Create(r.Context(), userID, req.SourcePath, format)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.proc.Begin(job); err != nil {
		writeError(w, err)
		return
	}
	s.log.Info("job.submitted", "job_id", job.ID, "user_id", userID, "source_path", req.SourcePath)

	gender := parseRequestGender(req.Gender)

	if r.URL.Query().Get("stream") == "1" {
		// subscribe before the run starts so no event is missed
		ch, ok := s.events.Subscribe(job.ID)
		if !ok {
			writeError(w, common.NewAppError("STREAM_ERROR", "event stream unavailable", common.ErrInternal))
			return
		}
		go s.proc.Run(contextWithoutCancel(r), job, gender)
		s.streamEvents(w, r, job.ID, ch)
		return
	}

	go s.proc.Run(contextWithoutCancel(r), job, gender)
	writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.authorizedJob(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleJobEvents attaches to the event stream of an in-flight job. Terminal
// jobs have no stream to attach to; callers get 409 and should fetch the job
// record instead.
func (s *Server) handleJobEvents(w http.ResponseWriter, r *http.Request) {
	job, err := s.authorizedJob(r)
	if err != nil {
		writeError(w, err)
		return
	}
	ch, ok := s.events.Subscribe(job.ID)
	if !ok {
		writeError(w, common.NewAppError("STREAM_ERROR",
			"job has no active event stream", common.ErrConflict))
		return
	}
	s.streamEvents(w, r, job.ID, ch)
}

func (s *Server) handleListStandards(w http.ResponseWriter, r *http.Request) {
	list, err := s.standards.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standards": list, "count": len(list)})
}

// authorizedJob loads the job from the path id and enforces ownership. A job
// belonging to another user reads as not found.
func (s *Server) authorizedJob(r *http.Request) (*entity.LabJob, error) {
	userID := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if userID == "" {
		return nil, common.NewAppError("AUTH_ERROR", "missing X-User-ID header", common.ErrUnauthorized)
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, common.NewAppError("VALIDATION_ERROR", "invalid job id", common.ErrInvalidInput)
	}
	job, err := s.jobs.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, common.NewAppError("JOB_ERROR", "job not found", common.ErrNotFound)
	}
	return job, nil
}

func pathExt(p string) string {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[i:]
	}
	return ""
}

func parseRequestGender(s string) constants.Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return constants.GenderMale
	case "female", "f":
		return constants.GenderFemale
	default:
		return ""
	}
}
