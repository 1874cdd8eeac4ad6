package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/progress"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	body := map[string]string{"error": err.Error()}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		body["code"] = appErr.Code
		body["error"] = appErr.Message
	}
	writeJSON(w, status, body)
}

// streamEvents writes the broker events as NDJSON until the stream closes or
// the client goes away. Each event is one JSON line, flushed immediately.
func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request, jobID uuid.UUID, ch <-chan progress.Event) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher, canFlush := w.(http.Flusher)

	enc := json.NewEncoder(w)
	for {
		select {
		case <-r.Context().Done():
			s.log.Debug("stream.client_gone", "job_id", jobID)
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			if err := enc.Encode(ev); err != nil {
				s.log.Warn("stream.write_failed", "job_id", jobID, "error", err)
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
	}
}

// contextWithoutCancel detaches the pipeline run from the request lifetime:
// a client dropping the connection must not abort the job.
func contextWithoutCancel(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
