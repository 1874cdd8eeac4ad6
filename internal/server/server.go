package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/biomarkerlab/labreports/internal/export"
	"github.com/biomarkerlab/labreports/internal/pipeline"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/repository"
)

// Server is the HTTP front for job submission, status polling, and event
// streaming.
type Server struct {
	log       *slog.Logger
	jobs      repository.LabJobRepository
	standards repository.BiomarkerStandardRepository
	proc      *pipeline.Processor
	events    *progress.Broker
	exporter  *export.Service
	httpSrv   *http.Server
}

func New(logger *slog.Logger, addr string, jobs repository.LabJobRepository,
	standards repository.BiomarkerStandardRepository, proc *pipeline.Processor,
	events *progress.Broker, exporter *export.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:       logger,
		jobs:      jobs,
		standards: standards,
		proc:      proc,
		events:    events,
		exporter:  exporter,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/jobs", s.handleCreateJob)
		r.Get("/jobs/{id}", s.handleGetJob)
		r.Get("/jobs/{id}/events", s.handleJobEvents)
		r.Get("/jobs/{id}/export", s.handleExportJob)
		r.Get("/standards", s.handleListStandards)
	})

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	s.log.Info("http.listen", "addr", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http.shutdown")
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
