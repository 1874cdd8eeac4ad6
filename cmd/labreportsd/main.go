package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/export"
	"github.com/biomarkerlab/labreports/internal/llm/openai"
	"github.com/biomarkerlab/labreports/internal/pdf"
	"github.com/biomarkerlab/labreports/internal/pipeline"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/repository"
	"github.com/biomarkerlab/labreports/internal/server"
	"github.com/biomarkerlab/labreports/internal/standards"
	"github.com/biomarkerlab/labreports/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := repository.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	jobsRepo := repository.NewLabJobRepository(entc, logger)
	standardsRepo := repository.NewBiomarkerStandardRepository(entc, logger)

	// Seed the standards table from the embedded catalog, then serve matching
	// from whatever the table holds.
	seed, err := standards.DefaultStandards()
	if err != nil {
		logger.Error("failed to load embedded standards", "error", err)
		os.Exit(1)
	}
	inserted, err := standardsRepo.SeedMissing(ctx, seed)
	if err != nil {
		logger.Error("failed to seed standards", "error", err)
		os.Exit(1)
	}
	logger.Info("standards.seeded", "inserted", inserted)

	all, err := standardsRepo.ListAll(ctx)
	if err != nil {
		logger.Error("failed to load standards", "error", err)
		os.Exit(1)
	}
	matcher := standards.NewMatcher(standards.NewCatalog(all), logger)

	extractClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.ExtractionModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	verifyClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.VerifyModel,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	events := progress.NewBroker(logger)
	proc := pipeline.NewProcessor(
		logger,
		storage.NewLocalStore(cfg.Pipeline.StorageRoot),
		pdf.NewSplitter(cfg.Pipeline.SinglePassPageLimit, logger),
		pipeline.NewExtractStage(extractClient, logger),
		pipeline.NewVerifyStage(verifyClient, logger),
		matcher,
		jobsRepo,
		events,
		pipeline.Config{
			SinglePassPageLimit: cfg.Pipeline.SinglePassPageLimit,
			MaxWorkers:          cfg.Pipeline.MaxWorkers,
		},
	)

	srv := server.New(logger, cfg.Server.HTTPAddr, jobsRepo, standardsRepo, proc, events, export.NewService(logger))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
