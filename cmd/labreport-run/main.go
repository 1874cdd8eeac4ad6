package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/export"
	"github.com/biomarkerlab/labreports/internal/llm/openai"
	"github.com/biomarkerlab/labreports/internal/pdf"
	"github.com/biomarkerlab/labreports/internal/pipeline"
	"github.com/biomarkerlab/labreports/internal/progress"
	"github.com/biomarkerlab/labreports/internal/repository"
	"github.com/biomarkerlab/labreports/internal/standards"
	"github.com/biomarkerlab/labreports/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem  = flag.Bool("inmem", true, "use in-memory SQLite database")
		file   = flag.String("file", "", "lab report file to process (required)")
		user   = flag.String("user", "local", "owner id for the staged document")
		gender = flag.String("gender", "", "reference-range gender: male or female (defaults to the extracted patient)")
		out    = flag.String("out", "", "output XLSX file path (optional, defaults to the report's directory)")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*file), "biomarkers.xlsx")
	}

	// Events go to stdout as NDJSON; logs stay on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbResult, err := repository.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		printError("Error: initialize database: %v\n", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()
	entc := dbResult.Client

	jobsRepo := repository.NewLabJobRepository(entc, logger)
	standardsRepo := repository.NewBiomarkerStandardRepository(entc, logger)

	seed, err := standards.DefaultStandards()
	if err != nil {
		printError("Error: load embedded standards: %v\n", err)
		os.Exit(1)
	}
	if _, err := standardsRepo.SeedMissing(ctx, seed); err != nil {
		printError("Error: seed standards: %v\n", err)
		os.Exit(1)
	}
	all, err := standardsRepo.ListAll(ctx)
	if err != nil {
		printError("Error: load standards: %v\n", err)
		os.Exit(1)
	}

	// Stage the file under an owner-scoped root so the same fetch path runs
	// as in the daemon.
	stagingRoot, sourcePath, err := stageFile(*file, *user)
	if err != nil {
		printError("Error: stage file: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(stagingRoot)

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
		storage.NewLocalStore(stagingRoot),
		pdf.NewSplitter(cfg.Pipeline.SinglePassPageLimit, logger),
		pipeline.NewExtractStage(extractClient, logger),
		pipeline.NewVerifyStage(verifyClient, logger),
		standards.NewMatcher(standards.NewCatalog(all), logger),
		jobsRepo,
		events,
		pipeline.Config{
			SinglePassPageLimit: cfg.Pipeline.SinglePassPageLimit,
			MaxWorkers:          cfg.Pipeline.MaxWorkers,
		},
	)

	format := constants.MapExtToFormat(filepath.Ext(sourcePath))
	if format == "" {
		printError("Error: unsupported file type %q, expected pdf, jpg, jpeg or png\n", filepath.Ext(*file))
		os.Exit(1)
	}
	job, err := jobsRepo.Create(ctx, *user, sourcePath, format)
	if err != nil {
		printError("Error: create job: %v\n", err)
		os.Exit(1)
	}
	if err := proc.Begin(job); err != nil {
		printError("Error: begin job: %v\n", err)
		os.Exit(1)
	}
	ch, ok := events.Subscribe(job.ID)
	if !ok {
		printError("Error: event stream unavailable\n")
		os.Exit(1)
	}

	go proc.Run(ctx, job, parseGenderFlag(*gender))

	enc := json.NewEncoder(os.Stdout)
	for ev := range ch {
		_ = enc.Encode(ev)
	}

	final, err := jobsRepo.GetByID(ctx, job.ID)
	if err != nil {
		printError("Error: load job result: %v\n", err)
		os.Exit(1)
	}
	if final.Status == string(constants.JobStatusFailed) {
		msg := "unknown"
		if final.ErrorMessage != nil {
			msg = *final.ErrorMessage
		}
		printError("Job failed: %s\n", msg)
		os.Exit(1)
	}

	var result entity.JobResult
	if err := json.Unmarshal(final.Result, &result); err != nil {
		printError("Error: decode result: %v\n", err)
		os.Exit(1)
	}
	data, err := export.NewService(logger).BiomarkersXLSX(&result)
	if err != nil {
		printError("Error: export XLSX: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "status=%s biomarkers=%d duplicates_removed=%d conflicts=%d out=%s\n",
		final.Status, len(result.Biomarkers), result.DuplicatesRemoved, len(result.Conflicts), *out)
}

// stageFile copies the report into <tmp>/<user>/<name> and returns the staging
// root plus the owner-scoped source path.
func stageFile(file, user string) (string, string, error) {
	root, err := os.MkdirTemp("", "labreport-run-")
	if err != nil {
		return "", "", err
	}
	name := filepath.Base(file)
	if err := os.MkdirAll(filepath.Join(root, user), 0o755); err != nil {
		os.RemoveAll(root)
		return "", "", err
	}
	src, err := os.Open(file)
	if err != nil {
		os.RemoveAll(root)
		return "", "", err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(root, user, name))
	if err != nil {
		os.RemoveAll(root)
		return "", "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.RemoveAll(root)
		return "", "", err
	}
	return root, user + "/" + name, nil
}

func parseGenderFlag(s string) constants.Gender {
	switch s {
	case "female", "f":
		return constants.GenderFemale
	case "male", "m":
		return constants.GenderMale
	default:
		return ""
	}
}
