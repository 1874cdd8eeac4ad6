package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/gen/ent"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
)

// LabJobRepository persists the job state machine. Stage/progress writes are
// blind overwrites; only the active run writes them.
type LabJobRepository interface {
	Create(ctx context.Context, userID, sourcePath, sourceFormat string) (*entity.LabJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LabJob, error)
	MarkProcessing(ctx context.Context, id uuid.UUID, stage string) error
	SetStage(ctx context.Context, id uuid.UUID, stage string) error
	SetProgress(ctx context.Context, id uuid.UUID, current, total int) error
	FinishSuccess(ctx context.Context, id uuid.UUID, status string, result, trace json.RawMessage) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string, trace json.RawMessage) error
}

type labJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLabJobRepository(entc *ent.Client, log *slog.Logger) LabJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &labJobRepo{ent: entc, log: log}
}

func (r *labJobRepo) Create(ctx context.Context, userID, sourcePath, sourceFormat string) (*entity.LabJob, error) {
	row, err := r.ent.LabJob.
		Create().
		SetUserID(userID).
		SetSourcePath(sourcePath).
		SetSourceFormat(sourceFormat).
		SetStatus("pending").
		Save(ctx)
	if err != nil {
		r.log.Error("lab_job create failed", "user_id", userID, "err", err)
		if ent.IsValidationError(err) {
			return nil, common.NewAppError("VALIDATION_ERROR", "invalid job fields", common.ErrInvalidInput)
		}
		return nil, common.NewAppError("DB_ERROR", "create job", common.ErrDatabase)
	}
	r.log.Info("lab_job created", "job_id", row.ID, "user_id", userID, "source_path", sourcePath)
	return toJobEntity(row), nil
}

func (r *labJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.LabJob, error) {
	row, err := r.ent.LabJob.Query().Where(labjob.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_ERROR", "job not found", common.ErrNotFound)
		}
		return nil, common.NewAppError("DB_ERROR", "load job", common.ErrDatabase)
	}
	return toJobEntity(row), nil
}

func (r *labJobRepo) MarkProcessing(ctx context.Context, id uuid.UUID, stage string) error {
	_, err := r.ent.LabJob.
		UpdateOneID(id).
		SetStatus("processing").
		SetStage(stage).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("lab_job mark processing failed", "job_id", id, "err", err)
	}
	return err
}

func (r *labJobRepo) SetStage(ctx context.Context, id uuid.UUID, stage string) error {
	_, err := r.ent.LabJob.
		UpdateOneID(id).
		SetStage(stage).
		Save(ctx)
	return err
}

func (r *labJobRepo) SetProgress(ctx context.Context, id uuid.UUID, current, total int) error {
	_, err := r.ent.LabJob.
		UpdateOneID(id).
		SetCurrentPage(current).
		SetTotalPages(total).
		Save(ctx)
	return err
}

func (r *labJobRepo) FinishSuccess(ctx context.Context, id uuid.UUID, status string, result, trace json.RawMessage) error {
	upd := r.ent.LabJob.
		UpdateOneID(id).
		SetStatus(status).
		ClearStage().
		SetCompletedAt(time.Now()).
		SetResult(result)
	if trace != nil {
		upd = upd.SetTrace(trace)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("lab_job finish failed", "job_id", id, "status", status, "err", err)
		return err
	}
	r.log.Info("lab_job finished", "job_id", id, "status", status)
	return nil
}

func (r *labJobRepo) FinishFailure(ctx context.Context, id uuid.UUID, message string, trace json.RawMessage) error {
	upd := r.ent.LabJob.
		UpdateOneID(id).
		SetStatus("failed").
		ClearStage().
		SetCompletedAt(time.Now()).
		SetErrorMessage(message)
	if trace != nil {
		upd = upd.SetTrace(trace)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("lab_job finish(failed) failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("lab_job finished (failed)", "job_id", id, "error", message)
	return nil
}

func toJobEntity(row *ent.LabJob) *entity.LabJob {
	return &entity.LabJob{
		ID:           row.ID,
		UserID:       row.UserID,
		SourcePath:   row.SourcePath,
		SourceFormat: row.SourceFormat,
		Status:       row.Status,
		Stage:        row.Stage,
		CurrentPage:  row.CurrentPage,
		TotalPages:   row.TotalPages,
		CreatedAt:    row.CreatedAt,
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		ErrorMessage: row.ErrorMessage,
		Result:       row.Result,
		Trace:        row.Trace,
	}
}
