package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/internal/common"
)

func testJobRepo(t *testing.T) LabJobRepository {
	t.Helper()
	db, err := InitDatabase(context.Background(), common.LoadConfig(), true, nil)
	require.NoError(t, err)
	t.Cleanup(db.Cleanup)
	return NewLabJobRepository(db.Client, nil)
}

func TestCreatePersistsSourceFormat(t *testing.T) {
	repo := testJobRepo(t)
	ctx := context.Background()

	job, err := repo.Create(ctx, "u1", "u1/report.pdf", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "PDF", job.SourceFormat)
	assert.Equal(t, "pending", job.Status)

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "PDF", got.SourceFormat)
	assert.Equal(t, "u1/report.pdf", got.SourcePath)
}

func TestCreateRejectsUnknownFormat(t *testing.T) {
	repo := testJobRepo(t)

	_, err := repo.Create(context.Background(), "u1", "u1/report.docx", "DOCX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}

func TestGetByIDUnknownIsNotFound(t *testing.T) {
	repo := testJobRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "JOB_ERROR", appErr.Code)
}

func TestFinishSuccessRejectsUnknownStatus(t *testing.T) {
	repo := testJobRepo(t)
	ctx := context.Background()

	job, err := repo.Create(ctx, "u1", "u1/report.png", "IMAGE")
	require.NoError(t, err)

	err = repo.FinishSuccess(ctx, job.ID, "almost_done", json.RawMessage(`{}`), nil)
	assert.Error(t, err)

	err = repo.FinishSuccess(ctx, job.ID, "complete", json.RawMessage(`{}`), nil)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "complete", got.Status)
}
