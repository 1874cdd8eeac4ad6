// Package storage is the boundary to the external document store. The
// pipeline only ever fetches bytes through it; upload and retention belong to
// the storage collaborator.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biomarkerlab/labreports/internal/common"
)

// Fetcher loads a source document by its owner-scoped path.
type Fetcher interface {
	Fetch(ctx context.Context, sourcePath string) ([]byte, error)
}

// LocalStore serves documents from a directory tree rooted at Root, laid out
// as <owner>/<file>.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{Root: root}
}

func (s *LocalStore) Fetch(ctx context.Context, sourcePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleaned := filepath.Clean(strings.TrimPrefix(sourcePath, "/"))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return nil, common.NewAppError("PATH_ERROR", "invalid source path", common.ErrInvalidInput)
	}
	full := filepath.Join(s.Root, filepath.FromSlash(cleaned))
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewAppError("STORAGE_ERROR",
				fmt.Sprintf("document not found: %s", sourcePath), common.ErrNotFound)
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}
