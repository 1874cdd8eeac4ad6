package common

import (
	"path"
	"strings"
)

// ValidateOwnerPath enforces the authorization boundary for document access:
// the first segment of the storage path must equal the authenticated caller's
// identifier. Runs before any processing begins.
func ValidateOwnerPath(userID, sourcePath string) error {
	if strings.TrimSpace(userID) == "" {
		return NewAppError("AUTH_ERROR", "missing caller identity", ErrUnauthorized)
	}
	cleaned := path.Clean(strings.TrimPrefix(strings.TrimSpace(sourcePath), "/"))
	if cleaned == "." || cleaned == "" {
		return NewAppError("PATH_ERROR", "source path is empty", ErrInvalidInput)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, "../") {
		return NewAppError("PATH_ERROR", "source path escapes storage root", ErrInvalidInput)
	}
	owner, rest, found := strings.Cut(cleaned, "/")
	if !found || rest == "" {
		return NewAppError("PATH_ERROR", "source path must be <owner>/<file>", ErrInvalidInput)
	}
	if owner != userID {
		return NewAppError("AUTH_ERROR", "source path does not belong to caller", ErrUnauthorized)
	}
	return nil
}
