package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOwnerPath(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		path     string
		wantErr  error
	}{
		{"owner match", "u1", "u1/report.pdf", nil},
		{"nested owner match", "u1", "u1/2026/report.pdf", nil},
		{"leading slash tolerated", "u1", "/u1/report.pdf", nil},
		{"other owner", "u1", "u2/report.pdf", ErrUnauthorized},
		{"traversal to other owner", "u1", "u1/../u2/report.pdf", ErrUnauthorized},
		{"traversal out of root", "u1", "../etc/passwd", ErrInvalidInput},
		{"bare owner segment", "u1", "u1", ErrInvalidInput},
		{"empty path", "u1", "", ErrInvalidInput},
		{"empty user", "", "u1/report.pdf", ErrUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOwnerPath(tc.userID, tc.path)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}
