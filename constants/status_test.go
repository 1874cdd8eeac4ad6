package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorstVerification(t *testing.T) {
	assert.Equal(t, VerificationClean, WorstVerification(VerificationClean, VerificationClean))
	assert.Equal(t, VerificationCorrected, WorstVerification(VerificationClean, VerificationCorrected))
	assert.Equal(t, VerificationCorrected, WorstVerification(VerificationCorrected, VerificationClean))
	assert.Equal(t, VerificationFailed, WorstVerification(VerificationCorrected, VerificationFailed))
	assert.Equal(t, VerificationFailed, WorstVerification(VerificationFailed, VerificationClean))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(JobStatusPending))
	assert.False(t, IsTerminal(JobStatusProcessing))
	assert.True(t, IsTerminal(JobStatusComplete))
	assert.True(t, IsTerminal(JobStatusPartial))
	assert.True(t, IsTerminal(JobStatusFailed))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, "PDF", MapExtToFormat(".pdf"))
	assert.Equal(t, "PDF", MapExtToFormat("PDF"))
	assert.Equal(t, "IMAGE", MapExtToFormat(".JPG"))
	assert.Equal(t, "IMAGE", MapExtToFormat("jpeg"))
	assert.Equal(t, "IMAGE", MapExtToFormat(".png"))
	assert.Equal(t, "", MapExtToFormat(".docx"))
}
