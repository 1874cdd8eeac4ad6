package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/llm"
	"github.com/biomarkerlab/labreports/internal/pdf"
)

// fakeCapability replays canned responses in order.
type fakeCapability struct {
	responses [][]byte
	errs      []error
	calls     int
	requests  []llm.InvokeRequest
}

func (f *fakeCapability) Invoke(_ context.Context, req llm.InvokeRequest) ([]byte, error) {
	i := f.calls
	f.calls++
	f.requests = append(f.requests, req)
	var resp []byte
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func testExtraction() llm.ExtractionPayload {
	return llm.ExtractionPayload{
		Biomarkers: []entity.Biomarker{
			{Name: "Glucose", Value: "95", Unit: "mg/dL"},
		},
	}
}

func testChunk() pdf.Chunk {
	return pdf.Chunk{Page: 1, Pages: 1, Data: []byte("doc")}
}

func TestVerifyCleanPass(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"}],"corrections":[],"verification_passed":true}`),
	}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.False(t, res.Degraded)
	assert.True(t, res.Payload.VerificationPassed)
	assert.Empty(t, res.Payload.Corrections)
	require.Len(t, res.Payload.Biomarkers, 1)
	assert.Equal(t, "95", res.Payload.Biomarkers[0].Value)
}

func TestVerifyCorrectedPass(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Glucose","value":"9.5","unit":"mmol/L"}],"corrections":["corrected unit from mg/dL to mmol/L"],"verification_passed":true}`),
	}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.False(t, res.Degraded)
	require.Len(t, res.Payload.Corrections, 1)
	assert.Equal(t, "mmol/L", res.Payload.Biomarkers[0].Unit)
}

func TestVerifyDegradesOnInvokeError(t *testing.T) {
	cap := &fakeCapability{errs: []error{errors.New("rate limited")}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.True(t, res.Degraded)
	assert.False(t, res.Payload.VerificationPassed)
	// the unverified extraction passes through untouched
	require.Len(t, res.Payload.Biomarkers, 1)
	assert.Equal(t, "Glucose", res.Payload.Biomarkers[0].Name)
	require.Len(t, res.Payload.Corrections, 1)
	assert.Contains(t, res.Payload.Corrections[0], "verification unavailable")
}

func TestVerifyDegradesOnGarbageOutput(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{[]byte("I could not check this document, sorry!")}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.True(t, res.Degraded)
	assert.Equal(t, testExtraction().Biomarkers, res.Payload.Biomarkers)
}

func TestVerifyDegradesOnEmptyOutput(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{[]byte("")}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.True(t, res.Degraded)
	assert.Contains(t, res.Reason, "empty")
}

func TestVerifyDegradesWhenAllBiomarkersDropped(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[],"corrections":[],"verification_passed":true}`),
	}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.True(t, res.Degraded)
	assert.Equal(t, testExtraction().Biomarkers, res.Payload.Biomarkers)
}

func TestVerifyDegradesWithoutCapability(t *testing.T) {
	stage := NewVerifyStage(nil, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.True(t, res.Degraded)
	assert.Contains(t, res.Reason, "not configured")
}

func TestVerifyRecoversFencedOutput(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte("```json\n{\"biomarkers\":[{\"name\":\"Glucose\",\"value\":\"95\",\"unit\":\"mg/dL\"}],\"corrections\":[],\"verification_passed\":true}\n```"),
	}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.False(t, res.Degraded)
	assert.True(t, res.Payload.VerificationPassed)
}

func TestVerifySanitizesNumericValues(t *testing.T) {
	// model returned value as a number; the sanitizer coerces it to string
	cap := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Glucose","value":95,"unit":"mg/dL"}],"corrections":[],"verification_passed":true}`),
	}}
	stage := NewVerifyStage(cap, nil)

	res := stage.Run(context.Background(), testChunk(), "application/pdf", 1, testExtraction())

	assert.False(t, res.Degraded)
	require.Len(t, res.Payload.Biomarkers, 1)
	assert.Equal(t, "95", res.Payload.Biomarkers[0].Value)
}
