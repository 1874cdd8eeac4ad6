package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOK(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte(`{"biomarkers":[{"name":"Glucose","value":"95","unit":"mg/dL"}],"confidence":0.9}`),
	}}
	stage := NewExtractStage(cap, nil)

	out, raw, err := stage.Run(context.Background(), testChunk(), "application/pdf", 1)
	require.NoError(t, err)
	require.Len(t, out.Biomarkers, 1)
	assert.Equal(t, "Glucose", out.Biomarkers[0].Name)
	assert.InDelta(t, 0.9, out.Confidence, 0.001)
	assert.NotEmpty(t, raw)
}

func TestExtractInvokeErrorIsFatal(t *testing.T) {
	cap := &fakeCapability{errs: []error{errors.New("timeout")}}
	stage := NewExtractStage(cap, nil)

	_, _, err := stage.Run(context.Background(), testChunk(), "application/pdf", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction call")
}

func TestExtractUnparsableOutputIsFatal(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{[]byte("the page is blank")}}
	stage := NewExtractStage(cap, nil)

	_, _, err := stage.Run(context.Background(), testChunk(), "application/pdf", 1)
	assert.Error(t, err)
}

func TestExtractSanitizeRecoversNumericValues(t *testing.T) {
	cap := &fakeCapability{responses: [][]byte{
		[]byte("```json\n{\"biomarkers\":[{\"name\":\"Glucose\",\"value\":95,\"reference_min\":\"70\"}]}\n```"),
	}}
	stage := NewExtractStage(cap, nil)

	out, _, err := stage.Run(context.Background(), testChunk(), "application/pdf", 1)
	require.NoError(t, err)
	require.Len(t, out.Biomarkers, 1)
	assert.Equal(t, "95", out.Biomarkers[0].Value)
	require.NotNil(t, out.Biomarkers[0].ReferenceMin)
	assert.Equal(t, 70.0, *out.Biomarkers[0].ReferenceMin)
}
