package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampRange(t *testing.T) {
	cases := []struct {
		name                 string
		start, end, pages    int
		wantStart, wantEnd   int
		wantOK               bool
	}{
		{"inside bounds", 2, 4, 5, 2, 4, true},
		{"start below one", -5, 3, 5, 1, 3, true},
		{"end past count", 3, 99, 5, 3, 5, true},
		{"both clamped", 0, 99, 5, 1, 5, true},
		{"single page", 2, 2, 5, 2, 2, true},
		{"inverted range", 4, 2, 5, 4, 2, false},
		{"zero pages", 1, 1, 0, 1, 0, false},
		{"start past count", 7, 9, 5, 7, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := ClampRange(tc.start, tc.end, tc.pages)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantStart, start)
				assert.Equal(t, tc.wantEnd, end)
			}
		})
	}
}

func TestSplitNonPDFIsSingleChunk(t *testing.T) {
	s := NewSplitter(3, nil)
	doc := []byte("not a pdf, an image")

	n, err := s.PageCount(doc, false)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	chunks, err := s.Split(doc, n, false)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].Page)
	assert.Equal(t, 1, chunks[0].Pages)
	assert.Equal(t, doc, chunks[0].Data)
	assert.Equal(t, int64(len(doc)), chunks[0].Size)
}

func TestSplitZeroPagesYieldsNothing(t *testing.T) {
	s := NewSplitter(3, nil)

	chunks, err := s.Split(nil, 0, true)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplitWithinSinglePassLimitStaysWhole(t *testing.T) {
	s := NewSplitter(3, nil)
	doc := []byte("pdf bytes")

	chunks, err := s.Split(doc, 3, true)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 3, chunks[0].Pages)
}

func TestNewSplitterFloorsLimit(t *testing.T) {
	s := NewSplitter(0, nil)
	assert.Equal(t, 1, s.SinglePassPageLimit)
}
