package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Chunk is one independently extractable sub-document: a single page or a
// contiguous page range. Page is the 1-indexed first page of the chunk.
type Chunk struct {
	Page  int
	Pages int // page count inside the chunk
	Data  []byte
	Size  int64
}

// Splitter splits multi-page documents into chunks.
type Splitter struct {
	conf *model.Configuration
	log  *slog.Logger

	// SinglePassPageLimit: documents at or below this page count are kept as
	// one chunk. Above it we split one chunk per page so each capability call
	// stays small and a failed page can be retried independently.
	SinglePassPageLimit int
}

func NewSplitter(singlePassPageLimit int, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	if singlePassPageLimit < 1 {
		singlePassPageLimit = 1
	}
	return &Splitter{
		conf:                model.NewDefaultConfiguration(),
		log:                 logger,
		SinglePassPageLimit: singlePassPageLimit,
	}
}

// PageCount returns the true page count of the document. A document that is
// not a PDF (e.g. a single image) counts as one page.
func (s *Splitter) PageCount(doc []byte, isPDF bool) (int, error) {
	if !isPDF {
		return 1, nil
	}
	n, err := api.PageCount(bytes.NewReader(doc), s.conf)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	return n, nil
}

// Split produces the ordered chunk sequence for a document with the given
// true page count. A zero-page document yields an empty list without error.
func (s *Splitter) Split(doc []byte, pageCount int, isPDF bool) ([]Chunk, error) {
	if pageCount <= 0 {
		return nil, nil
	}
	if !isPDF || pageCount <= s.SinglePassPageLimit {
		return []Chunk{{Page: 1, Pages: pageCount, Data: doc, Size: int64(len(doc))}}, nil
	}

	chunks := make([]Chunk, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		c, err := s.ExtractPageRange(doc, page, page, pageCount)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", page, err)
		}
		if c == nil {
			continue
		}
		chunks = append(chunks, *c)
	}
	s.log.Debug("document split", "pages", pageCount, "chunks", len(chunks))
	return chunks, nil
}

// ExtractPageRange extracts pages [start, end] as a standalone sub-document.
// Indices are clamped to the document's true bounds; an empty resulting range
// is a no-op and returns nil without error.
func (s *Splitter) ExtractPageRange(doc []byte, start, end, pageCount int) (*Chunk, error) {
	start, end, ok := ClampRange(start, end, pageCount)
	if !ok {
		return nil, nil
	}

	sel := []string{strconv.Itoa(start)}
	if end > start {
		sel = []string{fmt.Sprintf("%d-%d", start, end)}
	}
	var buf bytes.Buffer
	if err := api.Trim(bytes.NewReader(doc), &buf, sel, s.conf); err != nil {
		return nil, fmt.Errorf("pdf trim %v: %w", sel, err)
	}
	data := buf.Bytes()
	return &Chunk{
		Page:  start,
		Pages: end - start + 1,
		Data:  data,
		Size:  int64(len(data)),
	}, nil
}

// ClampRange floors start to 1 and caps end at pageCount. ok is false when the
// clamped range is empty.
func ClampRange(start, end, pageCount int) (int, int, bool) {
	if start < 1 {
		start = 1
	}
	if end > pageCount {
		end = pageCount
	}
	if pageCount < 1 || start > end {
		return start, end, false
	}
	return start, end, true
}
