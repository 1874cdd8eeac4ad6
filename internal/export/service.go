package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/biomarkerlab/labreports/internal/entity"
)

// Service turns a processed job result into an XLSX workbook.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BiomarkersXLSX returns an XLSX workbook (as bytes) listing every processed
// biomarker of the result, matched and unmatched alike.
func (s *Service) BiomarkersXLSX(result *entity.JobResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Biomarkers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Biomarker",
		"Standard Code",
		"Value",
		"Unit",
		"Canonical Value",
		"Canonical Unit",
		"Reference Min",
		"Reference Max",
		"Flag",
		"Pages",
		"Issues",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, bm := range result.Biomarkers {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		name := bm.Name
		if bm.StandardName != nil && *bm.StandardName != "" {
			name = *bm.StandardName
		}
		write(1, name)
		if bm.StandardCode != nil {
			write(2, *bm.StandardCode)
		}
		write(3, bm.Value)
		write(4, bm.Unit)
		if bm.ConvertedValue != nil {
			write(5, *bm.ConvertedValue)
		}
		if bm.ConvertedUnit != nil {
			write(6, *bm.ConvertedUnit)
		}
		if bm.ReferenceMin != nil {
			write(7, *bm.ReferenceMin)
		}
		if bm.ReferenceMax != nil {
			write(8, *bm.ReferenceMax)
		}
		if bm.Flag != nil {
			write(9, *bm.Flag)
		}
		write(10, joinPages(bm.SourcePages))
		if len(bm.ValidationIssues) > 0 {
			write(11, strings.Join(bm.ValidationIssues, "; "))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // name
	_ = f.SetColWidth(sheet, "B", "B", 14) // code
	_ = f.SetColWidth(sheet, "C", "F", 16) // values and units
	_ = f.SetColWidth(sheet, "G", "I", 14) // ranges and flag
	_ = f.SetColWidth(sheet, "J", "J", 10) // pages
	_ = f.SetColWidth(sheet, "K", "K", 48) // issues

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(result.Biomarkers),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func joinPages(pages []int) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, fmt.Sprintf("%d", p))
	}
	return strings.Join(parts, ", ")
}
