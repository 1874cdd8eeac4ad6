package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/common"
	"github.com/biomarkerlab/labreports/internal/entity"
)

// handleExportJob downloads the biomarkers of a finished job as an XLSX
// workbook. Jobs without a result (pending, processing, failed) cannot be
// exported.
func (s *Server) handleExportJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.authorizedJob(r)
	if err != nil {
		writeError(w, err)
		return
	}
	status := constants.JobStatus(job.Status)
	if (status != constants.JobStatusComplete && status != constants.JobStatusPartial) || len(job.Result) == 0 {
		writeError(w, common.NewAppError("EXPORT_ERROR",
			"job has no result to export", common.ErrConflict))
		return
	}

	var result entity.JobResult
	if err := json.Unmarshal(job.Result, &result); err != nil {
		writeError(w, common.NewAppError("EXPORT_ERROR", "stored result is unreadable", common.ErrInternal))
		return
	}
	data, err := s.exporter.BiomarkersXLSX(&result)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="biomarkers-%s.xlsx"`, job.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
