// Package merge reconciles per-page extraction outcomes into one deduplicated
// biomarker set. First occurrence (lowest page) wins; later duplicates only
// fill gaps and are recorded as conflicts when their numeric values disagree.
package merge

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/entity"
)

// ConflictTolerance is the absolute difference above which two numeric values
// for the same biomarker key count as conflicting.
const ConflictTolerance = 0.01

// PageResult is one chunk's contribution to the merge.
type PageResult struct {
	Page               int
	Biomarkers         []entity.Biomarker
	VerificationStatus constants.VerificationStatus
	Corrections        []string
}

// Result is the reconciled output consumed by the standards matcher.
type Result struct {
	Biomarkers         []entity.Biomarker
	DuplicatesRemoved  int
	SourcePages        map[string][]int // dedup key -> contributing pages
	Warnings           []string
	Conflicts          []entity.ValueConflict
	Corrections        []string
	VerificationStatus constants.VerificationStatus
}

// Merge reconciles all page results for a job. Inputs are ordered by page
// number before merging so canonical-record ties are deterministic regardless
// of scheduling.
func Merge(pages []PageResult) Result {
	ordered := make([]PageResult, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Page < ordered[j].Page })

	res := Result{
		SourcePages:        make(map[string][]int),
		VerificationStatus: constants.VerificationClean,
	}

	type slot struct {
		index    int // position in res.Biomarkers
		values   []string
		conflict int // index into res.Conflicts, -1 if none yet
	}
	slots := make(map[string]*slot)
	totalSeen := 0

	for _, pr := range ordered {
		res.VerificationStatus = constants.WorstVerification(res.VerificationStatus, pr.VerificationStatus)
		for _, c := range pr.Corrections {
			res.Corrections = append(res.Corrections, fmt.Sprintf("[Page %d] %s", pr.Page, c))
		}

		for _, bm := range pr.Biomarkers {
			totalSeen++
			key := Key(bm.Name, bm.Unit)

			sl, seen := slots[key]
			if !seen {
				kept := bm
				kept.Page = pr.Page
				res.Biomarkers = append(res.Biomarkers, kept)
				slots[key] = &slot{
					index:    len(res.Biomarkers) - 1,
					values:   []string{bm.Value},
					conflict: -1,
				}
				res.SourcePages[key] = []int{pr.Page}
				continue
			}

			// Duplicate: append page, fill gaps, never overwrite the kept value.
			res.SourcePages[key] = append(res.SourcePages[key], pr.Page)
			sl.values = append(sl.values, bm.Value)
			canonical := &res.Biomarkers[sl.index]
			if canonical.ReferenceMin == nil && bm.ReferenceMin != nil {
				canonical.ReferenceMin = bm.ReferenceMin
			}
			if canonical.ReferenceMax == nil && bm.ReferenceMax != nil {
				canonical.ReferenceMax = bm.ReferenceMax
			}
			if canonical.Flag == "" && bm.Flag != "" {
				canonical.Flag = bm.Flag
			}

			keptNum, keptOK := canonical.NumericValue()
			dupNum, dupOK := bm.NumericValue()
			if keptOK && dupOK && math.Abs(keptNum-dupNum) > ConflictTolerance {
				if sl.conflict < 0 {
					res.Conflicts = append(res.Conflicts, entity.ValueConflict{
						BiomarkerName: canonical.Name,
						SourcePages:   append([]int(nil), res.SourcePages[key]...),
						Values:        append([]string(nil), sl.values...),
						KeptValue:     canonical.Value,
					})
					sl.conflict = len(res.Conflicts) - 1
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"%s reported with different values on pages %s; kept %s from page %d",
						canonical.Name, joinPages(res.SourcePages[key]), canonical.Value, canonical.Page))
				} else {
					c := &res.Conflicts[sl.conflict]
					c.SourcePages = append([]int(nil), res.SourcePages[key]...)
					c.Values = append([]string(nil), sl.values...)
				}
			}
		}
	}

	res.DuplicatesRemoved = totalSeen - len(res.Biomarkers)
	return res
}

func joinPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ", ")
}
