package standards

import (
	"fmt"
	"log/slog"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/internal/entity"
	"github.com/biomarkerlab/labreports/internal/merge"
)

// Conversion status values recorded per biomarker.
const (
	ConversionApplied   = "applied"
	ConversionMissing   = "missing"
	ConversionNotNeeded = "not_needed"
)

// Matcher resolves merged biomarkers against the standards catalog.
type Matcher struct {
	catalog *Catalog
	log     *slog.Logger
}

func NewMatcher(catalog *Catalog, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{catalog: catalog, log: logger}
}

// Process converts a merge result into the final processed biomarker set for
// the given gender. Unmatched items are kept raw with a validation issue; an
// error here is a post-processing failure, not a per-item condition.
func (m *Matcher) Process(res merge.Result, gender constants.Gender) ([]entity.ProcessedBiomarker, []entity.MatchTrace, error) {
	if m.catalog == nil || m.catalog.Len() == 0 {
		return nil, nil, fmt.Errorf("standards catalog is empty")
	}
	if gender != constants.GenderFemale {
		gender = constants.GenderMale
	}

	out := make([]entity.ProcessedBiomarker, 0, len(res.Biomarkers))
	traces := make([]entity.MatchTrace, 0, len(res.Biomarkers))
	matched := 0

	for _, bm := range res.Biomarkers {
		pb, trace := m.processOne(bm, gender)
		pb.SourcePages = res.SourcePages[merge.Key(bm.Name, bm.Unit)]
		if pb.Matched {
			matched++
		}
		out = append(out, pb)
		traces = append(traces, trace)
	}

	m.log.Info("standards.match.done",
		"total", len(out), "matched", matched, "unmatched", len(out)-matched)
	return out, traces, nil
}

func (m *Matcher) processOne(bm entity.Biomarker, gender constants.Gender) (entity.ProcessedBiomarker, entity.MatchTrace) {
	pb := entity.ProcessedBiomarker{
		Name:       bm.Name,
		Value:      bm.Value,
		Unit:       bm.Unit,
		Conversion: ConversionNotNeeded,
	}
	trace := entity.MatchTrace{Name: bm.Name, Conversion: ConversionNotNeeded}

	std, matchedBy := m.resolve(bm)
	if std == nil {
		if _, numeric := bm.NumericValue(); !numeric {
			pb.IsQualitative = true
		}
		pb.ValidationIssues = append(pb.ValidationIssues,
			fmt.Sprintf("no matching standard for %q (%s)", bm.Name, bm.Unit))
		return pb, trace
	}
	pb.Matched = true
	pb.StandardCode = &std.Code
	pb.StandardName = &std.Name
	trace.StandardCode = std.Code
	trace.MatchedBy = matchedBy

	value, numeric := bm.NumericValue()
	if !numeric {
		// Qualitative results bypass conversion and flagging entirely.
		pb.IsQualitative = true
		return pb, trace
	}

	canonical := value
	haveCanonical := true
	if merge.NormalizeUnit(bm.Unit) != merge.NormalizeUnit(std.CanonicalUnit) {
		factor, ok := conversionFactor(std, bm.Unit)
		if !ok {
			pb.Conversion = ConversionMissing
			trace.Conversion = ConversionMissing
			pb.ValidationIssues = append(pb.ValidationIssues,
				fmt.Sprintf("no conversion factor from %q to %q", bm.Unit, std.CanonicalUnit))
			haveCanonical = false
		} else {
			canonical = value * factor
			pb.Conversion = ConversionApplied
			trace.Conversion = ConversionApplied
		}
	}

	if !haveCanonical {
		return pb, trace
	}

	pb.ConvertedValue = &canonical
	unit := std.CanonicalUnit
	pb.ConvertedUnit = &unit

	min, max := std.MaleMin, std.MaleMax
	if gender == constants.GenderFemale {
		min, max = std.FemaleMin, std.FemaleMax
	}
	pb.ReferenceMin = min
	pb.ReferenceMax = max

	if min == nil && max == nil {
		return pb, trace
	}
	flag := string(constants.FlagNormal)
	switch {
	case max != nil && canonical > *max:
		flag = string(constants.FlagHigh)
	case min != nil && canonical < *min:
		flag = string(constants.FlagLow)
	}
	pb.Flag = &flag
	return pb, trace
}

// resolve tries the explicit standard-code hint first, then normalized
// name/alias lookup.
func (m *Matcher) resolve(bm entity.Biomarker) (*entity.BiomarkerStandard, string) {
	if bm.StandardCode != "" {
		if std, ok := m.catalog.ByCode(bm.StandardCode); ok {
			return std, "code_hint"
		}
	}
	if std, ok := m.catalog.ByName(bm.Name); ok {
		return std, "alias"
	}
	return nil, ""
}

func conversionFactor(std *entity.BiomarkerStandard, unit string) (float64, bool) {
	want := merge.NormalizeUnit(unit)
	for from, factor := range std.Conversions {
		if merge.NormalizeUnit(from) == want {
			return factor, true
		}
	}
	return 0, false
}
