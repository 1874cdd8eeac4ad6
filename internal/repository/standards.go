package repository

import (
	"context"
	"log/slog"

	"github.com/biomarkerlab/labreports/gen/ent"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/internal/entity"
)

// BiomarkerStandardRepository reads and seeds the canonical standards table.
type BiomarkerStandardRepository interface {
	ListAll(ctx context.Context) ([]entity.BiomarkerStandard, error)
	SeedMissing(ctx context.Context, standards []entity.BiomarkerStandard) (int, error)
}

type standardsRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBiomarkerStandardRepository(entc *ent.Client, log *slog.Logger) BiomarkerStandardRepository {
	if log == nil {
		log = slog.Default()
	}
	return &standardsRepo{ent: entc, log: log}
}

func (r *standardsRepo) ListAll(ctx context.Context) ([]entity.BiomarkerStandard, error) {
	rows, err := r.ent.BiomarkerStandard.Query().
		Order(ent.Asc(biomarkerstandard.FieldCode)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.BiomarkerStandard, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.BiomarkerStandard{
			Code:          row.Code,
			Name:          row.Name,
			Aliases:       row.Aliases,
			CanonicalUnit: row.CanonicalUnit,
			Conversions:   row.Conversions,
			MaleMin:       row.MaleMin,
			MaleMax:       row.MaleMax,
			FemaleMin:     row.FemaleMin,
			FemaleMax:     row.FemaleMax,
		})
	}
	return out, nil
}

// SeedMissing inserts standards whose codes are not yet present. Existing rows
// are left untouched so operator edits survive restarts.
func (r *standardsRepo) SeedMissing(ctx context.Context, standards []entity.BiomarkerStandard) (int, error) {
	existing, err := r.ent.BiomarkerStandard.Query().
		Select(biomarkerstandard.FieldCode).
		All(ctx)
	if err != nil {
		return 0, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		have[row.Code] = struct{}{}
	}

	created := 0
	for _, s := range standards {
		if _, ok := have[s.Code]; ok {
			continue
		}
		create := r.ent.BiomarkerStandard.Create().
			SetCode(s.Code).
			SetName(s.Name).
			SetAliases(s.Aliases).
			SetCanonicalUnit(s.CanonicalUnit).
			SetConversions(s.Conversions)
		if s.MaleMin != nil {
			create = create.SetMaleMin(*s.MaleMin)
		}
		if s.MaleMax != nil {
			create = create.SetMaleMax(*s.MaleMax)
		}
		if s.FemaleMin != nil {
			create = create.SetFemaleMin(*s.FemaleMin)
		}
		if s.FemaleMax != nil {
			create = create.SetFemaleMax(*s.FemaleMax)
		}
		if _, err := create.Save(ctx); err != nil {
			r.log.Error("standards seed failed", "code", s.Code, "err", err)
			return created, err
		}
		created++
	}
	if created > 0 {
		r.log.Info("standards seeded", "created", created, "total", len(standards))
	}
	return created, nil
}
