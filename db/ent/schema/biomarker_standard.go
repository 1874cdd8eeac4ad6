package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// BiomarkerStandard is the canonical standards table the matcher resolves
// free-text biomarker names and units against.
type BiomarkerStandard struct{ ent.Schema }

func (BiomarkerStandard) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "biomarker_standard"},
	}
}

func (BiomarkerStandard) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("code").NotEmpty().Unique(),
		field.String("name").NotEmpty(),
		field.Strings("aliases").Optional(),
		// empty for qualitative-only standards
		field.String("canonical_unit").Optional(),
		// normalized source unit -> multiplier into canonical_unit
		field.JSON("conversions", map[string]float64{}).Optional(),
		field.Float("male_min").Optional().Nillable(),
		field.Float("male_max").Optional().Nillable(),
		field.Float("female_min").Optional().Nillable(),
		field.Float("female_max").Optional().Nillable(),
	}
}

func (BiomarkerStandard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code"),
	}
}
