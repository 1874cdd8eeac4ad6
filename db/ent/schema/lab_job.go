package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/biomarkerlab/labreports/constants"
	"github.com/biomarkerlab/labreports/db/ent/schema/utils"
)

type LabJob struct{ ent.Schema }

func (LabJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lab_job"},
	}
}

func (LabJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("user_id").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("source_format").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.DocumentFormats...)),
		field.String("status").Default("pending").
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("stage").Optional().Nillable(),
		field.Int("current_page").Default(0),
		field.Int("total_pages").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result", json.RawMessage{}).
			Optional(),
		field.JSON("trace", json.RawMessage{}).
			Optional(),
	}
}

func (LabJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("user_id", "source_path"),
	}
}
