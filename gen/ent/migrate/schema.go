// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BiomarkerStandardColumns holds the columns for the "biomarker_standard" table.
	BiomarkerStandardColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "canonical_unit", Type: field.TypeString, Nullable: true},
		{Name: "conversions", Type: field.TypeJSON, Nullable: true},
		{Name: "male_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "male_max", Type: field.TypeFloat64, Nullable: true},
		{Name: "female_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "female_max", Type: field.TypeFloat64, Nullable: true},
	}
	// BiomarkerStandardTable holds the schema information for the "biomarker_standard" table.
	BiomarkerStandardTable = &schema.Table{
		Name:       "biomarker_standard",
		Columns:    BiomarkerStandardColumns,
		PrimaryKey: []*schema.Column{BiomarkerStandardColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "biomarkerstandard_code",
				Unique:  false,
				Columns: []*schema.Column{BiomarkerStandardColumns[1]},
			},
		},
	}
	// LabJobColumns holds the columns for the "lab_job" table.
	LabJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "source_format", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "current_page", Type: field.TypeInt, Default: 0},
		{Name: "total_pages", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "trace", Type: field.TypeJSON, Nullable: true},
	}
	// LabJobTable holds the schema information for the "lab_job" table.
	LabJobTable = &schema.Table{
		Name:       "lab_job",
		Columns:    LabJobColumns,
		PrimaryKey: []*schema.Column{LabJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labjob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LabJobColumns[1], LabJobColumns[4], LabJobColumns[8]},
			},
			{
				Name:    "labjob_user_id_source_path",
				Unique:  false,
				Columns: []*schema.Column{LabJobColumns[1], LabJobColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BiomarkerStandardTable,
		LabJobTable,
	}
)

func init() {
	BiomarkerStandardTable.Annotation = &entsql.Annotation{
		Table: "biomarker_standard",
	}
	LabJobTable.Annotation = &entsql.Annotation{
		Table: "lab_job",
	}
}
