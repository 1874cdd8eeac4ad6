// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/biomarkerlab/labreports/db/ent/schema"
	"github.com/biomarkerlab/labreports/gen/ent/biomarkerstandard"
	"github.com/biomarkerlab/labreports/gen/ent/labjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biomarkerstandardFields := schema.BiomarkerStandard{}.Fields()
	_ = biomarkerstandardFields
	// biomarkerstandardDescCode is the schema descriptor for code field.
	biomarkerstandardDescCode := biomarkerstandardFields[1].Descriptor()
	// biomarkerstandard.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	biomarkerstandard.CodeValidator = biomarkerstandardDescCode.Validators[0].(func(string) error)
	// biomarkerstandardDescName is the schema descriptor for name field.
	biomarkerstandardDescName := biomarkerstandardFields[2].Descriptor()
	// biomarkerstandard.NameValidator is a validator for the "name" field. It is called by the builders before save.
	biomarkerstandard.NameValidator = biomarkerstandardDescName.Validators[0].(func(string) error)
	// biomarkerstandardDescID is the schema descriptor for id field.
	biomarkerstandardDescID := biomarkerstandardFields[0].Descriptor()
	// biomarkerstandard.DefaultID holds the default value on creation for the id field.
	biomarkerstandard.DefaultID = biomarkerstandardDescID.Default.(func() uuid.UUID)
	labjobFields := schema.LabJob{}.Fields()
	_ = labjobFields
	// labjobDescUserID is the schema descriptor for user_id field.
	labjobDescUserID := labjobFields[1].Descriptor()
	// labjob.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	labjob.UserIDValidator = labjobDescUserID.Validators[0].(func(string) error)
	// labjobDescSourcePath is the schema descriptor for source_path field.
	labjobDescSourcePath := labjobFields[2].Descriptor()
	// labjob.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	labjob.SourcePathValidator = labjobDescSourcePath.Validators[0].(func(string) error)
	// labjobDescSourceFormat is the schema descriptor for source_format field.
	labjobDescSourceFormat := labjobFields[3].Descriptor()
	// labjob.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	labjob.SourceFormatValidator = func() func(string) error {
		validators := labjobDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labjobDescStatus is the schema descriptor for status field.
	labjobDescStatus := labjobFields[4].Descriptor()
	// labjob.DefaultStatus holds the default value on creation for the status field.
	labjob.DefaultStatus = labjobDescStatus.Default.(string)
	// labjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	labjob.StatusValidator = labjobDescStatus.Validators[0].(func(string) error)
	// labjobDescCurrentPage is the schema descriptor for current_page field.
	labjobDescCurrentPage := labjobFields[6].Descriptor()
	// labjob.DefaultCurrentPage holds the default value on creation for the current_page field.
	labjob.DefaultCurrentPage = labjobDescCurrentPage.Default.(int)
	// labjobDescTotalPages is the schema descriptor for total_pages field.
	labjobDescTotalPages := labjobFields[7].Descriptor()
	// labjob.DefaultTotalPages holds the default value on creation for the total_pages field.
	labjob.DefaultTotalPages = labjobDescTotalPages.Default.(int)
	// labjobDescCreatedAt is the schema descriptor for created_at field.
	labjobDescCreatedAt := labjobFields[8].Descriptor()
	// labjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	labjob.DefaultCreatedAt = labjobDescCreatedAt.Default.(func() time.Time)
	// labjobDescID is the schema descriptor for id field.
	labjobDescID := labjobFields[0].Descriptor()
	// labjob.DefaultID holds the default value on creation for the id field.
	labjob.DefaultID = labjobDescID.Default.(func() uuid.UUID)
}
