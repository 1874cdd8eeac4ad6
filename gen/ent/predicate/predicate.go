// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BiomarkerStandard is the predicate function for biomarkerstandard builders.
type BiomarkerStandard func(*sql.Selector)

// LabJob is the predicate function for labjob builders.
type LabJob func(*sql.Selector)
