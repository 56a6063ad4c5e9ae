// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ResearchTask is the predicate function for researchtask builders.
type ResearchTask func(*sql.Selector)

// TaskLog is the predicate function for tasklog builders.
type TaskLog func(*sql.Selector)
