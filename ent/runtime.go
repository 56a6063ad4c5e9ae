// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/schema"
	"github.com/delver-project/delver/ent/tasklog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[6].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	researchtaskFields := schema.ResearchTask{}.Fields()
	_ = researchtaskFields
	// researchtaskDescCreatedAt is the schema descriptor for created_at field.
	researchtaskDescCreatedAt := researchtaskFields[8].Descriptor()
	// researchtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchtask.DefaultCreatedAt = researchtaskDescCreatedAt.Default.(func() time.Time)
	// researchtaskDescUpdatedAt is the schema descriptor for updated_at field.
	researchtaskDescUpdatedAt := researchtaskFields[9].Descriptor()
	// researchtask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	researchtask.DefaultUpdatedAt = researchtaskDescUpdatedAt.Default.(func() time.Time)
	// researchtask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	researchtask.UpdateDefaultUpdatedAt = researchtaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// researchtaskDescEvidenceCount is the schema descriptor for evidence_count field.
	researchtaskDescEvidenceCount := researchtaskFields[12].Descriptor()
	// researchtask.DefaultEvidenceCount holds the default value on creation for the evidence_count field.
	researchtask.DefaultEvidenceCount = researchtaskDescEvidenceCount.Default.(int)
	tasklogFields := schema.TaskLog{}.Fields()
	_ = tasklogFields
	// tasklogDescTimestamp is the schema descriptor for timestamp field.
	tasklogDescTimestamp := tasklogFields[3].Descriptor()
	// tasklog.DefaultTimestamp holds the default value on creation for the timestamp field.
	tasklog.DefaultTimestamp = tasklogDescTimestamp.Default.(func() time.Time)
}
