package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchTask holds the schema definition for the ResearchTask entity.
// One row per accepted research request; the owning worker is the only
// writer after intake.
type ResearchTask struct {
	ent.Schema
}

// Fields of the ResearchTask.
func (ResearchTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.Text("query").
			Comment("Research question as submitted"),
		field.Enum("kind").
			Values("simple", "deep").
			Immutable(),
		field.Enum("status").
			Values("accepted", "running", "completed", "failed").
			Default("accepted"),
		field.String("details").
			Optional().
			Comment("Failure reason, or degradation marker on completed tasks"),
		field.Int("max_iterations").
			Immutable(),
		field.Float("min_completion_score").
			Immutable(),
		field.Int("budget").
			Immutable().
			Comment("Provider call budget snapshotted at intake"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was accepted"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker picked the task up (transitioned to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("evidence_count").
			Default(0),
		field.String("sources_summary").
			Optional(),
	}
}

// Edges of the ResearchTask.
func (ResearchTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("report", Report.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logs", TaskLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchTask.
func (ResearchTask) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("created_at"),

		// Composite index for filtered listings
		index.Fields("status", "created_at"),
	}
}
