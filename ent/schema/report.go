package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/delver-project/delver/pkg/models"
)

// Report holds the schema definition for the Report entity. Exactly one
// report exists per completed task; the unique task_id column enforces it.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable(),
		field.Text("report_md").
			Comment("Rendered Markdown report"),
		field.Text("sources_bib").
			Optional().
			Comment("Citation-key bibliography"),
		field.JSON("research_summary", &models.ResearchSummary{}).
			Optional(),
		field.JSON("quality_metrics", &models.QualityMetrics{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("report").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
