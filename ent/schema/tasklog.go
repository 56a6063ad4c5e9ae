package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskLog holds the schema definition for the TaskLog entity, the
// append-only per-task log stream. Rows use the default integer ID since
// callers only ever read them in timestamp order.
type TaskLog struct {
	ent.Schema
}

// Fields of the TaskLog.
func (TaskLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.Enum("level").
			Values("debug", "info", "warning", "error").
			Default("info"),
		field.Text("message"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskLog.
func (TaskLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("logs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskLog.
func (TaskLog) Indexes() []ent.Index {
	return []ent.Index{
		// Log retrieval is always per task in chronological order
		index.Fields("task_id", "timestamp"),
		index.Fields("level"),
	}
}
