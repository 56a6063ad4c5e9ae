// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldReportMd holds the string denoting the report_md field in the database.
	FieldReportMd = "report_md"
	// FieldSourcesBib holds the string denoting the sources_bib field in the database.
	FieldSourcesBib = "sources_bib"
	// FieldResearchSummary holds the string denoting the research_summary field in the database.
	FieldResearchSummary = "research_summary"
	// FieldQualityMetrics holds the string denoting the quality_metrics field in the database.
	FieldQualityMetrics = "quality_metrics"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// ResearchTaskFieldID holds the string denoting the ID field of the ResearchTask.
	ResearchTaskFieldID = "task_id"
	// Table holds the table name of the report in the database.
	Table = "reports"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "reports"
	// TaskInverseTable is the table name for the ResearchTask entity.
	// It exists in this package in order to avoid circular dependency with the "researchtask" package.
	TaskInverseTable = "research_tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldReportMd,
	FieldSourcesBib,
	FieldResearchSummary,
	FieldQualityMetrics,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByReportMd orders the results by the report_md field.
func ByReportMd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportMd, opts...).ToFunc()
}

// BySourcesBib orders the results by the sources_bib field.
func BySourcesBib(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcesBib, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, ResearchTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
	)
}
