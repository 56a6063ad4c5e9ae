// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "report_md", Type: field.TypeString, Size: 2147483647},
		{Name: "sources_bib", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "research_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_research_tasks_report",
				Columns:    []*schema.Column{ReportsColumns[6]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
		},
	}
	// ResearchTasksColumns holds the columns for the "research_tasks" table.
	ResearchTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"simple", "deep"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"accepted", "running", "completed", "failed"}, Default: "accepted"},
		{Name: "details", Type: field.TypeString, Nullable: true},
		{Name: "max_iterations", Type: field.TypeInt},
		{Name: "min_completion_score", Type: field.TypeFloat64},
		{Name: "budget", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "evidence_count", Type: field.TypeInt, Default: 0},
		{Name: "sources_summary", Type: field.TypeString, Nullable: true},
	}
	// ResearchTasksTable holds the schema information for the "research_tasks" table.
	ResearchTasksTable = &schema.Table{
		Name:       "research_tasks",
		Columns:    ResearchTasksColumns,
		PrimaryKey: []*schema.Column{ResearchTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchtask_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[3]},
			},
			{
				Name:    "researchtask_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[8]},
			},
			{
				Name:    "researchtask_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[3], ResearchTasksColumns[8]},
			},
		},
	}
	// TaskLogsColumns holds the columns for the "task_logs" table.
	TaskLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"debug", "info", "warning", "error"}, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskLogsTable holds the schema information for the "task_logs" table.
	TaskLogsTable = &schema.Table{
		Name:       "task_logs",
		Columns:    TaskLogsColumns,
		PrimaryKey: []*schema.Column{TaskLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_logs_research_tasks_logs",
				Columns:    []*schema.Column{TaskLogsColumns[4]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasklog_task_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TaskLogsColumns[4], TaskLogsColumns[3]},
			},
			{
				Name:    "tasklog_level",
				Unique:  false,
				Columns: []*schema.Column{TaskLogsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReportsTable,
		ResearchTasksTable,
		TaskLogsTable,
	}
)

func init() {
	ReportsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	TaskLogsTable.ForeignKeys[0].RefTable = ResearchTasksTable
}
