// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
)

// ResearchTask is the model entity for the ResearchTask schema.
type ResearchTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Research question as submitted
	Query string `json:"query,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind researchtask.Kind `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status researchtask.Status `json:"status,omitempty"`
	// Failure reason, or degradation marker on completed tasks
	Details string `json:"details,omitempty"`
	// MaxIterations holds the value of the "max_iterations" field.
	MaxIterations int `json:"max_iterations,omitempty"`
	// MinCompletionScore holds the value of the "min_completion_score" field.
	MinCompletionScore float64 `json:"min_completion_score,omitempty"`
	// Provider call budget snapshotted at intake
	Budget int `json:"budget,omitempty"`
	// When the task was accepted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker picked the task up (transitioned to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// EvidenceCount holds the value of the "evidence_count" field.
	EvidenceCount int `json:"evidence_count,omitempty"`
	// SourcesSummary holds the value of the "sources_summary" field.
	SourcesSummary string `json:"sources_summary,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchTaskQuery when eager-loading is set.
	Edges        ResearchTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchTaskEdges holds the relations/edges for other nodes in the graph.
type ResearchTaskEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// Logs holds the value of the logs edge.
	Logs []*TaskLog `json:"logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchTaskEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) LogsOrErr() ([]*TaskLog, error) {
	if e.loadedTypes[1] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldMinCompletionScore:
			values[i] = new(sql.NullFloat64)
		case researchtask.FieldMaxIterations, researchtask.FieldBudget, researchtask.FieldEvidenceCount:
			values[i] = new(sql.NullInt64)
		case researchtask.FieldID, researchtask.FieldQuery, researchtask.FieldKind, researchtask.FieldStatus, researchtask.FieldDetails, researchtask.FieldSourcesSummary:
			values[i] = new(sql.NullString)
		case researchtask.FieldCreatedAt, researchtask.FieldUpdatedAt, researchtask.FieldStartedAt, researchtask.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchTask fields.
func (_m *ResearchTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchtask.FieldQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query", values[i])
			} else if value.Valid {
				_m.Query = value.String
			}
		case researchtask.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = researchtask.Kind(value.String)
			}
		case researchtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchtask.Status(value.String)
			}
		case researchtask.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case researchtask.FieldMaxIterations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_iterations", values[i])
			} else if value.Valid {
				_m.MaxIterations = int(value.Int64)
			}
		case researchtask.FieldMinCompletionScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_completion_score", values[i])
			} else if value.Valid {
				_m.MinCompletionScore = value.Float64
			}
		case researchtask.FieldBudget:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field budget", values[i])
			} else if value.Valid {
				_m.Budget = int(value.Int64)
			}
		case researchtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchtask.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case researchtask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchtask.FieldEvidenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_count", values[i])
			} else if value.Valid {
				_m.EvidenceCount = int(value.Int64)
			}
		case researchtask.FieldSourcesSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sources_summary", values[i])
			} else if value.Valid {
				_m.SourcesSummary = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchTask.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryReport() *ReportQuery {
	return NewResearchTaskClient(_m.config).QueryReport(_m)
}

// QueryLogs queries the "logs" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryLogs() *TaskLogQuery {
	return NewResearchTaskClient(_m.config).QueryLogs(_m)
}

// Update returns a builder for updating this ResearchTask.
// Note that you need to call ResearchTask.Unwrap() before calling this method if this ResearchTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchTask) Update() *ResearchTaskUpdateOne {
	return NewResearchTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchTask) Unwrap() *ResearchTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchTask) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("query=")
	builder.WriteString(_m.Query)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("max_iterations=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxIterations))
	builder.WriteString(", ")
	builder.WriteString("min_completion_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinCompletionScore))
	builder.WriteString(", ")
	builder.WriteString("budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.Budget))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("evidence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceCount))
	builder.WriteString(", ")
	builder.WriteString("sources_summary=")
	builder.WriteString(_m.SourcesSummary)
	builder.WriteByte(')')
	return builder.String()
}

// ResearchTasks is a parsable slice of ResearchTask.
type ResearchTasks []*ResearchTask
