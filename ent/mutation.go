// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/delver-project/delver/ent/predicate"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/tasklog"
	"github.com/delver-project/delver/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReport       = "Report"
	TypeResearchTask = "ResearchTask"
	TypeTaskLog      = "TaskLog"
)

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op               Op
	typ              string
	id               *string
	report_md        *string
	sources_bib      *string
	research_summary **models.ResearchSummary
	quality_metrics  **models.QualityMetrics
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*Report, error)
	predicates       []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ReportMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ReportMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ReportMutation) ResetTaskID() {
	m.task = nil
}

// SetReportMd sets the "report_md" field.
func (m *ReportMutation) SetReportMd(s string) {
	m.report_md = &s
}

// ReportMd returns the value of the "report_md" field in the mutation.
func (m *ReportMutation) ReportMd() (r string, exists bool) {
	v := m.report_md
	if v == nil {
		return
	}
	return *v, true
}

// OldReportMd returns the old "report_md" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReportMd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportMd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportMd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportMd: %w", err)
	}
	return oldValue.ReportMd, nil
}

// ResetReportMd resets all changes to the "report_md" field.
func (m *ReportMutation) ResetReportMd() {
	m.report_md = nil
}

// SetSourcesBib sets the "sources_bib" field.
func (m *ReportMutation) SetSourcesBib(s string) {
	m.sources_bib = &s
}

// SourcesBib returns the value of the "sources_bib" field in the mutation.
func (m *ReportMutation) SourcesBib() (r string, exists bool) {
	v := m.sources_bib
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcesBib returns the old "sources_bib" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSourcesBib(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcesBib is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcesBib requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcesBib: %w", err)
	}
	return oldValue.SourcesBib, nil
}

// ClearSourcesBib clears the value of the "sources_bib" field.
func (m *ReportMutation) ClearSourcesBib() {
	m.sources_bib = nil
	m.clearedFields[report.FieldSourcesBib] = struct{}{}
}

// SourcesBibCleared returns if the "sources_bib" field was cleared in this mutation.
func (m *ReportMutation) SourcesBibCleared() bool {
	_, ok := m.clearedFields[report.FieldSourcesBib]
	return ok
}

// ResetSourcesBib resets all changes to the "sources_bib" field.
func (m *ReportMutation) ResetSourcesBib() {
	m.sources_bib = nil
	delete(m.clearedFields, report.FieldSourcesBib)
}

// SetResearchSummary sets the "research_summary" field.
func (m *ReportMutation) SetResearchSummary(ms *models.ResearchSummary) {
	m.research_summary = &ms
}

// ResearchSummary returns the value of the "research_summary" field in the mutation.
func (m *ReportMutation) ResearchSummary() (r *models.ResearchSummary, exists bool) {
	v := m.research_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchSummary returns the old "research_summary" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldResearchSummary(ctx context.Context) (v *models.ResearchSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchSummary: %w", err)
	}
	return oldValue.ResearchSummary, nil
}

// ClearResearchSummary clears the value of the "research_summary" field.
func (m *ReportMutation) ClearResearchSummary() {
	m.research_summary = nil
	m.clearedFields[report.FieldResearchSummary] = struct{}{}
}

// ResearchSummaryCleared returns if the "research_summary" field was cleared in this mutation.
func (m *ReportMutation) ResearchSummaryCleared() bool {
	_, ok := m.clearedFields[report.FieldResearchSummary]
	return ok
}

// ResetResearchSummary resets all changes to the "research_summary" field.
func (m *ReportMutation) ResetResearchSummary() {
	m.research_summary = nil
	delete(m.clearedFields, report.FieldResearchSummary)
}

// SetQualityMetrics sets the "quality_metrics" field.
func (m *ReportMutation) SetQualityMetrics(mm *models.QualityMetrics) {
	m.quality_metrics = &mm
}

// QualityMetrics returns the value of the "quality_metrics" field in the mutation.
func (m *ReportMutation) QualityMetrics() (r *models.QualityMetrics, exists bool) {
	v := m.quality_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityMetrics returns the old "quality_metrics" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldQualityMetrics(ctx context.Context) (v *models.QualityMetrics, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityMetrics: %w", err)
	}
	return oldValue.QualityMetrics, nil
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (m *ReportMutation) ClearQualityMetrics() {
	m.quality_metrics = nil
	m.clearedFields[report.FieldQualityMetrics] = struct{}{}
}

// QualityMetricsCleared returns if the "quality_metrics" field was cleared in this mutation.
func (m *ReportMutation) QualityMetricsCleared() bool {
	_, ok := m.clearedFields[report.FieldQualityMetrics]
	return ok
}

// ResetQualityMetrics resets all changes to the "quality_metrics" field.
func (m *ReportMutation) ResetQualityMetrics() {
	m.quality_metrics = nil
	delete(m.clearedFields, report.FieldQualityMetrics)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *ReportMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[report.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *ReportMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ReportMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, report.FieldTaskID)
	}
	if m.report_md != nil {
		fields = append(fields, report.FieldReportMd)
	}
	if m.sources_bib != nil {
		fields = append(fields, report.FieldSourcesBib)
	}
	if m.research_summary != nil {
		fields = append(fields, report.FieldResearchSummary)
	}
	if m.quality_metrics != nil {
		fields = append(fields, report.FieldQualityMetrics)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldTaskID:
		return m.TaskID()
	case report.FieldReportMd:
		return m.ReportMd()
	case report.FieldSourcesBib:
		return m.SourcesBib()
	case report.FieldResearchSummary:
		return m.ResearchSummary()
	case report.FieldQualityMetrics:
		return m.QualityMetrics()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldTaskID:
		return m.OldTaskID(ctx)
	case report.FieldReportMd:
		return m.OldReportMd(ctx)
	case report.FieldSourcesBib:
		return m.OldSourcesBib(ctx)
	case report.FieldResearchSummary:
		return m.OldResearchSummary(ctx)
	case report.FieldQualityMetrics:
		return m.OldQualityMetrics(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case report.FieldReportMd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportMd(v)
		return nil
	case report.FieldSourcesBib:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcesBib(v)
		return nil
	case report.FieldResearchSummary:
		v, ok := value.(*models.ResearchSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchSummary(v)
		return nil
	case report.FieldQualityMetrics:
		v, ok := value.(*models.QualityMetrics)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityMetrics(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldSourcesBib) {
		fields = append(fields, report.FieldSourcesBib)
	}
	if m.FieldCleared(report.FieldResearchSummary) {
		fields = append(fields, report.FieldResearchSummary)
	}
	if m.FieldCleared(report.FieldQualityMetrics) {
		fields = append(fields, report.FieldQualityMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldSourcesBib:
		m.ClearSourcesBib()
		return nil
	case report.FieldResearchSummary:
		m.ClearResearchSummary()
		return nil
	case report.FieldQualityMetrics:
		m.ClearQualityMetrics()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldTaskID:
		m.ResetTaskID()
		return nil
	case report.FieldReportMd:
		m.ResetReportMd()
		return nil
	case report.FieldSourcesBib:
		m.ResetSourcesBib()
		return nil
	case report.FieldResearchSummary:
		m.ResetResearchSummary()
		return nil
	case report.FieldQualityMetrics:
		m.ResetQualityMetrics()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, report.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, report.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// ResearchTaskMutation represents an operation that mutates the ResearchTask nodes in the graph.
type ResearchTaskMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	query                   *string
	kind                    *researchtask.Kind
	status                  *researchtask.Status
	details                 *string
	max_iterations          *int
	addmax_iterations       *int
	min_completion_score    *float64
	addmin_completion_score *float64
	budget                  *int
	addbudget               *int
	created_at              *time.Time
	updated_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	evidence_count          *int
	addevidence_count       *int
	sources_summary         *string
	clearedFields           map[string]struct{}
	report                  *string
	clearedreport           bool
	logs                    map[int]struct{}
	removedlogs             map[int]struct{}
	clearedlogs             bool
	done                    bool
	oldValue                func(context.Context) (*ResearchTask, error)
	predicates              []predicate.ResearchTask
}

var _ ent.Mutation = (*ResearchTaskMutation)(nil)

// researchtaskOption allows management of the mutation configuration using functional options.
type researchtaskOption func(*ResearchTaskMutation)

// newResearchTaskMutation creates new mutation for the ResearchTask entity.
func newResearchTaskMutation(c config, op Op, opts ...researchtaskOption) *ResearchTaskMutation {
	m := &ResearchTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchTaskID sets the ID field of the mutation.
func withResearchTaskID(id string) researchtaskOption {
	return func(m *ResearchTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchTask
		)
		m.oldValue = func(ctx context.Context) (*ResearchTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchTask sets the old ResearchTask of the mutation.
func withResearchTask(node *ResearchTask) researchtaskOption {
	return func(m *ResearchTaskMutation) {
		m.oldValue = func(context.Context) (*ResearchTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchTask entities.
func (m *ResearchTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *ResearchTaskMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ResearchTaskMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *ResearchTaskMutation) ResetQuery() {
	m.query = nil
}

// SetKind sets the "kind" field.
func (m *ResearchTaskMutation) SetKind(r researchtask.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ResearchTaskMutation) Kind() (r researchtask.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldKind(ctx context.Context) (v researchtask.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ResearchTaskMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ResearchTaskMutation) SetStatus(r researchtask.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResearchTaskMutation) Status() (r researchtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldStatus(ctx context.Context) (v researchtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResearchTaskMutation) ResetStatus() {
	m.status = nil
}

// SetDetails sets the "details" field.
func (m *ResearchTaskMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *ResearchTaskMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ResearchTaskMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[researchtask.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ResearchTaskMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ResearchTaskMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, researchtask.FieldDetails)
}

// SetMaxIterations sets the "max_iterations" field.
func (m *ResearchTaskMutation) SetMaxIterations(i int) {
	m.max_iterations = &i
	m.addmax_iterations = nil
}

// MaxIterations returns the value of the "max_iterations" field in the mutation.
func (m *ResearchTaskMutation) MaxIterations() (r int, exists bool) {
	v := m.max_iterations
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxIterations returns the old "max_iterations" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldMaxIterations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxIterations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxIterations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxIterations: %w", err)
	}
	return oldValue.MaxIterations, nil
}

// AddMaxIterations adds i to the "max_iterations" field.
func (m *ResearchTaskMutation) AddMaxIterations(i int) {
	if m.addmax_iterations != nil {
		*m.addmax_iterations += i
	} else {
		m.addmax_iterations = &i
	}
}

// AddedMaxIterations returns the value that was added to the "max_iterations" field in this mutation.
func (m *ResearchTaskMutation) AddedMaxIterations() (r int, exists bool) {
	v := m.addmax_iterations
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxIterations resets all changes to the "max_iterations" field.
func (m *ResearchTaskMutation) ResetMaxIterations() {
	m.max_iterations = nil
	m.addmax_iterations = nil
}

// SetMinCompletionScore sets the "min_completion_score" field.
func (m *ResearchTaskMutation) SetMinCompletionScore(f float64) {
	m.min_completion_score = &f
	m.addmin_completion_score = nil
}

// MinCompletionScore returns the value of the "min_completion_score" field in the mutation.
func (m *ResearchTaskMutation) MinCompletionScore() (r float64, exists bool) {
	v := m.min_completion_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMinCompletionScore returns the old "min_completion_score" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldMinCompletionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinCompletionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinCompletionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinCompletionScore: %w", err)
	}
	return oldValue.MinCompletionScore, nil
}

// AddMinCompletionScore adds f to the "min_completion_score" field.
func (m *ResearchTaskMutation) AddMinCompletionScore(f float64) {
	if m.addmin_completion_score != nil {
		*m.addmin_completion_score += f
	} else {
		m.addmin_completion_score = &f
	}
}

// AddedMinCompletionScore returns the value that was added to the "min_completion_score" field in this mutation.
func (m *ResearchTaskMutation) AddedMinCompletionScore() (r float64, exists bool) {
	v := m.addmin_completion_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinCompletionScore resets all changes to the "min_completion_score" field.
func (m *ResearchTaskMutation) ResetMinCompletionScore() {
	m.min_completion_score = nil
	m.addmin_completion_score = nil
}

// SetBudget sets the "budget" field.
func (m *ResearchTaskMutation) SetBudget(i int) {
	m.budget = &i
	m.addbudget = nil
}

// Budget returns the value of the "budget" field in the mutation.
func (m *ResearchTaskMutation) Budget() (r int, exists bool) {
	v := m.budget
	if v == nil {
		return
	}
	return *v, true
}

// OldBudget returns the old "budget" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldBudget(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudget: %w", err)
	}
	return oldValue.Budget, nil
}

// AddBudget adds i to the "budget" field.
func (m *ResearchTaskMutation) AddBudget(i int) {
	if m.addbudget != nil {
		*m.addbudget += i
	} else {
		m.addbudget = &i
	}
}

// AddedBudget returns the value that was added to the "budget" field in this mutation.
func (m *ResearchTaskMutation) AddedBudget() (r int, exists bool) {
	v := m.addbudget
	if v == nil {
		return
	}
	return *v, true
}

// ResetBudget resets all changes to the "budget" field.
func (m *ResearchTaskMutation) ResetBudget() {
	m.budget = nil
	m.addbudget = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResearchTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResearchTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResearchTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ResearchTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ResearchTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ResearchTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[researchtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ResearchTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, researchtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ResearchTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ResearchTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ResearchTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[researchtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ResearchTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ResearchTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, researchtask.FieldCompletedAt)
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *ResearchTaskMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *ResearchTaskMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *ResearchTaskMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *ResearchTaskMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *ResearchTaskMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetSourcesSummary sets the "sources_summary" field.
func (m *ResearchTaskMutation) SetSourcesSummary(s string) {
	m.sources_summary = &s
}

// SourcesSummary returns the value of the "sources_summary" field in the mutation.
func (m *ResearchTaskMutation) SourcesSummary() (r string, exists bool) {
	v := m.sources_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcesSummary returns the old "sources_summary" field's value of the ResearchTask entity.
// If the ResearchTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchTaskMutation) OldSourcesSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcesSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcesSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcesSummary: %w", err)
	}
	return oldValue.SourcesSummary, nil
}

// ClearSourcesSummary clears the value of the "sources_summary" field.
func (m *ResearchTaskMutation) ClearSourcesSummary() {
	m.sources_summary = nil
	m.clearedFields[researchtask.FieldSourcesSummary] = struct{}{}
}

// SourcesSummaryCleared returns if the "sources_summary" field was cleared in this mutation.
func (m *ResearchTaskMutation) SourcesSummaryCleared() bool {
	_, ok := m.clearedFields[researchtask.FieldSourcesSummary]
	return ok
}

// ResetSourcesSummary resets all changes to the "sources_summary" field.
func (m *ResearchTaskMutation) ResetSourcesSummary() {
	m.sources_summary = nil
	delete(m.clearedFields, researchtask.FieldSourcesSummary)
}

// SetReportID sets the "report" edge to the Report entity by id.
func (m *ResearchTaskMutation) SetReportID(id string) {
	m.report = &id
}

// ClearReport clears the "report" edge to the Report entity.
func (m *ResearchTaskMutation) ClearReport() {
	m.clearedreport = true
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *ResearchTaskMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportID returns the "report" edge ID in the mutation.
func (m *ResearchTaskMutation) ReportID() (id string, exists bool) {
	if m.report != nil {
		return *m.report, true
	}
	return
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ResearchTaskMutation) ReportIDs() (ids []string) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ResearchTaskMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// AddLogIDs adds the "logs" edge to the TaskLog entity by ids.
func (m *ResearchTaskMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the TaskLog entity.
func (m *ResearchTaskMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the TaskLog entity was cleared.
func (m *ResearchTaskMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the TaskLog entity by IDs.
func (m *ResearchTaskMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the TaskLog entity.
func (m *ResearchTaskMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *ResearchTaskMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *ResearchTaskMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the ResearchTaskMutation builder.
func (m *ResearchTaskMutation) Where(ps ...predicate.ResearchTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchTask).
func (m *ResearchTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchTaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.query != nil {
		fields = append(fields, researchtask.FieldQuery)
	}
	if m.kind != nil {
		fields = append(fields, researchtask.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, researchtask.FieldStatus)
	}
	if m.details != nil {
		fields = append(fields, researchtask.FieldDetails)
	}
	if m.max_iterations != nil {
		fields = append(fields, researchtask.FieldMaxIterations)
	}
	if m.min_completion_score != nil {
		fields = append(fields, researchtask.FieldMinCompletionScore)
	}
	if m.budget != nil {
		fields = append(fields, researchtask.FieldBudget)
	}
	if m.created_at != nil {
		fields = append(fields, researchtask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, researchtask.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, researchtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, researchtask.FieldCompletedAt)
	}
	if m.evidence_count != nil {
		fields = append(fields, researchtask.FieldEvidenceCount)
	}
	if m.sources_summary != nil {
		fields = append(fields, researchtask.FieldSourcesSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchtask.FieldQuery:
		return m.Query()
	case researchtask.FieldKind:
		return m.Kind()
	case researchtask.FieldStatus:
		return m.Status()
	case researchtask.FieldDetails:
		return m.Details()
	case researchtask.FieldMaxIterations:
		return m.MaxIterations()
	case researchtask.FieldMinCompletionScore:
		return m.MinCompletionScore()
	case researchtask.FieldBudget:
		return m.Budget()
	case researchtask.FieldCreatedAt:
		return m.CreatedAt()
	case researchtask.FieldUpdatedAt:
		return m.UpdatedAt()
	case researchtask.FieldStartedAt:
		return m.StartedAt()
	case researchtask.FieldCompletedAt:
		return m.CompletedAt()
	case researchtask.FieldEvidenceCount:
		return m.EvidenceCount()
	case researchtask.FieldSourcesSummary:
		return m.SourcesSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchtask.FieldQuery:
		return m.OldQuery(ctx)
	case researchtask.FieldKind:
		return m.OldKind(ctx)
	case researchtask.FieldStatus:
		return m.OldStatus(ctx)
	case researchtask.FieldDetails:
		return m.OldDetails(ctx)
	case researchtask.FieldMaxIterations:
		return m.OldMaxIterations(ctx)
	case researchtask.FieldMinCompletionScore:
		return m.OldMinCompletionScore(ctx)
	case researchtask.FieldBudget:
		return m.OldBudget(ctx)
	case researchtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchtask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case researchtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case researchtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case researchtask.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case researchtask.FieldSourcesSummary:
		return m.OldSourcesSummary(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchtask.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case researchtask.FieldKind:
		v, ok := value.(researchtask.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case researchtask.FieldStatus:
		v, ok := value.(researchtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case researchtask.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case researchtask.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxIterations(v)
		return nil
	case researchtask.FieldMinCompletionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinCompletionScore(v)
		return nil
	case researchtask.FieldBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudget(v)
		return nil
	case researchtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchtask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case researchtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case researchtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case researchtask.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case researchtask.FieldSourcesSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcesSummary(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchTaskMutation) AddedFields() []string {
	var fields []string
	if m.addmax_iterations != nil {
		fields = append(fields, researchtask.FieldMaxIterations)
	}
	if m.addmin_completion_score != nil {
		fields = append(fields, researchtask.FieldMinCompletionScore)
	}
	if m.addbudget != nil {
		fields = append(fields, researchtask.FieldBudget)
	}
	if m.addevidence_count != nil {
		fields = append(fields, researchtask.FieldEvidenceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchtask.FieldMaxIterations:
		return m.AddedMaxIterations()
	case researchtask.FieldMinCompletionScore:
		return m.AddedMinCompletionScore()
	case researchtask.FieldBudget:
		return m.AddedBudget()
	case researchtask.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchtask.FieldMaxIterations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxIterations(v)
		return nil
	case researchtask.FieldMinCompletionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinCompletionScore(v)
		return nil
	case researchtask.FieldBudget:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBudget(v)
		return nil
	case researchtask.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchtask.FieldDetails) {
		fields = append(fields, researchtask.FieldDetails)
	}
	if m.FieldCleared(researchtask.FieldStartedAt) {
		fields = append(fields, researchtask.FieldStartedAt)
	}
	if m.FieldCleared(researchtask.FieldCompletedAt) {
		fields = append(fields, researchtask.FieldCompletedAt)
	}
	if m.FieldCleared(researchtask.FieldSourcesSummary) {
		fields = append(fields, researchtask.FieldSourcesSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchTaskMutation) ClearField(name string) error {
	switch name {
	case researchtask.FieldDetails:
		m.ClearDetails()
		return nil
	case researchtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case researchtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case researchtask.FieldSourcesSummary:
		m.ClearSourcesSummary()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchTaskMutation) ResetField(name string) error {
	switch name {
	case researchtask.FieldQuery:
		m.ResetQuery()
		return nil
	case researchtask.FieldKind:
		m.ResetKind()
		return nil
	case researchtask.FieldStatus:
		m.ResetStatus()
		return nil
	case researchtask.FieldDetails:
		m.ResetDetails()
		return nil
	case researchtask.FieldMaxIterations:
		m.ResetMaxIterations()
		return nil
	case researchtask.FieldMinCompletionScore:
		m.ResetMinCompletionScore()
		return nil
	case researchtask.FieldBudget:
		m.ResetBudget()
		return nil
	case researchtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchtask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case researchtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case researchtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case researchtask.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case researchtask.FieldSourcesSummary:
		m.ResetSourcesSummary()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.report != nil {
		edges = append(edges, researchtask.EdgeReport)
	}
	if m.logs != nil {
		edges = append(edges, researchtask.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchtask.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	case researchtask.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlogs != nil {
		edges = append(edges, researchtask.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchTaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchtask.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedreport {
		edges = append(edges, researchtask.EdgeReport)
	}
	if m.clearedlogs {
		edges = append(edges, researchtask.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case researchtask.EdgeReport:
		return m.clearedreport
	case researchtask.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchTaskMutation) ClearEdge(name string) error {
	switch name {
	case researchtask.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchTaskMutation) ResetEdge(name string) error {
	switch name {
	case researchtask.EdgeReport:
		m.ResetReport()
		return nil
	case researchtask.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown ResearchTask edge %s", name)
}

// TaskLogMutation represents an operation that mutates the TaskLog nodes in the graph.
type TaskLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	level         *tasklog.Level
	message       *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*TaskLog, error)
	predicates    []predicate.TaskLog
}

var _ ent.Mutation = (*TaskLogMutation)(nil)

// tasklogOption allows management of the mutation configuration using functional options.
type tasklogOption func(*TaskLogMutation)

// newTaskLogMutation creates new mutation for the TaskLog entity.
func newTaskLogMutation(c config, op Op, opts ...tasklogOption) *TaskLogMutation {
	m := &TaskLogMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskLogID sets the ID field of the mutation.
func withTaskLogID(id int) tasklogOption {
	return func(m *TaskLogMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskLog
		)
		m.oldValue = func(ctx context.Context) (*TaskLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskLog sets the old TaskLog of the mutation.
func withTaskLog(node *TaskLog) tasklogOption {
	return func(m *TaskLogMutation) {
		m.oldValue = func(context.Context) (*TaskLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskLogMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskLogMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskLog entity.
// If the TaskLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskLogMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskLogMutation) ResetTaskID() {
	m.task = nil
}

// SetLevel sets the "level" field.
func (m *TaskLogMutation) SetLevel(t tasklog.Level) {
	m.level = &t
}

// Level returns the value of the "level" field in the mutation.
func (m *TaskLogMutation) Level() (r tasklog.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the TaskLog entity.
// If the TaskLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskLogMutation) OldLevel(ctx context.Context) (v tasklog.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *TaskLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *TaskLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *TaskLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the TaskLog entity.
// If the TaskLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *TaskLogMutation) ResetMessage() {
	m.message = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TaskLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TaskLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TaskLog entity.
// If the TaskLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TaskLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearTask clears the "task" edge to the ResearchTask entity.
func (m *TaskLogMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[tasklog.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the ResearchTask entity was cleared.
func (m *TaskLogMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskLogMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskLogMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskLogMutation builder.
func (m *TaskLogMutation) Where(ps ...predicate.TaskLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskLog).
func (m *TaskLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, tasklog.FieldTaskID)
	}
	if m.level != nil {
		fields = append(fields, tasklog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, tasklog.FieldMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, tasklog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasklog.FieldTaskID:
		return m.TaskID()
	case tasklog.FieldLevel:
		return m.Level()
	case tasklog.FieldMessage:
		return m.Message()
	case tasklog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasklog.FieldTaskID:
		return m.OldTaskID(ctx)
	case tasklog.FieldLevel:
		return m.OldLevel(ctx)
	case tasklog.FieldMessage:
		return m.OldMessage(ctx)
	case tasklog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown TaskLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasklog.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case tasklog.FieldLevel:
		v, ok := value.(tasklog.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case tasklog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case tasklog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown TaskLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskLogMutation) ResetField(name string) error {
	switch name {
	case tasklog.FieldTaskID:
		m.ResetTaskID()
		return nil
	case tasklog.FieldLevel:
		m.ResetLevel()
		return nil
	case tasklog.FieldMessage:
		m.ResetMessage()
		return nil
	case tasklog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown TaskLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, tasklog.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasklog.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, tasklog.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskLogMutation) EdgeCleared(name string) bool {
	switch name {
	case tasklog.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskLogMutation) ClearEdge(name string) error {
	switch name {
	case tasklog.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskLogMutation) ResetEdge(name string) error {
	switch name {
	case tasklog.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskLog edge %s", name)
}
