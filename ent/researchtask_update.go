// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delver-project/delver/ent/predicate"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/tasklog"
)

// ResearchTaskUpdate is the builder for updating ResearchTask entities.
type ResearchTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdate) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *ResearchTaskUpdate) SetQuery(v string) *ResearchTaskUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableQuery(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchTaskUpdate) SetStatus(v researchtask.Status) *ResearchTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableStatus(v *researchtask.Status) *ResearchTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ResearchTaskUpdate) SetDetails(v string) *ResearchTaskUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableDetails(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ResearchTaskUpdate) ClearDetails() *ResearchTaskUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchTaskUpdate) SetUpdatedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchTaskUpdate) SetStartedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableStartedAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchTaskUpdate) ClearStartedAt() *ResearchTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchTaskUpdate) SetCompletedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableCompletedAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchTaskUpdate) ClearCompletedAt() *ResearchTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *ResearchTaskUpdate) SetEvidenceCount(v int) *ResearchTaskUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableEvidenceCount(v *int) *ResearchTaskUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *ResearchTaskUpdate) AddEvidenceCount(v int) *ResearchTaskUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetSourcesSummary sets the "sources_summary" field.
func (_u *ResearchTaskUpdate) SetSourcesSummary(v string) *ResearchTaskUpdate {
	_u.mutation.SetSourcesSummary(v)
	return _u
}

// SetNillableSourcesSummary sets the "sources_summary" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableSourcesSummary(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetSourcesSummary(*v)
	}
	return _u
}

// ClearSourcesSummary clears the value of the "sources_summary" field.
func (_u *ResearchTaskUpdate) ClearSourcesSummary() *ResearchTaskUpdate {
	_u.mutation.ClearSourcesSummary()
	return _u
}

// SetReportID sets the "report" edge to the Report entity by ID.
func (_u *ResearchTaskUpdate) SetReportID(id string) *ResearchTaskUpdate {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the Report entity by ID if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableReportID(id *string) *ResearchTaskUpdate {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ResearchTaskUpdate) SetReport(v *Report) *ResearchTaskUpdate {
	return _u.SetReportID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TaskLog entity by IDs.
func (_u *ResearchTaskUpdate) AddLogIDs(ids ...int) *ResearchTaskUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the TaskLog entity.
func (_u *ResearchTaskUpdate) AddLogs(v ...*TaskLog) *ResearchTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdate) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ResearchTaskUpdate) ClearReport() *ResearchTaskUpdate {
	_u.mutation.ClearReport()
	return _u
}

// ClearLogs clears all "logs" edges to the TaskLog entity.
func (_u *ResearchTaskUpdate) ClearLogs() *ResearchTaskUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to TaskLog entities by IDs.
func (_u *ResearchTaskUpdate) RemoveLogIDs(ids ...int) *ResearchTaskUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to TaskLog entities.
func (_u *ResearchTaskUpdate) RemoveLogs(v ...*TaskLog) *ResearchTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchTaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchTaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchtask.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(researchtask.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(researchtask.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(researchtask.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(researchtask.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcesSummary(); ok {
		_spec.SetField(researchtask.FieldSourcesSummary, field.TypeString, value)
	}
	if _u.mutation.SourcesSummaryCleared() {
		_spec.ClearField(researchtask.FieldSourcesSummary, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchtask.ReportTable,
			Columns: []string{researchtask.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchtask.ReportTable,
			Columns: []string{researchtask.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchTaskUpdateOne is the builder for updating a single ResearchTask entity.
type ResearchTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// SetQuery sets the "query" field.
func (_u *ResearchTaskUpdateOne) SetQuery(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableQuery(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchTaskUpdateOne) SetStatus(v researchtask.Status) *ResearchTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableStatus(v *researchtask.Status) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ResearchTaskUpdateOne) SetDetails(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableDetails(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetDetails(*v)
	}
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ResearchTaskUpdateOne) ClearDetails() *ResearchTaskUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResearchTaskUpdateOne) SetUpdatedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchTaskUpdateOne) SetStartedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchTaskUpdateOne) ClearStartedAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchTaskUpdateOne) SetCompletedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchTaskUpdateOne) ClearCompletedAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *ResearchTaskUpdateOne) SetEvidenceCount(v int) *ResearchTaskUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableEvidenceCount(v *int) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *ResearchTaskUpdateOne) AddEvidenceCount(v int) *ResearchTaskUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetSourcesSummary sets the "sources_summary" field.
func (_u *ResearchTaskUpdateOne) SetSourcesSummary(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetSourcesSummary(v)
	return _u
}

// SetNillableSourcesSummary sets the "sources_summary" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableSourcesSummary(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetSourcesSummary(*v)
	}
	return _u
}

// ClearSourcesSummary clears the value of the "sources_summary" field.
func (_u *ResearchTaskUpdateOne) ClearSourcesSummary() *ResearchTaskUpdateOne {
	_u.mutation.ClearSourcesSummary()
	return _u
}

// SetReportID sets the "report" edge to the Report entity by ID.
func (_u *ResearchTaskUpdateOne) SetReportID(id string) *ResearchTaskUpdateOne {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the Report entity by ID if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableReportID(id *string) *ResearchTaskUpdateOne {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ResearchTaskUpdateOne) SetReport(v *Report) *ResearchTaskUpdateOne {
	return _u.SetReportID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TaskLog entity by IDs.
func (_u *ResearchTaskUpdateOne) AddLogIDs(ids ...int) *ResearchTaskUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the TaskLog entity.
func (_u *ResearchTaskUpdateOne) AddLogs(v ...*TaskLog) *ResearchTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdateOne) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ResearchTaskUpdateOne) ClearReport() *ResearchTaskUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// ClearLogs clears all "logs" edges to the TaskLog entity.
func (_u *ResearchTaskUpdateOne) ClearLogs() *ResearchTaskUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to TaskLog entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveLogIDs(ids ...int) *ResearchTaskUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to TaskLog entities.
func (_u *ResearchTaskUpdateOne) RemoveLogs(v ...*TaskLog) *ResearchTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdateOne) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchTaskUpdateOne) Select(field string, fields ...string) *ResearchTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchTask entity.
func (_u *ResearchTaskUpdateOne) Save(ctx context.Context) (*ResearchTask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) SaveX(ctx context.Context) *ResearchTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResearchTaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := researchtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdateOne) sqlSave(ctx context.Context) (_node *ResearchTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchtask.FieldID)
		for _, f := range fields {
			if !researchtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchtask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(researchtask.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(researchtask.FieldDetails, field.TypeString, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(researchtask.FieldDetails, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(researchtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(researchtask.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(researchtask.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SourcesSummary(); ok {
		_spec.SetField(researchtask.FieldSourcesSummary, field.TypeString, value)
	}
	if _u.mutation.SourcesSummaryCleared() {
		_spec.ClearField(researchtask.FieldSourcesSummary, field.TypeString)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchtask.ReportTable,
			Columns: []string{researchtask.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   researchtask.ReportTable,
			Columns: []string{researchtask.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.LogsTable,
			Columns: []string{researchtask.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
