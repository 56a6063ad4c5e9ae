// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delver-project/delver/ent/predicate"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/pkg/models"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportMd sets the "report_md" field.
func (_u *ReportUpdate) SetReportMd(v string) *ReportUpdate {
	_u.mutation.SetReportMd(v)
	return _u
}

// SetNillableReportMd sets the "report_md" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableReportMd(v *string) *ReportUpdate {
	if v != nil {
		_u.SetReportMd(*v)
	}
	return _u
}

// SetSourcesBib sets the "sources_bib" field.
func (_u *ReportUpdate) SetSourcesBib(v string) *ReportUpdate {
	_u.mutation.SetSourcesBib(v)
	return _u
}

// SetNillableSourcesBib sets the "sources_bib" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSourcesBib(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSourcesBib(*v)
	}
	return _u
}

// ClearSourcesBib clears the value of the "sources_bib" field.
func (_u *ReportUpdate) ClearSourcesBib() *ReportUpdate {
	_u.mutation.ClearSourcesBib()
	return _u
}

// SetResearchSummary sets the "research_summary" field.
func (_u *ReportUpdate) SetResearchSummary(v *models.ResearchSummary) *ReportUpdate {
	_u.mutation.SetResearchSummary(v)
	return _u
}

// ClearResearchSummary clears the value of the "research_summary" field.
func (_u *ReportUpdate) ClearResearchSummary() *ReportUpdate {
	_u.mutation.ClearResearchSummary()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *ReportUpdate) SetQualityMetrics(v *models.QualityMetrics) *ReportUpdate {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *ReportUpdate) ClearQualityMetrics() *ReportUpdate {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.task"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportMd(); ok {
		_spec.SetField(report.FieldReportMd, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcesBib(); ok {
		_spec.SetField(report.FieldSourcesBib, field.TypeString, value)
	}
	if _u.mutation.SourcesBibCleared() {
		_spec.ClearField(report.FieldSourcesBib, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchSummary(); ok {
		_spec.SetField(report.FieldResearchSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResearchSummaryCleared() {
		_spec.ClearField(report.FieldResearchSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(report.FieldQualityMetrics, field.TypeJSON, value)
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(report.FieldQualityMetrics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetReportMd sets the "report_md" field.
func (_u *ReportUpdateOne) SetReportMd(v string) *ReportUpdateOne {
	_u.mutation.SetReportMd(v)
	return _u
}

// SetNillableReportMd sets the "report_md" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableReportMd(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetReportMd(*v)
	}
	return _u
}

// SetSourcesBib sets the "sources_bib" field.
func (_u *ReportUpdateOne) SetSourcesBib(v string) *ReportUpdateOne {
	_u.mutation.SetSourcesBib(v)
	return _u
}

// SetNillableSourcesBib sets the "sources_bib" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSourcesBib(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSourcesBib(*v)
	}
	return _u
}

// ClearSourcesBib clears the value of the "sources_bib" field.
func (_u *ReportUpdateOne) ClearSourcesBib() *ReportUpdateOne {
	_u.mutation.ClearSourcesBib()
	return _u
}

// SetResearchSummary sets the "research_summary" field.
func (_u *ReportUpdateOne) SetResearchSummary(v *models.ResearchSummary) *ReportUpdateOne {
	_u.mutation.SetResearchSummary(v)
	return _u
}

// ClearResearchSummary clears the value of the "research_summary" field.
func (_u *ReportUpdateOne) ClearResearchSummary() *ReportUpdateOne {
	_u.mutation.ClearResearchSummary()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *ReportUpdateOne) SetQualityMetrics(v *models.QualityMetrics) *ReportUpdateOne {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *ReportUpdateOne) ClearQualityMetrics() *ReportUpdateOne {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.task"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.ReportMd(); ok {
		_spec.SetField(report.FieldReportMd, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcesBib(); ok {
		_spec.SetField(report.FieldSourcesBib, field.TypeString, value)
	}
	if _u.mutation.SourcesBibCleared() {
		_spec.ClearField(report.FieldSourcesBib, field.TypeString)
	}
	if value, ok := _u.mutation.ResearchSummary(); ok {
		_spec.SetField(report.FieldResearchSummary, field.TypeJSON, value)
	}
	if _u.mutation.ResearchSummaryCleared() {
		_spec.ClearField(report.FieldResearchSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(report.FieldQualityMetrics, field.TypeJSON, value)
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(report.FieldQualityMetrics, field.TypeJSON)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
