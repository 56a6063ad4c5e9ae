// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/tasklog"
)

// ResearchTaskCreate is the builder for creating a ResearchTask entity.
type ResearchTaskCreate struct {
	config
	mutation *ResearchTaskMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *ResearchTaskCreate) SetQuery(v string) *ResearchTaskCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResearchTaskCreate) SetKind(v researchtask.Kind) *ResearchTaskCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchTaskCreate) SetStatus(v researchtask.Status) *ResearchTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableStatus(v *researchtask.Status) *ResearchTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ResearchTaskCreate) SetDetails(v string) *ResearchTaskCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableDetails(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetMaxIterations sets the "max_iterations" field.
func (_c *ResearchTaskCreate) SetMaxIterations(v int) *ResearchTaskCreate {
	_c.mutation.SetMaxIterations(v)
	return _c
}

// SetMinCompletionScore sets the "min_completion_score" field.
func (_c *ResearchTaskCreate) SetMinCompletionScore(v float64) *ResearchTaskCreate {
	_c.mutation.SetMinCompletionScore(v)
	return _c
}

// SetBudget sets the "budget" field.
func (_c *ResearchTaskCreate) SetBudget(v int) *ResearchTaskCreate {
	_c.mutation.SetBudget(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchTaskCreate) SetCreatedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableCreatedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResearchTaskCreate) SetUpdatedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableUpdatedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ResearchTaskCreate) SetStartedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableStartedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchTaskCreate) SetCompletedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableCompletedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *ResearchTaskCreate) SetEvidenceCount(v int) *ResearchTaskCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableEvidenceCount(v *int) *ResearchTaskCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetSourcesSummary sets the "sources_summary" field.
func (_c *ResearchTaskCreate) SetSourcesSummary(v string) *ResearchTaskCreate {
	_c.mutation.SetSourcesSummary(v)
	return _c
}

// SetNillableSourcesSummary sets the "sources_summary" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableSourcesSummary(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetSourcesSummary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchTaskCreate) SetID(v string) *ResearchTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetReportID sets the "report" edge to the Report entity by ID.
func (_c *ResearchTaskCreate) SetReportID(id string) *ResearchTaskCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the Report entity by ID if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableReportID(id *string) *ResearchTaskCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *ResearchTaskCreate) SetReport(v *Report) *ResearchTaskCreate {
	return _c.SetReportID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TaskLog entity by IDs.
func (_c *ResearchTaskCreate) AddLogIDs(ids ...int) *ResearchTaskCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the TaskLog entity.
func (_c *ResearchTaskCreate) AddLogs(v ...*TaskLog) *ResearchTaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_c *ResearchTaskCreate) Mutation() *ResearchTaskMutation {
	return _c.mutation
}

// Save creates the ResearchTask in the database.
func (_c *ResearchTaskCreate) Save(ctx context.Context) (*ResearchTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchTaskCreate) SaveX(ctx context.Context) *ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := researchtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := researchtask.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := researchtask.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchTaskCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ResearchTask.query"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ResearchTask.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := researchtask.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxIterations(); !ok {
		return &ValidationError{Name: "max_iterations", err: errors.New(`ent: missing required field "ResearchTask.max_iterations"`)}
	}
	if _, ok := _c.mutation.MinCompletionScore(); !ok {
		return &ValidationError{Name: "min_completion_score", err: errors.New(`ent: missing required field "ResearchTask.min_completion_score"`)}
	}
	if _, ok := _c.mutation.Budget(); !ok {
		return &ValidationError{Name: "budget", err: errors.New(`ent: missing required field "ResearchTask.budget"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchTask.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ResearchTask.updated_at"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "ResearchTask.evidence_count"`)}
	}
	return nil
}

func (_c *ResearchTaskCreate) sqlSave(ctx context.Context) (*ResearchTask, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ResearchTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchTaskCreate) createSpec() (*ResearchTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchtask.Table, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(researchtask.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(researchtask.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(researchtask.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.MaxIterations(); ok {
		_spec.SetField(researchtask.FieldMaxIterations, field.TypeInt, value)
		_node.MaxIterations = value
	}
	if value, ok := _c.mutation.MinCompletionScore(); ok {
		_spec.SetField(researchtask.FieldMinCompletionScore, field.TypeFloat64, value)
		_node.MinCompletionScore = value
	}
	if value, ok := _c.mutation.Budget(); ok {
		_spec.SetField(researchtask.FieldBudget, field.TypeInt, value)
		_node.Budget = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(researchtask.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(researchtask.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.SourcesSummary(); ok {
		_spec.SetField(researchtask.FieldSourcesSummary, field.TypeString, value)
		_node.SourcesSummary = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResearchTaskCreateBulk is the builder for creating many ResearchTask entities in bulk.
type ResearchTaskCreateBulk struct {
	config
	err      error
	builders []*ResearchTaskCreate
}

// Save creates the ResearchTask entities in the database.
func (_c *ResearchTaskCreateBulk) Save(ctx context.Context) ([]*ResearchTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchTaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResearchTaskCreateBulk) SaveX(ctx context.Context) []*ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
