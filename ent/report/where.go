// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/delver-project/delver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTaskID, v))
}

// ReportMd applies equality check predicate on the "report_md" field. It's identical to ReportMdEQ.
func ReportMd(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportMd, v))
}

// SourcesBib applies equality check predicate on the "sources_bib" field. It's identical to SourcesBibEQ.
func SourcesBib(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSourcesBib, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTaskID, v))
}

// ReportMdEQ applies the EQ predicate on the "report_md" field.
func ReportMdEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportMd, v))
}

// ReportMdNEQ applies the NEQ predicate on the "report_md" field.
func ReportMdNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReportMd, v))
}

// ReportMdIn applies the In predicate on the "report_md" field.
func ReportMdIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReportMd, vs...))
}

// ReportMdNotIn applies the NotIn predicate on the "report_md" field.
func ReportMdNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReportMd, vs...))
}

// ReportMdGT applies the GT predicate on the "report_md" field.
func ReportMdGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReportMd, v))
}

// ReportMdGTE applies the GTE predicate on the "report_md" field.
func ReportMdGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReportMd, v))
}

// ReportMdLT applies the LT predicate on the "report_md" field.
func ReportMdLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReportMd, v))
}

// ReportMdLTE applies the LTE predicate on the "report_md" field.
func ReportMdLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReportMd, v))
}

// ReportMdContains applies the Contains predicate on the "report_md" field.
func ReportMdContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldReportMd, v))
}

// ReportMdHasPrefix applies the HasPrefix predicate on the "report_md" field.
func ReportMdHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldReportMd, v))
}

// ReportMdHasSuffix applies the HasSuffix predicate on the "report_md" field.
func ReportMdHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldReportMd, v))
}

// ReportMdEqualFold applies the EqualFold predicate on the "report_md" field.
func ReportMdEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldReportMd, v))
}

// ReportMdContainsFold applies the ContainsFold predicate on the "report_md" field.
func ReportMdContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldReportMd, v))
}

// SourcesBibEQ applies the EQ predicate on the "sources_bib" field.
func SourcesBibEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSourcesBib, v))
}

// SourcesBibNEQ applies the NEQ predicate on the "sources_bib" field.
func SourcesBibNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSourcesBib, v))
}

// SourcesBibIn applies the In predicate on the "sources_bib" field.
func SourcesBibIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSourcesBib, vs...))
}

// SourcesBibNotIn applies the NotIn predicate on the "sources_bib" field.
func SourcesBibNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSourcesBib, vs...))
}

// SourcesBibGT applies the GT predicate on the "sources_bib" field.
func SourcesBibGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSourcesBib, v))
}

// SourcesBibGTE applies the GTE predicate on the "sources_bib" field.
func SourcesBibGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSourcesBib, v))
}

// SourcesBibLT applies the LT predicate on the "sources_bib" field.
func SourcesBibLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSourcesBib, v))
}

// SourcesBibLTE applies the LTE predicate on the "sources_bib" field.
func SourcesBibLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSourcesBib, v))
}

// SourcesBibContains applies the Contains predicate on the "sources_bib" field.
func SourcesBibContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldSourcesBib, v))
}

// SourcesBibHasPrefix applies the HasPrefix predicate on the "sources_bib" field.
func SourcesBibHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldSourcesBib, v))
}

// SourcesBibHasSuffix applies the HasSuffix predicate on the "sources_bib" field.
func SourcesBibHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldSourcesBib, v))
}

// SourcesBibIsNil applies the IsNil predicate on the "sources_bib" field.
func SourcesBibIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldSourcesBib))
}

// SourcesBibNotNil applies the NotNil predicate on the "sources_bib" field.
func SourcesBibNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldSourcesBib))
}

// SourcesBibEqualFold applies the EqualFold predicate on the "sources_bib" field.
func SourcesBibEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldSourcesBib, v))
}

// SourcesBibContainsFold applies the ContainsFold predicate on the "sources_bib" field.
func SourcesBibContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldSourcesBib, v))
}

// ResearchSummaryIsNil applies the IsNil predicate on the "research_summary" field.
func ResearchSummaryIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldResearchSummary))
}

// ResearchSummaryNotNil applies the NotNil predicate on the "research_summary" field.
func ResearchSummaryNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldResearchSummary))
}

// QualityMetricsIsNil applies the IsNil predicate on the "quality_metrics" field.
func QualityMetricsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldQualityMetrics))
}

// QualityMetricsNotNil applies the NotNil predicate on the "quality_metrics" field.
func QualityMetricsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldQualityMetrics))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.ResearchTask) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
