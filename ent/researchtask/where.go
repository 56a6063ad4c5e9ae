// Code generated by ent, DO NOT EDIT.

package researchtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/delver-project/delver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldQuery, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldDetails, v))
}

// MaxIterations applies equality check predicate on the "max_iterations" field. It's identical to MaxIterationsEQ.
func MaxIterations(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldMaxIterations, v))
}

// MinCompletionScore applies equality check predicate on the "min_completion_score" field. It's identical to MinCompletionScoreEQ.
func MinCompletionScore(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldMinCompletionScore, v))
}

// Budget applies equality check predicate on the "budget" field. It's identical to BudgetEQ.
func Budget(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldBudget, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCompletedAt, v))
}

// EvidenceCount applies equality check predicate on the "evidence_count" field. It's identical to EvidenceCountEQ.
func EvidenceCount(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldEvidenceCount, v))
}

// SourcesSummary applies equality check predicate on the "sources_summary" field. It's identical to SourcesSummaryEQ.
func SourcesSummary(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldSourcesSummary, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldQuery, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldStatus, vs...))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldDetails, v))
}

// MaxIterationsEQ applies the EQ predicate on the "max_iterations" field.
func MaxIterationsEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldMaxIterations, v))
}

// MaxIterationsNEQ applies the NEQ predicate on the "max_iterations" field.
func MaxIterationsNEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldMaxIterations, v))
}

// MaxIterationsIn applies the In predicate on the "max_iterations" field.
func MaxIterationsIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldMaxIterations, vs...))
}

// MaxIterationsNotIn applies the NotIn predicate on the "max_iterations" field.
func MaxIterationsNotIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldMaxIterations, vs...))
}

// MaxIterationsGT applies the GT predicate on the "max_iterations" field.
func MaxIterationsGT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldMaxIterations, v))
}

// MaxIterationsGTE applies the GTE predicate on the "max_iterations" field.
func MaxIterationsGTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldMaxIterations, v))
}

// MaxIterationsLT applies the LT predicate on the "max_iterations" field.
func MaxIterationsLT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldMaxIterations, v))
}

// MaxIterationsLTE applies the LTE predicate on the "max_iterations" field.
func MaxIterationsLTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldMaxIterations, v))
}

// MinCompletionScoreEQ applies the EQ predicate on the "min_completion_score" field.
func MinCompletionScoreEQ(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldMinCompletionScore, v))
}

// MinCompletionScoreNEQ applies the NEQ predicate on the "min_completion_score" field.
func MinCompletionScoreNEQ(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldMinCompletionScore, v))
}

// MinCompletionScoreIn applies the In predicate on the "min_completion_score" field.
func MinCompletionScoreIn(vs ...float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldMinCompletionScore, vs...))
}

// MinCompletionScoreNotIn applies the NotIn predicate on the "min_completion_score" field.
func MinCompletionScoreNotIn(vs ...float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldMinCompletionScore, vs...))
}

// MinCompletionScoreGT applies the GT predicate on the "min_completion_score" field.
func MinCompletionScoreGT(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldMinCompletionScore, v))
}

// MinCompletionScoreGTE applies the GTE predicate on the "min_completion_score" field.
func MinCompletionScoreGTE(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldMinCompletionScore, v))
}

// MinCompletionScoreLT applies the LT predicate on the "min_completion_score" field.
func MinCompletionScoreLT(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldMinCompletionScore, v))
}

// MinCompletionScoreLTE applies the LTE predicate on the "min_completion_score" field.
func MinCompletionScoreLTE(v float64) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldMinCompletionScore, v))
}

// BudgetEQ applies the EQ predicate on the "budget" field.
func BudgetEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldBudget, v))
}

// BudgetNEQ applies the NEQ predicate on the "budget" field.
func BudgetNEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldBudget, v))
}

// BudgetIn applies the In predicate on the "budget" field.
func BudgetIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldBudget, vs...))
}

// BudgetNotIn applies the NotIn predicate on the "budget" field.
func BudgetNotIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldBudget, vs...))
}

// BudgetGT applies the GT predicate on the "budget" field.
func BudgetGT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldBudget, v))
}

// BudgetGTE applies the GTE predicate on the "budget" field.
func BudgetGTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldBudget, v))
}

// BudgetLT applies the LT predicate on the "budget" field.
func BudgetLT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldBudget, v))
}

// BudgetLTE applies the LTE predicate on the "budget" field.
func BudgetLTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldBudget, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldCompletedAt))
}

// EvidenceCountEQ applies the EQ predicate on the "evidence_count" field.
func EvidenceCountEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldEvidenceCount, v))
}

// EvidenceCountNEQ applies the NEQ predicate on the "evidence_count" field.
func EvidenceCountNEQ(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldEvidenceCount, v))
}

// EvidenceCountIn applies the In predicate on the "evidence_count" field.
func EvidenceCountIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldEvidenceCount, vs...))
}

// EvidenceCountNotIn applies the NotIn predicate on the "evidence_count" field.
func EvidenceCountNotIn(vs ...int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldEvidenceCount, vs...))
}

// EvidenceCountGT applies the GT predicate on the "evidence_count" field.
func EvidenceCountGT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldEvidenceCount, v))
}

// EvidenceCountGTE applies the GTE predicate on the "evidence_count" field.
func EvidenceCountGTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldEvidenceCount, v))
}

// EvidenceCountLT applies the LT predicate on the "evidence_count" field.
func EvidenceCountLT(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldEvidenceCount, v))
}

// EvidenceCountLTE applies the LTE predicate on the "evidence_count" field.
func EvidenceCountLTE(v int) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldEvidenceCount, v))
}

// SourcesSummaryEQ applies the EQ predicate on the "sources_summary" field.
func SourcesSummaryEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldSourcesSummary, v))
}

// SourcesSummaryNEQ applies the NEQ predicate on the "sources_summary" field.
func SourcesSummaryNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldSourcesSummary, v))
}

// SourcesSummaryIn applies the In predicate on the "sources_summary" field.
func SourcesSummaryIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldSourcesSummary, vs...))
}

// SourcesSummaryNotIn applies the NotIn predicate on the "sources_summary" field.
func SourcesSummaryNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldSourcesSummary, vs...))
}

// SourcesSummaryGT applies the GT predicate on the "sources_summary" field.
func SourcesSummaryGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldSourcesSummary, v))
}

// SourcesSummaryGTE applies the GTE predicate on the "sources_summary" field.
func SourcesSummaryGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldSourcesSummary, v))
}

// SourcesSummaryLT applies the LT predicate on the "sources_summary" field.
func SourcesSummaryLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldSourcesSummary, v))
}

// SourcesSummaryLTE applies the LTE predicate on the "sources_summary" field.
func SourcesSummaryLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldSourcesSummary, v))
}

// SourcesSummaryContains applies the Contains predicate on the "sources_summary" field.
func SourcesSummaryContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldSourcesSummary, v))
}

// SourcesSummaryHasPrefix applies the HasPrefix predicate on the "sources_summary" field.
func SourcesSummaryHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldSourcesSummary, v))
}

// SourcesSummaryHasSuffix applies the HasSuffix predicate on the "sources_summary" field.
func SourcesSummaryHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldSourcesSummary, v))
}

// SourcesSummaryIsNil applies the IsNil predicate on the "sources_summary" field.
func SourcesSummaryIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldSourcesSummary))
}

// SourcesSummaryNotNil applies the NotNil predicate on the "sources_summary" field.
func SourcesSummaryNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldSourcesSummary))
}

// SourcesSummaryEqualFold applies the EqualFold predicate on the "sources_summary" field.
func SourcesSummaryEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldSourcesSummary, v))
}

// SourcesSummaryContainsFold applies the ContainsFold predicate on the "sources_summary" field.
func SourcesSummaryContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldSourcesSummary, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.TaskLog) predicate.ResearchTask {
	return predicate.ResearchTask(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.NotPredicates(p))
}
