// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldUserID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldModuleID, v))
}

// CompletionPct applies equality check predicate on the "completion_pct" field. It's identical to CompletionPctEQ.
func CompletionPct(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCompletionPct, v))
}

// TimeSpentMins applies equality check predicate on the "time_spent_mins" field. It's identical to TimeSpentMinsEQ.
func TimeSpentMins(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimeSpentMins, v))
}

// QuizScore applies equality check predicate on the "quiz_score" field. It's identical to QuizScoreEQ.
func QuizScore(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldQuizScore, v))
}

// Created applies equality check predicate on the "created" field. It's identical to CreatedEQ.
func Created(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCreated, v))
}

// CompletionAdvanced applies equality check predicate on the "completion_advanced" field. It's identical to CompletionAdvancedEQ.
func CompletionAdvanced(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCompletionAdvanced, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// CompletionPctEQ applies the EQ predicate on the "completion_pct" field.
func CompletionPctEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCompletionPct, v))
}

// CompletionPctNEQ applies the NEQ predicate on the "completion_pct" field.
func CompletionPctNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldCompletionPct, v))
}

// CompletionPctIn applies the In predicate on the "completion_pct" field.
func CompletionPctIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldCompletionPct, vs...))
}

// CompletionPctNotIn applies the NotIn predicate on the "completion_pct" field.
func CompletionPctNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldCompletionPct, vs...))
}

// CompletionPctGT applies the GT predicate on the "completion_pct" field.
func CompletionPctGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldCompletionPct, v))
}

// CompletionPctGTE applies the GTE predicate on the "completion_pct" field.
func CompletionPctGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldCompletionPct, v))
}

// CompletionPctLT applies the LT predicate on the "completion_pct" field.
func CompletionPctLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldCompletionPct, v))
}

// CompletionPctLTE applies the LTE predicate on the "completion_pct" field.
func CompletionPctLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldCompletionPct, v))
}

// TimeSpentMinsEQ applies the EQ predicate on the "time_spent_mins" field.
func TimeSpentMinsEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldTimeSpentMins, v))
}

// TimeSpentMinsNEQ applies the NEQ predicate on the "time_spent_mins" field.
func TimeSpentMinsNEQ(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldTimeSpentMins, v))
}

// TimeSpentMinsIn applies the In predicate on the "time_spent_mins" field.
func TimeSpentMinsIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldTimeSpentMins, vs...))
}

// TimeSpentMinsNotIn applies the NotIn predicate on the "time_spent_mins" field.
func TimeSpentMinsNotIn(vs ...int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldTimeSpentMins, vs...))
}

// TimeSpentMinsGT applies the GT predicate on the "time_spent_mins" field.
func TimeSpentMinsGT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldTimeSpentMins, v))
}

// TimeSpentMinsGTE applies the GTE predicate on the "time_spent_mins" field.
func TimeSpentMinsGTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldTimeSpentMins, v))
}

// TimeSpentMinsLT applies the LT predicate on the "time_spent_mins" field.
func TimeSpentMinsLT(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldTimeSpentMins, v))
}

// TimeSpentMinsLTE applies the LTE predicate on the "time_spent_mins" field.
func TimeSpentMinsLTE(v int) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldTimeSpentMins, v))
}

// QuizScoreEQ applies the EQ predicate on the "quiz_score" field.
func QuizScoreEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldQuizScore, v))
}

// QuizScoreNEQ applies the NEQ predicate on the "quiz_score" field.
func QuizScoreNEQ(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldQuizScore, v))
}

// QuizScoreIn applies the In predicate on the "quiz_score" field.
func QuizScoreIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIn(FieldQuizScore, vs...))
}

// QuizScoreNotIn applies the NotIn predicate on the "quiz_score" field.
func QuizScoreNotIn(vs ...float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotIn(FieldQuizScore, vs...))
}

// QuizScoreGT applies the GT predicate on the "quiz_score" field.
func QuizScoreGT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGT(FieldQuizScore, v))
}

// QuizScoreGTE applies the GTE predicate on the "quiz_score" field.
func QuizScoreGTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldGTE(FieldQuizScore, v))
}

// QuizScoreLT applies the LT predicate on the "quiz_score" field.
func QuizScoreLT(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLT(FieldQuizScore, v))
}

// QuizScoreLTE applies the LTE predicate on the "quiz_score" field.
func QuizScoreLTE(v float64) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldLTE(FieldQuizScore, v))
}

// QuizScoreIsNil applies the IsNil predicate on the "quiz_score" field.
func QuizScoreIsNil() predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldIsNull(FieldQuizScore))
}

// QuizScoreNotNil applies the NotNil predicate on the "quiz_score" field.
func QuizScoreNotNil() predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNotNull(FieldQuizScore))
}

// CreatedEQ applies the EQ predicate on the "created" field.
func CreatedEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCreated, v))
}

// CreatedNEQ applies the NEQ predicate on the "created" field.
func CreatedNEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldCreated, v))
}

// CompletionAdvancedEQ applies the EQ predicate on the "completion_advanced" field.
func CompletionAdvancedEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldEQ(FieldCompletionAdvanced, v))
}

// CompletionAdvancedNEQ applies the NEQ predicate on the "completion_advanced" field.
func CompletionAdvancedNEQ(v bool) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.FieldNEQ(FieldCompletionAdvanced, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionEvent) predicate.InteractionEvent {
	return predicate.InteractionEvent(sql.NotPredicates(p))
}
