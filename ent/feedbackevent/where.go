// Code generated by ent, DO NOT EDIT.

package feedbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathwise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldUserID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldModuleID, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldPrompt, v))
}

// Chosen applies equality check predicate on the "chosen" field. It's identical to ChosenEQ.
func Chosen(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldChosen, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldCorrect, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTier, v))
}

// Class applies equality check predicate on the "class" field. It's identical to ClassEQ.
func Class(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldClass, v))
}

// Adjustment applies equality check predicate on the "adjustment" field. It's identical to AdjustmentEQ.
func Adjustment(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldAdjustment, v))
}

// Rushed applies equality check predicate on the "rushed" field. It's identical to RushedEQ.
func Rushed(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldRushed, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldPrompt, v))
}

// ChosenEQ applies the EQ predicate on the "chosen" field.
func ChosenEQ(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldChosen, v))
}

// ChosenNEQ applies the NEQ predicate on the "chosen" field.
func ChosenNEQ(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldChosen, v))
}

// ChosenIn applies the In predicate on the "chosen" field.
func ChosenIn(vs ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldChosen, vs...))
}

// ChosenNotIn applies the NotIn predicate on the "chosen" field.
func ChosenNotIn(vs ...int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldChosen, vs...))
}

// ChosenGT applies the GT predicate on the "chosen" field.
func ChosenGT(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldChosen, v))
}

// ChosenGTE applies the GTE predicate on the "chosen" field.
func ChosenGTE(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldChosen, v))
}

// ChosenLT applies the LT predicate on the "chosen" field.
func ChosenLT(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldChosen, v))
}

// ChosenLTE applies the LTE predicate on the "chosen" field.
func ChosenLTE(v int) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldChosen, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldTier, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldClass, vs...))
}

// ClassGT applies the GT predicate on the "class" field.
func ClassGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldClass, v))
}

// ClassGTE applies the GTE predicate on the "class" field.
func ClassGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldClass, v))
}

// ClassLT applies the LT predicate on the "class" field.
func ClassLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldClass, v))
}

// ClassLTE applies the LTE predicate on the "class" field.
func ClassLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldClass, v))
}

// ClassContains applies the Contains predicate on the "class" field.
func ClassContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldClass, v))
}

// ClassHasPrefix applies the HasPrefix predicate on the "class" field.
func ClassHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldClass, v))
}

// ClassHasSuffix applies the HasSuffix predicate on the "class" field.
func ClassHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldClass, v))
}

// ClassEqualFold applies the EqualFold predicate on the "class" field.
func ClassEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldClass, v))
}

// ClassContainsFold applies the ContainsFold predicate on the "class" field.
func ClassContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldClass, v))
}

// AdjustmentEQ applies the EQ predicate on the "adjustment" field.
func AdjustmentEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldAdjustment, v))
}

// AdjustmentNEQ applies the NEQ predicate on the "adjustment" field.
func AdjustmentNEQ(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldAdjustment, v))
}

// AdjustmentIn applies the In predicate on the "adjustment" field.
func AdjustmentIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldAdjustment, vs...))
}

// AdjustmentNotIn applies the NotIn predicate on the "adjustment" field.
func AdjustmentNotIn(vs ...string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldAdjustment, vs...))
}

// AdjustmentGT applies the GT predicate on the "adjustment" field.
func AdjustmentGT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldAdjustment, v))
}

// AdjustmentGTE applies the GTE predicate on the "adjustment" field.
func AdjustmentGTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldAdjustment, v))
}

// AdjustmentLT applies the LT predicate on the "adjustment" field.
func AdjustmentLT(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldAdjustment, v))
}

// AdjustmentLTE applies the LTE predicate on the "adjustment" field.
func AdjustmentLTE(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldAdjustment, v))
}

// AdjustmentContains applies the Contains predicate on the "adjustment" field.
func AdjustmentContains(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContains(FieldAdjustment, v))
}

// AdjustmentHasPrefix applies the HasPrefix predicate on the "adjustment" field.
func AdjustmentHasPrefix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasPrefix(FieldAdjustment, v))
}

// AdjustmentHasSuffix applies the HasSuffix predicate on the "adjustment" field.
func AdjustmentHasSuffix(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldHasSuffix(FieldAdjustment, v))
}

// AdjustmentEqualFold applies the EqualFold predicate on the "adjustment" field.
func AdjustmentEqualFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEqualFold(FieldAdjustment, v))
}

// AdjustmentContainsFold applies the ContainsFold predicate on the "adjustment" field.
func AdjustmentContainsFold(v string) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldContainsFold(FieldAdjustment, v))
}

// RushedEQ applies the EQ predicate on the "rushed" field.
func RushedEQ(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldRushed, v))
}

// RushedNEQ applies the NEQ predicate on the "rushed" field.
func RushedNEQ(v bool) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldRushed, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.FieldLTE(FieldElapsedMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FeedbackEvent) predicate.FeedbackEvent {
	return predicate.FeedbackEvent(sql.NotPredicates(p))
}
