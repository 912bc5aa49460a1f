// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSessionID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldLessonID, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldReward, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldAccuracy, v))
}

// CreditRatio applies equality check predicate on the "credit_ratio" field. It's identical to CreditRatioEQ.
func CreditRatio(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldCreditRatio, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// FirstAttempt applies equality check predicate on the "first_attempt" field. It's identical to FirstAttemptEQ.
func FirstAttempt(v bool) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldFirstAttempt, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldReward, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldAccuracy, v))
}

// CreditRatioEQ applies the EQ predicate on the "credit_ratio" field.
func CreditRatioEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldCreditRatio, v))
}

// CreditRatioNEQ applies the NEQ predicate on the "credit_ratio" field.
func CreditRatioNEQ(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldCreditRatio, v))
}

// CreditRatioIn applies the In predicate on the "credit_ratio" field.
func CreditRatioIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldCreditRatio, vs...))
}

// CreditRatioNotIn applies the NotIn predicate on the "credit_ratio" field.
func CreditRatioNotIn(vs ...float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldCreditRatio, vs...))
}

// CreditRatioGT applies the GT predicate on the "credit_ratio" field.
func CreditRatioGT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldCreditRatio, v))
}

// CreditRatioGTE applies the GTE predicate on the "credit_ratio" field.
func CreditRatioGTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldCreditRatio, v))
}

// CreditRatioLT applies the LT predicate on the "credit_ratio" field.
func CreditRatioLT(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldCreditRatio, v))
}

// CreditRatioLTE applies the LTE predicate on the "credit_ratio" field.
func CreditRatioLTE(v float64) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldCreditRatio, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// FirstAttemptEQ applies the EQ predicate on the "first_attempt" field.
func FirstAttemptEQ(v bool) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldEQ(FieldFirstAttempt, v))
}

// FirstAttemptNEQ applies the NEQ predicate on the "first_attempt" field.
func FirstAttemptNEQ(v bool) predicate.RewardEvent {
	return predicate.RewardEvent(sql.FieldNEQ(FieldFirstAttempt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RewardEvent) predicate.RewardEvent {
	return predicate.RewardEvent(sql.NotPredicates(p))
}
