// Code generated by ent, DO NOT EDIT.

package testsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSessionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTitle, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldDurationSecs, v))
}

// RemainingSecs applies equality check predicate on the "remaining_secs" field. It's identical to RemainingSecsEQ.
func RemainingSecs(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldRemainingSecs, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStatus, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTotalScore, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCorrectCount, v))
}

// AttemptedCount applies equality check predicate on the "attempted_count" field. It's identical to AttemptedCountEQ.
func AttemptedCount(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldAttemptedCount, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldAccuracy, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldSessionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldTitle, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldDurationSecs, v))
}

// RemainingSecsEQ applies the EQ predicate on the "remaining_secs" field.
func RemainingSecsEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldRemainingSecs, v))
}

// RemainingSecsNEQ applies the NEQ predicate on the "remaining_secs" field.
func RemainingSecsNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldRemainingSecs, v))
}

// RemainingSecsIn applies the In predicate on the "remaining_secs" field.
func RemainingSecsIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldRemainingSecs, vs...))
}

// RemainingSecsNotIn applies the NotIn predicate on the "remaining_secs" field.
func RemainingSecsNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldRemainingSecs, vs...))
}

// RemainingSecsGT applies the GT predicate on the "remaining_secs" field.
func RemainingSecsGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldRemainingSecs, v))
}

// RemainingSecsGTE applies the GTE predicate on the "remaining_secs" field.
func RemainingSecsGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldRemainingSecs, v))
}

// RemainingSecsLT applies the LT predicate on the "remaining_secs" field.
func RemainingSecsLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldRemainingSecs, v))
}

// RemainingSecsLTE applies the LTE predicate on the "remaining_secs" field.
func RemainingSecsLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldRemainingSecs, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldStatus, v))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldTotalScore, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCorrectCount, v))
}

// AttemptedCountEQ applies the EQ predicate on the "attempted_count" field.
func AttemptedCountEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldAttemptedCount, v))
}

// AttemptedCountNEQ applies the NEQ predicate on the "attempted_count" field.
func AttemptedCountNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldAttemptedCount, v))
}

// AttemptedCountIn applies the In predicate on the "attempted_count" field.
func AttemptedCountIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldAttemptedCount, vs...))
}

// AttemptedCountNotIn applies the NotIn predicate on the "attempted_count" field.
func AttemptedCountNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldAttemptedCount, vs...))
}

// AttemptedCountGT applies the GT predicate on the "attempted_count" field.
func AttemptedCountGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldAttemptedCount, v))
}

// AttemptedCountGTE applies the GTE predicate on the "attempted_count" field.
func AttemptedCountGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldAttemptedCount, v))
}

// AttemptedCountLT applies the LT predicate on the "attempted_count" field.
func AttemptedCountLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldAttemptedCount, v))
}

// AttemptedCountLTE applies the LTE predicate on the "attempted_count" field.
func AttemptedCountLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldAttemptedCount, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldAccuracy, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.NotPredicates(p))
}
