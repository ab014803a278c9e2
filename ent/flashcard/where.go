// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLearnerID, v))
}

// Front applies equality check predicate on the "front" field. It's identical to FrontEQ.
func Front(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFront, v))
}

// Back applies equality check predicate on the "back" field. It's identical to BackEQ.
func Back(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBack, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldRepetitions, v))
}

// EasinessFactor applies equality check predicate on the "easiness_factor" field. It's identical to EasinessFactorEQ.
func EasinessFactor(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldEasinessFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldIntervalDays, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldNextReviewAt, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCreatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldLearnerID, v))
}

// FrontEQ applies the EQ predicate on the "front" field.
func FrontEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldFront, v))
}

// FrontNEQ applies the NEQ predicate on the "front" field.
func FrontNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldFront, v))
}

// FrontIn applies the In predicate on the "front" field.
func FrontIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldFront, vs...))
}

// FrontNotIn applies the NotIn predicate on the "front" field.
func FrontNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldFront, vs...))
}

// FrontGT applies the GT predicate on the "front" field.
func FrontGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldFront, v))
}

// FrontGTE applies the GTE predicate on the "front" field.
func FrontGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldFront, v))
}

// FrontLT applies the LT predicate on the "front" field.
func FrontLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldFront, v))
}

// FrontLTE applies the LTE predicate on the "front" field.
func FrontLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldFront, v))
}

// FrontContains applies the Contains predicate on the "front" field.
func FrontContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldFront, v))
}

// FrontHasPrefix applies the HasPrefix predicate on the "front" field.
func FrontHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldFront, v))
}

// FrontHasSuffix applies the HasSuffix predicate on the "front" field.
func FrontHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldFront, v))
}

// FrontEqualFold applies the EqualFold predicate on the "front" field.
func FrontEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldFront, v))
}

// FrontContainsFold applies the ContainsFold predicate on the "front" field.
func FrontContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldFront, v))
}

// BackEQ applies the EQ predicate on the "back" field.
func BackEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldBack, v))
}

// BackNEQ applies the NEQ predicate on the "back" field.
func BackNEQ(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldBack, v))
}

// BackIn applies the In predicate on the "back" field.
func BackIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldBack, vs...))
}

// BackNotIn applies the NotIn predicate on the "back" field.
func BackNotIn(vs ...string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldBack, vs...))
}

// BackGT applies the GT predicate on the "back" field.
func BackGT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldBack, v))
}

// BackGTE applies the GTE predicate on the "back" field.
func BackGTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldBack, v))
}

// BackLT applies the LT predicate on the "back" field.
func BackLT(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldBack, v))
}

// BackLTE applies the LTE predicate on the "back" field.
func BackLTE(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldBack, v))
}

// BackContains applies the Contains predicate on the "back" field.
func BackContains(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContains(FieldBack, v))
}

// BackHasPrefix applies the HasPrefix predicate on the "back" field.
func BackHasPrefix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasPrefix(FieldBack, v))
}

// BackHasSuffix applies the HasSuffix predicate on the "back" field.
func BackHasSuffix(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldHasSuffix(FieldBack, v))
}

// BackEqualFold applies the EqualFold predicate on the "back" field.
func BackEqualFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEqualFold(FieldBack, v))
}

// BackContainsFold applies the ContainsFold predicate on the "back" field.
func BackContainsFold(v string) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldContainsFold(FieldBack, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldRepetitions, v))
}

// EasinessFactorEQ applies the EQ predicate on the "easiness_factor" field.
func EasinessFactorEQ(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldEasinessFactor, v))
}

// EasinessFactorNEQ applies the NEQ predicate on the "easiness_factor" field.
func EasinessFactorNEQ(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldEasinessFactor, v))
}

// EasinessFactorIn applies the In predicate on the "easiness_factor" field.
func EasinessFactorIn(vs ...float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldEasinessFactor, vs...))
}

// EasinessFactorNotIn applies the NotIn predicate on the "easiness_factor" field.
func EasinessFactorNotIn(vs ...float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldEasinessFactor, vs...))
}

// EasinessFactorGT applies the GT predicate on the "easiness_factor" field.
func EasinessFactorGT(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldEasinessFactor, v))
}

// EasinessFactorGTE applies the GTE predicate on the "easiness_factor" field.
func EasinessFactorGTE(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldEasinessFactor, v))
}

// EasinessFactorLT applies the LT predicate on the "easiness_factor" field.
func EasinessFactorLT(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldEasinessFactor, v))
}

// EasinessFactorLTE applies the LTE predicate on the "easiness_factor" field.
func EasinessFactorLTE(v float64) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldEasinessFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldIntervalDays, v))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldNextReviewAt, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotNull(FieldLastReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Flashcard {
	return predicate.Flashcard(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flashcard) predicate.Flashcard {
	return predicate.Flashcard(sql.NotPredicates(p))
}
