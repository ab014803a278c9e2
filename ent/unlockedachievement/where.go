// Code generated by ent, DO NOT EDIT.

package unlockedachievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldLearnerID, v))
}

// AchievementKey applies equality check predicate on the "achievement_key" field. It's identical to AchievementKeyEQ.
func AchievementKey(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldAchievementKey, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldUnlockedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldContainsFold(FieldLearnerID, v))
}

// AchievementKeyEQ applies the EQ predicate on the "achievement_key" field.
func AchievementKeyEQ(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldAchievementKey, v))
}

// AchievementKeyNEQ applies the NEQ predicate on the "achievement_key" field.
func AchievementKeyNEQ(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNEQ(FieldAchievementKey, v))
}

// AchievementKeyIn applies the In predicate on the "achievement_key" field.
func AchievementKeyIn(vs ...string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldIn(FieldAchievementKey, vs...))
}

// AchievementKeyNotIn applies the NotIn predicate on the "achievement_key" field.
func AchievementKeyNotIn(vs ...string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNotIn(FieldAchievementKey, vs...))
}

// AchievementKeyGT applies the GT predicate on the "achievement_key" field.
func AchievementKeyGT(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGT(FieldAchievementKey, v))
}

// AchievementKeyGTE applies the GTE predicate on the "achievement_key" field.
func AchievementKeyGTE(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGTE(FieldAchievementKey, v))
}

// AchievementKeyLT applies the LT predicate on the "achievement_key" field.
func AchievementKeyLT(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLT(FieldAchievementKey, v))
}

// AchievementKeyLTE applies the LTE predicate on the "achievement_key" field.
func AchievementKeyLTE(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLTE(FieldAchievementKey, v))
}

// AchievementKeyContains applies the Contains predicate on the "achievement_key" field.
func AchievementKeyContains(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldContains(FieldAchievementKey, v))
}

// AchievementKeyHasPrefix applies the HasPrefix predicate on the "achievement_key" field.
func AchievementKeyHasPrefix(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldHasPrefix(FieldAchievementKey, v))
}

// AchievementKeyHasSuffix applies the HasSuffix predicate on the "achievement_key" field.
func AchievementKeyHasSuffix(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldHasSuffix(FieldAchievementKey, v))
}

// AchievementKeyEqualFold applies the EqualFold predicate on the "achievement_key" field.
func AchievementKeyEqualFold(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEqualFold(FieldAchievementKey, v))
}

// AchievementKeyContainsFold applies the ContainsFold predicate on the "achievement_key" field.
func AchievementKeyContainsFold(v string) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldContainsFold(FieldAchievementKey, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.FieldLTE(FieldUnlockedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnlockedAchievement) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnlockedAchievement) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnlockedAchievement) predicate.UnlockedAchievement {
	return predicate.UnlockedAchievement(sql.NotPredicates(p))
}
