// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/learnerprofile"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/pointsentry"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/schema"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescLearnerID is the schema descriptor for learner_id field.
	flashcardDescLearnerID := flashcardFields[1].Descriptor()
	// flashcard.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	flashcard.LearnerIDValidator = flashcardDescLearnerID.Validators[0].(func(string) error)
	// flashcardDescFront is the schema descriptor for front field.
	flashcardDescFront := flashcardFields[2].Descriptor()
	// flashcard.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	flashcard.FrontValidator = flashcardDescFront.Validators[0].(func(string) error)
	// flashcardDescBack is the schema descriptor for back field.
	flashcardDescBack := flashcardFields[3].Descriptor()
	// flashcard.BackValidator is a validator for the "back" field. It is called by the builders before save.
	flashcard.BackValidator = flashcardDescBack.Validators[0].(func(string) error)
	// flashcardDescRepetitions is the schema descriptor for repetitions field.
	flashcardDescRepetitions := flashcardFields[4].Descriptor()
	// flashcard.DefaultRepetitions holds the default value on creation for the repetitions field.
	flashcard.DefaultRepetitions = flashcardDescRepetitions.Default.(int)
	// flashcard.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	flashcard.RepetitionsValidator = flashcardDescRepetitions.Validators[0].(func(int) error)
	// flashcardDescEasinessFactor is the schema descriptor for easiness_factor field.
	flashcardDescEasinessFactor := flashcardFields[5].Descriptor()
	// flashcard.DefaultEasinessFactor holds the default value on creation for the easiness_factor field.
	flashcard.DefaultEasinessFactor = flashcardDescEasinessFactor.Default.(float64)
	// flashcardDescIntervalDays is the schema descriptor for interval_days field.
	flashcardDescIntervalDays := flashcardFields[6].Descriptor()
	// flashcard.DefaultIntervalDays holds the default value on creation for the interval_days field.
	flashcard.DefaultIntervalDays = flashcardDescIntervalDays.Default.(int)
	// flashcard.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	flashcard.IntervalDaysValidator = flashcardDescIntervalDays.Validators[0].(func(int) error)
	// flashcardDescNextReviewAt is the schema descriptor for next_review_at field.
	flashcardDescNextReviewAt := flashcardFields[7].Descriptor()
	// flashcard.DefaultNextReviewAt holds the default value on creation for the next_review_at field.
	flashcard.DefaultNextReviewAt = flashcardDescNextReviewAt.Default.(func() time.Time)
	// flashcardDescCreatedAt is the schema descriptor for created_at field.
	flashcardDescCreatedAt := flashcardFields[9].Descriptor()
	// flashcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	flashcard.DefaultCreatedAt = flashcardDescCreatedAt.Default.(func() time.Time)
	// flashcardDescID is the schema descriptor for id field.
	flashcardDescID := flashcardFields[0].Descriptor()
	// flashcard.IDValidator is a validator for the "id" field. It is called by the builders before save.
	flashcard.IDValidator = flashcardDescID.Validators[0].(func(string) error)
	learnerprofileFields := schema.LearnerProfile{}.Fields()
	_ = learnerprofileFields
	// learnerprofileDescName is the schema descriptor for name field.
	learnerprofileDescName := learnerprofileFields[1].Descriptor()
	// learnerprofile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learnerprofile.NameValidator = learnerprofileDescName.Validators[0].(func(string) error)
	// learnerprofileDescPoints is the schema descriptor for points field.
	learnerprofileDescPoints := learnerprofileFields[2].Descriptor()
	// learnerprofile.DefaultPoints holds the default value on creation for the points field.
	learnerprofile.DefaultPoints = learnerprofileDescPoints.Default.(int)
	// learnerprofile.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	learnerprofile.PointsValidator = learnerprofileDescPoints.Validators[0].(func(int) error)
	// learnerprofileDescLevel is the schema descriptor for level field.
	learnerprofileDescLevel := learnerprofileFields[3].Descriptor()
	// learnerprofile.DefaultLevel holds the default value on creation for the level field.
	learnerprofile.DefaultLevel = learnerprofileDescLevel.Default.(int)
	// learnerprofile.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	learnerprofile.LevelValidator = learnerprofileDescLevel.Validators[0].(func(int) error)
	// learnerprofileDescStreak is the schema descriptor for streak field.
	learnerprofileDescStreak := learnerprofileFields[4].Descriptor()
	// learnerprofile.DefaultStreak holds the default value on creation for the streak field.
	learnerprofile.DefaultStreak = learnerprofileDescStreak.Default.(int)
	// learnerprofile.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	learnerprofile.StreakValidator = learnerprofileDescStreak.Validators[0].(func(int) error)
	// learnerprofileDescCreatedAt is the schema descriptor for created_at field.
	learnerprofileDescCreatedAt := learnerprofileFields[6].Descriptor()
	// learnerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnerprofile.DefaultCreatedAt = learnerprofileDescCreatedAt.Default.(func() time.Time)
	// learnerprofileDescID is the schema descriptor for id field.
	learnerprofileDescID := learnerprofileFields[0].Descriptor()
	// learnerprofile.IDValidator is a validator for the "id" field. It is called by the builders before save.
	learnerprofile.IDValidator = learnerprofileDescID.Validators[0].(func(string) error)
	pointsentryMixin := schema.PointsEntry{}.Mixin()
	pointsentryMixinFields0 := pointsentryMixin[0].Fields()
	_ = pointsentryMixinFields0
	pointsentryFields := schema.PointsEntry{}.Fields()
	_ = pointsentryFields
	// pointsentryDescCreatedAt is the schema descriptor for created_at field.
	pointsentryDescCreatedAt := pointsentryMixinFields0[1].Descriptor()
	// pointsentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	pointsentry.DefaultCreatedAt = pointsentryDescCreatedAt.Default.(func() time.Time)
	// pointsentryDescLearnerID is the schema descriptor for learner_id field.
	pointsentryDescLearnerID := pointsentryFields[0].Descriptor()
	// pointsentry.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pointsentry.LearnerIDValidator = pointsentryDescLearnerID.Validators[0].(func(string) error)
	// pointsentryDescAction is the schema descriptor for action field.
	pointsentryDescAction := pointsentryFields[1].Descriptor()
	// pointsentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	pointsentry.ActionValidator = pointsentryDescAction.Validators[0].(func(string) error)
	// pointsentryDescPoints is the schema descriptor for points field.
	pointsentryDescPoints := pointsentryFields[2].Descriptor()
	// pointsentry.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	pointsentry.PointsValidator = pointsentryDescPoints.Validators[0].(func(int) error)
	unlockedachievementFields := schema.UnlockedAchievement{}.Fields()
	_ = unlockedachievementFields
	// unlockedachievementDescLearnerID is the schema descriptor for learner_id field.
	unlockedachievementDescLearnerID := unlockedachievementFields[0].Descriptor()
	// unlockedachievement.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	unlockedachievement.LearnerIDValidator = unlockedachievementDescLearnerID.Validators[0].(func(string) error)
	// unlockedachievementDescAchievementKey is the schema descriptor for achievement_key field.
	unlockedachievementDescAchievementKey := unlockedachievementFields[1].Descriptor()
	// unlockedachievement.AchievementKeyValidator is a validator for the "achievement_key" field. It is called by the builders before save.
	unlockedachievement.AchievementKeyValidator = unlockedachievementDescAchievementKey.Validators[0].(func(string) error)
	// unlockedachievementDescUnlockedAt is the schema descriptor for unlocked_at field.
	unlockedachievementDescUnlockedAt := unlockedachievementFields[2].Descriptor()
	// unlockedachievement.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	unlockedachievement.DefaultUnlockedAt = unlockedachievementDescUnlockedAt.Default.(func() time.Time)
}
