// Code generated by ent, DO NOT EDIT.

package unlockedachievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the unlockedachievement type in the database.
	Label = "unlocked_achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldAchievementKey holds the string denoting the achievement_key field in the database.
	FieldAchievementKey = "achievement_key"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// Table holds the table name of the unlockedachievement in the database.
	Table = "unlocked_achievements"
)

// Columns holds all SQL columns for unlockedachievement fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldAchievementKey,
	FieldUnlockedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// AchievementKeyValidator is a validator for the "achievement_key" field. It is called by the builders before save.
	AchievementKeyValidator func(string) error
	// DefaultUnlockedAt holds the default value on creation for the "unlocked_at" field.
	DefaultUnlockedAt func() time.Time
)

// OrderOption defines the ordering options for the UnlockedAchievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByAchievementKey orders the results by the achievement_key field.
func ByAchievementKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementKey, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}
