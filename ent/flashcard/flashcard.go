// Code generated by ent, DO NOT EDIT.

package flashcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flashcard type in the database.
	Label = "flashcard"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldFront holds the string denoting the front field in the database.
	FieldFront = "front"
	// FieldBack holds the string denoting the back field in the database.
	FieldBack = "back"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldEasinessFactor holds the string denoting the easiness_factor field in the database.
	FieldEasinessFactor = "easiness_factor"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the flashcard in the database.
	Table = "flashcards"
)

// Columns holds all SQL columns for flashcard fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldFront,
	FieldBack,
	FieldRepetitions,
	FieldEasinessFactor,
	FieldIntervalDays,
	FieldNextReviewAt,
	FieldLastReviewedAt,
	FieldCreatedAt,
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
	// FrontValidator is a validator for the "front" field. It is called by the builders before save.
	FrontValidator func(string) error
	// BackValidator is a validator for the "back" field. It is called by the builders before save.
	BackValidator func(string) error
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultEasinessFactor holds the default value on creation for the "easiness_factor" field.
	DefaultEasinessFactor float64
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// DefaultNextReviewAt holds the default value on creation for the "next_review_at" field.
	DefaultNextReviewAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Flashcard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByFront orders the results by the front field.
func ByFront(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFront, opts...).ToFunc()
}

// ByBack orders the results by the back field.
func ByBack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBack, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByEasinessFactor orders the results by the easiness_factor field.
func ByEasinessFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEasinessFactor, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
