// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/flashcard"
)

// Flashcard is the model entity for the Flashcard schema.
type Flashcard struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Front holds the value of the "front" field.
	Front string `json:"front,omitempty"`
	// Back holds the value of the "back" field.
	Back string `json:"back,omitempty"`
	// Consecutive successful recalls
	Repetitions int `json:"repetitions,omitempty"`
	// EasinessFactor holds the value of the "easiness_factor" field.
	EasinessFactor float64 `json:"easiness_factor,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt time.Time `json:"next_review_at,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flashcard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldEasinessFactor:
			values[i] = new(sql.NullFloat64)
		case flashcard.FieldRepetitions, flashcard.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case flashcard.FieldID, flashcard.FieldLearnerID, flashcard.FieldFront, flashcard.FieldBack:
			values[i] = new(sql.NullString)
		case flashcard.FieldNextReviewAt, flashcard.FieldLastReviewedAt, flashcard.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flashcard fields.
func (_m *Flashcard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flashcard.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case flashcard.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case flashcard.FieldFront:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field front", values[i])
			} else if value.Valid {
				_m.Front = value.String
			}
		case flashcard.FieldBack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field back", values[i])
			} else if value.Valid {
				_m.Back = value.String
			}
		case flashcard.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case flashcard.FieldEasinessFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field easiness_factor", values[i])
			} else if value.Valid {
				_m.EasinessFactor = value.Float64
			}
		case flashcard.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case flashcard.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = value.Time
			}
		case flashcard.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case flashcard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Flashcard.
// This includes values selected through modifiers, order, etc.
func (_m *Flashcard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Flashcard.
// Note that you need to call Flashcard.Unwrap() before calling this method if this Flashcard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flashcard) Update() *FlashcardUpdateOne {
	return NewFlashcardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flashcard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flashcard) Unwrap() *Flashcard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flashcard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flashcard) String() string {
	var builder strings.Builder
	builder.WriteString("Flashcard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("front=")
	builder.WriteString(_m.Front)
	builder.WriteString(", ")
	builder.WriteString("back=")
	builder.WriteString(_m.Back)
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("easiness_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EasinessFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("next_review_at=")
	builder.WriteString(_m.NextReviewAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Flashcards is a parsable slice of Flashcard.
type Flashcards []*Flashcard
