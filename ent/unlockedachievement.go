// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/N1KH1LT0X1N/StudyFlux/ent/unlockedachievement"
)

// UnlockedAchievement is the model entity for the UnlockedAchievement schema.
type UnlockedAchievement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// AchievementKey holds the value of the "achievement_key" field.
	AchievementKey string `json:"achievement_key,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt   time.Time `json:"unlocked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UnlockedAchievement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case unlockedachievement.FieldID:
			values[i] = new(sql.NullInt64)
		case unlockedachievement.FieldLearnerID, unlockedachievement.FieldAchievementKey:
			values[i] = new(sql.NullString)
		case unlockedachievement.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UnlockedAchievement fields.
func (_m *UnlockedAchievement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case unlockedachievement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case unlockedachievement.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case unlockedachievement.FieldAchievementKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_key", values[i])
			} else if value.Valid {
				_m.AchievementKey = value.String
			}
		case unlockedachievement.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UnlockedAchievement.
// This includes values selected through modifiers, order, etc.
func (_m *UnlockedAchievement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UnlockedAchievement.
// Note that you need to call UnlockedAchievement.Unwrap() before calling this method if this UnlockedAchievement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UnlockedAchievement) Update() *UnlockedAchievementUpdateOne {
	return NewUnlockedAchievementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UnlockedAchievement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UnlockedAchievement) Unwrap() *UnlockedAchievement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UnlockedAchievement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UnlockedAchievement) String() string {
	var builder strings.Builder
	builder.WriteString("UnlockedAchievement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("achievement_key=")
	builder.WriteString(_m.AchievementKey)
	builder.WriteString(", ")
	builder.WriteString("unlocked_at=")
	builder.WriteString(_m.UnlockedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UnlockedAchievements is a parsable slice of UnlockedAchievement.
type UnlockedAchievements []*UnlockedAchievement
