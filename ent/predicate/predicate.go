// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// LearnerProfile is the predicate function for learnerprofile builders.
type LearnerProfile func(*sql.Selector)

// PointsEntry is the predicate function for pointsentry builders.
type PointsEntry func(*sql.Selector)

// UnlockedAchievement is the predicate function for unlockedachievement builders.
type UnlockedAchievement func(*sql.Selector)
