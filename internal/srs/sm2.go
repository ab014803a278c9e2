// Package srs implements the SM-2 spaced repetition scheduler. Scheduling
// is a pure function of the recall quality and the prior state; callers
// own persistence and must serialize concurrent reviews of the same card.
package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Quality is the learner's self-rated recall score, 0 (total blackout)
// through 5 (perfect response).
const (
	QualityAgain = 0
	QualityHard  = 3
	QualityGood  = 4
	QualityEasy  = 5
)

const (
	// DefaultEasiness is the easiness factor assigned to new cards.
	DefaultEasiness = 2.5
	// MinEasiness is the floor below which the easiness factor never drops.
	MinEasiness = 1.3
	// FirstIntervalDays is the interval after the first successful recall.
	FirstIntervalDays = 1
	// SecondIntervalDays is the interval after the second successful recall.
	SecondIntervalDays = 6
)

// ErrInvalidQuality indicates a quality rating outside [0,5].
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// Schedule computes the next review state from a recall quality and the
// prior state, per the SM-2 algorithm:
//
//	EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)), floored at 1.3
//
// A failed recall (quality < 3) resets repetitions to zero and the interval
// to one day regardless of prior progress. A successful recall grows the
// interval: 1 day, then 6 days, then round(prior * EF') thereafter.
func Schedule(quality int, prior State, now time.Time) (State, error) {
	if quality < 0 || quality > 5 {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, quality)
	}

	q := float64(quality)
	easiness := prior.EasinessFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if easiness < MinEasiness {
		easiness = MinEasiness
	}

	next := State{EasinessFactor: easiness}

	if quality < 3 {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = prior.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = FirstIntervalDays
		case 2:
			next.IntervalDays = SecondIntervalDays
		default:
			next.IntervalDays = int(math.Round(float64(prior.IntervalDays) * easiness))
		}
	}

	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

// ReviewPoints returns the points awarded for reviewing a flashcard at the
// given quality. Failed recalls still earn a point so the review itself is
// always credited.
func ReviewPoints(quality int) int {
	switch {
	case quality >= QualityEasy:
		return 5
	case quality >= QualityGood:
		return 3
	case quality >= QualityHard:
		return 2
	default:
		return 1
	}
}
