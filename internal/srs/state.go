package srs

import "time"

// State holds the spaced repetition state for a single flashcard.
type State struct {
	Repetitions    int       `json:"repetitions"`
	EasinessFactor float64   `json:"easiness_factor"`
	IntervalDays   int       `json:"interval_days"`
	NextReviewAt   time.Time `json:"next_review_at"`
}

// NewState returns the scheduling state for a freshly created flashcard:
// no repetitions, default easiness, due immediately.
func NewState(now time.Time) State {
	return State{
		Repetitions:    0,
		EasinessFactor: DefaultEasiness,
		IntervalDays:   1,
		NextReviewAt:   now,
	}
}

// IsDue reports whether the card is at or past its review date.
func (s State) IsDue(now time.Time) bool {
	return !now.Before(s.NextReviewAt)
}

// OverdueDays returns how many days past due the card is. Returns 0 if not
// yet due.
func (s State) OverdueDays(now time.Time) float64 {
	if now.Before(s.NextReviewAt) {
		return 0
	}
	return now.Sub(s.NextReviewAt).Hours() / 24.0
}

// DifficultyLabel classifies a card by its current interval.
func DifficultyLabel(intervalDays int) string {
	switch {
	case intervalDays <= 1:
		return "New"
	case intervalDays <= 7:
		return "Learning"
	case intervalDays <= 30:
		return "Young"
	default:
		return "Mature"
	}
}

// EstimateRetention maps an easiness factor to an estimated retention rate
// percentage. EF values between the floor (1.3) and the default (2.5) map
// linearly onto 50-95%.
func EstimateRetention(easiness float64) int {
	const (
		minEF        = MinEasiness
		maxEF        = DefaultEasiness
		minRetention = 50.0
		maxRetention = 95.0
	)
	ef := easiness
	if ef < minEF {
		ef = minEF
	}
	if ef > maxEF {
		ef = maxEF
	}
	r := minRetention + (ef-minEF)/(maxEF-minEF)*(maxRetention-minRetention)
	return int(r + 0.5)
}
