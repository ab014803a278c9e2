package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestScheduleRejectsInvalidQuality(t *testing.T) {
	for _, q := range []int{-1, 6, 100} {
		_, err := Schedule(q, NewState(testNow), testNow)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("Schedule(%d) error = %v, want ErrInvalidQuality", q, err)
		}
	}
}

func TestSchedulePerfectProgression(t *testing.T) {
	// Three perfect recalls in a row follow the canonical SM-2 interval
	// sequence: 1 day, 6 days, round(6 * EF').
	state := NewState(testNow)

	state, err := Schedule(QualityEasy, state, testNow)
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if state.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", state.Repetitions)
	}
	if state.IntervalDays != 1 {
		t.Errorf("first interval = %d, want 1", state.IntervalDays)
	}

	state, err = Schedule(QualityEasy, state, testNow)
	if err != nil {
		t.Fatalf("second review: %v", err)
	}
	if state.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", state.Repetitions)
	}
	if state.IntervalDays != 6 {
		t.Errorf("second interval = %d, want 6", state.IntervalDays)
	}

	ef := state.EasinessFactor
	state, err = Schedule(QualityEasy, state, testNow)
	if err != nil {
		t.Fatalf("third review: %v", err)
	}
	wantInterval := int(math.Round(6 * (ef + 0.1)))
	if state.IntervalDays != wantInterval {
		t.Errorf("third interval = %d, want %d", state.IntervalDays, wantInterval)
	}
	wantNext := testNow.AddDate(0, 0, wantInterval)
	if !state.NextReviewAt.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", state.NextReviewAt, wantNext)
	}
}

func TestScheduleFailedRecallResets(t *testing.T) {
	// Any quality below 3 is a full reset regardless of prior repetitions.
	for _, q := range []int{0, 1, 2} {
		prior := State{
			Repetitions:    10,
			EasinessFactor: 2.2,
			IntervalDays:   45,
			NextReviewAt:   testNow,
		}
		got, err := Schedule(q, prior, testNow)
		if err != nil {
			t.Fatalf("Schedule(%d): %v", q, err)
		}
		if got.Repetitions != 0 {
			t.Errorf("Schedule(%d).Repetitions = %d, want 0", q, got.Repetitions)
		}
		if got.IntervalDays != 1 {
			t.Errorf("Schedule(%d).IntervalDays = %d, want 1", q, got.IntervalDays)
		}
	}
}

func TestScheduleEasinessFloor(t *testing.T) {
	// Repeated blackouts must never drive the easiness factor below 1.3.
	state := NewState(testNow)
	for i := 0; i < 20; i++ {
		var err error
		state, err = Schedule(QualityAgain, state, testNow)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if state.EasinessFactor < MinEasiness {
			t.Fatalf("easiness = %v below floor after %d failures", state.EasinessFactor, i+1)
		}
	}
	if state.EasinessFactor != MinEasiness {
		t.Errorf("easiness = %v, want floor %v", state.EasinessFactor, MinEasiness)
	}
}

func TestScheduleEasinessDeltas(t *testing.T) {
	tests := []struct {
		quality int
		delta   float64
	}{
		{5, 0.1},
		{4, 0.0},
		{3, -0.14},
	}
	for _, tt := range tests {
		got, err := Schedule(tt.quality, NewState(testNow), testNow)
		if err != nil {
			t.Fatalf("Schedule(%d): %v", tt.quality, err)
		}
		want := DefaultEasiness + tt.delta
		if math.Abs(got.EasinessFactor-want) > 1e-9 {
			t.Errorf("Schedule(%d).EasinessFactor = %v, want %v", tt.quality, got.EasinessFactor, want)
		}
	}
}

func TestScheduleDeterministic(t *testing.T) {
	prior := State{Repetitions: 3, EasinessFactor: 2.1, IntervalDays: 12, NextReviewAt: testNow}
	a, err := Schedule(QualityGood, prior, testNow)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Schedule(QualityGood, prior, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same inputs produced different states: %+v vs %+v", a, b)
	}
}

func TestIsDue(t *testing.T) {
	s := State{NextReviewAt: testNow}
	if !s.IsDue(testNow) {
		t.Error("card due exactly now should be due")
	}
	if !s.IsDue(testNow.Add(time.Hour)) {
		t.Error("card past due should be due")
	}
	if s.IsDue(testNow.Add(-time.Hour)) {
		t.Error("card before review date should not be due")
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "New"},
		{2, "Learning"},
		{7, "Learning"},
		{8, "Young"},
		{30, "Young"},
		{31, "Mature"},
		{180, "Mature"},
	}
	for _, tt := range tests {
		if got := DifficultyLabel(tt.days); got != tt.want {
			t.Errorf("DifficultyLabel(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestEstimateRetention(t *testing.T) {
	tests := []struct {
		ef   float64
		want int
	}{
		{1.3, 50},
		{2.5, 95},
		{3.0, 95}, // clamped above the default
		{1.0, 50}, // clamped below the floor
	}
	for _, tt := range tests {
		if got := EstimateRetention(tt.ef); got != tt.want {
			t.Errorf("EstimateRetention(%v) = %d, want %d", tt.ef, got, tt.want)
		}
	}
}

func TestReviewPoints(t *testing.T) {
	tests := []struct {
		quality int
		want    int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
	}
	for _, tt := range tests {
		if got := ReviewPoints(tt.quality); got != tt.want {
			t.Errorf("ReviewPoints(%d) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}
