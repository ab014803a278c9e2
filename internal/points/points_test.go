package points

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{250, 3},
		{1000, 11},
	}
	for _, tt := range tests {
		if got := Level(tt.points); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestForNextLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 100},
		{99, 1},
		{100, 100},
		{250, 50},
	}
	for _, tt := range tests {
		if got := ForNextLevel(tt.points); got != tt.want {
			t.Errorf("ForNextLevel(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		points int
		want   float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 0},
		{175, 0.75},
	}
	for _, tt := range tests {
		if got := LevelProgress(tt.points); got != tt.want {
			t.Errorf("LevelProgress(%d) = %v, want %v", tt.points, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		amount    int
		wantTotal int
		wantLevel int
		wantUp    bool
	}{
		{"no-op award", 50, 0, 50, 1, false},
		{"within level", 50, 40, 90, 1, false},
		{"cross one boundary", 95, 10, 105, 2, true},
		{"cross several boundaries", 95, 250, 345, 4, true},
		{"exact boundary", 90, 10, 100, 2, true},
	}
	for _, tt := range tests {
		got := Apply(tt.current, tt.amount)
		if got.NewTotal != tt.wantTotal {
			t.Errorf("%s: NewTotal = %d, want %d", tt.name, got.NewTotal, tt.wantTotal)
		}
		if got.NewLevel != tt.wantLevel {
			t.Errorf("%s: NewLevel = %d, want %d", tt.name, got.NewLevel, tt.wantLevel)
		}
		if got.LeveledUp != tt.wantUp {
			t.Errorf("%s: LeveledUp = %v, want %v", tt.name, got.LeveledUp, tt.wantUp)
		}
	}
}

func TestBaseAmount(t *testing.T) {
	if amt, ok := BaseAmount(ActionUploadDocument); !ok || amt != 10 {
		t.Errorf("BaseAmount(upload_document) = %d, %v; want 10, true", amt, ok)
	}
	if amt, ok := BaseAmount(ActionStudySession); !ok || amt != 20 {
		t.Errorf("BaseAmount(complete_study_session) = %d, %v; want 20, true", amt, ok)
	}
	if _, ok := BaseAmount(ActionReviewFlashcard); ok {
		t.Error("review_flashcard has no fixed base amount")
	}
	if _, ok := BaseAmount("unknown_action"); ok {
		t.Error("unknown action should have no base amount")
	}
}

func TestStreakBonusAction(t *testing.T) {
	if got := StreakBonusAction(7); got != "streak_bonus_7" {
		t.Errorf("StreakBonusAction(7) = %q, want %q", got, "streak_bonus_7")
	}
}
