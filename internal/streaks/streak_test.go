package streaks

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func TestTouch(t *testing.T) {
	tests := []struct {
		name        string
		lastActive  *time.Time
		current     int
		want        int
		wantChanged bool
	}{
		{"first ever activity", nil, 0, 1, true},
		{"same day", tp(now.Add(-2 * time.Hour)), 4, 4, false},
		{"same day near midnight", tp(time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC)), 4, 4, false},
		{"yesterday", tp(now.AddDate(0, 0, -1)), 4, 5, true},
		{"yesterday late evening", tp(time.Date(2026, 3, 13, 23, 59, 0, 0, time.UTC)), 1, 2, true},
		{"two days ago", tp(now.AddDate(0, 0, -2)), 9, 1, true},
		{"three days ago", tp(now.AddDate(0, 0, -3)), 30, 1, true},
		{"non-UTC same day", tp(time.Date(2026, 3, 14, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))), 4, 4, false},
		// 01:00+03:00 is 22:00 UTC the previous day; days are UTC days.
		{"non-UTC crossing into yesterday", tp(time.Date(2026, 3, 14, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))), 4, 5, true},
	}
	for _, tt := range tests {
		got, changed := Touch(tt.lastActive, tt.current, now)
		if got != tt.want || changed != tt.wantChanged {
			t.Errorf("%s: Touch = (%d, %v), want (%d, %v)", tt.name, got, changed, tt.want, tt.wantChanged)
		}
	}
}

func TestTouchAcrossMonthBoundary(t *testing.T) {
	march1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	feb28 := time.Date(2026, 2, 28, 22, 0, 0, 0, time.UTC)
	got, changed := Touch(&feb28, 6, march1)
	if got != 7 || !changed {
		t.Errorf("Feb 28 -> Mar 1: Touch = (%d, %v), want (7, true)", got, changed)
	}
}

func TestMilestoneBonus(t *testing.T) {
	tests := []struct {
		streak int
		bonus  int
		ok     bool
	}{
		{6, 0, false},
		{7, 50, true},
		{8, 0, false},
		{30, 200, true},
		{100, 1000, true},
		{101, 0, false},
	}
	for _, tt := range tests {
		bonus, ok := MilestoneBonus(tt.streak)
		if ok != tt.ok || bonus != tt.bonus {
			t.Errorf("MilestoneBonus(%d) = (%d, %v), want (%d, %v)", tt.streak, bonus, ok, tt.bonus, tt.ok)
		}
	}
}

func TestAtRisk(t *testing.T) {
	tests := []struct {
		name       string
		lastActive *time.Time
		streak     int
		want       bool
	}{
		{"no streak", tp(now.AddDate(0, 0, -1)), 0, false},
		{"no activity yet", nil, 0, false},
		{"active today", tp(now.Add(-time.Hour)), 5, false},
		{"yesterday, under 20h", tp(now.Add(-19 * time.Hour)), 5, false},
		{"yesterday, over 20h", tp(now.Add(-21 * time.Hour)), 5, true},
		{"already broken", tp(now.AddDate(0, 0, -3)), 5, true},
	}
	for _, tt := range tests {
		if got := AtRisk(tt.lastActive, tt.streak, now); got != tt.want {
			t.Errorf("%s: AtRisk = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("start and end of same UTC day should match")
	}
	if SameDay(b, b.Add(time.Second)) {
		t.Error("times a second apart across midnight are different days")
	}
}
