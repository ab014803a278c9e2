// Package streaks computes daily activity streaks. A streak counts
// consecutive UTC calendar days with at least one qualifying action.
package streaks

import "time"

// Milestones are the streak lengths that pay a one-off bonus, with the
// bonus amount for each. A streak that resets and climbs back to a
// milestone earns the bonus again.
var Milestones = map[int]int{
	7:   50,
	30:  200,
	100: 1000,
}

// atRiskHours is how many hours must elapse since the last activity
// before a yesterday-active streak counts as at risk.
const atRiskHours = 20

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// isYesterday reports whether t falls on the UTC calendar day immediately
// before now's.
func isYesterday(t, now time.Time) bool {
	return SameDay(t, now.UTC().AddDate(0, 0, -1))
}

// Touch computes the new streak value for an action at now given the
// learner's last-active time and current streak. It returns the new streak
// and whether it changed:
//
//   - same UTC day as the last activity: unchanged (the caller still
//     updates last-active, but the day is already counted)
//   - last active exactly yesterday: streak + 1
//   - gap of two or more days, or no prior activity: reset to 1
func Touch(lastActive *time.Time, current int, now time.Time) (int, bool) {
	if lastActive == nil {
		return 1, true
	}
	if SameDay(*lastActive, now) {
		return current, false
	}
	if isYesterday(*lastActive, now) {
		return current + 1, true
	}
	return 1, true
}

// MilestoneBonus returns the bonus points for a streak that has just
// reached a milestone length, or false when the length is not a milestone.
func MilestoneBonus(streak int) (int, bool) {
	bonus, ok := Milestones[streak]
	return bonus, ok
}

// AtRisk reports whether a learner's streak is in danger of breaking:
// they were last active yesterday and at least 20 hours have passed, or
// the streak window has already lapsed. Learners with no streak are never
// at risk.
func AtRisk(lastActive *time.Time, streak int, now time.Time) bool {
	if lastActive == nil || streak == 0 {
		return false
	}
	if isYesterday(*lastActive, now) {
		return now.Sub(*lastActive).Hours() >= atRiskHours
	}
	return !SameDay(*lastActive, now)
}
