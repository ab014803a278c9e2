// Package points defines the point-earning actions, their base amounts,
// and the level math derived from a learner's running total.
package points

import "fmt"

// Action identifiers recorded in the points ledger.
const (
	ActionUploadDocument  = "upload_document"
	ActionCompleteSummary = "complete_summary"
	ActionAskQuestion     = "ask_question"
	ActionReviewFlashcard = "review_flashcard"
	ActionCompleteQuiz    = "complete_quiz"
	ActionDailyLogin      = "daily_login"
	ActionCreateNote      = "create_note"
	ActionStudySession    = "complete_study_session"
	ActionAchievement     = "achievement_unlocked"
	actionStreakBonusStem = "streak_bonus"
)

// PointsPerLevel is the fixed cost of each level.
const PointsPerLevel = 100

// baseAmounts maps actions with a fixed award to their amount. Review
// points vary by recall quality and streak/achievement bonuses vary by
// milestone and definition, so those are absent here.
var baseAmounts = map[string]int{
	ActionUploadDocument:  10,
	ActionCompleteSummary: 5,
	ActionAskQuestion:     2,
	ActionCompleteQuiz:    10,
	ActionDailyLogin:      5,
	ActionCreateNote:      2,
	ActionStudySession:    20,
}

// BaseAmount returns the fixed point amount for an action, or false when
// the action has no fixed amount.
func BaseAmount(action string) (int, bool) {
	amt, ok := baseAmounts[action]
	return amt, ok
}

// StreakBonusAction returns the ledger action identifier for a streak
// milestone bonus, e.g. "streak_bonus_7".
func StreakBonusAction(milestone int) string {
	return fmt.Sprintf("%s_%d", actionStreakBonusStem, milestone)
}

// Level derives the level from a running point total: 100 points per
// level, with level 1 as the floor.
func Level(total int) int {
	if total < 0 {
		return 1
	}
	return total/PointsPerLevel + 1
}

// ForNextLevel returns how many more points are needed to reach the next
// level.
func ForNextLevel(total int) int {
	return Level(total)*PointsPerLevel - total
}

// LevelProgress returns the fraction of the current level completed,
// in [0,1].
func LevelProgress(total int) float64 {
	if total < 0 {
		return 0
	}
	inLevel := total - (Level(total)-1)*PointsPerLevel
	return float64(inLevel) / float64(PointsPerLevel)
}

// Award summarizes the effect of one ledger append on a learner's totals.
type Award struct {
	Amount    int
	NewTotal  int
	NewLevel  int
	LeveledUp bool
}

// Apply computes the award result of adding amount to the current total.
// It is pure; the caller persists the ledger entry and profile update.
func Apply(currentTotal, amount int) Award {
	newTotal := currentTotal + amount
	return Award{
		Amount:    amount,
		NewTotal:  newTotal,
		NewLevel:  Level(newTotal),
		LeveledUp: Level(newTotal) > Level(currentTotal),
	}
}
