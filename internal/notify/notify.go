// Package notify defines the outbound notification sink. Delivery is an
// external collaborator's job; the engine fires events best-effort and a
// sink failure never affects the triggering action.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Notifier receives gamification events after they have been committed.
type Notifier interface {
	LevelUp(learnerID string, newLevel int) error
	StreakMilestone(learnerID string, streak, bonusPoints int) error
	AchievementUnlocked(learnerID, achievementName string, points int) error
}

// WriterNotifier writes one line per event to an io.Writer. Useful for
// the CLI and for tests.
type WriterNotifier struct {
	W io.Writer
}

// NewStderr returns a WriterNotifier targeting stderr.
func NewStderr() *WriterNotifier {
	return &WriterNotifier{W: os.Stderr}
}

func (n *WriterNotifier) LevelUp(learnerID string, newLevel int) error {
	_, err := fmt.Fprintf(n.W, "notification: %s reached level %d\n", learnerID, newLevel)
	return err
}

func (n *WriterNotifier) StreakMilestone(learnerID string, streak, bonusPoints int) error {
	_, err := fmt.Fprintf(n.W, "notification: %s hit a %d-day streak (+%d points)\n", learnerID, streak, bonusPoints)
	return err
}

func (n *WriterNotifier) AchievementUnlocked(learnerID, achievementName string, points int) error {
	_, err := fmt.Fprintf(n.W, "notification: %s unlocked %q (+%d points)\n", learnerID, achievementName, points)
	return err
}

// Nop discards all events.
type Nop struct{}

func (Nop) LevelUp(string, int) error                     { return nil }
func (Nop) StreakMilestone(string, int, int) error        { return nil }
func (Nop) AchievementUnlocked(string, string, int) error { return nil }
