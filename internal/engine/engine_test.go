package engine

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/notify"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/points"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/srs"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/store"
)

// clock is a mutable test time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// recordingNotifier captures notifications for assertion.
type recordingNotifier struct {
	mu         sync.Mutex
	levelUps   []int
	milestones []int
	unlocked   []string
}

func (n *recordingNotifier) LevelUp(_ string, newLevel int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.levelUps = append(n.levelUps, newLevel)
	return nil
}

func (n *recordingNotifier) StreakMilestone(_ string, streak, _ int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.milestones = append(n.milestones, streak)
	return nil
}

func (n *recordingNotifier) AchievementUnlocked(_ string, name string, _ int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.unlocked = append(n.unlocked, name)
	return nil
}

func newTestEngine(t *testing.T, c *clock, opts ...Option) (*Engine, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "engine_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	opts = append([]Option{WithClock(c.Now), WithNotifier(notify.Nop{})}, opts...)
	return New(s, opts...), s
}

func seedTime() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func TestCreateLearner(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()

	rec, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", rec.ID)
	assert.Equal(t, 0, rec.Points)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 0, rec.Streak)
	assert.Nil(t, rec.LastActiveAt)

	_, err = e.CreateLearner(ctx, "ana", "Ana Again")
	assert.ErrorIs(t, err, ErrExists)

	generated, err := e.CreateLearner(ctx, "", "Anonymous")
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)
}

func TestLearnerNotFound(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	_, err := e.Learner(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordActionUnknownLearner(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	_, err := e.RecordAction(context.Background(), "ghost", points.ActionDailyLogin, 5, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordActionNegativeAmount(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	_, err = e.RecordAction(ctx, "ana", points.ActionDailyLogin, -5, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// Nothing was appended.
	profile, err := e.Learner(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Points)
	assert.Equal(t, 0, profile.Streak)
}

func TestEndToEndFirstDay(t *testing.T) {
	// A brand-new learner uploads a document, then reviews a flashcard at
	// quality 5 the same day. Action points sum to 15, the streak starts
	// at 1, and the upload also unlocks First Upload for a 10 point
	// reward on top.
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c)
	ctx := context.Background()

	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)
	card, err := e.CreateCard(ctx, "ana", "2+2", "4")
	require.NoError(t, err)

	up, err := e.RecordAction(ctx, "ana", points.ActionUploadDocument, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, up.PointsAwarded)
	assert.Equal(t, 1, up.Streak)
	assert.True(t, up.StreakExtended)
	require.Len(t, up.Unlocked, 1)
	assert.Equal(t, "first_upload", up.Unlocked[0].Key)
	assert.Equal(t, 10, up.AchievementPoints)
	assert.Equal(t, 20, up.NewTotal)

	c.Advance(2 * time.Hour)
	rev, err := e.SubmitReview(ctx, card.ID, "ana", srs.QualityEasy)
	require.NoError(t, err)
	assert.Equal(t, 5, rev.PointsAwarded)
	assert.Equal(t, 1, rev.State.Repetitions)
	assert.Equal(t, 1, rev.State.IntervalDays)
	assert.Equal(t, 1, rev.Streak, "same-day activity keeps the streak at 1")
	assert.False(t, rev.StreakExtended)
	assert.Equal(t, 25, rev.NewTotal)
	assert.Equal(t, 1, rev.NewLevel)
	assert.False(t, rev.LeveledUp)
}

func TestZeroAmountStillCountsTowardAggregates(t *testing.T) {
	e, s := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	res, err := e.RecordAction(ctx, "ana", points.ActionAskQuestion, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, 0, res.NewTotal)

	n, err := s.Repos().Ledger.ActionCount(ctx, "ana", points.ActionAskQuestion)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLevelUpAndNotification(t *testing.T) {
	rec := &recordingNotifier{}
	e, _ := newTestEngine(t, newClock(seedTime()), WithNotifier(rec))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	// 95 then 10 crosses the 100 point boundary.
	_, err = e.RecordAction(ctx, "ana", points.ActionStudySession, 95, nil)
	require.NoError(t, err)
	res, err := e.RecordAction(ctx, "ana", points.ActionCompleteQuiz, 10, nil)
	require.NoError(t, err)

	assert.True(t, res.LeveledUp)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, []int{2}, rec.levelUps)
}

func TestStreakMilestonePaysBonusOnce(t *testing.T) {
	rec := &recordingNotifier{}
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c, WithNotifier(rec))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	var last *ActionResult
	for day := 0; day < 7; day++ {
		if day > 0 {
			c.Advance(24 * time.Hour)
		}
		last, err = e.RecordAction(ctx, "ana", points.ActionDailyLogin, 5, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 7, last.Streak)
	assert.Equal(t, 50, last.StreakBonus, "day 7 pays the weekly milestone")
	assert.Equal(t, []int{7}, rec.milestones)

	// week_warrior unlocks the same day.
	keys := make(map[string]bool)
	for _, def := range last.Unlocked {
		keys[def.Key] = true
	}
	assert.True(t, keys["week_warrior"])

	// A second action the same day pays no second bonus.
	again, err := e.RecordAction(ctx, "ana", points.ActionAskQuestion, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, again.Streak)
	assert.Equal(t, 0, again.StreakBonus)
}

func TestStreakResetsAfterGap(t *testing.T) {
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c)
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	for day := 0; day < 3; day++ {
		if day > 0 {
			c.Advance(24 * time.Hour)
		}
		_, err = e.RecordAction(ctx, "ana", points.ActionDailyLogin, 5, nil)
		require.NoError(t, err)
	}

	c.Advance(72 * time.Hour)
	res, err := e.RecordAction(ctx, "ana", points.ActionDailyLogin, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
	assert.True(t, res.StreakExtended)
}

func TestSubmitReviewValidation(t *testing.T) {
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c)
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)
	_, err = e.CreateLearner(ctx, "ben", "Ben")
	require.NoError(t, err)
	card, err := e.CreateCard(ctx, "ana", "front", "back")
	require.NoError(t, err)

	_, err = e.SubmitReview(ctx, card.ID, "ana", -1)
	assert.ErrorIs(t, err, srs.ErrInvalidQuality)
	_, err = e.SubmitReview(ctx, card.ID, "ana", 6)
	assert.ErrorIs(t, err, srs.ErrInvalidQuality)

	_, err = e.SubmitReview(ctx, "no-such-card", "ana", 4)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.SubmitReview(ctx, card.ID, "ben", 4)
	assert.ErrorIs(t, err, ErrForbidden)

	// None of the rejected calls touched Ana's progress.
	profile, err := e.Learner(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Points)
	assert.Equal(t, 0, profile.Streak)
}

func TestSubmitReviewFailedRecallResets(t *testing.T) {
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c)
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)
	card, err := e.CreateCard(ctx, "ana", "front", "back")
	require.NoError(t, err)

	// Two good reviews, then a blackout.
	for i := 0; i < 2; i++ {
		rev, err := e.SubmitReview(ctx, card.ID, "ana", srs.QualityGood)
		require.NoError(t, err)
		assert.Equal(t, i+1, rev.State.Repetitions)
		c.Advance(time.Duration(rev.State.IntervalDays) * 24 * time.Hour)
	}

	rev, err := e.SubmitReview(ctx, card.ID, "ana", srs.QualityAgain)
	require.NoError(t, err)
	assert.Equal(t, 0, rev.State.Repetitions)
	assert.Equal(t, 1, rev.State.IntervalDays)
	assert.Equal(t, 1, rev.PointsAwarded, "failed recall still credits the review")
	assert.GreaterOrEqual(t, rev.State.EasinessFactor, srs.MinEasiness)
}

func TestConcurrentUnlockIsIdempotent(t *testing.T) {
	e, s := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	// Both goroutines push the document count past the first_upload
	// threshold; the unlock and its reward must land exactly once.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.RecordAction(ctx, "ana", points.ActionUploadDocument, 10, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	keys, err := s.Repos().Achievements.KeysFor(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, keys["first_upload"])

	rewards, err := s.Repos().Ledger.ActionCount(ctx, "ana", points.ActionAchievement)
	require.NoError(t, err)
	assert.Equal(t, 1, rewards, "exactly one reward credit for first_upload")

	profile, err := e.Learner(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 30, profile.Points, "two uploads plus one unlock reward")
}

func TestAchievementProgress(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)

	_, err = e.AchievementProgress(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.RecordAction(ctx, "ana", points.ActionUploadDocument, 10, nil)
	require.NoError(t, err)

	progress, err := e.AchievementProgress(ctx, "ana")
	require.NoError(t, err)
	byKey := make(map[string]int)
	for i, p := range progress {
		byKey[p.Definition.Key] = i
	}

	first := progress[byKey["first_upload"]]
	assert.True(t, first.Unlocked)
	assert.Equal(t, 1.0, first.Fraction)

	bookworm := progress[byKey["bookworm"]]
	assert.False(t, bookworm.Unlocked)
	assert.Equal(t, 1, bookworm.Current)
	assert.Equal(t, 10, bookworm.Target)
}

func TestStats(t *testing.T) {
	c := newClock(seedTime())
	e, _ := newTestEngine(t, c)
	ctx := context.Background()
	_, err := e.CreateLearner(ctx, "ana", "Ana")
	require.NoError(t, err)
	_, err = e.CreateCard(ctx, "ana", "front", "back")
	require.NoError(t, err)

	_, err = e.RecordAction(ctx, "ana", points.ActionUploadDocument, 10, nil)
	require.NoError(t, err)

	stats, err := e.Stats(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Learner.Points, "upload plus first_upload reward")
	assert.Equal(t, 1, stats.Learner.Level)
	assert.Equal(t, 80, stats.PointsToNextLevel)
	assert.Equal(t, 1, stats.Learner.Streak)
	assert.False(t, stats.StreakAtRisk)
	assert.Equal(t, 1, stats.Aggregates.Documents)
	assert.Equal(t, 1, stats.Achievements)
	assert.Equal(t, 1, stats.CardsDue)

	// 21 hours into the next day with no activity, the streak is at risk.
	c.Advance(21 * time.Hour)
	stats, err = e.Stats(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, stats.StreakAtRisk)

	_, err = e.Stats(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentCreateLearnerSameID(t *testing.T) {
	e, _ := newTestEngine(t, newClock(seedTime()))
	ctx := context.Background()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.CreateLearner(ctx, "ana", "Ana")
		}(i)
	}
	wg.Wait()

	// Exactly one create wins; the loser gets ErrExists, never a raw
	// constraint error.
	var created, exists int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrExists):
			exists++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, exists)
}
