// Package engine orchestrates the gamification pipeline: every recorded
// action runs as one transaction that appends to the points ledger,
// advances the streak, and unlocks any newly satisfied achievements.
// Either everything commits or nothing does; notifications fire after
// commit and are best-effort.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/achievements"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/leaderboard"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/notify"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/points"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/srs"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/streaks"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/store"
)

// Engine coordinates the store, the pure gamification rules, and the
// notifier. Writes for the same learner are serialized by a keyed mutex;
// writes for different learners run in parallel.
type Engine struct {
	store        *store.Store
	boards       *leaderboard.Service
	notify       notify.Notifier
	now          func() time.Time
	learnerLocks *keyedMutex
	cardLocks    *keyedMutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier replaces the default stderr notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(e *Engine) { e.notify = n }
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLeaderboard attaches a leaderboard service whose cache is
// invalidated after every committed write.
func WithLeaderboard(s *leaderboard.Service) Option {
	return func(e *Engine) { e.boards = s }
}

// New creates an engine over the store.
func New(st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:        st,
		notify:       notify.NewStderr(),
		now:          time.Now,
		learnerLocks: newKeyedMutex(),
		cardLocks:    newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ActionResult summarizes one committed action: the base award, any
// streak milestone bonus, achievement rewards, and the resulting totals.
type ActionResult struct {
	LearnerID         string
	Action            string
	PointsAwarded     int
	StreakBonus       int
	AchievementPoints int
	NewTotal          int
	NewLevel          int
	LeveledUp         bool
	Streak            int
	StreakExtended    bool
	Unlocked          []achievements.Definition
}

// ReviewResult pairs the flashcard's new scheduling state with the points
// settlement the review produced.
type ReviewResult struct {
	CardID string
	State  srs.State
	ActionResult
}

// CreateLearner registers a new learner profile. An empty id gets a
// generated UUID. Returns ErrExists when the id is taken.
func (e *Engine) CreateLearner(ctx context.Context, id, name string) (*store.LearnerRecord, error) {
	if id == "" {
		id = uuid.NewString()
	}

	// The existence check and the insert must be atomic per learner, or
	// two concurrent creates of the same id both pass the check and the
	// loser surfaces a raw constraint error.
	unlock := e.learnerLocks.lock(id)
	defer unlock()

	repos := e.store.Repos()
	existing, err := repos.Learners.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("learner %s: %w", id, ErrExists)
	}
	rec, err := repos.Learners.Create(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return rec, nil
}

// Learner returns a profile, or ErrNotFound.
func (e *Engine) Learner(ctx context.Context, id string) (*store.LearnerRecord, error) {
	rec, err := e.store.Repos().Learners.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get learner: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("learner %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

// Learners lists profiles by points descending.
func (e *Engine) Learners(ctx context.Context, limit int) ([]store.LearnerRecord, error) {
	return e.store.Repos().Learners.List(ctx, limit)
}

// CreateCard adds a flashcard for the learner, due immediately.
func (e *Engine) CreateCard(ctx context.Context, learnerID, front, back string) (*store.FlashcardRecord, error) {
	repos := e.store.Repos()
	profile, err := repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
	}
	card, err := repos.Cards.Create(ctx, uuid.NewString(), learnerID, front, back, e.now())
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// DueCards returns the learner's cards due for review, most overdue first.
func (e *Engine) DueCards(ctx context.Context, learnerID string) ([]store.FlashcardRecord, error) {
	repos := e.store.Repos()
	profile, err := repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("due cards: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
	}
	return repos.Cards.DueFor(ctx, learnerID, e.now())
}

// RecordAction credits a learner for one action: the amount is appended to
// the ledger, the streak advances, and any newly satisfied achievements
// unlock, all in one transaction. A zero amount still appends an entry so
// the action counts toward achievement aggregates.
func (e *Engine) RecordAction(ctx context.Context, learnerID, action string, amount int, metadata map[string]any) (*ActionResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: negative amount %d for %s", ErrInvalidAmount, amount, action)
	}

	unlock := e.learnerLocks.lock(learnerID)
	defer unlock()

	now := e.now()
	var res *ActionResult
	err := e.store.WithTx(ctx, func(ctx context.Context, r *store.Repos) error {
		profile, err := r.Learners.Get(ctx, learnerID)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
		}
		res, err = e.settle(ctx, r, profile, action, amount, metadata, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", action, err)
	}

	e.afterCommit(res)
	return res, nil
}

// SubmitReview grades one flashcard recall: the card's scheduling state
// advances per SM-2 and the learner is credited review points by quality.
// Quality is validated before anything is touched; reviewing another
// learner's card is ErrForbidden.
func (e *Engine) SubmitReview(ctx context.Context, flashcardID, learnerID string, quality int) (*ReviewResult, error) {
	if quality < 0 || quality > 5 {
		return nil, fmt.Errorf("%w: got %d", srs.ErrInvalidQuality, quality)
	}

	unlockLearner := e.learnerLocks.lock(learnerID)
	defer unlockLearner()
	unlockCard := e.cardLocks.lock(flashcardID)
	defer unlockCard()

	now := e.now()
	var res *ReviewResult
	err := e.store.WithTx(ctx, func(ctx context.Context, r *store.Repos) error {
		card, err := r.Cards.Get(ctx, flashcardID)
		if err != nil {
			return err
		}
		if card == nil {
			return fmt.Errorf("flashcard %s: %w", flashcardID, ErrNotFound)
		}
		if card.LearnerID != learnerID {
			return fmt.Errorf("flashcard %s: %w", flashcardID, ErrForbidden)
		}
		profile, err := r.Learners.Get(ctx, learnerID)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
		}

		prior := srs.State{
			Repetitions:    card.Repetitions,
			EasinessFactor: card.EasinessFactor,
			IntervalDays:   card.IntervalDays,
			NextReviewAt:   card.NextReviewAt,
		}
		next, err := srs.Schedule(quality, prior, now)
		if err != nil {
			return err
		}
		if err := r.Cards.UpdateReview(ctx, flashcardID, store.ReviewUpdate{
			Repetitions:    next.Repetitions,
			EasinessFactor: next.EasinessFactor,
			IntervalDays:   next.IntervalDays,
			NextReviewAt:   next.NextReviewAt,
			LastReviewedAt: now,
		}); err != nil {
			return err
		}

		action, err := e.settle(ctx, r, profile, points.ActionReviewFlashcard, srs.ReviewPoints(quality),
			map[string]any{"flashcard_id": flashcardID, "quality": quality}, now)
		if err != nil {
			return err
		}
		res = &ReviewResult{CardID: flashcardID, State: next, ActionResult: *action}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}

	e.afterCommit(&res.ActionResult)
	return res, nil
}

// settle runs the shared award pipeline inside an open transaction: base
// award, streak touch with milestone bonus, aggregates snapshot,
// achievement unlocks with rewards, then one profile update. The snapshot
// is taken once, after the base and streak awards; achievement rewards do
// not cascade into further unlocks within the same settlement.
func (e *Engine) settle(ctx context.Context, r *store.Repos, profile *store.LearnerRecord, action string, amount int, metadata map[string]any, now time.Time) (*ActionResult, error) {
	if _, err := r.Ledger.Append(ctx, store.LedgerEntryData{
		LearnerID: profile.ID,
		Action:    action,
		Points:    amount,
		Metadata:  metadata,
	}); err != nil {
		return nil, err
	}
	total := points.Apply(profile.Points, amount).NewTotal

	streak, extended := streaks.Touch(profile.LastActiveAt, profile.Streak, now)
	bonus := 0
	if extended {
		if b, ok := streaks.MilestoneBonus(streak); ok {
			bonus = b
			if _, err := r.Ledger.Append(ctx, store.LedgerEntryData{
				LearnerID: profile.ID,
				Action:    points.StreakBonusAction(streak),
				Points:    b,
				Metadata:  map[string]any{"streak": streak},
			}); err != nil {
				return nil, err
			}
			total += b
		}
	}

	agg, err := e.aggregates(ctx, r, profile.ID, streak, total)
	if err != nil {
		return nil, err
	}
	held, err := r.Achievements.KeysFor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	var unlocked []achievements.Definition
	achievementPoints := 0
	for _, def := range achievements.Evaluate(agg, achievements.Catalog(), held) {
		err := r.Achievements.Unlock(ctx, profile.ID, def.Key, now)
		if errors.Is(err, store.ErrAlreadyUnlocked) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, err := r.Ledger.Append(ctx, store.LedgerEntryData{
			LearnerID: profile.ID,
			Action:    points.ActionAchievement,
			Points:    def.Points,
			Metadata:  map[string]any{"achievement": def.Key},
		}); err != nil {
			return nil, err
		}
		total += def.Points
		achievementPoints += def.Points
		unlocked = append(unlocked, def)
	}

	newLevel := points.Level(total)
	if err := r.Learners.UpdateProgress(ctx, profile.ID, store.ProgressUpdate{
		Points:       total,
		Level:        newLevel,
		Streak:       streak,
		LastActiveAt: now,
	}); err != nil {
		return nil, err
	}

	return &ActionResult{
		LearnerID:         profile.ID,
		Action:            action,
		PointsAwarded:     amount,
		StreakBonus:       bonus,
		AchievementPoints: achievementPoints,
		NewTotal:          total,
		NewLevel:          newLevel,
		LeveledUp:         newLevel > profile.Level,
		Streak:            streak,
		StreakExtended:    extended,
		Unlocked:          unlocked,
	}, nil
}

// aggregates builds the achievement snapshot from ledger action counts
// plus the in-flight streak and totals.
func (e *Engine) aggregates(ctx context.Context, r *store.Repos, learnerID string, streak, total int) (achievements.Aggregates, error) {
	agg := achievements.Aggregates{
		Streak: streak,
		Points: total,
		Level:  points.Level(total),
	}
	for _, c := range []struct {
		action string
		dst    *int
	}{
		{points.ActionUploadDocument, &agg.Documents},
		{points.ActionReviewFlashcard, &agg.FlashcardsReviewed},
		{points.ActionStudySession, &agg.StudySessions},
		{points.ActionCompleteQuiz, &agg.QuizzesCompleted},
		{points.ActionCreateNote, &agg.NotesCreated},
	} {
		n, err := r.Ledger.ActionCount(ctx, learnerID, c.action)
		if err != nil {
			return achievements.Aggregates{}, err
		}
		*c.dst = n
	}
	return agg, nil
}

// afterCommit emits best-effort notifications and drops stale leaderboard
// caches. A notification failure never affects the committed result.
func (e *Engine) afterCommit(res *ActionResult) {
	if res.LeveledUp {
		_ = e.notify.LevelUp(res.LearnerID, res.NewLevel)
	}
	if res.StreakBonus > 0 {
		_ = e.notify.StreakMilestone(res.LearnerID, res.Streak, res.StreakBonus)
	}
	for _, def := range res.Unlocked {
		_ = e.notify.AchievementUnlocked(res.LearnerID, def.Name, def.Points)
	}
	if e.boards != nil {
		e.boards.Invalidate()
	}
}

// AchievementProgress reports per-achievement progress for every catalog
// entry, unlocked ones first in catalog order. Read-only.
func (e *Engine) AchievementProgress(ctx context.Context, learnerID string) ([]achievements.Progress, error) {
	repos := e.store.Repos()
	profile, err := repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("achievement progress: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
	}

	agg, err := e.aggregates(ctx, repos, learnerID, profile.Streak, profile.Points)
	if err != nil {
		return nil, fmt.Errorf("achievement progress: %w", err)
	}
	held, err := repos.Achievements.KeysFor(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("achievement progress: %w", err)
	}
	return achievements.ProgressFor(agg, achievements.Catalog(), held), nil
}

// LearnerStats is a read-only snapshot of a learner's progress.
type LearnerStats struct {
	Learner           store.LearnerRecord
	PointsToNextLevel int
	LevelProgress     float64
	StreakAtRisk      bool
	Aggregates        achievements.Aggregates
	Achievements      int
	CardsDue          int
}

// Stats assembles the learner's progress snapshot: totals, level math,
// streak risk, achievement count, and due card count.
func (e *Engine) Stats(ctx context.Context, learnerID string) (*LearnerStats, error) {
	repos := e.store.Repos()
	profile, err := repos.Learners.Get(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, ErrNotFound)
	}

	now := e.now()
	agg, err := e.aggregates(ctx, repos, learnerID, profile.Streak, profile.Points)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	held, err := repos.Achievements.KeysFor(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	due, err := repos.Cards.DueFor(ctx, learnerID, now)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return &LearnerStats{
		Learner:           *profile,
		PointsToNextLevel: points.ForNextLevel(profile.Points),
		LevelProgress:     points.LevelProgress(profile.Points),
		StreakAtRisk:      streaks.AtRisk(profile.LastActiveAt, profile.Streak, now),
		Aggregates:        agg,
		Achievements:      len(held),
		CardsDue:          len(due),
	}, nil
}

// Unlocks returns the learner's achievement unlock records, newest first.
func (e *Engine) Unlocks(ctx context.Context, learnerID string) ([]store.UnlockRecord, error) {
	return e.store.Repos().Achievements.RecordsFor(ctx, learnerID)
}
