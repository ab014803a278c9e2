package store

import (
	"context"
	"errors"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/ent"
)

// ErrAlreadyUnlocked indicates an achievement unlock hit the unique
// (learner, achievement) constraint. Callers treat it as a successful
// no-op, never as a failure.
var ErrAlreadyUnlocked = errors.New("achievement already unlocked")

// QueryOpts configures ledger queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// LearnerRecord is a learner profile row.
type LearnerRecord struct {
	ID           string
	Name         string
	Points       int
	Level        int
	Streak       int
	LastActiveAt *time.Time
	CreatedAt    time.Time
}

// ProgressUpdate carries the mutable gamification fields of a profile.
// Points and level are monotonic; the repos never decrease them.
type ProgressUpdate struct {
	Points       int
	Level        int
	Streak       int
	LastActiveAt time.Time
}

// LearnerRepo manages learner profiles.
type LearnerRepo interface {
	// Create inserts a new profile with zeroed progress.
	Create(ctx context.Context, id, name string) (*LearnerRecord, error)

	// Get returns the profile, or nil if the learner does not exist.
	Get(ctx context.Context, id string) (*LearnerRecord, error)

	// List returns all profiles ordered by points descending, then ID
	// ascending, optionally limited.
	List(ctx context.Context, limit int) ([]LearnerRecord, error)

	// UpdateProgress overwrites the mutable progress fields.
	UpdateProgress(ctx context.Context, id string, up ProgressUpdate) error

	// CountWithMorePoints returns how many learners have a strictly
	// higher running total. Used for all-time rank resolution.
	CountWithMorePoints(ctx context.Context, points int) (int, error)
}

// LedgerEntryData is the payload for one points ledger append.
type LedgerEntryData struct {
	LearnerID string
	Action    string
	Points    int
	Metadata  map[string]any
}

// LedgerEntryRecord is one persisted ledger entry.
type LedgerEntryRecord struct {
	Sequence  int64
	LearnerID string
	Action    string
	Points    int
	Metadata  map[string]any
	CreatedAt time.Time
}

// LearnerPoints pairs a learner with a points sum for a window.
type LearnerPoints struct {
	LearnerID string
	Points    int
}

// LedgerRepo provides append and aggregate access to the points ledger.
type LedgerRepo interface {
	// Append writes one immutable entry and returns its sequence.
	Append(ctx context.Context, data LedgerEntryData) (int64, error)

	// EntriesFor returns a learner's entries, newest first.
	EntriesFor(ctx context.Context, learnerID string, opts QueryOpts) ([]LedgerEntryRecord, error)

	// ActionCount returns how many entries the learner has for an action.
	ActionCount(ctx context.Context, learnerID, action string) (int, error)

	// WindowTotals sums points per learner for entries created at or
	// after since, ordered by sum descending then learner ID ascending.
	WindowTotals(ctx context.Context, since time.Time, limit int) ([]LearnerPoints, error)

	// WindowTotalFor sums one learner's points in the window. The second
	// return is false when the learner has no entries in the window.
	WindowTotalFor(ctx context.Context, learnerID string, since time.Time) (int, bool, error)
}

// UnlockRecord is one persisted achievement unlock.
type UnlockRecord struct {
	LearnerID      string
	AchievementKey string
	UnlockedAt     time.Time
}

// AchievementRepo manages per-learner achievement unlocks.
type AchievementRepo interface {
	// Unlock records the unlock, returning ErrAlreadyUnlocked when the
	// (learner, achievement) pair already exists.
	Unlock(ctx context.Context, learnerID, key string, at time.Time) error

	// KeysFor returns the set of achievement keys the learner holds.
	KeysFor(ctx context.Context, learnerID string) (map[string]bool, error)

	// RecordsFor returns the learner's unlocks, newest first.
	RecordsFor(ctx context.Context, learnerID string) ([]UnlockRecord, error)
}

// FlashcardRecord is a flashcard row with its review state.
type FlashcardRecord struct {
	ID             string
	LearnerID      string
	Front          string
	Back           string
	Repetitions    int
	EasinessFactor float64
	IntervalDays   int
	NextReviewAt   time.Time
	LastReviewedAt *time.Time
	CreatedAt      time.Time
}

// ReviewUpdate carries the scheduling fields written after one review.
type ReviewUpdate struct {
	Repetitions    int
	EasinessFactor float64
	IntervalDays   int
	NextReviewAt   time.Time
	LastReviewedAt time.Time
}

// FlashcardRepo manages flashcards and their review state.
type FlashcardRepo interface {
	// Create inserts a new card due immediately.
	Create(ctx context.Context, id, learnerID, front, back string, now time.Time) (*FlashcardRecord, error)

	// Get returns the card, or nil if it does not exist.
	Get(ctx context.Context, id string) (*FlashcardRecord, error)

	// UpdateReview overwrites the card's scheduling state.
	UpdateReview(ctx context.Context, id string, up ReviewUpdate) error

	// DueFor returns the learner's cards due at now, most overdue first.
	DueFor(ctx context.Context, learnerID string, now time.Time) ([]FlashcardRecord, error)
}

// Repos bundles every repository over one client, so a transaction can
// hand callers a fully transactional set.
type Repos struct {
	Learners     LearnerRepo
	Ledger       LedgerRepo
	Achievements AchievementRepo
	Cards        FlashcardRepo
}

func newRepos(client *ent.Client, seq *sequenceCounter, conn seqConn) *Repos {
	return &Repos{
		Learners:     &learnerRepo{client: client},
		Ledger:       &ledgerRepo{client: client, seq: seq, conn: conn},
		Achievements: &achievementRepo{client: client},
		Cards:        &flashcardRepo{client: client},
	}
}
