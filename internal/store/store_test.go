package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLearnerCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	created, err := r.Learners.Create(ctx, "learner-1", "Ada")
	require.NoError(t, err)
	assert.Equal(t, 0, created.Points)
	assert.Equal(t, 1, created.Level)
	assert.Equal(t, 0, created.Streak)
	assert.Nil(t, created.LastActiveAt)

	got, err := r.Learners.Get(ctx, "learner-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)

	missing, err := r.Learners.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLearnerUpdateProgress(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	_, err := r.Learners.Create(ctx, "learner-1", "Ada")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	err = r.Learners.UpdateProgress(ctx, "learner-1", ProgressUpdate{
		Points:       150,
		Level:        2,
		Streak:       3,
		LastActiveAt: now,
	})
	require.NoError(t, err)

	got, err := r.Learners.Get(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, 150, got.Points)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 3, got.Streak)
	require.NotNil(t, got.LastActiveAt)
	assert.True(t, got.LastActiveAt.Equal(now))
}

func TestLearnerListOrder(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	for _, l := range []struct {
		id     string
		points int
	}{
		{"c", 50},
		{"a", 100},
		{"b", 100},
	} {
		_, err := r.Learners.Create(ctx, l.id, l.id)
		require.NoError(t, err)
		err = r.Learners.UpdateProgress(ctx, l.id, ProgressUpdate{
			Points: l.points, Level: 1, LastActiveAt: time.Now(),
		})
		require.NoError(t, err)
	}

	list, err := r.Learners.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Points descending, ties broken by ID ascending.
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "c", list[2].ID)
}

func TestLedgerAppendAssignsSequences(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	first, err := r.Ledger.Append(ctx, LedgerEntryData{
		LearnerID: "learner-1",
		Action:    "upload_document",
		Points:    10,
	})
	require.NoError(t, err)

	second, err := r.Ledger.Append(ctx, LedgerEntryData{
		LearnerID: "learner-1",
		Action:    "create_note",
		Points:    2,
		Metadata:  map[string]any{"note_id": "n-1"},
	})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	entries, err := r.Ledger.EntriesFor(ctx, "learner-1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "create_note", entries[0].Action)
	assert.Equal(t, "n-1", entries[0].Metadata["note_id"])
}

func TestLedgerActionCount(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Ledger.Append(ctx, LedgerEntryData{
			LearnerID: "learner-1",
			Action:    "review_flashcard",
			Points:    5,
		})
		require.NoError(t, err)
	}
	_, err := r.Ledger.Append(ctx, LedgerEntryData{
		LearnerID: "learner-2",
		Action:    "review_flashcard",
		Points:    5,
	})
	require.NoError(t, err)

	n, err := r.Ledger.ActionCount(ctx, "learner-1", "review_flashcard")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = r.Ledger.ActionCount(ctx, "learner-1", "complete_quiz")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLedgerWindowTotals(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	for _, e := range []struct {
		learner string
		points  int
	}{
		{"a", 10},
		{"b", 30},
		{"a", 5},
	} {
		_, err := r.Ledger.Append(ctx, LedgerEntryData{
			LearnerID: e.learner,
			Action:    "upload_document",
			Points:    e.points,
		})
		require.NoError(t, err)
	}

	since := time.Now().Add(-time.Hour)
	totals, err := r.Ledger.WindowTotals(ctx, since, 0)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, LearnerPoints{LearnerID: "b", Points: 30}, totals[0])
	assert.Equal(t, LearnerPoints{LearnerID: "a", Points: 15}, totals[1])

	// A window in the future excludes everything.
	totals, err = r.Ledger.WindowTotals(ctx, time.Now().Add(time.Hour), 0)
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestLedgerWindowTotalFor(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()

	_, err := r.Ledger.Append(ctx, LedgerEntryData{
		LearnerID: "a",
		Action:    "complete_quiz",
		Points:    10,
	})
	require.NoError(t, err)

	sum, present, err := r.Ledger.WindowTotalFor(ctx, "a", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 10, sum)

	// No entries in the window: absent, not zero-ranked.
	_, present, err = r.Ledger.WindowTotalFor(ctx, "a", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, present)

	_, present, err = r.Ledger.WindowTotalFor(ctx, "ghost", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, present)
}

func TestAchievementUnlockOnce(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()
	now := time.Now()

	err := r.Achievements.Unlock(ctx, "learner-1", "first_upload", now)
	require.NoError(t, err)

	// Second unlock of the same pair reports ErrAlreadyUnlocked.
	err = r.Achievements.Unlock(ctx, "learner-1", "first_upload", now)
	assert.True(t, errors.Is(err, ErrAlreadyUnlocked))

	// Same key for a different learner is fine.
	err = r.Achievements.Unlock(ctx, "learner-2", "first_upload", now)
	require.NoError(t, err)

	keys, err := r.Achievements.KeysFor(ctx, "learner-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"first_upload": true}, keys)

	records, err := r.Achievements.RecordsFor(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "first_upload", records[0].AchievementKey)
}

func TestFlashcardLifecycle(t *testing.T) {
	s := openTestStore(t)
	r := s.Repos()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	created, err := r.Cards.Create(ctx, "card-1", "learner-1", "front", "back", now)
	require.NoError(t, err)
	assert.Equal(t, 0, created.Repetitions)
	assert.Equal(t, 2.5, created.EasinessFactor)
	assert.Equal(t, 1, created.IntervalDays)

	// Freshly created cards are due immediately.
	due, err := r.Cards.DueFor(ctx, "learner-1", now)
	require.NoError(t, err)
	require.Len(t, due, 1)

	next := now.AddDate(0, 0, 6)
	err = r.Cards.UpdateReview(ctx, "card-1", ReviewUpdate{
		Repetitions:    2,
		EasinessFactor: 2.6,
		IntervalDays:   6,
		NextReviewAt:   next,
		LastReviewedAt: now,
	})
	require.NoError(t, err)

	got, err := r.Cards.Get(ctx, "card-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Repetitions)
	assert.Equal(t, 6, got.IntervalDays)
	require.NotNil(t, got.LastReviewedAt)

	// No longer due.
	due, err = r.Cards.DueFor(ctx, "learner-1", now)
	require.NoError(t, err)
	assert.Empty(t, due)

	missing, err := r.Cards.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sentinel := errors.New("boom")
	err := s.WithTx(ctx, func(ctx context.Context, r *Repos) error {
		if _, err := r.Learners.Create(ctx, "learner-1", "Ada"); err != nil {
			return err
		}
		if _, err := r.Ledger.Append(ctx, LedgerEntryData{
			LearnerID: "learner-1",
			Action:    "upload_document",
			Points:    10,
		}); err != nil {
			return err
		}
		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))

	// Nothing from the failed transaction is visible.
	got, err := s.Repos().Learners.Get(ctx, "learner-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	entries, err := s.Repos().Ledger.EntriesFor(ctx, "learner-1", QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithTxCommits(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(ctx context.Context, r *Repos) error {
		_, err := r.Learners.Create(ctx, "learner-1", "Ada")
		return err
	})
	require.NoError(t, err)

	got, err := s.Repos().Learners.Get(ctx, "learner-1")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestWithTxSequenceSharesTransaction(t *testing.T) {
	// On a file-backed database the ledger append and the sequence claim
	// must run on the same connection: a claim on a second pool
	// connection commits under the transaction's open snapshot and
	// SQLite refuses the insert.
	s, err := Open(filepath.Join(t.TempDir(), "store_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, err = s.Repos().Learners.Create(ctx, "learner-1", "Ada")
	require.NoError(t, err)

	err = s.WithTx(ctx, func(ctx context.Context, r *Repos) error {
		for _, action := range []string{"upload_document", "complete_quiz"} {
			if _, err := r.Ledger.Append(ctx, LedgerEntryData{
				LearnerID: "learner-1",
				Action:    action,
				Points:    10,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	entries, err := s.Repos().Ledger.EntriesFor(ctx, "learner-1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].Sequence)
	assert.Equal(t, int64(1), entries[1].Sequence)
}

func TestWithTxRollbackReleasesSequence(t *testing.T) {
	// The counter update rolls back with the transaction, so a failed
	// append leaves no gap in the ledger order.
	s, err := Open(filepath.Join(t.TempDir(), "store_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	ctx := context.Background()

	_, err = s.Repos().Learners.Create(ctx, "learner-1", "Ada")
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = s.WithTx(ctx, func(ctx context.Context, r *Repos) error {
		if _, err := r.Ledger.Append(ctx, LedgerEntryData{
			LearnerID: "learner-1",
			Action:    "upload_document",
			Points:    10,
		}); err != nil {
			return err
		}
		return sentinel
	})
	assert.True(t, errors.Is(err, sentinel))

	seq, err := s.Repos().Ledger.Append(ctx, LedgerEntryData{
		LearnerID: "learner-1",
		Action:    "upload_document",
		Points:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
}
