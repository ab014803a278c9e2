package leaderboard

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/store"
)

// fakeLearnerRepo implements store.LearnerRepo over an in-memory map.
type fakeLearnerRepo struct {
	profiles map[string]store.LearnerRecord
}

func (f *fakeLearnerRepo) Create(_ context.Context, id, name string) (*store.LearnerRecord, error) {
	rec := store.LearnerRecord{ID: id, Name: name, Level: 1}
	f.profiles[id] = rec
	return &rec, nil
}

func (f *fakeLearnerRepo) Get(_ context.Context, id string) (*store.LearnerRecord, error) {
	rec, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeLearnerRepo) List(_ context.Context, limit int) ([]store.LearnerRecord, error) {
	var out []store.LearnerRecord
	for _, rec := range f.profiles {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLearnerRepo) UpdateProgress(_ context.Context, id string, up store.ProgressUpdate) error {
	rec := f.profiles[id]
	rec.Points = up.Points
	rec.Level = up.Level
	rec.Streak = up.Streak
	f.profiles[id] = rec
	return nil
}

func (f *fakeLearnerRepo) CountWithMorePoints(_ context.Context, points int) (int, error) {
	n := 0
	for _, rec := range f.profiles {
		if rec.Points > points {
			n++
		}
	}
	return n, nil
}

// fakeLedgerRepo implements store.LedgerRepo over a slice of entries.
type fakeLedgerRepo struct {
	entries []store.LedgerEntryRecord
	queries int
}

func (f *fakeLedgerRepo) Append(_ context.Context, data store.LedgerEntryData) (int64, error) {
	seq := int64(len(f.entries) + 1)
	f.entries = append(f.entries, store.LedgerEntryRecord{
		Sequence:  seq,
		LearnerID: data.LearnerID,
		Action:    data.Action,
		Points:    data.Points,
		CreatedAt: time.Now(),
	})
	return seq, nil
}

func (f *fakeLedgerRepo) EntriesFor(_ context.Context, learnerID string, _ store.QueryOpts) ([]store.LedgerEntryRecord, error) {
	var out []store.LedgerEntryRecord
	for _, e := range f.entries {
		if e.LearnerID == learnerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) ActionCount(_ context.Context, learnerID, action string) (int, error) {
	n := 0
	for _, e := range f.entries {
		if e.LearnerID == learnerID && e.Action == action {
			n++
		}
	}
	return n, nil
}

func (f *fakeLedgerRepo) WindowTotals(_ context.Context, since time.Time, limit int) ([]store.LearnerPoints, error) {
	f.queries++
	sums := make(map[string]int)
	for _, e := range f.entries {
		if !e.CreatedAt.Before(since) {
			sums[e.LearnerID] += e.Points
		}
	}
	var out []store.LearnerPoints
	for id, pts := range sums {
		out = append(out, store.LearnerPoints{LearnerID: id, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].LearnerID < out[j].LearnerID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedgerRepo) WindowTotalFor(_ context.Context, learnerID string, since time.Time) (int, bool, error) {
	sum, present := 0, false
	for _, e := range f.entries {
		if e.LearnerID == learnerID && !e.CreatedAt.Before(since) {
			sum += e.Points
			present = true
		}
	}
	return sum, present, nil
}

func newFixture() (*fakeLearnerRepo, *fakeLedgerRepo) {
	return &fakeLearnerRepo{profiles: make(map[string]store.LearnerRecord)}, &fakeLedgerRepo{}
}

func seedLearner(f *fakeLearnerRepo, id string, points, level, streak int) {
	f.profiles[id] = store.LearnerRecord{ID: id, Name: id, Points: points, Level: level, Streak: streak}
}

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"weekly", "monthly", "alltime"} {
		if _, err := ParsePeriod(s); err != nil {
			t.Errorf("ParsePeriod(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range []string{"", "daily", "ALLTIME"} {
		_, err := ParsePeriod(s)
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ParsePeriod(%q) = %v, want ErrInvalidPeriod", s, err)
		}
	}
}

func TestTopAllTime(t *testing.T) {
	learners, ledger := newFixture()
	seedLearner(learners, "a", 500, 6, 3)
	seedLearner(learners, "b", 120, 2, 1)
	seedLearner(learners, "c", 120, 2, 0)

	svc := NewService(learners, ledger, WithTTL(-1))
	entries, err := svc.Top(context.Background(), PeriodAllTime, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Points descending, tie (b, c) broken by ID ascending.
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if entries[i].LearnerID != want {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].LearnerID, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entries[%d].Rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
	if entries[0].Points != 500 {
		t.Errorf("top entry points = %d, want 500", entries[0].Points)
	}
}

func TestTopWindowedRanksWindowSums(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	learners, ledger := newFixture()
	seedLearner(learners, "rich", 500, 6, 0)
	seedLearner(learners, "active", 40, 1, 2)

	// rich earned everything long ago; active earned recently.
	ledger.entries = []store.LedgerEntryRecord{
		{LearnerID: "rich", Action: "upload_document", Points: 500, CreatedAt: now.AddDate(0, 0, -60)},
		{LearnerID: "active", Action: "complete_quiz", Points: 10, CreatedAt: now.AddDate(0, 0, -2)},
		{LearnerID: "active", Action: "upload_document", Points: 30, CreatedAt: now.AddDate(0, 0, -1)},
	}

	svc := NewService(learners, ledger, WithClock(func() time.Time { return now }), WithTTL(-1))

	entries, err := svc.Top(context.Background(), PeriodWeekly, 10)
	if err != nil {
		t.Fatalf("Top(weekly): %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("weekly board has %d entries, want 1", len(entries))
	}
	if entries[0].LearnerID != "active" || entries[0].Points != 40 {
		t.Errorf("weekly top = %s/%d, want active/40", entries[0].LearnerID, entries[0].Points)
	}

	// The monthly window does not reach the 60-day-old entry either.
	entries, err = svc.Top(context.Background(), PeriodMonthly, 10)
	if err != nil {
		t.Fatalf("Top(monthly): %v", err)
	}
	if len(entries) != 1 || entries[0].LearnerID != "active" {
		t.Errorf("monthly board = %+v, want only active", entries)
	}
}

func TestTopRejectsInvalidPeriod(t *testing.T) {
	learners, ledger := newFixture()
	svc := NewService(learners, ledger, WithTTL(-1))
	_, err := svc.Top(context.Background(), Period("daily"), 10)
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("Top(daily) err = %v, want ErrInvalidPeriod", err)
	}
}

func TestRankOfWindowedAbsence(t *testing.T) {
	// A learner with a large all-time total but no entries in the window
	// has no weekly rank while their all-time rank is finite.
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	learners, ledger := newFixture()
	seedLearner(learners, "idle", 500, 6, 0)
	ledger.entries = []store.LedgerEntryRecord{
		{LearnerID: "idle", Action: "upload_document", Points: 500, CreatedAt: now.AddDate(0, 0, -90)},
	}

	svc := NewService(learners, ledger, WithClock(func() time.Time { return now }), WithTTL(-1))
	ctx := context.Background()

	_, ranked, err := svc.RankOf(ctx, "idle", PeriodWeekly)
	if err != nil {
		t.Fatalf("RankOf(weekly): %v", err)
	}
	if ranked {
		t.Error("idle learner should be absent from the weekly board")
	}

	rank, ranked, err := svc.RankOf(ctx, "idle", PeriodAllTime)
	if err != nil {
		t.Fatalf("RankOf(alltime): %v", err)
	}
	if !ranked || rank != 1 {
		t.Errorf("all-time rank = (%d, %v), want (1, true)", rank, ranked)
	}
}

func TestRankOfCountsStrictlyHigher(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	learners, ledger := newFixture()
	for _, l := range []struct {
		id  string
		pts int
	}{{"a", 30}, {"b", 20}, {"c", 10}} {
		seedLearner(learners, l.id, l.pts, 1, 0)
		ledger.entries = append(ledger.entries, store.LedgerEntryRecord{
			LearnerID: l.id, Action: "complete_quiz", Points: l.pts, CreatedAt: now.Add(-time.Hour),
		})
	}

	svc := NewService(learners, ledger, WithClock(func() time.Time { return now }), WithTTL(-1))
	ctx := context.Background()

	for _, tt := range []struct {
		id   string
		want int
	}{{"a", 1}, {"b", 2}, {"c", 3}} {
		rank, ranked, err := svc.RankOf(ctx, tt.id, PeriodWeekly)
		if err != nil {
			t.Fatalf("RankOf(%s): %v", tt.id, err)
		}
		if !ranked || rank != tt.want {
			t.Errorf("RankOf(%s) = (%d, %v), want (%d, true)", tt.id, rank, ranked, tt.want)
		}
	}
}

func TestRankOfUnknownLearner(t *testing.T) {
	learners, ledger := newFixture()
	svc := NewService(learners, ledger, WithTTL(-1))
	_, ranked, err := svc.RankOf(context.Background(), "ghost", PeriodAllTime)
	if err != nil {
		t.Fatalf("RankOf: %v", err)
	}
	if ranked {
		t.Error("unknown learner should be unranked")
	}
}

func TestCacheServesWithinTTL(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	clock := &now
	learners, ledger := newFixture()
	seedLearner(learners, "a", 10, 1, 0)
	ledger.entries = []store.LedgerEntryRecord{
		{LearnerID: "a", Action: "upload_document", Points: 10, CreatedAt: now.Add(-time.Hour)},
	}

	svc := NewService(learners, ledger,
		WithClock(func() time.Time { return *clock }),
		WithTTL(60*time.Second),
	)
	ctx := context.Background()

	if _, err := svc.Top(ctx, PeriodWeekly, 10); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Top(ctx, PeriodWeekly, 10); err != nil {
		t.Fatal(err)
	}
	if ledger.queries != 1 {
		t.Errorf("within TTL: %d window queries, want 1 (second hit cached)", ledger.queries)
	}

	// Advance past the TTL; the next read recomputes.
	later := now.Add(61 * time.Second)
	clock = &later
	if _, err := svc.Top(ctx, PeriodWeekly, 10); err != nil {
		t.Fatal(err)
	}
	if ledger.queries != 2 {
		t.Errorf("after TTL: %d window queries, want 2", ledger.queries)
	}
}

func TestCacheKeyedByPeriod(t *testing.T) {
	// A cached weekly board must never satisfy a monthly request.
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	learners, ledger := newFixture()
	seedLearner(learners, "a", 10, 1, 0)
	ledger.entries = []store.LedgerEntryRecord{
		{LearnerID: "a", Action: "upload_document", Points: 10, CreatedAt: now.AddDate(0, 0, -10)},
	}

	svc := NewService(learners, ledger,
		WithClock(func() time.Time { return now }),
		WithTTL(60*time.Second),
	)
	ctx := context.Background()

	weekly, err := svc.Top(ctx, PeriodWeekly, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(weekly) != 0 {
		t.Errorf("weekly board has %d entries, want 0 (entry is 10 days old)", len(weekly))
	}

	monthly, err := svc.Top(ctx, PeriodMonthly, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(monthly) != 1 {
		t.Errorf("monthly board has %d entries, want 1", len(monthly))
	}
}

func TestInvalidate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	learners, ledger := newFixture()
	seedLearner(learners, "a", 10, 1, 0)
	ledger.entries = []store.LedgerEntryRecord{
		{LearnerID: "a", Action: "upload_document", Points: 10, CreatedAt: now.Add(-time.Hour)},
	}

	svc := NewService(learners, ledger,
		WithClock(func() time.Time { return now }),
		WithTTL(60*time.Second),
	)
	ctx := context.Background()

	if _, err := svc.Top(ctx, PeriodWeekly, 10); err != nil {
		t.Fatal(err)
	}
	svc.Invalidate()
	if _, err := svc.Top(ctx, PeriodWeekly, 10); err != nil {
		t.Fatal(err)
	}
	if ledger.queries != 2 {
		t.Errorf("%d window queries after invalidate, want 2", ledger.queries)
	}
}

func TestRankOfSharesRankOnTies(t *testing.T) {
	// Tied learners share a rank (both #1), while Top still assigns them
	// distinct row positions by ID.
	learners, ledger := newFixture()
	seedLearner(learners, "a", 100, 2, 0)
	seedLearner(learners, "b", 100, 2, 0)
	seedLearner(learners, "c", 50, 1, 0)

	svc := NewService(learners, ledger, WithTTL(-1))
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		rank, ranked, err := svc.RankOf(ctx, id, PeriodAllTime)
		if err != nil {
			t.Fatalf("RankOf(%s): %v", id, err)
		}
		if !ranked || rank != 1 {
			t.Errorf("RankOf(%s) = (%d, %v), want (1, true)", id, rank, ranked)
		}
	}
	rank, ranked, err := svc.RankOf(ctx, "c", PeriodAllTime)
	if err != nil {
		t.Fatalf("RankOf(c): %v", err)
	}
	if !ranked || rank != 3 {
		t.Errorf("RankOf(c) = (%d, %v), want (3, true)", rank, ranked)
	}

	entries, err := svc.Top(ctx, PeriodAllTime, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if entries[i].LearnerID != want || entries[i].Rank != i+1 {
			t.Errorf("entries[%d] = %s rank %d, want %s rank %d",
				i, entries[i].LearnerID, entries[i].Rank, want, i+1)
		}
	}
}
