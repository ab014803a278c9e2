// Package leaderboard ranks learners by points within a time window.
// All-time boards rank running totals; weekly and monthly boards rank the
// sum of ledger entries inside the trailing window, so a learner with no
// recent activity is absent from a windowed board regardless of their
// all-time total.
package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/store"
)

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank      int
	LearnerID string
	Name      string
	Points    int
	Level     int
	Streak    int
}

// Service serves ranked leaderboard queries, optionally from a short-lived
// cache. Results are read-only; it never mutates learner state.
type Service struct {
	learners store.LearnerRepo
	ledger   store.LedgerRepo
	cache    *boardCache
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock injects the time source. Used by tests and by callers that
// need deterministic windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTTL overrides the cache freshness window. A negative TTL disables
// caching entirely.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// NewService creates a leaderboard service over the learner and ledger
// repositories, with a DefaultTTL cache.
func NewService(learners store.LearnerRepo, ledger store.LedgerRepo, opts ...Option) *Service {
	s := &Service{
		learners: learners,
		ledger:   ledger,
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl > 0 {
		s.cache = newBoardCache(s.ttl, s.now)
	}
	return s
}

// Top returns the highest-ranked learners for the period, at most limit
// rows. Ties break by points descending, then learner ID ascending.
func (s *Service) Top(ctx context.Context, period Period, limit int) ([]Entry, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if entries, ok := s.cache.get(period, limit); ok {
			return entries, nil
		}
	}

	var entries []Entry
	var err error
	if period == PeriodAllTime {
		entries, err = s.topAllTime(ctx, limit)
	} else {
		entries, err = s.topWindowed(ctx, period, limit)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.put(period, limit, entries)
	}
	return entries, nil
}

func (s *Service) topAllTime(ctx context.Context, limit int) ([]Entry, error) {
	profiles, err := s.learners.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("all-time leaderboard: %w", err)
	}

	entries := make([]Entry, len(profiles))
	for i, p := range profiles {
		entries[i] = Entry{
			Rank:      i + 1,
			LearnerID: p.ID,
			Name:      p.Name,
			Points:    p.Points,
			Level:     p.Level,
			Streak:    p.Streak,
		}
	}
	return entries, nil
}

func (s *Service) topWindowed(ctx context.Context, period Period, limit int) ([]Entry, error) {
	since := period.Window(s.now())
	totals, err := s.ledger.WindowTotals(ctx, since, limit)
	if err != nil {
		return nil, fmt.Errorf("%s leaderboard: %w", period, err)
	}

	entries := make([]Entry, 0, len(totals))
	for _, lp := range totals {
		profile, err := s.learners.Get(ctx, lp.LearnerID)
		if err != nil {
			return nil, fmt.Errorf("%s leaderboard: %w", period, err)
		}
		if profile == nil {
			// Ledger rows may outlive a deleted profile; skip them.
			continue
		}
		entries = append(entries, Entry{
			Rank:      len(entries) + 1,
			LearnerID: profile.ID,
			Name:      profile.Name,
			Points:    lp.Points,
			Level:     profile.Level,
			Streak:    profile.Streak,
		})
	}
	return entries, nil
}

// RankOf resolves one learner's rank for the period. The second return is
// false when the learner is unranked: unknown, or absent from a windowed
// board because they have no entries inside the window.
//
// Ranks count learners with strictly more points, so ties share a rank.
// Top breaks the same ties by learner ID into distinct row positions, so
// a tied learner's RankOf can be smaller than their row number in Top.
func (s *Service) RankOf(ctx context.Context, learnerID string, period Period) (int, bool, error) {
	if _, err := ParsePeriod(string(period)); err != nil {
		return 0, false, err
	}

	if period == PeriodAllTime {
		profile, err := s.learners.Get(ctx, learnerID)
		if err != nil {
			return 0, false, fmt.Errorf("all-time rank: %w", err)
		}
		if profile == nil {
			return 0, false, nil
		}
		higher, err := s.learners.CountWithMorePoints(ctx, profile.Points)
		if err != nil {
			return 0, false, fmt.Errorf("all-time rank: %w", err)
		}
		return higher + 1, true, nil
	}

	since := period.Window(s.now())
	own, present, err := s.ledger.WindowTotalFor(ctx, learnerID, since)
	if err != nil {
		return 0, false, fmt.Errorf("%s rank: %w", period, err)
	}
	if !present {
		return 0, false, nil
	}

	totals, err := s.ledger.WindowTotals(ctx, since, 0)
	if err != nil {
		return 0, false, fmt.Errorf("%s rank: %w", period, err)
	}
	higher := 0
	for _, lp := range totals {
		if lp.Points > own {
			higher++
		}
	}
	return higher + 1, true, nil
}

// Invalidate drops all cached boards. The engine calls it after writes so
// CLI reads in the same process see fresh results; remote readers rely on
// the TTL alone.
func (s *Service) Invalidate() {
	if s.cache != nil {
		s.cache.invalidate()
	}
}
