package leaderboard

import (
	"errors"
	"fmt"
	"time"
)

// Period is the leaderboard time window.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAllTime Period = "alltime"
)

// ErrInvalidPeriod indicates an unknown period label.
var ErrInvalidPeriod = errors.New("period must be weekly, monthly, or alltime")

// ParsePeriod validates a period label.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeekly, PeriodMonthly, PeriodAllTime:
		return Period(s), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidPeriod, s)
	}
}

// Window returns the start of the trailing window for the period: 7 days
// for weekly, 30 for monthly. The all-time period has no window and
// returns the zero time.
func (p Period) Window(now time.Time) time.Time {
	switch p {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodMonthly:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}
