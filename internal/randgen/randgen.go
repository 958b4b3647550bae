// Package randgen owns the random source for one generation run: a
// seeded gofakeit faker plus a pinned clock, so a run draws from a
// single deterministic stream and never touches global state.
package randgen

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Source is a seeded random source with date helpers. It embeds the
// faker so callers sample names, addresses and numbers directly.
type Source struct {
	*gofakeit.Faker
	now time.Time
}

// New returns a source seeded with seed. A zero seed picks a time-based
// one, for callers that only care about varied output.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewAt(seed, time.Now())
}

// NewAt returns a source with an explicitly pinned clock, mainly for tests
func NewAt(seed int64, now time.Time) *Source {
	return &Source{
		Faker: gofakeit.New(seed),
		now:   now.UTC().Truncate(24 * time.Hour),
	}
}

// Now returns the pinned run date (UTC, day granularity)
func (s *Source) Now() time.Time {
	return s.now
}

// Chance reports one draw with probability p of success
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64Range(0, 1) < p
}

// DateBetween returns a date in [start, end] at day granularity.
// A degenerate range collapses to start.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start.UTC().Truncate(24 * time.Hour)
	}
	return s.DateRange(start, end).UTC().Truncate(24 * time.Hour)
}

// DaysAfter returns t plus a uniform number of days in [min, max]
func (s *Source) DaysAfter(t time.Time, min, max int) time.Time {
	return t.AddDate(0, 0, s.Number(min, max))
}
