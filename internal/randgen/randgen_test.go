package randgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChance_Bounds(t *testing.T) {
	s := New(1)

	for i := 0; i < 100; i++ {
		assert.False(t, s.Chance(0), "p=0 must never succeed")
		assert.True(t, s.Chance(1), "p=1 must always succeed")
	}
}

func TestDateBetween_WithinRange(t *testing.T) {
	s := New(1)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		d := s.DateBetween(start, end)
		assert.False(t, d.Before(start), "date %v before start", d)
		assert.False(t, d.After(end), "date %v after end", d)
	}
}

func TestDateBetween_DegenerateRange(t *testing.T) {
	s := New(1)
	start := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, start, s.DateBetween(start, start))
	assert.Equal(t, start, s.DateBetween(start, start.AddDate(0, 0, -10)))
}

func TestDaysAfter(t *testing.T) {
	s := New(1)
	base := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := s.DaysAfter(base, 0, 30)
		diff := int(d.Sub(base).Hours() / 24)
		require.GreaterOrEqual(t, diff, 0)
		require.LessOrEqual(t, diff, 30)
	}
}

func TestNewAt_SameSeedSameDraws(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAt(42, now)
	b := NewAt(42, now)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Number(0, 1000), b.Number(0, 1000))
	}
	assert.Equal(t, a.FirstName(), b.FirstName())
}
