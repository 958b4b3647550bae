package hr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHeader_Has70Columns(t *testing.T) {
	assert.Len(t, SnapshotHeader, 70)

	seen := make(map[string]bool, len(SnapshotHeader))
	for _, col := range SnapshotHeader {
		assert.False(t, seen[col], "duplicate column %q", col)
		seen[col] = true
	}
}

func TestEmit_RowMatchesHeader(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	for i := 0; i < 10; i++ {
		pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	}
	emitter := NewEmitter(src, pool)

	for i := 0; i < 100; i++ {
		emp := pool.Create(CreateSpec{})
		row := emitter.Emit(emp).Row()
		require.Len(t, row, len(SnapshotHeader))
	}
}

func TestEmit_HireDateRespectsAdulthood(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	emitter := NewEmitter(src, pool)

	for i := 0; i < 300; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)
		adult := emp.DateOfBirth.AddDate(18, 0, 0)
		assert.False(t, snap.HireDate.Before(adult))
	}
}

func TestEmit_ManagerOutranksSnapshot(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	for i := 0; i < 20; i++ {
		pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	}
	emitter := NewEmitter(src, pool)

	for i := 0; i < 300; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)
		rank := RankOf(snap.Designation)
		if rank == 0 {
			assert.Nil(t, snap.Manager)
			continue
		}
		require.NotNil(t, snap.Manager)
		assert.Less(t, snap.Manager.Rank(), rank)
	}
}

func TestEmit_TerminationFieldsPaired(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	for i := 0; i < 10; i++ {
		pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	}
	emitter := NewEmitter(src, pool)

	terminated := 0
	for i := 0; i < 1000; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)

		if snap.LastWorkingDate.IsZero() {
			assert.Empty(t, snap.TerminationReason)
			assert.True(t, snap.NoticeDate.IsZero())
			assert.Equal(t, "Yes", snap.RehireEligible)
			assert.Equal(t, "Active", snap.EmployeeStatus)
			continue
		}

		terminated++
		assert.NotEmpty(t, snap.TerminationReason)
		assert.Equal(t, "Terminated", snap.EmployeeStatus)
		assert.False(t, snap.LastWorkingDate.Before(snap.HireDate))
		assert.False(t, snap.LastWorkingDate.After(src.Now()))
		if !snap.NoticeDate.IsZero() {
			assert.False(t, snap.NoticeDate.After(snap.LastWorkingDate))
			assert.False(t, snap.NoticeDate.Before(snap.HireDate))
		}
	}
	// ~8% of 1000; generous bounds to keep the test stable across seeds.
	assert.Greater(t, terminated, 20)
	assert.Less(t, terminated, 200)
}

func TestEmit_ReviewDatesOrdered(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	emitter := NewEmitter(src, pool)

	for i := 0; i < 200; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)

		assert.False(t, snap.ReviewSubmissionDate.Before(snap.HireDate))
		assert.False(t, snap.ReviewApprovalDate.Before(snap.ReviewSubmissionDate))
		days := snap.ReviewApprovalDate.Sub(snap.ReviewSubmissionDate).Hours() / 24
		assert.LessOrEqual(t, days, 31.0)
	}
}

func TestEmit_PromotionHistory(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	emitter := NewEmitter(src, pool)

	for i := 0; i < 300; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)

		require.GreaterOrEqual(t, snap.PromotionCount, 0)
		require.LessOrEqual(t, snap.PromotionCount, 5)
		if snap.PromotionCount == 0 {
			assert.True(t, snap.LastPromotionDate.IsZero())
		} else {
			assert.False(t, snap.LastPromotionDate.Before(snap.HireDate))
			assert.False(t, snap.LastPromotionDate.After(src.Now()))
		}
	}
}

func TestEmit_GenderGatedLeave(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	emitter := NewEmitter(src, pool)

	for i := 0; i < 300; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)

		if emp.Gender == "Female" {
			assert.Zero(t, snap.PaternityLeavesTaken)
		} else {
			assert.Zero(t, snap.MaternityLeavesTaken)
		}
	}
}

func TestEmit_CompensationRanges(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	emitter := NewEmitter(src, pool)

	for i := 0; i < 300; i++ {
		emp := pool.Create(CreateSpec{})
		snap := emitter.Emit(emp)

		assert.GreaterOrEqual(t, snap.Salary, 250000)
		assert.LessOrEqual(t, snap.Salary, 3500000)
		assert.GreaterOrEqual(t, snap.Bonus, 0)
		assert.LessOrEqual(t, snap.Bonus, snap.Salary/4)
		assert.GreaterOrEqual(t, snap.AppraisalScore, 1.0)
		assert.LessOrEqual(t, snap.AppraisalScore, 5.0)
	}
}

func TestRatingFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{4.9, "Outstanding"},
		{4.5, "Outstanding"},
		{4.49, "Exceeds Expectations"},
		{3.5, "Exceeds Expectations"},
		{3.49, "Meets Expectations"},
		{2.5, "Meets Expectations"},
		{2.49, "Needs Improvement"},
		{1.0, "Needs Improvement"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ratingFor(tt.score), "score %v", tt.score)
	}
}

func TestSnapshot_Row_ReviewerEqualsManager(t *testing.T) {
	src := testSource()
	pool := NewPool(src)
	for i := 0; i < 10; i++ {
		pool.Create(CreateSpec{MaxRank: leaderMaxRank})
	}
	emitter := NewEmitter(src, pool)

	emp := pool.Create(CreateSpec{})
	snap := emitter.Emit(emp)
	require.NotNil(t, snap.Manager)
	row := snap.Row()

	idx := make(map[string]int, len(SnapshotHeader))
	for i, col := range SnapshotHeader {
		idx[col] = i
	}
	assert.Equal(t, row[idx["manager_emp_id"]], row[idx["reviewer_emp_id"]])
	assert.Equal(t, row[idx["manager_name"]], row[idx["reviewer_name"]])
}

func TestSnapshot_Row_EmptyDatesSerializeEmpty(t *testing.T) {
	var zero time.Time
	assert.Equal(t, "", fmtDate(zero))
	assert.Equal(t, "2024-02-29", fmtDate(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}
