package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/service"
	"taskboard/internal/stats"
)

func TestComputeEmpty(t *testing.T) {
	s := stats.Compute(nil, time.Now())
	assert.Zero(t, s.Total)
	assert.Zero(t, s.CompletionRate)
}

func TestComputeBuckets(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	tasks := []service.Task{
		{ID: 1, Title: "due today", DueDate: "2026-08-29"},
		{ID: 2, Title: "overdue", DueDate: "2026-08-20"},
		{ID: 3, Title: "future", DueDate: "2026-09-10"},
		{ID: 4, Title: "unscheduled"},
		{ID: 5, Title: "done", Completed: true, UpdatedAt: "2026-08-29T10:00:00Z"},
		{ID: 6, Title: "done earlier", Completed: true, UpdatedAt: "2026-08-27T09:30:00Z"},
	}

	s := stats.Compute(tasks, now)

	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 4, s.Open)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 1, s.Undated)
	assert.InDelta(t, 2.0/6.0, s.CompletionRate, 1e-9)
}

func TestDoneByDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	tasks := []service.Task{
		// Today, twice.
		{ID: 1, Completed: true, UpdatedAt: "2026-08-29T08:00:00Z"},
		{ID: 2, Completed: true, UpdatedAt: "2026-08-29T22:00:00Z"},
		// Oldest day still inside the window.
		{ID: 3, Completed: true, UpdatedAt: "2026-08-23T12:00:00Z"},
		// Outside the window, not counted.
		{ID: 4, Completed: true, UpdatedAt: "2026-08-22T12:00:00Z"},
		// No update timestamp: the due date stands in.
		{ID: 5, Completed: true, DueDate: "2026-08-27"},
		// Nothing usable at all: completed but dateless.
		{ID: 6, Completed: true},
	}

	s := stats.Compute(tasks, now)

	assert.Equal(t, [7]int{1, 0, 0, 0, 1, 0, 2}, s.DoneByDay)
	assert.Equal(t, 6, s.Completed)
}

func TestCompletionDayFallbacks(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	// Microsecond timestamps without a zone, as some backends emit.
	s := stats.Compute([]service.Task{
		{ID: 1, Completed: true, UpdatedAt: "2026-08-28T10:00:00.123456"},
		{ID: 2, Completed: true, CreatedAt: "2026-08-26T10:00:00Z"},
	}, now)

	assert.Equal(t, [7]int{0, 0, 0, 1, 0, 1, 0}, s.DoneByDay)
}
