// Package stats computes derived task statistics for the dashboard view.
package stats

import (
	"time"

	"taskboard/internal/service"
	"taskboard/internal/week"
)

// TrailingDays is the length of the completions-per-day series.
const TrailingDays = 7

// Stats are the dashboard numbers derived from the task set.
type Stats struct {
	Total     int
	Open      int
	Completed int
	DueToday  int // open tasks due today
	Overdue   int // open tasks with a due date before today
	Undated   int // open tasks without a due date

	// CompletionRate is Completed/Total, 0 when there are no tasks.
	CompletionRate float64

	// DoneByDay counts completions per day over the trailing week,
	// oldest day first, today last.
	DoneByDay [TrailingDays]int
}

// Compute derives Stats from tasks as of now.
func Compute(tasks []service.Task, now time.Time) Stats {
	var s Stats
	today := midnight(now)

	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
			if day, ok := completionDay(t); ok {
				offset := int(today.Sub(midnight(day)).Hours() / 24)
				if offset >= 0 && offset < TrailingDays {
					s.DoneByDay[TrailingDays-1-offset]++
				}
			}
			continue
		}

		s.Open++
		if t.DueDate == "" {
			s.Undated++
			continue
		}
		due, err := time.ParseInLocation(week.DateLayout, t.DueDate, now.Location())
		if err != nil {
			continue
		}
		switch {
		case due.Before(today):
			s.Overdue++
		case due.Equal(today):
			s.DueToday++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total)
	}
	return s
}

// completionDay estimates when a task was completed: the update timestamp if
// present, else the due date, else the creation timestamp.
func completionDay(t service.Task) (time.Time, bool) {
	if ts, ok := parseTime(t.UpdatedAt); ok {
		return ts, true
	}
	if t.DueDate != "" {
		if ts, err := time.Parse(week.DateLayout, t.DueDate); err == nil {
			return ts, true
		}
	}
	return parseTime(t.CreatedAt)
}

// parseTime accepts the timestamp shapes the backend emits.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
