// Package week buckets tasks into a Monday-anchored weekly board by due date.
package week

import (
	"time"

	"taskboard/internal/service"
)

// DateLayout is the due-date wire format.
const DateLayout = "2006-01-02"

// Day is one column of the board.
type Day struct {
	Date  time.Time
	Tasks []service.Task
}

// Board is a seven-day board plus a column for unscheduled tasks. Tasks due
// outside the board's week are not shown.
type Board struct {
	Start   time.Time // Monday of the board's week
	Days    [7]Day
	Undated []service.Task
}

// WeekStart returns the Monday (at midnight, local) of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset)
}

// Build buckets tasks by due date into the week containing anchor.
func Build(tasks []service.Task, anchor time.Time) Board {
	start := WeekStart(anchor)
	board := Board{Start: start}
	for i := range board.Days {
		board.Days[i].Date = start.AddDate(0, 0, i)
	}

	dayIndex := make(map[string]int, 7)
	for i, d := range board.Days {
		dayIndex[d.Date.Format(DateLayout)] = i
	}

	for _, t := range tasks {
		if t.DueDate == "" {
			board.Undated = append(board.Undated, t)
			continue
		}
		if i, ok := dayIndex[t.DueDate]; ok {
			board.Days[i].Tasks = append(board.Days[i].Tasks, t)
		}
	}
	return board
}

// DayByName resolves a weekday name (mon..sun, full names accepted) within
// the week containing anchor. Returns the zero time when the name is unknown.
func DayByName(name string, anchor time.Time) time.Time {
	names := map[string]int{
		"mon": 0, "monday": 0,
		"tue": 1, "tuesday": 1,
		"wed": 2, "wednesday": 2,
		"thu": 3, "thursday": 3,
		"fri": 4, "friday": 4,
		"sat": 5, "saturday": 5,
		"sun": 6, "sunday": 6,
	}
	i, ok := names[name]
	if !ok {
		return time.Time{}
	}
	return WeekStart(anchor).AddDate(0, 0, i)
}
