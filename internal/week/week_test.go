package week_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/service"
	"taskboard/internal/week"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(week.DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", date("2026-08-24"), "2026-08-24"},
		{"wednesday", date("2026-08-26"), "2026-08-24"},
		{"sunday stays in its week", date("2026-08-30"), "2026-08-24"},
		{"next monday", date("2026-08-31"), "2026-08-31"},
		{"time of day stripped", date("2026-08-26").Add(23 * time.Hour), "2026-08-24"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := week.WeekStart(tc.in)
			assert.Equal(t, tc.want, got.Format(week.DateLayout))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestBuild(t *testing.T) {
	tasks := []service.Task{
		{ID: 1, Title: "Write report", DueDate: "2026-08-24"},
		{ID: 2, Title: "Dentist", DueDate: "2026-08-26"},
		{ID: 3, Title: "Also Wednesday", DueDate: "2026-08-26"},
		{ID: 4, Title: "Groceries"},
		{ID: 5, Title: "Next week", DueDate: "2026-09-02"},
		{ID: 6, Title: "Last week", DueDate: "2026-08-23"},
	}

	board := week.Build(tasks, date("2026-08-26"))

	assert.Equal(t, "2026-08-24", board.Start.Format(week.DateLayout))
	for i, day := range board.Days {
		assert.Equal(t, board.Start.AddDate(0, 0, i), day.Date)
	}

	assert.Len(t, board.Days[0].Tasks, 1) // Monday
	assert.Equal(t, int64(1), board.Days[0].Tasks[0].ID)

	// Same-day tasks keep their input order.
	assert.Len(t, board.Days[2].Tasks, 2) // Wednesday
	assert.Equal(t, int64(2), board.Days[2].Tasks[0].ID)
	assert.Equal(t, int64(3), board.Days[2].Tasks[1].ID)

	assert.Len(t, board.Undated, 1)
	assert.Equal(t, int64(4), board.Undated[0].ID)

	// Out-of-week tasks are dropped from the board entirely.
	var total int
	for _, day := range board.Days {
		total += len(day.Tasks)
	}
	assert.Equal(t, 3, total)
}

func TestDayByName(t *testing.T) {
	anchor := date("2026-08-26") // Wednesday

	assert.Equal(t, "2026-08-24", week.DayByName("mon", anchor).Format(week.DateLayout))
	assert.Equal(t, "2026-08-28", week.DayByName("friday", anchor).Format(week.DateLayout))
	assert.Equal(t, "2026-08-30", week.DayByName("sun", anchor).Format(week.DateLayout))
	assert.True(t, week.DayByName("someday", anchor).IsZero())
}
