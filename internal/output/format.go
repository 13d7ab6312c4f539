// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskboard/internal/service"
	"taskboard/internal/stats"
	"taskboard/internal/week"
)

const (
	// Separator is the separator line for sections.
	Separator = "------------"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [ ] {TITLE}" plus a due-date suffix when scheduled.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s%s\n", num, checkbox(task), normalizeTitle(task.Title), dueSuffix(task))
}

// FormatBoardTask formats a task line inside a board column.
func FormatBoardTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "    %s %s\n", checkbox(task), normalizeTitle(task.Title))
}

// FormatHeader formats a section header.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Separator)
}

// FormatBoard renders a weekly board. Empty day columns are printed with
// their header only, so the shape of the week stays visible. The column for
// today is marked.
func FormatBoard(w io.Writer, board week.Board, today string) {
	for _, day := range board.Days {
		title := day.Date.Format("Mon 2006-01-02")
		if day.Date.Format(week.DateLayout) == today {
			title += " [today]"
		}
		FormatHeader(w, title)
		for _, task := range day.Tasks {
			FormatBoardTask(w, task)
		}
	}

	if len(board.Undated) > 0 {
		FormatHeader(w, "Unscheduled")
		for _, task := range board.Undated {
			FormatBoardTask(w, task)
		}
	}
}

// FormatStats renders the dashboard numbers.
func FormatStats(w io.Writer, s stats.Stats) {
	fmt.Fprintf(w, "Total:        %d\n", s.Total)
	fmt.Fprintf(w, "Open:         %d\n", s.Open)
	fmt.Fprintf(w, "Completed:    %d (%.0f%%)\n", s.Completed, s.CompletionRate*100)
	fmt.Fprintf(w, "Due today:    %d\n", s.DueToday)
	fmt.Fprintf(w, "Overdue:      %d\n", s.Overdue)
	fmt.Fprintf(w, "Unscheduled:  %d\n", s.Undated)

	parts := make([]string, 0, stats.TrailingDays)
	for _, n := range s.DoneByDay {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	fmt.Fprintf(w, "Done, last %d days: %s\n", stats.TrailingDays, strings.Join(parts, " "))
}

func checkbox(task service.Task) string {
	if task.Completed {
		return "[x]"
	}
	return "[ ]"
}

func dueSuffix(task service.Task) string {
	if task.DueDate == "" {
		return ""
	}
	return "  (due " + task.DueDate + ")"
}

// normalizeTitle normalizes a task title for display.
// Empty or whitespace-only titles become "(untitled)"; newlines are replaced
// with spaces.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
