package commands_test

import (
	"strings"
	"testing"

	"taskboard/internal/commands"
	"taskboard/internal/exitcode"
	"taskboard/internal/testutil"
)

func TestWeekCommand_Golden(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Write report", "2026-08-24")
	svc.AddTask("Dentist", "2026-08-26")
	svc.AddTask("Groceries", "")
	svc.AddDoneTask("Old report", "2026-08-25T10:00:00Z")
	svc.AddTask("Next month", "2026-09-20")

	cmd := &commands.WeekCmd{}
	cmd.SetNow(fixedNow("2026-08-26"))
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	testutil.GoldenString(t, "week", stdout)
}

func TestWeekCommand_Anchor(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Next month", "2026-09-21")

	cmd := &commands.WeekCmd{}
	cmd.SetNow(fixedNow("2026-08-26"))
	cmd.SetDate("2026-09-23")
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	// Anchored elsewhere: the task shows, no day is today.
	if !strings.Contains(stdout, "Mon 2026-09-21\n") || !strings.Contains(stdout, "[ ] Next month") {
		t.Errorf("unexpected board %q", stdout)
	}
	if strings.Contains(stdout, "[today]") {
		t.Errorf("expected no today marker, got %q", stdout)
	}
}

func TestWeekCommand_InvalidDate(t *testing.T) {
	cmd := &commands.WeekCmd{}
	cmd.SetDate("next-week")
	stdout, stderr, code := runCommand(t, cmd, testutil.NewFakeService(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: invalid date: next-week\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
