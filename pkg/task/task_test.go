package task

import (
	"testing"
	"time"

	"github.com/Velocidex/ordereddict"
)

func Test_Parse_01(t *testing.T) {
	dict := ordereddict.NewDict().
		Set("Title", "Write report").
		Set("Status", "In Progress").
		Set("Deadline", "2026-09-01")
	//
	parsed, err := Parse(dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if parsed.Title != "Write report" {
		t.Errorf("expected title 'Write report', got %q", parsed.Title)
	}

	if parsed.Status != StatusInProgress {
		t.Errorf("expected in-progress, got %s", parsed.Status)
	}

	if !parsed.HasDeadline || parsed.Deadline.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("expected deadline 2026-09-01, got %v", parsed.Deadline)
	}

	if parsed.Extras.Len() != 0 {
		t.Errorf("expected no extras, got %v", parsed.Extras.Keys())
	}
}

// Unrecognized keys land in the extras bag, in column order.
func Test_Parse_02(t *testing.T) {
	dict := ordereddict.NewDict().
		Set("Title", "T1").
		Set("Assignee", "sam").
		Set("Sprint", "12")
	//
	parsed, err := Parse(dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	keys := parsed.Extras.Keys()
	if len(keys) != 2 || keys[0] != "Assignee" || keys[1] != "Sprint" {
		t.Errorf("expected extras [Assignee Sprint], got %v", keys)
	}
	//
	if assignee, _ := parsed.Extras.GetString("Assignee"); assignee != "sam" {
		t.Errorf("expected assignee sam, got %q", assignee)
	}
}

func Test_Parse_03(t *testing.T) {
	// Keys match case-insensitively; unknown status text is data, not an
	// error.
	dict := ordereddict.NewDict().
		Set("title", "T1").
		Set("STATUS", "whatever")
	//
	parsed, err := Parse(dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Status != StatusUnknown {
		t.Errorf("expected unknown status, got %s", parsed.Status)
	}
}

func Test_Parse_04(t *testing.T) {
	// Missing title is a data error.
	if _, err := Parse(ordereddict.NewDict().Set("Status", "todo")); err == nil {
		t.Errorf("expected error for missing title")
	}
	// So is a malformed deadline.
	bad := ordereddict.NewDict().Set("Title", "T1").Set("Deadline", "next tuesday")
	if _, err := Parse(bad); err == nil {
		t.Errorf("expected error for malformed deadline")
	}
	// A blank deadline cell is fine.
	blank := ordereddict.NewDict().Set("Title", "T1").Set("Deadline", "")
	if parsed, err := Parse(blank); err != nil || parsed.HasDeadline {
		t.Errorf("expected no deadline, got %v (%v)", parsed.Deadline, err)
	}
}

func Test_ParseAll_01(t *testing.T) {
	dicts := []*ordereddict.Dict{
		ordereddict.NewDict().Set("Title", "T1"),
		ordereddict.NewDict().Set("Status", "todo"),
	}
	//
	if _, err := ParseAll(dicts); err == nil {
		t.Errorf("expected error naming the failing record")
	}
}

func Test_Status_01(t *testing.T) {
	cases := map[string]Status{
		"todo":        StatusTodo,
		"TODO":        StatusTodo,
		"in progress": StatusInProgress,
		"WIP":         StatusInProgress,
		"Done":        StatusDone,
		"completed":   StatusDone,
		"Blocked":     StatusBlocked,
		"on hold":     StatusBlocked,
		"???":         StatusUnknown,
		"":            StatusUnknown,
	}
	//
	for text, expected := range cases {
		if actual := ParseStatus(text); actual != expected {
			t.Errorf("ParseStatus(%q): expected %s, got %s", text, expected, actual)
		}
	}
}

func Test_Overdue_01(t *testing.T) {
	now := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)
	//
	overdue := Task{Title: "T", Status: StatusTodo, Deadline: past, HasDeadline: true}
	if !overdue.Overdue(now) {
		t.Errorf("expected overdue")
	}
	//
	done := Task{Title: "T", Status: StatusDone, Deadline: past, HasDeadline: true}
	if done.Overdue(now) {
		t.Errorf("done tasks are never overdue")
	}
	//
	upcoming := Task{Title: "T", Status: StatusTodo, Deadline: future, HasDeadline: true}
	if upcoming.Overdue(now) {
		t.Errorf("future deadline is not overdue")
	}
	//
	undated := Task{Title: "T", Status: StatusTodo}
	if undated.Overdue(now) {
		t.Errorf("tasks without deadline are never overdue")
	}
}
