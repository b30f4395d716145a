// Package task converts the ordered dictionaries produced by the table
// mapper into domain objects.  This is the validation boundary: inside the
// table engine everything is a string; here the well-known keys become typed
// fields and everything else lands in an open-ended extras bag.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
)

// Recognized dictionary keys, matched case-insensitively.
const (
	KeyTitle    = "Title"
	KeyStatus   = "Status"
	KeyDeadline = "Deadline"
)

// Deadline layouts accepted from spreadsheet cells.
var deadlineLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
}

// Task is one record of the board.
type Task struct {
	Title    string
	Status   Status
	Deadline time.Time
	// HasDeadline distinguishes "no deadline given" from a zero time.
	HasDeadline bool
	// Extras holds every dictionary entry not consumed by a well-known key,
	// in original column order.
	Extras *ordereddict.Dict
}

// Parse maps a dictionary onto a Task.  A missing or blank title is a data
// error, as is an unparseable deadline; an unrecognized status is not (it
// parses as StatusUnknown).  Unrecognized keys are collected into Extras.
func Parse(dict *ordereddict.Dict) (Task, error) {
	var t Task
	//
	t.Extras = ordereddict.NewDict()
	//
	for _, key := range dict.Keys() {
		value, _ := dict.GetString(key)
		//
		switch {
		case strings.EqualFold(key, KeyTitle):
			t.Title = strings.TrimSpace(value)
		case strings.EqualFold(key, KeyStatus):
			t.Status = ParseStatus(value)
		case strings.EqualFold(key, KeyDeadline):
			if strings.TrimSpace(value) == "" {
				continue
			}
			//
			deadline, err := parseDeadline(value)
			if err != nil {
				return Task{}, err
			}
			//
			t.Deadline = deadline
			t.HasDeadline = true
		default:
			t.Extras.Set(key, value)
		}
	}
	//
	if t.Title == "" {
		return Task{}, fmt.Errorf("task has no title: %v", dict.Keys())
	}
	//
	return t, nil
}

// ParseAll maps a batch of dictionaries onto tasks, reporting the first
// failure with its record position.
func ParseAll(dicts []*ordereddict.Dict) ([]Task, error) {
	tasks := make([]Task, len(dicts))
	//
	for i, dict := range dicts {
		t, err := Parse(dict)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		//
		tasks[i] = t
	}
	//
	return tasks, nil
}

// Overdue reports whether the task has a deadline in the past and is not
// done.
func (t Task) Overdue(now time.Time) bool {
	return t.HasDeadline && t.Status != StatusDone && t.Deadline.Before(now)
}

func parseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	//
	for _, layout := range deadlineLayouts {
		if deadline, err := time.Parse(layout, value); err == nil {
			return deadline, nil
		}
	}
	//
	return time.Time{}, fmt.Errorf("invalid deadline: %q", value)
}
