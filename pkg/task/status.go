package task

import (
	"strings"

	"github.com/Dimitry-bit/quest/pkg/util/termio"
)

// Status is the closed set of task states the board understands.  Anything
// a spreadsheet cell says outside this set parses as StatusUnknown rather
// than failing, since status text is data, not a contract.
type Status int

const (
	// StatusUnknown is the fall-back for unrecognized status text.
	StatusUnknown Status = iota
	// StatusTodo marks a task not yet started.
	StatusTodo
	// StatusInProgress marks a task being worked on.
	StatusInProgress
	// StatusDone marks a completed task.
	StatusDone
	// StatusBlocked marks a task waiting on something external.
	StatusBlocked
)

// ParseStatus maps status text to a Status, case-insensitively.  Common
// spreadsheet spellings ("in progress", "in-progress", "wip") are accepted.
func ParseStatus(text string) Status {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "todo", "to do", "open":
		return StatusTodo
	case "in progress", "in-progress", "inprogress", "wip", "doing":
		return StatusInProgress
	case "done", "closed", "complete", "completed":
		return StatusDone
	case "blocked", "waiting", "on hold":
		return StatusBlocked
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Colour returns the terminal colour used when rendering this status.
func (s Status) Colour() uint {
	switch s {
	case StatusTodo:
		return termio.TermCyan
	case StatusInProgress:
		return termio.TermYellow
	case StatusDone:
		return termio.TermGreen
	case StatusBlocked:
		return termio.TermRed
	default:
		return termio.TermWhite
	}
}

// Icon returns the single-character marker used when rendering this status.
func (s Status) Icon() string {
	switch s {
	case StatusTodo:
		return "○"
	case StatusInProgress:
		return "◐"
	case StatusDone:
		return "●"
	case StatusBlocked:
		return "✗"
	default:
		return "?"
	}
}

// AllStatuses lists every status in board display order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusBlocked, StatusDone, StatusUnknown}
}
