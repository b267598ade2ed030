package todo

import "time"

// DueStatus classifies a task's due date against "today" (date only).
type DueStatus int

const (
	DueNone DueStatus = iota
	DueUpcoming
	DueToday
	DueOverdue
	// DueCompleted applies to any completed task with a due date,
	// regardless of how the date compares to today.
	DueCompleted
)

func (s DueStatus) String() string {
	switch s {
	case DueUpcoming:
		return "upcoming"
	case DueToday:
		return "due today"
	case DueOverdue:
		return "overdue"
	case DueCompleted:
		return "completed"
	default:
		return "none"
	}
}

const dueDateLayout = "2006-01-02"

// ParseDueDate validates a calendar date in YYYY-MM-DD form.
func ParseDueDate(v string) (time.Time, error) {
	return time.Parse(dueDateLayout, v)
}

// Midnight truncates a moment to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Visible derives the displayed subset: list scope first, then status
// filter. The result is a stable sub-sequence of insertion order.
func (s *State) Visible() []*Task {
	var out []*Task
	for i := range s.Tasks {
		t := &s.Tasks[i]
		if s.ActiveList != "" && t.List != s.ActiveList {
			continue
		}
		switch s.Filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Classify maps a task's due date to its display status. The comparison
// is date-only; today must already be truncated to midnight. The stored
// date is interpreted in today's zone so the calendar-day comparison
// holds everywhere, not just in UTC. A malformed date classifies as
// DueNone.
func Classify(t *Task, today time.Time) DueStatus {
	if t.DueDate == nil {
		return DueNone
	}
	due, err := time.ParseInLocation(dueDateLayout, *t.DueDate, today.Location())
	if err != nil {
		return DueNone
	}
	if t.Completed {
		return DueCompleted
	}
	due = Midnight(due)
	switch {
	case due.Equal(today):
		return DueToday
	case due.Before(today):
		return DueOverdue
	default:
		return DueUpcoming
	}
}

// DueLabel renders the badge text for a classified task.
func DueLabel(t *Task, status DueStatus) string {
	switch status {
	case DueToday:
		return "Due: Today"
	case DueOverdue:
		return "Overdue: " + shortDate(*t.DueDate)
	case DueUpcoming, DueCompleted:
		return "Due: " + shortDate(*t.DueDate)
	default:
		return ""
	}
}

func shortDate(v string) string {
	d, err := ParseDueDate(v)
	if err != nil {
		return v
	}
	return d.Format("Jan 2")
}
