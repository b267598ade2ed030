package todo

import "time"

// Filter narrows a view by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Subtask is a single-level child of a Task. It has no due date and
// cannot own children of its own.
type Subtask struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is one to-do entry. DueDate, when set, is a calendar date in
// YYYY-MM-DD form; the time of day never participates in comparisons.
// Reminded is sticky: once a reminder fires it stays true.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	List      string    `json:"list"`
	DueDate   *string   `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
	Subtasks  []Subtask `json:"subtasks"`
	Reminded  bool      `json:"reminded"`
}

// State is the root aggregate. ActiveList empty means the global view,
// scoped only by Filter. Tasks are newest-first by insertion.
type State struct {
	Tasks      []Task
	Lists      []string
	ActiveList string
	Filter     Filter
}
