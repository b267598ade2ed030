// Package reminder scans tasks for due and overdue conditions and fires
// each reminder at most once per unresolved condition.
package reminder

import (
	"log/slog"
	"time"

	"flowdo/internal/todo"
)

// NotifyFunc delivers one reminder to the user. The evaluator does not
// care whether it ends up as a system notification or an in-app banner.
type NotifyFunc func(t todo.Task, status todo.DueStatus)

// Event records one fired reminder.
type Event struct {
	Task   todo.Task
	Status todo.DueStatus
}

type Evaluator struct {
	app    *todo.App
	notify NotifyFunc
	log    *slog.Logger
}

func New(app *todo.App, notify NotifyFunc, log *slog.Logger) *Evaluator {
	return &Evaluator{app: app, notify: notify, log: log}
}

// Scan classifies every top-level task with a due date against now's
// calendar day. Tasks due today or earlier that are neither completed
// nor already reminded fire one event each; the Reminded flag is set and
// the aggregate persisted once if anything fired. The flag is sticky and
// never reset here.
func (e *Evaluator) Scan(now time.Time) []Event {
	today := todo.Midnight(now)
	state := e.app.State()

	var fired []Event
	for i := range state.Tasks {
		t := &state.Tasks[i]
		if t.Completed || t.DueDate == nil || t.Reminded {
			continue
		}
		status := todo.Classify(t, today)
		if status != todo.DueToday && status != todo.DueOverdue {
			continue
		}
		e.notify(*t, status)
		t.Reminded = true
		fired = append(fired, Event{Task: *t, Status: status})
	}

	if len(fired) > 0 {
		if err := e.app.Save(); err != nil {
			e.log.Warn("persist after reminder scan", "err", err)
		}
		e.log.Info("reminders fired", "count", len(fired))
	}
	return fired
}
