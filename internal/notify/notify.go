// Package notify delivers reminder events, either through system
// notifications or an in-app banner queue.
package notify

import (
	"strings"

	"github.com/gen2brain/beeep"

	"flowdo/internal/todo"
)

// Notifier is the capability the reminder path consumes: best-effort
// permission, a granted check, and message display.
type Notifier interface {
	RequestPermission() error
	Granted() bool
	Show(title, body string) error
}

// Desktop sends system notifications. There is no OS-level permission
// dance on the desktop, so RequestPermission simply opts the notifier in.
type Desktop struct {
	granted bool
}

func NewDesktop() *Desktop {
	beeep.AppName = "flowdo"
	return &Desktop{}
}

func (d *Desktop) RequestPermission() error {
	d.granted = true
	return nil
}

func (d *Desktop) Granted() bool { return d.granted }

func (d *Desktop) Show(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Reminder is one pending in-app banner.
type Reminder struct {
	Task   todo.Task
	Status todo.DueStatus
}

// Queue is the fallback delivery path: it collects reminders for the UI
// to drain into banners. Everything runs on the UI's event loop, so no
// locking is needed.
type Queue struct {
	pending []Reminder
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Push(t todo.Task, status todo.DueStatus) {
	q.pending = append(q.pending, Reminder{Task: t, Status: status})
}

// Drain returns and clears the pending reminders.
func (q *Queue) Drain() []Reminder {
	out := q.pending
	q.pending = nil
	return out
}

// Router sends each reminder to the system notifier when granted, and
// falls back to the in-app queue otherwise (or when the system path
// fails).
type Router struct {
	System   Notifier
	Fallback *Queue
}

func (r *Router) Notify(t todo.Task, status todo.DueStatus) {
	if r.System != nil && r.System.Granted() {
		if err := r.System.Show(Headline(status), t.Title); err == nil {
			return
		}
	}
	r.Fallback.Push(t, status)
}

// Headline renders the notification title for a reminder status.
func Headline(status todo.DueStatus) string {
	return "Task " + strings.ToUpper(status.String()) + "!"
}
