package todo

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Gateway is the persistence boundary: a durable key/value store for
// serialized blobs.
type Gateway interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// App owns the state aggregate and writes it through the gateway after
// every mutation. All operations are total over the state: malformed
// input is a silent no-op, and only persistence can fail. A failed write
// never touches the in-memory state.
type App struct {
	state  *State
	store  Gateway
	log    *slog.Logger
	now    func() time.Time
	lastID int64
}

// NewApp loads the persisted snapshot, or starts from the default state
// when none exists or the stored blob is unreadable.
func NewApp(store Gateway, log *slog.Logger) *App {
	a := &App{store: store, log: log, now: time.Now}

	data, ok, err := store.Get(SnapshotKey)
	if err != nil {
		a.log.Error("load snapshot", "err", err)
	}
	if err == nil && ok {
		state, derr := DecodeState(data)
		if derr != nil {
			a.log.Error("decode snapshot, starting fresh", "err", derr)
		} else {
			a.state = state
		}
	}
	if a.state == nil {
		a.state = DefaultState()
	}

	for i := range a.state.Tasks {
		t := &a.state.Tasks[i]
		if t.ID > a.lastID {
			a.lastID = t.ID
		}
		for _, sub := range t.Subtasks {
			if sub.ID > a.lastID {
				a.lastID = sub.ID
			}
		}
	}
	return a
}

// State exposes the aggregate for read-side projection. Callers that
// mutate it directly must follow up with Save.
func (a *App) State() *State { return a.state }

// Save writes the snapshot through the gateway: one retry on failure,
// then a warning. The caller keeps its in-memory mutation either way.
func (a *App) Save() error {
	data, err := EncodeState(a.state)
	if err != nil {
		a.log.Error("encode snapshot", "err", err)
		return err
	}
	if err := a.store.Set(SnapshotKey, data); err != nil {
		if retry := a.store.Set(SnapshotKey, data); retry != nil {
			a.log.Warn("snapshot write failed after retry", "err", retry)
			return retry
		}
	}
	return nil
}

// nextID derives an id from the creation time in milliseconds, forced
// strictly past the last issued id so same-millisecond creations stay
// unique.
func (a *App) nextID() int64 {
	id := a.now().UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id
	return id
}

// AddTask prepends a new task. An empty trimmed title is a no-op. The
// task lands in the active list, else the first list, else "Inbox".
func (a *App) AddTask(title, dueDate string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	var due *string
	if d := strings.TrimSpace(dueDate); d != "" {
		if _, err := ParseDueDate(d); err != nil {
			return ErrInvalidDueDate
		}
		due = &d
	}

	list := a.state.ActiveList
	if list == "" && len(a.state.Lists) > 0 {
		list = a.state.Lists[0]
	}
	if list == "" {
		list = "Inbox"
	}

	t := Task{
		ID:        a.nextID(),
		Title:     title,
		List:      list,
		DueDate:   due,
		CreatedAt: a.now(),
		Subtasks:  []Subtask{},
	}
	a.state.Tasks = slices.Insert(a.state.Tasks, 0, t)
	return a.Save()
}

// AddSubtask appends a subtask to the resolved parent. Empty titles and
// unresolved parents are no-ops; so is a parent that cannot own children.
func (a *App) AddSubtask(parentID int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	parent, ok := findNode(taskNodes(a.state.Tasks), parentID).(*Task)
	if !ok {
		return nil
	}
	parent.Subtasks = append(parent.Subtasks, Subtask{
		ID:    a.nextID(),
		Title: title,
	})
	return a.Save()
}

// Toggle flips completion on the task or subtask matching id, at any
// depth. Unknown ids are a no-op.
func (a *App) Toggle(id int64) error {
	n := findNode(taskNodes(a.state.Tasks), id)
	if n == nil {
		return nil
	}
	n.flip()
	return a.Save()
}

// Delete removes the top-level task matching id, or failing that the
// first matching subtask found in the tree. Unknown ids are a no-op.
func (a *App) Delete(id int64) error {
	before := len(a.state.Tasks)
	a.state.Tasks = slices.DeleteFunc(a.state.Tasks, func(t Task) bool {
		return t.ID == id
	})
	if len(a.state.Tasks) < before {
		return a.Save()
	}
	if removeNode(taskNodes(a.state.Tasks), id) {
		return a.Save()
	}
	return nil
}

// CreateList adds a list and switches the view to it. Duplicate names
// (case-sensitive, trimmed) are rejected; empty names are a no-op.
func (a *App) CreateList(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if slices.Contains(a.state.Lists, name) {
		return ErrListExists
	}
	a.state.Lists = append(a.state.Lists, name)
	a.state.ActiveList = name
	a.state.Filter = FilterAll
	return a.Save()
}

// DeleteList removes the list and cascades: every task assigned to it is
// deleted outright, subtasks included. If the list was the active view,
// the view resets to all tasks.
func (a *App) DeleteList(name string) error {
	if !slices.Contains(a.state.Lists, name) {
		return nil
	}
	a.state.Lists = slices.DeleteFunc(a.state.Lists, func(l string) bool {
		return l == name
	})
	a.state.Tasks = slices.DeleteFunc(a.state.Tasks, func(t Task) bool {
		return t.List == name
	})
	if a.state.ActiveList == name {
		a.state.ActiveList = ""
		a.state.Filter = FilterAll
	}
	return a.Save()
}

// SwitchList scopes the view to one list and resets the filter.
func (a *App) SwitchList(name string) error {
	a.state.ActiveList = name
	a.state.Filter = FilterAll
	return a.Save()
}

// SetGlobalFilter switches to the global view under the given filter.
func (a *App) SetGlobalFilter(f Filter) error {
	a.state.ActiveList = ""
	a.state.Filter = f
	return a.Save()
}
