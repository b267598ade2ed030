package todo

import "encoding/json"

// Storage keys. SnapshotKey holds the full state blob, ThemeKey the
// UI theme preference; the latter is independent of the core state.
const (
	SnapshotKey = "flow_todo_data"
	ThemeKey    = "flow_theme"
)

// snapshot mirrors the persisted JSON shape. ActiveList is nullable so
// the global view round-trips as null rather than "".
type snapshot struct {
	Tasks      []snapshotTask `json:"tasks"`
	Lists      []string       `json:"lists"`
	ActiveList *string        `json:"activeList"`
	Filter     Filter         `json:"filter"`
}

// snapshotTask carries the legacy "text" label alongside the current
// field set so old snapshots decode cleanly.
type snapshotTask struct {
	Task
	Text string `json:"text,omitempty"`
}

// DefaultState is the aggregate used on first launch, before any
// snapshot exists.
func DefaultState() *State {
	return &State{
		Lists:      []string{"Personal", "Work", "Groceries"},
		ActiveList: "Personal",
		Filter:     FilterAll,
	}
}

// EncodeState serializes the aggregate to its snapshot form.
func EncodeState(s *State) ([]byte, error) {
	snap := snapshot{
		Tasks:  make([]snapshotTask, len(s.Tasks)),
		Lists:  s.Lists,
		Filter: s.Filter,
	}
	for i, t := range s.Tasks {
		snap.Tasks[i] = snapshotTask{Task: t}
	}
	if s.ActiveList != "" {
		snap.ActiveList = &s.ActiveList
	}
	return json.Marshal(snap)
}

// DecodeState restores an aggregate from a snapshot, applying the load
// migrations: a legacy "text" label becomes "title", and absent lists,
// active list, and filter fall back to their defaults.
func DecodeState(data []byte) (*State, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	s := &State{
		Tasks:      make([]Task, 0, len(snap.Tasks)),
		Lists:      snap.Lists,
		ActiveList: "Personal",
		Filter:     snap.Filter,
	}
	for _, st := range snap.Tasks {
		t := st.Task
		if t.Title == "" && st.Text != "" {
			t.Title = st.Text
		}
		if t.Subtasks == nil {
			t.Subtasks = []Subtask{}
		}
		s.Tasks = append(s.Tasks, t)
	}
	// Only an absent or null lists field gets the defaults; a snapshot
	// where the user deleted every list stays empty.
	if snap.Lists == nil {
		s.Lists = []string{"Personal", "Work"}
	}
	if snap.ActiveList != nil && *snap.ActiveList != "" {
		s.ActiveList = *snap.ActiveList
	}
	if s.Filter == "" {
		s.Filter = FilterAll
	}
	return s, nil
}
