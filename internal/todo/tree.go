package todo

// node is one entry in the task tree: an id plus an optional child
// sequence. Lookup and removal are written against this interface so the
// algorithms never assume how deep the tree goes, even though subtasks
// currently cannot have children.
type node interface {
	nodeID() int64
	flip()
	children() []node
	removeChild(id int64) bool
}

func (t *Task) nodeID() int64 { return t.ID }
func (t *Task) flip()         { t.Completed = !t.Completed }

func (t *Task) children() []node {
	kids := make([]node, len(t.Subtasks))
	for i := range t.Subtasks {
		kids[i] = &t.Subtasks[i]
	}
	return kids
}

func (t *Task) removeChild(id int64) bool {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == id {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Subtask) nodeID() int64          { return s.ID }
func (s *Subtask) flip()                  { s.Completed = !s.Completed }
func (s *Subtask) children() []node       { return nil }
func (s *Subtask) removeChild(int64) bool { return false }

// findNode returns the first node matching id, descending into children.
func findNode(nodes []node, id int64) node {
	for _, n := range nodes {
		if n.nodeID() == id {
			return n
		}
		if found := findNode(n.children(), id); found != nil {
			return found
		}
	}
	return nil
}

// removeNode removes the first descendant matching id. Each node's direct
// children are tried before descending further, and the walk stops at the
// first level where a removal happens.
func removeNode(nodes []node, id int64) bool {
	for _, n := range nodes {
		if n.removeChild(id) {
			return true
		}
		if removeNode(n.children(), id) {
			return true
		}
	}
	return false
}

func taskNodes(tasks []Task) []node {
	nodes := make([]node, len(tasks))
	for i := range tasks {
		nodes[i] = &tasks[i]
	}
	return nodes
}
