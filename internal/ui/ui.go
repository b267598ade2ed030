package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowdo/internal/config"
	"flowdo/internal/notify"
	"flowdo/internal/reminder"
	"flowdo/internal/todo"
)

const bannerTTL = 10 * time.Second

type mode int

const (
	modeList mode = iota
	modeAddTitle
	modeAddDue
	modeSubtask
	modeNewList
)

// row is one rendered line of the task pane: a task or one of its
// subtasks, flattened so the cursor can address either.
type row struct {
	id        int64
	title     string
	completed bool
	sub       bool
	list      string
	status    todo.DueStatus
	label     string
}

type banner struct {
	seq    int
	task   todo.Task
	status todo.DueStatus
}

type (
	scanMsg         struct{}
	bannerExpireMsg struct{ seq int }
)

type Model struct {
	app       *todo.App
	cfg       config.Config
	store     todo.Gateway
	evaluator *reminder.Evaluator
	queue     *notify.Queue
	log       *slog.Logger

	rows   []row
	cursor int
	mode   mode
	input  textinput.Model
	status string

	pendingTitle  string
	pendingParent int64
	confirmDel    bool
	pendingDel    *row
	pendingList   string

	banners   []banner
	bannerSeq int

	theme  string
	styles styles
	width  int
}

func Run(app *todo.App, cfg config.Config, store todo.Gateway, ev *reminder.Evaluator, queue *notify.Queue, log *slog.Logger) error {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 256
	ti.Width = 40

	theme := loadTheme(store)
	m := Model{
		app:       app,
		cfg:       cfg,
		store:     store,
		evaluator: ev,
		queue:     queue,
		log:       log,
		input:     ti,
		mode:      modeList,
		status:    "Press 'a' to add, space to toggle, 'd' to delete.",
		theme:     theme,
		styles:    newStyles(theme),
	}
	m.rows = m.buildRows()
	log.Info("ui started", "theme", theme, "tasks", len(app.State().Tasks))

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	// First reminder scan happens immediately; the hourly cadence is
	// scheduled from each scan's handler.
	return func() tea.Msg { return scanMsg{} }
}

func (m Model) scanInterval() time.Duration {
	return time.Duration(m.cfg.ReminderIntervalMins) * time.Minute
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanMsg:
		return m.runScan()
	case bannerExpireMsg:
		for i, b := range m.banners {
			if b.seq == msg.seq {
				m.banners = append(m.banners[:i], m.banners[i+1:]...)
				break
			}
		}
		return m, nil
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode != modeList {
			return m.updateInputMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = inputWidth(msg.Width)
	}
	return m, nil
}

func (m Model) runScan() (tea.Model, tea.Cmd) {
	m.evaluator.Scan(time.Now())

	cmds := []tea.Cmd{tea.Tick(m.scanInterval(), func(time.Time) tea.Msg { return scanMsg{} })}
	drained := m.queue.Drain()
	for _, r := range drained {
		m.bannerSeq++
		b := banner{seq: m.bannerSeq, task: r.Task, status: r.Status}
		m.banners = append(m.banners, b)
		seq := b.seq
		cmds = append(cmds, tea.Tick(bannerTTL, func(time.Time) tea.Msg { return bannerExpireMsg{seq: seq} }))
	}
	if len(drained) > 0 {
		m.log.Info("in-app reminder banners", "count", len(drained))
	}
	m.rows = m.buildRows()
	return m, tea.Batch(cmds...)
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.rows) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.rows))
		}
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.rows))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAddTitle
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add mode: type a title and press Enter"
	case m.cfg.Keys.Toggle:
		if len(m.rows) == 0 {
			return m, nil
		}
		if err := m.app.Toggle(m.rows[m.cursor].id); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "Toggled"
		}
		m.rows = m.buildRows()
		m.cursor = clampCursor(m.cursor, len(m.rows))
	case m.cfg.Keys.Delete:
		if len(m.rows) == 0 {
			return m, nil
		}
		r := m.rows[m.cursor]
		m.confirmDel = true
		m.pendingDel = &r
		m.status = "Delete \"" + r.title + "\"? y/n"
	case m.cfg.Keys.Subtask:
		if len(m.rows) == 0 {
			return m, nil
		}
		r := m.rows[m.cursor]
		if r.sub {
			m.status = "Subtasks cannot be nested further"
			return m, nil
		}
		m.pendingParent = r.id
		m.mode = modeSubtask
		m.input.Placeholder = "Subtask title"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Add a subtask to \"" + r.title + "\""
	case m.cfg.Keys.NewList:
		m.mode = modeNewList
		m.input.Placeholder = "List name"
		m.input.SetValue("")
		m.input.Focus()
		m.status = "New list: type a name and press Enter"
	case m.cfg.Keys.DeleteList:
		name := m.app.State().ActiveList
		if name == "" {
			m.status = "Select a list first"
			return m, nil
		}
		m.confirmDel = true
		m.pendingList = name
		m.status = "Delete list \"" + name + "\" and all its tasks? y/n"
	case m.cfg.Keys.NextList, "right":
		m.cycleView(1)
	case m.cfg.Keys.PrevList, "left":
		m.cycleView(-1)
	case m.cfg.Keys.CycleFilter:
		m.cycleFilter()
	case m.cfg.Keys.Theme:
		if m.theme == "dark" {
			m.theme = "light"
		} else {
			m.theme = "dark"
		}
		m.styles = newStyles(m.theme)
		saveTheme(m.store, m.theme)
		m.status = "Theme: " + m.theme
	}
	return m, nil
}

// cycleView steps through the global view followed by each list.
func (m *Model) cycleView(dir int) {
	state := m.app.State()
	views := append([]string{""}, state.Lists...)
	cur := 0
	for i, v := range views {
		if v == state.ActiveList {
			cur = i
			break
		}
	}
	next := wrapIndex(cur+dir, len(views))
	var err error
	if views[next] == "" {
		err = m.app.SetGlobalFilter(todo.FilterAll)
	} else {
		err = m.app.SwitchList(views[next])
	}
	if err != nil {
		m.status = "save failed: " + err.Error()
	} else {
		m.status = "Viewing " + viewTitle(m.app.State())
	}
	m.rows = m.buildRows()
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

// cycleFilter steps the global status filter: all, active, completed.
func (m *Model) cycleFilter() {
	var next todo.Filter
	switch m.app.State().Filter {
	case todo.FilterAll:
		next = todo.FilterActive
	case todo.FilterActive:
		next = todo.FilterCompleted
	default:
		next = todo.FilterAll
	}
	if err := m.app.SetGlobalFilter(next); err != nil {
		m.status = "save failed: " + err.Error()
	} else {
		m.status = "Viewing " + viewTitle(m.app.State())
	}
	m.rows = m.buildRows()
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

func (m Model) updateInputMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		return m.confirmInput()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) confirmInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	switch m.mode {
	case modeAddTitle:
		if strings.TrimSpace(value) == "" {
			m.status = "Title cannot be empty"
			return m, nil
		}
		m.pendingTitle = value
		m.mode = modeAddDue
		m.input.SetValue("")
		m.input.Placeholder = "Due date YYYY-MM-DD (optional)"
		m.status = "Due date, or Enter to skip"
		return m, nil
	case modeAddDue:
		if err := m.app.AddTask(m.pendingTitle, value); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "Added task"
		m.cursor = 0
	case modeSubtask:
		if err := m.app.AddSubtask(m.pendingParent, value); err != nil {
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.status = "Added subtask"
	case modeNewList:
		switch err := m.app.CreateList(value); err {
		case nil:
			m.status = "Viewing " + viewTitle(m.app.State())
			m.cursor = 0
		case todo.ErrListExists:
			m.status = "List already exists"
			return m, nil
		default:
			m.status = "save failed: " + err.Error()
			return m, nil
		}
	}
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.rows = m.buildRows()
	m.cursor = clampCursor(m.cursor, len(m.rows))
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		m.pendingList = ""
		return m, nil
	case "y", "Y":
		var err error
		switch {
		case m.pendingList != "":
			err = m.app.DeleteList(m.pendingList)
			m.status = "Deleted list"
		case m.pendingDel != nil:
			err = m.app.Delete(m.pendingDel.id)
			m.status = "Deleted task"
		default:
			m.status = "Nothing to delete"
		}
		if err != nil {
			m.status = "save failed: " + err.Error()
		}
		m.confirmDel = false
		m.pendingDel = nil
		m.pendingList = ""
		m.rows = m.buildRows()
		m.cursor = clampCursor(m.cursor, len(m.rows))
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) buildRows() []row {
	today := todo.Midnight(time.Now())
	var rows []row
	for _, t := range m.app.State().Visible() {
		status := todo.Classify(t, today)
		rows = append(rows, row{
			id:        t.ID,
			title:     t.Title,
			completed: t.Completed,
			list:      t.List,
			status:    status,
			label:     todo.DueLabel(t, status),
		})
		for _, s := range t.Subtasks {
			rows = append(rows, row{
				id:        s.ID,
				title:     s.Title,
				completed: s.Completed,
				sub:       true,
			})
		}
	}
	return rows
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

// inputWidth leaves room for the prompt but never collapses the field
// on narrow terminals.
func inputWidth(termWidth int) int {
	w := termWidth - 10
	if w < 10 {
		return 10
	}
	return w
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
