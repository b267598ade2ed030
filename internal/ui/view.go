package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"flowdo/internal/config"
	"flowdo/internal/notify"
	"flowdo/internal/todo"
)

func (m Model) View() string {
	var b strings.Builder

	for _, bn := range m.banners {
		style := m.styles.banner
		icon := "🟡"
		if bn.status == todo.DueOverdue {
			style = m.styles.bannerHot
			icon = "🔴"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s %s", icon, notify.Headline(bn.status), bn.task.Title)))
		b.WriteString("\n")
	}
	if len(m.banners) > 0 {
		b.WriteString("\n")
	}

	state := m.app.State()
	b.WriteString(m.styles.title.Render(viewTitle(state)))
	b.WriteString("  ")
	b.WriteString(m.styles.header.Render(time.Now().Format("Monday, January 2")))
	b.WriteString("\n\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.sidebar.Render(m.renderSidebar()),
		m.renderTaskPane(),
	)
	b.WriteString(body)

	b.WriteString("\n")
	if m.mode != modeList {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func viewTitle(s *todo.State) string {
	if s.ActiveList != "" {
		return s.ActiveList
	}
	switch s.Filter {
	case todo.FilterActive:
		return "Active Tasks"
	case todo.FilterCompleted:
		return "Completed Tasks"
	default:
		return "All Tasks"
	}
}

func (m Model) renderSidebar() string {
	state := m.app.State()
	var b strings.Builder

	for _, f := range []todo.Filter{todo.FilterAll, todo.FilterActive, todo.FilterCompleted} {
		style := m.styles.sideItem
		marker := "  "
		if state.ActiveList == "" && state.Filter == f {
			style = m.styles.sideActive
			marker = "> "
		}
		b.WriteString(style.Render(marker + filterName(f)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, list := range state.Lists {
		style := m.styles.sideItem
		marker := "  "
		if state.ActiveList == list {
			style = m.styles.sideActive
			marker = "> "
		}
		b.WriteString(style.Render(marker + list))
		b.WriteString("\n")
	}
	return b.String()
}

func filterName(f todo.Filter) string {
	switch f {
	case todo.FilterActive:
		return "Active"
	case todo.FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func (m Model) renderTaskPane() string {
	if len(m.rows) == 0 {
		if m.app.State().ActiveList != "" {
			return "No tasks in " + m.app.State().ActiveList + ". Press 'a' to add one."
		}
		return "✨ All caught up! Enjoy your day."
	}

	globalView := m.app.State().ActiveList == ""
	var b strings.Builder
	for i, r := range m.rows {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		if r.completed {
			checkbox = "[x]"
		}

		title := r.title
		if r.completed {
			title = m.styles.done.Render(title)
		} else if r.status == todo.DueOverdue {
			title = m.styles.overdue.Render(title)
		} else if r.status == todo.DueToday {
			title = m.styles.dueToday.Render(title)
		}

		indent := ""
		if r.sub {
			indent = "    "
		}

		b.WriteString(fmt.Sprintf("%s %s%s %s", cursor, indent, checkbox, title))
		if r.label != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.badge.Render(r.label))
		}
		if globalView && !r.sub {
			b.WriteString("  ")
			b.WriteString(m.styles.listTag.Render("#" + r.list))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s subtask • %s toggle • %s delete • %s new list • %s del list • %s/%s view • %s filter • %s theme • %s quit",
		k.Up, k.Down, k.Add, k.Subtask, k.Toggle, k.Delete, k.NewList, k.DeleteList, k.PrevList, k.NextList, k.CycleFilter, k.Theme, k.Quit)
}
