package ui

import (
	"github.com/charmbracelet/lipgloss"

	"flowdo/internal/todo"
)

// Theme preference is persisted under its own key, independent of the
// task snapshot.

func loadTheme(store todo.Gateway) string {
	data, ok, err := store.Get(todo.ThemeKey)
	if err != nil || !ok {
		return "dark"
	}
	if string(data) == "light" {
		return "light"
	}
	return "dark"
}

func saveTheme(store todo.Gateway, theme string) {
	// Cosmetic preference; a failed write is not worth surfacing.
	_ = store.Set(todo.ThemeKey, []byte(theme))
}

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	sidebar    lipgloss.Style
	sideActive lipgloss.Style
	sideItem   lipgloss.Style
	done       lipgloss.Style
	overdue    lipgloss.Style
	dueToday   lipgloss.Style
	badge      lipgloss.Style
	listTag    lipgloss.Style
	banner     lipgloss.Style
	bannerHot  lipgloss.Style
	status     lipgloss.Style
	help       lipgloss.Style
}

func newStyles(theme string) styles {
	if theme == "light" {
		return styles{
			title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5b21b6")),
			header:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
			sidebar:    lipgloss.NewStyle().PaddingRight(2),
			sideActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5b21b6")),
			sideItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
			done:       lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#9ca3af")),
			overdue:    lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),
			dueToday:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706")),
			badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
			listTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")),
			banner:     lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e")).Bold(true),
			bannerHot:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
			status:     lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
			help:       lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		}
	}
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c4b5fd")),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		sidebar:    lipgloss.NewStyle().PaddingRight(2),
		sideActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c4b5fd")),
		sideItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		done:       lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#6b7280")),
		overdue:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
		dueToday:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")),
		badge:      lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
		listTag:    lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")),
		banner:     lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")).Bold(true),
		bannerHot:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true),
		status:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		help:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}
