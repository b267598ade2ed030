package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"flowdo/internal/config"
	"flowdo/internal/kv"
	"flowdo/internal/notify"
	"flowdo/internal/reminder"
	"flowdo/internal/todo"
	"flowdo/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogPath)

	store, err := kv.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := todo.NewApp(store, logger)
	switch f := todo.Filter(cfg.DefaultFilter); f {
	case todo.FilterActive, todo.FilterCompleted:
		if app.State().ActiveList == "" {
			app.State().Filter = f
		}
	}

	desktop := notify.NewDesktop()
	if cfg.DesktopNotifications {
		if err := desktop.RequestPermission(); err != nil {
			logger.Warn("notification permission", "err", err)
		}
	}
	queue := notify.NewQueue()
	router := &notify.Router{System: desktop, Fallback: queue}
	evaluator := reminder.New(app, router.Notify, logger)

	if err := ui.Run(app, cfg, store, evaluator, queue, logger); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the configured file; the terminal belongs to the
// UI. A log file that cannot be opened silently discards.
func newLogger(path string) *slog.Logger {
	var w io.Writer = io.Discard
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		w = f
	}
	return slog.New(slog.NewTextHandler(w, nil))
}
