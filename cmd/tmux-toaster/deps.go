package main

import (
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/cristianoliveira/tmux-toaster/internal/history"
	"github.com/cristianoliveira/tmux-toaster/internal/hooks"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
)

// historyStore is the part of the SQLite archive the commands use.
type historyStore interface {
	toast.HistoryRecorder
	List(limit int) ([]history.Entry, error)
	ListSession(session string, limit int) ([]history.Entry, error)
	Prune(keep int) (int64, error)
	Close() error
}

// historyOpener returns the configured archive, or nil when archiving is off.
type historyOpener func() (historyStore, error)

// openConfiguredHistory opens the database named by history_db. An empty
// value disables archiving.
func openConfiguredHistory() (historyStore, error) {
	path := strings.TrimSpace(config.Get("history_db", ""))
	if path == "" {
		return nil, nil
	}
	store, err := history.Open(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// newToaster wires a Toaster to p using the loaded configuration. Custom types
// are injected into the presenter's style sheet.
func newToaster(p *render.Presenter, recorder toast.HistoryRecorder, extra ...toast.Option) *toast.Toaster {
	opts := []toast.Option{toast.WithRegistry(toast.NewRegistry(p.StyleSheet()))}
	opts = append(opts, toast.OptionsFromConfig()...)
	if recorder != nil {
		opts = append(opts, toast.WithRecorder(recorder))
	}
	opts = append(opts, extra...)
	return toast.New(p, opts...)
}

// lifecycleRecorder combines the archive, when there is one, with the hook
// runner. Callers wait on the runner before exiting so async hooks finish.
func lifecycleRecorder(store historyStore) (toast.HistoryRecorder, *hooks.Runner) {
	runner := hooks.NewRunner(hooks.FromGlobalConfig())
	recorders := toast.Recorders{}
	if store != nil {
		recorders = append(recorders, store)
	}
	recorders = append(recorders, hooks.NewRecorder(runner))
	return recorders, runner
}
