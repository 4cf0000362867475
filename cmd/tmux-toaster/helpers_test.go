package main

import (
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/tmux-toaster/internal/config"
	"github.com/cristianoliveira/tmux-toaster/internal/history"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	"github.com/stretchr/testify/mock"
)

// setupConfig points the configuration at a temporary home and loads it.
func setupConfig(t *testing.T, env ...string) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	for i := 0; i+1 < len(env); i += 2 {
		t.Setenv(env[i], env[i+1])
	}
	config.Load()
	return tmp
}

func noHistory() (historyStore, error) { return nil, nil }

// MockHistoryStore is a mock implementation of historyStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Record(item *toast.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockHistoryStore) List(limit int) ([]history.Entry, error) {
	args := m.Called(limit)
	entries, _ := args.Get(0).([]history.Entry)
	return entries, args.Error(1)
}

func (m *MockHistoryStore) ListSession(session string, limit int) ([]history.Entry, error) {
	args := m.Called(session, limit)
	entries, _ := args.Get(0).([]history.Entry)
	return entries, args.Error(1)
}

func (m *MockHistoryStore) Prune(keep int) (int64, error) {
	args := m.Called(keep)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func openerFor(store historyStore) historyOpener {
	return func() (historyStore, error) { return store, nil }
}
