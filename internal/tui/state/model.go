// Package state provides the bubbletea model of the interactive toast demo.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tmux-toaster/internal/logging"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
)

const (
	headerFooterLines     = 4
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	defaultTickInterval   = 100 * time.Millisecond
	statusClearDuration   = 3 * time.Second
)

// Model represents the demo model for bubbletea. The Toaster and the
// Presenter are only touched from Update, which bubbletea runs on a single
// goroutine.
type Model struct {
	uiState   *UIState
	toaster   *toast.Toaster
	presenter *render.Presenter
	clock     toast.Clock
	keys      KeyMap
	tick      time.Duration
	logger    logging.Logger
	counter   int
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used to expire toasts.
func WithClock(c toast.Clock) Option {
	return func(m *Model) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithTickInterval sets how often expired toasts are closed.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.tick = d
		}
	}
}

// WithKeyMap replaces the key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// NewModel creates the demo model. The presenter must be the one the
// Toaster was created with.
func NewModel(t *toast.Toaster, p *render.Presenter, opts ...Option) *Model {
	if t == nil {
		panic("state.NewModel: toaster dependency cannot be nil")
	}
	if p == nil {
		panic("state.NewModel: presenter dependency cannot be nil")
	}
	m := &Model{
		uiState:   NewUIState(),
		toaster:   t,
		presenter: p,
		clock:     toast.SystemClock{},
		keys:      DefaultKeyMap(),
		tick:      defaultTickInterval,
		logger:    logging.With("component", "tui"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init starts the auto-hide ticker.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if n := m.presenter.CloseExpired(m.clock.Now()); n > 0 {
			m.logger.Debug("auto-hide closed toasts", "count", n)
		}
		return m, tickCmd(m.tick)
	case clearStatusMsg:
		m.uiState.ClearStatus(msg.seq)
		return m, nil
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.uiState.UpdateViewportSize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// Toaster returns the controller driven by the model.
func (m *Model) Toaster() *toast.Toaster { return m.toaster }

// Status returns the current status message.
func (m *Model) Status() string { return m.uiState.Status() }
