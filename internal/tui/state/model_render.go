package state

import (
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
)

// View renders the demo.
func (m *Model) View() string {
	now := m.clock.Now()
	var s strings.Builder

	if m.uiState.IsHistoryMode() {
		s.WriteString(render.Header(m.uiState.GetWidth()))
		s.WriteString("\n")
		m.updateViewportContent()
		s.WriteString(m.uiState.GetViewport().View())
	} else if m.presenter.OpenCount() == 0 {
		s.WriteString(render.Empty("No toasts. Press n to show one."))
	} else {
		s.WriteString(m.presenter.Render(now))
	}

	s.WriteString("\n")
	s.WriteString(render.Footer(render.FooterState{
		Open:        m.toaster.OpenCount(),
		MaxOpen:     m.toaster.MaxOpenItems(),
		Queued:      len(m.toaster.QueuedItems()),
		History:     len(m.toaster.HistoryItems()),
		Policy:      m.toaster.Policy(),
		ShowHistory: m.uiState.IsHistoryMode(),
		Message:     m.uiState.Status(),
		Width:       m.uiState.GetWidth(),
	}))
	return s.String()
}

// updateViewportContent fills the viewport with the history rows.
func (m *Model) updateViewportContent() {
	items := m.toaster.HistoryItems()
	vp := m.uiState.GetViewport()
	if len(items) == 0 {
		if m.toaster.MaxHistoryItems() == 0 {
			vp.SetContent(render.Empty("History is disabled (max_history_items = 0)."))
		} else {
			vp.SetContent(render.Empty("No history yet."))
		}
		return
	}
	now := m.clock.Now()
	rows := make([]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, render.Row(render.RowState{Item: item, Width: m.uiState.GetWidth(), Now: now}))
	}
	vp.SetContent(strings.Join(rows, "\n"))
}
