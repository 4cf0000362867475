package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives auto-hide. It carries the time the tick fired.
type tickMsg time.Time

// clearStatusMsg clears the status message set with the same sequence number.
type clearStatusMsg struct {
	seq int
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
