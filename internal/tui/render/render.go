// Package render draws toasts and the surrounding demo screen for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

const (
	idWidth     = 4
	statusWidth = 11
	typeWidth   = 9
	ageWidth    = 5
	// spacesBetweenColumns counts the two-space gaps between the five columns.
	spacesBetweenColumns = 8
	defaultTitleWidth    = 40
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Open        int
	MaxOpen     int
	Queued      int
	History     int
	Policy      toast.Policy
	ShowHistory bool
	Message     string
	Width       int
}

// RowState defines the inputs needed to render a history row.
type RowState struct {
	Item  *toast.Item
	Width int
	Now   time.Time
}

// Header renders the header of the history table.
func Header(width int) string {
	titleWidth := calculateTitleWidth(width)
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s",
		idWidth, "ID",
		statusWidth, "STATUS",
		typeWidth, "TYPE",
		titleWidth, "TITLE",
		ageWidth, "AGE",
	)
	return headerStyle.Render(header)
}

// Row renders a single history row.
func Row(state RowState) string {
	item := state.Item
	if item == nil {
		return ""
	}
	titleWidth := calculateTitleWidth(state.Width)
	typeName := toast.TypeDefault.Name()
	if opts := item.Options(); opts != nil && opts.Type() != nil {
		typeName = opts.Type().Name()
	}
	since, ok := item.DateTime(item.Status())
	if !ok {
		since = item.CreatedAt()
	}
	row := fmt.Sprintf("%-*d  %-*s  %-*s  %-*s  %-*s",
		idWidth, item.ID(),
		statusWidth, statusIcon(item.Status())+" "+string(item.Status()),
		typeWidth, truncate(typeName, typeWidth),
		titleWidth, truncate(item.Title(), titleWidth),
		ageWidth, calculateAge(since, state.Now),
	)
	return row
}

// Empty renders the placeholder for an empty list.
func Empty(text string) string {
	return mutedStyle.Render(text)
}

// Footer renders the status line and key help.
func Footer(state FooterState) string {
	stats := fmt.Sprintf("open %d/%d  queued %d  history %d  policy %s",
		state.Open, state.MaxOpen, state.Queued, state.History, state.Policy)
	help := []string{
		"n: new",
		"c: click",
		"a: action",
		"x: hide",
		"X: hide all",
		"p: policy",
		"+/-: max open",
	}
	if state.ShowHistory {
		help = append(help, "h: toasts")
	} else {
		help = append(help, "h: history")
	}
	help = append(help, "q: quit")

	lines := []string{headerStyle.Render(stats)}
	if state.Message != "" {
		lines = append(lines, truncate(state.Message, max(state.Width, minToastWidth)))
	}
	lines = append(lines, helpStyle.Render(strings.Join(help, "  |  ")))
	return strings.Join(lines, "\n")
}

func calculateTitleWidth(width int) int {
	if width <= 0 {
		return defaultTitleWidth
	}
	w := width - idWidth - statusWidth - typeWidth - ageWidth - spacesBetweenColumns
	if w < 10 {
		return defaultTitleWidth
	}
	return w
}

func statusIcon(s toast.Status) string {
	switch s {
	case toast.StatusOpened, toast.StatusShowing:
		return "●"
	case toast.StatusQueued:
		return "◌"
	case toast.StatusClosed:
		return "○"
	case toast.StatusDiscarded:
		return "✕"
	default:
		return "?"
	}
}

func calculateAge(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.IsZero() {
		now = time.Now()
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours()/24))
}

func truncate(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}
