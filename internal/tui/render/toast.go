package render

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/tmux-toaster/internal/style"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

const (
	defaultToastWidth = 44
	minToastWidth     = 12
	// boxChrome is the horizontal space taken by border and padding.
	boxChrome = 4
)

var (
	shadowColor  = style.RGB(0, 0, 0)
	dashedBorder = lipgloss.Border{
		Top: "╌", Bottom: "╌", Left: "╎", Right: "╎",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}
	dottedBorder = lipgloss.Border{
		Top: "┈", Bottom: "┈", Left: "┊", Right: "┊",
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	}
)

// ToastState defines the inputs needed to render a toast box.
type ToastState struct {
	ID        int
	Title     string
	Label     []string
	Options   *toast.Options
	Colors    Palette
	BarColors []style.Color
	Remaining float64
	Width     int
}

// Toast renders a toast box: title, label lines, progress bar and actions.
func Toast(state ToastState) string {
	opts := state.Options
	if opts == nil {
		opts = toast.NewOptions()
	}
	width := state.Width
	if width < minToastWidth {
		width = minToastWidth
	}
	inner := width - boxChrome

	fg, bg := state.Colors.Foreground, state.Colors.Background
	base := lipgloss.NewStyle().Foreground(fg.Terminal()).Background(bg.Terminal())

	var lines []string
	title := state.Title
	if opts.Icon() != "" {
		title = opts.Icon() + " " + title
	}
	if title != "" {
		lines = append(lines, opts.TitleFont().Apply(base).Width(inner).Render(truncate(title, inner)))
	}
	labelStyle := opts.LabelFont().Apply(base).Width(inner)
	for _, l := range state.Label {
		lines = append(lines, labelStyle.Render(truncate(l, inner)))
	}
	if !opts.HideProgressBar() {
		lines = append(lines, ProgressBar(state.BarColors, inner, state.Remaining))
	}
	if actions := opts.Actions(); len(actions) > 0 {
		lines = append(lines, Actions(actions, inner))
	}

	box := lipgloss.NewStyle().
		Background(bg.Terminal()).
		Padding(0, 1).
		Width(width - 2).
		Border(borderFor(opts.BorderRadius()))
	if opts.HideShadow() {
		box = box.BorderForeground(bg.Terminal())
	} else {
		box = box.BorderForeground(bg.Blend(shadowColor, 0.5).Terminal())
	}
	return box.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders the remaining time of a toast as a bar of the given
// width. Two or more colors produce a gradient.
func ProgressBar(colors []style.Color, width int, remaining float64) string {
	opts := []progress.Option{progress.WithWidth(width), progress.WithoutPercentage()}
	switch len(colors) {
	case 0:
		opts = append(opts, progress.WithSolidFill(toast.ProgressBarDefault.Colors()[0].Hex()))
	case 1:
		opts = append(opts, progress.WithSolidFill(colors[0].Hex()))
	default:
		opts = append(opts, progress.WithGradient(colors[0].Hex(), colors[len(colors)-1].Hex()))
	}
	bar := progress.New(opts...)
	return bar.ViewAs(remaining)
}

// Actions renders the action buttons of a toast on one line.
func Actions(actions []*toast.ActionItem, width int) string {
	buttons := make([]string, 0, len(actions))
	for _, a := range actions {
		buttons = append(buttons, actionButton(a))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
	if lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, buttons...)
	}
	return row
}

func actionButton(a *toast.ActionItem) string {
	st := a.Style()
	s := lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	if !st.BackgroundColor.IsZero() {
		s = s.Background(st.BackgroundColor.Terminal()).Foreground(st.BackgroundColor.Contrast().Terminal())
	}
	if st.BorderStyle != toast.BorderNone && st.BorderWidth > 0 {
		s = s.Border(buttonBorder(st.BorderStyle, st.BorderRadius))
		if !st.BorderColor.IsZero() {
			s = s.BorderForeground(st.BorderColor.Terminal())
		}
	} else {
		s = s.Underline(true)
	}
	return s.Render(a.Content())
}

func borderFor(radius int) lipgloss.Border {
	if radius > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

func buttonBorder(b toast.BorderStyle, radius int) lipgloss.Border {
	switch b {
	case toast.BorderDouble:
		return lipgloss.DoubleBorder()
	case toast.BorderDashed:
		return dashedBorder
	case toast.BorderDotted:
		return dottedBorder
	}
	return borderFor(radius)
}

func joinVertical(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Right, blocks...)
}
