package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FontStyle is the CSS font-style of a text element.
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

// Weight is the CSS font-weight of a text element.
type Weight string

const (
	WeightNormal  Weight = "normal"
	WeightBold    Weight = "bold"
	WeightLighter Weight = "lighter"
	WeightBolder  Weight = "bolder"
)

// IsBold reports whether the weight renders as bold text.
func (w Weight) IsBold() bool {
	return w == WeightBold || w == WeightBolder
}

// Font is a read-only font description.
type Font struct {
	Size       int
	Family     string
	Weight     Weight
	Style      FontStyle
	LineHeight float64
}

// DefaultFont is the font used when a toast does not set one.
var DefaultFont = Font{
	Size:       14,
	Family:     "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif",
	Weight:     WeightNormal,
	Style:      FontStyleNormal,
	LineHeight: 1.2,
}

// CSS returns the font as a CSS shorthand value.
func (f Font) CSS() string {
	var b strings.Builder
	if f.Style != "" && f.Style != FontStyleNormal {
		b.WriteString(string(f.Style))
		b.WriteByte(' ')
	}
	if f.Weight != "" && f.Weight != WeightNormal {
		b.WriteString(string(f.Weight))
		b.WriteByte(' ')
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	fmt.Fprintf(&b, "%dpx", size)
	if f.LineHeight > 0 {
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(f.LineHeight, 'f', -1, 64))
	}
	family := f.Family
	if family == "" {
		family = DefaultFont.Family
	}
	b.WriteByte(' ')
	b.WriteString(family)
	return b.String()
}

// Apply maps the terminal-renderable parts of the font onto a lipgloss style.
func (f Font) Apply(s lipgloss.Style) lipgloss.Style {
	if f.Weight.IsBold() {
		s = s.Bold(true)
	}
	if f.Weight == WeightLighter {
		s = s.Faint(true)
	}
	if f.Style == FontStyleItalic || f.Style == FontStyleOblique {
		s = s.Italic(true)
	}
	return s
}
