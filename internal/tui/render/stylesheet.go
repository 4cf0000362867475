package render

import (
	"github.com/cristianoliveira/tmux-toaster/internal/style"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

// Palette holds the colors a toast box is drawn with.
type Palette struct {
	Foreground style.Color
	Background style.Color
}

// StyleSheet receives the style rules of custom variants and resolves the
// terminal colors of any variant.
type StyleSheet struct {
	sheet      *style.Sheet
	injections int
}

// NewStyleSheet returns an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{sheet: style.NewSheet()}
}

// EnsureInjected stores r unless a rule with the same name exists.
func (s *StyleSheet) EnsureInjected(r style.Resource) bool {
	if !s.sheet.EnsureInjected(r) {
		return false
	}
	s.injections++
	return true
}

// Injections returns how many rules were stored.
func (s *StyleSheet) Injections() int { return s.injections }

// Rules returns the stored rules in injection order.
func (s *StyleSheet) Rules() []style.Resource { return s.sheet.Resources() }

// Rule returns the rule stored under name.
func (s *StyleSheet) Rule(name string) (style.Resource, bool) { return s.sheet.Lookup(name) }

// Resolve returns the palette of t. nil resolves to the default variant.
func (s *StyleSheet) Resolve(t toast.Type) Palette {
	if t == nil {
		t = toast.TypeDefault
	}
	return Palette{Foreground: t.Color(), Background: t.BackgroundColor()}
}

// ResolveProgressBar returns the bar colors of p. nil resolves to the
// default variant.
func (s *StyleSheet) ResolveProgressBar(p toast.ProgressBarType) []style.Color {
	if p == nil {
		p = toast.ProgressBarDefault
	}
	return p.Colors()
}
