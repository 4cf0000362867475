package toast

import (
	"errors"
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

// ErrMissingColor is returned when a custom variant is built without a color.
var ErrMissingColor = errors.New("color is required")

const (
	typeResourcePrefix        = "toast-type-"
	progressBarResourcePrefix = "toast-progress-bar-"
)

var (
	typeRuleTemplate = style.MustTemplate(
		".toast-container .toast.toast-{{name}}{background-color:{{background-color}}}" +
			".toast-container .toast.toast-{{name}} .toast-title," +
			".toast-container .toast.toast-{{name}} .toast-text{color:{{color}}}")
	progressBarRuleTemplate = style.MustTemplate(
		".toast-container .toast-progress-bar.toast-progress-bar-{{name}}{background:{{background}}}")
)

// Registry keeps the custom toast and progress bar variants and injects the
// style of each one exactly once.
type Registry struct {
	injector     style.Injector
	types        map[string]*CustomType
	progressBars map[string]*CustomProgressBarType
}

// NewRegistry creates a registry. A nil injector uses a fresh style.Sheet.
func NewRegistry(injector style.Injector) *Registry {
	if injector == nil {
		injector = style.NewSheet()
	}
	return &Registry{
		injector:     injector,
		types:        make(map[string]*CustomType),
		progressBars: make(map[string]*CustomProgressBarType),
	}
}

// Injector returns the style injector used by the registry.
func (r *Registry) Injector() style.Injector { return r.injector }

// TypeBuilder builds a custom toast variant.
type TypeBuilder struct {
	registry        *Registry
	name            string
	color           style.Color
	backgroundColor style.Color
}

// NewTypeBuilder starts a custom variant using the default text color.
func (r *Registry) NewTypeBuilder(name string, backgroundColor style.Color) (*TypeBuilder, error) {
	return r.NewTypeBuilderWithColor(name, TypeDefault.Color(), backgroundColor)
}

// NewTypeBuilderWithColor starts a custom variant with explicit colors.
func (r *Registry) NewTypeBuilderWithColor(name string, color, backgroundColor style.Color) (*TypeBuilder, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if color.IsZero() || backgroundColor.IsZero() {
		return nil, ErrMissingColor
	}
	return &TypeBuilder{registry: r, name: name, color: color, backgroundColor: backgroundColor}, nil
}

// Build returns the variant. A name matching a built-in variant returns the
// built-in one. Otherwise the registered entry for the name is returned,
// created on first use; its style is injected only once per name.
func (b *TypeBuilder) Build() Type {
	if d := DefaultType(b.name); d.IsValid() {
		return d
	}
	r := b.registry
	t, ok := r.types[b.name]
	if !ok {
		t = &CustomType{name: b.name, color: b.color, backgroundColor: b.backgroundColor}
		r.types[b.name] = t
	}
	if !t.injected {
		r.injector.EnsureInjected(style.Resource{
			Name: typeResourcePrefix + t.name,
			Content: mustRender(typeRuleTemplate, map[string]string{
				"name":             t.name,
				"color":            t.color.CSS(),
				"background-color": t.backgroundColor.CSS(),
			}),
		})
		t.injected = true
	}
	return t
}

// ProgressBarTypeBuilder builds a custom progress bar variant.
type ProgressBarTypeBuilder struct {
	registry *Registry
	name     string
	colors   []style.Color
}

// NewProgressBarTypeBuilder starts a custom progress bar variant. One color
// gives a solid bar, more give a gradient.
func (r *Registry) NewProgressBarTypeBuilder(name string, colors ...style.Color) (*ProgressBarTypeBuilder, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, ErrMissingColor
	}
	for _, c := range colors {
		if c.IsZero() {
			return nil, ErrMissingColor
		}
	}
	cs := make([]style.Color, len(colors))
	copy(cs, colors)
	return &ProgressBarTypeBuilder{registry: r, name: name, colors: cs}, nil
}

// Build returns the progress bar variant, with the same once-per-name
// injection guarantee as TypeBuilder.Build.
func (b *ProgressBarTypeBuilder) Build() ProgressBarType {
	if d := DefaultProgressBarType(b.name); d.IsValid() {
		return d
	}
	r := b.registry
	p, ok := r.progressBars[b.name]
	if !ok {
		p = &CustomProgressBarType{name: b.name, colors: b.colors}
		r.progressBars[b.name] = p
	}
	if !p.injected {
		r.injector.EnsureInjected(style.Resource{
			Name: progressBarResourcePrefix + p.name,
			Content: mustRender(progressBarRuleTemplate, map[string]string{
				"name":       p.name,
				"background": cssBackground(p.colors),
			}),
		})
		p.injected = true
	}
	return p
}

// LookupType returns the built-in or registered variant with the given name.
func (r *Registry) LookupType(name string) (Type, bool) {
	if d := DefaultType(name); d.IsValid() {
		return d, true
	}
	t, ok := r.types[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// RemoveType forgets a custom variant. Its injected style stays in place.
func (r *Registry) RemoveType(name string) bool {
	if _, ok := r.types[name]; !ok {
		return false
	}
	delete(r.types, name)
	return true
}

// ResolveType returns t when it is built in or still registered here, and
// TypeDefault otherwise.
func (r *Registry) ResolveType(t Type) Type {
	switch v := t.(type) {
	case DefaultType:
		if v.IsValid() {
			return v
		}
	case *CustomType:
		if v != nil && r.types[v.name] == v {
			return v
		}
	}
	return TypeDefault
}

// LookupProgressBarType returns the built-in or registered progress bar
// variant with the given name.
func (r *Registry) LookupProgressBarType(name string) (ProgressBarType, bool) {
	if d := DefaultProgressBarType(name); d.IsValid() {
		return d, true
	}
	p, ok := r.progressBars[name]
	if !ok {
		return nil, false
	}
	return p, true
}

// RemoveProgressBarType forgets a custom progress bar variant.
func (r *Registry) RemoveProgressBarType(name string) bool {
	if _, ok := r.progressBars[name]; !ok {
		return false
	}
	delete(r.progressBars, name)
	return true
}

// ResolveProgressBarType returns p when it is built in or still registered
// here, and ProgressBarDefault otherwise.
func (r *Registry) ResolveProgressBarType(p ProgressBarType) ProgressBarType {
	switch v := p.(type) {
	case DefaultProgressBarType:
		if v.IsValid() {
			return v
		}
	case *CustomProgressBarType:
		if v != nil && r.progressBars[v.name] == v {
			return v
		}
	}
	return ProgressBarDefault
}

func cssBackground(colors []style.Color) string {
	if len(colors) == 1 {
		return colors[0].CSS()
	}
	stops := make([]string, len(colors))
	for i, c := range colors {
		stops[i] = c.CSS()
	}
	return "linear-gradient(to right," + strings.Join(stops, ",") + ")"
}

// mustRender panics on template errors; the variables are fixed above.
func mustRender(t *style.Template, values map[string]string) string {
	out, err := t.Render(values)
	if err != nil {
		panic(err)
	}
	return out
}
