package toast

import (
	"errors"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

// ErrBuilderSealed is reported by a builder used after Build.
var ErrBuilderSealed = errors.New("options builder already built")

// OptionsBuilder configures Options fluently. Build seals the builder; later
// setter calls are ignored and recorded in Err.
type OptionsBuilder struct {
	options *Options
	title   string
	label   []string
	built   bool
	err     error
}

// NewOptionsBuilder starts from the built-in defaults.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{options: NewOptions()}
}

// NewOptionsBuilderFrom starts from a clone of base.
func NewOptionsBuilderFrom(base *Options) *OptionsBuilder {
	if base == nil {
		return NewOptionsBuilder()
	}
	return &OptionsBuilder{options: base.Clone()}
}

func (b *OptionsBuilder) mutate(fn func(o *Options)) *OptionsBuilder {
	if b.built {
		b.err = ErrBuilderSealed
		return b
	}
	fn(b.options)
	return b
}

// Title sets the title used by Show.
func (b *OptionsBuilder) Title(title string) *OptionsBuilder {
	if b.built {
		b.err = ErrBuilderSealed
		return b
	}
	b.title = title
	return b
}

// Label sets the label lines used by Show.
func (b *OptionsBuilder) Label(lines ...string) *OptionsBuilder {
	if b.built {
		b.err = ErrBuilderSealed
		return b
	}
	b.label = append([]string(nil), lines...)
	return b
}

// Type sets the visual variant.
func (b *OptionsBuilder) Type(t Type) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetType(t) })
}

// ProgressBarType sets the progress bar variant.
func (b *OptionsBuilder) ProgressBarType(p ProgressBarType) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetProgressBarType(p) })
}

// Timeout sets the auto-hide delay in milliseconds.
func (b *OptionsBuilder) Timeout(ms int) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetTimeout(ms) })
}

// AutoHide toggles auto-hide.
func (b *OptionsBuilder) AutoHide(v bool) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetAutoHide(v) })
}

// HideShadow toggles the shadow.
func (b *OptionsBuilder) HideShadow(v bool) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetHideShadow(v) })
}

// HideProgressBar toggles the progress bar.
func (b *OptionsBuilder) HideProgressBar(v bool) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetHideProgressBar(v) })
}

// BorderRadius sets the border radius.
func (b *OptionsBuilder) BorderRadius(r int) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetBorderRadius(r) })
}

// Icon sets the icon.
func (b *OptionsBuilder) Icon(icon string) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetIcon(icon) })
}

// TitleFont sets the title font.
func (b *OptionsBuilder) TitleFont(f style.Font) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetTitleFont(f) })
}

// LabelFont sets the label font.
func (b *OptionsBuilder) LabelFont(f style.Font) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetLabelFont(f) })
}

// Actions appends actions.
func (b *OptionsBuilder) Actions(actions ...*ActionItem) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.AddActions(actions...) })
}

// OnClick sets the body click handler.
func (b *OptionsBuilder) OnClick(h ClickHandler) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetClickHandler(h) })
}

// OnOpen sets the open handler.
func (b *OptionsBuilder) OnOpen(h OpenHandler) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetOpenHandler(h) })
}

// OnClose sets the close handler.
func (b *OptionsBuilder) OnClose(h CloseHandler) *OptionsBuilder {
	return b.mutate(func(o *Options) { o.SetCloseHandler(h) })
}

// Build seals the builder and returns a copy of the options.
func (b *OptionsBuilder) Build() *Options {
	b.built = true
	return b.options.Clone()
}

// Show builds the options and submits them with the builder's title and label.
func (b *OptionsBuilder) Show(t *Toaster) Status {
	return t.Show(b.Build(), b.title, b.label...)
}

// Err returns ErrBuilderSealed if a setter was called after Build.
func (b *OptionsBuilder) Err() error {
	return b.err
}
