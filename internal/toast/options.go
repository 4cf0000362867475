package toast

import "github.com/cristianoliveira/tmux-toaster/internal/style"

// Options is the caller-owned configuration of a toast. The Toaster clones it
// when a toast is submitted, so later changes do not affect submitted items.
type Options struct {
	typ             Type
	progressBarType ProgressBarType
	timeout         int
	autoHide        bool
	hideShadow      bool
	hideProgressBar bool
	borderRadius    int
	icon            string
	titleFont       style.Font
	labelFont       style.Font
	actions         []*ActionItem
	onClick         ClickHandler
	onOpen          OpenHandler
	onClose         CloseHandler
}

// builtinDefaults returns the immutable defaults every Toaster starts from.
func builtinDefaults() *Options {
	return &Options{
		typ:             TypeDefault,
		progressBarType: ProgressBarDefault,
		timeout:         4000,
		autoHide:        true,
		borderRadius:    4,
		titleFont:       style.Font{Weight: style.WeightBold},
		labelFont:       style.DefaultFont,
	}
}

// NewOptions returns options initialized with the built-in defaults.
func NewOptions() *Options {
	return builtinDefaults()
}

// Type returns the visual variant.
func (o *Options) Type() Type { return o.typ }

// SetType sets the visual variant. nil restores the default variant.
func (o *Options) SetType(t Type) {
	if t == nil {
		t = TypeDefault
	}
	o.typ = t
}

// ProgressBarType returns the progress bar variant.
func (o *Options) ProgressBarType() ProgressBarType { return o.progressBarType }

// SetProgressBarType sets the progress bar variant. nil restores the default.
func (o *Options) SetProgressBarType(p ProgressBarType) {
	if p == nil {
		p = ProgressBarDefault
	}
	o.progressBarType = p
}

// Timeout returns the auto-hide delay in milliseconds.
func (o *Options) Timeout() int { return o.timeout }

// SetTimeout sets the auto-hide delay in milliseconds, clamped to zero.
func (o *Options) SetTimeout(ms int) { o.timeout = nonNegative(ms) }

// AutoHide reports whether the toast closes itself after the timeout.
func (o *Options) AutoHide() bool { return o.autoHide }

// SetAutoHide toggles auto-hide.
func (o *Options) SetAutoHide(v bool) { o.autoHide = v }

// HideShadow reports whether the shadow is suppressed.
func (o *Options) HideShadow() bool { return o.hideShadow }

// SetHideShadow toggles the shadow.
func (o *Options) SetHideShadow(v bool) { o.hideShadow = v }

// HideProgressBar reports whether the progress bar is suppressed.
func (o *Options) HideProgressBar() bool { return o.hideProgressBar }

// SetHideProgressBar toggles the progress bar.
func (o *Options) SetHideProgressBar(v bool) { o.hideProgressBar = v }

// BorderRadius returns the border radius.
func (o *Options) BorderRadius() int { return o.borderRadius }

// SetBorderRadius sets the border radius, clamped to zero.
func (o *Options) SetBorderRadius(r int) { o.borderRadius = nonNegative(r) }

// Icon returns the icon shown next to the title.
func (o *Options) Icon() string { return o.icon }

// SetIcon sets the icon shown next to the title.
func (o *Options) SetIcon(icon string) { o.icon = icon }

// TitleFont returns the font of the title.
func (o *Options) TitleFont() style.Font { return o.titleFont }

// SetTitleFont sets the font of the title.
func (o *Options) SetTitleFont(f style.Font) { o.titleFont = f }

// LabelFont returns the font of the label lines.
func (o *Options) LabelFont() style.Font { return o.labelFont }

// SetLabelFont sets the font of the label lines.
func (o *Options) SetLabelFont(f style.Font) { o.labelFont = f }

// Actions returns a copy of the action list.
func (o *Options) Actions() []*ActionItem {
	out := make([]*ActionItem, len(o.actions))
	copy(out, o.actions)
	return out
}

// SetActions replaces the action list. nil entries are dropped.
func (o *Options) SetActions(actions ...*ActionItem) {
	o.actions = o.actions[:0:0]
	o.AddActions(actions...)
}

// AddActions appends actions. nil entries are dropped.
func (o *Options) AddActions(actions ...*ActionItem) {
	for _, a := range actions {
		if a != nil {
			o.actions = append(o.actions, a)
		}
	}
}

// Action returns the action with the given id.
func (o *Options) Action(id string) (*ActionItem, bool) {
	for _, a := range o.actions {
		if a.id == id {
			return a, true
		}
	}
	return nil, false
}

// ClickHandler returns the body click handler.
func (o *Options) ClickHandler() ClickHandler { return o.onClick }

// SetClickHandler sets the body click handler.
func (o *Options) SetClickHandler(h ClickHandler) { o.onClick = h }

// OpenHandler returns the open handler.
func (o *Options) OpenHandler() OpenHandler { return o.onOpen }

// SetOpenHandler sets the open handler.
func (o *Options) SetOpenHandler(h OpenHandler) { o.onOpen = h }

// CloseHandler returns the close handler.
func (o *Options) CloseHandler() CloseHandler { return o.onClose }

// SetCloseHandler sets the close handler.
func (o *Options) SetCloseHandler(h CloseHandler) { o.onClose = h }

// Clone returns a deep copy. Actions are cloned and keep their ids and handlers.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	c := *o
	c.actions = make([]*ActionItem, 0, len(o.actions))
	for _, a := range o.actions {
		c.actions = append(c.actions, a.Clone())
	}
	return &c
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
