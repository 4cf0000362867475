package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
)

// ErrDuplicateElement is returned when a toast id is rendered twice.
var ErrDuplicateElement = errors.New("toast element already exists")

// Element is a rendered toast. It is the handle returned to the Toaster.
type Element struct {
	id        int
	title     string
	label     []string
	options   *toast.Options
	openedAt  time.Time
	preserved toast.Timestamps
}

// ItemID returns the id of the toast shown by the element.
func (e *Element) ItemID() int { return e.id }

// Title returns the title.
func (e *Element) Title() string { return e.title }

// Label returns the label lines.
func (e *Element) Label() []string {
	out := make([]string, len(e.label))
	copy(out, e.label)
	return out
}

// Options returns the options snapshot the element was created with.
func (e *Element) Options() *toast.Options { return e.options }

// OpenedAt returns when the element was created.
func (e *Element) OpenedAt() time.Time { return e.openedAt }

// Preserved returns the timestamps carried over from the queue.
func (e *Element) Preserved() toast.Timestamps { return e.preserved }

// Deadline returns when the element hides itself. Elements without auto-hide
// or with a zero timeout have no deadline.
func (e *Element) Deadline() (time.Time, bool) {
	if !e.options.AutoHide() || e.options.Timeout() <= 0 {
		return time.Time{}, false
	}
	return e.openedAt.Add(time.Duration(e.options.Timeout()) * time.Millisecond), true
}

// Remaining returns the fraction of the timeout left at now, in [0, 1].
// Elements without a deadline report 1.
func (e *Element) Remaining(now time.Time) float64 {
	deadline, ok := e.Deadline()
	if !ok {
		return 1
	}
	left := deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	total := time.Duration(e.options.Timeout()) * time.Millisecond
	if left >= total {
		return 1
	}
	return float64(left) / float64(total)
}

// Waited returns how long the toast spent in the queue, if it was queued.
func (e *Element) Waited() (time.Duration, bool) {
	queued, ok := e.preserved.Status(toast.StatusQueued)
	if !ok {
		return 0, false
	}
	return e.openedAt.Sub(queued), true
}

// Presenter keeps the open toast elements in memory and renders them for the
// terminal. It is driven from the same goroutine as the Toaster.
type Presenter struct {
	clock    toast.Clock
	sheet    *StyleSheet
	elements map[int]*Element
	order    []int
	onClose  func(toast.Handle)
	width    int
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPresenterClock sets the clock used to stamp and expire elements.
func WithPresenterClock(c toast.Clock) PresenterOption {
	return func(p *Presenter) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithWidth sets the width of a rendered toast box.
func WithWidth(w int) PresenterOption {
	return func(p *Presenter) {
		if w > 0 {
			p.width = w
		}
	}
}

// WithStyleSheet sets the style sheet used to resolve custom variants.
func WithStyleSheet(s *StyleSheet) PresenterOption {
	return func(p *Presenter) {
		if s != nil {
			p.sheet = s
		}
	}
}

// NewPresenter creates an empty Presenter.
func NewPresenter(opts ...PresenterOption) *Presenter {
	p := &Presenter{
		clock:    toast.SystemClock{},
		elements: make(map[int]*Element),
		width:    defaultToastWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sheet == nil {
		p.sheet = NewStyleSheet()
	}
	return p
}

// StyleSheet returns the style sheet of the presenter.
func (p *Presenter) StyleSheet() *StyleSheet { return p.sheet }

// Create renders a new element for the toast with the given id.
func (p *Presenter) Create(id int, title string, label []string, opts *toast.Options, preserved toast.Timestamps) (toast.Handle, error) {
	if _, ok := p.elements[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateElement, id)
	}
	if opts == nil {
		opts = toast.NewOptions()
	}
	el := &Element{
		id:        id,
		title:     title,
		label:     append([]string(nil), label...),
		options:   opts,
		openedAt:  p.clock.Now(),
		preserved: preserved,
	}
	p.elements[id] = el
	p.order = append(p.order, id)
	return el, nil
}

// Close removes the element and reports the close through the registered
// callback before returning. Unknown handles are ignored.
func (p *Presenter) Close(h toast.Handle) {
	if h == nil {
		return
	}
	id := h.ItemID()
	if _, ok := p.elements[id]; !ok {
		return
	}
	delete(p.elements, id)
	for i, v := range p.order {
		if v == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	if p.onClose != nil {
		p.onClose(h)
	}
}

// OpenCount returns the number of rendered elements.
func (p *Presenter) OpenCount() int { return len(p.elements) }

// OnClose sets the close callback, replacing any previous one.
func (p *Presenter) OnClose(fn func(toast.Handle)) { p.onClose = fn }

// Element returns the element of the toast with the given id.
func (p *Presenter) Element(id int) (*Element, bool) {
	el, ok := p.elements[id]
	return el, ok
}

// Elements returns the elements, oldest first.
func (p *Presenter) Elements() []*Element {
	out := make([]*Element, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.elements[id])
	}
	return out
}

// Newest returns the most recently created element.
func (p *Presenter) Newest() (*Element, bool) {
	if len(p.order) == 0 {
		return nil, false
	}
	return p.elements[p.order[len(p.order)-1]], true
}

// Expired returns the elements whose deadline passed at now, oldest first.
func (p *Presenter) Expired(now time.Time) []*Element {
	var out []*Element
	for _, el := range p.Elements() {
		if deadline, ok := el.Deadline(); ok && !now.Before(deadline) {
			out = append(out, el)
		}
	}
	return out
}

// CloseExpired closes every expired element and returns how many were closed.
// Toasts dequeued by the close callbacks get a fresh deadline.
func (p *Presenter) CloseExpired(now time.Time) int {
	expired := p.Expired(now)
	for _, el := range expired {
		p.Close(el)
	}
	return len(expired)
}

// Render draws every element, newest on top.
func (p *Presenter) Render(now time.Time) string {
	els := p.Elements()
	boxes := make([]string, 0, len(els))
	for i := len(els) - 1; i >= 0; i-- {
		boxes = append(boxes, p.Box(els[i], now))
	}
	return joinVertical(boxes)
}

// Box draws a single element.
func (p *Presenter) Box(el *Element, now time.Time) string {
	return Toast(ToastState{
		Title:     el.title,
		Label:     el.label,
		Options:   el.options,
		Colors:    p.sheet.Resolve(el.options.Type()),
		BarColors: p.sheet.ResolveProgressBar(el.options.ProgressBarType()),
		Remaining: el.Remaining(now),
		Width:     p.width,
		ID:        el.id,
	})
}

var _ toast.Presenter = (*Presenter)(nil)
var _ style.Injector = (*StyleSheet)(nil)
