package toast

import (
	"errors"
	"time"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

type fakeHandle struct{ id int }

func (h *fakeHandle) ItemID() int { return h.id }

type createCall struct {
	id        int
	title     string
	label     []string
	opts      *Options
	preserved Timestamps
}

// fakePresenter closes synchronously unless deferClose is set, in which case
// closes are delivered by flush.
type fakePresenter struct {
	open       map[int]*fakeHandle
	onClose    func(Handle)
	created    []createCall
	closed     []int
	pending    []Handle
	deferClose bool
	failCreate bool
	external   int
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{open: make(map[int]*fakeHandle)}
}

var errCreateFailed = errors.New("create failed")

func (p *fakePresenter) Create(id int, title string, label []string, opts *Options, preserved Timestamps) (Handle, error) {
	if p.failCreate {
		return nil, errCreateFailed
	}
	p.created = append(p.created, createCall{id: id, title: title, label: label, opts: opts, preserved: preserved})
	h := &fakeHandle{id: id}
	p.open[id] = h
	return h, nil
}

func (p *fakePresenter) Close(h Handle) {
	if p.deferClose {
		p.pending = append(p.pending, h)
		return
	}
	p.finish(h)
}

func (p *fakePresenter) finish(h Handle) {
	if _, ok := p.open[h.ItemID()]; !ok {
		return
	}
	delete(p.open, h.ItemID())
	p.closed = append(p.closed, h.ItemID())
	if p.onClose != nil {
		p.onClose(h)
	}
}

func (p *fakePresenter) flush() {
	pending := p.pending
	p.pending = nil
	for _, h := range pending {
		p.finish(h)
	}
}

// expire closes the toast as if its timeout elapsed.
func (p *fakePresenter) expire(id int) {
	if h, ok := p.open[id]; ok {
		p.finish(h)
	}
}

func (p *fakePresenter) OpenCount() int { return len(p.open) + p.external }

func (p *fakePresenter) OnClose(fn func(Handle)) { p.onClose = fn }

func (p *fakePresenter) createdIDs() []int {
	ids := make([]int, len(p.created))
	for i, c := range p.created {
		ids[i] = c.id
	}
	return ids
}

type manualClock struct{ now time.Time }

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type countingInjector struct {
	calls map[string]int
	sheet *style.Sheet
}

func newCountingInjector() *countingInjector {
	return &countingInjector{calls: make(map[string]int), sheet: style.NewSheet()}
}

func (c *countingInjector) EnsureInjected(r style.Resource) bool {
	c.calls[r.Name]++
	return c.sheet.EnsureInjected(r)
}

type recorderFunc func(*Item) error

func (f recorderFunc) Record(item *Item) error { return f(item) }

func newTestToaster(opts ...Option) (*Toaster, *fakePresenter, *manualClock) {
	p := newFakePresenter()
	clock := newManualClock()
	t := New(p, append([]Option{WithClock(clock)}, opts...)...)
	return t, p, clock
}
