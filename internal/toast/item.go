package toast

import (
	"sort"
	"time"
)

// Timestamps is a read-only set of instants keyed by status name or action id.
// It is handed to the presenter unchanged when a queued item is shown, so the
// presenter can tell how long the item waited.
type Timestamps struct {
	m map[string]time.Time
}

func (ts Timestamps) clone() Timestamps {
	m := make(map[string]time.Time, len(ts.m))
	for k, v := range ts.m {
		m[k] = v
	}
	return Timestamps{m: m}
}

// Get returns the instant recorded under key.
func (ts Timestamps) Get(key string) (time.Time, bool) {
	v, ok := ts.m[key]
	return v, ok
}

// Status returns the instant the given status was entered.
func (ts Timestamps) Status(s Status) (time.Time, bool) {
	return ts.Get(string(s))
}

// Keys returns the recorded keys in chronological order.
func (ts Timestamps) Keys() []string {
	keys := make([]string, 0, len(ts.m))
	for k := range ts.m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := ts.m[keys[i]], ts.m[keys[j]]
		if a.Equal(b) {
			return keys[i] < keys[j]
		}
		return a.Before(b)
	})
	return keys
}

// Len returns the number of recorded instants.
func (ts Timestamps) Len() int {
	return len(ts.m)
}

// Item is one submitted toast. Only the owning Toaster mutates it.
type Item struct {
	id         int
	title      string
	label      []string
	status     Status
	timestamps map[string]time.Time
	latest     time.Time
	created    time.Time
	handle     Handle
	options    *Options
	context    map[string]string
	owner      *Toaster
}

func newItem(owner *Toaster, id int, opts *Options, ctx map[string]string) *Item {
	item := &Item{
		id:         id,
		status:     StatusUnknown,
		timestamps: make(map[string]time.Time),
		options:    opts,
		owner:      owner,
		created:    owner.clock.Now(),
	}
	if len(ctx) > 0 {
		item.context = make(map[string]string, len(ctx))
		for k, v := range ctx {
			item.context[k] = v
		}
	}
	return item
}

// ID returns the toast id.
func (i *Item) ID() int { return i.id }

// Title returns the toast title.
func (i *Item) Title() string { return i.title }

// Label returns a copy of the label lines.
func (i *Item) Label() []string {
	out := make([]string, len(i.label))
	copy(out, i.label)
	return out
}

// Status returns the current lifecycle status.
func (i *Item) Status() Status { return i.status }

// Handle returns the presenter handle, nil until the item is shown.
func (i *Item) Handle() Handle { return i.handle }

// Options returns the options snapshot the item was created with. The
// snapshot is shared; callers must Clone it before changing it.
func (i *Item) Options() *Options { return i.options }

// CreatedAt returns the instant the item was submitted.
func (i *Item) CreatedAt() time.Time { return i.created }

// Context returns a copy of the caller-supplied context.
func (i *Item) Context() map[string]string {
	out := make(map[string]string, len(i.context))
	for k, v := range i.context {
		out[k] = v
	}
	return out
}

// ContextValue returns one context entry.
func (i *Item) ContextValue(key string) (string, bool) {
	v, ok := i.context[key]
	return v, ok
}

// DateTime returns when the item entered status s.
func (i *Item) DateTime(s Status) (time.Time, bool) {
	v, ok := i.timestamps[string(s)]
	return v, ok
}

// ActionDateTime returns when the action with the given id was last clicked.
func (i *Item) ActionDateTime(actionID string) (time.Time, bool) {
	v, ok := i.timestamps[actionID]
	return v, ok
}

// Timestamps returns a snapshot of every recorded instant.
func (i *Item) Timestamps() Timestamps {
	return Timestamps{m: i.timestamps}.clone()
}

// Show submits the item's options, title and label again, producing a new
// item. It works for items in any status, including history entries.
func (i *Item) Show() Status {
	return i.owner.ShowWithContext(i.context, i.options.Clone(), i.title, i.label...)
}

// Hide asks the presenter to close the toast. It is a no-op unless the item
// is currently opened.
func (i *Item) Hide() {
	if i.status != StatusOpened {
		return
	}
	i.owner.hideItem(i)
}

// setStatus records the transition and stamps it. Stamps never go backwards
// in time, even if the clock does.
func (i *Item) setStatus(s Status) bool {
	if !canTransition(i.status, s) {
		return false
	}
	i.status = s
	i.stamp(string(s))
	return true
}

func (i *Item) stampAction(actionID string) {
	i.stamp(actionID)
}

func (i *Item) stamp(key string) {
	now := i.owner.clock.Now()
	if now.Before(i.latest) {
		now = i.latest
	}
	i.latest = now
	i.timestamps[key] = now
}

// setTitle and setLabel are only valid before the item has a handle.
func (i *Item) setTitle(title string) {
	if i.handle != nil {
		return
	}
	i.title = title
}

func (i *Item) setLabel(label []string) {
	if i.handle != nil {
		return
	}
	i.label = make([]string, len(label))
	copy(i.label, label)
}
