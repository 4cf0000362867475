package toast

import (
	"sort"

	"github.com/cristianoliveira/tmux-toaster/internal/logging"
)

const (
	// MaxOpenItemsCeiling is the hard limit of simultaneously open toasts.
	MaxOpenItemsCeiling = 100
	// DefaultMaxOpenItems is the open-item limit of a new Toaster.
	DefaultMaxOpenItems = MaxOpenItemsCeiling
)

// Policy decides what happens to a toast submitted while all slots are taken.
type Policy string

const (
	// PolicyQueue defers the toast until a slot frees up.
	PolicyQueue Policy = "queue"
	// PolicyDiscard drops the toast.
	PolicyDiscard Policy = "discard"
)

// IsValid checks if the policy is known.
func (p Policy) IsValid() bool {
	return p == PolicyQueue || p == PolicyDiscard
}

// String returns the string representation of the policy.
func (p Policy) String() string {
	return string(p)
}

// Toaster coordinates admission, the overflow queue, history and status
// transitions of toasts rendered by a Presenter.
type Toaster struct {
	presenter Presenter
	registry  *Registry
	clock     Clock
	ids       IDGenerator
	logger    logging.Logger
	recorder  HistoryRecorder

	defaults   *Options
	overrides  *Options
	defaultFns []func(*Options, *Registry)

	open    map[int]*Item
	queue   []*Item
	history []*Item

	maxOpenItems    int
	maxHistoryItems int
	policy          Policy
}

// Option configures a Toaster at construction.
type Option func(*Toaster)

// WithClock sets the timestamp source.
func WithClock(c Clock) Option {
	return func(t *Toaster) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(t *Toaster) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithRegistry sets the variant registry.
func WithRegistry(r *Registry) Option {
	return func(t *Toaster) { t.registry = r }
}

// WithMaxOpenItems sets the open-item limit, clamped to [1, MaxOpenItemsCeiling].
func WithMaxOpenItems(n int) Option {
	return func(t *Toaster) { t.maxOpenItems = clampOpenItems(n) }
}

// WithMaxHistoryItems sets the history capacity, clamped to zero.
func WithMaxHistoryItems(n int) Option {
	return func(t *Toaster) { t.maxHistoryItems = nonNegative(n) }
}

// WithPolicy sets the overflow policy. Unknown policies are ignored.
func WithPolicy(p Policy) Option {
	return func(t *Toaster) {
		if p.IsValid() {
			t.policy = p
		}
	}
}

// WithRecorder sets a recorder notified when items close or are discarded.
func WithRecorder(r HistoryRecorder) Option {
	return func(t *Toaster) { t.recorder = r }
}

// WithDefaults adjusts the mutable defaults once the registry is available.
func WithDefaults(fn func(d *Options, r *Registry)) Option {
	return func(t *Toaster) {
		if fn != nil {
			t.defaultFns = append(t.defaultFns, fn)
		}
	}
}

// New creates a Toaster and registers its close callback with p.
func New(p Presenter, opts ...Option) *Toaster {
	if p == nil {
		panic("toast.New: presenter dependency cannot be nil")
	}
	t := &Toaster{
		presenter:    p,
		clock:        SystemClock{},
		logger:       logging.GetGlobal(),
		open:         make(map[int]*Item),
		maxOpenItems: DefaultMaxOpenItems,
		policy:       PolicyQueue,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.registry == nil {
		t.registry = NewRegistry(nil)
	}
	t.defaults = builtinDefaults()
	t.overrides = t.defaults.Clone()
	for _, fn := range t.defaultFns {
		fn(t.overrides, t.registry)
	}
	t.logger = t.logger.With("component", "toaster")
	p.OnClose(t.handleClose)
	return t
}

// Registry returns the variant registry.
func (t *Toaster) Registry() *Registry { return t.registry }

// ReadOnlyDefaults returns a copy of the built-in defaults.
func (t *Toaster) ReadOnlyDefaults() *Options { return t.defaults.Clone() }

// Defaults returns the mutable defaults used by Show when options are nil.
func (t *Toaster) Defaults() *Options { return t.overrides }

// Show submits a toast and returns the admission outcome: StatusOpened,
// StatusQueued or StatusDiscarded. nil options use Defaults. Toasts without
// title and label are accepted.
func (t *Toaster) Show(opts *Options, title string, label ...string) Status {
	return t.ShowWithContext(nil, opts, title, label...)
}

// ShowWithContext is Show with a caller context attached to the item. The
// context is copied and never mutated afterwards.
func (t *Toaster) ShowWithContext(ctx map[string]string, opts *Options, title string, label ...string) Status {
	_, status := t.submit(ctx, opts, title, label)
	return status
}

// Submit is like ShowWithContext but also returns the created item.
func (t *Toaster) Submit(ctx map[string]string, opts *Options, title string, label ...string) (*Item, Status) {
	return t.submit(ctx, opts, title, label)
}

func (t *Toaster) submit(ctx map[string]string, opts *Options, title string, label []string) (*Item, Status) {
	item := newItem(t, t.ids.Next(), t.snapshot(opts), ctx)
	item.setTitle(title)
	item.setLabel(label)

	if t.OpenCount() < t.maxOpenItems {
		return item, t.materialize(item)
	}
	if t.policy == PolicyDiscard {
		item.setStatus(StatusDiscarded)
		t.remember(item)
		t.record(item)
		t.logger.Debug("toast discarded", "id", item.id, "open", t.OpenCount(), "max_open", t.maxOpenItems)
		return item, StatusDiscarded
	}
	item.setStatus(StatusQueued)
	t.queue = append(t.queue, item)
	t.logger.Debug("toast queued", "id", item.id, "queue_len", len(t.queue))
	return item, StatusQueued
}

// snapshot clones the options and resolves their variants against the
// registry, falling back to the default variants.
func (t *Toaster) snapshot(opts *Options) *Options {
	if opts == nil {
		opts = t.overrides
	}
	snap := opts.Clone()
	snap.typ = t.registry.ResolveType(snap.typ)
	snap.progressBarType = t.registry.ResolveProgressBarType(snap.progressBarType)
	return snap
}

// materialize renders an item that was just created or dequeued.
func (t *Toaster) materialize(item *Item) Status {
	item.setStatus(StatusShowing)
	h, err := t.presenter.Create(item.id, item.title, item.Label(), item.options, item.Timestamps())
	if err != nil || h == nil {
		t.logger.Error("presenter failed to render toast", "id", item.id, "error", err)
		item.setStatus(StatusDiscarded)
		t.remember(item)
		t.record(item)
		return StatusDiscarded
	}
	item.handle = h
	t.open[item.id] = item
	item.setStatus(StatusOpened)
	t.remember(item)
	t.logger.Debug("toast opened", "id", item.id, "open", len(t.open))
	if fn := item.options.onOpen; fn != nil {
		fn(item)
	}
	return StatusOpened
}

// handleClose is the single close callback registered with the presenter.
func (t *Toaster) handleClose(h Handle) {
	if h == nil {
		return
	}
	item, ok := t.open[h.ItemID()]
	if !ok {
		t.logger.Debug("close for unknown toast ignored", "id", h.ItemID())
		return
	}
	delete(t.open, item.id)
	item.setStatus(StatusClosed)
	t.logger.Debug("toast closed", "id", item.id, "open", len(t.open))
	if fn := item.options.onClose; fn != nil {
		fn(item)
	}
	t.record(item)
	t.checkAndCleanQueue()
}

// checkAndCleanQueue shows queued items, oldest first, while slots are free.
func (t *Toaster) checkAndCleanQueue() {
	for len(t.queue) > 0 && t.OpenCount() < t.maxOpenItems {
		next := t.queue[0]
		t.queue[0] = nil
		t.queue = t.queue[1:]
		t.logger.Debug("dequeuing toast", "id", next.id, "queue_len", len(t.queue))
		t.materialize(next)
	}
	if len(t.queue) == 0 {
		t.queue = nil
	}
}

// remember puts the item at the head of the history, evicting from the tail.
func (t *Toaster) remember(item *Item) {
	if t.maxHistoryItems <= 0 {
		return
	}
	t.history = append(t.history, nil)
	copy(t.history[1:], t.history)
	t.history[0] = item
	t.trimHistory()
}

func (t *Toaster) trimHistory() {
	for len(t.history) > t.maxHistoryItems {
		last := len(t.history) - 1
		t.logger.Debug("history entry evicted", "id", t.history[last].id)
		t.history[last] = nil
		t.history = t.history[:last]
	}
}

func (t *Toaster) record(item *Item) {
	if t.recorder == nil {
		return
	}
	if err := t.recorder.Record(item); err != nil {
		t.logger.Warn("history recorder failed", "id", item.id, "error", err)
	}
}

func (t *Toaster) hideItem(item *Item) {
	t.presenter.Close(item.handle)
}

// OpenCount returns the number of open toasts. The presenter count wins when
// it is higher, since it may render toasts this Toaster does not own.
func (t *Toaster) OpenCount() int {
	if n := t.presenter.OpenCount(); n > len(t.open) {
		return n
	}
	return len(t.open)
}

// OpenItem returns the open item with the given id.
func (t *Toaster) OpenItem(id int) (*Item, bool) {
	item, ok := t.open[id]
	return item, ok
}

// OpenItems returns the open items ordered by id.
func (t *Toaster) OpenItems() []*Item {
	out := make([]*Item, 0, len(t.open))
	for _, item := range t.open {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// QueuedItems returns the queued items, head first.
func (t *Toaster) QueuedItems() []*Item {
	out := make([]*Item, len(t.queue))
	copy(out, t.queue)
	return out
}

// HistoryItems returns the history, most recent first.
func (t *Toaster) HistoryItems() []*Item {
	out := make([]*Item, len(t.history))
	copy(out, t.history)
	return out
}

// MaxOpenItems returns the open-item limit.
func (t *Toaster) MaxOpenItems() int { return t.maxOpenItems }

// SetMaxOpenItems sets the open-item limit, clamped to [1, MaxOpenItemsCeiling],
// and shows queued items if the new limit leaves room for them. Toasts already
// open stay open when the limit goes down.
func (t *Toaster) SetMaxOpenItems(n int) {
	t.maxOpenItems = clampOpenItems(n)
	t.checkAndCleanQueue()
}

// Policy returns the overflow policy.
func (t *Toaster) Policy() Policy { return t.policy }

// SetPolicy changes the overflow policy. Switching to PolicyDiscard drops the
// queued items without adding them to history. Unknown policies are ignored.
func (t *Toaster) SetPolicy(p Policy) {
	if !p.IsValid() {
		t.logger.Warn("unknown overflow policy ignored", "policy", string(p))
		return
	}
	t.policy = p
	if p == PolicyDiscard {
		for _, item := range t.queue {
			item.setStatus(StatusDiscarded)
		}
		if len(t.queue) > 0 {
			t.logger.Debug("queue cleared", "dropped", len(t.queue))
		}
		t.queue = nil
		return
	}
	t.checkAndCleanQueue()
}

// MaxHistoryItems returns the history capacity.
func (t *Toaster) MaxHistoryItems() int { return t.maxHistoryItems }

// SetMaxHistoryItems sets the history capacity, clamped to zero, evicting the
// oldest entries that no longer fit.
func (t *Toaster) SetMaxHistoryItems(n int) {
	t.maxHistoryItems = nonNegative(n)
	t.trimHistory()
	if len(t.history) == 0 {
		t.history = nil
	}
}

// Hide closes the open toast with the given id. It reports whether a close
// was requested.
func (t *Toaster) Hide(id int) bool {
	item, ok := t.open[id]
	if !ok || item.status != StatusOpened {
		return false
	}
	t.hideItem(item)
	return true
}

// HideAll closes every open toast.
func (t *Toaster) HideAll() {
	for _, item := range t.OpenItems() {
		item.Hide()
	}
}

// Click delivers a body click to the open toast with the given id. It reports
// whether the toast was open.
func (t *Toaster) Click(id int, ev Event) bool {
	item, ok := t.open[id]
	if !ok {
		return false
	}
	if fn := item.options.onClick; fn != nil {
		fn(item, ev)
	}
	return true
}

// ClickAction delivers a click on an action of the toast with the given id and
// returns the handler result. Clicks for toasts that are no longer open are
// ignored and return false. A true result also closes the toast.
func (t *Toaster) ClickAction(id int, actionID string, ev Event) bool {
	item, ok := t.open[id]
	if !ok {
		return false
	}
	action, ok := item.options.Action(actionID)
	if !ok {
		return false
	}
	closeToast := action.dispatch(t.OpenItem, id, ev)
	if closeToast {
		t.Hide(id)
	}
	return closeToast
}

func clampOpenItems(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxOpenItemsCeiling {
		return MaxOpenItemsCeiling
	}
	return n
}
