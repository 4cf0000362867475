package toast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnNilPresenter(t *testing.T) {
	assert.PanicsWithValue(t, "toast.New: presenter dependency cannot be nil", func() {
		New(nil)
	})
}

func TestNewDefaults(t *testing.T) {
	toaster, p, _ := newTestToaster()

	assert.Equal(t, DefaultMaxOpenItems, toaster.MaxOpenItems())
	assert.Equal(t, 0, toaster.MaxHistoryItems())
	assert.Equal(t, PolicyQueue, toaster.Policy())
	assert.NotNil(t, toaster.Registry())
	assert.NotNil(t, p.onClose, "close callback registered")
}

func TestShowOpensAndQueues(t *testing.T) {
	toaster, p, clock := newTestToaster(WithMaxOpenItems(2), WithMaxHistoryItems(10))

	assert.Equal(t, StatusOpened, toaster.Show(nil, "A"))
	assert.Equal(t, StatusOpened, toaster.Show(nil, "B"))
	clock.advance(time.Second)
	queuedAt := clock.Now()
	third, status := toaster.Submit(nil, nil, "C", "line 1", "line 2")
	require.Equal(t, StatusQueued, status)

	assert.Equal(t, 2, toaster.OpenCount())
	assert.Equal(t, []*Item{third}, toaster.QueuedItems())
	assert.Equal(t, 2, third.ID())
	assert.Nil(t, third.Handle())
	ts, ok := third.DateTime(StatusQueued)
	require.True(t, ok)
	assert.Equal(t, queuedAt, ts)

	clock.advance(time.Second)
	p.expire(0)

	assert.Equal(t, StatusOpened, third.Status())
	assert.Empty(t, toaster.QueuedItems())
	assert.Equal(t, []int{0, 1, 2}, p.createdIDs())

	// The preserved timestamps reach the presenter untouched.
	last := p.created[2]
	assert.Equal(t, "C", last.title)
	assert.Equal(t, []string{"line 1", "line 2"}, last.label)
	preserved, ok := last.preserved.Status(StatusQueued)
	require.True(t, ok)
	assert.Equal(t, queuedAt, preserved)
	_, ok = last.preserved.Status(StatusShowing)
	assert.True(t, ok)

	// Queued timestamp survives materialization.
	ts, ok = third.DateTime(StatusQueued)
	require.True(t, ok)
	assert.Equal(t, queuedAt, ts)
	opened, _ := third.DateTime(StatusOpened)
	assert.True(t, opened.After(queuedAt))
}

func TestShowDiscardPolicy(t *testing.T) {
	var recorded []*Item
	toaster, _, _ := newTestToaster(
		WithMaxOpenItems(1),
		WithMaxHistoryItems(5),
		WithPolicy(PolicyDiscard),
		WithRecorder(recorderFunc(func(item *Item) error {
			recorded = append(recorded, item)
			return nil
		})),
	)

	require.Equal(t, StatusOpened, toaster.Show(nil, "first"))
	item, status := toaster.Submit(nil, nil, "second")

	assert.Equal(t, StatusDiscarded, status)
	assert.Equal(t, StatusDiscarded, item.Status())
	assert.Empty(t, toaster.QueuedItems())
	assert.Equal(t, 1, toaster.OpenCount())
	assert.Equal(t, item, toaster.HistoryItems()[0])
	assert.Equal(t, []*Item{item}, recorded)
	_, ok := item.DateTime(StatusDiscarded)
	assert.True(t, ok)
	_, ok = item.DateTime(StatusOpened)
	assert.False(t, ok)
}

func TestHistoryIsMostRecentFirstAndBounded(t *testing.T) {
	toaster, _, _ := newTestToaster(WithMaxHistoryItems(2))

	for _, title := range []string{"one", "two", "three"} {
		toaster.Show(nil, title)
	}

	history := toaster.HistoryItems()
	require.Len(t, history, 2)
	assert.Equal(t, "three", history[0].Title())
	assert.Equal(t, "two", history[1].Title())
}

func TestHistoryDisabledByDefault(t *testing.T) {
	toaster, _, _ := newTestToaster()
	toaster.Show(nil, "one")
	assert.Empty(t, toaster.HistoryItems())
}

func TestSetMaxHistoryItemsEvictsOldest(t *testing.T) {
	toaster, _, _ := newTestToaster(WithMaxHistoryItems(5))
	for _, title := range []string{"a", "b", "c", "d"} {
		toaster.Show(nil, title)
	}

	toaster.SetMaxHistoryItems(2)
	titles := []string{}
	for _, item := range toaster.HistoryItems() {
		titles = append(titles, item.Title())
	}
	assert.Equal(t, []string{"d", "c"}, titles)

	toaster.SetMaxHistoryItems(-3)
	assert.Equal(t, 0, toaster.MaxHistoryItems())
	assert.Empty(t, toaster.HistoryItems())
}

func TestQueueDrainsInFIFOOrder(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(1))

	for i := 0; i < 6; i++ {
		toaster.Show(nil, "toast")
	}
	require.Len(t, toaster.QueuedItems(), 5)

	for len(p.open) > 0 {
		for id := range p.open {
			p.expire(id)
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p.createdIDs())
	assert.Empty(t, toaster.QueuedItems())
}

func TestOpenCountNeverExceedsLimitOnAdmission(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(3))

	for i := 0; i < 60; i++ {
		toaster.Show(nil, "toast")
		if i%4 == 0 {
			for _, item := range toaster.OpenItems() {
				p.expire(item.ID())
				break
			}
		}
		if i == 30 {
			toaster.SetMaxOpenItems(5)
		}
		assert.LessOrEqual(t, toaster.OpenCount(), toaster.MaxOpenItems())
		if len(toaster.QueuedItems()) > 0 {
			assert.Equal(t, toaster.MaxOpenItems(), toaster.OpenCount(), "queue only grows when full")
		}
	}
}

func TestSetMaxOpenItemsClampsAndDrains(t *testing.T) {
	toaster, _, _ := newTestToaster(WithMaxOpenItems(1))
	for i := 0; i < 4; i++ {
		toaster.Show(nil, "toast")
	}
	require.Len(t, toaster.QueuedItems(), 3)

	toaster.SetMaxOpenItems(3)
	assert.Equal(t, 3, toaster.OpenCount())
	assert.Len(t, toaster.QueuedItems(), 1)

	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 1},
		{in: -5, want: 1},
		{in: 42, want: 42},
		{in: 101, want: MaxOpenItemsCeiling},
		{in: 1000, want: MaxOpenItemsCeiling},
	}
	for _, tt := range tests {
		toaster.SetMaxOpenItems(tt.in)
		assert.Equal(t, tt.want, toaster.MaxOpenItems(), "SetMaxOpenItems(%d)", tt.in)
	}
}

func TestLoweringMaxOpenItemsKeepsOpenToasts(t *testing.T) {
	toaster, _, _ := newTestToaster(WithMaxOpenItems(3))
	for i := 0; i < 3; i++ {
		toaster.Show(nil, "toast")
	}
	toaster.SetMaxOpenItems(1)
	assert.Equal(t, 3, toaster.OpenCount())
	assert.Equal(t, StatusQueued, toaster.Show(nil, "late"))
}

func TestSetPolicy(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(1), WithMaxHistoryItems(10))
	toaster.Show(nil, "open")
	_, s1 := toaster.Submit(nil, nil, "q1")
	q2, s2 := toaster.Submit(nil, nil, "q2")
	require.Equal(t, StatusQueued, s1)
	require.Equal(t, StatusQueued, s2)

	toaster.SetPolicy(Policy("bogus"))
	assert.Equal(t, PolicyQueue, toaster.Policy())
	assert.Len(t, toaster.QueuedItems(), 2)

	toaster.SetPolicy(PolicyDiscard)
	assert.Equal(t, PolicyDiscard, toaster.Policy())
	assert.Empty(t, toaster.QueuedItems())
	assert.Equal(t, StatusDiscarded, q2.Status())
	assert.Len(t, toaster.HistoryItems(), 1, "dropped queue items are not added to history")

	p.expire(0)
	assert.Equal(t, 0, toaster.OpenCount(), "dropped items never open")

	toaster.SetPolicy(PolicyQueue)
	assert.Equal(t, PolicyQueue, toaster.Policy())
}

func TestPresenterCreateFailureDiscardsItem(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxHistoryItems(3))
	p.failCreate = true

	item, status := toaster.Submit(nil, nil, "broken")
	assert.Equal(t, StatusDiscarded, status)
	assert.Equal(t, StatusDiscarded, item.Status())
	assert.Equal(t, 0, toaster.OpenCount())
	assert.Equal(t, []*Item{item}, toaster.HistoryItems())
}

func TestOpenCountHonorsPresenter(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(2))
	p.external = 2

	assert.Equal(t, 2, toaster.OpenCount())
	assert.Equal(t, StatusQueued, toaster.Show(nil, "waits"))
}

func TestHandlersFire(t *testing.T) {
	var events []string
	opts := NewOptions()
	opts.SetOpenHandler(func(item *Item) { events = append(events, "open:"+item.Title()) })
	opts.SetCloseHandler(func(item *Item) { events = append(events, "close:"+item.Title()) })
	opts.SetClickHandler(func(item *Item, ev Event) { events = append(events, "click:"+ev.Key) })

	toaster, _, _ := newTestToaster()
	item, _ := toaster.Submit(nil, opts, "t")

	assert.True(t, toaster.Click(item.ID(), Event{Type: "key", Key: "c"}))
	assert.True(t, toaster.Hide(item.ID()))
	assert.False(t, toaster.Click(item.ID(), Event{}))

	assert.Equal(t, []string{"open:t", "click:c", "close:t"}, events)
	assert.Equal(t, StatusClosed, item.Status())
	assert.True(t, item.Status().IsTerminal())
}

func TestHide(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(1))
	open, _ := toaster.Submit(nil, nil, "open")
	queued, _ := toaster.Submit(nil, nil, "queued")

	assert.False(t, toaster.Hide(queued.ID()), "queued toasts cannot be hidden")
	queued.Hide()
	assert.Equal(t, StatusQueued, queued.Status())
	assert.False(t, toaster.Hide(99))

	open.Hide()
	assert.Equal(t, StatusClosed, open.Status())
	assert.Equal(t, StatusOpened, queued.Status())
	assert.Equal(t, []int{open.ID()}, p.closed)

	open.Hide()
	assert.Equal(t, []int{open.ID()}, p.closed, "hiding a closed toast is a no-op")
}

func TestHideAll(t *testing.T) {
	toaster, _, _ := newTestToaster(WithMaxOpenItems(2))
	for i := 0; i < 3; i++ {
		toaster.Show(nil, "toast")
	}

	toaster.HideAll()
	// The queued toast opens once a slot frees up and is not part of the sweep.
	assert.Equal(t, 1, toaster.OpenCount())
	assert.Empty(t, toaster.QueuedItems())
}

func TestDeferredCloseDelivery(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxOpenItems(1))
	p.deferClose = true
	first, _ := toaster.Submit(nil, nil, "first")
	second, _ := toaster.Submit(nil, nil, "second")

	toaster.Hide(first.ID())
	assert.Equal(t, StatusOpened, first.Status(), "close is reported asynchronously")
	assert.Equal(t, StatusQueued, second.Status())

	p.flush()
	assert.Equal(t, StatusClosed, first.Status())
	assert.Equal(t, StatusOpened, second.Status())
}

func TestCloseForUnknownHandleIgnored(t *testing.T) {
	toaster, p, _ := newTestToaster()
	item, _ := toaster.Submit(nil, nil, "t")

	p.onClose(&fakeHandle{id: 42})
	p.onClose(nil)
	assert.Equal(t, StatusOpened, item.Status())
}

func TestClickAction(t *testing.T) {
	var calls int
	keep, err := NewActionItem("Keep", func(*Item, Event) bool { calls++; return false })
	require.NoError(t, err)
	dismiss, err := NewActionItemWithID("dismiss", "Dismiss", func(*Item, Event) bool { calls++; return true })
	require.NoError(t, err)

	opts := NewOptions()
	opts.SetActions(keep, dismiss)
	toaster, _, clock := newTestToaster()
	item, _ := toaster.Submit(nil, opts, "with actions")

	clock.advance(time.Second)
	assert.False(t, toaster.ClickAction(item.ID(), keep.ID(), Event{}))
	assert.Equal(t, StatusOpened, item.Status())
	at, ok := item.ActionDateTime(keep.ID())
	require.True(t, ok)
	assert.Equal(t, clock.Now(), at)

	assert.False(t, toaster.ClickAction(item.ID(), "missing", Event{}))

	assert.True(t, toaster.ClickAction(item.ID(), "dismiss", Event{}))
	assert.Equal(t, StatusClosed, item.Status())
	assert.Equal(t, 2, calls)

	// Clicks after close are ignored.
	assert.False(t, toaster.ClickAction(item.ID(), "dismiss", Event{}))
	assert.Equal(t, 2, calls)
}

func TestRemovedCustomTypeFallsBackToDefault(t *testing.T) {
	toaster, p, _ := newTestToaster()
	b, err := toaster.Registry().NewTypeBuilder("brand", mustColor(t, "#123456"))
	require.NoError(t, err)
	brand := b.Build()

	opts := NewOptions()
	opts.SetType(brand)
	toaster.Show(opts, "branded")
	require.True(t, toaster.Registry().RemoveType("brand"))
	toaster.Show(opts, "orphaned")

	assert.Equal(t, brand, p.created[0].opts.Type())
	assert.Equal(t, TypeDefault, p.created[1].opts.Type())
	assert.Equal(t, brand, opts.Type(), "caller options are not modified")
}

func TestShowSnapshotsOptions(t *testing.T) {
	toaster, _, _ := newTestToaster()
	opts := NewOptions()
	opts.SetTimeout(1000)
	item, _ := toaster.Submit(nil, opts, "t")

	opts.SetTimeout(9999)
	assert.Equal(t, 1000, item.Options().Timeout())
}

func TestShowWithNilOptionsUsesMutableDefaults(t *testing.T) {
	toaster, p, _ := newTestToaster()
	toaster.Defaults().SetTimeout(250)
	toaster.Defaults().SetType(TypeWarning)

	toaster.Show(nil, "t")
	assert.Equal(t, 250, p.created[0].opts.Timeout())
	assert.Equal(t, TypeWarning, p.created[0].opts.Type())
	assert.Equal(t, 4000, toaster.ReadOnlyDefaults().Timeout())
}

func TestRecorderErrorsAreNotFatal(t *testing.T) {
	toaster, p, _ := newTestToaster(WithRecorder(recorderFunc(func(*Item) error {
		return errors.New("disk full")
	})))
	item, _ := toaster.Submit(nil, nil, "t")
	p.expire(item.ID())
	assert.Equal(t, StatusClosed, item.Status())
}

func TestRecorderSeesClosedItems(t *testing.T) {
	var statuses []Status
	toaster, p, _ := newTestToaster(WithRecorder(recorderFunc(func(item *Item) error {
		statuses = append(statuses, item.Status())
		return nil
	})))
	item, _ := toaster.Submit(nil, nil, "t")
	p.expire(item.ID())
	assert.Equal(t, []Status{StatusClosed}, statuses)
}

func TestRecordersFanOutAndJoinErrors(t *testing.T) {
	var calls []string
	first := recorderFunc(func(*Item) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	second := recorderFunc(func(*Item) error {
		calls = append(calls, "second")
		return nil
	})
	toaster, _, _ := newTestToaster()
	item, _ := toaster.Submit(nil, nil, "t")

	err := Recorders{first, nil, second}.Record(item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.NoError(t, Recorders{second}.Record(item))
}

func TestOpenItemsSortedByID(t *testing.T) {
	toaster, _, _ := newTestToaster()
	for i := 0; i < 5; i++ {
		toaster.Show(nil, "toast")
	}
	items := toaster.OpenItems()
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, i, item.ID())
		got, ok := toaster.OpenItem(i)
		require.True(t, ok)
		assert.Same(t, item, got)
	}
}

func TestPolicyValidity(t *testing.T) {
	assert.True(t, PolicyQueue.IsValid())
	assert.True(t, PolicyDiscard.IsValid())
	assert.False(t, Policy("drop").IsValid())
	assert.Equal(t, "queue", PolicyQueue.String())
}

func TestToastersAreIsolated(t *testing.T) {
	a, _, _ := newTestToaster(WithMaxOpenItems(1))
	b, _, _ := newTestToaster(WithMaxOpenItems(1))
	a.Show(nil, "a")
	assert.Equal(t, StatusOpened, b.Show(nil, "b"))
	assert.Equal(t, 0, b.OpenItems()[0].ID())
}
