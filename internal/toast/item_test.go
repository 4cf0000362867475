package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusUnknown, StatusShowing, true},
		{StatusUnknown, StatusQueued, true},
		{StatusUnknown, StatusDiscarded, true},
		{StatusQueued, StatusShowing, true},
		{StatusQueued, StatusDiscarded, true},
		{StatusShowing, StatusOpened, true},
		{StatusShowing, StatusDiscarded, true},
		{StatusOpened, StatusClosed, true},
		{StatusUnknown, StatusOpened, false},
		{StatusQueued, StatusOpened, false},
		{StatusOpened, StatusQueued, false},
		{StatusClosed, StatusShowing, false},
		{StatusDiscarded, StatusShowing, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, canTransition(tt.from, tt.to))
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusClosed.IsTerminal())
	assert.True(t, StatusDiscarded.IsTerminal())
	assert.False(t, StatusOpened.IsTerminal())
	assert.True(t, StatusQueued.IsValid())
	assert.False(t, Status("shown").IsValid())
	assert.Equal(t, "opened", StatusOpened.String())
}

func TestItemLifecycleTimestamps(t *testing.T) {
	toaster, p, clock := newTestToaster()
	start := clock.Now()
	item, _ := toaster.Submit(nil, nil, "hello", "world")

	assert.Equal(t, start, item.CreatedAt())
	for _, s := range []Status{StatusShowing, StatusOpened} {
		ts, ok := item.DateTime(s)
		require.True(t, ok, s)
		assert.Equal(t, start, ts)
	}
	_, ok := item.DateTime(StatusClosed)
	assert.False(t, ok)
	_, ok = item.ActionDateTime("action-none")
	assert.False(t, ok)

	clock.advance(3 * time.Second)
	p.expire(item.ID())
	closed, ok := item.DateTime(StatusClosed)
	require.True(t, ok)
	assert.Equal(t, start.Add(3*time.Second), closed)

	assert.Equal(t, []string{"opened", "showing", "closed"}, item.Timestamps().Keys())
	assert.Equal(t, 3, item.Timestamps().Len())
}

func TestItemTimestampsNeverGoBackwards(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := ClockFunc(func() time.Time {
		calls++
		return base.Add(-time.Duration(calls) * time.Minute)
	})
	toaster := New(newFakePresenter(), WithClock(clock))
	item, _ := toaster.Submit(nil, nil, "skewed")

	showing, _ := item.DateTime(StatusShowing)
	opened, _ := item.DateTime(StatusOpened)
	assert.False(t, opened.Before(showing))

	item.Hide()
	closed, _ := item.DateTime(StatusClosed)
	assert.False(t, closed.Before(opened))
}

func TestItemAccessorsReturnCopies(t *testing.T) {
	toaster, _, _ := newTestToaster()
	ctx := map[string]string{"session": "main"}
	item, _ := toaster.Submit(ctx, nil, "t", "a", "b")

	ctx["session"] = "changed"
	v, ok := item.ContextValue("session")
	require.True(t, ok)
	assert.Equal(t, "main", v)

	got := item.Context()
	got["session"] = "mutated"
	assert.Equal(t, "main", item.Context()["session"])

	label := item.Label()
	label[0] = "x"
	assert.Equal(t, []string{"a", "b"}, item.Label())

	ts := item.Timestamps()
	require.NotZero(t, ts.Len())
	item.Hide()
	assert.Equal(t, 2, ts.Len(), "token is a snapshot")
}

func TestItemContentIsFixedOnceRendered(t *testing.T) {
	toaster, _, _ := newTestToaster()
	item, _ := toaster.Submit(nil, nil, "original", "line")

	item.setTitle("changed")
	item.setLabel([]string{"other"})
	assert.Equal(t, "original", item.Title())
	assert.Equal(t, []string{"line"}, item.Label())
}

func TestItemShowReplays(t *testing.T) {
	toaster, p, _ := newTestToaster(WithMaxHistoryItems(5))
	opts := NewOptions()
	opts.SetType(TypeSuccess)
	item, _ := toaster.Submit(map[string]string{"k": "v"}, opts, "again", "l1")
	item.Hide()

	assert.Equal(t, StatusOpened, item.Show())

	require.Len(t, p.created, 2)
	replay := p.created[1]
	assert.NotEqual(t, item.ID(), replay.id)
	assert.Equal(t, "again", replay.title)
	assert.Equal(t, []string{"l1"}, replay.label)
	assert.Equal(t, TypeSuccess, replay.opts.Type())
	assert.Equal(t, StatusClosed, item.Status(), "the original item is untouched")

	newest := toaster.HistoryItems()[0]
	v, _ := newest.ContextValue("k")
	assert.Equal(t, "v", v)
}

func TestEmptyToastIsAccepted(t *testing.T) {
	toaster, _, _ := newTestToaster()
	item, status := toaster.Submit(nil, nil, "")
	assert.Equal(t, StatusOpened, status)
	assert.Empty(t, item.Title())
	assert.Empty(t, item.Label())
}

func TestIDGenerator(t *testing.T) {
	var g IDGenerator
	assert.Equal(t, 0, g.Next())
	assert.Equal(t, 1, g.Next())
	assert.Equal(t, 2, g.Next())
}
