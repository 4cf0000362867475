package toast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*Item, Event) bool { return false }

func TestNewActionItem(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		content string
		handler ActionClickHandler
		wantErr error
	}{
		{name: "generated id", content: "Undo", handler: noop},
		{name: "explicit id", id: "undo", content: "Undo", handler: noop},
		{name: "blank content", content: "   ", handler: noop, wantErr: ErrEmptyActionContent},
		{name: "nil handler", content: "Undo", wantErr: ErrNilActionHandler},
		{name: "invalid id", id: "1undo", content: "Undo", handler: noop, wantErr: ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewActionItemWithID(tt.id, tt.content, tt.handler)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, a.Content())
			assert.NotNil(t, a.Handler())
			assert.Equal(t, BorderSolid, a.Style().BorderStyle)
			if tt.id != "" {
				assert.Equal(t, tt.id, a.ID())
			} else {
				assert.True(t, strings.HasPrefix(a.ID(), "action-"), a.ID())
			}
		})
	}
}

func TestActionIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		a, err := NewActionItem("x", noop)
		require.NoError(t, err)
		assert.False(t, seen[a.ID()], a.ID())
		seen[a.ID()] = true
	}
}

func TestActionStyleSetters(t *testing.T) {
	a, err := NewActionItem("Go", noop)
	require.NoError(t, err)

	a.SetBorderWidth(-1)
	a.SetBorderRadius(-1)
	a.SetBorderStyle(BorderDashed)
	a.SetBorderStyle(BorderStyle("groove"))
	a.SetBackgroundColor(mustColor(t, "#ff0000"))
	a.SetBorderColor(mustColor(t, "#00ff00"))

	s := a.Style()
	assert.Equal(t, 0, s.BorderWidth)
	assert.Equal(t, 0, s.BorderRadius)
	assert.Equal(t, BorderDashed, s.BorderStyle)
	assert.Equal(t, "#ff0000", s.BackgroundColor.Hex())
	assert.Equal(t, "#00ff00", s.BorderColor.Hex())
}

func TestActionCloneKeepsIdentity(t *testing.T) {
	var hits int
	a, err := NewActionItem("Go", func(*Item, Event) bool { hits++; return true })
	require.NoError(t, err)

	c := a.Clone()
	assert.NotSame(t, a, c)
	assert.Equal(t, a.ID(), c.ID())
	c.Handler()(nil, Event{})
	assert.Equal(t, 1, hits)
}

func TestActionDispatchMissingItem(t *testing.T) {
	var hits int
	a, err := NewActionItem("Go", func(*Item, Event) bool { hits++; return true })
	require.NoError(t, err)

	lookup := func(int) (*Item, bool) { return nil, false }
	assert.False(t, a.dispatch(lookup, 7, Event{}))
	assert.Zero(t, hits)
}
