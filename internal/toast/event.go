package toast

import "time"

// Event is the raw interaction reported by the presentation layer.
type Event struct {
	// Type is the kind of interaction, e.g. "click" or "key".
	Type string
	// Key is the key that triggered the interaction, if any.
	Key string
	// Timestamp is when the presentation layer saw the interaction.
	Timestamp time.Time
}

// ClickHandler is invoked when the body of an open toast is clicked.
type ClickHandler func(item *Item, ev Event)

// OpenHandler is invoked once an item becomes visible.
type OpenHandler func(item *Item)

// CloseHandler is invoked once an item has been closed.
type CloseHandler func(item *Item)

// ActionClickHandler is invoked when an action of an open toast is clicked.
// Returning true also closes the toast.
type ActionClickHandler func(item *Item, ev Event) bool
