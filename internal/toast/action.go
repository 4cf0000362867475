package toast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/tmux-toaster/internal/style"
)

var (
	// ErrEmptyActionContent is returned when an action has no content.
	ErrEmptyActionContent = errors.New("action content cannot be empty")
	// ErrNilActionHandler is returned when an action has no click handler.
	ErrNilActionHandler = errors.New("action click handler cannot be nil")
)

// BorderStyle is the line style of an action border.
type BorderStyle string

const (
	BorderSolid  BorderStyle = "solid"
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderNone   BorderStyle = "none"
)

// IsValid checks if the border style is known.
func (b BorderStyle) IsValid() bool {
	switch b {
	case BorderSolid, BorderDashed, BorderDotted, BorderDouble, BorderNone:
		return true
	default:
		return false
	}
}

// ActionStyle is the look of an action button. Zero values inherit from the
// presenter.
type ActionStyle struct {
	BackgroundColor style.Color
	BorderColor     style.Color
	BorderWidth     int
	BorderRadius    int
	BorderStyle     BorderStyle
}

// ActionItem is a clickable control attached to a toast.
type ActionItem struct {
	id      string
	content string
	handler ActionClickHandler
	style   ActionStyle
}

// NewActionItem creates an action with a generated "action-N" id.
func NewActionItem(content string, handler ActionClickHandler) (*ActionItem, error) {
	return NewActionItemWithID("", content, handler)
}

// NewActionItemWithID creates an action with a caller-chosen id. An empty id
// generates one.
func NewActionItemWithID(id, content string, handler ActionClickHandler) (*ActionItem, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyActionContent
	}
	if handler == nil {
		return nil, ErrNilActionHandler
	}
	if id == "" {
		id = nextActionID()
	} else if err := checkName(id); err != nil {
		return nil, fmt.Errorf("action id: %w", err)
	}
	return &ActionItem{
		id:      id,
		content: content,
		handler: handler,
		style:   ActionStyle{BorderStyle: BorderSolid},
	}, nil
}

// ID returns the action id.
func (a *ActionItem) ID() string { return a.id }

// Content returns the text shown on the action.
func (a *ActionItem) Content() string { return a.content }

// Handler returns the click handler.
func (a *ActionItem) Handler() ActionClickHandler { return a.handler }

// Style returns the action style.
func (a *ActionItem) Style() ActionStyle { return a.style }

// SetBackgroundColor sets the background color.
func (a *ActionItem) SetBackgroundColor(c style.Color) { a.style.BackgroundColor = c }

// SetBorderColor sets the border color.
func (a *ActionItem) SetBorderColor(c style.Color) { a.style.BorderColor = c }

// SetBorderWidth sets the border width, clamped to zero.
func (a *ActionItem) SetBorderWidth(w int) { a.style.BorderWidth = nonNegative(w) }

// SetBorderRadius sets the border radius, clamped to zero.
func (a *ActionItem) SetBorderRadius(r int) { a.style.BorderRadius = nonNegative(r) }

// SetBorderStyle sets the border style. Unknown values are ignored.
func (a *ActionItem) SetBorderStyle(b BorderStyle) {
	if b.IsValid() {
		a.style.BorderStyle = b
	}
}

// Clone returns a distinct action with the same id, content, handler and style.
func (a *ActionItem) Clone() *ActionItem {
	c := *a
	return &c
}

// dispatch delivers a click for the toast with the given id. The toast is
// resolved through lookup at click time; when it is no longer open the click
// is dropped and false is returned. Delivery is best effort: a click racing
// with auto-hide simply loses.
func (a *ActionItem) dispatch(lookup func(id int) (*Item, bool), itemID int, ev Event) bool {
	item, ok := lookup(itemID)
	if !ok {
		return false
	}
	item.stampAction(a.id)
	return a.handler(item, ev)
}
