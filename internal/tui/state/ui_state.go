package state

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState manages the screen state of the demo: terminal size, the history
// viewport and the transient status message.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	showHistory bool

	status    string
	statusSeq int
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-headerFooterLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the history viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the viewport to the space left by header and footer.
func (u *UIState) UpdateViewportSize() {
	h := u.height - headerFooterLines
	if h < 1 {
		h = 1
	}
	u.viewport.Width = u.width
	u.viewport.Height = h
}

// IsHistoryMode reports whether the history table is shown instead of the toasts.
func (u *UIState) IsHistoryMode() bool {
	return u.showHistory
}

// ToggleHistoryMode switches between the toasts and the history table.
func (u *UIState) ToggleHistoryMode() {
	u.showHistory = !u.showHistory
	u.viewport.GotoTop()
}

// Status returns the status message.
func (u *UIState) Status() string {
	return u.status
}

// SetStatus replaces the status message and returns its sequence number.
func (u *UIState) SetStatus(text string) int {
	u.status = text
	u.statusSeq++
	return u.statusSeq
}

// ClearStatus clears the status message if it is still the one identified by seq.
func (u *UIState) ClearStatus(seq int) {
	if seq == u.statusSeq {
		u.status = ""
	}
}

// StatusSeq returns the sequence number of the current status message.
func (u *UIState) StatusSeq() int {
	return u.statusSeq
}
