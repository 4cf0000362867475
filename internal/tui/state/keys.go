package state

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the demo.
type KeyMap struct {
	New      key.Binding
	Click    key.Binding
	Action   key.Binding
	Hide     key.Binding
	HideAll  key.Binding
	Policy   key.Binding
	MoreOpen key.Binding
	LessOpen key.Binding
	History  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new toast")),
		Click:    key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "click newest")),
		Action:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "first action")),
		Hide:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide newest")),
		HideAll:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "hide all")),
		Policy:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle policy")),
		MoreOpen: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more open")),
		LessOpen: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer open")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
