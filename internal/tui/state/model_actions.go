package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tmux-toaster/internal/toast"
	"github.com/cristianoliveira/tmux-toaster/internal/tui/render"
)

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	seq := m.uiState.StatusSeq()
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.New):
		m.showSample()
	case key.Matches(msg, m.keys.Click):
		m.clickNewest(msg)
	case key.Matches(msg, m.keys.Action):
		m.clickFirstAction(msg)
	case key.Matches(msg, m.keys.Hide):
		m.hideNewest()
	case key.Matches(msg, m.keys.HideAll):
		m.toaster.HideAll()
		m.setStatus("all toasts hidden")
	case key.Matches(msg, m.keys.Policy):
		m.togglePolicy()
	case key.Matches(msg, m.keys.MoreOpen):
		m.toaster.SetMaxOpenItems(m.toaster.MaxOpenItems() + 1)
		m.setStatus(fmt.Sprintf("max open items: %d", m.toaster.MaxOpenItems()))
	case key.Matches(msg, m.keys.LessOpen):
		m.toaster.SetMaxOpenItems(m.toaster.MaxOpenItems() - 1)
		m.setStatus(fmt.Sprintf("max open items: %d", m.toaster.MaxOpenItems()))
	case key.Matches(msg, m.keys.History):
		m.uiState.ToggleHistoryMode()
	default:
		if m.uiState.IsHistoryMode() {
			vp, vpCmd := m.uiState.GetViewport().Update(msg)
			*m.uiState.GetViewport() = vp
			cmd = vpCmd
		}
	}

	if next := m.uiState.StatusSeq(); next != seq {
		cmd = tea.Batch(cmd, clearStatusAfter(next, statusClearDuration))
	}
	return m, cmd
}

func (m *Model) setStatus(text string) {
	m.uiState.SetStatus(text)
}

// showSample submits a demo toast, cycling through the built-in variants.
func (m *Model) showSample() {
	m.counter++
	typ := toast.DefaultTypes[(m.counter-1)%len(toast.DefaultTypes)]
	bar := toast.ProgressBarDefault
	if typ != toast.TypeDefault {
		bar = toast.DefaultProgressBarType(typ.Name())
	}

	dismiss := mustAction("Dismiss", func(*toast.Item, toast.Event) bool { return true })
	keep := mustAction("Keep", func(item *toast.Item, _ toast.Event) bool {
		m.setStatus(fmt.Sprintf("toast %d kept", item.ID()))
		return false
	})
	opts := toast.NewOptionsBuilderFrom(m.toaster.Defaults()).
		Type(typ).
		ProgressBarType(bar).
		Actions(dismiss, keep).
		OnClick(func(item *toast.Item, ev toast.Event) {
			m.setStatus(fmt.Sprintf("toast %d clicked (%s)", item.ID(), ev.Key))
		}).
		Build()

	title := fmt.Sprintf("Toast #%d", m.counter)
	item, status := m.toaster.Submit(map[string]string{"source": "demo"}, opts, title, "variant: "+typ.Name())
	m.setStatus(fmt.Sprintf("toast %d %s", item.ID(), status))
}

func (m *Model) newest() (*render.Element, bool) {
	el, ok := m.presenter.Newest()
	if !ok {
		m.setStatus("no open toasts")
	}
	return el, ok
}

func (m *Model) event(msg tea.KeyMsg) toast.Event {
	return toast.Event{Type: "key", Key: msg.String(), Timestamp: m.clock.Now()}
}

func (m *Model) clickNewest(msg tea.KeyMsg) {
	el, ok := m.newest()
	if !ok {
		return
	}
	m.toaster.Click(el.ItemID(), m.event(msg))
}

func (m *Model) clickFirstAction(msg tea.KeyMsg) {
	el, ok := m.newest()
	if !ok {
		return
	}
	actions := el.Options().Actions()
	if len(actions) == 0 {
		m.setStatus(fmt.Sprintf("toast %d has no actions", el.ItemID()))
		return
	}
	if m.toaster.ClickAction(el.ItemID(), actions[0].ID(), m.event(msg)) {
		m.setStatus(fmt.Sprintf("toast %d: %s", el.ItemID(), actions[0].Content()))
	}
}

func (m *Model) hideNewest() {
	el, ok := m.newest()
	if !ok {
		return
	}
	m.toaster.Hide(el.ItemID())
}

func (m *Model) togglePolicy() {
	next := toast.PolicyDiscard
	if m.toaster.Policy() == toast.PolicyDiscard {
		next = toast.PolicyQueue
	}
	dropped := len(m.toaster.QueuedItems())
	m.toaster.SetPolicy(next)
	if next == toast.PolicyDiscard && dropped > 0 {
		m.setStatus(fmt.Sprintf("policy %s, %d queued toasts dropped", next, dropped))
		return
	}
	m.setStatus(fmt.Sprintf("policy %s", next))
}

func mustAction(content string, h toast.ActionClickHandler) *toast.ActionItem {
	a, err := toast.NewActionItem(content, h)
	if err != nil {
		panic(err)
	}
	return a
}
