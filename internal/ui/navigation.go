package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeConfirm:
		return m.handleConfirmKey(keyMsg)
	case ModeBrowse:
		return m.handleBrowseKey(keyMsg)
	}
	return nil
}

func (m *Model) handleBrowseKey(keyMsg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel("ctrl+c")
	case "esc":
		return m.cancel("escape")
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor(m.list.MoveCursorUp)
	case "down":
		m.moveCursor(m.list.MoveCursorDown)
	case "pgup":
		if m.list.MoveCursorPageUp(m.maxVisibleItems()) {
			events.UI.Cursor(m.list.Cursor)
		}
		m.syncViewport()
	case "pgdown":
		if m.list.MoveCursorPageDown(m.maxVisibleItems()) {
			events.UI.Cursor(m.list.Cursor)
		}
		m.syncViewport()
	case "home":
		m.moveCursor(m.list.MoveCursorHome)
	case "end":
		m.moveCursor(m.list.MoveCursorEnd)
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.Cursor(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	item, ok := m.list.CurrentItem()
	if !ok {
		// Confirming an empty view is a no-op, not a cancel.
		return nil
	}
	events.UI.Confirm(item.ID, m.cfg.ActionName, m.list.Filter)
	if m.cfg.Confirm {
		selected := item
		m.confirmItem = &selected
		m.mode = ModeConfirm
		m.errMsg = ""
		return nil
	}
	return m.dispatch(item)
}

func (m *Model) handleConfirmKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "y", "Y", "enter":
		if m.confirmItem == nil {
			m.mode = ModeBrowse
			return nil
		}
		item := *m.confirmItem
		m.confirmItem = nil
		m.mode = ModeBrowse
		return m.dispatch(item)
	case "ctrl+c":
		return m.cancel("ctrl+c")
	default:
		// Anything but an explicit yes discards the pending action.
		events.UI.Cancel("confirm")
		m.confirmItem = nil
		m.mode = ModeBrowse
		return nil
	}
}

func (m *Model) cancel(reason string) tea.Cmd {
	events.UI.Cancel(reason)
	if m.outcome == OutcomeNone {
		m.outcome = OutcomeCancelled
	}
	return tea.Quit
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}
