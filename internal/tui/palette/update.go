package palette

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		// Configuration changed (or manual refresh): recompute the visible
		// list and keep listening. Collapse state survives because it is
		// keyed by path, not by node reference.
		m.rebuildNodes()
		return m, m.waitForRefresh()

	case tea.KeyMsg:
		if m.filtering && m.filterInput.Focused() {
			return m.updateFilterInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.rebuildNodes()
		return m, nil
	case "enter":
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.rebuildNodes()
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMessage = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.filtering {
			m.filtering = false
			m.filterInput.SetValue("")
			m.rebuildNodes()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.viewportHeight())

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.viewportHeight())

	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.scrollOffset = 0

	case key.Matches(msg, m.keys.GoToBottom):
		m.cursor = len(m.displayNodes) - 1
		m.clampCursor()
		m.ensureVisible()

	case key.Matches(msg, m.keys.ToggleFold):
		m.toggleFold()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		m.rebuildNodes()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		// Manual refresh trigger: synchronous re-emit of the refresh signal.
		m.svc.Refresh()

	case key.Matches(msg, m.keys.Activate):
		return m.activate(true)

	case key.Matches(msg, m.keys.Copy):
		return m.activate(false)
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+vh {
		m.scrollOffset = m.cursor - vh + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

func (m *Model) toggleFold() {
	if m.cursor >= len(m.displayNodes) {
		return
	}
	node := m.displayNodes[m.cursor]
	if !node.isFoldable() {
		return
	}
	id := node.nodeID()
	m.collapsedNodes[id] = !m.collapsedNodes[id]
	m.rebuildNodes()
}

// activate handles snippet selection. The payload goes to the system
// clipboard either way; quit additionally ends the program so the caller
// can hand the payload to its target buffer.
func (m *Model) activate(quit bool) (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.displayNodes) {
		return m, nil
	}
	node := m.displayNodes[m.cursor]
	if node.isFoldable() {
		// Activating a header just toggles it open.
		m.toggleFold()
		return m, nil
	}

	payload := node.item.Insert
	if err := clipboard.WriteAll(payload); err != nil {
		// Non-fatal: the payload is still printed on exit.
		m.statusMessage = fmt.Sprintf("clipboard unavailable: %v", err)
	} else {
		m.statusMessage = fmt.Sprintf("copied %q", node.item.Label)
	}

	if quit {
		m.Chosen = payload
		return m, tea.Quit
	}
	return m, nil
}
