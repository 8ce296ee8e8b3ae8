package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateEditing routes keys to the label input until confirmed or aborted.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept): // enter confirms the label
		if n := m.currentNode(); n != nil {
			n.Label = m.labelInput.Value()
		}
		m.editing = false
		m.labelInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel): // esc drops the edit
		m.editing = false
		m.labelInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.outcome = OutcomeQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.nodes)-1 {
			m.cursor++
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.viewportHeight()
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.viewportHeight()
		if m.cursor > len(m.nodes)-1 {
			m.cursor = len(m.nodes) - 1
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.GoToTop):
		m.cursor = 0
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.GoToEnd):
		m.cursor = len(m.nodes) - 1
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		if n := m.currentNode(); n != nil && len(n.Children) > 0 {
			m.collapsed[m.nodeID(n)] = true
			m.rebuildNodes()
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if n := m.currentNode(); n != nil {
			delete(m.collapsed, m.nodeID(n))
			m.rebuildNodes()
			m.clampScroll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if n := m.currentNode(); n != nil {
			if !n.Checkable {
				m.statusMessage = "Only dataset entries can be checked"
				return m, nil
			}
			n.SetChecked(!n.Checked)
			m.statusMessage = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		n := m.currentNode()
		if n == nil {
			return m, nil
		}
		if !n.Checkable {
			m.statusMessage = "Only dataset entries can be labeled"
			return m, nil
		}
		m.editing = true
		m.statusMessage = ""
		m.labelInput.SetValue(n.Label)
		m.labelInput.CursorEnd()
		return m, m.labelInput.Focus()

	case key.Matches(msg, m.keys.Accept):
		m.outcome = OutcomeAccepted
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.outcome = OutcomeCancelled
		return m, tea.Quit
	}

	return m, nil
}
