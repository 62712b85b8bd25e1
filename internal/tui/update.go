package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/styledterm/internal/gallery"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.state.Focus != "" {
			return m.handleFieldKeys(msg)
		}
		return m.handleKeys(msg)
	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "right", "l":
		m.switchScreen(1)
	case "left", "h":
		m.switchScreen(-1)
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(m.themes)
		m.refresh()
	case "d":
		m.debug = !m.debug
		m.refresh()
	case "tab":
		m.focusField(1)
	case "shift+tab":
		m.focusField(-1)
	case "]":
		m.state.Offset++
		m.refresh()
	case "[":
		m.state.Offset = max(m.state.Offset-1, 0)
		m.refresh()
	case "up", "k":
		m.viewport.ScrollUp(1)
	case "down", "j":
		m.viewport.ScrollDown(1)
	}
	return m, nil
}

// handleFieldKeys edits the focused form field.
func (m Model) handleFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := m.state.Focus
	value := []rune(m.state.Values[field])

	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.state.Focus = ""
	case tea.KeyTab:
		m.focusField(1)
		return m, nil
	case tea.KeyShiftTab:
		m.focusField(-1)
		return m, nil
	case tea.KeyEnter:
		m.state.Focus = ""
		m.state.Pressed = "submit"
	case tea.KeyBackspace:
		if len(value) > 0 {
			m.state.Values[field] = string(value[:len(value)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.state.Values[field] = string(append(value, msg.Runes...))
	}

	m.refresh()
	return m, nil
}

func (m *Model) switchScreen(delta int) {
	n := len(m.screens)
	m.screenIdx = ((m.screenIdx+delta)%n + n) % n
	m.state = gallery.State{Values: m.state.Values}
	m.viewport.GotoTop()
	m.refresh()
}

// focusField moves the focus through the fields of the active screen.
func (m *Model) focusField(delta int) {
	fields := m.Screen().Fields
	if len(fields) == 0 {
		return
	}

	_, idx, found := lo.FindIndexOf(fields, func(f string) bool { return f == m.state.Focus })
	switch {
	case !found && delta > 0:
		idx = 0
	case !found:
		idx = len(fields) - 1
	default:
		n := len(fields)
		idx = ((idx+delta)%n + n) % n
	}

	m.state.Focus = fields[idx]
	m.state.Pressed = ""
	m.refresh()
}
